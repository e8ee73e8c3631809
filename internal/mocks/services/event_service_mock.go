package services

import (
	"context"

	"member-events-api/internal/filter"
	"member-events-api/internal/model"

	"github.com/stretchr/testify/mock"
)

type EventServiceMock struct {
	mock.Mock
}

func NewEventServiceMock() *EventServiceMock {
	return &EventServiceMock{}
}

func (m *EventServiceMock) one(args mock.Arguments) (*model.Event, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventServiceMock) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	return m.one(m.Called(ctx, event))
}

func (m *EventServiceMock) GetByID(ctx context.Context, id int) (*model.Event, error) {
	return m.one(m.Called(ctx, id))
}

func (m *EventServiceMock) List(ctx context.Context, conds filter.Conditions) ([]*model.Event, error) {
	args := m.Called(ctx, conds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Event), args.Error(1)
}

func (m *EventServiceMock) Update(ctx context.Context, id int, event *model.Event) (*model.Event, error) {
	return m.one(m.Called(ctx, id, event))
}

func (m *EventServiceMock) Delete(ctx context.Context, id int) (*model.Event, error) {
	return m.one(m.Called(ctx, id))
}
