package repositories

import (
	"context"

	"member-events-api/internal/filter"
	"member-events-api/internal/model"

	"github.com/stretchr/testify/mock"
)

type EventRepositoryMock struct {
	mock.Mock
}

func NewEventRepositoryMock() *EventRepositoryMock {
	return &EventRepositoryMock{}
}

func (m *EventRepositoryMock) one(args mock.Arguments) (*model.Event, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventRepositoryMock) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	return m.one(m.Called(ctx, event))
}

func (m *EventRepositoryMock) FindByID(ctx context.Context, id int) (*model.Event, error) {
	return m.one(m.Called(ctx, id))
}

func (m *EventRepositoryMock) List(ctx context.Context, conds filter.Conditions) ([]*model.Event, error) {
	args := m.Called(ctx, conds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Event), args.Error(1)
}

func (m *EventRepositoryMock) Update(ctx context.Context, id int, event *model.Event) (*model.Event, error) {
	return m.one(m.Called(ctx, id, event))
}

func (m *EventRepositoryMock) Delete(ctx context.Context, id int) (*model.Event, error) {
	return m.one(m.Called(ctx, id))
}
