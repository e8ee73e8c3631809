package repositories

import (
	"context"

	"member-events-api/internal/filter"
	"member-events-api/internal/model"

	"github.com/stretchr/testify/mock"
)

type EventTypeRepositoryMock struct {
	mock.Mock
}

func NewEventTypeRepositoryMock() *EventTypeRepositoryMock {
	return &EventTypeRepositoryMock{}
}

func (m *EventTypeRepositoryMock) one(args mock.Arguments) (*model.EventType, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EventType), args.Error(1)
}

func (m *EventTypeRepositoryMock) Create(ctx context.Context, eventType *model.EventType) (*model.EventType, error) {
	return m.one(m.Called(ctx, eventType))
}

func (m *EventTypeRepositoryMock) FindByID(ctx context.Context, id int) (*model.EventType, error) {
	return m.one(m.Called(ctx, id))
}

func (m *EventTypeRepositoryMock) List(ctx context.Context, conds filter.Conditions) ([]*model.EventType, error) {
	args := m.Called(ctx, conds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.EventType), args.Error(1)
}

func (m *EventTypeRepositoryMock) Update(ctx context.Context, id int, eventType *model.EventType) (*model.EventType, error) {
	return m.one(m.Called(ctx, id, eventType))
}

func (m *EventTypeRepositoryMock) Delete(ctx context.Context, id int) (*model.EventType, error) {
	return m.one(m.Called(ctx, id))
}
