package repositories

import (
	"context"

	"member-events-api/internal/filter"
	"member-events-api/internal/model"

	"github.com/stretchr/testify/mock"
)

type ChangeLogRepositoryMock struct {
	mock.Mock
}

func NewChangeLogRepositoryMock() *ChangeLogRepositoryMock {
	return &ChangeLogRepositoryMock{}
}

func (m *ChangeLogRepositoryMock) Create(ctx context.Context, event *model.ChangeEvent) (*model.ChangeEvent, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChangeEvent), args.Error(1)
}

func (m *ChangeLogRepositoryMock) List(ctx context.Context, conds filter.Conditions) ([]*model.ChangeEvent, error) {
	args := m.Called(ctx, conds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ChangeEvent), args.Error(1)
}
