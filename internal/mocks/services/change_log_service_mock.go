package services

import (
	"context"

	"member-events-api/internal/filter"
	"member-events-api/internal/model"

	"github.com/stretchr/testify/mock"
)

type ChangeLogServiceMock struct {
	mock.Mock
}

func NewChangeLogServiceMock() *ChangeLogServiceMock {
	return &ChangeLogServiceMock{}
}

func (m *ChangeLogServiceMock) List(ctx context.Context, conds filter.Conditions) ([]*model.ChangeEvent, error) {
	args := m.Called(ctx, conds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ChangeEvent), args.Error(1)
}
