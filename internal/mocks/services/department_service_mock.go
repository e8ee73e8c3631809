package services

import (
	"context"

	"member-events-api/internal/filter"
	"member-events-api/internal/model"

	"github.com/stretchr/testify/mock"
)

type DepartmentServiceMock struct {
	mock.Mock
}

func NewDepartmentServiceMock() *DepartmentServiceMock {
	return &DepartmentServiceMock{}
}

func (m *DepartmentServiceMock) one(args mock.Arguments) (*model.Department, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Department), args.Error(1)
}

func (m *DepartmentServiceMock) Create(ctx context.Context, department *model.Department) (*model.Department, error) {
	return m.one(m.Called(ctx, department))
}

func (m *DepartmentServiceMock) GetByID(ctx context.Context, id int) (*model.Department, error) {
	return m.one(m.Called(ctx, id))
}

func (m *DepartmentServiceMock) List(ctx context.Context, conds filter.Conditions) ([]*model.Department, error) {
	args := m.Called(ctx, conds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Department), args.Error(1)
}

func (m *DepartmentServiceMock) Update(ctx context.Context, id int, department *model.Department) (*model.Department, error) {
	return m.one(m.Called(ctx, id, department))
}

func (m *DepartmentServiceMock) Delete(ctx context.Context, id int) (*model.Department, error) {
	return m.one(m.Called(ctx, id))
}
