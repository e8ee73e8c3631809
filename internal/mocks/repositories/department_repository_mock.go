package repositories

import (
	"context"

	"member-events-api/internal/filter"
	"member-events-api/internal/model"

	"github.com/stretchr/testify/mock"
)

type DepartmentRepositoryMock struct {
	mock.Mock
}

func NewDepartmentRepositoryMock() *DepartmentRepositoryMock {
	return &DepartmentRepositoryMock{}
}

func (m *DepartmentRepositoryMock) one(args mock.Arguments) (*model.Department, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Department), args.Error(1)
}

func (m *DepartmentRepositoryMock) Create(ctx context.Context, department *model.Department) (*model.Department, error) {
	return m.one(m.Called(ctx, department))
}

func (m *DepartmentRepositoryMock) FindByID(ctx context.Context, id int) (*model.Department, error) {
	return m.one(m.Called(ctx, id))
}

func (m *DepartmentRepositoryMock) List(ctx context.Context, conds filter.Conditions) ([]*model.Department, error) {
	args := m.Called(ctx, conds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Department), args.Error(1)
}

func (m *DepartmentRepositoryMock) Update(ctx context.Context, id int, department *model.Department) (*model.Department, error) {
	return m.one(m.Called(ctx, id, department))
}

func (m *DepartmentRepositoryMock) Delete(ctx context.Context, id int) (*model.Department, error) {
	return m.one(m.Called(ctx, id))
}
