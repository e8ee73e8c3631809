package repositories

import (
	"context"

	"member-events-api/internal/filter"
	"member-events-api/internal/model"

	"github.com/stretchr/testify/mock"
)

type RoleRepositoryMock struct {
	mock.Mock
}

func NewRoleRepositoryMock() *RoleRepositoryMock {
	return &RoleRepositoryMock{}
}

func (m *RoleRepositoryMock) one(args mock.Arguments) (*model.Role, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Role), args.Error(1)
}

func (m *RoleRepositoryMock) Create(ctx context.Context, role *model.Role) (*model.Role, error) {
	return m.one(m.Called(ctx, role))
}

func (m *RoleRepositoryMock) FindByID(ctx context.Context, id int) (*model.Role, error) {
	return m.one(m.Called(ctx, id))
}

func (m *RoleRepositoryMock) List(ctx context.Context, conds filter.Conditions) ([]*model.Role, error) {
	args := m.Called(ctx, conds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Role), args.Error(1)
}

func (m *RoleRepositoryMock) Update(ctx context.Context, id int, role *model.Role) (*model.Role, error) {
	return m.one(m.Called(ctx, id, role))
}

func (m *RoleRepositoryMock) Delete(ctx context.Context, id int) (*model.Role, error) {
	return m.one(m.Called(ctx, id))
}
