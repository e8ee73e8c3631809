package services

import (
	"context"

	"member-events-api/internal/filter"
	"member-events-api/internal/model"

	"github.com/stretchr/testify/mock"
)

type RoleServiceMock struct {
	mock.Mock
}

func NewRoleServiceMock() *RoleServiceMock {
	return &RoleServiceMock{}
}

func (m *RoleServiceMock) one(args mock.Arguments) (*model.Role, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Role), args.Error(1)
}

func (m *RoleServiceMock) Create(ctx context.Context, role *model.Role) (*model.Role, error) {
	return m.one(m.Called(ctx, role))
}

func (m *RoleServiceMock) GetByID(ctx context.Context, id int) (*model.Role, error) {
	return m.one(m.Called(ctx, id))
}

func (m *RoleServiceMock) List(ctx context.Context, conds filter.Conditions) ([]*model.Role, error) {
	args := m.Called(ctx, conds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Role), args.Error(1)
}

func (m *RoleServiceMock) Update(ctx context.Context, id int, role *model.Role) (*model.Role, error) {
	return m.one(m.Called(ctx, id, role))
}

func (m *RoleServiceMock) Delete(ctx context.Context, id int) (*model.Role, error) {
	return m.one(m.Called(ctx, id))
}
