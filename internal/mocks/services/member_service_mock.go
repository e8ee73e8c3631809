package services

import (
	"context"

	"member-events-api/internal/filter"
	"member-events-api/internal/model"

	"github.com/stretchr/testify/mock"
)

type MemberServiceMock struct {
	mock.Mock
}

func NewMemberServiceMock() *MemberServiceMock {
	return &MemberServiceMock{}
}

func (m *MemberServiceMock) one(args mock.Arguments) (*model.Member, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Member), args.Error(1)
}

func (m *MemberServiceMock) Create(ctx context.Context, member *model.Member) (*model.Member, error) {
	return m.one(m.Called(ctx, member))
}

func (m *MemberServiceMock) GetByID(ctx context.Context, id int) (*model.Member, error) {
	return m.one(m.Called(ctx, id))
}

func (m *MemberServiceMock) GetByEmail(ctx context.Context, email string) (*model.Member, error) {
	return m.one(m.Called(ctx, email))
}

func (m *MemberServiceMock) List(ctx context.Context, conds filter.Conditions) ([]*model.Member, error) {
	args := m.Called(ctx, conds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Member), args.Error(1)
}

func (m *MemberServiceMock) Update(ctx context.Context, id int, member *model.Member) (*model.Member, error) {
	return m.one(m.Called(ctx, id, member))
}

func (m *MemberServiceMock) Delete(ctx context.Context, id int) (*model.Member, error) {
	return m.one(m.Called(ctx, id))
}
