package repositories

import (
	"context"

	"member-events-api/internal/filter"
	"member-events-api/internal/model"

	"github.com/stretchr/testify/mock"
)

type MemberRepositoryMock struct {
	mock.Mock
}

func NewMemberRepositoryMock() *MemberRepositoryMock {
	return &MemberRepositoryMock{}
}

func (m *MemberRepositoryMock) one(args mock.Arguments) (*model.Member, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Member), args.Error(1)
}

func (m *MemberRepositoryMock) Create(ctx context.Context, member *model.Member) (*model.Member, error) {
	return m.one(m.Called(ctx, member))
}

func (m *MemberRepositoryMock) FindByID(ctx context.Context, id int) (*model.Member, error) {
	return m.one(m.Called(ctx, id))
}

func (m *MemberRepositoryMock) FindByEmail(ctx context.Context, email string) (*model.Member, error) {
	return m.one(m.Called(ctx, email))
}

func (m *MemberRepositoryMock) List(ctx context.Context, conds filter.Conditions) ([]*model.Member, error) {
	args := m.Called(ctx, conds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Member), args.Error(1)
}

func (m *MemberRepositoryMock) Update(ctx context.Context, id int, member *model.Member) (*model.Member, error) {
	return m.one(m.Called(ctx, id, member))
}

func (m *MemberRepositoryMock) Delete(ctx context.Context, id int) (*model.Member, error) {
	return m.one(m.Called(ctx, id))
}
