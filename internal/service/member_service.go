package service

import (
	"context"

	"member-events-api/internal/filter"
	"member-events-api/internal/model"
	"member-events-api/internal/queue"
	"member-events-api/internal/repository"
)

// MemberService 密碼在進入 service 前已完成雜湊
type MemberService interface {
	Create(ctx context.Context, member *model.Member) (*model.Member, error)
	GetByID(ctx context.Context, id int) (*model.Member, error)
	// GetByEmail 建立前檢查 email 是否已被註冊
	GetByEmail(ctx context.Context, email string) (*model.Member, error)
	List(ctx context.Context, conds filter.Conditions) ([]*model.Member, error)
	Update(ctx context.Context, id int, member *model.Member) (*model.Member, error)
	Delete(ctx context.Context, id int) (*model.Member, error)
}

type MemberServiceImpl struct {
	repo      repository.MemberRepository
	publisher changePublisher
}

func NewMemberService(repo repository.MemberRepository, changes queue.ChangeQueue) MemberService {
	return &MemberServiceImpl{repo: repo, publisher: newChangePublisher(changes, model.ResourceMember)}
}

func (s *MemberServiceImpl) Create(ctx context.Context, member *model.Member) (*model.Member, error) {
	created, err := s.repo.Create(ctx, member)
	if err != nil {
		return nil, err
	}
	s.publisher.publish(ctx, created.ID, model.ChangeActionCreated)
	return created, nil
}

func (s *MemberServiceImpl) GetByID(ctx context.Context, id int) (*model.Member, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *MemberServiceImpl) GetByEmail(ctx context.Context, email string) (*model.Member, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *MemberServiceImpl) List(ctx context.Context, conds filter.Conditions) ([]*model.Member, error) {
	return s.repo.List(ctx, conds)
}

func (s *MemberServiceImpl) Update(ctx context.Context, id int, member *model.Member) (*model.Member, error) {
	updated, err := s.repo.Update(ctx, id, member)
	if err != nil {
		return nil, err
	}
	s.publisher.publish(ctx, updated.ID, model.ChangeActionUpdated)
	return updated, nil
}

func (s *MemberServiceImpl) Delete(ctx context.Context, id int) (*model.Member, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publisher.publish(ctx, deleted.ID, model.ChangeActionDeleted)
	return deleted, nil
}
