package service

import (
	"context"

	"member-events-api/internal/filter"
	"member-events-api/internal/model"
	"member-events-api/internal/queue"
	"member-events-api/internal/repository"
)

type RoleService interface {
	Create(ctx context.Context, role *model.Role) (*model.Role, error)
	GetByID(ctx context.Context, id int) (*model.Role, error)
	List(ctx context.Context, conds filter.Conditions) ([]*model.Role, error)
	Update(ctx context.Context, id int, role *model.Role) (*model.Role, error)
	Delete(ctx context.Context, id int) (*model.Role, error)
}

type RoleServiceImpl struct {
	repo      repository.RoleRepository
	publisher changePublisher
}

func NewRoleService(repo repository.RoleRepository, changes queue.ChangeQueue) RoleService {
	return &RoleServiceImpl{repo: repo, publisher: newChangePublisher(changes, model.ResourceRole)}
}

func (s *RoleServiceImpl) Create(ctx context.Context, role *model.Role) (*model.Role, error) {
	created, err := s.repo.Create(ctx, role)
	if err != nil {
		return nil, err
	}
	s.publisher.publish(ctx, created.ID, model.ChangeActionCreated)
	return created, nil
}

func (s *RoleServiceImpl) GetByID(ctx context.Context, id int) (*model.Role, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RoleServiceImpl) List(ctx context.Context, conds filter.Conditions) ([]*model.Role, error) {
	return s.repo.List(ctx, conds)
}

func (s *RoleServiceImpl) Update(ctx context.Context, id int, role *model.Role) (*model.Role, error) {
	updated, err := s.repo.Update(ctx, id, role)
	if err != nil {
		return nil, err
	}
	s.publisher.publish(ctx, updated.ID, model.ChangeActionUpdated)
	return updated, nil
}

func (s *RoleServiceImpl) Delete(ctx context.Context, id int) (*model.Role, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publisher.publish(ctx, deleted.ID, model.ChangeActionDeleted)
	return deleted, nil
}
