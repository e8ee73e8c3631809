package service

import (
	"context"

	"member-events-api/internal/filter"
	"member-events-api/internal/model"
	"member-events-api/internal/queue"
	"member-events-api/internal/repository"
)

type DepartmentService interface {
	Create(ctx context.Context, department *model.Department) (*model.Department, error)
	GetByID(ctx context.Context, id int) (*model.Department, error)
	List(ctx context.Context, conds filter.Conditions) ([]*model.Department, error)
	Update(ctx context.Context, id int, department *model.Department) (*model.Department, error)
	Delete(ctx context.Context, id int) (*model.Department, error)
}

type DepartmentServiceImpl struct {
	repo      repository.DepartmentRepository
	publisher changePublisher
}

func NewDepartmentService(repo repository.DepartmentRepository, changes queue.ChangeQueue) DepartmentService {
	return &DepartmentServiceImpl{repo: repo, publisher: newChangePublisher(changes, model.ResourceDepartment)}
}

func (s *DepartmentServiceImpl) Create(ctx context.Context, department *model.Department) (*model.Department, error) {
	created, err := s.repo.Create(ctx, department)
	if err != nil {
		return nil, err
	}
	s.publisher.publish(ctx, created.ID, model.ChangeActionCreated)
	return created, nil
}

func (s *DepartmentServiceImpl) GetByID(ctx context.Context, id int) (*model.Department, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DepartmentServiceImpl) List(ctx context.Context, conds filter.Conditions) ([]*model.Department, error) {
	return s.repo.List(ctx, conds)
}

func (s *DepartmentServiceImpl) Update(ctx context.Context, id int, department *model.Department) (*model.Department, error) {
	updated, err := s.repo.Update(ctx, id, department)
	if err != nil {
		return nil, err
	}
	s.publisher.publish(ctx, updated.ID, model.ChangeActionUpdated)
	return updated, nil
}

func (s *DepartmentServiceImpl) Delete(ctx context.Context, id int) (*model.Department, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publisher.publish(ctx, deleted.ID, model.ChangeActionDeleted)
	return deleted, nil
}
