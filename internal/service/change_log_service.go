package service

import (
	"context"

	"member-events-api/internal/filter"
	"member-events-api/internal/model"
	"member-events-api/internal/repository"
)

type ChangeLogService interface {
	List(ctx context.Context, conds filter.Conditions) ([]*model.ChangeEvent, error)
}

type ChangeLogServiceImpl struct {
	repo repository.ChangeLogRepository
}

func NewChangeLogService(repo repository.ChangeLogRepository) ChangeLogService {
	return &ChangeLogServiceImpl{repo: repo}
}

func (s *ChangeLogServiceImpl) List(ctx context.Context, conds filter.Conditions) ([]*model.ChangeEvent, error) {
	return s.repo.List(ctx, conds)
}
