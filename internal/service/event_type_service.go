package service

import (
	"context"

	"member-events-api/internal/filter"
	"member-events-api/internal/model"
	"member-events-api/internal/queue"
	"member-events-api/internal/repository"
)

type EventTypeService interface {
	Create(ctx context.Context, eventType *model.EventType) (*model.EventType, error)
	GetByID(ctx context.Context, id int) (*model.EventType, error)
	List(ctx context.Context, conds filter.Conditions) ([]*model.EventType, error)
	Update(ctx context.Context, id int, eventType *model.EventType) (*model.EventType, error)
	Delete(ctx context.Context, id int) (*model.EventType, error)
}

type EventTypeServiceImpl struct {
	repo      repository.EventTypeRepository
	publisher changePublisher
}

func NewEventTypeService(repo repository.EventTypeRepository, changes queue.ChangeQueue) EventTypeService {
	return &EventTypeServiceImpl{repo: repo, publisher: newChangePublisher(changes, model.ResourceEventType)}
}

func (s *EventTypeServiceImpl) Create(ctx context.Context, eventType *model.EventType) (*model.EventType, error) {
	created, err := s.repo.Create(ctx, eventType)
	if err != nil {
		return nil, err
	}
	s.publisher.publish(ctx, created.ID, model.ChangeActionCreated)
	return created, nil
}

func (s *EventTypeServiceImpl) GetByID(ctx context.Context, id int) (*model.EventType, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EventTypeServiceImpl) List(ctx context.Context, conds filter.Conditions) ([]*model.EventType, error) {
	return s.repo.List(ctx, conds)
}

func (s *EventTypeServiceImpl) Update(ctx context.Context, id int, eventType *model.EventType) (*model.EventType, error) {
	updated, err := s.repo.Update(ctx, id, eventType)
	if err != nil {
		return nil, err
	}
	s.publisher.publish(ctx, updated.ID, model.ChangeActionUpdated)
	return updated, nil
}

func (s *EventTypeServiceImpl) Delete(ctx context.Context, id int) (*model.EventType, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publisher.publish(ctx, deleted.ID, model.ChangeActionDeleted)
	return deleted, nil
}
