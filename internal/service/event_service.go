package service

import (
	"context"

	"member-events-api/internal/filter"
	"member-events-api/internal/model"
	"member-events-api/internal/queue"
	"member-events-api/internal/repository"
)

type EventService interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	// GetByID 結果包含關聯的 EventType
	GetByID(ctx context.Context, id int) (*model.Event, error)
	List(ctx context.Context, conds filter.Conditions) ([]*model.Event, error)
	Update(ctx context.Context, id int, event *model.Event) (*model.Event, error)
	Delete(ctx context.Context, id int) (*model.Event, error)
}

type EventServiceImpl struct {
	repo      repository.EventRepository
	publisher changePublisher
}

func NewEventService(repo repository.EventRepository, changes queue.ChangeQueue) EventService {
	return &EventServiceImpl{repo: repo, publisher: newChangePublisher(changes, model.ResourceEvent)}
}

func (s *EventServiceImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, err
	}
	s.publisher.publish(ctx, created.ID, model.ChangeActionCreated)
	return created, nil
}

func (s *EventServiceImpl) GetByID(ctx context.Context, id int) (*model.Event, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EventServiceImpl) List(ctx context.Context, conds filter.Conditions) ([]*model.Event, error) {
	return s.repo.List(ctx, conds)
}

func (s *EventServiceImpl) Update(ctx context.Context, id int, event *model.Event) (*model.Event, error) {
	updated, err := s.repo.Update(ctx, id, event)
	if err != nil {
		return nil, err
	}
	s.publisher.publish(ctx, updated.ID, model.ChangeActionUpdated)
	return updated, nil
}

func (s *EventServiceImpl) Delete(ctx context.Context, id int) (*model.Event, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publisher.publish(ctx, deleted.ID, model.ChangeActionDeleted)
	return deleted, nil
}
