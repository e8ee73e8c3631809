package repository

import (
	"context"
	"errors"

	"member-events-api/internal/database"
	"member-events-api/internal/filter"
	"member-events-api/internal/model"
	apperrors "member-events-api/pkg/app_errors"

	"github.com/jackc/pgx/v5"
)

var eventTypeColumns = map[string]string{
	"name": "name",
}

type EventTypeRepository interface {
	Create(ctx context.Context, eventType *model.EventType) (*model.EventType, error)
	FindByID(ctx context.Context, id int) (*model.EventType, error)
	List(ctx context.Context, conds filter.Conditions) ([]*model.EventType, error)
	Update(ctx context.Context, id int, eventType *model.EventType) (*model.EventType, error)
	Delete(ctx context.Context, id int) (*model.EventType, error)
}

type EventTypeRepositoryImpl struct {
	db database.DBTX
}

func NewEventTypeRepository(db database.DBTX) EventTypeRepository {
	return &EventTypeRepositoryImpl{
		db: db,
	}
}

func (r *EventTypeRepositoryImpl) Create(ctx context.Context, eventType *model.EventType) (*model.EventType, error) {
	query := `
		INSERT INTO event_types (name)
		VALUES ($1)
		RETURNING id, name
	`
	var created model.EventType
	err := r.db.QueryRow(ctx, query, eventType.Name).Scan(
		&created.ID,
		&created.Name,
	)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *EventTypeRepositoryImpl) FindByID(ctx context.Context, id int) (*model.EventType, error) {
	query := `
		SELECT id, name
		FROM event_types
		WHERE id = $1
	`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *EventTypeRepositoryImpl) List(ctx context.Context, conds filter.Conditions) ([]*model.EventType, error) {
	query, args, err := conds.Apply("SELECT id, name FROM event_types", eventTypeColumns, "id")
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	eventTypes := make([]*model.EventType, 0)
	for rows.Next() {
		var eventType model.EventType
		if err := rows.Scan(&eventType.ID, &eventType.Name); err != nil {
			return nil, err
		}
		eventTypes = append(eventTypes, &eventType)
	}
	return eventTypes, rows.Err()
}

func (r *EventTypeRepositoryImpl) Update(ctx context.Context, id int, eventType *model.EventType) (*model.EventType, error) {
	query := `
		UPDATE event_types
		SET name = $1
		WHERE id = $2
		RETURNING id, name
	`
	return r.scanOne(r.db.QueryRow(ctx, query, eventType.Name, id))
}

func (r *EventTypeRepositoryImpl) Delete(ctx context.Context, id int) (*model.EventType, error) {
	query := `
		DELETE FROM event_types
		WHERE id = $1
		RETURNING id, name
	`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *EventTypeRepositoryImpl) scanOne(row pgx.Row) (*model.EventType, error) {
	var eventType model.EventType
	err := row.Scan(&eventType.ID, &eventType.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventTypeNotFound
		}
		return nil, err
	}
	return &eventType, nil
}
