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

// name 過濾的是關聯 event type 的名稱
var eventColumns = map[string]string{
	"name":        "et.name",
	"datetime":    "e.datetime",
	"eventTypeId": "e.event_type_id",
}

const selectEventWithType = `
		SELECT e.id, e.event_type_id, e.datetime, et.id, et.name
		FROM events e
		JOIN event_types et ON et.id = e.event_type_id`

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	FindByID(ctx context.Context, id int) (*model.Event, error)
	List(ctx context.Context, conds filter.Conditions) ([]*model.Event, error)
	Update(ctx context.Context, id int, event *model.Event) (*model.Event, error)
	Delete(ctx context.Context, id int) (*model.Event, error)
}

type EventRepositoryImpl struct {
	db database.DBTX
}

func NewEventRepository(db database.DBTX) EventRepository {
	return &EventRepositoryImpl{
		db: db,
	}
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	query := `
		INSERT INTO events (event_type_id, datetime)
		VALUES ($1, $2)
		RETURNING id, event_type_id, datetime
	`
	var created model.Event
	err := r.db.QueryRow(ctx, query,
		event.EventTypeID, event.Datetime,
	).Scan(
		&created.ID,
		&created.EventTypeID,
		&created.Datetime,
	)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Event, error) {
	query := selectEventWithType + `
		WHERE e.id = $1
	`

	var event model.Event
	var eventType model.EventType
	err := r.db.QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.EventTypeID,
		&event.Datetime,
		&eventType.ID,
		&eventType.Name,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	event.EventType = &eventType

	return &event, nil
}

func (r *EventRepositoryImpl) List(ctx context.Context, conds filter.Conditions) ([]*model.Event, error) {
	query, args, err := conds.Apply(selectEventWithType, eventColumns, "e.id")
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		var event model.Event
		var eventType model.EventType
		err := rows.Scan(
			&event.ID,
			&event.EventTypeID,
			&event.Datetime,
			&eventType.ID,
			&eventType.Name,
		)
		if err != nil {
			return nil, err
		}
		event.EventType = &eventType
		events = append(events, &event)
	}
	return events, rows.Err()
}

func (r *EventRepositoryImpl) Update(ctx context.Context, id int, event *model.Event) (*model.Event, error) {
	query := `
		UPDATE events
		SET event_type_id = $1, datetime = $2
		WHERE id = $3
		RETURNING id, event_type_id, datetime
	`
	return r.scanOne(r.db.QueryRow(ctx, query, event.EventTypeID, event.Datetime, id))
}

func (r *EventRepositoryImpl) Delete(ctx context.Context, id int) (*model.Event, error) {
	query := `
		DELETE FROM events
		WHERE id = $1
		RETURNING id, event_type_id, datetime
	`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *EventRepositoryImpl) scanOne(row pgx.Row) (*model.Event, error) {
	var event model.Event
	err := row.Scan(&event.ID, &event.EventTypeID, &event.Datetime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}
