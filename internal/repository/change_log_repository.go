package repository

import (
	"context"

	"member-events-api/internal/database"
	"member-events-api/internal/filter"
	"member-events-api/internal/model"
)

var changeLogColumns = map[string]string{
	"resource":   "resource",
	"resourceId": "resource_id",
	"action":     "action",
}

type ChangeLogRepository interface {
	Create(ctx context.Context, event *model.ChangeEvent) (*model.ChangeEvent, error)
	List(ctx context.Context, conds filter.Conditions) ([]*model.ChangeEvent, error)
}

type ChangeLogRepositoryImpl struct {
	db database.DBTX
}

func NewChangeLogRepository(db database.DBTX) ChangeLogRepository {
	return &ChangeLogRepositoryImpl{
		db: db,
	}
}

func (r *ChangeLogRepositoryImpl) Create(ctx context.Context, event *model.ChangeEvent) (*model.ChangeEvent, error) {
	query := `
		INSERT INTO change_log (resource, resource_id, action, occurred_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, resource, resource_id, action, occurred_at
	`
	var created model.ChangeEvent
	err := r.db.QueryRow(ctx, query,
		event.Resource, event.ResourceID, event.Action, event.OccurredAt,
	).Scan(
		&created.ID,
		&created.Resource,
		&created.ResourceID,
		&created.Action,
		&created.OccurredAt,
	)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// List 依發生時間新到舊排序
func (r *ChangeLogRepositoryImpl) List(ctx context.Context, conds filter.Conditions) ([]*model.ChangeEvent, error) {
	query, args, err := conds.Apply(
		"SELECT id, resource, resource_id, action, occurred_at FROM change_log",
		changeLogColumns,
		"occurred_at DESC, id DESC",
	)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.ChangeEvent, 0)
	for rows.Next() {
		var event model.ChangeEvent
		err := rows.Scan(
			&event.ID,
			&event.Resource,
			&event.ResourceID,
			&event.Action,
			&event.OccurredAt,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, &event)
	}
	return events, rows.Err()
}
