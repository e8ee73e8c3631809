package repository

import (
	"context"
	"testing"
	"time"

	"member-events-api/internal/filter"
	"member-events-api/internal/model"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var changeLogRowColumns = []string{"id", "resource", "resource_id", "action", "occurred_at"}

func TestChangeLogRepository_Create(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, 5, 25, 10, 0, 0, 0, time.UTC)
	db := newMockDB(t)
	repo := NewChangeLogRepository(db)

	db.ExpectQuery("INSERT INTO change_log").
		WithArgs(model.ResourceDepartment, 1, model.ChangeActionCreated, at).
		WillReturnRows(pgxmock.NewRows(changeLogRowColumns).
			AddRow(1, model.ResourceDepartment, 1, model.ChangeActionCreated, at))

	created, err := repo.Create(ctx, &model.ChangeEvent{
		Resource:   model.ResourceDepartment,
		ResourceID: 1,
		Action:     model.ChangeActionCreated,
		OccurredAt: at,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, model.ChangeActionCreated, created.Action)
}

func TestChangeLogRepository_List(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, 5, 25, 10, 0, 0, 0, time.UTC)
	db := newMockDB(t)
	repo := NewChangeLogRepository(db)

	db.ExpectQuery("FROM change_log\\s+WHERE resource = \\$1\\s+ORDER BY occurred_at DESC, id DESC").
		WithArgs(model.ResourceRole).
		WillReturnRows(pgxmock.NewRows(changeLogRowColumns).
			AddRow(2, model.ResourceRole, 4, model.ChangeActionDeleted, at).
			AddRow(1, model.ResourceRole, 4, model.ChangeActionCreated, at.Add(-time.Hour)))

	events, err := repo.List(ctx, filter.Conditions{filter.Eq("resource", model.ResourceRole)})

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, model.ChangeActionDeleted, events[0].Action)
}
