package repository

import (
	"context"
	"testing"

	"member-events-api/internal/filter"
	"member-events-api/internal/model"
	apperrors "member-events-api/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	columns := []string{"id", "name"}

	t.Run("Create", func(t *testing.T) {
		db := newMockDB(t)
		repo := NewRoleRepository(db)

		db.ExpectQuery("INSERT INTO roles").
			WithArgs("Admin").
			WillReturnRows(pgxmock.NewRows(columns).AddRow(3, "Admin"))

		created, err := repo.Create(ctx, &model.Role{Name: "Admin"})

		require.NoError(t, err)
		assert.Equal(t, &model.Role{ID: 3, Name: "Admin"}, created)
	})

	t.Run("ListByName", func(t *testing.T) {
		db := newMockDB(t)
		repo := NewRoleRepository(db)

		db.ExpectQuery("FROM roles\\s+WHERE strpos").
			WithArgs("adm").
			WillReturnRows(pgxmock.NewRows(columns).AddRow(3, "Admin").AddRow(4, "Sysadmin"))

		roles, err := repo.List(ctx, filter.Conditions{filter.Like("name", "adm")})

		require.NoError(t, err)
		assert.Len(t, roles, 2)
	})

	t.Run("FindByID_NotFound", func(t *testing.T) {
		db := newMockDB(t)
		repo := NewRoleRepository(db)

		db.ExpectQuery("FROM roles").WithArgs(7).WillReturnError(pgx.ErrNoRows)

		_, err := repo.FindByID(ctx, 7)

		assert.ErrorIs(t, err, apperrors.ErrRoleNotFound)
	})

	t.Run("Delete_NotFound", func(t *testing.T) {
		db := newMockDB(t)
		repo := NewRoleRepository(db)

		db.ExpectQuery("DELETE FROM roles").WithArgs(7).WillReturnError(pgx.ErrNoRows)

		_, err := repo.Delete(ctx, 7)

		assert.ErrorIs(t, err, apperrors.ErrRoleNotFound)
	})
}

func TestEventTypeRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	columns := []string{"id", "name"}

	t.Run("Create", func(t *testing.T) {
		db := newMockDB(t)
		repo := NewEventTypeRepository(db)

		db.ExpectQuery("INSERT INTO event_types").
			WithArgs("Workshop").
			WillReturnRows(pgxmock.NewRows(columns).AddRow(1, "Workshop"))

		created, err := repo.Create(ctx, &model.EventType{Name: "Workshop"})

		require.NoError(t, err)
		assert.Equal(t, &model.EventType{ID: 1, Name: "Workshop"}, created)
	})

	t.Run("Update", func(t *testing.T) {
		db := newMockDB(t)
		repo := NewEventTypeRepository(db)

		db.ExpectQuery("UPDATE event_types").
			WithArgs("Talk", 1).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(1, "Talk"))

		updated, err := repo.Update(ctx, 1, &model.EventType{Name: "Talk"})

		require.NoError(t, err)
		assert.Equal(t, "Talk", updated.Name)
	})

	t.Run("Update_NotFound", func(t *testing.T) {
		db := newMockDB(t)
		repo := NewEventTypeRepository(db)

		db.ExpectQuery("UPDATE event_types").WithArgs("Talk", 2).WillReturnError(pgx.ErrNoRows)

		_, err := repo.Update(ctx, 2, &model.EventType{Name: "Talk"})

		assert.ErrorIs(t, err, apperrors.ErrEventTypeNotFound)
	})
}
