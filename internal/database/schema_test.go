package database

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSchema(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS departments").
			WillReturnResult(pgxmock.NewResult("CREATE", 0))

		require.NoError(t, EnsureSchema(ctx, mock))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failed", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS departments").
			WillReturnError(errors.New("permission denied"))

		err = EnsureSchema(ctx, mock)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "permission denied")
	})
}

func TestSchemaDeclaresAllTables(t *testing.T) {
	for _, table := range []string{"departments", "roles", "event_types", "events", "members", "change_log"} {
		assert.Contains(t, schemaSQL, "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
	assert.Contains(t, schemaSQL, "email         TEXT NOT NULL UNIQUE")
}
