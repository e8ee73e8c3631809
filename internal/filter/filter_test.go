package filter

import (
	"testing"
	"time"

	apperrors "member-events-api/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testColumns = map[string]string{
	"name":        "d.name",
	"datetime":    "e.datetime",
	"eventTypeId": "e.event_type_id",
}

func TestConditions_Where(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		where, args, err := Conditions{}.Where(testColumns, 1)

		require.NoError(t, err)
		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("Contains", func(t *testing.T) {
		where, args, err := Conditions{Like("name", "Eng")}.Where(testColumns, 1)

		require.NoError(t, err)
		assert.Equal(t, "strpos(lower(d.name), lower($1)) > 0", where)
		assert.Equal(t, []any{"Eng"}, args)
	})

	t.Run("AllKindsConjoinedInOrder", func(t *testing.T) {
		day := time.Date(2024, 5, 25, 0, 0, 0, 0, time.UTC)
		conds := Conditions{
			Like("name", "talk"),
			OnDay("datetime", day),
			Eq("eventTypeId", 3),
		}

		where, args, err := conds.Where(testColumns, 1)

		require.NoError(t, err)
		assert.Equal(t,
			"strpos(lower(d.name), lower($1)) > 0 AND e.datetime >= $2 AND e.datetime < $3 AND e.event_type_id = $4",
			where)
		assert.Equal(t, []any{"talk", day, day.AddDate(0, 0, 1), 3}, args)
	})

	t.Run("ArgPosOffset", func(t *testing.T) {
		where, _, err := Conditions{Eq("eventTypeId", 1)}.Where(testColumns, 5)

		require.NoError(t, err)
		assert.Equal(t, "e.event_type_id = $5", where)
	})

	t.Run("UnknownField", func(t *testing.T) {
		_, _, err := Conditions{Like("password", "x")}.Where(testColumns, 1)

		assert.ErrorIs(t, err, apperrors.ErrUnknownFilterField)
	})

	t.Run("UnknownKind", func(t *testing.T) {
		_, _, err := Conditions{{Field: "name", Kind: Kind(42)}}.Where(testColumns, 1)

		assert.Error(t, err)
	})
}

func TestConditions_Apply(t *testing.T) {
	t.Run("NoConditions", func(t *testing.T) {
		query, args, err := Conditions(nil).Apply("SELECT id FROM departments d", testColumns, "d.id")

		require.NoError(t, err)
		assert.Equal(t, "SELECT id FROM departments d\nORDER BY d.id", query)
		assert.Empty(t, args)
	})

	t.Run("WithConditions", func(t *testing.T) {
		query, args, err := Conditions{Like("name", "x")}.Apply("SELECT id FROM departments d", testColumns, "")

		require.NoError(t, err)
		assert.Equal(t, "SELECT id FROM departments d\nWHERE strpos(lower(d.name), lower($1)) > 0", query)
		assert.Equal(t, []any{"x"}, args)
	})
}

func TestOnDay(t *testing.T) {
	at := time.Date(2024, 5, 25, 10, 30, 0, 0, time.UTC)

	c := OnDay("datetime", at)

	assert.Equal(t, DateRange, c.Kind)
	assert.Equal(t, time.Date(2024, 5, 25, 0, 0, 0, 0, time.UTC), c.From)
	assert.Equal(t, time.Date(2024, 5, 26, 0, 0, 0, 0, time.UTC), c.To)
}

func TestParseDay(t *testing.T) {
	t.Run("DateOnly", func(t *testing.T) {
		d, err := ParseDay("2024-05-25")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 5, 25, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("RFC3339TruncatedToDay", func(t *testing.T) {
		d, err := ParseDay("2024-05-25T22:15:00Z")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 5, 25, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := ParseDay("yesterday")
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "equals", Equals.String())
	assert.Equal(t, "contains", Contains.String())
	assert.Equal(t, "date_range", DateRange.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
