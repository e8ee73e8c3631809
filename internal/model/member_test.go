package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMember_JSONNeverContainsPassword(t *testing.T) {
	city := "Recife"
	m := Member{ID: 1, Email: "ana@example.com", Password: "$argon2id$hash", Name: "Ana", City: &city}

	out, err := json.Marshal(m)

	require.NoError(t, err)
	assert.NotContains(t, string(out), "password")
	assert.NotContains(t, string(out), "argon2id")
	assert.Contains(t, string(out), `"city":"Recife"`)
	assert.NotContains(t, string(out), "street")
}
