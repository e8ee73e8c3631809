package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 測試用較低成本的參數
var testParams = Argon2idParams{Memory: 1024, Iterations: 1, Parallelism: 1, KeyLength: 32}

func TestNewHasher(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h, err := NewHasher("0123456789")
		require.NoError(t, err)
		assert.NotNil(t, h)
	})

	t.Run("SaltTooShort", func(t *testing.T) {
		_, err := NewHasher("abc")
		assert.ErrorIs(t, err, ErrSaltTooShort)
	})
}

func TestHasher_Hash(t *testing.T) {
	h, err := NewHasherWithParams("fixed-salt-value", testParams)
	require.NoError(t, err)

	t.Run("DeterministicWithFixedSalt", func(t *testing.T) {
		assert.Equal(t, h.Hash("secret"), h.Hash("secret"))
	})

	t.Run("DoesNotContainPlaintext", func(t *testing.T) {
		hash := h.Hash("secret")
		assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=1024,t=1,p=1$"))
		assert.NotContains(t, hash, "secret")
	})

	t.Run("DifferentPasswordsDiffer", func(t *testing.T) {
		assert.NotEqual(t, h.Hash("secret"), h.Hash("Secret"))
	})

	t.Run("DifferentSaltsDiffer", func(t *testing.T) {
		other, err := NewHasherWithParams("another-salt-value", testParams)
		require.NoError(t, err)
		assert.NotEqual(t, h.Hash("secret"), other.Hash("secret"))
	})
}

func TestHasher_Verify(t *testing.T) {
	h, err := NewHasherWithParams("fixed-salt-value", testParams)
	require.NoError(t, err)
	hash := h.Hash("secret")

	t.Run("Match", func(t *testing.T) {
		ok, err := h.Verify(hash, "secret")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Mismatch", func(t *testing.T) {
		ok, err := h.Verify(hash, "wrong")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("InvalidFormat", func(t *testing.T) {
		_, err := h.Verify("plain-text", "secret")
		assert.ErrorIs(t, err, ErrInvalidPasswordHash)
	})

	t.Run("ZeroParams", func(t *testing.T) {
		for _, params := range []string{"m=1024,t=1,p=0", "m=1024,t=0,p=1", "m=0,t=1,p=1"} {
			encoded := "$argon2id$v=19$" + params + "$c2FsdA$aGFzaA"
			assert.NotPanics(t, func() {
				_, err := h.Verify(encoded, "secret")
				assert.ErrorIs(t, err, ErrInvalidPasswordHash)
			}, params)
		}
	})

	t.Run("WrongAlgorithm", func(t *testing.T) {
		_, err := h.Verify("$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA", "secret")
		assert.ErrorIs(t, err, ErrInvalidPasswordHash)
	})
}
