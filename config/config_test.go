package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HOST", "")
	t.Setenv("PORT", "")
	t.Setenv("SALT", "")
	t.Setenv("REDIS_ENABLED", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg := LoadConfig()

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "0.0.0.0:3000", cfg.Addr())
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("SALT", "pepper-and-salt")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")

	cfg := LoadConfig()

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "pepper-and-salt", cfg.Security.Salt)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
}

func TestConfig_Validate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		require.NoError(t, LoadTestConfig().Validate())
	})

	t.Run("MissingSalt", func(t *testing.T) {
		cfg := LoadTestConfig()
		cfg.Security.Salt = ""
		assert.EqualError(t, cfg.Validate(), "SALT is required")
	})

	t.Run("ShortSalt", func(t *testing.T) {
		cfg := LoadTestConfig()
		cfg.Security.Salt = "short"
		assert.Error(t, cfg.Validate())
	})

	t.Run("NonNumericPort", func(t *testing.T) {
		cfg := LoadTestConfig()
		cfg.Server.Port = "http"
		assert.Error(t, cfg.Validate())
	})
}

func TestConfig_Addr(t *testing.T) {
	cfg := LoadTestConfig()
	assert.Equal(t, "127.0.0.1:3000", cfg.Addr())

	cfg.Server.Host = "::1"
	assert.Equal(t, "[::1]:3000", cfg.Addr())
}
