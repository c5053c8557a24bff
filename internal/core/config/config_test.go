package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	"APP_ENV",
	"LOG_LEVEL",
	"SERVER_PORT",
	"HIDE_INTERNAL_ERRORS",
	"ORDER_API_URL",
	"ORDER_API_KEY",
	"ORDER_API_TIMEOUT",
	"REDIS_URL",
	"ORDER_CACHE_TTL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allKeys {
		os.Unsetenv(key)
	}
	t.Cleanup(func() {
		for _, key := range allKeys {
			os.Unsetenv(key)
		}
	})
}

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.False(t, cfg.HideInternalErrors)
	assert.Equal(t, 10*time.Second, cfg.OrderAPI.Timeout)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.False(t, cfg.Cache.Enabled())
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	clearEnv(t)
	os.Setenv("APP_ENV", "production")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("HIDE_INTERNAL_ERRORS", "true")
	os.Setenv("ORDER_API_URL", "https://orders.example.com/v1/")
	os.Setenv("ORDER_API_KEY", "key_123")
	os.Setenv("ORDER_API_TIMEOUT", "3s")
	os.Setenv("REDIS_URL", "redis://localhost:6379/0")
	os.Setenv("ORDER_CACHE_TTL", "1m")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.True(t, cfg.HideInternalErrors)
	assert.Equal(t, "https://orders.example.com/v1/", cfg.OrderAPI.URL)
	assert.Equal(t, "key_123", cfg.OrderAPI.APIKey)
	assert.Equal(t, 3*time.Second, cfg.OrderAPI.Timeout)
	assert.Empty(t, cfg.OrderAPI.Missing())
	assert.True(t, cfg.Cache.Enabled())
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	clearEnv(t)
	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
SERVER_PORT=7070
ORDER_API_URL=https://staging.example.com/orders
ORDER_API_KEY=key_staging
`)
	err := os.WriteFile(".env", content, 0644)
	require.NoError(t, err)
	defer os.Remove(".env")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.ServerPort)
	assert.Equal(t, "https://staging.example.com/orders", cfg.OrderAPI.URL)
	assert.Equal(t, "key_staging", cfg.OrderAPI.APIKey)
}

// TestLoad_MissingOrderAPI verifies that absent upstream settings load but are reported as missing.
func TestLoad_MissingOrderAPI(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(".")
	require.NoError(t, err)
	assert.Equal(t, []string{"ORDER_API_URL", "ORDER_API_KEY"}, cfg.OrderAPI.Missing())

	os.Setenv("ORDER_API_URL", "https://orders.example.com")
	cfg, err = Load(".")
	require.NoError(t, err)
	assert.Equal(t, []string{"ORDER_API_KEY"}, cfg.OrderAPI.Missing())
}

// TestLoad_InvalidTimeout verifies that a negative timeout is rejected.
func TestLoad_InvalidTimeout(t *testing.T) {
	clearEnv(t)
	os.Setenv("ORDER_API_TIMEOUT", "-1s")

	cfg, err := Load(".")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "ORDER_API_TIMEOUT")
}
