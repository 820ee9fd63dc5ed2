package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-nasa-key"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.CatalogEnabled)
	assert.Empty(t, cfg.NASAAPIKey)
	assert.Equal(t, 20*time.Second, cfg.CatalogTimeout)
	assert.Equal(t, 1000, cfg.CatalogCacheSize)
	assert.Equal(t, 5, cfg.CatalogMaxPages)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("NASA_API_KEY", testAPIKey)
	t.Setenv("NEO_TIMEOUT", "5s")
	t.Setenv("NEO_CACHE_SIZE", "50")
	t.Setenv("NEO_SEARCH_MAX_PAGES", "12")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.CatalogEnabled)
	assert.Equal(t, testAPIKey, cfg.NASAAPIKey)
	assert.Equal(t, 5*time.Second, cfg.CatalogTimeout)
	assert.Equal(t, 50, cfg.CatalogCacheSize)
	assert.Equal(t, 12, cfg.CatalogMaxPages)
}

func TestLoad_APIKeyImpliesCatalogEnabled(t *testing.T) {
	t.Setenv("NASA_API_KEY", testAPIKey)

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.CatalogEnabled)
}

func TestLoad_ExplicitDisableWinsOverAPIKey(t *testing.T) {
	t.Setenv("NASA_API_KEY", testAPIKey)
	t.Setenv("NEO_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.CatalogEnabled)
}

func TestLoad_CatalogEnabledWithoutKey(t *testing.T) {
	t.Setenv("NEO_ENABLED", "true")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NASA_API_KEY")
}

func TestLoad_InvalidDurations(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"invalid shutdown timeout", "SHUTDOWN_TIMEOUT", "not-a-duration"},
		{"negative shutdown timeout", "SHUTDOWN_TIMEOUT", "-1s"},
		{"invalid catalog timeout", "NEO_TIMEOUT", "bad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoad_InvalidIntsFallBackToDefaults(t *testing.T) {
	t.Setenv("NEO_CACHE_SIZE", "-3")
	t.Setenv("NEO_SEARCH_MAX_PAGES", "zero")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.CatalogCacheSize)
	assert.Equal(t, 5, cfg.CatalogMaxPages)
}
