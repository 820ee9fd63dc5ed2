// Package config loads service settings from environment variables.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// NASA NEO catalog configuration.
	NASAAPIKey       string
	CatalogEnabled   bool
	CatalogTimeout   time.Duration
	CatalogCacheSize int
	CatalogMaxPages  int
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	catalogTimeout, err := parseDuration("NEO_TIMEOUT", "20s")
	if err != nil {
		return nil, err
	}

	apiKey := os.Getenv("NASA_API_KEY")
	catalogEnabled := apiKey != ""
	if v := os.Getenv("NEO_ENABLED"); v != "" {
		catalogEnabled = v == "true"
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		NASAAPIKey:       apiKey,
		CatalogEnabled:   catalogEnabled,
		CatalogTimeout:   catalogTimeout,
		CatalogCacheSize: parsePositiveInt("NEO_CACHE_SIZE", 1000),
		CatalogMaxPages:  parsePositiveInt("NEO_SEARCH_MAX_PAGES", 5),
	}

	if cfg.HTTPAddr == "" {
		return nil, errors.New("HTTP_ADDR is required")
	}
	if cfg.CatalogEnabled && cfg.NASAAPIKey == "" {
		return nil, errors.New("NEO_ENABLED is true but NASA_API_KEY is not set")
	}

	return cfg, nil
}

// LoggerLevel implements observability.LoggerConfig.
func (c *Config) LoggerLevel() string { return c.LogLevel }

// LoggerFormat implements observability.LoggerConfig.
func (c *Config) LoggerFormat() string { return c.LogFormat }

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, def))
	if err != nil || d <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return d, nil
}

func parsePositiveInt(key string, def int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return def
}
