package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Fetch   FetchConfig
	Primary PrimaryConfig
	Log     LogConfig
}

// ServerConfig controls the HTTP server (ladled only).
type ServerConfig struct {
	Host string // default: "0.0.0.0"
	Port int    // default: 8080
	Mode string // "debug", "release", "test"; default: "release"
}

// FetchConfig controls the fallback page fetch.
type FetchConfig struct {
	// Timeout bounds the single GET including body read.
	Timeout time.Duration // default: 30s

	// UserAgent overrides the default Chrome user agent.
	UserAgent string
}

// PrimaryConfig controls the layer-1 structured-recipe library.
type PrimaryConfig struct {
	// Enabled toggles the primary attempt. Disabling it sends every URL
	// straight to the selector cascade.
	Enabled bool // default: true
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "json"
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host: envOr("LADLE_HOST", "0.0.0.0"),
			Port: envIntOr("LADLE_PORT", 8080),
			Mode: envOr("LADLE_MODE", "release"),
		},
		Fetch: FetchConfig{
			Timeout:   envDurationOr("LADLE_TIMEOUT", 30*time.Second),
			UserAgent: os.Getenv("LADLE_USER_AGENT"),
		},
		Primary: PrimaryConfig{
			Enabled: envBoolOr("LADLE_PRIMARY_ENABLED", true),
		},
		Log: LogConfig{
			Level:  envOr("LADLE_LOG_LEVEL", "info"),
			Format: envOr("LADLE_LOG_FORMAT", "json"),
		},
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
