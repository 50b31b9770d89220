// Package config handles loading and validating runtime configuration for the Soccer Data API.
// Configuration values (the listen port, database connection string, log level, etc.) are read
// from the environment rather than being hardcoded. This follows the "12-factor app" methodology:
// the same binary runs locally and in production, and only the environment changes.
//
// Values are layered, lowest precedence first:
//  1. defaults (see Default)
//  2. an optional YAML file named by the CONFIG_FILE environment variable
//  3. environment variables (PORT, DATABASE_URL, ...), including any loaded from a .env file
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

// Defaults used when neither the config file nor the environment provide a value.
const (
	DefaultPort         = 8000
	DefaultEnv          = "development"
	DefaultLogLevel     = "info"
	DefaultProbeTimeout = 5 * time.Second
)

// Config holds all runtime configuration values for the application.
// The koanf tags name the keys used in the YAML file; environment variables map onto the same
// keys by lowercasing (PORT -> port, DATABASE_URL -> database_url).
type Config struct {
	Port         int           `koanf:"port"`          // TCP port the HTTP server listens on (all interfaces)
	DatabaseURL  string        `koanf:"database_url"`  // PostgreSQL connection string; empty means "no database module"
	DatabaseName string        `koanf:"database_name"` // Optional display name for the database
	Env          string        `koanf:"env"`           // "development", "staging", or "production"
	LogLevel     string        `koanf:"log_level"`     // trace, debug, info, warn, error
	ProbeTimeout time.Duration `koanf:"probe_timeout"` // Upper bound on the /test database probe, e.g. "5s"
}

// Default returns a Config populated with every default value.
func Default() *Config {
	return &Config{
		Port:         DefaultPort,
		Env:          DefaultEnv,
		LogLevel:     DefaultLogLevel,
		ProbeTimeout: DefaultProbeTimeout,
	}
}

// Addr returns the listen address, bound to all network interfaces.
func (c *Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}

// IsProduction reports whether the service runs in the production environment.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate checks that the loaded values are usable.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.ProbeTimeout <= 0 {
		return errors.New("probe_timeout must be positive")
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLogLevel converts a level name into a fiber log level.
// Accepts trace, debug, info, warn/warning and error (case-insensitive). Empty means info.
func ParseLogLevel(level string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return log.LevelTrace, nil
	case "debug":
		return log.LevelDebug, nil
	case "", "info":
		return log.LevelInfo, nil
	case "warn", "warning":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	default:
		return log.LevelInfo, fmt.Errorf("unknown log level: %s", level)
	}
}
