// Package config loads the application configuration from the environment.
package config

import (
	"fmt"
	"strings"

	envconfig "publishing-graph/pkg/config"
)

// AppConfig holds the settings of the publishing demo binary.
type AppConfig struct {
	// LogLevel is one of debug, info, warn, error. Default: "info"
	LogLevel string

	// LogFormat is "json" or "text". Default: "text"
	LogFormat string

	// MetricsDump logs every gathered Prometheus metric family before exit.
	// Default: false
	MetricsDump bool
}

// LoadApp reads LOG_LEVEL, LOG_FORMAT and METRICS_DUMP.
func LoadApp() (*AppConfig, error) {
	cfg := &AppConfig{
		LogLevel:    strings.ToLower(envconfig.GetEnvString("LOG_LEVEL", "info")),
		LogFormat:   strings.ToLower(envconfig.GetEnvString("LOG_FORMAT", "text")),
		MetricsDump: envconfig.GetEnvBool("METRICS_DUMP", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid app configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks configuration correctness.
func (c *AppConfig) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error; got %q", c.LogLevel)
	}

	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text; got %q", c.LogFormat)
	}

	return nil
}
