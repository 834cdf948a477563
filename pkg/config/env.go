// Package config provides environment variable helpers with defaults.
package config

import (
	"log/slog"
	"os"
	"strconv"
)

// GetEnvString returns the value of key, or defaultValue when it is unset or empty.
//
// Example:
//
//	format := GetEnvString("LOG_FORMAT", "text")
func GetEnvString(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvBool parses key with strconv.ParseBool.
//
// An unset or empty variable yields defaultValue. A malformed one also yields
// defaultValue and logs a warning.
//
// Example:
//
//	dump := GetEnvBool("METRICS_DUMP", false)
func GetEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		slog.Warn("invalid boolean value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.Bool("default", defaultValue))
		return defaultValue
	}
	return value
}
