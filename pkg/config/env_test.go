package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		set      bool
		expected string
	}{
		{"unset uses default", "", false, "text"},
		{"empty uses default", "", true, "text"},
		{"set value wins", "json", true, "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv("TEST_ENV_STRING", tt.value)
			}
			assert.Equal(t, tt.expected, GetEnvString("TEST_ENV_STRING", "text"))
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		def      bool
		expected bool
	}{
		{"empty uses default", "", true, true},
		{"true", "true", false, true},
		{"one", "1", false, true},
		{"false", "false", true, false},
		{"upper case", "TRUE", false, true},
		{"malformed uses default", "yes please", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_ENV_BOOL", tt.value)
			assert.Equal(t, tt.expected, GetEnvBool("TEST_ENV_BOOL", tt.def))
		})
	}
}
