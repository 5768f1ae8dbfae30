// Package config loads pageflip configuration from YAML with
// defaults-then-overlay semantics.
package config

import (
	"os"
	"path/filepath"
)

// CurrentSchemaVersion is the config schema this binary writes and
// understands. Files from any 1.x binary are accepted.
const CurrentSchemaVersion = "1.0.0"

// PaginationConfig holds the default windowing parameters used by the
// CLI and TUI when no flags are given.
type PaginationConfig struct {
	// PageSize is the number of items per page; minimum 1.
	PageSize int `yaml:"page_size"`

	// InnerWindow is the number of pages shown on each side of the
	// current page in elided page bars.
	InnerWindow int `yaml:"inner_window"`

	// OuterWindow is the number of pages pinned to each end of the
	// page range in elided page bars.
	OuterWindow int `yaml:"outer_window"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config is the root configuration.
type Config struct {
	SchemaVersion string           `yaml:"schema_version"`
	Pagination    PaginationConfig `yaml:"pagination"`
	Logging       LoggingConfig    `yaml:"logging"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		SchemaVersion: CurrentSchemaVersion,
		Pagination: PaginationConfig{
			PageSize:    10,
			InnerWindow: 1,
			OuterWindow: 1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Normalize coerces out-of-range values instead of rejecting them,
// mirroring the core's clamp-don't-error contract.
func (c *Config) Normalize() {
	if c.Pagination.PageSize < 1 {
		c.Pagination.PageSize = 1
	}
	if c.Pagination.InnerWindow < 0 {
		c.Pagination.InnerWindow = 0
	}
	if c.Pagination.OuterWindow < 0 {
		c.Pagination.OuterWindow = 0
	}
}

// EnvConfigPath overrides the config file location when set.
const EnvConfigPath = "PAGEFLIP_CONFIG"

// Path returns the config file location: $PAGEFLIP_CONFIG when set,
// otherwise ~/.pageflip/config.yaml.
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".pageflip", "config.yaml")
	}
	return filepath.Join(home, ".pageflip", "config.yaml")
}
