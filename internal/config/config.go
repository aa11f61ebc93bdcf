// Package config loads data grid settings from a YAML file and the environment.
//
// Precedence, lowest to highest: built-in defaults, the YAML file, DATAGRID_* environment
// variables, then CLI flags (applied by the cli package).
package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"

	"github.com/rshade/datagrid/internal/logging"
	"github.com/rshade/datagrid/internal/pagination"
)

// EnvConfigPath names the environment variable holding the config file path.
const EnvConfigPath = "DATAGRID_CONFIG"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the root configuration.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Logging LoggingConfig `yaml:"logging"`
}

// GridConfig holds the grid engine settings.
type GridConfig struct {
	// PageSize is the number of rows per page.
	PageSize int `yaml:"page_size" env:"DATAGRID_PAGE_SIZE"`

	// MaxButtons bounds the number of entries in the pagination bar.
	MaxButtons int `yaml:"max_buttons" env:"DATAGRID_MAX_BUTTONS"`

	// PreservePage keeps the current page when rows are appended instead of
	// returning to page 1.
	PreservePage bool `yaml:"preserve_page" env:"DATAGRID_PRESERVE_PAGE"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"  env:"DATAGRID_LOG_LEVEL"`
	Format string `yaml:"format" env:"DATAGRID_LOG_FORMAT"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Grid: GridConfig{
			PageSize:   pagination.DefaultPageSize,
			MaxButtons: pagination.DefaultMaxButtons,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatConsole,
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when empty)
// and the environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := New()

	if path != "" {
		if err := MergeYAML(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields whose DATAGRID_* environment variable is set.
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks every setting is within its allowed range.
func (c *Config) Validate() error {
	if err := pagination.ValidatePageSize(c.Grid.PageSize); err != nil {
		return fmt.Errorf("%w: grid.page_size: %w", ErrInvalidConfig, err)
	}
	if err := pagination.ValidateMaxButtons(c.Grid.MaxButtons); err != nil {
		return fmt.Errorf("%w: grid.max_buttons: %w", ErrInvalidConfig, err)
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("%w: logging.level: unknown level %q", ErrInvalidConfig, c.Logging.Level)
	}
	switch c.Logging.Format {
	case logging.FormatJSON, logging.FormatConsole:
	default:
		return fmt.Errorf("%w: logging.format: must be %q or %q, got %q",
			ErrInvalidConfig, logging.FormatJSON, logging.FormatConsole, c.Logging.Format)
	}
	return nil
}

// Policy returns the resize policy selected by PreservePage.
func (g GridConfig) Policy() pagination.ResizePolicy {
	if g.PreservePage {
		return pagination.PreservePage
	}
	return pagination.ResetOnGrowth
}

// ToLoggingConfig converts the logging section to a logging.Config writing to out.
func (lc LoggingConfig) ToLoggingConfig(out io.Writer) logging.Config {
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: out,
	}
}
