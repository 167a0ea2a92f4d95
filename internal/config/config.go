// Package config defines service configuration and its loading hooks.
package config

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// ShutdownTimeout bounds graceful HTTP shutdown.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// MaxBodyBytes caps the size of a metrics request body.
	MaxBodyBytes int64 `koanf:"max_body_bytes"`

	// Theme is the card theme used when a request names none.
	Theme string `koanf:"theme"`

	// Card layout defaults; requests may override them.
	PanelSize    int  `koanf:"panel_size"`
	MaxColumn    int  `koanf:"max_column"`
	MaxRow       int  `koanf:"max_row"`
	MarginWidth  int  `koanf:"margin_w"`
	MarginHeight int  `koanf:"margin_h"`
	NoBackground bool `koanf:"no_background"`
	NoFrame      bool `koanf:"no_frame"`
}

// New creates a Config holding the defaults.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:        "info",
		LogFormat:       "text",
		Addr:            ":9080",
		ShutdownTimeout: 10 * time.Second,
		MaxBodyBytes:    1 << 20,
		Theme:           "default",
		PanelSize:       110,
		MaxColumn:       8,
		MaxRow:          3,
	}
}

// Validate reports the first field holding an unusable value.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.LogFormat != "text" && c.LogFormat != "json":
		return fmt.Errorf("%w: log_format %q", ErrInvalidConfig, c.LogFormat)
	case c.ShutdownTimeout <= 0:
		return fmt.Errorf("%w: shutdown_timeout must be positive", ErrInvalidConfig)
	case c.MaxBodyBytes <= 0:
		return fmt.Errorf("%w: max_body_bytes must be positive", ErrInvalidConfig)
	case c.PanelSize <= 0:
		return fmt.Errorf("%w: panel_size must be positive", ErrInvalidConfig)
	case c.MaxColumn == 0 || c.MaxColumn < -1:
		return fmt.Errorf("%w: max_column must be positive or -1", ErrInvalidConfig)
	case c.MaxRow <= 0:
		return fmt.Errorf("%w: max_row must be positive", ErrInvalidConfig)
	case c.MarginWidth < 0 || c.MarginHeight < 0:
		return fmt.Errorf("%w: margins must not be negative", ErrInvalidConfig)
	}
	return nil
}
