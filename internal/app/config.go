package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/gstrings/internal/config"
)

// Colour modes for the highlight unicode display.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// StdinName is the input name that selects standard input.
const StdinName = "-"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Inputs are file paths, or StdinName. Empty means standard input.
	Inputs []string
	// ProfilePaths are HCL profile files or directories, applied in order.
	ProfilePaths []string
	// Overrides take precedence over every profile.
	Overrides *config.Profile

	LogFormat string
	LogLevel  string
	// Workers bounds how many sources are scanned concurrently.
	Workers int
	// Color is one of ColorAuto, ColorAlways or ColorNever.
	Color string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Inputs) == 0 {
		cfg.Inputs = []string{StdinName}
	}
	if cfg.Workers == 0 {
		cfg.Workers = 1
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("%w: workers must be positive, got %d", config.ErrInvalidConfig, cfg.Workers)
	}
	if cfg.Color == "" {
		cfg.Color = ColorAuto
	}
	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return nil, fmt.Errorf("%w: color must be 'auto', 'always' or 'never', got %q", config.ErrInvalidConfig, cfg.Color)
	}

	stdin := 0
	for _, in := range cfg.Inputs {
		if in == "" {
			return nil, errors.New("input names cannot be empty")
		}
		if in == StdinName {
			stdin++
		}
	}
	if stdin > 1 {
		return nil, fmt.Errorf("%w: standard input can only be named once", config.ErrInvalidConfig)
	}

	return &cfg, nil
}
