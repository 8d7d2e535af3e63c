package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gookit/color"
	"github.com/specialistvlad/gstrings/internal/config"
	"github.com/specialistvlad/gstrings/internal/ctxlog"
	"github.com/specialistvlad/gstrings/internal/output"
	"github.com/specialistvlad/gstrings/internal/render"
	"golang.org/x/term"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	stdin    io.Reader
	logger   *slog.Logger
	scanCfg  config.Config
	writer   output.RecordWriter
	renderer *render.Renderer
	format   *output.Formatter
	inputs   []string
	workers  int
}

// NewApp is the constructor for the main application. It loads the profiles
// named in appConfig through loader, applies the overrides on top and
// validates the result; no source is touched before this succeeds.
func NewApp(stdin io.Reader, outW, errW io.Writer, appConfig *Config, loader config.Loader) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	profile := &config.Profile{}
	if len(appConfig.ProfilePaths) > 0 {
		if loader == nil {
			return nil, errors.New("profiles were requested but no profile loader is available")
		}
		loaded, err := loader.Load(ctx, appConfig.ProfilePaths...)
		if err != nil {
			return nil, fmt.Errorf("failed to load profile: %w", err)
		}
		profile.Merge(loaded)
		logger.Debug("Profiles loaded.", "paths", appConfig.ProfilePaths)
	}
	profile.Merge(appConfig.Overrides)

	scanCfg, err := profile.Apply(config.NewBuilder()).Build()
	if err != nil {
		return nil, err
	}

	format := output.FormatText
	if profile.Format != nil {
		format = *profile.Format
	}
	writer, err := output.NewWriter(format, outW, scanCfg.Table())
	if err != nil {
		return nil, err
	}

	highlight := scanCfg.UnicodeDisplay == config.Highlight && supportsHighlight(outW, appConfig.Color)
	logger.Debug("Configuration resolved.",
		"encoding", scanCfg.CharEncoding.String(),
		"min_length", scanCfg.MinSeqLen,
		"radix", scanCfg.LocRadix.String(),
		"unicode", scanCfg.UnicodeDisplay.String(),
		"whitespace", scanCfg.Whitespace,
		"charset", scanCfg.Charset,
		"format", format,
		"highlight", highlight,
	)

	if stdin == nil {
		stdin = os.Stdin
	}
	return &App{
		stdin:    stdin,
		logger:   logger,
		scanCfg:  scanCfg,
		writer:   writer,
		renderer: render.ForConfig(scanCfg, highlight),
		format:   output.NewFormatter(scanCfg),
		inputs:   appConfig.Inputs,
		workers:  appConfig.Workers,
	}, nil
}

// ScanConfig returns the effective scan configuration.
func (a *App) ScanConfig() config.Config {
	return a.scanCfg
}

// supportsHighlight decides whether terminal highlighting may be emitted.
func supportsHighlight(outW io.Writer, mode string) bool {
	switch mode {
	case ColorAlways:
		color.ForceOpenColor()
		return true
	case ColorNever:
		return false
	}
	f, ok := outW.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false
	}
	return color.SupportColor()
}
