package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/gstrings/internal/ctxlog"
	"github.com/specialistvlad/gstrings/internal/output"
	"github.com/specialistvlad/gstrings/internal/scanner"
)

// scanSource runs the extraction pipeline over one source, handing every
// record to emit in input order. Open and read failures are returned as a
// *SourceError; errors from emit and context cancellation are returned as-is.
func (a *App) scanSource(ctx context.Context, src Source, emit func(output.Record) error) error {
	ctx, logger := ctxlog.With(ctx, "source", src.Label())
	logger.Debug("Scanning source.")

	rc, err := src.Open()
	if err != nil {
		return &SourceError{Source: src.Label(), Err: err}
	}
	defer rc.Close()

	if a.scanCfg.DataOnly {
		logger.Debug("Data-only scan requested; no section filter is available, so the whole source is scanned.")
	}

	s := scanner.New(rc, a.scanCfg)
	count := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		run, err := s.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logger.Debug("Source read failed.", "records", count, "error", err)
			return &SourceError{Source: src.Label(), Err: err}
		}
		rec := a.format.Format(src.Name, run, a.renderer.Render(run.Units))
		if err := emit(rec); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		count++
	}

	logger.Debug("Source scanned.", "records", count)
	return nil
}
