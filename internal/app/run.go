package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/gstrings/internal/ctxlog"
	"github.com/specialistvlad/gstrings/internal/output"
	"golang.org/x/sync/errgroup"
)

// Run scans every source and writes the records. Records of one source are
// always written in input order, and sources in the order they were given.
// A source that fails is reported and skipped; the joined source errors are
// returned once all sources have been processed.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "sources", len(a.inputs), "workers", a.workers)

	sources := a.sources()
	var (
		failures []error
		err      error
	)
	if a.workers > 1 && len(sources) > 1 {
		failures, err = a.runConcurrent(ctx, sources)
	} else {
		failures, err = a.runSequential(ctx, sources)
	}
	if flushErr := a.writer.Flush(); err == nil && flushErr != nil {
		err = fmt.Errorf("failed to write output: %w", flushErr)
	}
	if err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.", "failed_sources", len(failures))
	return errors.Join(failures...)
}

// runSequential streams records straight to the writer.
func (a *App) runSequential(ctx context.Context, sources []Source) ([]error, error) {
	var failures []error
	for _, src := range sources {
		err := a.scanSource(ctx, src, a.writer.Write)
		if err == nil {
			continue
		}
		var srcErr *SourceError
		if !errors.As(err, &srcErr) {
			return failures, err
		}
		a.logger.Error("Source failed.", "source", src.Label(), "error", srcErr.Err)
		failures = append(failures, err)
	}
	return failures, nil
}

// sourceResult buffers the records of one source scanned concurrently.
type sourceResult struct {
	records []output.Record
	err     error
	done    chan struct{}
}

// runConcurrent scans up to a.workers sources at once. Each source's records
// are buffered and flushed as a unit, in source order, once it completes.
func (a *App) runConcurrent(ctx context.Context, sources []Source) ([]error, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]*sourceResult, len(sources))
	for i := range results {
		results[i] = &sourceResult{done: make(chan struct{})}
	}

	var g errgroup.Group
	g.SetLimit(a.workers)
	launched := make(chan struct{})
	go func() {
		defer close(launched)
		for i, src := range sources {
			src := src
			res := results[i]
			g.Go(func() error {
				defer close(res.done)
				res.err = a.scanSource(ctx, src, func(rec output.Record) error {
					res.records = append(res.records, rec)
					return nil
				})
				return nil
			})
		}
	}()
	wait := func() {
		<-launched
		_ = g.Wait()
	}

	var failures []error
	for i, res := range results {
		<-res.done
		for _, rec := range res.records {
			if err := a.writer.Write(rec); err != nil {
				cancel()
				wait()
				return failures, fmt.Errorf("failed to write output: %w", err)
			}
		}
		res.records = nil
		if res.err == nil {
			continue
		}
		var srcErr *SourceError
		if !errors.As(res.err, &srcErr) {
			cancel()
			wait()
			return failures, res.err
		}
		a.logger.Error("Source failed.", "source", sources[i].Label(), "error", srcErr.Err)
		failures = append(failures, res.err)
	}
	wait()
	return failures, nil
}
