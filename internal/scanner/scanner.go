// Package scanner finds the printable runs of a byte source: it drives the
// code unit reader, the classifier and the run accumulator in one pass.
package scanner

import (
	"errors"
	"io"

	"github.com/specialistvlad/gstrings/internal/classify"
	"github.com/specialistvlad/gstrings/internal/codeunit"
	"github.com/specialistvlad/gstrings/internal/config"
)

// Scanner yields the confirmed runs of one source in input order. It is
// single-use.
type Scanner struct {
	units    *codeunit.Reader
	classify classify.Classifier
	acc      *Accumulator
	err      error
}

// New returns a scanner over r for cfg.
func New(r io.Reader, cfg config.Config) *Scanner {
	return &Scanner{
		units:    codeunit.NewReader(r, cfg.CharEncoding),
		classify: classify.ForConfig(cfg),
		acc:      NewAccumulator(cfg.EffectiveMinSeqLen()),
	}
}

// Next returns the next confirmed run. It returns io.EOF after the last run,
// or a *ReadError if the source failed.
func (s *Scanner) Next() (Run, error) {
	if s.err != nil {
		return Run{}, s.err
	}
	for {
		u, err := s.units.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.err = io.EOF
				if run, ok := s.acc.End(); ok {
					return run, nil
				}
				return Run{}, io.EOF
			}
			s.acc.Reset()
			s.err = &ReadError{Offset: s.units.Offset(), Err: err}
			return Run{}, s.err
		}
		if run, ok := s.acc.Step(u, s.classify.Printable(u.Value)); ok {
			return run, nil
		}
	}
}

// All drains the scanner, returning the runs found before any error.
func (s *Scanner) All() ([]Run, error) {
	var runs []Run
	for {
		run, err := s.Next()
		if errors.Is(err, io.EOF) {
			return runs, nil
		}
		if err != nil {
			return runs, err
		}
		runs = append(runs, run)
	}
}
