package app

import (
	"errors"
	"fmt"
)

// SourceError reports a source that could not be opened or read. Only that
// source is abandoned; the others are still scanned.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

var errIsDirectory = errors.New("is a directory")
