package scanner

import "fmt"

// ReadError reports a failure of the byte source. The scan of that source
// stops; the run in progress at the time is discarded.
type ReadError struct {
	Offset int64
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("scan aborted near offset %d: %v", e.Offset, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
