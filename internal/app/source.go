package app

import (
	"io"
	"os"
)

// stdinLabel names standard input in diagnostics.
const stdinLabel = "{standard input}"

// Source is one byte source to scan.
type Source struct {
	// Name is the name printed with each string; empty for anonymous sources.
	Name string
	open func() (io.ReadCloser, error)
}

// Label returns the name used in diagnostics.
func (s Source) Label() string {
	if s.Name == "" {
		return stdinLabel
	}
	return s.Name
}

// Open opens the source for reading.
func (s Source) Open() (io.ReadCloser, error) {
	return s.open()
}

// sources maps input names to sources, preserving order.
func (a *App) sources() []Source {
	out := make([]Source, 0, len(a.inputs))
	for _, name := range a.inputs {
		name := name
		if name == StdinName {
			out = append(out, Source{open: func() (io.ReadCloser, error) {
				return io.NopCloser(a.stdin), nil
			}})
			continue
		}
		out = append(out, Source{Name: name, open: func() (io.ReadCloser, error) {
			f, err := os.Open(name)
			if err != nil {
				return nil, err
			}
			if info, err := f.Stat(); err == nil && info.IsDir() {
				f.Close()
				return nil, errIsDirectory
			}
			return f, nil
		}})
	}
	return out
}
