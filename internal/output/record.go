// Package output turns confirmed runs into records and writes them in one of
// the supported formats.
package output

import (
	"strconv"

	"github.com/specialistvlad/gstrings/internal/config"
	"github.com/specialistvlad/gstrings/internal/scanner"
)

// Record is one emitted string with its display metadata.
type Record struct {
	// FileName is empty when file names are not printed or the source is anonymous.
	FileName string `json:"file,omitempty" msgpack:"file,omitempty"`
	// Offset is the radix-formatted start offset, empty when no radix is configured.
	Offset string `json:"offset,omitempty" msgpack:"offset,omitempty"`
	Text   string `json:"text" msgpack:"text"`
	// Separator terminates the record in text output. Empty means a newline.
	Separator string `json:"-" msgpack:"-"`
}

// Formatter builds records according to the display options of a Config.
type Formatter struct {
	printFileName bool
	base          int
	separator     string
}

// NewFormatter returns a formatter for cfg.
func NewFormatter(cfg config.Config) *Formatter {
	return &Formatter{
		printFileName: cfg.PrintFileName,
		base:          cfg.LocRadix.Base(),
		separator:     cfg.Separator,
	}
}

// Format returns the record for a run whose rendered text is text. name is
// the source name, empty for anonymous sources such as standard input.
func (f *Formatter) Format(name string, run scanner.Run, text string) Record {
	rec := Record{Text: text, Separator: f.separator}
	if f.printFileName {
		rec.FileName = name
	}
	if f.base != 0 {
		rec.Offset = strconv.FormatInt(run.Offset, f.base)
	}
	return rec
}
