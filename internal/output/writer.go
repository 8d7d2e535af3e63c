package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/specialistvlad/gstrings/internal/config"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/text/encoding/charmap"
)

// Supported output formats.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
)

// RecordWriter writes records to a destination in order.
type RecordWriter interface {
	Write(rec Record) error
	// Flush pushes buffered output to the destination.
	Flush() error
}

// NewWriter returns the writer for format. table is the single-byte
// character set of the scan, if any; only the JSON writer uses it.
func NewWriter(format string, w io.Writer, table *charmap.Charmap) (RecordWriter, error) {
	switch format {
	case "", FormatText:
		return NewTextWriter(w), nil
	case FormatJSON:
		return NewJSONWriter(w, table), nil
	case FormatMsgpack:
		return NewMsgpackWriter(w), nil
	}
	return nil, fmt.Errorf("%w: unknown output format %q (want one of text, json, msgpack)", config.ErrInvalidConfig, format)
}

// offsetWidth is the column width offsets are right-aligned to.
const offsetWidth = 7

// TextWriter writes records as "[name: ][offset ]text" followed by the
// record separator, or a newline when the separator is empty.
type TextWriter struct {
	w *bufio.Writer
}

// NewTextWriter returns a buffered TextWriter on w.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w)}
}

// Write formats rec. It returns the first error of the destination, if any.
func (t *TextWriter) Write(rec Record) error {
	if rec.FileName != "" {
		t.w.WriteString(rec.FileName)
		t.w.WriteString(": ")
	}
	if rec.Offset != "" {
		fmt.Fprintf(t.w, "%*s ", offsetWidth, rec.Offset)
	}
	t.w.WriteString(rec.Text)
	if rec.Separator == "" {
		t.w.WriteByte('\n')
	} else {
		t.w.WriteString(rec.Separator)
	}
	// bufio.Writer keeps the first error; report it as soon as it happens.
	_, err := t.w.Write(nil)
	return err
}

// Flush writes any buffered records to the destination.
func (t *TextWriter) Flush() error {
	return t.w.Flush()
}

// JSONWriter writes one JSON object per line. JSON strings are UTF-8, so
// bytes that are not valid UTF-8 are decoded through the scan's single-byte
// character set, or as ISO-8859-1 when none is configured.
type JSONWriter struct {
	w     *bufio.Writer
	enc   *json.Encoder
	table *charmap.Charmap
}

// NewJSONWriter returns a buffered JSONWriter on w. A nil table means
// ISO-8859-1.
func NewJSONWriter(w io.Writer, table *charmap.Charmap) *JSONWriter {
	if table == nil {
		table = charmap.ISO8859_1
	}
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	return &JSONWriter{w: bw, enc: enc, table: table}
}

// Write encodes rec as one line.
func (j *JSONWriter) Write(rec Record) error {
	rec.FileName = toUTF8(rec.FileName, j.table)
	rec.Text = toUTF8(rec.Text, j.table)
	return j.enc.Encode(rec)
}

// Flush writes any buffered records to the destination.
func (j *JSONWriter) Flush() error {
	return j.w.Flush()
}

// MsgpackWriter writes a stream of MessagePack maps.
type MsgpackWriter struct {
	w   *bufio.Writer
	enc *msgpack.Encoder
}

// NewMsgpackWriter returns a buffered MsgpackWriter on w. Text is written as
// raw msgpack strings, byte for byte.
func NewMsgpackWriter(w io.Writer) *MsgpackWriter {
	bw := bufio.NewWriter(w)
	return &MsgpackWriter{w: bw, enc: msgpack.NewEncoder(bw)}
}

// Write encodes rec as one map.
func (m *MsgpackWriter) Write(rec Record) error {
	return m.enc.Encode(rec)
}

// Flush writes any buffered records to the destination.
func (m *MsgpackWriter) Flush() error {
	return m.w.Flush()
}

// toUTF8 keeps valid UTF-8 sequences of s and decodes every other byte
// through table.
func toUTF8(s string, table *charmap.Charmap) string {
	if utf8.ValidString(s) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + len(s)/2)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			sb.WriteRune(table.DecodeByte(s[i]))
		} else {
			sb.WriteString(s[i : i+size])
		}
		i += size
	}
	return sb.String()
}
