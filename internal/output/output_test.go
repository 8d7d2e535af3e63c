package output

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/gstrings/internal/config"
	"github.com/specialistvlad/gstrings/internal/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/text/encoding/charmap"
)

func TestFormatter_Offsets(t *testing.T) {
	run := scanner.Run{Offset: 255, Units: []uint32{'x'}}

	tests := []struct {
		radix config.LocationRadix
		want  string
	}{
		{config.RadixNone, ""},
		{config.RadixOctal, "377"},
		{config.RadixDecimal, "255"},
		{config.RadixHex, "ff"},
	}
	for _, tt := range tests {
		t.Run(tt.radix.String(), func(t *testing.T) {
			cfg, err := config.NewBuilder().LocRadix(tt.radix).Build()
			require.NoError(t, err)
			rec := NewFormatter(cfg).Format("a.bin", run, "x")
			assert.Equal(t, tt.want, rec.Offset)
		})
	}
}

func TestFormatter_FileName(t *testing.T) {
	run := scanner.Run{Offset: 0}

	off, err := config.NewBuilder().Build()
	require.NoError(t, err)
	assert.Empty(t, NewFormatter(off).Format("a.bin", run, "t").FileName)

	on, err := config.NewBuilder().PrintFileName(true).Separator("|").Build()
	require.NoError(t, err)
	f := NewFormatter(on)
	want := Record{FileName: "a.bin", Text: "t", Separator: "|"}
	if diff := cmp.Diff(want, f.Format("a.bin", run, "t")); diff != "" {
		t.Errorf("Format() mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, f.Format("", run, "t").FileName, "anonymous sources have no name")
}

func TestTextWriter_Layout(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf)

	require.NoError(t, w.Write(Record{Text: "plain"}))
	require.NoError(t, w.Write(Record{Offset: "0", Text: "xxxx"}))
	require.NoError(t, w.Write(Record{FileName: "f", Offset: "1a2b", Text: "both"}))
	require.NoError(t, w.Write(Record{Text: "a", Separator: "--"}))
	require.NoError(t, w.Write(Record{Text: "b", Separator: "--"}))
	require.NoError(t, w.Flush())

	want := "plain\n" +
		"      0 xxxx\n" +
		"f:    1a2b both\n" +
		"a--b--"
	assert.Equal(t, want, buf.String())
}

type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write(p []byte) (int, error) { return 0, errDiskFull }

func TestTextWriter_ReportsDestinationError(t *testing.T) {
	w := NewTextWriter(failingWriter{})
	big := strings.Repeat("x", 8192)
	err := w.Write(Record{Text: big})
	assert.ErrorIs(t, err, errDiskFull)
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(FormatJSON, &buf, nil)
	require.NoError(t, err)

	require.NoError(t, w.Write(Record{FileName: "f", Offset: "10", Text: "<tag>", Separator: "|"}))
	require.NoError(t, w.Write(Record{Text: "bare"}))
	require.NoError(t, w.Flush())

	want := `{"file":"f","offset":"10","text":"<tag>"}` + "\n" + `{"text":"bare"}` + "\n"
	assert.Equal(t, want, buf.String())
}

func TestMsgpackWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(FormatMsgpack, &buf, nil)
	require.NoError(t, err)

	records := []Record{
		{FileName: "f", Offset: "7", Text: "one"},
		{Text: "two"},
	}
	for _, rec := range records {
		require.NoError(t, w.Write(rec))
	}
	require.NoError(t, w.Flush())

	dec := msgpack.NewDecoder(&buf)
	var got []Record
	for {
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			require.ErrorIs(t, err, io.EOF)
			break
		}
		got = append(got, rec)
	}
	if diff := cmp.Diff(records, got); diff != "" {
		t.Errorf("decoded records mismatch (-want +got):\n%s", diff)
	}
}

func TestNewWriter_UnknownFormat(t *testing.T) {
	_, err := NewWriter("yaml", io.Discard, nil)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestJSONWriter_NonUTF8Text(t *testing.T) {
	tests := []struct {
		name  string
		table *charmap.Charmap
		text  string
		want  string
	}{
		{"latin-1 by default", nil, "caf\xe9s", `{"text":"cafés"}`},
		{"configured charset", charmap.Windows1252, "\x805", `{"text":"€5"}`},
		{"valid utf-8 untouched", charmap.Windows1252, "caf\xc3\xa9", `{"text":"café"}`},
		{"mixed", nil, "\xc3\xa9\xff", `{"text":"éÿ"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w, err := NewWriter(FormatJSON, &buf, tt.table)
			require.NoError(t, err)

			require.NoError(t, w.Write(Record{Text: tt.text}))
			require.NoError(t, w.Flush())
			assert.Equal(t, tt.want+"\n", buf.String())
			assert.NotContains(t, buf.String(), `\ufffd`)
		})
	}
}

func TestTextWriter_SeparatorFollowsEveryRecord(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf)

	require.NoError(t, w.Write(Record{Text: "ab", Separator: "|"}))
	require.NoError(t, w.Write(Record{Text: "cd", Separator: "|"}))
	require.NoError(t, w.Flush())

	assert.Equal(t, "ab|cd|", buf.String(), "the last record keeps its separator")
}
