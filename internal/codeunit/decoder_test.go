package codeunit

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/specialistvlad/gstrings/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, data []byte, enc config.Encoding) []Unit {
	t.Helper()
	r := NewReader(bytes.NewReader(data), enc)
	var units []Unit
	for {
		u, err := r.Next()
		if errors.Is(err, io.EOF) {
			return units
		}
		require.NoError(t, err)
		units = append(units, u)
	}
}

func TestReader_Widths(t *testing.T) {
	data := []byte{0x00, 0x41, 0x42, 0x00, 0x01, 0x02, 0x03, 0x04}

	tests := []struct {
		name string
		enc  config.Encoding
		want []Unit
	}{
		{
			name: "7-bit",
			enc:  config.SevenBit,
			want: []Unit{{0x00, 0}, {0x41, 1}, {0x42, 2}, {0x00, 3}, {0x01, 4}, {0x02, 5}, {0x03, 6}, {0x04, 7}},
		},
		{
			name: "16-bit big endian",
			enc:  config.SixteenBitBE,
			want: []Unit{{0x0041, 0}, {0x4200, 2}, {0x0102, 4}, {0x0304, 6}},
		},
		{
			name: "16-bit little endian",
			enc:  config.SixteenBitLE,
			want: []Unit{{0x4100, 0}, {0x0042, 2}, {0x0201, 4}, {0x0403, 6}},
		},
		{
			name: "32-bit big endian",
			enc:  config.ThirtyTwoBitBE,
			want: []Unit{{0x00414200, 0}, {0x01020304, 4}},
		},
		{
			name: "32-bit little endian",
			enc:  config.ThirtyTwoBitLE,
			want: []Unit{{0x00424100, 0}, {0x04030201, 4}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, readAll(t, data, tt.enc))
		})
	}
}

func TestReader_DropsTrailingPartialUnit(t *testing.T) {
	// Five bytes: one full 32-bit unit, then a dangling byte.
	units := readAll(t, []byte{'A', 0, 0, 0, 'B'}, config.ThirtyTwoBitLE)
	require.Len(t, units, 1)
	assert.Equal(t, uint32('A'), units[0].Value)

	// Three bytes under 16-bit: the last byte never becomes a unit.
	units = readAll(t, []byte{'H', 0, 'i'}, config.SixteenBitLE)
	require.Len(t, units, 1)
	assert.Equal(t, Unit{Value: 'H', Offset: 0}, units[0])
}

func TestReader_EmptyInput(t *testing.T) {
	r := NewReader(bytes.NewReader(nil), config.SixteenBitBE)
	_, err := r.Next()
	assert.ErrorIs(t, err, io.EOF)

	// Exhaustion is sticky.
	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

type failingReader struct {
	data []byte
	err  error
}

func (f *failingReader) Read(p []byte) (int, error) {
	if len(f.data) == 0 {
		return 0, f.err
	}
	n := copy(p, f.data)
	f.data = f.data[n:]
	return n, nil
}

func TestReader_PropagatesReadFailure(t *testing.T) {
	boom := errors.New("device unplugged")
	r := NewReader(&failingReader{data: []byte("ab"), err: boom}, config.SevenBit)

	u, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, uint32('a'), u.Value)
	_, err = r.Next()
	require.NoError(t, err)

	_, err = r.Next()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, io.EOF)
	assert.Contains(t, err.Error(), "offset 2")
}

func TestReader_FailureInsidePartialUnit(t *testing.T) {
	boom := errors.New("device unplugged")
	r := NewReader(&failingReader{data: []byte{0, 'A', 0}, err: boom}, config.SixteenBitBE)

	_, err := r.Next()
	require.NoError(t, err)

	_, err = r.Next()
	require.ErrorIs(t, err, boom)
	assert.Equal(t, int64(3), r.Offset(), "bytes of the partial unit count towards the failure offset")
	assert.Contains(t, err.Error(), "offset 3")

	_, again := r.Next()
	assert.Equal(t, err, again, "the failure is sticky")
}
