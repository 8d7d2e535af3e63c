package codeunit

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/gstrings/internal/config"
)

const readBufferSize = 64 * 1024

// Reader produces the code units of a byte source in a single forward pass.
// It cannot be rewound.
type Reader struct {
	src    *bufio.Reader
	dec    Decoder
	buf    [4]byte
	offset int64
	done   bool
	err    error
}

// NewReader wraps r for decoding under enc.
func NewReader(r io.Reader, enc config.Encoding) *Reader {
	return &Reader{
		src: bufio.NewReaderSize(r, readBufferSize),
		dec: NewDecoder(enc),
	}
}

// Offset returns the offset of the next byte the reader will consume. After
// a read failure it is the offset at which the source failed.
func (r *Reader) Offset() int64 {
	return r.offset
}

// Next returns the next code unit. It returns io.EOF once the source is
// exhausted; a trailing window shorter than the code unit width is dropped
// without error. Any other error comes from the underlying source.
func (r *Reader) Next() (Unit, error) {
	if r.done {
		return Unit{}, io.EOF
	}
	if r.err != nil {
		return Unit{}, r.err
	}
	w := r.dec.Width()
	n, err := io.ReadFull(r.src, r.buf[:w])
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			r.done = true
			r.offset += int64(n)
			return Unit{}, io.EOF
		}
		r.offset += int64(n)
		r.err = fmt.Errorf("read at offset %d: %w", r.offset, err)
		return Unit{}, r.err
	}
	u := Unit{Value: r.dec.Decode(r.buf[:w]), Offset: r.offset}
	r.offset += int64(w)
	return u, nil
}
