package config

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// LookupCharset resolves an IANA character set name (for example
// "ISO-8859-1", "windows-1252" or "IBM437") to a single-byte table.
func LookupCharset(name string) (*charmap.Charmap, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: unknown charset %q", ErrInvalidConfig, name)
	}
	table, ok := enc.(*charmap.Charmap)
	if !ok {
		return nil, fmt.Errorf("%w: charset %q is not a single-byte character set", ErrInvalidConfig, name)
	}
	return table, nil
}
