// Package classify decides whether a code unit counts as a string character
// under the active encoding and whitespace policy.
package classify

import (
	"unicode"

	"github.com/specialistvlad/gstrings/internal/config"
	"golang.org/x/text/encoding/charmap"
)

// Classifier reports whether a code unit value is printable.
type Classifier interface {
	Printable(v uint32) bool
}

// New returns the classifier for enc. The table is consulted for 8-bit
// input only; nil accepts every byte with the high bit set.
func New(enc config.Encoding, whitespace bool, table *charmap.Charmap) Classifier {
	switch enc {
	case config.SevenBit:
		return sevenBit{whitespace: whitespace}
	case config.EightBit:
		return eightBit{sevenBit: sevenBit{whitespace: whitespace}, table: table}
	default:
		return wide{whitespace: whitespace}
	}
}

// ForConfig is New with the settings taken from cfg.
func ForConfig(cfg config.Config) Classifier {
	return New(cfg.CharEncoding, cfg.Whitespace, cfg.Table())
}

// IsWhitespace reports membership in the accepted whitespace set: space, tab,
// newline, vertical tab, form feed and carriage return.
func IsWhitespace(v uint32) bool {
	switch v {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// isGraphicASCII excludes space, which only counts as whitespace.
func isGraphicASCII(v uint32) bool {
	return v > 0x20 && v < 0x7F
}

type sevenBit struct {
	whitespace bool
}

func (c sevenBit) Printable(v uint32) bool {
	if v >= 0x80 {
		return false
	}
	return isGraphicASCII(v) || (c.whitespace && IsWhitespace(v))
}

type eightBit struct {
	sevenBit
	table *charmap.Charmap
}

func (c eightBit) Printable(v uint32) bool {
	if v < 0x80 {
		return c.sevenBit.Printable(v)
	}
	if v > 0xFF {
		return false
	}
	if c.table == nil {
		return true
	}
	r := c.table.DecodeByte(byte(v))
	return r != unicode.ReplacementChar && unicode.IsGraphic(r)
}

type wide struct {
	whitespace bool
}

func (c wide) Printable(v uint32) bool {
	if v > unicode.MaxRune || (v >= 0xD800 && v <= 0xDFFF) {
		return false
	}
	if IsWhitespace(v) {
		return c.whitespace
	}
	return unicode.IsGraphic(rune(v))
}
