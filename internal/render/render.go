// Package render maps the code units of a confirmed run to display text
// according to the configured unicode display mode.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gookit/color"
	"github.com/specialistvlad/gstrings/internal/config"
	"golang.org/x/text/encoding/charmap"
)

// Placeholder stands in for content the Invalid mode refuses to display.
const Placeholder = '?'

// Renderer turns runs into display text. It holds no per-run state, so the
// same run always renders to the same text.
type Renderer struct {
	mode      config.UnicodeDisplay
	bytewise  bool
	table     *charmap.Charmap
	highlight bool
}

// New returns a renderer. highlight reports whether the output supports
// terminal highlighting; without it the Highlight mode falls back to
// RelyOnEncoding.
func New(mode config.UnicodeDisplay, enc config.Encoding, table *charmap.Charmap, highlight bool) *Renderer {
	return &Renderer{
		mode:      mode,
		bytewise:  enc.SingleByte(),
		table:     table,
		highlight: highlight,
	}
}

// ForConfig is New with the settings taken from cfg.
func ForConfig(cfg config.Config, highlight bool) *Renderer {
	return New(cfg.UnicodeDisplay, cfg.CharEncoding, cfg.Table(), highlight)
}

// Render returns the display text for the code units of one run.
func (r *Renderer) Render(units []uint32) string {
	var sb strings.Builder
	sb.Grow(len(units))

	switch r.mode {
	case config.Invalid:
		r.invalid(&sb, units)
	case config.Locale:
		r.locale(&sb, units)
	case config.Escape:
		r.escape(&sb, units)
	case config.Hex:
		r.hex(&sb, units)
	case config.Highlight:
		if r.highlight {
			r.highlighted(&sb, units)
		} else {
			r.natural(&sb, units)
		}
	default:
		r.natural(&sb, units)
	}
	return sb.String()
}

// natural writes bytes as-is for single-byte encodings and runes otherwise.
func (r *Renderer) natural(sb *strings.Builder, units []uint32) {
	for _, u := range units {
		if r.bytewise {
			sb.WriteByte(byte(u))
		} else {
			sb.WriteRune(rune(u))
		}
	}
}

func (r *Renderer) invalid(sb *strings.Builder, units []uint32) {
	for _, u := range units {
		if u < utf8.RuneSelf {
			sb.WriteByte(byte(u))
		} else {
			sb.WriteByte(Placeholder)
		}
	}
}

func (r *Renderer) locale(sb *strings.Builder, units []uint32) {
	if !r.bytewise {
		r.natural(sb, units)
		return
	}
	if r.table != nil {
		for _, u := range units {
			sb.WriteRune(r.table.DecodeByte(byte(u)))
		}
		return
	}
	forEachUTF8(toBytes(units), func(ru rune, raw []byte) {
		if ru == utf8.RuneError && len(raw) == 1 {
			sb.WriteByte(Placeholder)
			return
		}
		sb.WriteRune(ru)
	})
}

func (r *Renderer) escape(sb *strings.Builder, units []uint32) {
	write := func(ru rune) {
		switch {
		case ru < utf8.RuneSelf:
			sb.WriteByte(byte(ru))
		case ru > 0xFFFF:
			fmt.Fprintf(sb, `\U%08x`, ru)
		default:
			fmt.Fprintf(sb, `\u%04x`, ru)
		}
	}
	if !r.bytewise {
		for _, u := range units {
			write(rune(u))
		}
		return
	}
	forEachUTF8(toBytes(units), func(ru rune, raw []byte) {
		if ru == utf8.RuneError && len(raw) == 1 {
			fmt.Fprintf(sb, `\x%02x`, raw[0])
			return
		}
		write(ru)
	})
}

func (r *Renderer) hex(sb *strings.Builder, units []uint32) {
	for _, u := range units {
		switch {
		case u < utf8.RuneSelf:
			sb.WriteByte(byte(u))
		case r.bytewise:
			fmt.Fprintf(sb, "<%02x>", u)
		default:
			fmt.Fprintf(sb, "<%04x>", u)
		}
	}
}

// highlighted wraps every maximal stretch of non-ASCII units in red.
func (r *Renderer) highlighted(sb *strings.Builder, units []uint32) {
	for i := 0; i < len(units); {
		j := i
		ascii := units[i] < utf8.RuneSelf
		for j < len(units) && (units[j] < utf8.RuneSelf) == ascii {
			j++
		}
		if ascii {
			r.natural(sb, units[i:j])
		} else {
			var part strings.Builder
			r.natural(&part, units[i:j])
			sb.WriteString(color.FgRed.Render(part.String()))
		}
		i = j
	}
}

func toBytes(units []uint32) []byte {
	b := make([]byte, len(units))
	for i, u := range units {
		b[i] = byte(u)
	}
	return b
}

// forEachUTF8 calls fn for each UTF-8 sequence in b. Bytes that do not start a
// valid sequence are reported one at a time as utf8.RuneError.
func forEachUTF8(b []byte, fn func(ru rune, raw []byte)) {
	for len(b) > 0 {
		ru, size := utf8.DecodeRune(b)
		fn(ru, b[:size])
		b = b[size:]
	}
}
