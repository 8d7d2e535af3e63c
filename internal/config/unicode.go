package config

import "fmt"

// UnicodeDisplay controls how non-ASCII content of a string is displayed.
type UnicodeDisplay int

const (
	// RelyOnEncoding renders code units with the natural mapping of the encoding.
	RelyOnEncoding UnicodeDisplay = iota
	// Invalid treats non-ASCII code units as non-graphic and shows a placeholder.
	Invalid
	// Locale renders through the local character set.
	Locale
	// Escape renders non-ASCII characters as \uXXXX escape sequences.
	Escape
	// Hex renders non-ASCII content as hex sequences enclosed between <>.
	Hex
	// Highlight renders like RelyOnEncoding with non-ASCII content highlighted, if supported.
	Highlight
)

// ParseUnicodeDisplay accepts both the long (--unicode) and the short (-U) spellings.
func ParseUnicodeDisplay(token string) (UnicodeDisplay, error) {
	switch token {
	case "default", "d":
		return RelyOnEncoding, nil
	case "invalid", "i":
		return Invalid, nil
	case "show", "locale", "s":
		return Locale, nil
	case "escape", "e":
		return Escape, nil
	case "hex", "x":
		return Hex, nil
	case "highlight", "h":
		return Highlight, nil
	}
	return RelyOnEncoding, fmt.Errorf("%w: unknown unicode display %q (want one of default, show, invalid, hex, escape, highlight)", ErrInvalidConfig, token)
}

func (u UnicodeDisplay) String() string {
	switch u {
	case RelyOnEncoding:
		return "default"
	case Invalid:
		return "invalid"
	case Locale:
		return "show"
	case Escape:
		return "escape"
	case Hex:
		return "hex"
	case Highlight:
		return "highlight"
	}
	return fmt.Sprintf("UnicodeDisplay(%d)", int(u))
}
