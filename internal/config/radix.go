package config

import "fmt"

// LocationRadix controls how the offset of each string is displayed, if at all.
type LocationRadix int

const (
	// RadixNone omits offsets.
	RadixNone LocationRadix = iota
	RadixOctal
	RadixDecimal
	RadixHex
)

// ParseRadix maps a command-line token (o, d, x) to a LocationRadix.
func ParseRadix(token string) (LocationRadix, error) {
	switch token {
	case "o":
		return RadixOctal, nil
	case "d":
		return RadixDecimal, nil
	case "x":
		return RadixHex, nil
	}
	return RadixNone, fmt.Errorf("%w: unknown radix %q (want one of o, d, x)", ErrInvalidConfig, token)
}

// Base returns the numeric base, or 0 for RadixNone.
func (r LocationRadix) Base() int {
	switch r {
	case RadixOctal:
		return 8
	case RadixDecimal:
		return 10
	case RadixHex:
		return 16
	}
	return 0
}

func (r LocationRadix) String() string {
	switch r {
	case RadixNone:
		return "none"
	case RadixOctal:
		return "octal"
	case RadixDecimal:
		return "decimal"
	case RadixHex:
		return "hex"
	}
	return fmt.Sprintf("LocationRadix(%d)", int(r))
}
