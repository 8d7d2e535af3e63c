package config

import "fmt"

// Encoding selects the character size and byte order used to decode the input.
type Encoding int

const (
	// SevenBit is 7-bit single-byte characters (the default).
	SevenBit Encoding = iota
	// EightBit is 8-bit single-byte characters.
	EightBit
	// SixteenBitBE is 16-bit big-endian code units.
	SixteenBitBE
	// SixteenBitLE is 16-bit little-endian code units.
	SixteenBitLE
	// ThirtyTwoBitBE is 32-bit big-endian code units.
	ThirtyTwoBitBE
	// ThirtyTwoBitLE is 32-bit little-endian code units.
	ThirtyTwoBitLE
)

// ParseEncoding maps a command-line token (s, S, b, l, B, L) to an Encoding.
func ParseEncoding(token string) (Encoding, error) {
	switch token {
	case "s":
		return SevenBit, nil
	case "S":
		return EightBit, nil
	case "b":
		return SixteenBitBE, nil
	case "l":
		return SixteenBitLE, nil
	case "B":
		return ThirtyTwoBitBE, nil
	case "L":
		return ThirtyTwoBitLE, nil
	}
	return SevenBit, fmt.Errorf("%w: unknown encoding %q (want one of s, S, b, l, B, L)", ErrInvalidConfig, token)
}

// Width returns the number of bytes in one code unit.
func (e Encoding) Width() int {
	switch e {
	case SixteenBitBE, SixteenBitLE:
		return 2
	case ThirtyTwoBitBE, ThirtyTwoBitLE:
		return 4
	default:
		return 1
	}
}

// SingleByte reports whether each code unit is one byte wide.
func (e Encoding) SingleByte() bool {
	return e.Width() == 1
}

// Token returns the command-line token for the encoding.
func (e Encoding) Token() string {
	switch e {
	case EightBit:
		return "S"
	case SixteenBitBE:
		return "b"
	case SixteenBitLE:
		return "l"
	case ThirtyTwoBitBE:
		return "B"
	case ThirtyTwoBitLE:
		return "L"
	default:
		return "s"
	}
}

func (e Encoding) String() string {
	switch e {
	case SevenBit:
		return "7-bit"
	case EightBit:
		return "8-bit"
	case SixteenBitBE:
		return "16-bit-be"
	case SixteenBitLE:
		return "16-bit-le"
	case ThirtyTwoBitBE:
		return "32-bit-be"
	case ThirtyTwoBitLE:
		return "32-bit-le"
	}
	return fmt.Sprintf("Encoding(%d)", int(e))
}
