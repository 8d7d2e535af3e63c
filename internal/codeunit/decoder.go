// Package codeunit turns a byte source into a sequence of fixed-width code
// units for one of the supported encodings.
package codeunit

import (
	"encoding/binary"

	"github.com/specialistvlad/gstrings/internal/config"
)

// Unit is one decoded code unit and the offset of its first byte.
type Unit struct {
	Value  uint32
	Offset int64
}

// Decoder is the per-encoding strategy for turning a byte window into a code unit.
type Decoder interface {
	// Width returns the number of bytes consumed per code unit.
	Width() int
	// Decode returns the code unit held in p, which is exactly Width() bytes long.
	Decode(p []byte) uint32
}

// NewDecoder returns the strategy for enc. It is chosen once per scan.
func NewDecoder(enc config.Encoding) Decoder {
	switch enc {
	case config.SixteenBitBE:
		return be16{}
	case config.SixteenBitLE:
		return le16{}
	case config.ThirtyTwoBitBE:
		return be32{}
	case config.ThirtyTwoBitLE:
		return le32{}
	default:
		return single{}
	}
}

type single struct{}

func (single) Width() int { return 1 }
func (single) Decode(p []byte) uint32 { return uint32(p[0]) }

type be16 struct{}

func (be16) Width() int { return 2 }
func (be16) Decode(p []byte) uint32 { return uint32(binary.BigEndian.Uint16(p)) }

type le16 struct{}

func (le16) Width() int { return 2 }
func (le16) Decode(p []byte) uint32 { return uint32(binary.LittleEndian.Uint16(p)) }

type be32 struct{}

func (be32) Width() int { return 4 }
func (be32) Decode(p []byte) uint32 { return binary.BigEndian.Uint32(p) }

type le32 struct{}

func (le32) Width() int { return 4 }
func (le32) Decode(p []byte) uint32 { return binary.LittleEndian.Uint32(p) }
