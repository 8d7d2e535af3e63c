package render

import (
	"testing"

	"github.com/gookit/color"
	"github.com/specialistvlad/gstrings/internal/config"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/encoding/charmap"
)

func bytesOf(s string) []uint32 {
	units := make([]uint32, len(s))
	for i := 0; i < len(s); i++ {
		units[i] = uint32(s[i])
	}
	return units
}

func runesOf(s string) []uint32 {
	var units []uint32
	for _, r := range s {
		units = append(units, uint32(r))
	}
	return units
}

func TestRender_SingleByte(t *testing.T) {
	// "caf" + UTF-8 "é" + "!" + a lone 0xFF byte
	units := bytesOf("caf\xc3\xa9!\xff")

	tests := []struct {
		mode config.UnicodeDisplay
		want string
	}{
		{config.RelyOnEncoding, "caf\xc3\xa9!\xff"},
		{config.Invalid, "caf??!?"},
		{config.Locale, "café!?"},
		{config.Escape, `caf\u00e9!\xff`},
		{config.Hex, "caf<c3><a9>!<ff>"},
		{config.Highlight, "caf\xc3\xa9!\xff"},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			r := New(tt.mode, config.EightBit, nil, false)
			assert.Equal(t, tt.want, r.Render(units))
		})
	}
}

func TestRender_Wide(t *testing.T) {
	units := runesOf("Hé中😀")

	tests := []struct {
		mode config.UnicodeDisplay
		want string
	}{
		{config.RelyOnEncoding, "Hé中😀"},
		{config.Invalid, "H???"},
		{config.Locale, "Hé中😀"},
		{config.Escape, `H\u00e9\u4e2d\U0001f600`},
		{config.Hex, "H<00e9><4e2d><1f600>"},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			r := New(tt.mode, config.SixteenBitLE, nil, false)
			assert.Equal(t, tt.want, r.Render(units))
		})
	}
}

func TestRender_LocaleWithTable(t *testing.T) {
	r := New(config.Locale, config.EightBit, charmap.Windows1252, false)
	assert.Equal(t, "€5 café", r.Render(bytesOf("\x805 caf\xe9")))

	// RelyOnEncoding keeps the raw bytes even with a table configured.
	raw := New(config.RelyOnEncoding, config.EightBit, charmap.Windows1252, false)
	assert.Equal(t, "\x805", raw.Render(bytesOf("\x805")))
}

func TestRender_HighlightWrapsOnlyNonASCII(t *testing.T) {
	color.ForceOpenColor()

	wide := New(config.Highlight, config.SixteenBitBE, nil, true)
	assert.Equal(t, "abc\x1b[31mé中\x1b[0md", wide.Render(runesOf("abcé中d")))

	bytewise := New(config.Highlight, config.EightBit, nil, true)
	assert.Equal(t, "\x1b[31mé\x1b[0mx\x1b[31m\xff\x1b[0m", bytewise.Render(bytesOf("\xc3\xa9x\xff")))

	plain := New(config.Highlight, config.SixteenBitBE, nil, false)
	assert.Equal(t, "abcé中d", plain.Render(runesOf("abcé中d")))
}

func TestRender_Pure(t *testing.T) {
	r := New(config.Escape, config.EightBit, nil, false)
	units := bytesOf("x\xe2\x80\x94y")
	first := r.Render(units)
	assert.Equal(t, `x\u2014y`, first)
	assert.Equal(t, first, r.Render(units))
}

func TestForConfig(t *testing.T) {
	cfg, err := config.NewBuilder().UnicodeDisplay(config.Hex).CharEncoding(config.ThirtyTwoBitLE).Build()
	assert.NoError(t, err)
	assert.Equal(t, "a<00e9>", ForConfig(cfg, false).Render([]uint32{'a', 0xE9}))
}
