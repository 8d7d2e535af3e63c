package classify

import (
	"testing"

	"github.com/specialistvlad/gstrings/internal/config"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/encoding/charmap"
)

func TestSevenBit(t *testing.T) {
	c := New(config.SevenBit, false, nil)

	assert.True(t, c.Printable('A'))
	assert.True(t, c.Printable('~'))
	assert.True(t, c.Printable('!'))
	assert.False(t, c.Printable(' '), "space is whitespace, not graphic")
	assert.False(t, c.Printable('\t'))
	assert.False(t, c.Printable(0x7F))
	assert.False(t, c.Printable(0x00))
	assert.False(t, c.Printable(0xE9), "high bit must be clear")

	ws := New(config.SevenBit, true, nil)
	for _, v := range []uint32{' ', '\t', '\n', '\v', '\f', '\r'} {
		assert.True(t, ws.Printable(v), "whitespace %#x", v)
	}
	assert.False(t, ws.Printable(0x1B))
	assert.False(t, ws.Printable(0xA0))
}

func TestEightBit(t *testing.T) {
	raw := New(config.EightBit, false, nil)
	assert.True(t, raw.Printable('a'))
	assert.True(t, raw.Printable(0x80))
	assert.True(t, raw.Printable(0xFF))
	assert.False(t, raw.Printable(0x7F))
	assert.False(t, raw.Printable(0x100))

	latin1 := New(config.EightBit, false, charmap.ISO8859_1)
	assert.True(t, latin1.Printable(0xE9), "é")
	assert.True(t, latin1.Printable(0xA9), "©")
	assert.False(t, latin1.Printable(0x85), "C1 control")

	cp1252 := New(config.EightBit, false, charmap.Windows1252)
	assert.True(t, cp1252.Printable(0x80), "euro sign")
	assert.False(t, cp1252.Printable(0x81), "undefined in windows-1252")
}

func TestWide(t *testing.T) {
	c := New(config.SixteenBitLE, false, nil)

	assert.True(t, c.Printable('H'))
	assert.True(t, c.Printable(0x00E9))
	assert.True(t, c.Printable(0x4E2D), "CJK ideograph")
	assert.True(t, c.Printable(0x1F600), "emoji above the BMP")
	assert.False(t, c.Printable(' '))
	assert.False(t, c.Printable(0x0000))
	assert.False(t, c.Printable(0x0085))
	assert.False(t, c.Printable(0xD800), "surrogate")
	assert.False(t, c.Printable(0xDFFF), "surrogate")
	assert.False(t, c.Printable(0x110000), "beyond Unicode")
	assert.False(t, c.Printable(0xFFFFFFFF))

	ws := New(config.ThirtyTwoBitBE, true, nil)
	assert.True(t, ws.Printable(' '))
	assert.True(t, ws.Printable('\n'))
}

func TestForConfig(t *testing.T) {
	cfg, err := config.NewBuilder().CharEncoding(config.EightBit).Charset("ISO-8859-1").Whitespace(true).Build()
	if err != nil {
		t.Fatal(err)
	}
	c := ForConfig(cfg)
	assert.True(t, c.Printable(' '))
	assert.False(t, c.Printable(0x85))
}
