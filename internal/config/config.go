package config

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// ErrInvalidConfig is wrapped by every error reported for an unusable
// configuration. Such errors are detected before any scanning starts.
var ErrInvalidConfig = errors.New("invalid configuration")

// DefaultMinSeqLen is the minimum string length used when none is configured.
const DefaultMinSeqLen = 4

// MaxMinSeqLen is the largest accepted minimum string length.
const MaxMinSeqLen = 1<<16 - 1

// Config is the fully-populated, immutable configuration of one invocation.
// Build it with a Builder.
type Config struct {
	// DataOnly asks the upstream file-format layer to present only data
	// sections. The scanning logic does not depend on it.
	DataOnly bool
	// PrintFileName prefixes each string with the name of its source.
	PrintFileName bool
	// MinSeqLen is the minimum number of code units in a reported string.
	MinSeqLen int
	// LocRadix selects how offsets are displayed.
	LocRadix LocationRadix
	// Whitespace includes all whitespace as valid string characters.
	Whitespace bool
	// CharEncoding selects the character size and byte order.
	CharEncoding Encoding
	// UnicodeDisplay selects how non-ASCII content is rendered.
	UnicodeDisplay UnicodeDisplay
	// Separator is written after each string. Empty means a newline.
	Separator string
	// Charset names the single-byte table used for 8-bit classification and
	// locale rendering. Empty means none.
	Charset string

	table *charmap.Charmap
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{MinSeqLen: DefaultMinSeqLen}
}

// Table returns the single-byte character table resolved from Charset, or
// nil when no charset was configured.
func (c Config) Table() *charmap.Charmap {
	return c.table
}

// EffectiveMinSeqLen returns the minimum run length actually enforced. A zero
// minimum still requires one code unit so that every run has an offset.
func (c Config) EffectiveMinSeqLen() int {
	if c.MinSeqLen < 1 {
		return 1
	}
	return c.MinSeqLen
}

// Builder assembles a Config. Setter errors are collected and reported by Build.
type Builder struct {
	cfg  Config
	errs []error
}

// NewBuilder returns a Builder seeded with Default().
func NewBuilder() *Builder {
	return &Builder{cfg: Default()}
}

func (b *Builder) fail(err error) *Builder {
	if err != nil {
		b.errs = append(b.errs, err)
	}
	return b
}

func (b *Builder) DataOnly(v bool) *Builder {
	b.cfg.DataOnly = v
	return b
}

func (b *Builder) PrintFileName(v bool) *Builder {
	b.cfg.PrintFileName = v
	return b
}

func (b *Builder) MinSeqLen(n int) *Builder {
	b.cfg.MinSeqLen = n
	return b
}

func (b *Builder) LocRadix(r LocationRadix) *Builder {
	b.cfg.LocRadix = r
	return b
}

func (b *Builder) Whitespace(v bool) *Builder {
	b.cfg.Whitespace = v
	return b
}

func (b *Builder) CharEncoding(e Encoding) *Builder {
	b.cfg.CharEncoding = e
	return b
}

func (b *Builder) UnicodeDisplay(u UnicodeDisplay) *Builder {
	b.cfg.UnicodeDisplay = u
	return b
}

func (b *Builder) Separator(s string) *Builder {
	b.cfg.Separator = s
	return b
}

func (b *Builder) Charset(name string) *Builder {
	b.cfg.Charset = strings.TrimSpace(name)
	return b
}

// Build validates the accumulated settings and returns the Config.
func (b *Builder) Build() (Config, error) {
	errs := append([]error(nil), b.errs...)
	cfg := b.cfg

	if cfg.MinSeqLen < 0 || cfg.MinSeqLen > MaxMinSeqLen {
		errs = append(errs, fmt.Errorf("%w: minimum string length %d out of range 0..%d", ErrInvalidConfig, cfg.MinSeqLen, MaxMinSeqLen))
	}
	if cfg.Charset != "" {
		table, err := LookupCharset(cfg.Charset)
		if err != nil {
			errs = append(errs, err)
		}
		cfg.table = table
	}

	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}
	return cfg, nil
}
