package config

// Profile is the format-agnostic representation of a partial configuration.
// A nil field means "not set"; Apply leaves the corresponding setting alone.
// Enumerated settings are kept as their textual tokens so that every source
// reports unknown values the same way, from Builder.Build.
type Profile struct {
	// scan settings
	Encoding   *string
	MinLength  *int
	Whitespace *bool
	DataOnly   *bool
	Charset    *string

	// display settings
	Radix         *string
	PrintFileName *bool
	Unicode       *string
	Separator     *string
	Format        *string
}

// Merge overlays every field set in other onto p and returns p.
func (p *Profile) Merge(other *Profile) *Profile {
	if other == nil {
		return p
	}
	mergeField(&p.Encoding, other.Encoding)
	mergeField(&p.MinLength, other.MinLength)
	mergeField(&p.Whitespace, other.Whitespace)
	mergeField(&p.DataOnly, other.DataOnly)
	mergeField(&p.Charset, other.Charset)
	mergeField(&p.Radix, other.Radix)
	mergeField(&p.PrintFileName, other.PrintFileName)
	mergeField(&p.Unicode, other.Unicode)
	mergeField(&p.Separator, other.Separator)
	mergeField(&p.Format, other.Format)
	return p
}

func mergeField[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

// Apply forwards every set field to the builder. Unknown tokens are recorded
// on the builder and reported by Build.
func (p *Profile) Apply(b *Builder) *Builder {
	if p == nil {
		return b
	}
	if p.Encoding != nil {
		enc, err := ParseEncoding(*p.Encoding)
		b.fail(err).CharEncoding(enc)
	}
	if p.MinLength != nil {
		b.MinSeqLen(*p.MinLength)
	}
	if p.Whitespace != nil {
		b.Whitespace(*p.Whitespace)
	}
	if p.DataOnly != nil {
		b.DataOnly(*p.DataOnly)
	}
	if p.Charset != nil {
		b.Charset(*p.Charset)
	}
	if p.Radix != nil {
		r, err := ParseRadix(*p.Radix)
		b.fail(err).LocRadix(r)
	}
	if p.PrintFileName != nil {
		b.PrintFileName(*p.PrintFileName)
	}
	if p.Unicode != nil {
		u, err := ParseUnicodeDisplay(*p.Unicode)
		b.fail(err).UnicodeDisplay(u)
	}
	if p.Separator != nil {
		b.Separator(*p.Separator)
	}
	return b
}
