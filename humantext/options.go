package humantext

import (
	"github.com/hexdraft/zdoc/abbrev"
	"github.com/hexdraft/zdoc/internal/options"
)

// Config holds the Human-emitter configuration surface of §6.7. The same
// Config also governs Parse, since a caller using non-default glyphs or a
// section name map must supply the matching options on both sides of the
// round trip.
type Config struct {
	MinKeyPadding          int
	BoolGlyphs             [2]string // [true, false]
	NullGlyph              string
	QuoteStringsWithSpaces bool
	SectionNameMap         *abbrev.Dict
}

// DefaultConfig returns the §6.7 defaults: 20-column key padding, ASCII
// bool/null glyphs (DESIGN.md Open Question 1: ASCII is the default, the
// Unicode pair is opt-in), and quoting enabled for whitespace-bearing
// strings.
func DefaultConfig() *Config {
	return &Config{
		MinKeyPadding:          20,
		BoolGlyphs:             [2]string{"+", "-"},
		NullGlyph:              "~",
		QuoteStringsWithSpaces: true,
	}
}

// Option configures a Config via the functional-options idiom shared
// across zdoc (zdoc/internal/options).
type Option = options.Option[*Config]

// WithMinKeyPadding overrides the minimum key-column width.
func WithMinKeyPadding(n int) Option {
	return options.NoError[*Config](func(c *Config) { c.MinKeyPadding = n })
}

// WithUnicodeGlyphs selects the Unicode bool/null glyph set (✓/✗/—)
// instead of the ASCII default (+/-/~).
func WithUnicodeGlyphs() Option {
	return options.NoError[*Config](func(c *Config) {
		c.BoolGlyphs = [2]string{"✓", "✗"}
		c.NullGlyph = "—"
	})
}

// WithBoolGlyphs overrides the true/false glyph pair directly.
func WithBoolGlyphs(trueGlyph, falseGlyph string) Option {
	return options.NoError[*Config](func(c *Config) { c.BoolGlyphs = [2]string{trueGlyph, falseGlyph} })
}

// WithNullGlyph overrides the null glyph directly.
func WithNullGlyph(glyph string) Option {
	return options.NoError[*Config](func(c *Config) { c.NullGlyph = glyph })
}

// WithQuoteStringsWithSpaces toggles whitespace-triggered quoting.
func WithQuoteStringsWithSpaces(enabled bool) Option {
	return options.NoError[*Config](func(c *Config) { c.QuoteStringsWithSpaces = enabled })
}

// WithSectionNameMap overrides the abbreviation dictionary used to render
// (and, on Parse, to recognise) section and column names, in place of the
// document's canonical names. A caller supplying this option must supply
// the identical option to both Emit and Parse for the pair to round-trip.
func WithSectionNameMap(dict *abbrev.Dict) Option {
	return options.NoError[*Config](func(c *Config) { c.SectionNameMap = dict })
}

func resolveConfig(opts []Option) (*Config, error) {
	cfg := DefaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}
