package texttag

import "golang.org/x/text/encoding/charmap"

// Codec converts tags and whole strings between the binary and text forms.
// A Codec is immutable and safe for concurrent use.
type Codec struct {
	symbols Symbols
	charset *charmap.Charmap
}

// Option configures a Codec.
type Option func(*Codec)

// WithSymbols resolves names against s instead of the built-in tables.
// Nil lookups in s keep the built-in table for that vocabulary.
func WithSymbols(s Symbols) Option {
	return func(c *Codec) {
		if s.Tags != nil {
			c.symbols.Tags = s.Tags
		}
		if s.Texts != nil {
			c.symbols.Texts = s.Texts
		}
		if s.Keys != nil {
			c.symbols.Keys = s.Keys
		}
	}
}

// WithCharmap maps literal bytes through cm. The default is ISO-8859-1.
func WithCharmap(cm *charmap.Charmap) Option {
	return func(c *Codec) {
		if cm != nil {
			c.charset = cm
		}
	}
}

// NewCodec returns a codec using the built-in tables unless overridden.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{
		symbols: DefaultSymbols(),
		charset: charmap.ISO8859_1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Symbols returns the tables c resolves against.
func (c *Codec) Symbols() Symbols {
	return c.symbols
}

var defaultCodec = NewCodec()

// Default returns the codec used by the package-level functions.
func Default() *Codec {
	return defaultCodec
}
