package ir

// Config carries the leniency and style toggles shared by typed accessors
// and the serializer. A nil *Config means Default(). Configs are plain
// values owned by the caller; two parses with two configs are independent.
type Config struct {
	// StrictTypes makes typed accessors return a TypeError on tag mismatch
	// instead of a zero value.
	StrictTypes bool
	// StrictKeys makes keyed access on a missing property return a
	// MissingPropertyError instead of auto-vivifying a Null property.
	StrictKeys bool
	// ReplaceEscapes makes the serializer escape backslash, the delimiter,
	// tab, CR and LF in string output.
	ReplaceEscapes bool
	// Delimiter is the quote glyph used for serialized strings and keys.
	Delimiter byte
}

func Default() *Config {
	return &Config{Delimiter: '\''}
}

// OrDefault resolves a possibly-nil config to a usable one.
func (c *Config) OrDefault() *Config {
	if c == nil {
		return Default()
	}
	if c.Delimiter == 0 {
		cc := *c
		cc.Delimiter = '\''
		return &cc
	}
	return c
}
