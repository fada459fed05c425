package encode

import "github.com/flexon-format/go-flexon/ir"

type EncodeOption func(*EncState)

// Compact disables indentation and per-entry newlines.
func Compact() EncodeOption {
	return func(es *EncState) { es.pretty = false }
}

func Pretty(v bool) EncodeOption {
	return func(es *EncState) { es.pretty = v }
}

// TabSize sets the number of spaces per indentation level.
func TabSize(n int) EncodeOption {
	return func(es *EncState) { es.tabsize = n }
}

// WithConfig supplies the config governing the string delimiter and
// escape replacement.
func WithConfig(cfg *ir.Config) EncodeOption {
	return func(es *EncState) { es.cfg = cfg }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
