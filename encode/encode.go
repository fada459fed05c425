// Package encode serializes document trees back to flexon text.
package encode

import (
	"io"
	"strings"

	"github.com/flexon-format/go-flexon/ir"
	"github.com/flexon-format/go-flexon/token"
)

type EncState struct {
	pretty  bool
	tabsize int

	cfg *ir.Config

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w. Output is pretty by default; Compact() yields
// the single-line form. Delimiter and escape replacement come from the
// configured *ir.Config.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		pretty:  true,
		tabsize: 4,
	}
	for _, opt := range opts {
		opt(es)
	}
	es.cfg = es.cfg.OrDefault()
	return encode(node, w, 1, es)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func (es *EncState) indentation(depth int) string {
	return strings.Repeat(strings.Repeat(" ", es.tabsize), depth)
}

func (es *EncState) color(t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

func encode(node *ir.Node, w io.Writer, depth int, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, depth, es)
	case ir.ArrayType:
		return encodeArray(node, w, depth, es)
	case ir.StringType:
		return encodeString(node, w, es)
	case ir.NumberType:
		return writeString(w, es.color(ir.NumberType, ValueColor, node.Value))
	case ir.BoolType:
		return writeString(w, es.color(ir.BoolType, ValueColor, node.Value))
	default:
		// Null, Error and Uninit all render as null.
		return writeString(w, es.color(ir.NullType, ValueColor, "null"))
	}
}

// encodeString emits the raw payload verbatim; under ReplaceEscapes it
// normalizes by decoding the stored escapes and re-encoding them for
// the configured delimiter.
func encodeString(node *ir.Node, w io.Writer, es *EncState) error {
	v := node.Value
	if es.cfg.ReplaceEscapes {
		v = token.Escape(token.Unescape(v), es.cfg.Delimiter)
	}
	v = token.Quote(v, es.cfg.Delimiter, false)
	return writeString(w, es.color(ir.StringType, ValueColor, v))
}

func encodeObject(node *ir.Node, w io.Writer, depth int, es *EncState) error {
	if err := writeString(w, es.color(ir.ObjectType, SepColor, "{")); err != nil {
		return err
	}
	if es.pretty {
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	delim := string(es.cfg.Delimiter)
	entries := node.Props.Entries()
	for i, e := range entries {
		if es.pretty {
			if err := writeString(w, es.indentation(depth)); err != nil {
				return err
			}
		}
		k := e.Key
		if es.cfg.ReplaceEscapes {
			k = token.Escape(token.Unescape(k), es.cfg.Delimiter)
		}
		key := es.color(ir.ObjectType, FieldColor, delim+k+delim)
		if err := writeString(w, key+es.color(ir.ObjectType, SepColor, ":")+" "); err != nil {
			return err
		}
		if err := encode(e.Node, w, depth+1, es); err != nil {
			return err
		}
		if i < len(entries)-1 {
			if err := writeString(w, es.color(ir.ObjectType, SepColor, ",")); err != nil {
				return err
			}
		}
		if es.pretty {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
		}
	}
	if es.pretty {
		if err := writeString(w, es.indentation(depth - 1)); err != nil {
			return err
		}
	}
	return writeString(w, es.color(ir.ObjectType, SepColor, "}"))
}

func isComposite(n *ir.Node) bool {
	return n.Type == ir.ObjectType || n.Type == ir.ArrayType
}

func encodeArray(node *ir.Node, w io.Writer, depth int, es *EncState) error {
	if err := writeString(w, es.color(ir.ArrayType, SepColor, "[")); err != nil {
		return err
	}
	for i, e := range node.Elems {
		if i != 0 {
			if err := writeString(w, es.color(ir.ArrayType, SepColor, ",")+" "); err != nil {
				return err
			}
		}
		if es.pretty && isComposite(e) {
			if err := writeString(w, "\n"+es.indentation(depth)); err != nil {
				return err
			}
		}
		if err := encode(e, w, depth+1, es); err != nil {
			return err
		}
	}
	if es.pretty && len(node.Elems) > 0 && isComposite(node.Elems[0]) {
		if err := writeString(w, "\n"+es.indentation(depth-1)); err != nil {
			return err
		}
	}
	return writeString(w, es.color(ir.ArrayType, SepColor, "]"))
}
