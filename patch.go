package flexon

import (
	"github.com/flexon-format/go-flexon/debug"
	"github.com/flexon-format/go-flexon/encode"
	"github.com/flexon-format/go-flexon/ir"
	"github.com/flexon-format/go-flexon/parse"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

// JSONConfig renders documents as strict JSON: double-quoted strings
// with escape sequences re-encoded.
var JSONConfig = &ir.Config{Delimiter: '"', ReplaceEscapes: true}

// MarshalJSON serializes node as compact JSON. Flexon is a superset of
// JSON, so the result parses back with Parse.
func MarshalJSON(node *ir.Node) ([]byte, error) {
	s, err := encode.String(node, encode.Compact(), encode.WithConfig(JSONConfig))
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalJSON parses JSON text into a document tree.
func UnmarshalJSON(d []byte) (*ir.Node, error) {
	return parse.Parse(d)
}

// ApplyPatch applies an RFC 6902 patch document to doc and returns the
// patched tree. Neither input is modified.
func ApplyPatch(doc, patch *ir.Node) (*ir.Node, error) {
	pd, err := MarshalJSON(patch)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return nil, err
	}
	dd, err := MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("patching %s with %s\n", dd, pd)
	}
	out, err := ops.Apply(dd)
	if err != nil {
		return nil, err
	}
	return parse.Parse(out)
}

// MergePatch applies an RFC 7386 merge patch to doc.
func MergePatch(doc, patch *ir.Node) (*ir.Node, error) {
	pd, err := MarshalJSON(patch)
	if err != nil {
		return nil, err
	}
	dd, err := MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(dd, pd)
	if err != nil {
		return nil, err
	}
	return parse.Parse(out)
}
