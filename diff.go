package flexon

import (
	"github.com/flexon-format/go-flexon/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Equal reports structural equality: same types, same scalar values,
// same elements, same properties in the same order.
func Equal(a, b *ir.Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case ir.ArrayType:
		if len(a.Elems) != len(b.Elems) {
			return false
		}
		for i := range a.Elems {
			if !Equal(a.Elems[i], b.Elems[i]) {
				return false
			}
		}
		return true
	case ir.ObjectType:
		if a.Props.Len() != b.Props.Len() {
			return false
		}
		for i, e := range a.Props.Entries() {
			o := b.Props.At(i)
			if e.Key != o.Key || !Equal(e.Node, o.Node) {
				return false
			}
		}
		return true
	default:
		return a.Value == b.Value
	}
}

// Diff renders a textual diff of the pretty encodings of from and to.
// Equal documents yield "".
func Diff(from, to *ir.Node) (string, error) {
	if Equal(from, to) {
		return "", nil
	}
	fs, err := String(from)
	if err != nil {
		return "", err
	}
	ts, err := String(to)
	if err != nil {
		return "", err
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(fs, ts, true)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	return diffCfg.DiffPrettyText(diffs), nil
}
