// Package flexon is the top level entry point for working with flexon
// documents: a relaxed superset of JSON with comments, single-quoted
// strings and bare words.
//
// The subpackages do the work: token scans, parse builds ir.Node trees,
// encode serializes them, gomap maps them onto Go values and eval runs
// predicates over them. This package ties them together and adds the
// JSON, YAML, patch and diff bridges.
package flexon

import (
	"github.com/flexon-format/go-flexon/encode"
	"github.com/flexon-format/go-flexon/ir"
	"github.com/flexon-format/go-flexon/parse"
)

// Parse builds a document tree from flexon text.
func Parse(d []byte, opts ...parse.Option) (*ir.Node, error) {
	return parse.Parse(d, opts...)
}

func MustParse(d []byte) *ir.Node {
	node, err := parse.Parse(d)
	if err != nil {
		panic(err)
	}
	return node
}

// String serializes node to flexon text.
func String(node *ir.Node, opts ...encode.EncodeOption) (string, error) {
	return encode.String(node, opts...)
}

func MustString(node *ir.Node, opts ...encode.EncodeOption) string {
	return encode.MustString(node, opts...)
}
