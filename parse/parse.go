// Package parse provides flexon parsing support.
package parse

import (
	"regexp"

	"github.com/flexon-format/go-flexon/ir"
	"github.com/flexon-format/go-flexon/token"
)

// Parse builds a document tree from d. It always materializes the full
// tree; malformed input fails the whole parse with an error carrying the
// offending line.
func Parse(d []byte, opts ...Option) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	toks := token.Tokenize(d)
	pi := 0
	node, err := parseValue(toks, &pi, 0, pOpts)
	if err != nil {
		return nil, err
	}
	return node, nil
}

// line continuations: backslash, optional blanks, newline fold to a newline
var continuationRe = regexp.MustCompile(`\\[ \t]*\n`)

func skipComments(toks []token.Token, pi *int) {
	for *pi < len(toks) && toks[*pi].Type == token.TComment {
		*pi++
	}
}

func lastLine(toks []token.Token) int {
	if len(toks) == 0 {
		return 1
	}
	return toks[len(toks)-1].Line
}

func parseValue(toks []token.Token, pi *int, depth int, opts *parseOpts) (*ir.Node, error) {
	if depth > opts.maxDepth {
		return nil, ir.NewStructError(toks[*pi-1].Line, "maximum nesting depth %d exceeded", opts.maxDepth)
	}
	skipComments(toks, pi)
	if *pi >= len(toks) {
		return nil, ir.NewStructError(lastLine(toks), "we ran out of tokens")
	}
	t := &toks[*pi]
	switch t.Type {
	case token.TLCurl:
		return parseObject(toks, pi, depth, opts)
	case token.TLSquare:
		return parseArray(toks, pi, depth, opts)
	case token.TNumber:
		*pi++
		return ir.FromNumber(string(t.Bytes)).SetLine(t.Line), nil
	case token.TString, token.TLiteral:
		*pi++
		v := continuationRe.ReplaceAllString(string(t.Bytes), "\n")
		return ir.FromString(v).SetLine(t.Line), nil
	case token.TTrue:
		*pi++
		return ir.FromBool(true).SetLine(t.Line), nil
	case token.TFalse:
		*pi++
		return ir.FromBool(false).SetLine(t.Line), nil
	case token.TNull:
		*pi++
		return ir.Null().SetLine(t.Line), nil
	default:
		return nil, ir.NewStructError(t.Line, "cannot type the entry %q", t.Bytes)
	}
}

func parseObject(toks []token.Token, pi *int, depth int, opts *parseOpts) (*ir.Node, error) {
	open := &toks[*pi]
	node := ir.New(ir.ObjectType).SetLine(open.Line)
	*pi++
	for {
		skipComments(toks, pi)
		if *pi >= len(toks) {
			return nil, ir.NewStructError(open.Line, "unterminated object")
		}
		if toks[*pi].Type == token.TRCurl {
			*pi++
			return node, nil
		}
		keyTok := &toks[*pi]
		if keyTok.Type != token.TString && keyTok.Type != token.TLiteral {
			return nil, ir.NewStructError(keyTok.Line, "invalid object key %q", keyTok.Bytes)
		}
		key := string(keyTok.Bytes)
		*pi++
		if *pi >= len(toks) {
			return nil, ir.NewStructError(keyTok.Line, "we ran out of tokens")
		}
		if toks[*pi].Type != token.TColon {
			return nil, ir.NewStructError(toks[*pi].Line, "we did not find a colon after key %q", key)
		}
		*pi++
		child, err := parseValue(toks, pi, depth+1, opts)
		if err != nil {
			return nil, err
		}
		if _, err := node.AddProperty(key, child); err != nil {
			return nil, err
		}
		skipComments(toks, pi)
		if *pi < len(toks) && toks[*pi].Type == token.TComma {
			*pi++
		}
	}
}

func parseArray(toks []token.Token, pi *int, depth int, opts *parseOpts) (*ir.Node, error) {
	open := &toks[*pi]
	node := ir.New(ir.ArrayType).SetLine(open.Line)
	*pi++
	for {
		skipComments(toks, pi)
		if *pi >= len(toks) {
			return nil, ir.NewStructError(open.Line, "unterminated array")
		}
		if toks[*pi].Type == token.TRSquare {
			*pi++
			return node, nil
		}
		child, err := parseValue(toks, pi, depth+1, opts)
		if err != nil {
			return nil, err
		}
		if _, err := node.AddElement(child); err != nil {
			return nil, err
		}
		skipComments(toks, pi)
		if *pi < len(toks) && toks[*pi].Type == token.TComma {
			*pi++
		}
	}
}
