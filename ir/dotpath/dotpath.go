// Package dotpath parses and resolves dotted document paths.
//
// A path names a node by the segments leading to it:
//
//	servers[0].host
//	limits.cpu
//	servers[*].port
//	'field name'.x
//
// Fields navigate objects, [n] navigates arrays (or the n-th entry of an
// object), and the wildcards * and [*] fan out over every property or
// element.
package dotpath

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/flexon-format/go-flexon/ir"
	"github.com/flexon-format/go-flexon/token"
)

// Path is one segment of a parsed path; segments chain through Next.
// Exactly one of Field, FieldAll, Index, IndexAll is set.
type Path struct {
	Field    *string
	FieldAll bool
	Index    *int
	IndexAll bool
	Next     *Path
}

// Parse builds a Path from its string form. An empty string is the root
// path and parses to nil.
func Parse(s string) (*Path, error) {
	if s == "" {
		return nil, nil
	}
	root := &Path{}
	if err := parseFrag(s, root); err != nil {
		return nil, err
	}
	return root, nil
}

func parseFrag(frag string, seg *Path) error {
	switch frag[0] {
	case '.':
		if len(frag) == 1 {
			return fmt.Errorf("dangling '.' in path")
		}
		return parseFrag(frag[1:], seg)
	case '[':
		close := strings.IndexByte(frag, ']')
		if close < 0 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		is := frag[1:close]
		if is == "*" {
			seg.IndexAll = true
		} else {
			i, err := strconv.Atoi(is)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid index %q", is)
			}
			seg.Index = &i
		}
		return parseRest(frag[close+1:], seg)
	case '*':
		seg.FieldAll = true
		return parseRest(frag[1:], seg)
	case '\'', '"':
		raw, rest, err := scanQuoted(frag)
		if err != nil {
			return err
		}
		field := token.Unescape(raw)
		seg.Field = &field
		return parseRest(rest, seg)
	default:
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			field := frag
			seg.Field = &field
			return nil
		}
		field := frag[:i]
		seg.Field = &field
		return parseRest(frag[i:], seg)
	}
}

func parseRest(rest string, seg *Path) error {
	if rest == "" {
		return nil
	}
	if rest[0] != '.' && rest[0] != '[' {
		return fmt.Errorf("expected '.' or '[' at %q", rest)
	}
	next := &Path{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	seg.Next = next
	return nil
}

// scanQuoted consumes a delimited field at the start of frag and returns
// its raw payload plus the remainder. A backslash escapes the following
// byte.
func scanQuoted(frag string) (raw, rest string, err error) {
	delim := frag[0]
	for i := 1; i < len(frag); i++ {
		switch frag[i] {
		case '\\':
			i++
		case delim:
			return frag[1:i], frag[i+1:], nil
		}
	}
	return "", "", fmt.Errorf("unterminated %c in path", delim)
}

// String renders the path back to its canonical string form. Fields
// holding structural characters come out quoted.
func (p *Path) String() string {
	var b strings.Builder
	for x := p; x != nil; x = x.Next {
		switch {
		case x.FieldAll:
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteByte('*')
		case x.Field != nil:
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(quoteField(*x.Field))
		case x.IndexAll:
			b.WriteString("[*]")
		case x.Index != nil:
			fmt.Fprintf(&b, "[%d]", *x.Index)
		}
	}
	return b.String()
}

func quoteField(field string) string {
	if !token.NeedsQuote(field) && !strings.ContainsAny(field, ".[]*") {
		return field
	}
	return token.Quote(field, '\'', true)
}

// HasWildcard reports whether any segment is * or [*].
func (p *Path) HasWildcard() bool {
	for x := p; x != nil; x = x.Next {
		if x.FieldAll || x.IndexAll {
			return true
		}
	}
	return false
}

// Lookup resolves an exact path against node. Wildcard segments are an
// error here; use Select for those. Absent keys and out of range indices
// surface as ir errors.
func (p *Path) Lookup(node *ir.Node) (*ir.Node, error) {
	cur := node
	for x := p; x != nil; x = x.Next {
		switch {
		case x.FieldAll, x.IndexAll:
			return nil, fmt.Errorf("wildcard in exact lookup %q", p)
		case x.Field != nil:
			if !cur.IsObject() {
				return nil, &ir.TypeError{Line: cur.Line, Expected: ir.ObjectType, Found: cur.Type}
			}
			child := cur.Get(*x.Field)
			if child == nil {
				return nil, &ir.MissingPropertyError{Line: cur.Line, Key: *x.Field}
			}
			cur = child
		case x.Index != nil:
			child, err := cur.At(*x.Index)
			if err != nil {
				return nil, err
			}
			cur = child
		}
	}
	return cur, nil
}

// Select resolves the path against node, fanning out over wildcard
// segments, and returns every target in document order. Segments that do
// not apply prune silently, so an absent key yields no matches rather
// than an error.
func (p *Path) Select(node *ir.Node) []*ir.Node {
	if p == nil {
		return []*ir.Node{node}
	}
	var res []*ir.Node
	switch {
	case p.FieldAll:
		for _, e := range node.Props.Entries() {
			res = append(res, p.Next.Select(e.Node)...)
		}
	case p.Field != nil:
		if child := node.Get(*p.Field); child != nil {
			res = p.Next.Select(child)
		}
	case p.IndexAll:
		for _, e := range node.Elems {
			res = append(res, p.Next.Select(e)...)
		}
	case p.Index != nil:
		if child, err := node.At(*p.Index); err == nil {
			res = p.Next.Select(child)
		}
	}
	return res
}
