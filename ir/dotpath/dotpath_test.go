package dotpath

import (
	"errors"
	"testing"

	"github.com/flexon-format/go-flexon/ir"
	"github.com/flexon-format/go-flexon/parse"

	"github.com/google/go-cmp/cmp"
)

func TestParseString(t *testing.T) {
	// canonical paths survive a Parse/String round trip
	paths := []string{
		"a",
		"a.b.c",
		"servers[0].host",
		"[0]",
		"[0].b",
		"a[1][2]",
		"*",
		"a.*",
		"servers[*].port",
		"'field name'.x",
		"'dotted.key'",
	}
	for _, s := range paths {
		p, err := Parse(s)
		if err != nil {
			t.Errorf("%s: %v", s, err)
			continue
		}
		if got := p.String(); got != s {
			t.Errorf("Parse(%q).String() = %q", s, got)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	p, err := Parse("")
	if err != nil || p != nil {
		t.Errorf("empty path: %v, %v", p, err)
	}
}

func TestParseBad(t *testing.T) {
	bad := []string{
		"a[",
		"a[x]",
		"a[-1]",
		"'unterminated",
		"a.",
		"*x",
	}
	for _, s := range bad {
		if _, err := Parse(s); err == nil {
			t.Errorf("%q should not parse", s)
		}
	}
}

const doc = `{
'name': 'web',
'servers': [
{'host': 'a','port': 80},
{'host': 'b','port': 81}
],
'limits': {'cpu': 2,'mem': 512}
}`

func TestLookup(t *testing.T) {
	root, err := parse.Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		path string
		want string
	}{
		{path: "name", want: "web"},
		{path: "servers[0].host", want: "a"},
		{path: "servers[1].port", want: "81"},
		{path: "limits.cpu", want: "2"},
		{path: "limits[1]", want: "512"},
	}
	for _, tt := range tests {
		p, err := Parse(tt.path)
		if err != nil {
			t.Fatal(err)
		}
		node, err := p.Lookup(root)
		if err != nil {
			t.Errorf("%s: %v", tt.path, err)
			continue
		}
		if node.Value != tt.want {
			t.Errorf("%s = %q, want %q", tt.path, node.Value, tt.want)
		}
	}
}

func TestLookupErrors(t *testing.T) {
	root, err := parse.Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	p, err := Parse("limits.nope")
	if err != nil {
		t.Fatal(err)
	}
	_, err = p.Lookup(root)
	if !errors.Is(err, ir.ErrMissingProperty) {
		t.Errorf("absent key: %v", err)
	}

	p, err = Parse("servers[5]")
	if err != nil {
		t.Fatal(err)
	}
	_, err = p.Lookup(root)
	if !errors.Is(err, ir.ErrRange) {
		t.Errorf("out of range: %v", err)
	}

	p, err = Parse("name.x")
	if err != nil {
		t.Fatal(err)
	}
	_, err = p.Lookup(root)
	if !errors.Is(err, ir.ErrType) {
		t.Errorf("field on scalar: %v", err)
	}

	p, err = Parse("servers[*]")
	if err != nil {
		t.Fatal(err)
	}
	if _, err = p.Lookup(root); err == nil {
		t.Error("wildcard lookup should fail")
	}
}

func TestSelect(t *testing.T) {
	root, err := parse.Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		path string
		want []string
	}{
		{path: "servers[*].host", want: []string{"a", "b"}},
		{path: "limits.*", want: []string{"2", "512"}},
		{path: "servers[*].nope", want: nil},
		{path: "name", want: []string{"web"}},
		{path: "nope", want: nil},
	}
	for _, tt := range tests {
		p, err := Parse(tt.path)
		if err != nil {
			t.Fatal(err)
		}
		var got []string
		for _, n := range p.Select(root) {
			got = append(got, n.Value)
		}
		if d := cmp.Diff(tt.want, got); d != "" {
			t.Errorf("%s (-want +got):\n%s", tt.path, d)
		}
	}
}

func TestHasWildcard(t *testing.T) {
	for path, want := range map[string]bool{
		"a.b":    false,
		"a[0]":   false,
		"a.*":    true,
		"a[*].b": true,
	} {
		p, err := Parse(path)
		if err != nil {
			t.Fatal(err)
		}
		if got := p.HasWildcard(); got != want {
			t.Errorf("%s: %v", path, got)
		}
	}
}
