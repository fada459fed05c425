package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/flexon-format/go-flexon/encode"
	"github.com/flexon-format/go-flexon/ir"

	"github.com/google/go-cmp/cmp"
)

type parseTest struct {
	in string
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{in: `null`},
		{in: `true`},
		{in: `false`},
		{in: `22`},
		{in: `1e14`},
		{in: `"hello"`},
		{in: `'hello'`},
		{in: `hello`},
		{in: `[]`},
		{in: `[1, 2, 3]`},
		{in: `[[1], [2, [3]]]`},
		{in: `{}`},
		{in: `{'a': 1}`},
		{in: `{"a": 1, 'b': [true, null]}`},
		{in: `{a: 1, b: 2}`},
		{in: `{'a': 1,}`},
		{in: `[1, 2,]`},
		{in: "// leading\n{'a': 1}"},
		{in: "{'a': /* here */ 1}"},
		{in: "{'a': 1 // trailing\n}"},
		{in: "{\n  'a': {\n    'b': 9\n  },\n  'c': [1, 2]\n}"},
	}
	for i := range pts {
		pt := &pts[i]
		node, err := Parse([]byte(pt.in))
		if err != nil {
			t.Errorf("# doc\n%s\n# error %v", pt.in, err)
			continue
		}
		t.Logf("\n%s\n", encode.MustString(node))
	}
}

func TestParseOrderPreserved(t *testing.T) {
	in := `{'zeta': 1, 'alpha': 2, 'mid': 3}`
	node, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"zeta", "alpha", "mid"}
	if d := cmp.Diff(want, node.Props.Keys()); d != "" {
		t.Errorf("keys (-want +got):\n%s", d)
	}
}

func TestParseNumberVerbatim(t *testing.T) {
	node, err := Parse([]byte(`{'big': 1e+06, 'neg': -0.50}`))
	if err != nil {
		t.Fatal(err)
	}
	if got := node.Get("big").Value; got != "1e+06" {
		t.Errorf("raw %q, want 1e+06", got)
	}
	if got := node.Get("neg").Value; got != "-0.50" {
		t.Errorf("raw %q, want -0.50", got)
	}
}

func TestParseCommentTransparency(t *testing.T) {
	plain := `{'a': 1, 'b': [2, 3]}`
	commented := "// top\n{'a': /* x */ 1, // after\n'b': [2, /* y */ 3]}"
	a, err := Parse([]byte(plain))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse([]byte(commented))
	if err != nil {
		t.Fatal(err)
	}
	as := encode.MustString(a, encode.Compact())
	bs := encode.MustString(b, encode.Compact())
	if as != bs {
		t.Errorf("comments leaked into the tree:\n%s\n%s", as, bs)
	}
}

func TestParseRoundTripIdempotent(t *testing.T) {
	in := "{\n    'x': [1, 2, 3],\n    'y': {\n        'z': true\n    }\n}"
	node, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	once := encode.MustString(node)
	node2, err := Parse([]byte(once))
	if err != nil {
		t.Fatal(err)
	}
	twice := encode.MustString(node2)
	if once != twice {
		t.Errorf("round trip not stable:\n%q\n%q", once, twice)
	}
}

func TestParseLineNumbers(t *testing.T) {
	in := "{\n'a': 1,\n'b': {\n'c': [\ntrue\n]\n}\n}"
	node, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if node.Line != 1 {
		t.Errorf("root line %d", node.Line)
	}
	if got := node.Get("a").Line; got != 2 {
		t.Errorf("a line %d", got)
	}
	inner := node.Get("b").Get("c")
	if inner.Line != 4 {
		t.Errorf("c line %d", inner.Line)
	}
	if got := inner.Elems[0].Line; got != 5 {
		t.Errorf("true line %d", got)
	}
}

func TestParseBareWordIsString(t *testing.T) {
	node, err := Parse([]byte(`{status: active}`))
	if err != nil {
		t.Fatal(err)
	}
	v := node.Get("status")
	if v == nil || !v.IsString() || v.Value != "active" {
		t.Fatalf("got %v", v)
	}
}

func TestParseLineContinuation(t *testing.T) {
	node, err := Parse([]byte("'one \\\ntwo'"))
	if err != nil {
		t.Fatal(err)
	}
	if node.Value != "one \ntwo" {
		t.Errorf("got %q", node.Value)
	}
	// blanks between the backslash and the newline fold too
	node, err = Parse([]byte("'one \\  \ntwo'"))
	if err != nil {
		t.Fatal(err)
	}
	if node.Value != "one \ntwo" {
		t.Errorf("got %q", node.Value)
	}
}

type badParseTest struct {
	in  string
	msg string
}

func TestBadParse(t *testing.T) {
	bts := []badParseTest{
		{in: ``, msg: "ran out of tokens"},
		{in: `{'a' 1}`, msg: "colon"},
		{in: `{'a':}`, msg: ""},
		{in: `{'a': 1`, msg: "unterminated object"},
		{in: `[1, 2`, msg: "unterminated array"},
		{in: `{1: 2}`, msg: "invalid object key"},
		{in: `{'a': :}`, msg: ""},
		{in: `:`, msg: ""},
		{in: `// only a comment`, msg: "ran out of tokens"},
		{in: `{'a': // comment only
}`, msg: ""},
	}
	for i := range bts {
		bt := &bts[i]
		_, err := Parse([]byte(bt.in))
		if err == nil {
			t.Errorf("%q parsed but should not", bt.in)
			continue
		}
		if !errors.Is(err, ir.ErrStruct) {
			t.Errorf("%q: error %v is not a structure error", bt.in, err)
		}
		if bt.msg != "" && !strings.Contains(err.Error(), bt.msg) {
			t.Errorf("%q: error %q does not mention %q", bt.in, err, bt.msg)
		}
	}
}

func TestParseErrorLine(t *testing.T) {
	_, err := Parse([]byte("{\n'a': 1,\n'b' 2\n}"))
	if err == nil {
		t.Fatal("no error")
	}
	var se *ir.StructError
	if !errors.As(err, &se) {
		t.Fatalf("got %v", err)
	}
	if se.Line != 3 {
		t.Errorf("error line %d, want 3", se.Line)
	}
}

func TestParseDepthLimit(t *testing.T) {
	in := strings.Repeat("[", 40) + strings.Repeat("]", 40)
	if _, err := Parse([]byte(in)); err != nil {
		t.Fatalf("depth 40 should parse: %v", err)
	}
	_, err := Parse([]byte(in), MaxDepth(10))
	if err == nil {
		t.Fatal("depth limit not enforced")
	}
	if !strings.Contains(err.Error(), "depth") {
		t.Errorf("error %q", err)
	}
	deep := strings.Repeat("[", DefaultMaxDepth+5) + strings.Repeat("]", DefaultMaxDepth+5)
	if _, err := Parse([]byte(deep)); err == nil {
		t.Error("default depth limit not enforced")
	}
}
