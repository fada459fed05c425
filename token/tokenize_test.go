package token

import (
	"testing"
)

type tokTest struct {
	in    string
	types []TokenType
}

func TestTokenizeKinds(t *testing.T) {
	tts := []tokTest{
		{
			in:    `{}`,
			types: []TokenType{TLCurl, TRCurl},
		},
		{
			in:    `[1, 2.5, -3e+10]`,
			types: []TokenType{TLSquare, TNumber, TComma, TNumber, TComma, TNumber, TRSquare},
		},
		{
			in:    `{'a': true, "b": false, c: null}`,
			types: []TokenType{TLCurl, TString, TColon, TTrue, TComma, TString, TColon, TFalse, TComma, TLiteral, TColon, TNull, TRCurl},
		},
		{
			in:    "// note\n[1]",
			types: []TokenType{TComment, TLSquare, TNumber, TRSquare},
		},
		{
			in:    "[1, /* inline */ 2]",
			types: []TokenType{TLSquare, TNumber, TComma, TComment, TNumber, TRSquare},
		},
		{
			in:    `hello`,
			types: []TokenType{TLiteral},
		},
		{
			in:    `truevalue`,
			types: []TokenType{TLiteral},
		},
		{
			in:    `nullish`,
			types: []TokenType{TLiteral},
		},
	}
	for i := range tts {
		tt := &tts[i]
		toks := Tokenize([]byte(tt.in))
		if len(toks) != len(tt.types) {
			t.Errorf("%q: got %d tokens, want %d: %v", tt.in, len(toks), len(tt.types), toks)
			continue
		}
		for j, tok := range toks {
			if tok.Type != tt.types[j] {
				t.Errorf("%q: token %d is %s, want %s", tt.in, j, tok.Type, tt.types[j])
			}
		}
	}
}

func TestTokenizeStringContent(t *testing.T) {
	toks := Tokenize([]byte(`'a\'b'`))
	if len(toks) != 1 || toks[0].Type != TString {
		t.Fatalf("got %v", toks)
	}
	if string(toks[0].Bytes) != `a\'b` {
		t.Errorf("content %q, want %q", toks[0].Bytes, `a\'b`)
	}
}

func TestTokenizeEscapedEscapeClosesString(t *testing.T) {
	// the backslash before the closing quote is itself escaped, so the
	// string terminates there
	toks := Tokenize([]byte(`'a\\' 1`))
	if len(toks) != 2 {
		t.Fatalf("got %v", toks)
	}
	if string(toks[0].Bytes) != `a\\` {
		t.Errorf("content %q, want %q", toks[0].Bytes, `a\\`)
	}
	if toks[1].Type != TNumber {
		t.Errorf("second token %s, want %s", toks[1].Type, TNumber)
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	toks := Tokenize([]byte(`'never ends`))
	if len(toks) != 1 || toks[0].Type != TString {
		t.Fatalf("got %v", toks)
	}
	if string(toks[0].Bytes) != "never ends" {
		t.Errorf("content %q", toks[0].Bytes)
	}
}

func TestTokenizeLines(t *testing.T) {
	in := "{\n'a': 1,\n'b': [\n2\n]\n}"
	toks := Tokenize([]byte(in))
	lines := map[string]int{}
	for _, tok := range toks {
		if tok.Type == TString || tok.Type == TNumber {
			lines[string(tok.Bytes)] = tok.Line
		}
	}
	want := map[string]int{"a": 2, "1": 2, "b": 3, "2": 4}
	for k, ln := range want {
		if lines[k] != ln {
			t.Errorf("token %q on line %d, want %d", k, lines[k], ln)
		}
	}
}

func TestTokenizeCommentBytes(t *testing.T) {
	toks := Tokenize([]byte("// a comment\n1"))
	if len(toks) != 2 || toks[0].Type != TComment {
		t.Fatalf("got %v", toks)
	}
	if string(toks[0].Bytes) != "// a comment" {
		t.Errorf("comment bytes %q", toks[0].Bytes)
	}
	toks = Tokenize([]byte("/* multi\nline */ 1"))
	if len(toks) != 2 || toks[0].Type != TComment {
		t.Fatalf("got %v", toks)
	}
	if toks[1].Line != 2 {
		t.Errorf("number line %d, want 2", toks[1].Line)
	}
}

func TestTokenizeNumberVerbatim(t *testing.T) {
	for _, in := range []string{"0", "-1", "3.14", "1e+06", "-2.5E-3"} {
		toks := Tokenize([]byte(in))
		if len(toks) != 1 || toks[0].Type != TNumber {
			t.Fatalf("%q: got %v", in, toks)
		}
		if string(toks[0].Bytes) != in {
			t.Errorf("number %q kept as %q", in, toks[0].Bytes)
		}
	}
}
