package flexon

import (
	"testing"

	"github.com/flexon-format/go-flexon/encode"
)

func TestParseString(t *testing.T) {
	node, err := Parse([]byte(`{
// server block
'name': web, 'ports': [80, 443],
}`))
	if err != nil {
		t.Fatal(err)
	}
	got, err := String(node, encode.Compact())
	if err != nil {
		t.Fatal(err)
	}
	want := `{'name': 'web','ports': [80, 443]}`
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestParseJSONInput(t *testing.T) {
	// any JSON document is a flexon document
	node, err := Parse([]byte(`{"a": [1, true, null], "b": "x"}`))
	if err != nil {
		t.Fatal(err)
	}
	got := MustString(node, encode.Compact())
	want := `{'a': [1, true, null],'b': 'x'}`
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustParse([]byte(`{'a'`))
}
