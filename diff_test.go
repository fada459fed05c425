package flexon

import (
	"strings"
	"testing"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{a: `{'a': 1,'b': 2}`, b: `{'a': 1,'b': 2}`, want: true},
		{a: `{'a': 1,'b': 2}`, b: `{'b': 2,'a': 1}`, want: false},
		{a: `[1, 2]`, b: `[1, 2]`, want: true},
		{a: `[1, 2]`, b: `[2, 1]`, want: false},
		{a: `[1, 2]`, b: `[1, 2, 3]`, want: false},
		{a: `1`, b: `1.0`, want: false},
		{a: `null`, b: `null`, want: true},
		{a: `{'a': {'b': 1}}`, b: `{'a': {'b': 2}}`, want: false},
		// comments and layout do not matter
		{a: "{\n// hi\n'a': 1,\n}", b: `{'a': 1}`, want: true},
	}
	for _, tt := range tests {
		a, b := MustParse([]byte(tt.a)), MustParse([]byte(tt.b))
		if got := Equal(a, b); got != tt.want {
			t.Errorf("Equal(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestEqualNil(t *testing.T) {
	node := MustParse([]byte(`1`))
	if Equal(node, nil) || Equal(nil, node) {
		t.Error("nil never equals a node")
	}
	if !Equal(nil, nil) {
		t.Error("nil equals nil")
	}
}

func TestDiff(t *testing.T) {
	a := MustParse([]byte(`{'a': 1,'b': 2}`))
	b := MustParse([]byte(`{'a': 1,'b': 3}`))

	d, err := Diff(a, a)
	if err != nil {
		t.Fatal(err)
	}
	if d != "" {
		t.Errorf("equal docs diff to %q", d)
	}

	d, err = Diff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if d == "" {
		t.Error("differing docs should produce output")
	}
	if !strings.Contains(d, "3") {
		t.Errorf("diff should mention the new value: %q", d)
	}
}
