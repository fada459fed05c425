package flexon

import (
	"testing"
)

func TestMarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{
			in:   `{'a': 1,'b': [true, null]}`,
			want: `{"a": 1,"b": [true, null]}`,
		},
		{
			in:   `{'msg': 'two\nlines'}`,
			want: `{"msg": "two\nlines"}`,
		},
		{
			in:   `{'q': 'it\'s'}`,
			want: `{"q": "it's"}`,
		},
		{
			in:   `'say \'hi\''`,
			want: `"say 'hi'"`,
		},
	}
	for _, tt := range tests {
		node, err := Parse([]byte(tt.in))
		if err != nil {
			t.Fatal(err)
		}
		got, err := MarshalJSON(node)
		if err != nil {
			t.Errorf("%s: %v", tt.in, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("%s:\ngot  %s\nwant %s", tt.in, got, tt.want)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	node := MustParse([]byte(`{'a': 1,'b': {'c': [1, 2]}}`))
	d, err := MarshalJSON(node)
	if err != nil {
		t.Fatal(err)
	}
	back, err := UnmarshalJSON(d)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(node, back) {
		t.Errorf("round trip changed the tree: %s", d)
	}
}

func TestApplyPatch(t *testing.T) {
	doc := MustParse([]byte(`{'a': 1,'b': {'c': 2}}`))
	patch := MustParse([]byte(`[
{'op': 'replace','path': '/a','value': 10},
{'op': 'add','path': '/b/d','value': 3},
]`))
	out, err := ApplyPatch(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	if got := out.Get("a"); got == nil || got.Value != "10" {
		t.Errorf("a = %v", got)
	}
	b := out.Get("b")
	if b == nil {
		t.Fatal("b missing")
	}
	if got := b.Get("c"); got == nil || got.Value != "2" {
		t.Errorf("b.c = %v", got)
	}
	if got := b.Get("d"); got == nil || got.Value != "3" {
		t.Errorf("b.d = %v", got)
	}
	// inputs untouched
	if doc.Get("a").Value != "1" {
		t.Error("doc was modified")
	}
}

func TestApplyPatchRemove(t *testing.T) {
	doc := MustParse([]byte(`{'a': 1,'b': 2}`))
	patch := MustParse([]byte(`[{'op': 'remove','path': '/b'}]`))
	out, err := ApplyPatch(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	if out.Get("b") != nil {
		t.Error("b should be gone")
	}
	if out.Get("a") == nil {
		t.Error("a should survive")
	}
}

func TestApplyPatchBadPath(t *testing.T) {
	doc := MustParse([]byte(`{'a': 1}`))
	patch := MustParse([]byte(`[{'op': 'replace','path': '/nope','value': 2}]`))
	if _, err := ApplyPatch(doc, patch); err == nil {
		t.Error("replace on an absent path should fail")
	}
}

func TestMergePatch(t *testing.T) {
	doc := MustParse([]byte(`{'a': 1,'b': 2,'c': {'x': 1}}`))
	patch := MustParse([]byte(`{'b': null,'c': {'y': 2},'d': 4}`))
	out, err := MergePatch(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	if out.Get("b") != nil {
		t.Error("null in a merge patch removes the key")
	}
	if got := out.Get("d"); got == nil || got.Value != "4" {
		t.Errorf("d = %v", got)
	}
	c := out.Get("c")
	if c == nil {
		t.Fatal("c missing")
	}
	if c.Get("x") == nil || c.Get("y") == nil {
		t.Errorf("c should merge, got %s", MustString(c))
	}
}
