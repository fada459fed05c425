package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/flexon-format/go-flexon/encode"
	"github.com/flexon-format/go-flexon/parse"
)

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.fx")

	node, err := parse.Parse([]byte(`{'name': 'a','ports': [80, 443]}`))
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(path, node, encode.Compact()); err != nil {
		t.Fatal(err)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "{'name': 'a','ports': [80, 443]}\n"
	if string(d) != want {
		t.Errorf("got  %q\nwant %q", d, want)
	}

	back, err := ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(back, encode.Compact()); got != want[:len(want)-1] {
		t.Errorf("reparse got %s", got)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.fx")
	if err := os.WriteFile(path, []byte("[1]"), 0644); err != nil {
		t.Fatal(err)
	}
	d, ok := ReadFile(path)
	if !ok || d != "[1]" {
		t.Errorf("got %q, %v", d, ok)
	}
	if _, ok := ReadFile(path + ".nope"); ok {
		t.Error("missing file should report !ok")
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := ParseFile(filepath.Join(t.TempDir(), "nope.fx")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestParseFileBadContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.fx")
	if err := os.WriteFile(path, []byte("{'a' 1}"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ParseFile(path); err == nil {
		t.Error("missing colon should fail")
	}
}
