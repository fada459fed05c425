// Package file round-trips documents through the filesystem.
package file

import (
	"bytes"
	"fmt"
	"os"

	"github.com/flexon-format/go-flexon/encode"
	"github.com/flexon-format/go-flexon/ir"
	"github.com/flexon-format/go-flexon/parse"
)

// ReadFile reads path, reporting success instead of an error.
func ReadFile(path string) (string, bool) {
	d, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(d), true
}

// ParseFile reads and parses path.
func ParseFile(path string, opts ...parse.Option) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return node, nil
}

// WriteFile serializes node to path with a trailing newline.
func WriteFile(path string, node *ir.Node, opts ...encode.EncodeOption) error {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, opts...); err != nil {
		return fmt.Errorf("encoding for %s: %w", path, err)
	}
	buf.WriteByte('\n')
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
