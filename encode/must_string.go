package encode

import (
	"bytes"

	"github.com/flexon-format/go-flexon/ir"
)

// String renders node to a string.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func MustString(node *ir.Node, opts ...EncodeOption) string {
	res, err := String(node, opts...)
	if err != nil {
		panic(err)
	}
	return res
}
