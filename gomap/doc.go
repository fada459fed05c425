// Package gomap provides reflection-driven conversion between Go values
// and flexon document nodes.
//
// ToNode marshals any Go value; FromNode decodes a node into a pointer
// target, honoring the leniency settings of an ir.Config. Struct fields
// use the flexon tag for renaming, skipping and omitempty, like
// encoding/json:
//
//	type Person struct {
//	    Name string `flexon:"name"`
//	    Age  int    `flexon:"age,omitempty"`
//	    priv int    // ignored
//	}
//
// Types wanting custom behavior implement Marshaler or Unmarshaler. The
// kind registry decodes heterogeneous objects by their "kind" property.
package gomap
