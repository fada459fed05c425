package gomap

import (
	"reflect"
	"strings"
)

// fieldName resolves the property name of a struct field, honoring the
// flexon tag. An empty name means the field is skipped.
func fieldName(field reflect.StructField) string {
	tag := field.Tag.Get("flexon")
	if tag == "" {
		return field.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

// hasFlag reports whether the flexon tag carries flag after the name,
// e.g. `flexon:"count,omitempty"`.
func hasFlag(field reflect.StructField, flag string) bool {
	tag := field.Tag.Get("flexon")
	if tag == "" {
		return false
	}
	_, rest, _ := strings.Cut(tag, ",")
	for rest != "" {
		var f string
		f, rest, _ = strings.Cut(rest, ",")
		if f == flag {
			return true
		}
	}
	return false
}
