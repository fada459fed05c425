package gomap

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/flexon-format/go-flexon/ir"
)

// Marshaler is implemented by types that build their own node.
type Marshaler interface {
	ToFlexon() (*ir.Node, error)
}

// ToNode converts a Go value to a document node. Types implementing
// Marshaler serialize themselves; everything else goes through
// reflection. Struct fields honor the flexon tag for renaming and
// skipping, and field order in the struct becomes property order in the
// node.
func ToNode(v any) (*ir.Node, error) {
	if v == nil {
		return ir.Null(), nil
	}
	if m, ok := v.(Marshaler); ok {
		return m.ToFlexon()
	}
	return toNodeValue(reflect.ValueOf(v), "")
}

func toNodeValue(val reflect.Value, fieldPath string) (*ir.Node, error) {
	if !val.IsValid() {
		return ir.Null(), nil
	}
	if val.CanInterface() {
		if m, ok := val.Interface().(Marshaler); ok {
			return m.ToFlexon()
		}
	}

	switch val.Kind() {
	case reflect.Ptr, reflect.Interface:
		if val.IsNil() {
			return ir.Null(), nil
		}
		return toNodeValue(val.Elem(), fieldPath)

	case reflect.String:
		return ir.FromString(val.String()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		// int64 would wrap values past MaxInt64
		return ir.FromNumber(strconv.FormatUint(val.Uint(), 10)), nil

	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(val.Float()), nil

	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil

	case reflect.Slice, reflect.Array:
		return toNodeSlice(val, fieldPath)

	case reflect.Map:
		return toNodeMap(val, fieldPath)

	case reflect.Struct:
		return toNodeStruct(val, fieldPath)

	default:
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported type: %s", val.Type()),
		}
	}
}

func toNodeSlice(val reflect.Value, fieldPath string) (*ir.Node, error) {
	node := ir.New(ir.ArrayType)
	if err := node.Reserve(val.Len()); err != nil {
		return nil, err
	}
	for i := 0; i < val.Len(); i++ {
		elemPath := fmt.Sprintf("%s[%d]", fieldPath, i)
		elemNode, err := toNodeValue(val.Index(i), elemPath)
		if err != nil {
			return nil, err
		}
		if _, err := node.AddElement(elemNode); err != nil {
			return nil, err
		}
	}
	return node, nil
}

// toNodeMap serializes a string-keyed map; keys come out sorted so the
// result is deterministic.
func toNodeMap(val reflect.Value, fieldPath string) (*ir.Node, error) {
	if val.IsNil() {
		return ir.Null(), nil
	}
	if val.Type().Key().Kind() != reflect.String {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map keys must be strings, got %s", val.Type().Key()),
		}
	}
	keys := make([]string, 0, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		keys = append(keys, iter.Key().String())
	}
	sort.Strings(keys)

	node := ir.New(ir.ObjectType)
	for _, key := range keys {
		valuePath := key
		if fieldPath != "" {
			valuePath = fieldPath + "." + key
		}
		valueNode, err := toNodeValue(val.MapIndex(reflect.ValueOf(key)), valuePath)
		if err != nil {
			return nil, err
		}
		if _, err := node.AddProperty(key, valueNode); err != nil {
			return nil, err
		}
	}
	return node, nil
}

func toNodeStruct(val reflect.Value, fieldPath string) (*ir.Node, error) {
	typ := val.Type()
	node := ir.New(ir.ObjectType)
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		fieldVal := val.Field(i)

		if field.Anonymous && fieldVal.Kind() == reflect.Ptr && fieldVal.Type().Elem().Kind() == reflect.Struct {
			if fieldVal.IsNil() {
				continue
			}
			fieldVal = fieldVal.Elem()
		}
		if field.Anonymous && fieldVal.Kind() == reflect.Struct {
			embedded, err := toNodeValue(fieldVal, fieldPath)
			if err != nil {
				return nil, err
			}
			for _, e := range embedded.Props.Entries() {
				if node.Has(e.Key) {
					return nil, &MarshalError{
						FieldPath: fieldPath,
						Message:   fmt.Sprintf("embedded field %q conflicts with an existing property", e.Key),
					}
				}
				if _, err := node.AddProperty(e.Key, e.Node); err != nil {
					return nil, err
				}
			}
			continue
		}

		name := fieldName(field)
		if name == "" {
			continue
		}
		if hasFlag(field, "omitempty") && fieldVal.IsZero() {
			continue
		}
		nextPath := name
		if fieldPath != "" {
			nextPath = fieldPath + "." + name
		}
		fieldNode, err := toNodeValue(fieldVal, nextPath)
		if err != nil {
			return nil, err
		}
		if _, err := node.AddProperty(name, fieldNode); err != nil {
			return nil, err
		}
	}
	return node, nil
}
