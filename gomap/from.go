package gomap

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/flexon-format/go-flexon/ir"
)

// Unmarshaler is implemented by types that decode their own node.
type Unmarshaler interface {
	FromFlexon(node *ir.Node) error
}

// FromNode decodes node into the value pointed at by v. cfg controls
// leniency: under StrictTypes a tag mismatch fails instead of leaving
// the target at its zero value, and under StrictKeys a struct field
// with no matching property fails instead of being skipped.
func FromNode(node *ir.Node, v any, cfg *ir.Config) error {
	if u, ok := v.(Unmarshaler); ok {
		return u.FromFlexon(node)
	}
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return &UnmarshalError{Message: "target must be a non-nil pointer"}
	}
	return fromNodeValue(node, val.Elem(), "", cfg.OrDefault())
}

func fromNodeValue(node *ir.Node, val reflect.Value, fieldPath string, cfg *ir.Config) error {
	if val.CanAddr() && val.Addr().CanInterface() {
		if u, ok := val.Addr().Interface().(Unmarshaler); ok {
			return u.FromFlexon(node)
		}
	}

	switch val.Kind() {
	case reflect.Ptr:
		if node.IsNull() {
			val.Set(reflect.Zero(val.Type()))
			return nil
		}
		if val.IsNil() {
			val.Set(reflect.New(val.Type().Elem()))
		}
		return fromNodeValue(node, val.Elem(), fieldPath, cfg)

	case reflect.String:
		s, err := node.AsString(cfg)
		if err != nil {
			return wrapErr(fieldPath, err)
		}
		val.SetString(s)
		return nil

	case reflect.Bool:
		b, err := node.AsBool(cfg)
		if err != nil {
			return wrapErr(fieldPath, err)
		}
		val.SetBool(b)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := ir.As[int64](node, cfg)
		if err != nil {
			return wrapErr(fieldPath, err)
		}
		if val.OverflowInt(i) {
			return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("%d overflows %s", i, val.Type())}
		}
		val.SetInt(i)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := ir.As[uint64](node, cfg)
		if err != nil {
			return wrapErr(fieldPath, err)
		}
		if val.OverflowUint(u) {
			return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("%d overflows %s", u, val.Type())}
		}
		val.SetUint(u)
		return nil

	case reflect.Float32, reflect.Float64:
		f, err := ir.As[float64](node, cfg)
		if err != nil {
			return wrapErr(fieldPath, err)
		}
		val.SetFloat(f)
		return nil

	case reflect.Slice:
		return fromNodeSlice(node, val, fieldPath, cfg)

	case reflect.Map:
		return fromNodeMap(node, val, fieldPath, cfg)

	case reflect.Struct:
		return fromNodeStruct(node, val, fieldPath, cfg)

	default:
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported type: %s", val.Type()),
		}
	}
}

func fromNodeSlice(node *ir.Node, val reflect.Value, fieldPath string, cfg *ir.Config) error {
	if node.IsNull() {
		val.Set(reflect.Zero(val.Type()))
		return nil
	}
	if !node.IsArray() {
		if cfg.StrictTypes {
			return wrapErr(fieldPath, &ir.TypeError{Line: node.Line, Expected: ir.ArrayType, Found: node.Type})
		}
		return nil
	}
	res := reflect.MakeSlice(val.Type(), node.Size(), node.Size())
	for i := 0; i < node.Size(); i++ {
		elem, err := node.At(i)
		if err != nil {
			return wrapErr(fieldPath, err)
		}
		elemPath := fmt.Sprintf("%s[%d]", fieldPath, i)
		if err := fromNodeValue(elem, res.Index(i), elemPath, cfg); err != nil {
			return err
		}
	}
	val.Set(res)
	return nil
}

func fromNodeMap(node *ir.Node, val reflect.Value, fieldPath string, cfg *ir.Config) error {
	if node.IsNull() {
		val.Set(reflect.Zero(val.Type()))
		return nil
	}
	if !node.IsObject() {
		if cfg.StrictTypes {
			return wrapErr(fieldPath, &ir.TypeError{Line: node.Line, Expected: ir.ObjectType, Found: node.Type})
		}
		return nil
	}
	if val.Type().Key().Kind() != reflect.String {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map keys must be strings, got %s", val.Type().Key()),
		}
	}
	res := reflect.MakeMapWithSize(val.Type(), node.Size())
	for _, e := range node.Props.Entries() {
		valuePath := e.Key
		if fieldPath != "" {
			valuePath = fieldPath + "." + e.Key
		}
		elem := reflect.New(val.Type().Elem()).Elem()
		if err := fromNodeValue(e.Node, elem, valuePath, cfg); err != nil {
			return err
		}
		res.SetMapIndex(reflect.ValueOf(e.Key), elem)
	}
	val.Set(res)
	return nil
}

func fromNodeStruct(node *ir.Node, val reflect.Value, fieldPath string, cfg *ir.Config) error {
	if !node.IsObject() {
		if cfg.StrictTypes {
			return wrapErr(fieldPath, &ir.TypeError{Line: node.Line, Expected: ir.ObjectType, Found: node.Type})
		}
		return nil
	}
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		if field.Anonymous {
			fv := val.Field(i)
			if fv.Kind() == reflect.Ptr && fv.Type().Elem().Kind() == reflect.Struct {
				if fv.IsNil() {
					fv.Set(reflect.New(fv.Type().Elem()))
				}
				fv = fv.Elem()
			}
			if fv.Kind() == reflect.Struct {
				if err := fromNodeStruct(node, fv, fieldPath, cfg); err != nil {
					return err
				}
				continue
			}
		}
		name := fieldName(field)
		if name == "" {
			continue
		}
		child := node.Get(name)
		if child == nil {
			if cfg.StrictKeys {
				return wrapErr(fieldPath, &ir.MissingPropertyError{Line: node.Line, Key: name})
			}
			continue
		}
		nextPath := name
		if fieldPath != "" {
			nextPath = fieldPath + "." + name
		}
		if err := fromNodeValue(child, val.Field(i), nextPath, cfg); err != nil {
			return err
		}
	}
	return nil
}

func wrapErr(fieldPath string, err error) error {
	var ue *UnmarshalError
	if errors.As(err, &ue) {
		return err
	}
	return &UnmarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
}
