package ir

import (
	"reflect"
	"strconv"

	"github.com/flexon-format/go-flexon/token"
)

// Number constrains the numeric targets of As.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// As parses a Number node's raw text as T. On tag mismatch it returns the
// zero value, or a TypeError under Config.StrictTypes. Raw text the target
// type cannot represent is a NumberError, never a silent truncation.
func As[T Number](n *Node, cfg *Config) (T, error) {
	var zero T
	if n.Type != NumberType {
		if cfg.OrDefault().StrictTypes {
			return zero, &TypeError{Line: n.Line, Expected: NumberType, Found: n.Type}
		}
		return zero, nil
	}
	rt := reflect.TypeOf(zero)
	switch rt.Kind() {
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(n.Value, rt.Bits())
		if err != nil {
			return zero, &NumberError{Line: n.Line, Value: n.Value, Err: err}
		}
		return T(f), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(n.Value, 10, rt.Bits())
		if err != nil {
			return zero, &NumberError{Line: n.Line, Value: n.Value, Err: err}
		}
		return T(u), nil
	default:
		i, err := strconv.ParseInt(n.Value, 10, rt.Bits())
		if err != nil {
			return zero, &NumberError{Line: n.Line, Value: n.Value, Err: err}
		}
		return T(i), nil
	}
}

// AsBool reads a Bool node; mismatches follow Config.StrictTypes.
func (n *Node) AsBool(cfg *Config) (bool, error) {
	if n.Type != BoolType {
		if cfg.OrDefault().StrictTypes {
			return false, &TypeError{Line: n.Line, Expected: BoolType, Found: n.Type}
		}
		return false, nil
	}
	return n.Value == "true", nil
}

// AsString reads a String node, decoding the stored escape sequences.
// Mismatches follow Config.StrictTypes.
func (n *Node) AsString(cfg *Config) (string, error) {
	cfg = cfg.OrDefault()
	if n.Type != StringType {
		if cfg.StrictTypes {
			return "", &TypeError{Line: n.Line, Expected: StringType, Found: n.Type}
		}
		return "", nil
	}
	return token.Unescape(n.Value), nil
}

func (n *Node) AsInt(cfg *Config) (int64, error) {
	return As[int64](n, cfg)
}

func (n *Node) AsFloat(cfg *Config) (float64, error) {
	return As[float64](n, cfg)
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
