package ir

import (
	"errors"
	"fmt"
)

var (
	ErrStruct          = errors.New("structural error")
	ErrType            = errors.New("type mismatch")
	ErrRange           = errors.New("index out of range")
	ErrMissingProperty = errors.New("missing property")
	ErrMutation        = errors.New("invalid mutation")
	ErrNumber          = errors.New("bad number")
)

// StructError reports malformed input or misuse of the tree, carrying the
// best-known source line (0 for programmatically built nodes).
type StructError struct {
	Line int
	Msg  string
}

func NewStructError(line int, format string, args ...any) *StructError {
	return &StructError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

func (e *StructError) Error() string {
	return lineMsg(e.Line) + e.Msg
}

func (e *StructError) Unwrap() error { return ErrStruct }

// TypeError reports a disagreement between a typed accessor and the node's
// actual tag.
type TypeError struct {
	Line     int
	Expected Type
	Found    Type
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%sexpecting %s but found %s", lineMsg(e.Line), e.Expected, e.Found)
}

func (e *TypeError) Unwrap() error { return ErrType }

// RangeError reports positional access beyond bounds.
type RangeError struct {
	Line  int
	Index int
	Size  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%sindex %d out of range for size %d", lineMsg(e.Line), e.Index, e.Size)
}

func (e *RangeError) Unwrap() error { return ErrRange }

// MissingPropertyError reports keyed access on an absent key under
// Config.StrictKeys.
type MissingPropertyError struct {
	Line int
	Key  string
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("%sno property %q", lineMsg(e.Line), e.Key)
}

func (e *MissingPropertyError) Unwrap() error { return ErrMissingProperty }

// MutationError reports a structural mutator used against an incompatible
// tag.
type MutationError struct {
	Line int
	Op   string
	Type Type
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("%scannot %s a %s node", lineMsg(e.Line), e.Op, e.Type)
}

func (e *MutationError) Unwrap() error { return ErrMutation }

// NumberError reports raw numeric text that the target numeric type cannot
// represent.
type NumberError struct {
	Line  int
	Value string
	Err   error
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("%sbad number %q: %v", lineMsg(e.Line), e.Value, e.Err)
}

func (e *NumberError) Unwrap() error { return ErrNumber }

func lineMsg(line int) string {
	if line == 0 {
		return ""
	}
	return fmt.Sprintf("line %d: ", line)
}
