// Package debug holds env-gated debug switches for flexon internals.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Encode bool
	Eval   bool
	Patch  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("FLEXON_DEBUG_PARSE")
	d.Encode = boolEnv("FLEXON_DEBUG_ENCODE")
	d.Eval = boolEnv("FLEXON_DEBUG_EVAL")
	d.Patch = boolEnv("FLEXON_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Eval() bool {
	return d.Eval
}
func Patch() bool {
	return d.Patch
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
