// Package ir provides the document tree for flexon texts.
//
// A Node is a tagged value: null, boolean, number, string, array or object.
// Scalars keep the raw textual form they were parsed with, so a number like
// 1e+06 survives a parse/serialize round trip unchanged; conversion happens
// only when a typed accessor such as As, AsBool or AsString is invoked.
//
// Object properties live in an OrderedMap, which preserves insertion order
// while supporting keyed lookup, positional lookup and order-preserving
// removal. This is what makes round trips and positional decoding stable:
// a plain Go map would lose source order.
//
// Nodes form strict trees. Clone deep-copies a subtree; there is no
// aliasing and no cycles. A tree is meant to be owned and mutated by a
// single logical owner; there is no internal locking.
//
// Accessors that depend on leniency take a *Config. A nil config means
// Default(): lenient types, lenient keys, single-quote delimiter. Under
// Config.StrictTypes a tag mismatch is a TypeError; under Config.StrictKeys
// a missing property is a MissingPropertyError instead of an auto-vivified
// Null.
package ir
