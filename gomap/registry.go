package gomap

import (
	"fmt"
	"sync"

	"github.com/flexon-format/go-flexon/ir"
)

// kindKey is the discriminator property for registry-driven decoding.
const kindKey = "kind"

var (
	regMu    sync.RWMutex
	registry = map[string]func() any{}
)

// RegisterKind binds a kind name to a factory producing a pointer to a
// fresh decode target. Registering the same name twice panics.
func RegisterKind(name string, factory func() any) {
	regMu.Lock()
	defer regMu.Unlock()
	if _, ok := registry[name]; ok {
		panic(fmt.Sprintf("gomap: kind %q already registered", name))
	}
	registry[name] = factory
}

// EncodeKind marshals v and stamps the kind discriminator on the
// resulting object, placing it first.
func EncodeKind(kind string, v any) (*ir.Node, error) {
	node, err := ToNode(v)
	if err != nil {
		return nil, err
	}
	if !node.IsObject() {
		return nil, &MarshalError{Message: fmt.Sprintf("kind %q did not marshal to an object", kind)}
	}
	res := ir.New(ir.ObjectType)
	if _, err := res.AddProperty(kindKey, ir.FromString(kind)); err != nil {
		return nil, err
	}
	for _, e := range node.Props.Entries() {
		if e.Key == kindKey {
			continue
		}
		if _, err := res.AddProperty(e.Key, e.Node); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// DecodeKind reads the kind discriminator from node, builds the
// registered target and decodes into it.
func DecodeKind(node *ir.Node, cfg *ir.Config) (any, error) {
	kindNode := node.Get(kindKey)
	if kindNode == nil {
		return nil, &UnmarshalError{Message: "object carries no kind property"}
	}
	kind, err := kindNode.AsString(cfg)
	if err != nil {
		return nil, &UnmarshalError{Message: "kind property is not a string", Err: err}
	}
	regMu.RLock()
	factory, ok := registry[kind]
	regMu.RUnlock()
	if !ok {
		return nil, &UnmarshalError{Message: fmt.Sprintf("unknown kind %q", kind)}
	}
	target := factory()
	if err := FromNode(node, target, cfg); err != nil {
		return nil, err
	}
	return target, nil
}
