// Package eval runs boolean expressions over document trees.
//
// Expressions see one node at a time through an environment with the
// fields value, type, line, key and size, e.g.
//
//	type == "Number" && value > 10
//	key == "name" && value startsWith "srv-"
package eval

import (
	"fmt"

	"github.com/flexon-format/go-flexon/debug"
	"github.com/flexon-format/go-flexon/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Program is a compiled node predicate.
type Program struct {
	src string
	prg *vm.Program
	cfg *ir.Config
}

// Compile builds a predicate from src. cfg controls how node values are
// decoded into the environment.
func Compile(src string, cfg *ir.Config) (*Program, error) {
	prg, err := expr.Compile(src, expr.AsBool(), expr.AllowUndefinedVariables(),
		expr.DisableBuiltin("type"))
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", src, err)
	}
	return &Program{src: src, prg: prg, cfg: cfg.OrDefault()}, nil
}

// Match runs the predicate against a single node. key is the property
// name the node is stored under, or "" at the root and in arrays.
func (p *Program) Match(node *ir.Node, key string) (bool, error) {
	env, err := nodeEnv(node, key, p.cfg)
	if err != nil {
		return false, err
	}
	res, err := expr.Run(p.prg, env)
	if err != nil {
		return false, fmt.Errorf("running %q: %w", p.src, err)
	}
	v, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%q returned %T, want bool", p.src, res)
	}
	if debug.Eval() {
		debug.Logf("eval %q on line %d: %v\n", p.src, node.Line, v)
	}
	return v, nil
}

// Select walks doc and collects every node the predicate accepts, in
// document order.
func Select(doc *ir.Node, src string, cfg *ir.Config) ([]*ir.Node, error) {
	prg, err := Compile(src, cfg)
	if err != nil {
		return nil, err
	}
	var res []*ir.Node
	var walk func(n *ir.Node, key string) error
	walk = func(n *ir.Node, key string) error {
		ok, err := prg.Match(n, key)
		if err != nil {
			return err
		}
		if ok {
			res = append(res, n)
		}
		for _, e := range n.Elems {
			if err := walk(e, ""); err != nil {
				return err
			}
		}
		for _, entry := range n.Props.Entries() {
			if err := walk(entry.Node, entry.Key); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(doc, ""); err != nil {
		return nil, err
	}
	return res, nil
}

// Match is the one-shot form of Compile plus Program.Match.
func Match(node *ir.Node, src string, cfg *ir.Config) (bool, error) {
	prg, err := Compile(src, cfg)
	if err != nil {
		return false, err
	}
	return prg.Match(node, "")
}

func nodeEnv(node *ir.Node, key string, cfg *ir.Config) (map[string]any, error) {
	value, err := nodeValue(node, cfg)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"value": value,
		"type":  node.Type.String(),
		"line":  node.Line,
		"key":   key,
		"size":  node.Size(),
	}, nil
}

// nodeValue decodes a scalar for the expression environment; containers
// expose only type and size.
func nodeValue(node *ir.Node, cfg *ir.Config) (any, error) {
	switch node.Type {
	case ir.StringType:
		return node.AsString(cfg)
	case ir.NumberType:
		if i, err := ir.As[int64](node, cfg); err == nil {
			return i, nil
		}
		return ir.As[float64](node, cfg)
	case ir.BoolType:
		return node.AsBool(cfg)
	default:
		return nil, nil
	}
}
