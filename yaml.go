package flexon

import (
	"fmt"
	"strconv"

	"github.com/flexon-format/go-flexon/ir"

	"github.com/goccy/go-yaml"
)

// FromYAML parses YAML text into a document tree. Mappings keep their
// source order.
func FromYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return yamlToNode(v)
}

// ToYAML serializes a document tree as YAML, preserving property order.
func ToYAML(node *ir.Node) ([]byte, error) {
	v, err := nodeToYAML(node)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(v)
}

func yamlToNode(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		return ir.FromNumber(strconv.FormatUint(x, 10)), nil
	case float64:
		return ir.FromFloat(x), nil
	case []any:
		node := ir.New(ir.ArrayType)
		for _, e := range x {
			child, err := yamlToNode(e)
			if err != nil {
				return nil, err
			}
			if _, err := node.AddElement(child); err != nil {
				return nil, err
			}
		}
		return node, nil
	case yaml.MapSlice:
		node := ir.New(ir.ObjectType)
		for _, item := range x {
			key, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("non-string mapping key %v", item.Key)
			}
			child, err := yamlToNode(item.Value)
			if err != nil {
				return nil, err
			}
			if _, err := node.AddProperty(key, child); err != nil {
				return nil, err
			}
		}
		return node, nil
	default:
		return nil, fmt.Errorf("cannot map yaml value of type %T", v)
	}
}

func nodeToYAML(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.StringType:
		return node.AsString(nil)
	case ir.BoolType:
		return node.AsBool(nil)
	case ir.NumberType:
		if i, err := ir.As[int64](node, nil); err == nil {
			return i, nil
		}
		return ir.As[float64](node, nil)
	case ir.ArrayType:
		res := make([]any, 0, len(node.Elems))
		for _, e := range node.Elems {
			v, err := nodeToYAML(e)
			if err != nil {
				return nil, err
			}
			res = append(res, v)
		}
		return res, nil
	case ir.ObjectType:
		res := make(yaml.MapSlice, 0, node.Props.Len())
		for _, e := range node.Props.Entries() {
			v, err := nodeToYAML(e.Node)
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: e.Key, Value: v})
		}
		return res, nil
	default:
		return nil, nil
	}
}
