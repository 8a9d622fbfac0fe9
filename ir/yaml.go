package ir

import (
	"strconv"

	"github.com/goccy/go-yaml"
)

// ToYAML converts a node tree to the tree goccy/go-yaml decodes into with
// UseOrderedMap. Integers follow the decoder's typing: uint64 when not
// negative, int64 otherwise, so integers up to the uint64 maximum survive.
// Objects keep their key order.
func ToYAML(node *Node) (any, error) {
	switch node.Type {
	case NullType:
		return nil, nil
	case BoolType:
		return node.Bool, nil
	case StringType, DateTimeType:
		return node.String, nil
	case NumberType:
		if node.Int64 != nil {
			i := *node.Int64
			if i < 0 {
				return i, nil
			}
			return uint64(i), nil
		}
		if node.Float64 != nil {
			return *node.Float64, nil
		}
		if u, err := strconv.ParseUint(node.Number, 10, 64); err == nil {
			return u, nil
		}
		return nil, at(node, ErrIntRange, "%s", node.Number)
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			v, err := ToYAML(elt)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	case ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, field := range node.Fields {
			k, err := ToYAML(field)
			if err != nil {
				return nil, err
			}
			v, err := ToYAML(node.Values[i])
			if err != nil {
				return nil, err
			}
			res[i] = yaml.MapItem{Key: k, Value: v}
		}
		return res, nil
	default:
		return nil, at(node, ErrUnsupported, "%s", node.Type)
	}
}
