package ir

import (
	"encoding/json"
	"math"
)

// ToJSON converts a node tree to the tree encoding/json decodes into with
// UseNumber: nil, bool, json.Number, string, []any and map[string]any.
// Date-times become their text form.
func ToJSON(node *Node) (any, error) {
	switch node.Type {
	case NullType:
		return nil, nil
	case BoolType:
		return node.Bool, nil
	case StringType, DateTimeType:
		return node.String, nil
	case NumberType:
		if node.Float64 != nil {
			f := *node.Float64
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return nil, at(node, ErrNonFinite, "%s", node.Number)
			}
		}
		return json.Number(node.Number), nil
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			v, err := ToJSON(elt)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	case ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, field := range node.Fields {
			k, err := keyText(field)
			if err != nil {
				return nil, err
			}
			if _, dup := res[k]; dup {
				return nil, at(field, ErrDuplicateKey, "%q", k)
			}
			v, err := ToJSON(node.Values[i])
			if err != nil {
				return nil, err
			}
			res[k] = v
		}
		return res, nil
	default:
		return nil, at(node, ErrUnsupported, "%s", node.Type)
	}
}
