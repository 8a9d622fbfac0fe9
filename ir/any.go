package ir

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
)

// FromAny converts a dynamic value tree, as produced by the JSON, YAML and
// TOML decoders, to a node tree. Go maps are visited in sorted key order,
// ordered YAML maps in their own order.
func FromAny(v any) (*Node, error) {
	return fromAny(v, "$")
}

func fromAny(v any, path string) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		if x == nil {
			return Null(), nil
		}
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case json.Number:
		n, err := FromNumberText(x.String())
		if err != nil {
			return nil, fmt.Errorf("%w at %s: %s", ErrNumberRange, path, x)
		}
		return n, nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return fromUint(uint64(x)), nil
	case uint16:
		return fromUint(uint64(x)), nil
	case uint32:
		return fromUint(uint64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case time.Time:
		return FromTime(x, timeLayout(x)), nil
	case []any:
		vals := make([]*Node, len(x))
		for i, elt := range x {
			n, err := fromAny(elt, path+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return FromSlice(vals), nil
	case []map[string]any:
		vals := make([]*Node, len(x))
		for i, elt := range x {
			n, err := fromAny(elt, path+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return FromSlice(vals), nil
	case map[string]any:
		keys := slices.Sorted(maps.Keys(x))
		kvs := make([]KeyVal, len(keys))
		for i, key := range keys {
			n, err := fromAny(x[key], path+"."+key)
			if err != nil {
				return nil, err
			}
			kvs[i] = KeyVal{Key: FromString(key), Val: n}
		}
		return FromKeyVals(kvs), nil
	case map[any]any:
		kvs := make([]KeyVal, 0, len(x))
		for k, val := range x {
			kn, err := fromAny(k, path)
			if err != nil {
				return nil, err
			}
			vn, err := fromAny(val, path+"."+fmt.Sprint(k))
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, KeyVal{Key: kn, Val: vn})
		}
		slices.SortFunc(kvs, func(a, b KeyVal) int { return Compare(a.Key, b.Key) })
		return FromKeyVals(kvs), nil
	case yaml.MapSlice:
		kvs := make([]KeyVal, len(x))
		for i := range x {
			item := &x[i]
			kn, err := fromAny(item.Key, path)
			if err != nil {
				return nil, err
			}
			vn, err := fromAny(item.Value, path+"."+fmt.Sprint(item.Key))
			if err != nil {
				return nil, err
			}
			kvs[i] = KeyVal{Key: kn, Val: vn}
		}
		return FromKeyVals(kvs), nil
	default:
		return nil, fmt.Errorf("%w at %s: %T", ErrUnsupported, path, v)
	}
}

func fromUint(u uint64) *Node {
	if u > math.MaxInt64 {
		return FromBigInt(strconv.FormatUint(u, 10))
	}
	return FromInt(int64(u))
}

// ToAny converts a node tree to plain Go values: map[string]any, []any,
// int64, float64, bool, string, time.Time and nil. Big integers become
// their decimal text.
func ToAny(node *Node) (any, error) {
	switch node.Type {
	case NullType:
		return nil, nil
	case BoolType:
		return node.Bool, nil
	case StringType:
		return node.String, nil
	case DateTimeType:
		return *node.Time, nil
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64, nil
		}
		if node.Float64 != nil {
			return *node.Float64, nil
		}
		return node.Number, nil
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			v, err := ToAny(elt)
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
			v, err := ToAny(node.Values[i])
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

// keyText renders a scalar key as a string key. Composite keys have no
// string form.
func keyText(key *Node) (string, error) {
	switch key.Type {
	case StringType, DateTimeType:
		return key.String, nil
	case NumberType:
		return key.Number, nil
	case BoolType:
		return strconv.FormatBool(key.Bool), nil
	case NullType:
		return "null", nil
	default:
		return "", at(key, ErrKeyType, "%s", key.Type)
	}
}
