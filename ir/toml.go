package ir

import (
	"time"
)

// Zone names the TOML decoder gives to date-times without an offset.
const (
	localDatetimeZone = "datetime-local"
	localDateZone     = "date-local"
	localTimeZone     = "time-local"
)

const (
	localDatetimeLayout = "2006-01-02T15:04:05.999999999"
	localTimeLayout     = "15:04:05.999999999"
)

// timeLayout picks the text layout of a date-time: TOML local values keep
// their reduced form, everything else is RFC 3339.
func timeLayout(t time.Time) string {
	switch t.Location().String() {
	case localDatetimeZone:
		return localDatetimeLayout
	case localDateZone:
		return time.DateOnly
	case localTimeZone:
		return localTimeLayout
	}
	return time.RFC3339Nano
}

// ToTOML converts a node tree to a TOML table. The root must be an object;
// nulls and integers outside int64 have no TOML form.
func ToTOML(node *Node) (map[string]any, error) {
	if node.Type != ObjectType {
		return nil, at(node, ErrNotTable, "got %s", node.Type)
	}
	v, err := toTOML(node)
	if err != nil {
		return nil, err
	}
	return v.(map[string]any), nil
}

func toTOML(node *Node) (any, error) {
	switch node.Type {
	case NullType:
		return nil, at(node, ErrNull, "")
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
		return nil, at(node, ErrIntRange, "%s", node.Number)
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			v, err := toTOML(elt)
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
			v, err := toTOML(node.Values[i])
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
