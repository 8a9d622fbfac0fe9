package markconv

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/markconv/format"
	"github.com/signadot/markconv/ir"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/parser"
)

// Format is a parsed document tagged with the grammar it came from. It is
// implemented by exactly JSON, YAML and TOML.
type Format interface {
	Kind() format.Format
	native() any
}

// JSON holds a value as decoded by encoding/json with UseNumber: nil, bool,
// json.Number, string, []any and map[string]any.
type JSON struct {
	Value any
}

// YAML holds a value as decoded by goccy/go-yaml with UseOrderedMap: nil,
// bool, uint64, int64, float64, string, time.Time, []any and yaml.MapSlice.
type YAML struct {
	Value any
}

// TOML holds a table as decoded by BurntSushi/toml.
type TOML struct {
	Value map[string]any
}

func (JSON) Kind() format.Format { return format.JSONFormat }
func (YAML) Kind() format.Format { return format.YAMLFormat }
func (TOML) Kind() format.Format { return format.TOMLFormat }

func (j JSON) native() any { return j.Value }
func (y YAML) native() any { return y.Value }
func (t TOML) native() any { return t.Value }

// Value returns f as one of the value variants JSON, YAML or TOML. A
// pointer variant is dereferenced; a nil Format or nil pointer fails with
// ErrNilFormat.
func Value(f Format) (Format, error) {
	switch x := f.(type) {
	case nil:
		return nil, ErrNilFormat
	case JSON, YAML, TOML:
		return x, nil
	case *JSON:
		if x == nil {
			return nil, ErrNilFormat
		}
		return *x, nil
	case *YAML:
		if x == nil {
			return nil, ErrNilFormat
		}
		return *x, nil
	case *TOML:
		if x == nil {
			return nil, ErrNilFormat
		}
		return *x, nil
	default:
		return nil, fmt.Errorf("%w: %T", format.ErrBadFormat, f)
	}
}

// ParseJSON parses src as a single JSON value.
func ParseJSON(src []byte) (JSON, error) {
	dec := json.NewDecoder(bytes.NewReader(src))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return JSON{}, &ParseError{Format: format.JSONFormat, Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = fmt.Errorf("invalid character after top-level value at offset %d", dec.InputOffset())
		}
		return JSON{}, &ParseError{Format: format.JSONFormat, Err: err}
	}
	return JSON{Value: v}, nil
}

// ParseYAML parses src as a single YAML document. An empty source is a null
// document; a stream of several documents is an error.
func ParseYAML(src []byte) (YAML, error) {
	file, err := parser.ParseBytes(src, 0)
	if err != nil {
		return YAML{}, &ParseError{Format: format.YAMLFormat, Err: err}
	}
	if n := len(file.Docs); n > 1 {
		return YAML{}, &ParseError{Format: format.YAMLFormat, Err: fmt.Errorf("%w: found %d", errMultiDoc, n)}
	}
	var v any
	if err := yaml.UnmarshalWithOptions(src, &v, yaml.UseOrderedMap()); err != nil {
		return YAML{}, &ParseError{Format: format.YAMLFormat, Err: err}
	}
	return YAML{Value: v}, nil
}

// ParseTOML parses src as a TOML document.
func ParseTOML(src []byte) (TOML, error) {
	v := map[string]any{}
	if err := toml.Unmarshal(src, &v); err != nil {
		return TOML{}, &ParseError{Format: format.TOMLFormat, Err: err}
	}
	return TOML{Value: v}, nil
}

// Parse parses src with the grammar of kind.
func Parse(kind format.Format, src []byte) (Format, error) {
	var (
		f   Format
		err error
	)
	switch kind {
	case format.JSONFormat:
		f, err = ParseJSON(src)
	case format.YAMLFormat:
		f, err = ParseYAML(src)
	case format.TOMLFormat:
		f, err = ParseTOML(src)
	default:
		return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, kind)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// deepCopy copies a decoded value tree so that the copy shares no maps or
// slices with v.
func deepCopy(v any) any {
	switch x := v.(type) {
	case []any:
		res := make([]any, len(x))
		for i, elt := range x {
			res[i] = deepCopy(elt)
		}
		return res
	case []map[string]any:
		res := make([]map[string]any, len(x))
		for i, elt := range x {
			res[i] = deepCopy(elt).(map[string]any)
		}
		return res
	case map[string]any:
		if x == nil {
			return x
		}
		res := make(map[string]any, len(x))
		for k, elt := range x {
			res[k] = deepCopy(elt)
		}
		return res
	case map[any]any:
		res := make(map[any]any, len(x))
		for k, elt := range x {
			res[k] = deepCopy(elt)
		}
		return res
	case yaml.MapSlice:
		res := make(yaml.MapSlice, len(x))
		for i, item := range x {
			res[i] = yaml.MapItem{Key: deepCopy(item.Key), Value: deepCopy(item.Value)}
		}
		return res
	default:
		return x
	}
}

// FromIR renders node as the native value tree of kind.
func FromIR(node *ir.Node, kind format.Format) (Format, error) {
	switch kind {
	case format.JSONFormat:
		v, err := ir.ToJSON(node)
		if err != nil {
			return nil, &ConversionError{Target: kind, Err: err}
		}
		return JSON{Value: v}, nil
	case format.YAMLFormat:
		v, err := ir.ToYAML(node)
		if err != nil {
			return nil, &ConversionError{Target: kind, Err: err}
		}
		return YAML{Value: v}, nil
	case format.TOMLFormat:
		v, err := ir.ToTOML(node)
		if err != nil {
			return nil, &ConversionError{Target: kind, Err: err}
		}
		return TOML{Value: v}, nil
	default:
		return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, kind)
	}
}
