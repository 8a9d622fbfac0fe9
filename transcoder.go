package markconv

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/signadot/markconv/debug"
	"github.com/signadot/markconv/format"
	"github.com/signadot/markconv/ir"
)

// Transcoder wraps a parsed document and converts it to the value
// representation of other formats. The wrapped document is never modified.
type Transcoder struct {
	input Format
}

// New returns a Transcoder for an already parsed document. Pointer
// variants are dereferenced; nil documents fail with ErrNilFormat.
func New(input Format) (*Transcoder, error) {
	v, err := Value(input)
	if err != nil {
		return nil, err
	}
	return &Transcoder{input: v}, nil
}

// FromPath reads the file at path and parses it with the format named by
// its extension. The extension is checked before the file is read.
func FromPath(path string) (*Transcoder, error) {
	input, err := load(path)
	if err != nil {
		return nil, err
	}
	return &Transcoder{input: input}, nil
}

func load(path string) (Format, error) {
	kind, ok := format.FromPath(path)
	if !ok {
		return nil, &UnknownExtensionError{Path: path}
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileReadError{Path: path, Err: err}
	}
	if !utf8.Valid(d) {
		return nil, &FileReadError{Path: path, Err: errInvalidUTF8}
	}
	if debug.Load() {
		debug.Logf("loading %s as %s (%d bytes)\n", path, kind, len(d))
	}
	return Parse(kind, d)
}

// Kind returns the format of the wrapped document.
func (t *Transcoder) Kind() format.Format {
	return t.input.Kind()
}

// ToJSON returns the document as an encoding/json value tree. A JSON
// document is deep copied.
func (t *Transcoder) ToJSON() (JSON, error) {
	if j, ok := t.input.(JSON); ok {
		return JSON{Value: deepCopy(j.Value)}, nil
	}
	v, err := t.convert(format.JSONFormat, ir.ToJSON)
	if err != nil {
		return JSON{}, err
	}
	return JSON{Value: v}, nil
}

// ToYAML returns the document as a goccy/go-yaml value tree. A YAML
// document is deep copied.
func (t *Transcoder) ToYAML() (YAML, error) {
	if y, ok := t.input.(YAML); ok {
		return YAML{Value: deepCopy(y.Value)}, nil
	}
	v, err := t.convert(format.YAMLFormat, ir.ToYAML)
	if err != nil {
		return YAML{}, err
	}
	return YAML{Value: v}, nil
}

// ToTOML returns the document as a TOML table. It fails when the document
// is not a table or contains nulls. A TOML document is deep copied.
func (t *Transcoder) ToTOML() (TOML, error) {
	if tm, ok := t.input.(TOML); ok {
		return TOML{Value: deepCopy(tm.Value).(map[string]any)}, nil
	}
	v, err := t.convert(format.TOMLFormat, func(n *ir.Node) (any, error) {
		return ir.ToTOML(n)
	})
	if err != nil {
		return TOML{}, err
	}
	return TOML{Value: v.(map[string]any)}, nil
}

// To converts the document to kind.
func (t *Transcoder) To(kind format.Format) (Format, error) {
	var (
		f   Format
		err error
	)
	switch kind {
	case format.JSONFormat:
		f, err = t.ToJSON()
	case format.YAMLFormat:
		f, err = t.ToYAML()
	case format.TOMLFormat:
		f, err = t.ToTOML()
	default:
		return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, kind)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// ToIR returns the document in the intermediate representation shared by
// all formats.
func (t *Transcoder) ToIR() (*ir.Node, error) {
	return ir.FromAny(t.input.native())
}

func (t *Transcoder) convert(target format.Format, to func(*ir.Node) (any, error)) (any, error) {
	node, err := t.ToIR()
	if err != nil {
		return nil, &ConversionError{Target: target, Err: err}
	}
	v, err := to(node)
	if err != nil {
		return nil, &ConversionError{Target: target, Err: err}
	}
	if debug.Convert() {
		debug.Logf("converted %s to %s: %s\n", t.Kind(), target, v)
	}
	return v, nil
}
