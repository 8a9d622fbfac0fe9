package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/markconv"
	"github.com/signadot/markconv/format"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

type EncState struct {
	indent  int
	format  format.Format
	convert bool
	colors  *Colors
}

// Encode writes doc to w followed by a newline. With EncodeFormat, doc is
// first converted to that format.
func Encode(doc markconv.Format, w io.Writer, opts ...EncodeOption) error {
	doc, err := markconv.Value(doc)
	if err != nil {
		return err
	}
	es := &EncState{
		indent: 2,
		format: doc.Kind(),
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.convert && es.format != doc.Kind() {
		conv, err := convert(doc, es.format)
		if err != nil {
			return err
		}
		doc = conv
	}
	buf := bytes.NewBuffer(nil)
	switch d := doc.(type) {
	case markconv.JSON:
		err = encodeJSON(d.Value, buf, es)
	case markconv.YAML:
		err = encodeYAML(d.Value, buf, es)
	case markconv.TOML:
		err = encodeTOML(d.Value, buf, es)
	default:
		err = fmt.Errorf("%w: %T", format.ErrBadFormat, doc)
	}
	if err != nil {
		return err
	}
	out := buf.String()
	if es.colors != nil && !doc.Kind().IsTOML() {
		out = es.colors.colorize(strings.TrimRight(out, "\n"))
	}
	out = strings.TrimRight(out, "\n") + "\n"
	_, err = io.WriteString(w, out)
	return err
}

func convert(doc markconv.Format, f format.Format) (markconv.Format, error) {
	tc, err := markconv.New(doc)
	if err != nil {
		return nil, err
	}
	return tc.To(f)
}

func encodeJSON(v any, w io.Writer, es *EncState) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if es.indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", es.indent))
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("could not encode JSON: %w", err)
	}
	return nil
}

func encodeYAML(v any, w io.Writer, es *EncState) error {
	indent := es.indent
	if indent <= 0 {
		indent = 2
	}
	d, err := yaml.MarshalWithOptions(v, yaml.Indent(indent), yaml.IndentSequence(true))
	if err != nil {
		return fmt.Errorf("could not encode YAML: %w", err)
	}
	_, err = w.Write(d)
	return err
}

func encodeTOML(v map[string]any, w io.Writer, es *EncState) error {
	enc := toml.NewEncoder(w)
	enc.Indent = strings.Repeat(" ", es.indent)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("could not encode TOML: %w", err)
	}
	return nil
}
