package markconv

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"github.com/signadot/markconv/format"
	"github.com/signadot/markconv/ir"
)

var samples = []string{"testdata/test.yaml", "testdata/test.json", "testdata/test.toml"}

func mustLoad(t *testing.T, path string) *Transcoder {
	t.Helper()
	tc, err := FromPath(path)
	if err != nil {
		t.Fatalf("load %s: %v", path, err)
	}
	return tc
}

func TestToJSONAcrossFormats(t *testing.T) {
	want := map[string]any{
		"enabled": true,
		"name":    "TestName",
		"owner": map[string]any{
			"email": "test@example.com",
			"id":    json.Number("42"),
		},
		"ratio": json.Number("1.5"),
		"tags":  []any{"a", "b"},
	}
	for _, path := range samples {
		t.Run(filepath.Base(path), func(t *testing.T) {
			j, err := mustLoad(t, path).ToJSON()
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, j.Value); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestToYAMLAcrossFormats(t *testing.T) {
	want := yaml.MapSlice{
		{Key: "enabled", Value: true},
		{Key: "name", Value: "TestName"},
		{Key: "owner", Value: yaml.MapSlice{
			{Key: "email", Value: "test@example.com"},
			{Key: "id", Value: uint64(42)},
		}},
		{Key: "ratio", Value: 1.5},
		{Key: "tags", Value: []any{"a", "b"}},
	}
	for _, path := range samples {
		t.Run(filepath.Base(path), func(t *testing.T) {
			y, err := mustLoad(t, path).ToYAML()
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, y.Value); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestToTOMLAcrossFormats(t *testing.T) {
	want := map[string]any{
		"enabled": true,
		"name":    "TestName",
		"owner": map[string]any{
			"email": "test@example.com",
			"id":    int64(42),
		},
		"ratio": 1.5,
		"tags":  []any{"a", "b"},
	}
	for _, path := range samples {
		t.Run(filepath.Base(path), func(t *testing.T) {
			tm, err := mustLoad(t, path).ToTOML()
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, tm.Value); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestNameExample(t *testing.T) {
	inputs := map[format.Format]string{
		format.TOMLFormat: `name = "TestName"`,
		format.JSONFormat: `{"name":"TestName"}`,
		format.YAMLFormat: `name: TestName`,
	}
	for kind, src := range inputs {
		t.Run(kind.String(), func(t *testing.T) {
			f, err := Parse(kind, []byte(src))
			if err != nil {
				t.Fatal(err)
			}
			tc, err := New(f)
			if err != nil {
				t.Fatal(err)
			}
			j, err := tc.ToJSON()
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(map[string]any{"name": "TestName"}, j.Value); diff != "" {
				t.Errorf("json (-want +got):\n%s", diff)
			}
			y, err := tc.ToYAML()
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(yaml.MapSlice{{Key: "name", Value: "TestName"}}, y.Value); diff != "" {
				t.Errorf("yaml (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIdentityIsCopy(t *testing.T) {
	tc := mustLoad(t, "testdata/test.json")
	first, err := tc.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	orig, err := tc.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	m := first.Value.(map[string]any)
	m["name"] = "changed"
	m["owner"].(map[string]any)["id"] = json.Number("0")
	m["tags"].([]any)[0] = "z"

	second, err := tc.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(orig.Value, second.Value); diff != "" {
		t.Errorf("stored document changed (-want +got):\n%s", diff)
	}
}

func TestIdentityIsCopyYAMLAndTOML(t *testing.T) {
	ytc := mustLoad(t, "testdata/test.yaml")
	y, err := ytc.ToYAML()
	if err != nil {
		t.Fatal(err)
	}
	y.Value.(yaml.MapSlice)[1].Value = "changed"
	y2, err := ytc.ToYAML()
	if err != nil {
		t.Fatal(err)
	}
	if got := y2.Value.(yaml.MapSlice)[1].Value; got != "TestName" {
		t.Errorf("yaml name is %v after mutating a copy", got)
	}

	ttc := mustLoad(t, "testdata/test.toml")
	tm, err := ttc.ToTOML()
	if err != nil {
		t.Fatal(err)
	}
	tm.Value["owner"].(map[string]any)["id"] = int64(7)
	tm2, err := ttc.ToTOML()
	if err != nil {
		t.Fatal(err)
	}
	if got := tm2.Value["owner"].(map[string]any)["id"]; got != int64(42) {
		t.Errorf("toml id is %v after mutating a copy", got)
	}
}

func TestFromPathExtensions(t *testing.T) {
	for _, tc := range []struct {
		path string
		want format.Format
	}{
		{"testdata/test.yaml", format.YAMLFormat},
		{"testdata/test.yml", format.YAMLFormat},
		{"testdata/upper.YML", format.YAMLFormat},
		{"testdata/test.json", format.JSONFormat},
		{"testdata/test.toml", format.TOMLFormat},
	} {
		t.Run(tc.path, func(t *testing.T) {
			if got := mustLoad(t, tc.path).Kind(); got != tc.want {
				t.Errorf("got %s want %s", got, tc.want)
			}
		})
	}
}

func TestFromPathErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		path string
		is   error
	}{
		{"txt", "testdata/test.txt", ErrUnknownExtension},
		{"no extension", "testdata/noext", ErrUnknownExtension},
		{"unknown and missing", "testdata/missing.txt", ErrUnknownExtension},
		{"missing", "testdata/missing.json", ErrFileRead},
		{"not utf8", "testdata/latin1.json", ErrFileRead},
		{"bad json", "testdata/bad.json", ErrParse},
		{"bad toml", "testdata/bad.toml", ErrParse},
		{"several yaml documents", "testdata/multi.yaml", ErrParse},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := FromPath(tc.path)
			if err == nil {
				t.Fatalf("expected error, got %v", tr)
			}
			if !errors.Is(err, tc.is) {
				t.Errorf("error %q is not %q", err, tc.is)
			}
		})
	}
}

func TestFromPathErrorDetails(t *testing.T) {
	_, err := FromPath("testdata/missing.json")
	var rerr *FileReadError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected *FileReadError, got %T", err)
	}
	if rerr.Path != "testdata/missing.json" {
		t.Errorf("path %q", rerr.Path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("%v does not wrap os.ErrNotExist", err)
	}
	if errors.Is(err, ErrParse) {
		t.Errorf("%v should not be a parse error", err)
	}

	_, err = FromPath("testdata/bad.json")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Format != format.JSONFormat {
		t.Errorf("parse error format %s", perr.Format)
	}

	_, err = FromPath("testdata/noext")
	var eerr *UnknownExtensionError
	if !errors.As(err, &eerr) {
		t.Fatalf("expected *UnknownExtensionError, got %T", err)
	}
	if want := `unknown file extension for file "testdata/noext"`; err.Error() != want {
		t.Errorf("got %q want %q", err.Error(), want)
	}
}

func TestNullToTOML(t *testing.T) {
	tc := mustLoad(t, "testdata/null.yaml")
	_, err := tc.ToTOML()
	if !errors.Is(err, ErrConversion) {
		t.Fatalf("expected conversion error, got %v", err)
	}
	if !errors.Is(err, ir.ErrNull) {
		t.Errorf("%v does not wrap ir.ErrNull", err)
	}
	var cerr *ConversionError
	if !errors.As(err, &cerr) || cerr.Target != format.TOMLFormat {
		t.Errorf("expected TOML conversion error, got %v", err)
	}

	j, err := tc.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]any{"name": "TestName", "owner": nil}, j.Value); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestScalarRootToTOML(t *testing.T) {
	tc, err := New(JSON{Value: []any{json.Number("1")}})
	if err != nil {
		t.Fatal(err)
	}
	_, err = tc.ToTOML()
	if !errors.Is(err, ir.ErrNotTable) {
		t.Errorf("expected ErrNotTable, got %v", err)
	}
}

func TestNew(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNilFormat) {
		t.Errorf("expected ErrNilFormat, got %v", err)
	}
	tc, err := New(TOML{Value: map[string]any{"a": int64(1)}})
	if err != nil {
		t.Fatal(err)
	}
	if tc.Kind() != format.TOMLFormat {
		t.Errorf("kind %s", tc.Kind())
	}
}

func TestToIR(t *testing.T) {
	var nodes []*ir.Node
	for _, path := range samples {
		node, err := mustLoad(t, path).ToIR()
		if err != nil {
			t.Fatal(err)
		}
		nodes = append(nodes, node)
	}
	for i := 1; i < len(nodes); i++ {
		if !ir.Equal(nodes[0], nodes[i]) {
			t.Errorf("%s and %s differ", samples[0], samples[i])
		}
	}
}

func TestTo(t *testing.T) {
	tc := mustLoad(t, "testdata/test.toml")
	for _, kind := range format.AllFormats() {
		f, err := tc.To(kind)
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		if f.Kind() != kind {
			t.Errorf("got %s want %s", f.Kind(), kind)
		}
	}
	if _, err := tc.To(format.Format(9)); !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestUint64AcrossFormats(t *testing.T) {
	for _, src := range []string{`{"n": 9223372036854775808}`, `{"n": 18446744073709551615}`} {
		j, err := ParseJSON([]byte(src))
		if err != nil {
			t.Fatal(err)
		}
		tc, err := New(j)
		if err != nil {
			t.Fatal(err)
		}
		y, err := tc.ToYAML()
		if err != nil {
			t.Fatalf("%s: %v", src, err)
		}
		want, err := strconv.ParseUint(string(j.Value.(map[string]any)["n"].(json.Number)), 10, 64)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(yaml.MapSlice{{Key: "n", Value: want}}, y.Value); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
		if _, err := tc.ToTOML(); !errors.Is(err, ir.ErrIntRange) {
			t.Errorf("%s: got %v, want ErrIntRange for TOML", src, err)
		}
	}

	// goccy decodes the maximum as uint64; it must survive YAML -> JSON -> YAML.
	big := mustLoad(t, "testdata/big.yaml")
	j, err := big.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	if got := j.Value.(map[string]any)["big"]; got != json.Number("18446744073709551615") {
		t.Errorf("json big is %v", got)
	}
	jtc, err := New(j)
	if err != nil {
		t.Fatal(err)
	}
	y, err := jtc.ToYAML()
	if err != nil {
		t.Fatal(err)
	}
	orig, err := big.ToYAML()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(orig.Value, y.Value); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestNewPointerVariants(t *testing.T) {
	for _, f := range []Format{(*JSON)(nil), (*YAML)(nil), (*TOML)(nil)} {
		if _, err := New(f); !errors.Is(err, ErrNilFormat) {
			t.Errorf("%T: got %v, want ErrNilFormat", f, err)
		}
	}

	src := &JSON{Value: map[string]any{"name": "TestName"}}
	tc, err := New(src)
	if err != nil {
		t.Fatal(err)
	}
	if tc.Kind() != format.JSONFormat {
		t.Errorf("kind %s", tc.Kind())
	}
	j, err := tc.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	j.Value.(map[string]any)["name"] = "changed"
	if got := src.Value.(map[string]any)["name"]; got != "TestName" {
		t.Errorf("identity conversion of a pointer variant shares storage: %v", got)
	}

	v, err := Value(&TOML{Value: map[string]any{"a": int64(1)}})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := v.(TOML); !ok {
		t.Errorf("got %T, want TOML", v)
	}
}
