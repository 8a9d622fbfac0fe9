package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/signadot/markconv"
	"github.com/signadot/markconv/format"
	"github.com/signadot/markconv/ir"

	"github.com/google/go-cmp/cmp"
)

func load(t *testing.T, path string) *markconv.Transcoder {
	t.Helper()
	tc, err := markconv.FromPath(path)
	if err != nil {
		t.Fatal(err)
	}
	return tc
}

func TestCount(t *testing.T) {
	if n := count(true, false, true); n != 2 {
		t.Errorf("got %d", n)
	}
}

func TestOutFormat(t *testing.T) {
	cfg := &MainConfig{}
	if f := cfg.outFormat(format.JSONFormat); f != format.JSONFormat {
		t.Errorf("default: %s", f)
	}
	cfg.Y = true
	if f := cfg.outFormat(format.JSONFormat); f != format.YAMLFormat {
		t.Errorf("-y: %s", f)
	}
	tf := format.TOMLFormat
	cfg.OutFormat = &tf
	if f := cfg.outFormat(format.JSONFormat); f != format.TOMLFormat {
		t.Errorf("-O: %s", f)
	}
	if cfg.colors(bytes.NewBuffer(nil)) {
		t.Error("buffer output should not be colored")
	}
}

func TestWriteSep(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := writeSep(buf, format.YAMLFormat); err != nil {
		t.Fatal(err)
	}
	if err := writeSep(buf, format.JSONFormat); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "---\n\n" {
		t.Errorf("got %q", got)
	}
}

func TestEvalQuery(t *testing.T) {
	node, err := load(t, "../../testdata/test.toml").ToIR()
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		src  string
		want *ir.Node
	}{
		{"name", ir.FromString("TestName")},
		{"doc.owner.id + 1", ir.FromInt(43)},
		{"len(tags)", ir.FromInt(2)},
		{"enabled && ratio > 1", ir.FromBool(true)},
		{"missing", ir.Null()},
	} {
		t.Run(tc.src, func(t *testing.T) {
			got, err := evalQuery(tc.src, node)
			if err != nil {
				t.Fatal(err)
			}
			if !ir.Equal(got, tc.want) {
				t.Errorf("got %v want %v", got, tc.want)
			}
		})
	}
	if _, err := evalQuery("name +", node); err == nil {
		t.Error("expected compile error")
	}
}

func TestQueryEnvScalar(t *testing.T) {
	env, err := queryEnv(ir.FromInt(3))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]any{"doc": int64(3)}, env); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLineDiff(t *testing.T) {
	got := lineDiff("a: 1\nb: 2\n", "a: 1\nb: 3\n", false)
	want := " a: 1\n-b: 2\n+b: 3\n"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestDiffInputs(t *testing.T) {
	cfg := &DiffConfig{MainConfig: &MainConfig{}}
	buf := bytes.NewBuffer(nil)
	differs, err := diffInputs(cfg, buf, load(t, "../../testdata/test.yaml"), load(t, "../../testdata/test.json"))
	if err != nil {
		t.Fatal(err)
	}
	if differs || buf.Len() != 0 {
		t.Errorf("equal documents reported different: %q", buf.String())
	}

	differs, err = diffInputs(cfg, buf, load(t, "../../testdata/test.yaml"), load(t, "../../testdata/null.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if !differs {
		t.Fatal("expected difference")
	}
	out := buf.String()
	for _, want := range []string{"-enabled: true", "+owner: null", " name: TestName"} {
		if !strings.Contains(out, want) {
			t.Errorf("%q does not contain %q", out, want)
		}
	}
}

func TestMergePatch(t *testing.T) {
	a, err := markconv.New(markconv.JSON{Value: map[string]any{"a": json.Number("1"), "b": "x"}})
	if err != nil {
		t.Fatal(err)
	}
	b, err := markconv.New(markconv.TOML{Value: map[string]any{"a": int64(2), "b": "x"}})
	if err != nil {
		t.Fatal(err)
	}
	patch, err := mergePatch(a, b)
	if err != nil {
		t.Fatal(err)
	}
	j, ok := patch.(markconv.JSON)
	if !ok {
		t.Fatalf("patch is %T", patch)
	}
	if diff := cmp.Diff(map[string]any{"a": json.Number("2")}, j.Value); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestYAMLTextSortsFields(t *testing.T) {
	node, err := load(t, "../../testdata/null.yaml").ToIR()
	if err != nil {
		t.Fatal(err)
	}
	got, err := yamlText(node)
	if err != nil {
		t.Fatal(err)
	}
	if want := "name: TestName\nowner: null\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestDiffInputsUint64(t *testing.T) {
	cfg := &DiffConfig{MainConfig: &MainConfig{}}
	buf := bytes.NewBuffer(nil)
	big := "../../testdata/big.yaml"
	differs, err := diffInputs(cfg, buf, load(t, big), load(t, big))
	if err != nil {
		t.Fatal(err)
	}
	if differs {
		t.Errorf("identical documents differ: %q", buf.String())
	}
	differs, err = diffInputs(cfg, buf, load(t, big), load(t, "../../testdata/null.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if !differs {
		t.Fatal("expected difference")
	}
	if out := buf.String(); !strings.Contains(out, "-big: 18446744073709551615") {
		t.Errorf("%q does not show the removed big integer", out)
	}
}
