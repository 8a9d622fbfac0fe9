package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/markconv"
	"github.com/signadot/markconv/encode"
	"github.com/signadot/markconv/format"
	"github.com/signadot/markconv/ir"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cc, cfg.MainConfig, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cc, cfg.MainConfig, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	differs, err := diffInputs(cfg, cc.Out, a, b)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffInputs(cfg *DiffConfig, w io.Writer, a, b *markconv.Transcoder) (bool, error) {
	an, err := a.ToIR()
	if err != nil {
		return false, err
	}
	bn, err := b.ToIR()
	if err != nil {
		return false, err
	}
	if ir.Equal(an, bn) {
		return false, nil
	}
	if cfg.Patch {
		patch, err := mergePatch(a, b)
		if err != nil {
			return false, err
		}
		return true, encode.Encode(patch, w, cfg.encOpts(w, format.JSONFormat)...)
	}
	at, err := yamlText(an)
	if err != nil {
		return false, err
	}
	bt, err := yamlText(bn)
	if err != nil {
		return false, err
	}
	_, err = io.WriteString(w, lineDiff(at, bt, cfg.colors(w)))
	return true, err
}

// yamlText renders a node as YAML with object fields sorted, so that field
// order alone never shows up as a difference.
func yamlText(node *ir.Node) (string, error) {
	v, err := ir.ToJSON(node)
	if err != nil {
		return "", err
	}
	canon, err := ir.FromAny(v)
	if err != nil {
		return "", err
	}
	doc, err := markconv.FromIR(canon, format.YAMLFormat)
	if err != nil {
		return "", err
	}
	return encode.MustString(doc) + "\n", nil
}

// mergePatch returns the RFC 7386 merge patch turning a into b.
func mergePatch(a, b *markconv.Transcoder) (markconv.Format, error) {
	aj, err := jsonBytes(a)
	if err != nil {
		return nil, err
	}
	bj, err := jsonBytes(b)
	if err != nil {
		return nil, err
	}
	d, err := jsonpatch.CreateMergePatch(aj, bj)
	if err != nil {
		return nil, fmt.Errorf("could not create merge patch: %w", err)
	}
	return markconv.ParseJSON(d)
}

func jsonBytes(tc *markconv.Transcoder) ([]byte, error) {
	j, err := tc.ToJSON()
	if err != nil {
		return nil, err
	}
	return json.Marshal(j.Value)
}

// lineDiff returns a unified style listing of the lines of a and b, with
// removed lines prefixed by "-" and added lines by "+".
func lineDiff(a, b string, colored bool) string {
	del, ins := fmt.Sprint, fmt.Sprint
	if colored {
		del = color.New(color.FgRed).SprintFunc()
		ins = color.New(color.FgGreen).SprintFunc()
	}
	dmp := diffpatch.New()
	ac, bc, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ac, bc, false), lines)
	buf := &strings.Builder{}
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		for _, ln := range strings.Split(text, "\n") {
			switch d.Type {
			case diffpatch.DiffDelete:
				buf.WriteString(del("-"+ln) + "\n")
			case diffpatch.DiffInsert:
				buf.WriteString(ins("+"+ln) + "\n")
			case diffpatch.DiffEqual:
				buf.WriteString(" " + ln + "\n")
			}
		}
	}
	return buf.String()
}
