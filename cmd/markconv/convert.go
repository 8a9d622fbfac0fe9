package main

import (
	"fmt"
	"io"

	"github.com/signadot/markconv/encode"
	"github.com/signadot/markconv/format"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	w := cc.Out
	ofmt := cfg.outFormat(format.JSONFormat)
	opts := cfg.encOpts(w, format.JSONFormat)
	for i, file := range docArgs(args) {
		tc, err := getObjFile(cc, cfg.MainConfig, file)
		if err != nil {
			return err
		}
		doc, err := tc.To(ofmt)
		if err != nil {
			return fmt.Errorf("error converting %s: %w", file, err)
		}
		if i > 0 {
			if err := writeSep(w, ofmt); err != nil {
				return err
			}
		}
		if err := encode.Encode(doc, w, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}

func writeSep(w io.Writer, f format.Format) error {
	sep := "\n"
	if f.IsYAML() {
		sep = "---\n"
	}
	_, err := io.WriteString(w, sep)
	return err
}
