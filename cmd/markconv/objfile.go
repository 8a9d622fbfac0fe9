package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/markconv"

	"github.com/scott-cotton/cli"
)

// getObjFile loads the document at path. "-" reads stdin, which requires
// an input format; an input format also overrides file extensions.
func getObjFile(cc *cli.Context, cfg *MainConfig, path string) (*markconv.Transcoder, error) {
	if cfg.InFormat == nil {
		if path == "-" {
			return nil, fmt.Errorf("%w: reading stdin requires -I", cli.ErrUsage)
		}
		return markconv.FromPath(path)
	}
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, &markconv.FileReadError{Path: path, Err: err}
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, &markconv.FileReadError{Path: path, Err: err}
	}
	doc, err := markconv.Parse(*cfg.InFormat, d)
	if err != nil {
		return nil, err
	}
	return markconv.New(doc)
}

// docArgs returns the document paths for a command, stdin when there are
// none.
func docArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
