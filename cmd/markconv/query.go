package main

import (
	"fmt"

	"github.com/signadot/markconv"
	"github.com/signadot/markconv/debug"
	"github.com/signadot/markconv/encode"
	"github.com/signadot/markconv/format"
	"github.com/signadot/markconv/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	src := args[0]
	w := cc.Out
	ofmt := cfg.outFormat(format.JSONFormat)
	opts := cfg.encOpts(w, format.JSONFormat)
	var last *ir.Node
	for i, file := range docArgs(args[1:]) {
		tc, err := getObjFile(cc, cfg.MainConfig, file)
		if err != nil {
			return err
		}
		node, err := tc.ToIR()
		if err != nil {
			return fmt.Errorf("error reading %s: %w", file, err)
		}
		res, err := evalQuery(src, node)
		if err != nil {
			return fmt.Errorf("error evaluating %q on %s: %w", src, file, err)
		}
		doc, err := markconv.FromIR(res, ofmt)
		if err != nil {
			return err
		}
		if i > 0 {
			if err := writeSep(w, ofmt); err != nil {
				return err
			}
		}
		if err := encode.Encode(doc, w, opts...); err != nil {
			return err
		}
		last = res
	}
	if cfg.Exit && !ir.Truth(last) {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// queryEnv binds the document to "doc" and, for objects, each top level
// field to its own name.
func queryEnv(node *ir.Node) (map[string]any, error) {
	v, err := ir.ToAny(node)
	if err != nil {
		return nil, err
	}
	env := map[string]any{}
	if m, ok := v.(map[string]any); ok {
		for k, fv := range m {
			env[k] = fv
		}
	}
	env["doc"] = v
	return env, nil
}

func compileQuery(src string, env map[string]any) (*vm.Program, error) {
	return expr.Compile(src, expr.Env(env), expr.AllowUndefinedVariables())
}

func evalQuery(src string, node *ir.Node) (*ir.Node, error) {
	env, err := queryEnv(node)
	if err != nil {
		return nil, err
	}
	prg, err := compileQuery(src, env)
	if err != nil {
		return nil, err
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, err
	}
	if debug.Convert() {
		debug.Logf("query %q -> %v\n", src, res)
	}
	return ir.FromAny(res)
}
