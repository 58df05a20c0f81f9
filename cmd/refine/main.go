// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Command refine checks a YAML-encoded declaration set and prints the inferred type of each declaration.
//
//	refine [-trace] [-types] [-format text|yaml] [-source-order] [-color auto|always|never] [file ...]
//
// When no files are given, declarations are read from stdin.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/wdamron/refine"
	"github.com/wdamron/refine/ast"
	"github.com/wdamron/refine/typed"
	"github.com/wdamron/refine/types"
)

var (
	flagTrace       = flag.Bool("trace", false, "write each checking step to stderr")
	flagTypes       = flag.Bool("types", false, "print the interned type table")
	flagFormat      = flag.String("format", "text", "output format: text or yaml")
	flagSourceOrder = flag.Bool("source-order", false, "check declarations in source order rather than dependency order")
	flagColor       = flag.String("color", "auto", "color errors: auto, always, or never")
)

func main() {
	flag.Parse()
	if *flagFormat != "text" && *flagFormat != "yaml" {
		fmt.Fprintf(os.Stderr, "unknown format %q\n", *flagFormat)
		os.Exit(2)
	}

	args := flag.Args()
	if len(args) == 0 {
		if err := process(os.Stdin, "stdin"); err != nil {
			report(err)
			os.Exit(1)
		}
		return
	}

	exit := 0
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			report(err)
			exit = 1
			continue
		}
		if err := process(f, path); err != nil {
			report(err)
			exit = 1
		}
		f.Close()
	}
	os.Exit(exit)
}

func process(r io.Reader, filename string) error {
	decls, err := ast.DecodeDecls(r)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}

	var opts []refine.Option
	if *flagTrace {
		exprs := 0
		for _, d := range decls {
			ast.WalkExpr(d.Body, func(ast.Expr) { exprs++ })
		}
		fmt.Fprintf(os.Stderr, "%s: decoded %d declarations, %d expressions\n", filename, len(decls), exprs)
		opts = append(opts, refine.WithTrace(os.Stderr))
	}
	if *flagSourceOrder {
		opts = append(opts, refine.WithSourceOrder())
	}
	prog, err := refine.Check(decls, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	for _, w := range prog.Warnings {
		warn(fmt.Errorf("%s: %w", filename, w))
	}
	if *flagTrace {
		nodes := 0
		for _, name := range prog.Names {
			typed.WalkExpr(prog.Values[name], func(*typed.Expr) { nodes++ })
		}
		fmt.Fprintf(os.Stderr, "%s: session %s elaborated %d expressions, %d types\n",
			filename, prog.ID, nodes, prog.Types.Len())
	}

	switch *flagFormat {
	case "yaml":
		return writeYAML(os.Stdout, prog)
	default:
		fmt.Print(typed.ProgramString(prog))
		if *flagTypes {
			prog.Types.Range(func(id types.TypeId, t types.Type) bool {
				fmt.Printf("#%d %s = %s\n", id, t.TypeName(), types.TypeString(prog.Types, id))
				return true
			})
		}
	}
	return nil
}

type declSummary struct {
	Name   string   `yaml:"name"`
	Params []string `yaml:"params,omitempty"`
	Type   string   `yaml:"type"`
	Value  string   `yaml:"value"`
}

type typeSummary struct {
	Id   types.TypeId `yaml:"id"`
	Kind string       `yaml:"kind"`
	Type string       `yaml:"type"`
}

func writeYAML(w io.Writer, prog *typed.Program) error {
	var out struct {
		Session string        `yaml:"session"`
		Decls   []declSummary `yaml:"decls"`
		Types   []typeSummary `yaml:"types,omitempty"`
	}
	out.Session = prog.ID.String()
	for _, name := range prog.Names {
		tpl := prog.Context[name]
		out.Decls = append(out.Decls, declSummary{
			Name:   name,
			Params: tpl.Params,
			Type:   types.TypeString(prog.Types, tpl.Type),
			Value:  typed.ExprString(prog.Types, prog.Values[name]),
		})
	}
	if *flagTypes {
		prog.Types.Range(func(id types.TypeId, t types.Type) bool {
			out.Types = append(out.Types, typeSummary{Id: id, Kind: t.TypeName(), Type: types.TypeString(prog.Types, id)})
			return true
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&out); err != nil {
		return err
	}
	return enc.Close()
}

const (
	colorRed    = "\x1b[31m"
	colorYellow = "\x1b[33m"
	colorReset  = "\x1b[0m"
)

func useColor() bool {
	switch *flagColor {
	case "always":
		return true
	case "never":
		return false
	}
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func report(err error) {
	var te *refine.TypeError
	kind := "error"
	if errors.As(err, &te) {
		kind = te.Kind.String()
	}
	if useColor() {
		fmt.Fprintf(os.Stderr, "%s%s%s: %v\n", colorRed, kind, colorReset, err)
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", kind, err)
}

func warn(err error) {
	if useColor() {
		fmt.Fprintf(os.Stderr, "%swarning%s: %v\n", colorYellow, colorReset, err)
		return
	}
	fmt.Fprintf(os.Stderr, "warning: %v\n", err)
}
