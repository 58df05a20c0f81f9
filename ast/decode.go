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

package ast

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeDecls reads a YAML-encoded declaration set.
//
//	decls:
//	  - name: f
//	    vars: [T]
//	    type: _
//	    body:
//	      anno:
//	        expr: {fun: {pat: {bind: a}, body: {name: a}}}
//	        type: {arrow: [T, T]}
//	  - name: x
//	    type: {range: [0, 10]}
//	    body: {lit: {int: 5}}
//
// Types are written as `Bool`, `Regex`, `_`, `invalid`, a type parameter name, or one of
// `{range: [lo, hi]}`, `{string: pattern}`, `{arrow: [from, into]}`. Expressions are written as
// `impossible`, `invalid`, or a single-key mapping: anno, fun, let, call, lit, name, op.
// Patterns are written as `_` or one of `{bind: x}`, `{lit: ...}`, `{constructor: C}`, `{apply: [p, q]}`.
// Literals are written as one of `{bool: true}`, `{int: 5}`, `{string: s}`, `{regex: r}`.
func DecodeDecls(r io.Reader) (Decls, error) {
	var file struct {
		Decls []struct {
			Name string    `yaml:"name"`
			Vars []string  `yaml:"vars"`
			Type yaml.Node `yaml:"type"`
			Body yaml.Node `yaml:"body"`
		} `yaml:"decls"`
	}
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}
	decls := make(Decls, 0, len(file.Decls))
	for i := range file.Decls {
		d := &file.Decls[i]
		if d.Name == "" {
			return nil, fmt.Errorf("declaration %d has no name", i)
		}
		anno, err := DecodeType(&d.Type)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.Name, err)
		}
		body, err := DecodeExpr(&d.Body)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.Name, err)
		}
		decls = append(decls, &ValueDef{Name: d.Name, Vars: d.Vars, Anno: anno, Body: body})
	}
	return decls, nil
}

func syntaxError(n *yaml.Node, format string, args ...interface{}) error {
	return fmt.Errorf("line %d: %s", n.Line, fmt.Sprintf(format, args...))
}

// single returns the key and value of a single-entry mapping.
func single(n *yaml.Node) (string, *yaml.Node, error) {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return "", nil, syntaxError(n, "expected a mapping with a single key")
	}
	return n.Content[0].Value, n.Content[1], nil
}

func fields(n *yaml.Node, names ...string) ([]*yaml.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, syntaxError(n, "expected a mapping with keys %v", names)
	}
	out := make([]*yaml.Node, len(names))
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		found := false
		for j, name := range names {
			if name == key {
				out[j], found = n.Content[i+1], true
				break
			}
		}
		if !found {
			return nil, syntaxError(n.Content[i], "unexpected key %q", key)
		}
	}
	for j, name := range names {
		if out[j] == nil {
			return nil, syntaxError(n, "missing key %q", name)
		}
	}
	return out, nil
}

func pair(n *yaml.Node) (*yaml.Node, *yaml.Node, error) {
	if n.Kind != yaml.SequenceNode || len(n.Content) != 2 {
		return nil, nil, syntaxError(n, "expected a sequence of 2 elements")
	}
	return n.Content[0], n.Content[1], nil
}

// DecodeType converts a YAML node into a surface type. An empty node decodes to nil.
func DecodeType(n *yaml.Node) (Type, error) {
	switch n.Kind {
	case 0:
		return nil, nil
	case yaml.ScalarNode:
		switch n.Value {
		case "Bool":
			return &BoolType{}, nil
		case "Regex":
			return &RegexType{}, nil
		case "_":
			return &WildcardType{}, nil
		case "invalid":
			return &InvalidType{}, nil
		case "":
			return nil, syntaxError(n, "empty type")
		}
		return &NamedType{Name: n.Value}, nil
	}
	key, val, err := single(n)
	if err != nil {
		return nil, err
	}
	switch key {
	case "range":
		var bounds []int64
		if err := val.Decode(&bounds); err != nil {
			return nil, err
		}
		if len(bounds) != 2 {
			return nil, syntaxError(val, "range expects [lo, hi]")
		}
		return &RangeType{Lo: bounds[0], Hi: bounds[1]}, nil
	case "string":
		return &StringType{Pattern: val.Value}, nil
	case "arrow":
		from, into, err := pair(val)
		if err != nil {
			return nil, err
		}
		ft, err := DecodeType(from)
		if err != nil {
			return nil, err
		}
		it, err := DecodeType(into)
		if err != nil {
			return nil, err
		}
		return &ArrowType{From: ft, Into: it}, nil
	}
	return nil, syntaxError(n, "unknown type %q", key)
}

// DecodeExpr converts a YAML node into a surface expression.
func DecodeExpr(n *yaml.Node) (Expr, error) {
	switch n.Kind {
	case 0:
		return nil, fmt.Errorf("missing expression")
	case yaml.ScalarNode:
		switch n.Value {
		case "impossible":
			return &Impossible{}, nil
		case "invalid":
			return &Invalid{}, nil
		}
		return nil, syntaxError(n, "unknown expression %q", n.Value)
	}
	key, val, err := single(n)
	if err != nil {
		return nil, err
	}
	switch key {
	case "anno":
		fs, err := fields(val, "expr", "type")
		if err != nil {
			return nil, err
		}
		e, err := DecodeExpr(fs[0])
		if err != nil {
			return nil, err
		}
		t, err := DecodeType(fs[1])
		if err != nil {
			return nil, err
		}
		return &Anno{Expr: e, Type: t}, nil

	case "fun":
		fs, err := fields(val, "pat", "body")
		if err != nil {
			return nil, err
		}
		p, err := DecodePat(fs[0])
		if err != nil {
			return nil, err
		}
		body, err := DecodeExpr(fs[1])
		if err != nil {
			return nil, err
		}
		return &Fun{Pat: p, Body: body}, nil

	case "let":
		fs, err := fields(val, "pat", "bound", "then", "else")
		if err != nil {
			return nil, err
		}
		p, err := DecodePat(fs[0])
		if err != nil {
			return nil, err
		}
		var es [3]Expr
		for i := range es {
			if es[i], err = DecodeExpr(fs[i+1]); err != nil {
				return nil, err
			}
		}
		return &Let{Pat: p, Bound: es[0], Then: es[1], Else: es[2]}, nil

	case "call":
		fs, err := fields(val, "func", "arg")
		if err != nil {
			return nil, err
		}
		f, err := DecodeExpr(fs[0])
		if err != nil {
			return nil, err
		}
		arg, err := DecodeExpr(fs[1])
		if err != nil {
			return nil, err
		}
		return &Call{Func: f, Arg: arg}, nil

	case "lit":
		l, err := DecodeLiteral(val)
		if err != nil {
			return nil, err
		}
		return &Lit{Value: l}, nil

	case "name":
		if val.Kind != yaml.ScalarNode || val.Value == "" {
			return nil, syntaxError(val, "expected a name")
		}
		return &Name{Name: val.Value}, nil

	case "op":
		fs, err := fields(val, "kind", "args")
		if err != nil {
			return nil, err
		}
		kind, ok := OpKind(0), false
		for k, name := range opNames {
			if name == fs[0].Value {
				kind, ok = OpKind(k), true
				break
			}
		}
		if !ok {
			return nil, syntaxError(fs[0], "unknown operator %q", fs[0].Value)
		}
		if fs[1].Kind != yaml.SequenceNode {
			return nil, syntaxError(fs[1], "expected a sequence of arguments")
		}
		args := make([]Expr, len(fs[1].Content))
		for i, an := range fs[1].Content {
			if args[i], err = DecodeExpr(an); err != nil {
				return nil, err
			}
		}
		return &Op{Kind: kind, Args: args}, nil
	}
	return nil, syntaxError(n, "unknown expression %q", key)
}

// DecodePat converts a YAML node into a pattern.
func DecodePat(n *yaml.Node) (Pat, error) {
	if n.Kind == yaml.ScalarNode && n.Value == "_" {
		return &WildcardPat{}, nil
	}
	key, val, err := single(n)
	if err != nil {
		return nil, err
	}
	switch key {
	case "bind":
		return &BindPat{Name: val.Value}, nil
	case "constructor":
		return &ConstructorPat{Name: val.Value}, nil
	case "lit":
		l, err := DecodeLiteral(val)
		if err != nil {
			return nil, err
		}
		return &LitPat{Value: l}, nil
	case "apply":
		fn, arg, err := pair(val)
		if err != nil {
			return nil, err
		}
		fp, err := DecodePat(fn)
		if err != nil {
			return nil, err
		}
		ap, err := DecodePat(arg)
		if err != nil {
			return nil, err
		}
		return &ApplyPat{Func: fp, Arg: ap}, nil
	}
	return nil, syntaxError(n, "unknown pattern %q", key)
}

// DecodeLiteral converts a YAML node into a literal.
func DecodeLiteral(n *yaml.Node) (Literal, error) {
	key, val, err := single(n)
	if err != nil {
		return nil, err
	}
	switch key {
	case "bool":
		var b bool
		if err := val.Decode(&b); err != nil {
			return nil, err
		}
		return Boolean(b), nil
	case "int":
		var i int64
		if err := val.Decode(&i); err != nil {
			return nil, err
		}
		return Integer(i), nil
	case "string":
		return String(val.Value), nil
	case "regex":
		return Regex(val.Value), nil
	}
	return nil, syntaxError(n, "unknown literal %q", key)
}
