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
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

const example = `
decls:
  - name: f
    vars: [T]
    type: _
    body:
      anno:
        expr: {fun: {pat: {bind: a}, body: {name: a}}}
        type: {arrow: [T, T]}
  - name: x
    type: {range: [0, 10]}
    body: {lit: {int: 5}}
  - name: y
    body: {call: {func: {name: f}, arg: {name: x}}}
  - name: z
    type: {arrow: [{string: "^a+$"}, Bool]}
    body:
      fun:
        pat: {lit: {string: aaa}}
        body:
          let:
            pat: _
            bound: {lit: {regex: "a|b"}}
            then: {lit: {bool: true}}
            else: impossible
`

func TestDecodeDecls(t *testing.T) {
	decls, err := DecodeDecls(strings.NewReader(example))
	if err != nil {
		t.Fatal(err)
	}
	if len(decls) != 4 {
		t.Fatalf("expected 4 declarations, found %d", len(decls))
	}

	expected := []struct{ name, anno, body string }{
		{"f", "_", "(fun a -> a : T -> T)"},
		{"x", "Range(0, 10)", "5"},
		{"y", "_", "f(x)"},
		{"z", `String("^a+$") -> Bool`, `fun "aaa" -> let _ = /a|b/ then true else impossible`},
	}
	for i, e := range expected {
		d := decls[i]
		if d.Name != e.name {
			t.Fatalf("expected declaration %d to be named %s, found %s", i, e.name, d.Name)
		}
		if got := TypeString(d.Anno); got != e.anno {
			t.Fatalf("%s: expected annotation %s, found %s", d.Name, e.anno, got)
		}
		if got := ExprString(d.Body); got != e.body {
			t.Fatalf("%s: expected body %s, found %s", d.Name, e.body, got)
		}
	}
	if vars := decls.Lookup("f").Vars; len(vars) != 1 || vars[0] != "T" {
		t.Fatalf("expected f to have type parameter T, found %s", spew.Sdump(vars))
	}
	if decls.Lookup("y").Anno != nil {
		t.Fatalf("expected y to have no annotation")
	}
}

func TestDecodeErrors(t *testing.T) {
	inputs := []string{
		`decls: [{body: impossible}]`,
		`decls: [{name: a, body: {name: a, lit: {int: 1}}}]`,
		`decls: [{name: a, body: {lit: {float: 1.5}}}]`,
		`decls: [{name: a, type: {range: [1]}, body: impossible}]`,
		`decls: [{name: a, body: {fun: {pat: _}}}]`,
		`decls: [{name: a, body: {op: {kind: pow, args: []}}}]`,
		`decls: [{name: a}]`,
	}
	for _, input := range inputs {
		if decls, err := DecodeDecls(strings.NewReader(input)); err == nil {
			t.Fatalf("expected an error decoding %s, found %s", input, spew.Sdump(decls))
		}
	}
}

func TestWalkExpr(t *testing.T) {
	decls, err := DecodeDecls(strings.NewReader(example))
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	WalkExpr(decls.Lookup("z").Body, func(e Expr) { names = append(names, e.ExprName()) })
	expected := "Fun Let Lit Lit Impossible"
	if got := strings.Join(names, " "); got != expected {
		t.Fatalf("expected %s, found %s", expected, got)
	}

	var bound []string
	WalkPat(&ApplyPat{Func: &ConstructorPat{Name: "Pair"}, Arg: &BindPat{Name: "b"}}, func(name string) { bound = append(bound, name) })
	if len(bound) != 1 || bound[0] != "b" {
		t.Fatalf("expected b to be bound, found %v", bound)
	}
}
