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

package refine

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/wdamron/refine/ast"
	"github.com/wdamron/refine/internal/typeutil"
)

func newSession() *Checker {
	c := NewChecker()
	c.reset()
	return c
}

func TestOccursCheck(t *testing.T) {
	c := newSession()
	v := c.vars.New(typeutil.Mutable)
	err := c.checkAssignable(v, typeutil.Arrow{From: v, Into: typeutil.Bool{}})
	if !errors.Is(err, ErrRecursiveType) {
		t.Fatalf("expected a recursive type error, found %v", err)
	}
	if _, ok := c.subst.Lookup(v); ok {
		t.Fatalf("expected '_%d to remain unbound", v.Id)
	}

	// Through an existing binding:
	w := c.vars.New(typeutil.Mutable)
	if err := c.checkAssignable(w, typeutil.Arrow{From: typeutil.Bool{}, Into: v}); err != nil {
		t.Fatal(err)
	}
	if err := c.checkAssignable(v, w); !errors.Is(err, ErrRecursiveType) {
		t.Fatalf("expected a recursive type error, found %v", err)
	}
}

func TestAssignabilityRules(t *testing.T) {
	r := func(lo, hi int64) typeutil.Type { return typeutil.Range{Lo: lo, Hi: hi} }
	arrow := func(from, into typeutil.Type) typeutil.Type { return typeutil.Arrow{From: from, Into: into} }
	cases := []struct {
		into, from typeutil.Type
		ok         bool
	}{
		{typeutil.Bool{}, typeutil.Bool{}, true},
		{typeutil.Regex{}, typeutil.Regex{}, true},
		{typeutil.Bool{}, typeutil.Bottom{}, true},
		{arrow(typeutil.Bool{}, r(0, 1)), typeutil.Bottom{}, true},
		{r(0, 10), r(0, 10), true},
		{r(0, 10), r(0, 5), false},
		{r(0, 5), r(0, 10), false},
		{typeutil.String{Pattern: "a"}, typeutil.String{Pattern: "a"}, true},
		{typeutil.String{Pattern: "a"}, typeutil.String{Pattern: "a+"}, false},
		{typeutil.Named{Name: "T"}, typeutil.Named{Name: "T"}, true},
		{typeutil.Named{Name: "T"}, typeutil.Named{Name: "U"}, false},
		{typeutil.Error{}, typeutil.Bool{}, true},
		{arrow(typeutil.Bool{}, typeutil.Bool{}), typeutil.Error{}, true},
		{typeutil.Bool{}, typeutil.Regex{}, false},
		{typeutil.Bottom{}, typeutil.Bool{}, false},
		{arrow(r(0, 10), typeutil.Bool{}), arrow(r(0, 10), typeutil.Bool{}), true},
		{arrow(r(0, 10), typeutil.Bool{}), arrow(r(0, 20), typeutil.Bool{}), false},
	}
	for _, tc := range cases {
		c := newSession()
		err := c.checkAssignable(tc.into, tc.from)
		if tc.ok && err != nil {
			t.Fatalf("expected %s <- %s to succeed, found %v", typeutil.TypeString(tc.into), typeutil.TypeString(tc.from), err)
		}
		if !tc.ok && !errors.Is(err, ErrTypeMismatch) {
			t.Fatalf("expected %s <- %s to mismatch, found %v", typeutil.TypeString(tc.into), typeutil.TypeString(tc.from), err)
		}
	}
}

func TestImmutableVariablesAreDeferred(t *testing.T) {
	c := newSession()
	v := c.vars.New(typeutil.Immutable)
	if err := c.checkAssignable(typeutil.Bool{}, v); err != nil {
		t.Fatal(err)
	}
	if len(c.worklist) != 1 || len(c.subst) != 0 {
		t.Fatalf("expected one deferred constraint and no bindings, found %s", spew.Sdump(c.worklist, c.subst))
	}
	if err := c.solve(false); err != nil {
		t.Fatalf("expected a partial solve to stop without failing, found %v", err)
	}
	if err := c.solve(true); !errors.Is(err, ErrUnsolvedConstraints) {
		t.Fatalf("expected unsolved constraints, found %v", err)
	}

	// Binding the variable, as its own declaration would, lets the constraint discharge:
	c.subst.Bind(v, typeutil.Bool{})
	if err := c.solve(true); err != nil {
		t.Fatal(err)
	}
	if len(c.worklist) != 0 {
		t.Fatalf("expected an empty worklist, found %s", spew.Sdump(c.worklist))
	}
}

func TestAsFunTy(t *testing.T) {
	c := newSession()
	v := c.vars.New(typeutil.Mutable)
	from, into, err := c.asFunTy(v)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.show(v); got != typeutil.TypeString(typeutil.Arrow{From: from, Into: into}) {
		t.Fatalf("expected '_%d to be bound to a function type, found %s", v.Id, got)
	}
	if _, _, err := c.asFunTy(typeutil.Bool{}); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected Bool not to be a function type, found %v", err)
	}
	if from, into, err := c.asFunTy(typeutil.Error{}); err != nil || from != (typeutil.Error{}) || into != (typeutil.Error{}) {
		t.Fatalf("expected Error to split into Error -> Error")
	}
}

func TestFromLitDefersUntilBound(t *testing.T) {
	c := newSession()
	v := c.vars.New(typeutil.Mutable)
	if err := c.fromLit(ast.Integer(10), v); err != nil {
		t.Fatal(err)
	}
	if len(c.worklist) != 1 {
		t.Fatalf("expected the literal to be deferred")
	}
	c.subst.Bind(v, typeutil.Range{Lo: 0, Hi: 10})
	if err := c.solve(true); !errors.Is(err, ErrLiteralConformance) {
		t.Fatalf("expected 10 not to conform to Range(0, 10), found %v", err)
	}
}

func TestInstantiateDefersUnboundVariables(t *testing.T) {
	c := newSession()
	orig := c.vars.New(typeutil.Immutable)
	tpl := Template{Params: []string{"T"}, Uninst: orig}
	inst := c.instantiate("f", tpl)
	if _, ok := inst.(typeutil.Var); !ok || len(c.worklist) != 1 {
		t.Fatalf("expected a fresh variable and a deferred instantiation, found %s", spew.Sdump(inst, c.worklist))
	}
	c.subst.Bind(orig, typeutil.Arrow{From: typeutil.Named{Name: "T"}, Into: typeutil.Bool{}})
	if err := c.solve(true); err != nil {
		t.Fatal(err)
	}
	applied := c.subst.Apply(inst)
	arrow, ok := applied.(typeutil.Arrow)
	if !ok || arrow.Into != (typeutil.Bool{}) {
		t.Fatalf("expected an instance of T -> Bool, found %s", typeutil.TypeString(applied))
	}
	if _, ok := arrow.From.(typeutil.Var); !ok {
		t.Fatalf("expected T to be replaced by a fresh variable, found %s", typeutil.TypeString(applied))
	}

	mono := Template{Uninst: orig}
	if got := c.instantiate("g", mono); got != orig {
		t.Fatalf("expected a monomorphic template to be shared, found %s", typeutil.TypeString(got))
	}
}
