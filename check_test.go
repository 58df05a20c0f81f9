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

package refine_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"

	. "github.com/wdamron/refine/construct"

	"github.com/wdamron/refine"
	"github.com/wdamron/refine/ast"
	"github.com/wdamron/refine/typed"
	"github.com/wdamron/refine/types"
)

func mustCheck(t *testing.T, decls ast.Decls, opts ...refine.Option) *typed.Program {
	t.Helper()
	prog, err := refine.Check(decls, opts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return prog
}

func expectType(t *testing.T, prog *typed.Program, name, expected string) {
	t.Helper()
	tpl, ok := prog.Context[name]
	if !ok {
		t.Fatalf("%s is not in the context:\n%s", name, spew.Sdump(prog.Context))
	}
	if got := types.TypeString(prog.Types, tpl.Type); got != expected {
		t.Fatalf("expected %s : %s, found %s", name, expected, got)
	}
}

func expectError(t *testing.T, decls ast.Decls, target error, opts ...refine.Option) *refine.TypeError {
	t.Helper()
	prog, err := refine.Check(decls, opts...)
	if err == nil {
		t.Fatalf("expected %v, checking succeeded:\n%s", target, typed.ProgramString(prog))
	}
	if !errors.Is(err, target) {
		t.Fatalf("expected %v, found %v", target, err)
	}
	t.Logf("%v", err)
	return err.(*refine.TypeError)
}

func exampleDecls() ast.Decls {
	return Decls(
		Def("y", TWild(), Call(Name("f"), Name("x"))),
		PolyDef("f", []string{"T"}, TWild(), Anno(Fun1("a", Name("a")), TArrow(TNamed("T"), TNamed("T")))),
		Def("x", TRange(0, 10), Int(5)),
	)
}

func TestPolymorphicApplication(t *testing.T) {
	for _, opts := range [][]refine.Option{nil, {refine.WithSourceOrder()}} {
		prog := mustCheck(t, exampleDecls(), opts...)
		expectType(t, prog, "f", "T -> T")
		expectType(t, prog, "x", "Range(0, 10)")
		expectType(t, prog, "y", "Range(0, 10)")
		if params := prog.Context["f"].Params; len(params) != 1 || params[0] != "T" {
			t.Fatalf("expected f to be generalized over T, found %v", params)
		}
		expected := "((f : Range(0, 10) -> Range(0, 10))((x : Range(0, 10))) : Range(0, 10))"
		if got := typed.ExprString(prog.Types, prog.Values["y"]); got != expected {
			t.Fatalf("expected %s, found %s", expected, got)
		}
		if strings.Join(prog.Names, " ") != "y f x" {
			t.Fatalf("expected names in source order, found %v", prog.Names)
		}
	}
}

func TestLetBindingPropagation(t *testing.T) {
	prog := mustCheck(t, Decls(
		Def("v", TWild(), Let(PBind("x'"), Anno(Int(5), TRange(0, 10)), Name("x'"), Impossible())),
	))
	expectType(t, prog, "v", "Range(0, 10)")

	let, ok := prog.Values["v"].Node.(*typed.Let)
	if !ok {
		t.Fatalf("expected a let expression, found %s", spew.Sdump(prog.Values["v"]))
	}
	for _, e := range []*typed.Expr{prog.Values["v"], let.Bound, let.Then} {
		if got := types.TypeString(prog.Types, e.Anno); got != "Range(0, 10)" {
			t.Fatalf("expected Range(0, 10), found %s", got)
		}
	}
	if got := types.TypeString(prog.Types, let.Else.Anno); got != "Bottom" {
		t.Fatalf("expected the impossible branch to be Bottom, found %s", got)
	}
	if name, ok := let.Then.Node.(*typed.Name); !ok || name.Name != "x'" {
		t.Fatalf("expected a reference to x', found %s", spew.Sdump(let.Then.Node))
	}
}

func TestRangeIsHalfOpen(t *testing.T) {
	for _, v := range []int64{0, 1, 9} {
		mustCheck(t, Decls(Def("x", TRange(0, 10), Int(v))))
	}
	for _, v := range []int64{-1, 10, 11} {
		expectError(t, Decls(Def("x", TRange(0, 10), Int(v))), refine.ErrLiteralConformance)
	}
}

func TestArrowVariance(t *testing.T) {
	r10 := TArrow(TRange(0, 10), TRange(0, 10))
	f := Def("f", r10, Fun1("a", Name("a")))
	prog := mustCheck(t, Decls(f, Def("g", TArrow(TRange(0, 10), TRange(0, 10)), Name("f"))))
	expectType(t, prog, "g", "Range(0, 10) -> Range(0, 10)")
	if prog.Context["f"].Type != prog.Context["g"].Type {
		t.Fatalf("expected equal types to share an id")
	}

	err := expectError(t, Decls(f, Def("h", TArrow(TRange(0, 20), TRange(0, 5)), Name("f"))), refine.ErrTypeMismatch)
	if err.Decl != "h" {
		t.Fatalf("expected the mismatch to be reported for h, found %s", err.Decl)
	}
	if _, ok := err.Expr.(*ast.Name); !ok {
		t.Fatalf("expected the mismatch to be located at the reference to f, found %s", spew.Sdump(err.Expr))
	}
}

func TestInstantiationIndependence(t *testing.T) {
	prog := mustCheck(t, Decls(
		PolyDef("id", []string{"T"}, TArrow(TNamed("T"), TNamed("T")), Fun1("a", Name("a"))),
		Def("n", TRange(0, 10), Int(3)),
		Def("a", TWild(), Call(Name("id"), Name("n"))),
		Def("b", TArrow(TBool(), TBool()), Name("id")),
		Def("c", TWild(), Call(Name("id"), Bool(true))),
	))
	expectType(t, prog, "id", "T -> T")
	expectType(t, prog, "a", "Range(0, 10)")
	expectType(t, prog, "b", "Bool -> Bool")
	expectType(t, prog, "c", "Bool")
}

func TestForwardReferenceIsDeferred(t *testing.T) {
	prog := mustCheck(t, Decls(
		Def("g", TWild(), Call(Name("f"), Bool(true))),
		Def("f", TWild(), Anno(Fun1("x", Name("x")), TArrow(TBool(), TBool()))),
	), refine.WithSourceOrder())
	expectType(t, prog, "g", "Bool")
	expectType(t, prog, "f", "Bool -> Bool")
}

func TestUnsolvedConstraints(t *testing.T) {
	expectError(t, Decls(Def("x", TWild(), Int(5))), refine.ErrUnsolvedConstraints)
}

func TestUnresolvedTypeVariable(t *testing.T) {
	expectError(t, Decls(
		Def("p", TWild(), Name("q")),
		Def("q", TWild(), Name("p")),
	), refine.ErrUnresolvedTypeVariable)
}

func TestSelfApplicationIsRecursive(t *testing.T) {
	expectError(t, Decls(Def("f", TWild(), Fun1("a", Call(Name("a"), Name("a"))))), refine.ErrRecursiveType)
}

func TestUnknownNameIsWarning(t *testing.T) {
	prog := mustCheck(t, Decls(
		Def("a", TWild(), Name("y")),
		Def("b", TBool(), Bool(true)),
	))
	expectType(t, prog, "a", "Error")
	expectType(t, prog, "b", "Bool")
	if len(prog.Warnings) != 1 || !errors.Is(prog.Warnings[0], refine.ErrUnknownName) {
		t.Fatalf("expected a single unknown-name warning, found %v", prog.Warnings)
	}
	if name, ok := prog.Values["a"].Node.(*typed.Name); !ok || name.Name != "y" {
		t.Fatalf("expected the reference to y to be kept, found %s", spew.Sdump(prog.Values["a"]))
	}
}

func TestLetScopeIsRestored(t *testing.T) {
	prog := mustCheck(t, Decls(
		Def("a", TBool(), Let(PBind("q"), Bool(true), Name("q"), Name("q"))),
		Def("b", TWild(), Name("q")),
	))
	expectType(t, prog, "a", "Bool")
	expectType(t, prog, "b", "Error")
	if len(prog.Warnings) != 1 || prog.Warnings[0].(*refine.TypeError).Decl != "b" {
		t.Fatalf("expected an unknown-name warning for b, found %v", prog.Warnings)
	}
}

func TestErrorAndBottomAreAbsorbed(t *testing.T) {
	prog := mustCheck(t, Decls(
		Def("x", TRange(0, 10), Invalid()),
		Def("b", TBool(), Impossible()),
		Def("f", TArrow(TBool(), TRegex()), Fun(PWild(), Re("a|b"))),
	))
	expectType(t, prog, "x", "Range(0, 10)")
	if got := types.TypeString(prog.Types, prog.Values["x"].Anno); got != "Error" {
		t.Fatalf("expected the invalid body to be Error, found %s", got)
	}
	expectType(t, prog, "b", "Bool")
	expectType(t, prog, "f", "Bool -> Regex")
}

func TestStringPatterns(t *testing.T) {
	mustCheck(t, Decls(Def("s", TString("^a+$"), Str("aaa"))))
	expectError(t, Decls(Def("s", TString("^a+$"), Str("b"))), refine.ErrLiteralConformance)
	expectError(t, Decls(Def("s", TString("(a"), Str("a"))), refine.ErrLiteralConformance)
	expectError(t, Decls(Def("s", TBool(), Anno(Str("a"), TString("a")))), refine.ErrTypeMismatch)

	var calls []string
	matcher := refine.MatcherFunc(func(pattern, text string) (bool, error) {
		calls = append(calls, pattern+"~"+text)
		return text == "ok", nil
	})
	mustCheck(t, Decls(Def("s", TString("anything"), Str("ok"))), refine.WithMatcher(matcher))
	if len(calls) != 1 || calls[0] != "anything~ok" {
		t.Fatalf("expected the matcher to be consulted once, found %v", calls)
	}
}

func TestLiteralPatterns(t *testing.T) {
	guard := TArrow(TRange(0, 10), TBool())
	mustCheck(t, Decls(Def("f", guard, Fun(PLit(ast.Integer(3)), Bool(true)))))
	expectError(t, Decls(Def("f", guard, Fun(PLit(ast.Integer(12)), Bool(true)))), refine.ErrLiteralConformance)
	expectError(t, Decls(Def("f", guard, Fun(PLit(ast.Boolean(true)), Bool(true)))), refine.ErrLiteralConformance)
}

func TestAmbiguousExpressions(t *testing.T) {
	c := refine.NewChecker()
	_, err := c.Check(Decls(Def("x", TWild(), Call(Int(5), Bool(true)))))
	if !errors.Is(err, refine.ErrAmbiguousExpression) || c.Error() != err {
		t.Fatalf("expected an ambiguous expression, found %v", err)
	}
	if lit, ok := c.InvalidExpr().(*ast.Lit); !ok || lit.Value != ast.Integer(5) {
		t.Fatalf("expected the integer literal to be invalid, found %s", spew.Sdump(c.InvalidExpr()))
	}
	expectError(t, Decls(Def("x", TWild(), Call(Fun1("a", Name("a")), Bool(true)))), refine.ErrAmbiguousExpression)
}

func TestUnsupportedForms(t *testing.T) {
	expectError(t, Decls(Def("x", TRange(0, 10), Op(ast.OpAdd, Int(1), Int(2)))), refine.ErrUnsupported)
	expectError(t, Decls(Def("f", TArrow(TBool(), TBool()), Fun(PCon("True"), Bool(true)))), refine.ErrUnsupported)
	expectError(t, Decls(Def("f", TArrow(TBool(), TBool()), Fun(PApply(PCon("Some"), PBind("x")), Name("x")))), refine.ErrUnsupported)
}

func TestRedeclaration(t *testing.T) {
	expectError(t, Decls(Def("x", TBool(), Bool(true)), Def("x", TBool(), Bool(false))), refine.ErrRedeclared)
	expectError(t, Decls(Def("caf\u00e9", TBool(), Bool(true)), Def("cafe\u0301", TBool(), Bool(false))), refine.ErrRedeclared)
	expectError(t, Decls(PolyDef("f", []string{"T", "T"}, TWild(), Impossible())), refine.ErrRedeclared)
}

func TestNamesAreNormalized(t *testing.T) {
	prog := mustCheck(t, Decls(
		Def("caf\u00e9", TBool(), Bool(true)),
		Def("d", TWild(), Name("cafe\u0301")),
	))
	expectType(t, prog, "d", "Bool")
	if len(prog.Warnings) != 0 {
		t.Fatalf("expected no warnings, found %v", prog.Warnings)
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	var trace bytes.Buffer
	c := refine.NewChecker(refine.WithTrace(&trace))
	first, err := c.Check(exampleDecls())
	if err != nil {
		t.Fatal(err)
	}
	firstLen := first.Types.Len()
	second, err := c.Check(Decls(Def("b", TBool(), Bool(true))))
	if err != nil {
		t.Fatal(err)
	}
	if first.ID == second.ID || second.ID != c.ID() {
		t.Fatalf("expected a new session id for each check")
	}
	if first.Types == second.Types || first.Types.Len() != firstLen || second.Types.Len() != 1 {
		t.Fatalf("expected each session to have its own type store")
	}
	out := trace.String()
	for _, expected := range []string{
		"[" + first.ID.String()[:8] + "] declare f : ^'_",
		"[" + second.ID.String()[:8] + "] substitute b : Bool",
	} {
		if !strings.Contains(out, expected) {
			t.Fatalf("expected trace to contain %q:\n%s", expected, out)
		}
	}
}

func BenchmarkCheck(b *testing.B) {
	c := refine.NewChecker()
	decls := exampleDecls()

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		prog, err := c.Check(decls)
		if err != nil || prog == nil {
			b.Fatal(err)
		}
	}
}
