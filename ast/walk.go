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

// WalkExpr calls f for e and each of its sub-expressions, in pre-order.
func WalkExpr(e Expr, f func(Expr)) {
	switch e := e.(type) {
	case *Lit, *Name, *Impossible, *Invalid:
		f(e)

	case *Anno:
		f(e)
		WalkExpr(e.Expr, f)

	case *Fun:
		f(e)
		WalkExpr(e.Body, f)

	case *Let:
		f(e)
		WalkExpr(e.Bound, f)
		WalkExpr(e.Then, f)
		WalkExpr(e.Else, f)

	case *Call:
		f(e)
		WalkExpr(e.Func, f)
		WalkExpr(e.Arg, f)

	case *Op:
		f(e)
		for _, arg := range e.Args {
			WalkExpr(arg, f)
		}

	case nil:

	default:
		panic("unknown expression type: " + e.ExprName())
	}
}

// WalkPat calls f for each name bound by p, in order of occurrence.
func WalkPat(p Pat, f func(name string)) {
	switch p := p.(type) {
	case *BindPat:
		f(p.Name)
	case *ApplyPat:
		WalkPat(p.Func, f)
		WalkPat(p.Arg, f)
	case *ConstructorPat, *LitPat, *WildcardPat, nil:
	default:
		panic("unknown pattern type: " + p.PatName())
	}
}
