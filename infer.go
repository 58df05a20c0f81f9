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
	"github.com/davecgh/go-spew/spew"

	"github.com/wdamron/refine/ast"
	"github.com/wdamron/refine/internal/typeutil"
)

// inferExpr synthesizes the type of e.
func (c *Checker) inferExpr(e ast.Expr) (*tExpr, error) {
	switch e := e.(type) {
	case *ast.Anno:
		return c.checkExpr(e.Expr, c.lowerType(e.Type, typeutil.Mutable))

	case *ast.Let:
		bound, err := c.inferExpr(e.Bound)
		if err != nil {
			return nil, locate(e, err)
		}
		saved := c.ctx
		defer func() { c.ctx = saved }()
		pat, err := c.bind(e.Pat, bound.anno)
		if err != nil {
			return nil, locate(e, err)
		}
		then, err := c.inferExpr(e.Then)
		if err != nil {
			return nil, locate(e, err)
		}
		els, err := c.checkExpr(e.Else, then.anno)
		if err != nil {
			return nil, locate(e, err)
		}
		return &tExpr{node: tLet{pat: pat, bound: bound, then: then, els: els}, anno: then.anno}, nil

	case *ast.Call:
		fn, err := c.inferExpr(e.Func)
		if err != nil {
			return nil, locate(e, err)
		}
		from, into, err := c.asFunTy(fn.anno)
		if err != nil {
			return nil, locate(e, err)
		}
		arg, err := c.checkExpr(e.Arg, from)
		if err != nil {
			return nil, locate(e, err)
		}
		return &tExpr{node: tCall{fn: fn, arg: arg}, anno: into}, nil

	case *ast.Lit:
		switch e.Value.(type) {
		case ast.Boolean:
			return &tExpr{node: tLit{value: e.Value}, anno: typeutil.Bool{}}, nil
		case ast.Regex:
			return &tExpr{node: tLit{value: e.Value}, anno: typeutil.Regex{}}, nil
		}
		return nil, locate(e, newError(AmbiguousExpression, "%s literal requires an expected type", e.Value.LiteralName()))

	case *ast.Name:
		name := normName(e.Name)
		t, ok := c.lookup(name)
		if !ok {
			c.warnings = append(c.warnings, &TypeError{Kind: UnknownName, Msg: name, Decl: c.decl, Expr: e})
			c.tracef("unknown name %s", name)
			return &tExpr{node: tName{name: name}, anno: typeutil.Error{}}, nil
		}
		return &tExpr{node: tName{name: name}, anno: c.instantiate(name, t)}, nil

	case *ast.Impossible:
		return &tExpr{node: tImpossible{}, anno: typeutil.Bottom{}}, nil

	case *ast.Invalid:
		return &tExpr{node: tInvalid{}, anno: typeutil.Error{}}, nil

	case *ast.Fun:
		return nil, locate(e, newError(AmbiguousExpression, "function requires an expected type"))

	case *ast.Op:
		return nil, locate(e, newError(Unsupported, "operator %s", e.Kind))

	case nil:
		return nil, newError(AmbiguousExpression, "empty expression")
	}
	panic("unknown expression:\n" + spew.Sdump(e))
}
