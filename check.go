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
	"github.com/wdamron/refine/ast"
	"github.com/wdamron/refine/internal/typeutil"
)

// checkExpr checks e against the expected type t.
func (c *Checker) checkExpr(e ast.Expr, t typeutil.Type) (*tExpr, error) {
	switch e := e.(type) {
	case *ast.Fun:
		from, into, err := c.asFunTy(t)
		if err != nil {
			return nil, locate(e, err)
		}
		saved := c.ctx
		defer func() { c.ctx = saved }()
		pat, err := c.bind(e.Pat, from)
		if err != nil {
			return nil, locate(e, err)
		}
		body, err := c.checkExpr(e.Body, into)
		if err != nil {
			return nil, locate(e, err)
		}
		return &tExpr{node: tFun{pat: pat, body: body}, anno: t}, nil

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
		then, err := c.checkExpr(e.Then, t)
		if err != nil {
			return nil, locate(e, err)
		}
		els, err := c.checkExpr(e.Else, t)
		if err != nil {
			return nil, locate(e, err)
		}
		return &tExpr{node: tLet{pat: pat, bound: bound, then: then, els: els}, anno: t}, nil

	case *ast.Op:
		return nil, locate(e, newError(Unsupported, "operator %s", e.Kind))

	case *ast.Lit:
		switch e.Value.(type) {
		case ast.Integer, ast.String:
			if err := c.fromLit(e.Value, t); err != nil {
				return nil, locate(e, err)
			}
			return &tExpr{node: tLit{value: e.Value}, anno: t}, nil
		}
	}

	inferred, err := c.inferExpr(e)
	if err != nil {
		return nil, err
	}
	if err := c.checkAssignable(t, inferred.anno); err != nil {
		return nil, locate(e, err)
	}
	return inferred, nil
}
