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

// bind elaborates p against the expected type t, extending the current scope with the names p binds.
// Callers are responsible for restoring the scope once the bindings go out of scope.
func (c *Checker) bind(p ast.Pat, t typeutil.Type) (ast.Pat, error) {
	switch p := p.(type) {
	case *ast.BindPat:
		name := normName(p.Name)
		c.declare(name, Template{Uninst: t})
		c.tracef("bind %s : %s", name, c.show(t))
		return &ast.BindPat{Name: name}, nil

	case *ast.LitPat:
		if err := c.fromLit(p.Value, t); err != nil {
			return nil, err
		}
		return p, nil

	case *ast.WildcardPat:
		return p, nil

	case *ast.ConstructorPat:
		return nil, newError(Unsupported, "constructor pattern %s", p.Name)

	case *ast.ApplyPat:
		return nil, newError(Unsupported, "constructor pattern %s", ast.PatString(p))

	case nil:
		return nil, newError(Unsupported, "missing pattern")
	}
	panic("unknown pattern:\n" + spew.Sdump(p))
}
