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
	"github.com/wdamron/refine/internal/astutil"
	"github.com/wdamron/refine/internal/typeutil"
	"github.com/wdamron/refine/typed"
)

// Check checks decls in a new session, and returns the checked program.
//
// Every declaration is declared before any body is checked. Bodies are then checked in dependency
// order (or source order, with WithSourceOrder), each against its own declared type. Checking fails
// on the first error; references to unknown names are reported as warnings on the program.
func (c *Checker) Check(decls ast.Decls) (*typed.Program, error) {
	c.reset()
	prog, err := c.check(decls)
	if err != nil {
		c.err = err
		if te, ok := err.(*TypeError); ok {
			c.invalid = te.Expr
		}
		c.tracef("failed: %v", err)
		return nil, err
	}
	return prog, nil
}

func (c *Checker) check(decls ast.Decls) (*typed.Program, error) {
	names, err := c.validate(decls)
	if err != nil {
		return nil, err
	}

	// Declare every declaration, so bodies may reference each other in any order:
	declared := make([]typeutil.Type, len(decls))
	for i, d := range decls {
		c.decl = names[i]
		declared[i] = c.lowerType(d.Anno, typeutil.Immutable)
		c.declare(names[i], c.generalize(d, declared[i]))
		c.tracef("declare %s : %s", names[i], typeutil.TypeString(declared[i]))
	}

	c.tracef("declared %d names", c.ctx.Len())

	order, err := c.order(decls)
	if err != nil {
		return nil, err
	}

	// Check each body with the declaration's own type-variables mutable:
	bodies := make([]*tExpr, len(decls))
	top := c.ctx
	for _, i := range order {
		c.decl = names[i]
		c.tracef("define %s", names[i])
		body, err := c.checkExpr(decls[i].Body, typeutil.SetMutability(declared[i], typeutil.Mutable))
		c.ctx = top
		if err != nil {
			return nil, c.inDecl(err)
		}
		bodies[i] = body
		if err := c.solve(false); err != nil {
			return nil, c.inDecl(err)
		}
	}
	c.decl = ""

	if err := c.solve(true); err != nil {
		return nil, err
	}
	if c.log != nil {
		c.tracef("solved %d of %d type variables", len(c.subst), c.vars.Count())
		c.ctx.Range(func(name string, t Template) bool {
			c.tracef("context %s : %s", name, c.show(t.Uninst))
			return true
		})
	}
	return c.substitute(names, declared, bodies)
}

// validate returns the normalized name of each declaration.
func (c *Checker) validate(decls ast.Decls) ([]string, error) {
	names := make([]string, len(decls))
	seen := make(map[string]struct{}, len(decls))
	for i, d := range decls {
		if d == nil {
			return nil, newError(AmbiguousExpression, "missing declaration")
		}
		name := normName(d.Name)
		if _, ok := seen[name]; ok {
			return nil, &TypeError{Kind: Redeclared, Msg: "duplicate declaration", Decl: name}
		}
		seen[name] = struct{}{}
		params := make(map[string]struct{}, len(d.Vars))
		for _, v := range d.Vars {
			v = normName(v)
			if _, ok := params[v]; ok {
				return nil, &TypeError{Kind: Redeclared, Msg: "duplicate type parameter " + v, Decl: name}
			}
			params[v] = struct{}{}
		}
		if d.Body == nil {
			return nil, &TypeError{Kind: AmbiguousExpression, Msg: "empty expression", Decl: name}
		}
		names[i] = name
	}
	return names, nil
}

// order returns declaration indexes in the order their bodies should be checked.
func (c *Checker) order(decls ast.Decls) ([]int, error) {
	if c.sourceOrder {
		order := make([]int, len(decls))
		for i := range order {
			order[i] = i
		}
		return order, nil
	}
	a, err := astutil.Analyze(decls, normName)
	if err != nil {
		return nil, &TypeError{Kind: AmbiguousExpression, Msg: err.Error(), Expr: a.Invalid}
	}
	if c.log != nil {
		for _, scc := range a.Sccs {
			if len(scc) > 1 {
				c.tracef("mutually-recursive declarations: %v", scc)
			}
		}
	}
	return a.Order(), nil
}
