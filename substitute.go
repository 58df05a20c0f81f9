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

	"github.com/wdamron/refine/internal/typeutil"
	"github.com/wdamron/refine/typed"
	"github.com/wdamron/refine/types"
)

// substitution resolves working types into the final type store.
//
// Distinct working types may resolve to the same final type; memo records the final id for every
// working type resolved so far, and is shared by every annotation and the context.
type substitution struct {
	c    *Checker
	memo map[typeutil.Type]types.TypeId
}

func (s *substitution) typeId(t typeutil.Type) (types.TypeId, error) {
	if id, ok := s.memo[t]; ok {
		return id, nil
	}
	var id types.TypeId
	switch t := t.(type) {
	case typeutil.Var:
		bound, ok := s.c.subst.Lookup(t)
		if !ok {
			return 0, newError(UnresolvedTypeVariable, "unsolved type variable '_%d", t.Id)
		}
		var err error
		if id, err = s.typeId(bound); err != nil {
			return 0, err
		}
	case typeutil.Arrow:
		from, err := s.typeId(t.From)
		if err != nil {
			return 0, err
		}
		into, err := s.typeId(t.Into)
		if err != nil {
			return 0, err
		}
		id = s.c.types.Arrow(from, into)
	case typeutil.Bottom:
		id = s.c.types.Intern(types.Bottom{})
	case typeutil.Bool:
		id = s.c.types.Bool()
	case typeutil.Regex:
		id = s.c.types.Intern(types.Regex{})
	case typeutil.Range:
		id = s.c.types.Intern(types.Range{Lo: t.Lo, Hi: t.Hi})
	case typeutil.String:
		id = s.c.types.Intern(types.String{Pattern: t.Pattern})
	case typeutil.Named:
		id = s.c.types.Intern(types.Named{Name: t.Name})
	case typeutil.Error:
		id = s.c.types.Intern(types.Error{})
	default:
		panic("unknown working type:\n" + spew.Sdump(t))
	}
	s.memo[t] = id
	return id, nil
}

func (s *substitution) expr(e *tExpr) (*typed.Expr, error) {
	anno, err := s.typeId(e.anno)
	if err != nil {
		return nil, err
	}
	out := &typed.Expr{Anno: anno}
	switch n := e.node.(type) {
	case tFun:
		body, err := s.expr(n.body)
		if err != nil {
			return nil, err
		}
		out.Node = &typed.Fun{Pat: n.pat, Body: body}
	case tLet:
		var subs [3]*typed.Expr
		for i, sub := range [3]*tExpr{n.bound, n.then, n.els} {
			if subs[i], err = s.expr(sub); err != nil {
				return nil, err
			}
		}
		out.Node = &typed.Let{Pat: n.pat, Bound: subs[0], Then: subs[1], Else: subs[2]}
	case tCall:
		fn, err := s.expr(n.fn)
		if err != nil {
			return nil, err
		}
		arg, err := s.expr(n.arg)
		if err != nil {
			return nil, err
		}
		out.Node = &typed.Call{Func: fn, Arg: arg}
	case tLit:
		out.Node = &typed.Lit{Value: n.value}
	case tName:
		out.Node = &typed.Name{Name: n.name}
	case tImpossible:
		out.Node = &typed.Impossible{}
	case tInvalid:
		out.Node = &typed.Invalid{}
	default:
		panic("unknown checked expression:\n" + spew.Sdump(n))
	}
	return out, nil
}

// substitute resolves every checked body and declared type into final form.
func (c *Checker) substitute(names []string, declared []typeutil.Type, bodies []*tExpr) (*typed.Program, error) {
	s := &substitution{c: c, memo: make(map[typeutil.Type]types.TypeId, 64)}
	prog := &typed.Program{
		ID:       c.id,
		Names:    names,
		Values:   make(map[string]*typed.Expr, len(names)),
		Context:  make(map[string]typed.Template, len(names)),
		Types:    c.types,
		Warnings: c.warnings,
	}
	for i, name := range names {
		c.decl = name
		id, err := s.typeId(declared[i])
		if err != nil {
			return nil, c.inDecl(err)
		}
		tpl, _ := c.lookup(name)
		prog.Context[name] = typed.Template{Params: tpl.Params, Type: id}
		if prog.Values[name], err = s.expr(bodies[i]); err != nil {
			return nil, c.inDecl(err)
		}
		c.tracef("substitute %s : %s", name, types.TypeString(c.types, id))
	}
	c.decl = ""
	return prog, nil
}
