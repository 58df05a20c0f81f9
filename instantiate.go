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
	"github.com/wdamron/refine/internal/typeutil"
)

// instantiate returns a copy of t.Uninst in which each param is replaced by a fresh mutable type-variable.
// Templates without params are monomorphic, and are returned as-is.
func (c *Checker) instantiate(name string, t Template) typeutil.Type {
	if len(t.Params) == 0 {
		return t.Uninst
	}
	vars := make(map[string]typeutil.Type, len(t.Params))
	for _, p := range t.Params {
		vars[p] = c.vars.New(typeutil.Mutable)
	}
	inst := c.instTy(t.Uninst, vars)
	c.tracef("instantiate %s : %s as %s", name, c.show(t.Uninst), c.show(inst))
	return inst
}

// instTy replaces Named params in t according to vars. Unbound type-variables are replaced by fresh
// type-variables, which are bound by Instantiate constraints once the original variable is solved.
func (c *Checker) instTy(t typeutil.Type, vars map[string]typeutil.Type) typeutil.Type {
	switch t := t.(type) {
	case typeutil.Var:
		if bound, ok := c.subst.Lookup(t); ok {
			return c.instTy(bound, vars)
		}
		fresh := c.vars.New(typeutil.Mutable)
		c.postpone(instConstraint{vars: vars, fresh: fresh, orig: t})
		return fresh

	case typeutil.Named:
		if v, ok := vars[t.Name]; ok {
			return v
		}
		return t

	case typeutil.Arrow:
		from := c.instTy(t.From, vars)
		into := c.instTy(t.Into, vars)
		return typeutil.Arrow{From: from, Into: into}

	default:
		return t
	}
}
