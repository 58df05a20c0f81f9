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

// checkAssignable requires a value of type from to be usable where a value of type into is expected.
//
// Mutable type-variables are bound in place. Comparisons involving unbound immutable type-variables
// are deferred as constraints, and succeed optimistically.
func (c *Checker) checkAssignable(into, from typeutil.Type) error {
	if into == from || typeutil.SameVar(into, from) {
		return nil
	}
	if _, ok := from.(typeutil.Bottom); ok {
		return nil
	}

	// Ranges and string patterns are invariant:
	switch into := into.(type) {
	case typeutil.Range:
		if from, ok := from.(typeutil.Range); ok {
			return c.mismatch(into, from)
		}
	case typeutil.String:
		if from, ok := from.(typeutil.String); ok {
			return c.mismatch(into, from)
		}
	}

	intoVar, intoIsVar := into.(typeutil.Var)
	fromVar, fromIsVar := from.(typeutil.Var)
	if intoIsVar {
		if bound, ok := c.subst.Lookup(intoVar); ok {
			return c.checkAssignable(bound, from)
		}
	}
	if fromIsVar {
		if bound, ok := c.subst.Lookup(fromVar); ok {
			return c.checkAssignable(into, bound)
		}
	}
	if intoIsVar && intoVar.IsMutable() {
		return c.bindVar(intoVar, from)
	}
	if fromIsVar && fromVar.IsMutable() {
		return c.bindVar(fromVar, into)
	}
	if intoIsVar || fromIsVar {
		c.postpone(assignableConstraint{into: into, from: from})
		return nil
	}

	if into, ok := into.(typeutil.Arrow); ok {
		if from, ok := from.(typeutil.Arrow); ok {
			// The offered function must accept at least what is demanded:
			if err := c.checkAssignable(from.From, into.From); err != nil {
				return err
			}
			return c.checkAssignable(into.Into, from.Into)
		}
	}

	_, intoErr := into.(typeutil.Error)
	_, fromErr := from.(typeutil.Error)
	if intoErr || fromErr {
		return nil
	}
	return c.mismatch(into, from)
}

func (c *Checker) mismatch(into, from typeutil.Type) error {
	return newError(TypeMismatch, "expected %s, found %s", c.show(into), c.show(from))
}

// bindVar binds the unbound type-variable v to t, unless v occurs within t.
func (c *Checker) bindVar(v typeutil.Var, t typeutil.Type) error {
	if typeutil.Occurs(v, t, c.subst) {
		return newError(RecursiveType, "implicitly recursive types are not supported: '_%d occurs in %s", v.Id, c.show(t))
	}
	c.subst.Bind(v, t)
	c.tracef("bind '_%d := %s", v.Id, c.show(t))
	return nil
}

// asFunTy splits a function type into its domain and codomain. An unbound type-variable is required
// to be a function type over fresh type-variables.
func (c *Checker) asFunTy(t typeutil.Type) (typeutil.Type, typeutil.Type, error) {
	switch t := c.subst.Shallow(t).(type) {
	case typeutil.Arrow:
		return t.From, t.Into, nil
	case typeutil.Var:
		vs := c.vars.NewList(typeutil.Mutable, 2)
		from, into := vs[0], vs[1]
		if err := c.checkAssignable(typeutil.Arrow{From: from, Into: into}, t); err != nil {
			return nil, nil, err
		}
		return from, into, nil
	case typeutil.Error:
		return typeutil.Error{}, typeutil.Error{}, nil
	default:
		return nil, nil, newError(TypeMismatch, "not a function type: %s", c.show(t))
	}
}
