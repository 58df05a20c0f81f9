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

package typeutil

// Subst maps type-variable ids to the types they have been bound to.
//
// A substitution only grows: entries are never removed or overwritten.
type Subst map[uint]Type

// Lookup returns the binding for v, regardless of the mutability v was referenced with.
func (s Subst) Lookup(v Var) (Type, bool) {
	t, ok := s[v.Id]
	return t, ok
}

// Bind records t as the binding for v. Bind panics if v is already bound.
func (s Subst) Bind(v Var, t Type) {
	if _, ok := s[v.Id]; ok {
		panic("type-variable is already bound")
	}
	s[v.Id] = t
}

// Shallow follows bindings until t is not a bound type-variable.
func (s Subst) Shallow(t Type) Type {
	for {
		v, ok := t.(Var)
		if !ok {
			return t
		}
		bound, ok := s[v.Id]
		if !ok {
			return t
		}
		t = bound
	}
}

// Apply resolves every bound type-variable within t. Unbound variables are kept.
func (s Subst) Apply(t Type) Type {
	switch t := t.(type) {
	case Var:
		if bound, ok := s[t.Id]; ok {
			return s.Apply(bound)
		}
		return t
	case Arrow:
		return Arrow{From: s.Apply(t.From), Into: s.Apply(t.Into)}
	default:
		return t
	}
}

// SameVar reports whether a and b are references to the same type-variable, ignoring mutability.
func SameVar(a, b Type) bool {
	va, ok := a.(Var)
	if !ok {
		return false
	}
	vb, ok := b.(Var)
	return ok && va.Id == vb.Id
}

// Occurs reports whether the type-variable v occurs within t, following bindings in s.
func Occurs(v Var, t Type, s Subst) bool {
	switch t := t.(type) {
	case Var:
		if t.Id == v.Id {
			return true
		}
		if bound, ok := s[t.Id]; ok {
			return Occurs(v, bound, s)
		}
		return false
	case Arrow:
		return Occurs(v, t.From, s) || Occurs(v, t.Into, s)
	default:
		return false
	}
}
