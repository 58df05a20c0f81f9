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

// Package types contains the final, variable-free type algebra and the type store which interns it.
package types

import (
	"github.com/davecgh/go-spew/spew"
)

// TypeId identifies an interned type within a Types store.
type TypeId uint32

// Type is a final type. Final types never contain type-variables.
//
// Components of composite types are referenced by id, so every final type is a comparable value
// and structural equality reduces to ==.
type Type interface {
	TypeName() string
	finalType()
}

// Bottom is the type of divergent or impossible expressions.
type Bottom struct{}

// Bool is the type of boolean values.
type Bool struct{}

// Regex is the type of regular-expression values.
type Regex struct{}

// Range is the type of integers in the half-open interval [Lo, Hi).
type Range struct{ Lo, Hi int64 }

// String is the type of strings matching Pattern.
type String struct{ Pattern string }

// Arrow is a function type.
type Arrow struct{ From, Into TypeId }

// Named is an uninstantiated type parameter of a polymorphic declaration.
type Named struct{ Name string }

// Error is the absorbing type of erroneous expressions.
type Error struct{}

func (Bottom) TypeName() string { return "Bottom" }
func (Bool) TypeName() string   { return "Bool" }
func (Regex) TypeName() string  { return "Regex" }
func (Range) TypeName() string  { return "Range" }
func (String) TypeName() string { return "String" }
func (Arrow) TypeName() string  { return "Arrow" }
func (Named) TypeName() string  { return "Named" }
func (Error) TypeName() string  { return "Error" }

func (Bottom) finalType() {}
func (Bool) finalType()   {}
func (Regex) finalType()  {}
func (Range) finalType()  {}
func (String) finalType() {}
func (Arrow) finalType()  {}
func (Named) finalType()  {}
func (Error) finalType()  {}

// Types interns final types. Structurally-equal types are always assigned the same id,
// and distinct types are always assigned distinct ids.
//
// A type store cannot be used concurrently.
type Types struct {
	ids   map[Type]TypeId
	types []Type
}

func NewTypes() *Types {
	return &Types{ids: make(map[Type]TypeId, 16)}
}

// Intern returns the id of t, adding t to the store if an equal type has not been interned before.
func (ts *Types) Intern(t Type) TypeId {
	if t == nil {
		panic("cannot intern a nil type")
	}
	if id, ok := ts.ids[t]; ok {
		return id
	}
	if a, ok := t.(Arrow); ok {
		ts.Resolve(a.From)
		ts.Resolve(a.Into)
	}
	if ts.ids == nil {
		ts.ids = make(map[Type]TypeId, 16)
	}
	id := TypeId(len(ts.types))
	ts.types = append(ts.types, t)
	ts.ids[t] = id
	return id
}

// Lookup returns the id of t if an equal type has been interned.
func (ts *Types) Lookup(t Type) (TypeId, bool) {
	id, ok := ts.ids[t]
	return id, ok
}

// Resolve returns the type with the given id. Resolve panics if id was not issued by this store.
func (ts *Types) Resolve(id TypeId) Type {
	if int(id) >= len(ts.types) {
		panic("type id " + spew.Sdump(id) + " was not issued by this store:\n" + spew.Sdump(ts.types))
	}
	return ts.types[id]
}

// Len returns the number of distinct interned types.
func (ts *Types) Len() int { return len(ts.types) }

// Range calls f for each interned type, in order of interning. If f returns false, iteration stops.
func (ts *Types) Range(f func(TypeId, Type) bool) {
	for i, t := range ts.types {
		if !f(TypeId(i), t) {
			return
		}
	}
}

// Bool returns the id of the Bool type, interning it if necessary.
func (ts *Types) Bool() TypeId { return ts.Intern(Bool{}) }

// Arrow returns the id of the function type from -> into, interning it if necessary.
func (ts *Types) Arrow(from, into TypeId) TypeId { return ts.Intern(Arrow{From: from, Into: into}) }
