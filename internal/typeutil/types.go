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

import "fmt"

// Mutability controls whether a type-variable may be bound in place.
type Mutability uint8

const (
	// Immutable variables cannot be bound directly; comparisons involving them are deferred.
	Immutable Mutability = iota
	// Mutable variables belong to the declaration currently being checked.
	Mutable
)

func (m Mutability) String() string {
	if m == Mutable {
		return "mutable"
	}
	return "immutable"
}

// Type is a working type, which may contain type-variables and named type parameters.
//
// Working types are plain values: two working types are structurally equal iff they compare equal with ==.
type Type interface {
	TypeName() string
	workingType()
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
type Arrow struct{ From, Into Type }

// Named refers to one of a declaration's own type parameters.
type Named struct{ Name string }

// Var is a type-variable, tagged with the mutability it was referenced with.
type Var struct {
	Mutability Mutability
	Id         uint
}

// Error is the absorbing type of erroneous expressions.
type Error struct{}

func (Bottom) TypeName() string { return "Bottom" }
func (Bool) TypeName() string   { return "Bool" }
func (Regex) TypeName() string  { return "Regex" }
func (Range) TypeName() string  { return "Range" }
func (String) TypeName() string { return "String" }
func (Arrow) TypeName() string  { return "Arrow" }
func (Named) TypeName() string  { return "Named" }
func (Var) TypeName() string    { return "Var" }
func (Error) TypeName() string  { return "Error" }

func (Bottom) workingType() {}
func (Bool) workingType()   {}
func (Regex) workingType()  {}
func (Range) workingType()  {}
func (String) workingType() {}
func (Arrow) workingType()  {}
func (Named) workingType()  {}
func (Var) workingType()    {}
func (Error) workingType()  {}

// WithMutability returns v re-tagged with m.
func (v Var) WithMutability(m Mutability) Var { return Var{Mutability: m, Id: v.Id} }

func (v Var) IsMutable() bool { return v.Mutability == Mutable }

func (v Var) String() string { return fmt.Sprintf("%s '_%d", v.Mutability, v.Id) }
