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

package ast

// Type is the base for all surface types.
type Type interface {
	// Name of the syntax-type of the type.
	TypeName() string
}

var (
	_ Type = (*BoolType)(nil)
	_ Type = (*RegexType)(nil)
	_ Type = (*RangeType)(nil)
	_ Type = (*StringType)(nil)
	_ Type = (*ArrowType)(nil)
	_ Type = (*NamedType)(nil)
	_ Type = (*WildcardType)(nil)
	_ Type = (*InvalidType)(nil)
)

// `Bool`
type BoolType struct{}

func (t *BoolType) TypeName() string { return "Bool" }

// `Regex`
type RegexType struct{}

func (t *RegexType) TypeName() string { return "Regex" }

// Integers in the half-open interval [Lo, Hi): `Range(0, 10)`
type RangeType struct {
	Lo, Hi int64
}

func (t *RangeType) TypeName() string { return "Range" }

// Strings matching a regular expression: `String("^a+$")`
type StringType struct {
	Pattern string
}

func (t *StringType) TypeName() string { return "String" }

// Function type: `T -> U`
type ArrowType struct {
	From, Into Type
}

func (t *ArrowType) TypeName() string { return "Arrow" }

// Reference to one of the declaration's own type parameters: `T`
type NamedType struct {
	Name string
}

func (t *NamedType) TypeName() string { return "Named" }

// Request for inference: `_`
type WildcardType struct{}

func (t *WildcardType) TypeName() string { return "Wildcard" }

// Type which failed to parse or elaborate; the failure has already been reported.
type InvalidType struct{}

func (t *InvalidType) TypeName() string { return "Invalid" }
