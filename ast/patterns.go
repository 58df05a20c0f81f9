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

// Pat is the base for all patterns.
type Pat interface {
	// Name of the syntax-type of the pattern.
	PatName() string
}

var (
	_ Pat = (*ConstructorPat)(nil)
	_ Pat = (*BindPat)(nil)
	_ Pat = (*ApplyPat)(nil)
	_ Pat = (*LitPat)(nil)
	_ Pat = (*WildcardPat)(nil)
)

// Algebraic constructor pattern: `Some`
type ConstructorPat struct {
	Name string
}

func (p *ConstructorPat) PatName() string { return "Constructor" }

// Binding pattern: `x`
type BindPat struct {
	Name string
}

func (p *BindPat) PatName() string { return "Bind" }

// Constructor application pattern: `Some x`
type ApplyPat struct {
	Func Pat
	Arg  Pat
}

func (p *ApplyPat) PatName() string { return "Apply" }

// Literal pattern: `5`
type LitPat struct {
	Value Literal
}

func (p *LitPat) PatName() string { return "Lit" }

// Wildcard pattern: `_`
type WildcardPat struct{}

func (p *WildcardPat) PatName() string { return "Wildcard" }

// Literal is the base for all literal values. Literals are plain values.
type Literal interface {
	// Name of the kind of the literal.
	LiteralName() string
}

var (
	_ Literal = Boolean(false)
	_ Literal = Integer(0)
	_ Literal = String("")
	_ Literal = Regex("")
)

// Boolean literal: `true`
type Boolean bool

// Integer literal: `5`
type Integer int64

// String literal: `"abc"`
type String string

// Regular-expression literal: `/a+/`
type Regex string

func (Boolean) LiteralName() string { return "Boolean" }
func (Integer) LiteralName() string { return "Integer" }
func (String) LiteralName() string  { return "String" }
func (Regex) LiteralName() string   { return "Regex" }
