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

// Package ast contains the un-checked surface tree: declarations, expressions, patterns, literals, and types.
package ast

// Expr is the base for all expressions.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
}

var (
	_ Expr = (*Anno)(nil)
	_ Expr = (*Fun)(nil)
	_ Expr = (*Let)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Lit)(nil)
	_ Expr = (*Name)(nil)
	_ Expr = (*Op)(nil)
	_ Expr = (*Impossible)(nil)
	_ Expr = (*Invalid)(nil)
)

// Type annotation: `(e : T)`
type Anno struct {
	Expr Expr
	Type Type
}

// "Anno"
func (e *Anno) ExprName() string { return "Anno" }

// Abstraction: `fun p -> e`
type Fun struct {
	Pat  Pat
	Body Expr
}

// "Fun"
func (e *Fun) ExprName() string { return "Fun" }

// Pattern-binding: `let p = e then e1 else e2`
//
// Else is the continuation taken when the bound value does not match the pattern.
type Let struct {
	Pat   Pat
	Bound Expr
	Then  Expr
	Else  Expr
}

// "Let"
func (e *Let) ExprName() string { return "Let" }

// Application: `f(x)`
type Call struct {
	Func Expr
	Arg  Expr
}

// "Call"
func (e *Call) ExprName() string { return "Call" }

// Literal value
type Lit struct {
	Value Literal
}

// "Lit"
func (e *Lit) ExprName() string { return "Lit" }

// Name reference
type Name struct {
	Name string
}

// "Name"
func (e *Name) ExprName() string { return "Name" }

// OpKind identifies a built-in operator.
type OpKind uint8

const (
	OpAdd OpKind = iota
	OpSub
	OpEq
	OpLess
	OpAnd
	OpOr
	OpNot
	OpIn
)

var opNames = [...]string{
	OpAdd:  "add",
	OpSub:  "sub",
	OpEq:   "eq",
	OpLess: "less",
	OpAnd:  "and",
	OpOr:   "or",
	OpNot:  "not",
	OpIn:   "in",
}

func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return "op?"
}

// Built-in operator application: `add(x, y)`
type Op struct {
	Kind OpKind
	Args []Expr
}

// "Op"
func (e *Op) ExprName() string { return "Op" }

// Provably-unreachable expression
type Impossible struct{}

// "Impossible"
func (e *Impossible) ExprName() string { return "Impossible" }

// Expression which failed to parse or elaborate; the failure has already been reported.
type Invalid struct{}

// "Invalid"
func (e *Invalid) ExprName() string { return "Invalid" }
