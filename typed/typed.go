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

// Package typed contains checked programs: expressions annotated with interned final types.
package typed

import (
	"github.com/google/uuid"

	"github.com/wdamron/refine/ast"
	"github.com/wdamron/refine/types"
)

// Expr is a checked expression. Every node carries the id of its final type.
type Expr struct {
	Node Node
	Anno types.TypeId
}

// Node is the base for all checked expression nodes.
type Node interface {
	NodeName() string
}

var (
	_ Node = (*Fun)(nil)
	_ Node = (*Let)(nil)
	_ Node = (*Call)(nil)
	_ Node = (*Lit)(nil)
	_ Node = (*Name)(nil)
	_ Node = (*Impossible)(nil)
	_ Node = (*Invalid)(nil)
)

// Abstraction: `fun p -> e`
type Fun struct {
	Pat  ast.Pat
	Body *Expr
}

func (n *Fun) NodeName() string { return "Fun" }

// Pattern-binding: `let p = e then e1 else e2`
type Let struct {
	Pat   ast.Pat
	Bound *Expr
	Then  *Expr
	Else  *Expr
}

func (n *Let) NodeName() string { return "Let" }

// Application: `f(x)`
type Call struct {
	Func *Expr
	Arg  *Expr
}

func (n *Call) NodeName() string { return "Call" }

// Literal value
type Lit struct {
	Value ast.Literal
}

func (n *Lit) NodeName() string { return "Lit" }

// Name reference
type Name struct {
	Name string
}

func (n *Name) NodeName() string { return "Name" }

// Provably-unreachable expression
type Impossible struct{}

func (n *Impossible) NodeName() string { return "Impossible" }

// Expression which failed to parse or elaborate
type Invalid struct{}

func (n *Invalid) NodeName() string { return "Invalid" }

// Template is the generalized type of a top-level declaration. Params may occur as Named types within Type.
type Template struct {
	Params []string
	Type   types.TypeId
}

// Program is the output of a successful checking session.
type Program struct {
	// ID identifies the checking session which produced the program.
	ID uuid.UUID
	// Names lists declarations in source order.
	Names []string
	// Values maps each declaration name to its checked body.
	Values map[string]*Expr
	// Context maps each declaration name to its generalized type.
	Context map[string]Template
	// Types interns every type referenced by Values and Context.
	Types *types.Types
	// Warnings holds recoverable failures, such as references to unknown names.
	Warnings []error
}

// TypeOf returns the final type of the named declaration.
func (p *Program) TypeOf(name string) (types.Type, bool) {
	tpl, ok := p.Context[name]
	if !ok {
		return nil, false
	}
	return p.Types.Resolve(tpl.Type), true
}

// WalkExpr calls f for e and each of its sub-expressions, in pre-order.
func WalkExpr(e *Expr, f func(*Expr)) {
	if e == nil {
		return
	}
	f(e)
	switch n := e.Node.(type) {
	case *Fun:
		WalkExpr(n.Body, f)
	case *Let:
		WalkExpr(n.Bound, f)
		WalkExpr(n.Then, f)
		WalkExpr(n.Else, f)
	case *Call:
		WalkExpr(n.Func, f)
		WalkExpr(n.Arg, f)
	case *Lit, *Name, *Impossible, *Invalid:
	default:
		panic("unknown node type: " + n.NodeName())
	}
}
