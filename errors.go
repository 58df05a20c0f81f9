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
	"fmt"
	"strings"

	"github.com/wdamron/refine/ast"
)

// ErrorKind classifies checking failures.
type ErrorKind uint8

const (
	// TypeMismatch indicates structurally incompatible types.
	TypeMismatch ErrorKind = iota + 1
	// RecursiveType indicates a failed occurs-check.
	RecursiveType
	// LiteralConformance indicates a literal which does not conform to its type.
	LiteralConformance
	// UnsolvedConstraints indicates that the solver stopped making progress.
	UnsolvedConstraints
	// UnresolvedTypeVariable indicates a type-variable which was never bound.
	UnresolvedTypeVariable
	// AmbiguousExpression indicates an expression whose type cannot be synthesized.
	AmbiguousExpression
	// UnknownName indicates a reference to an undeclared name. Unknown names are reported as warnings.
	UnknownName
	// Unsupported indicates operators or constructor patterns, which have no typing rules.
	Unsupported
	// Redeclared indicates duplicate declarations or type parameters.
	Redeclared
)

var kindNames = [...]string{
	TypeMismatch:           "type mismatch",
	RecursiveType:          "recursive type",
	LiteralConformance:     "literal conformance",
	UnsolvedConstraints:    "unsolved constraints",
	UnresolvedTypeVariable: "unresolved type variable",
	AmbiguousExpression:    "ambiguous expression",
	UnknownName:            "unknown name",
	Unsupported:            "unsupported",
	Redeclared:             "redeclared",
}

func (k ErrorKind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown error"
}

// TypeError describes a checking failure.
type TypeError struct {
	Kind ErrorKind
	Msg  string
	// Decl is the name of the declaration being checked, if any.
	Decl string
	// Expr is the innermost expression which failed to check, if known.
	Expr ast.Expr
}

func (e *TypeError) Error() string {
	var sb strings.Builder
	if e.Decl != "" {
		sb.WriteString(e.Decl)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Kind.String())
	if e.Msg != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Msg)
	}
	if e.Expr != nil {
		sb.WriteString(" in ")
		sb.WriteString(ast.ExprString(e.Expr))
	}
	return sb.String()
}

// Is reports whether target is a *TypeError of the same kind, so errors.Is may be used with the Err* values.
func (e *TypeError) Is(target error) bool {
	t, ok := target.(*TypeError)
	return ok && t.Kind == e.Kind
}

var (
	ErrTypeMismatch           error = &TypeError{Kind: TypeMismatch}
	ErrRecursiveType          error = &TypeError{Kind: RecursiveType}
	ErrLiteralConformance     error = &TypeError{Kind: LiteralConformance}
	ErrUnsolvedConstraints    error = &TypeError{Kind: UnsolvedConstraints}
	ErrUnresolvedTypeVariable error = &TypeError{Kind: UnresolvedTypeVariable}
	ErrAmbiguousExpression    error = &TypeError{Kind: AmbiguousExpression}
	ErrUnknownName            error = &TypeError{Kind: UnknownName}
	ErrUnsupported            error = &TypeError{Kind: Unsupported}
	ErrRedeclared             error = &TypeError{Kind: Redeclared}
)

func newError(kind ErrorKind, format string, args ...interface{}) *TypeError {
	return &TypeError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// locate attaches e to err, unless a more specific expression is already attached.
func locate(e ast.Expr, err error) error {
	if te, ok := err.(*TypeError); ok && te.Expr == nil && e != nil {
		te.Expr = e
	}
	return err
}

// inDecl attaches the current declaration name to err.
func (c *Checker) inDecl(err error) error {
	if te, ok := err.(*TypeError); ok && te.Decl == "" {
		te.Decl = c.decl
	}
	return err
}
