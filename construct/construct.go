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

// Package construct provides terse constructors for surface trees.
package construct

import (
	"github.com/wdamron/refine/ast"
)

// Types

// Type: `Bool`
func TBool() *ast.BoolType { return &ast.BoolType{} }

// Type: `Regex`
func TRegex() *ast.RegexType { return &ast.RegexType{} }

// Integers in [lo, hi): `Range(0, 10)`
func TRange(lo, hi int64) *ast.RangeType { return &ast.RangeType{Lo: lo, Hi: hi} }

// Strings matching pattern: `String("^a+$")`
func TString(pattern string) *ast.StringType { return &ast.StringType{Pattern: pattern} }

// Function type: `T -> U`
func TArrow(from, into ast.Type) *ast.ArrowType { return &ast.ArrowType{From: from, Into: into} }

// Type parameter reference: `T`
func TNamed(name string) *ast.NamedType { return &ast.NamedType{Name: name} }

// Inferred type: `_`
func TWild() *ast.WildcardType { return &ast.WildcardType{} }

// Expressions

// Annotation: `(e : T)`
func Anno(e ast.Expr, t ast.Type) *ast.Anno { return &ast.Anno{Expr: e, Type: t} }

// Abstraction: `fun p -> e`
func Fun(p ast.Pat, body ast.Expr) *ast.Fun { return &ast.Fun{Pat: p, Body: body} }

// Abstraction over a single name: `fun x -> e`
func Fun1(name string, body ast.Expr) *ast.Fun { return &ast.Fun{Pat: PBind(name), Body: body} }

// Pattern-binding: `let p = e then e1 else e2`
func Let(p ast.Pat, bound, then, els ast.Expr) *ast.Let {
	return &ast.Let{Pat: p, Bound: bound, Then: then, Else: els}
}

// Application: `f(x)`
func Call(f, arg ast.Expr) *ast.Call { return &ast.Call{Func: f, Arg: arg} }

// Name reference
func Name(name string) *ast.Name { return &ast.Name{Name: name} }

// Boolean literal
func Bool(v bool) *ast.Lit { return &ast.Lit{Value: ast.Boolean(v)} }

// Integer literal
func Int(v int64) *ast.Lit { return &ast.Lit{Value: ast.Integer(v)} }

// String literal
func Str(v string) *ast.Lit { return &ast.Lit{Value: ast.String(v)} }

// Regular-expression literal
func Re(v string) *ast.Lit { return &ast.Lit{Value: ast.Regex(v)} }

// Operator application: `add(x, y)`
func Op(kind ast.OpKind, args ...ast.Expr) *ast.Op { return &ast.Op{Kind: kind, Args: args} }

// Unreachable expression
func Impossible() *ast.Impossible { return &ast.Impossible{} }

// Erroneous expression
func Invalid() *ast.Invalid { return &ast.Invalid{} }

// Patterns

// Binding pattern: `x`
func PBind(name string) *ast.BindPat { return &ast.BindPat{Name: name} }

// Literal pattern: `5`
func PLit(l ast.Literal) *ast.LitPat { return &ast.LitPat{Value: l} }

// Wildcard pattern: `_`
func PWild() *ast.WildcardPat { return &ast.WildcardPat{} }

// Constructor application pattern: `C p`
func PApply(f, arg ast.Pat) *ast.ApplyPat { return &ast.ApplyPat{Func: f, Arg: arg} }

// Constructor pattern: `C`
func PCon(name string) *ast.ConstructorPat { return &ast.ConstructorPat{Name: name} }

// Declarations

// Monomorphic declaration: `name : anno = body`
func Def(name string, anno ast.Type, body ast.Expr) *ast.ValueDef {
	return &ast.ValueDef{Name: name, Anno: anno, Body: body}
}

// Polymorphic declaration: `name[vars...] : anno = body`
func PolyDef(name string, vars []string, anno ast.Type, body ast.Expr) *ast.ValueDef {
	return &ast.ValueDef{Name: name, Vars: vars, Anno: anno, Body: body}
}

// Declaration set, in source order
func Decls(defs ...*ast.ValueDef) ast.Decls { return ast.Decls(defs) }
