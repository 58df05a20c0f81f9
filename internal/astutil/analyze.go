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

package astutil

import (
	"errors"

	"github.com/wdamron/refine/ast"
	"github.com/wdamron/refine/internal/util"
)

// Analysis for top-level declarations which may be mutually-recursive.
//
// Declarations are sorted into strongly-connected components of the reference graph, and then
// checked in dependency order. Names bound by patterns shadow top-level declarations within
// their scope, so references to them are not dependencies.
type Analysis struct {
	Verts      map[string]int // map from declaration name to vertex (or -1 for pattern-bound names)
	ScopeStash []StashedScope // shadowed name-scope mappings
	Graph      util.Graph     // edges from each declaration to the declarations it references
	Sccs       [][]int        // components of Graph, in dependency order
	Err        error
	Invalid    ast.Expr

	current int
}

// unscoped marks a stashed name which was not in scope before it was bound.
const unscoped = -2

type StashedScope struct {
	Name   string
	Vertex int
}

// Normalize is applied to each name before it is compared. A nil Normalize leaves names unchanged.
type Normalize func(string) string

// Analyze builds the reference graph of decls. Declarations are assumed to have distinct names.
func Analyze(decls ast.Decls, norm Normalize) (*Analysis, error) {
	if norm == nil {
		norm = func(s string) string { return s }
	}
	a := &Analysis{
		Verts: make(map[string]int, len(decls)),
		Graph: util.NewGraph(len(decls)),
	}
	for i, d := range decls {
		a.Verts[norm(d.Name)] = i
	}
	for i, d := range decls {
		a.current = i
		if err := a.analyzeExpr(norm, d.Body); err != nil {
			a.Err = err
			return a, err
		}
	}
	a.Sccs = a.Graph.SCC()
	return a, nil
}

// Order returns declaration indexes in dependency order.
func (a *Analysis) Order() []int {
	order := make([]int, 0, len(a.Graph))
	for _, c := range a.Sccs {
		order = append(order, c...)
	}
	return order
}

// returns the number of names stashed
func (a *Analysis) stash(norm Normalize, p ast.Pat) int {
	stashed := 0
	ast.WalkPat(p, func(name string) {
		name = norm(name)
		prev, exists := a.Verts[name]
		if !exists {
			prev = unscoped
		}
		a.ScopeStash = append(a.ScopeStash, StashedScope{name, prev})
		a.Verts[name] = -1
		stashed++
	})
	return stashed
}

func (a *Analysis) unstash(count int) {
	if count <= 0 {
		return
	}
	stash := a.ScopeStash
	unstashed := 0
	for i := len(stash) - 1; unstashed < count && i >= 0; i, unstashed = i-1, unstashed+1 {
		if stash[i].Vertex == unscoped {
			delete(a.Verts, stash[i].Name)
		} else {
			a.Verts[stash[i].Name] = stash[i].Vertex
		}
	}
	a.ScopeStash = a.ScopeStash[0 : len(stash)-unstashed]
}

func (a *Analysis) analyzeExpr(norm Normalize, expr ast.Expr) error {
	switch expr := expr.(type) {
	case *ast.Name:
		if v, ok := a.Verts[norm(expr.Name)]; ok && v >= 0 {
			a.Graph.AddEdge(a.current, v)
		}

	case *ast.Lit, *ast.Impossible, *ast.Invalid:
		// nothing to check

	case *ast.Anno:
		return a.analyzeExpr(norm, expr.Expr)

	case *ast.Fun:
		stashed := a.stash(norm, expr.Pat)
		err := a.analyzeExpr(norm, expr.Body)
		a.unstash(stashed)
		return err

	case *ast.Let:
		if err := a.analyzeExpr(norm, expr.Bound); err != nil {
			return err
		}
		stashed := a.stash(norm, expr.Pat)
		defer a.unstash(stashed)
		if err := a.analyzeExpr(norm, expr.Then); err != nil {
			return err
		}
		return a.analyzeExpr(norm, expr.Else)

	case *ast.Call:
		if err := a.analyzeExpr(norm, expr.Func); err != nil {
			return err
		}
		return a.analyzeExpr(norm, expr.Arg)

	case *ast.Op:
		for _, arg := range expr.Args {
			if err := a.analyzeExpr(norm, arg); err != nil {
				return err
			}
		}

	case nil:
		return errors.New("Failed to analyze nil expression")

	default:
		a.Invalid = expr
		return errors.New("Failed to analyze " + expr.ExprName() + " expression")
	}

	return nil
}
