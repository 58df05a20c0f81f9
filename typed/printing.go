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

package typed

import (
	"strings"

	"github.com/wdamron/refine/ast"
	"github.com/wdamron/refine/types"
)

// ExprString returns a string representation of a checked expression, with the type of each
// name, literal, and call annotated.
func ExprString(ts *types.Types, e *Expr) string {
	var sb strings.Builder
	exprString(&sb, ts, e)
	return sb.String()
}

func annotate(sb *strings.Builder, ts *types.Types, e *Expr, s string) {
	sb.WriteByte('(')
	sb.WriteString(s)
	sb.WriteString(" : ")
	sb.WriteString(types.TypeString(ts, e.Anno))
	sb.WriteByte(')')
}

func exprString(sb *strings.Builder, ts *types.Types, e *Expr) {
	switch n := e.Node.(type) {
	case *Fun:
		sb.WriteString("fun ")
		sb.WriteString(ast.PatString(n.Pat))
		sb.WriteString(" -> ")
		exprString(sb, ts, n.Body)
	case *Let:
		sb.WriteString("let ")
		sb.WriteString(ast.PatString(n.Pat))
		sb.WriteString(" = ")
		exprString(sb, ts, n.Bound)
		sb.WriteString(" then ")
		exprString(sb, ts, n.Then)
		sb.WriteString(" else ")
		exprString(sb, ts, n.Else)
	case *Call:
		sb.WriteByte('(')
		exprString(sb, ts, n.Func)
		sb.WriteByte('(')
		exprString(sb, ts, n.Arg)
		sb.WriteString(") : ")
		sb.WriteString(types.TypeString(ts, e.Anno))
		sb.WriteByte(')')
	case *Lit:
		annotate(sb, ts, e, ast.LiteralString(n.Value))
	case *Name:
		annotate(sb, ts, e, n.Name)
	case *Impossible:
		annotate(sb, ts, e, "impossible")
	case *Invalid:
		annotate(sb, ts, e, "<invalid>")
	}
}

// ProgramString returns a string representation of the context of a checked program, one
// declaration per line in source order.
func ProgramString(p *Program) string {
	var sb strings.Builder
	for _, name := range p.Names {
		tpl := p.Context[name]
		sb.WriteString(name)
		if len(tpl.Params) > 0 {
			sb.WriteByte('[')
			sb.WriteString(strings.Join(tpl.Params, ", "))
			sb.WriteByte(']')
		}
		sb.WriteString(" : ")
		sb.WriteString(types.TypeString(p.Types, tpl.Type))
		sb.WriteString(" = ")
		exprString(&sb, p.Types, p.Values[name])
		sb.WriteByte('\n')
	}
	return sb.String()
}
