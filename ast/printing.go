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

import (
	"strconv"
	"strings"
)

// ExprString returns a string representation of an expression.
func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, false, e)
	return sb.String()
}

// PatString returns a string representation of a pattern.
func PatString(p Pat) string {
	var sb strings.Builder
	patString(&sb, false, p)
	return sb.String()
}

// TypeString returns a string representation of a surface type.
func TypeString(t Type) string {
	var sb strings.Builder
	typeString(&sb, false, t)
	return sb.String()
}

// LiteralString returns a string representation of a literal.
func LiteralString(l Literal) string {
	switch l := l.(type) {
	case Boolean:
		return strconv.FormatBool(bool(l))
	case Integer:
		return strconv.FormatInt(int64(l), 10)
	case String:
		return strconv.Quote(string(l))
	case Regex:
		return "/" + string(l) + "/"
	}
	return "<nil>"
}

func exprString(sb *strings.Builder, simple bool, e Expr) {
	switch e := e.(type) {
	case *Anno:
		sb.WriteByte('(')
		exprString(sb, false, e.Expr)
		sb.WriteString(" : ")
		typeString(sb, false, e.Type)
		sb.WriteByte(')')

	case *Fun:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("fun ")
		patString(sb, true, e.Pat)
		sb.WriteString(" -> ")
		exprString(sb, false, e.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *Let:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("let ")
		patString(sb, false, e.Pat)
		sb.WriteString(" = ")
		exprString(sb, false, e.Bound)
		sb.WriteString(" then ")
		exprString(sb, false, e.Then)
		sb.WriteString(" else ")
		exprString(sb, false, e.Else)
		if simple {
			sb.WriteByte(')')
		}

	case *Call:
		exprString(sb, true, e.Func)
		sb.WriteByte('(')
		exprString(sb, false, e.Arg)
		sb.WriteByte(')')

	case *Lit:
		sb.WriteString(LiteralString(e.Value))

	case *Name:
		sb.WriteString(e.Name)

	case *Op:
		sb.WriteString(e.Kind.String())
		sb.WriteByte('(')
		for i, arg := range e.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			exprString(sb, false, arg)
		}
		sb.WriteByte(')')

	case *Impossible:
		sb.WriteString("impossible")

	case *Invalid:
		sb.WriteString("<invalid>")

	case nil:
		sb.WriteString("<nil>")
	}
}

func patString(sb *strings.Builder, simple bool, p Pat) {
	switch p := p.(type) {
	case *ConstructorPat:
		sb.WriteString(p.Name)
	case *BindPat:
		sb.WriteString(p.Name)
	case *ApplyPat:
		if simple {
			sb.WriteByte('(')
		}
		patString(sb, true, p.Func)
		sb.WriteByte(' ')
		patString(sb, true, p.Arg)
		if simple {
			sb.WriteByte(')')
		}
	case *LitPat:
		sb.WriteString(LiteralString(p.Value))
	case *WildcardPat:
		sb.WriteByte('_')
	case nil:
		sb.WriteString("<nil>")
	}
}

func typeString(sb *strings.Builder, simple bool, t Type) {
	switch t := t.(type) {
	case *BoolType:
		sb.WriteString("Bool")
	case *RegexType:
		sb.WriteString("Regex")
	case *RangeType:
		sb.WriteString("Range(")
		sb.WriteString(strconv.FormatInt(t.Lo, 10))
		sb.WriteString(", ")
		sb.WriteString(strconv.FormatInt(t.Hi, 10))
		sb.WriteByte(')')
	case *StringType:
		sb.WriteString("String(")
		sb.WriteString(strconv.Quote(t.Pattern))
		sb.WriteByte(')')
	case *ArrowType:
		if simple {
			sb.WriteByte('(')
		}
		typeString(sb, true, t.From)
		sb.WriteString(" -> ")
		typeString(sb, false, t.Into)
		if simple {
			sb.WriteByte(')')
		}
	case *NamedType:
		sb.WriteString(t.Name)
	case *WildcardType, nil:
		sb.WriteByte('_')
	case *InvalidType:
		sb.WriteString("<invalid>")
	}
}
