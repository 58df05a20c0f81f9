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

import (
	"strconv"
	"strings"
)

// TypeString returns a string representation of a working type.
//
// Type-variables are printed as '_N; immutable type-variables are prefixed with ^.
func TypeString(t Type) string {
	var sb strings.Builder
	typeString(&sb, false, t)
	return sb.String()
}

func typeString(sb *strings.Builder, simple bool, t Type) {
	switch t := t.(type) {
	case Bottom:
		sb.WriteString("Bottom")
	case Bool:
		sb.WriteString("Bool")
	case Regex:
		sb.WriteString("Regex")
	case Range:
		sb.WriteString("Range(")
		sb.WriteString(strconv.FormatInt(t.Lo, 10))
		sb.WriteString(", ")
		sb.WriteString(strconv.FormatInt(t.Hi, 10))
		sb.WriteByte(')')
	case String:
		sb.WriteString("String(")
		sb.WriteString(strconv.Quote(t.Pattern))
		sb.WriteByte(')')
	case Arrow:
		if simple {
			sb.WriteByte('(')
		}
		typeString(sb, true, t.From)
		sb.WriteString(" -> ")
		typeString(sb, false, t.Into)
		if simple {
			sb.WriteByte(')')
		}
	case Named:
		sb.WriteString(t.Name)
	case Var:
		if t.Mutability == Immutable {
			sb.WriteByte('^')
		}
		sb.WriteString("'_")
		sb.WriteString(strconv.FormatUint(uint64(t.Id), 10))
	case Error:
		sb.WriteString("Error")
	case nil:
		sb.WriteString("<nil>")
	}
}
