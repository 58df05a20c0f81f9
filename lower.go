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
	"github.com/davecgh/go-spew/spew"

	"github.com/wdamron/refine/ast"
	"github.com/wdamron/refine/internal/typeutil"
)

// lowerType converts a surface type to a working type. Each wildcard becomes a fresh type-variable with mutability m.
func (c *Checker) lowerType(t ast.Type, m typeutil.Mutability) typeutil.Type {
	switch t := t.(type) {
	case *ast.BoolType:
		return typeutil.Bool{}
	case *ast.RegexType:
		return typeutil.Regex{}
	case *ast.RangeType:
		return typeutil.Range{Lo: t.Lo, Hi: t.Hi}
	case *ast.StringType:
		return typeutil.String{Pattern: t.Pattern}
	case *ast.ArrowType:
		from := c.lowerType(t.From, m)
		into := c.lowerType(t.Into, m)
		return typeutil.Arrow{From: from, Into: into}
	case *ast.NamedType:
		return typeutil.Named{Name: normName(t.Name)}
	case *ast.WildcardType, nil:
		return c.vars.New(m)
	case *ast.InvalidType:
		return typeutil.Error{}
	}
	panic("unknown surface type:\n" + spew.Sdump(t))
}
