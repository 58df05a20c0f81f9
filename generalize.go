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
	"github.com/wdamron/refine/ast"
	"github.com/wdamron/refine/internal/typeutil"
)

// Template is the generalized type of a declaration: each reference to the declaration instantiates
// Params with fresh type-variables. Names bound by patterns have templates without params.
type Template struct {
	Params []string
	Uninst typeutil.Type
}

// generalize associates the type parameters of def with its declared type. Type-variables within the
// template are immutable outside of def's own body.
func (c *Checker) generalize(def *ast.ValueDef, t typeutil.Type) Template {
	var params []string
	if len(def.Vars) > 0 {
		params = make([]string, len(def.Vars))
		for i, v := range def.Vars {
			params[i] = normName(v)
		}
	}
	return Template{Params: params, Uninst: typeutil.SetMutability(t, typeutil.Immutable)}
}
