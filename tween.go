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

// tExpr is a checked expression annotated with its working type.
type tExpr struct {
	node tNode
	anno typeutil.Type
}

type tNode interface{ tweenNode() }

type (
	tFun struct {
		pat  ast.Pat
		body *tExpr
	}
	tLet struct {
		pat   ast.Pat
		bound *tExpr
		then  *tExpr
		els   *tExpr
	}
	tCall struct {
		fn, arg *tExpr
	}
	tLit        struct{ value ast.Literal }
	tName       struct{ name string }
	tImpossible struct{}
	tInvalid    struct{}
)

func (tFun) tweenNode()        {}
func (tLet) tweenNode()        {}
func (tCall) tweenNode()       {}
func (tLit) tweenNode()        {}
func (tName) tweenNode()       {}
func (tImpossible) tweenNode() {}
func (tInvalid) tweenNode()    {}
