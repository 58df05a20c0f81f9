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
	"reflect"
	"testing"

	. "github.com/wdamron/refine/construct"
)

func TestAnalyzeOrdersDependenciesFirst(t *testing.T) {
	decls := Decls(
		Def("y", nil, Call(Name("f"), Name("x"))),
		Def("f", nil, Fun1("a", Name("a"))),
		Def("x", TRange(0, 10), Int(5)),
		// x is shadowed by the pattern, so z does not depend on the declaration x
		Def("z", nil, Fun1("x", Name("x"))),
	)
	a, err := Analyze(decls, nil)
	if err != nil {
		t.Fatal(err)
	}
	expected := []int{1, 2, 0, 3}
	if order := a.Order(); !reflect.DeepEqual(order, expected) {
		t.Fatalf("expected order %v, found %v", expected, order)
	}
	if len(a.Graph[3]) != 0 {
		t.Fatalf("expected z to have no dependencies, found %v", a.Graph[3])
	}
	if len(a.ScopeStash) != 0 || len(a.Verts) != 4 || a.Verts["x"] != 2 {
		t.Fatalf("expected pattern scopes to be restored, found %v", a.Verts)
	}
}

func TestAnalyzeMutualRecursion(t *testing.T) {
	decls := Decls(
		Def("p", nil, Name("q")),
		Def("q", nil, Let(PBind("r"), Name("p"), Name("r"), Name("q"))),
	)
	a, err := Analyze(decls, nil)
	if err != nil {
		t.Fatal(err)
	}
	if expected := [][]int{{0, 1}}; !reflect.DeepEqual(a.Sccs, expected) {
		t.Fatalf("expected components %v, found %v", expected, a.Sccs)
	}
}

func TestAnalyzeNilExpression(t *testing.T) {
	if _, err := Analyze(Decls(Def("n", nil, nil)), nil); err == nil {
		t.Fatalf("expected an error for a nil body")
	}
}
