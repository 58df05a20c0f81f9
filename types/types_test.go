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

package types

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestInternIsInjective(t *testing.T) {
	ts := NewTypes()
	if a, b := ts.Intern(Bool{}), ts.Intern(Bool{}); a != b {
		t.Fatalf("expected Bool to be interned once, got ids %d and %d", a, b)
	}

	build := func() TypeId {
		return ts.Arrow(ts.Bool(), ts.Intern(Range{Lo: -5, Hi: 10}))
	}
	first, second := build(), build()
	if first != second {
		t.Fatalf("expected equal arrows to share an id, got %d and %d", first, second)
	}

	distinct := []Type{
		Bottom{}, Regex{}, Error{},
		Range{Lo: 0, Hi: 10}, Range{Lo: 0, Hi: 11},
		String{Pattern: "a+"}, String{Pattern: "a*"},
		Named{Name: "T"}, Named{Name: "U"},
	}
	seen := make(map[TypeId]Type)
	seen[first] = ts.Resolve(first)
	seen[ts.Bool()] = Bool{}
	for _, typ := range distinct {
		id := ts.Intern(typ)
		if prev, ok := seen[id]; ok {
			t.Fatalf("distinct types share id %d:\n%s", id, spew.Sdump(prev, typ))
		}
		seen[id] = typ
	}
	if ts.Len() != len(seen)+1 {
		t.Fatalf("expected %d interned types, found %d", len(seen)+1, ts.Len())
	}
	for id, typ := range seen {
		if ts.Resolve(id) != typ {
			t.Fatalf("id %d resolved to %s, expected %s", id, spew.Sdump(ts.Resolve(id)), spew.Sdump(typ))
		}
	}
}

func TestResolveUnissuedIdPanics(t *testing.T) {
	ts := NewTypes()
	ts.Intern(Bool{})
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Resolve to panic for an unissued id")
		}
	}()
	ts.Resolve(7)
}

func TestTypeString(t *testing.T) {
	ts := NewTypes()
	r := ts.Intern(Range{Lo: 0, Hi: 10})
	s := ts.Intern(String{Pattern: "^a+$"})
	f := ts.Arrow(ts.Arrow(r, s), ts.Arrow(ts.Bool(), ts.Intern(Named{Name: "T"})))
	expected := `(Range(0, 10) -> String("^a+$")) -> Bool -> T`
	if got := TypeString(ts, f); got != expected {
		t.Fatalf("expected %s, found %s", expected, got)
	}
}
