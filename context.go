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
	"github.com/benbjohnson/immutable"
	"golang.org/x/text/unicode/norm"
)

// scope contains immutable mappings from names to templates.
//
// Extending a scope never mutates it, so a saved scope can be restored after a pattern's bindings go out of scope.
type scope struct {
	m *immutable.SortedMap
}

var emptyScope = scope{immutable.NewSortedMap(nil)}

func (s scope) declare(name string, t Template) scope { return scope{s.m.Set(name, t)} }

func (s scope) lookup(name string) (Template, bool) {
	t, ok := s.m.Get(name)
	if !ok {
		return Template{}, false
	}
	return t.(Template), true
}

func (s scope) Len() int { return s.m.Len() }

// Iterate over entries in the scope, sorted by name. If f returns false, iteration will be stopped.
func (s scope) Range(f func(string, Template) bool) {
	iter := s.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(Template)) {
			return
		}
	}
}

// normName returns the NFC normal form of name, so canonically-equivalent names are the same name.
func normName(name string) string { return norm.NFC.String(name) }

// declare binds name to t in the current scope, shadowing any previous binding.
func (c *Checker) declare(name string, t Template) {
	c.ctx = c.ctx.declare(normName(name), t)
}

func (c *Checker) lookup(name string) (Template, bool) {
	return c.ctx.lookup(normName(name))
}
