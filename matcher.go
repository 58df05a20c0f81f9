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
	"regexp"
	"sync"
)

// Matcher decides whether text matches a regular-expression pattern. Patterns are compared by string equality.
type Matcher interface {
	Match(pattern, text string) (bool, error)
}

// MatcherFunc adapts a function to the Matcher interface.
type MatcherFunc func(pattern, text string) (bool, error)

func (f MatcherFunc) Match(pattern, text string) (bool, error) { return f(pattern, text) }

// RegexpMatcher matches with the regexp package. Patterns are unanchored, and compiled patterns are cached.
//
// A RegexpMatcher may be shared by concurrent checkers.
type RegexpMatcher struct {
	mu    sync.Mutex
	cache map[string]*regexp.Regexp
}

func NewRegexpMatcher() *RegexpMatcher {
	return &RegexpMatcher{cache: make(map[string]*regexp.Regexp)}
}

func (m *RegexpMatcher) Match(pattern, text string) (bool, error) {
	m.mu.Lock()
	re, ok := m.cache[pattern]
	if !ok {
		var err error
		if re, err = regexp.Compile(pattern); err != nil {
			m.mu.Unlock()
			return false, err
		}
		if m.cache == nil {
			m.cache = make(map[string]*regexp.Regexp)
		}
		m.cache[pattern] = re
	}
	m.mu.Unlock()
	return re.MatchString(text), nil
}
