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

import "io"

// Option configures a Checker.
type Option func(*Checker)

// WithMatcher sets the Matcher used to check string literals against String types.
// By default, patterns are matched with the regexp package.
func WithMatcher(m Matcher) Option {
	return func(c *Checker) { c.matcher = m }
}

// WithTrace enables trace output for each step of checking. Each line is prefixed with the session id.
func WithTrace(w io.Writer) Option {
	return func(c *Checker) { c.trace = w }
}

// WithSourceOrder checks declaration bodies in source order, rather than in dependency order.
func WithSourceOrder() Option {
	return func(c *Checker) { c.sourceOrder = true }
}
