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
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/wdamron/refine/ast"
	"github.com/wdamron/refine/internal/typeutil"
	"github.com/wdamron/refine/typed"
	"github.com/wdamron/refine/types"
)

// Checker is a reusable context for checking declaration sets.
//
// Each call to Check starts a new session with its own type-variable counter, context, substitution,
// and type store. A checker cannot be used concurrently.
type Checker struct {
	matcher     Matcher
	trace       io.Writer
	sourceOrder bool

	id       uuid.UUID
	log      *log.Logger
	vars     typeutil.VarTracker
	ctx      scope
	subst    typeutil.Subst
	worklist []constraint
	types    *types.Types
	warnings []error
	decl     string

	err     error
	invalid ast.Expr
}

// Create a new checker. A checker may be reused for checking.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{}
	for _, opt := range opts {
		opt(c)
	}
	if c.matcher == nil {
		c.matcher = NewRegexpMatcher()
	}
	return c
}

// Check checks decls in a new session.
func Check(decls ast.Decls, opts ...Option) (*typed.Program, error) {
	return NewChecker(opts...).Check(decls)
}

func (c *Checker) reset() {
	c.id = uuid.New()
	c.vars.Reset()
	c.ctx = emptyScope
	c.subst = make(typeutil.Subst, 32)
	c.worklist = nil
	c.types = types.NewTypes()
	c.warnings, c.decl, c.err, c.invalid = nil, "", nil, nil
	c.log = nil
	if c.trace != nil {
		c.log = log.New(c.trace, "["+c.id.String()[:8]+"] ", 0)
	}
}

// Get the id of the current (or most recent) session.
func (c *Checker) ID() uuid.UUID { return c.id }

// Get the error which caused checking to fail.
func (c *Checker) Error() error { return c.err }

// Get the expression which caused checking to fail.
func (c *Checker) InvalidExpr() ast.Expr { return c.invalid }

func (c *Checker) tracef(format string, args ...interface{}) {
	if c.log != nil {
		c.log.Printf(format, args...)
	}
}

// show prints t with every bound type-variable resolved.
func (c *Checker) show(t typeutil.Type) string { return typeutil.TypeString(c.subst.Apply(t)) }
