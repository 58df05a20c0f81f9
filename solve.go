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
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/wdamron/refine/ast"
	"github.com/wdamron/refine/internal/typeutil"
)

// constraint is a deferred obligation.
type constraint interface {
	describe(c *Checker) string
}

// fromLitConstraint requires lit to conform to ty.
type fromLitConstraint struct {
	lit ast.Literal
	ty  typeutil.Type
}

// assignableConstraint requires from to be assignable to into.
type assignableConstraint struct {
	into, from typeutil.Type
}

// instConstraint binds fresh to an instance of orig, once orig is bound.
type instConstraint struct {
	vars  map[string]typeutil.Type
	fresh typeutil.Var
	orig  typeutil.Var
}

func (k fromLitConstraint) describe(c *Checker) string {
	return fmt.Sprintf("FromLit(%s, %s)", ast.LiteralString(k.lit), c.show(k.ty))
}

func (k assignableConstraint) describe(c *Checker) string {
	return fmt.Sprintf("Assignable(%s, %s)", c.show(k.into), c.show(k.from))
}

func (k instConstraint) describe(c *Checker) string {
	return fmt.Sprintf("Instantiate('_%d, '_%d)", k.fresh.Id, k.orig.Id)
}

func (c *Checker) postpone(k constraint) {
	c.worklist = append(c.worklist, k)
	c.tracef("defer %s", k.describe(c))
}

// fromLit requires lit to conform to t, or defers the requirement while t is an unbound type-variable.
func (c *Checker) fromLit(lit ast.Literal, t typeutil.Type) error {
	switch ty := c.subst.Shallow(t).(type) {
	case typeutil.Var:
		c.postpone(fromLitConstraint{lit: lit, ty: ty})
		return nil
	case typeutil.Error:
		return nil
	case typeutil.Bool:
		if _, ok := lit.(ast.Boolean); ok {
			return nil
		}
	case typeutil.Regex:
		if _, ok := lit.(ast.Regex); ok {
			return nil
		}
	case typeutil.Range:
		if v, ok := lit.(ast.Integer); ok {
			if ty.Lo <= int64(v) && int64(v) < ty.Hi {
				return nil
			}
			return newError(LiteralConformance, "%d is not within %s", v, c.show(ty))
		}
	case typeutil.String:
		if s, ok := lit.(ast.String); ok {
			matched, err := c.matcher.Match(ty.Pattern, string(s))
			if err != nil {
				return newError(LiteralConformance, "invalid pattern %q: %v", ty.Pattern, err)
			}
			if !matched {
				return newError(LiteralConformance, "%s does not match %s", ast.LiteralString(lit), c.show(ty))
			}
			return nil
		}
	}
	return newError(LiteralConformance, "%s literal %s does not conform to %s", lit.LiteralName(), ast.LiteralString(lit), c.show(t))
}

func (c *Checker) discharge(k constraint) error {
	switch k := k.(type) {
	case fromLitConstraint:
		return c.fromLit(k.lit, k.ty)
	case assignableConstraint:
		return c.checkAssignable(k.into, k.from)
	case instConstraint:
		bound, ok := c.subst.Lookup(k.orig)
		if !ok {
			c.postpone(k)
			return nil
		}
		return c.checkAssignable(k.fresh, c.instTy(bound, k.vars))
	}
	panic("unknown constraint:\n" + spew.Sdump(k))
}

// solve attempts every deferred constraint, in rounds, until the worklist is empty. A round which
// neither discharges a constraint nor binds a type-variable ends solving: a partial solve returns,
// and a final solve fails.
func (c *Checker) solve(final bool) error {
	for round := 1; len(c.worklist) > 0; round++ {
		pending := c.worklist
		c.worklist = nil
		bound, discharged := len(c.subst), 0
		for _, k := range pending {
			before := len(c.worklist)
			if err := c.discharge(k); err != nil {
				return err
			}
			if len(c.worklist) == before {
				discharged++
			}
		}
		c.tracef("solve round %d: discharged %d of %d, bound %d", round, discharged, len(pending), len(c.subst)-bound)
		if discharged == 0 && len(c.subst) == bound {
			if !final {
				return nil
			}
			return newError(UnsolvedConstraints, "%s", c.pendingString())
		}
	}
	return nil
}

func (c *Checker) pendingString() string {
	var sb strings.Builder
	for i, k := range c.worklist {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k.describe(c))
	}
	return sb.String()
}
