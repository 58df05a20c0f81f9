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

// refine provides checking for a small expression language whose types carry refinements:
// integer ranges, regex-constrained strings, and function arrows.
//
// Checking combines bidirectional inference with Hindley-Milner style unification and
// let-polymorphism over explicitly named type parameters.
//
//
// Overview:
//
//   * Every top-level declaration is declared before any body is checked, so declarations may
//     reference each other in any order, including mutually.
//   * Wildcard types are inferred. Variables introduced by a declaration's annotation are only
//     bound while that declaration's own body is checked; comparisons against them from other
//     declarations are deferred as constraints and solved to a fixpoint.
//   * Ranges are half-open and invariant. String types are compared by pattern; string literals
//     are checked against patterns with a Matcher.
//   * The checked program annotates every expression with a type id from an interned store, in
//     which structurally-equal types always share an id.
//
//
// Links:
//
// Bidirectional typing (Dunfield, Krishnaswami): https://arxiv.org/abs/1908.05839
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// Refinement types: https://en.wikipedia.org/wiki/Refinement_type
package refine
