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

package typeutil

// VarTracker allocates type-variables for a single checking session.
//
// Ids are never reused within a session, and no counter is shared between sessions.
type VarTracker struct {
	NextId uint
	count  int
}

func (vt *VarTracker) Reset() { vt.NextId, vt.count = 0, 0 }

// Count returns the number of type-variables allocated since the last reset.
func (vt *VarTracker) Count() int { return vt.count }

// New allocates a fresh type-variable with the given mutability.
func (vt *VarTracker) New(m Mutability) Var {
	v := Var{Mutability: m, Id: vt.NextId}
	vt.NextId, vt.count = vt.NextId+1, vt.count+1
	return v
}

// NewList allocates count fresh type-variables with the given mutability.
func (vt *VarTracker) NewList(m Mutability, count int) []Var {
	vs := make([]Var, count)
	for i := range vs {
		vs[i] = vt.New(m)
	}
	return vs
}
