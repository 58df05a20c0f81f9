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
	"strconv"
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} { return &typePrinter{} },
}

type typePrinter struct {
	ts *Types
	sb strings.Builder
}

func newTypePrinter(ts *Types) *typePrinter {
	p := printerPool.Get().(*typePrinter)
	p.ts = ts
	return p
}

func (p *typePrinter) Release() {
	p.ts = nil
	p.sb.Reset()
	printerPool.Put(p)
}

// TypeString returns a string representation of the interned type with the given id.
func TypeString(ts *Types, id TypeId) string {
	p := newTypePrinter(ts)
	p.typeString(false, id)
	s := p.sb.String()
	p.Release()
	return s
}

func (p *typePrinter) typeString(simple bool, id TypeId) {
	switch t := p.ts.Resolve(id).(type) {
	case Bottom:
		p.sb.WriteString("Bottom")
	case Bool:
		p.sb.WriteString("Bool")
	case Regex:
		p.sb.WriteString("Regex")
	case Range:
		p.sb.WriteString("Range(")
		p.sb.WriteString(strconv.FormatInt(t.Lo, 10))
		p.sb.WriteString(", ")
		p.sb.WriteString(strconv.FormatInt(t.Hi, 10))
		p.sb.WriteByte(')')
	case String:
		p.sb.WriteString("String(")
		p.sb.WriteString(strconv.Quote(t.Pattern))
		p.sb.WriteByte(')')
	case Arrow:
		if simple {
			p.sb.WriteByte('(')
		}
		p.typeString(true, t.From)
		p.sb.WriteString(" -> ")
		p.typeString(false, t.Into)
		if simple {
			p.sb.WriteByte(')')
		}
	case Named:
		p.sb.WriteString(t.Name)
	case Error:
		p.sb.WriteString("Error")
	}
}
