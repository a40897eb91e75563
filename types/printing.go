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
	New: func() interface{} {
		return &typePrinter{idNames: make(map[VarID]string, 16), used: make(map[string]bool, 16)}
	},
}

func newTypePrinter(names func(VarID) (string, bool)) *typePrinter {
	p := printerPool.Get().(*typePrinter)
	p.names = names
	return p
}

func (p *typePrinter) Release() {
	for k := range p.idNames {
		delete(p.idNames, k)
	}
	for k := range p.used {
		delete(p.used, k)
	}
	p.next, p.names = 0, nil
	p.sb.Reset()
	printerPool.Put(p)
}

// TypeString returns a string representation of a Type.
//
// Type-variables are named 'a, 'b, ... in order of first occurrence.
func TypeString(t Type) string {
	p := newTypePrinter(nil)
	p.typeString(t)
	s := p.sb.String()
	p.Release()
	return s
}

// TypeStrings returns string representations of several types, sharing type-variable names
// across all of them. names may provide debug names for type-variables; it may be nil.
func TypeStrings(names func(VarID) (string, bool), ts ...Type) []string {
	p := newTypePrinter(names)
	out := make([]string, len(ts))
	for i, t := range ts {
		p.typeString(t)
		out[i] = p.sb.String()
		p.sb.Reset()
	}
	p.Release()
	return out
}

// SchemeString returns a string representation of a type-scheme. Quantified variables are
// not listed; they are printed like any other type-variable.
func SchemeString(s Scheme) string { return TypeString(s.Type) }

type typePrinter struct {
	idNames map[VarID]string
	used    map[string]bool
	names   func(VarID) (string, bool)
	next    int
	sb      strings.Builder
}

var _names [128]string

func init() {
	for i := range _names {
		_names[i] = varName(i)
	}
}

func varName(i int) string {
	if i < 26 {
		return "'" + string(byte('a'+i))
	}
	return "'" + string(byte('a'+i%26)) + strconv.Itoa(i/26)
}

func getVarName(i int) string {
	if i < len(_names) {
		return _names[i]
	}
	return varName(i)
}

func (p *typePrinter) varName(id VarID) string {
	if name, ok := p.idNames[id]; ok {
		return name
	}
	var name string
	if p.names != nil {
		// distinct variables sharing a debug name fall back to generated names
		if debug, ok := p.names(id); ok && !p.used[debug] {
			name = debug
		}
	}
	for name == "" || p.used[name] {
		name = getVarName(p.next)
		p.next++
	}
	p.idNames[id], p.used[name] = name, true
	return name
}

// Arguments which are themselves applied, or functions, are wrapped in parentheses.
func (p *typePrinter) argString(t Type) {
	switch t := t.(type) {
	case *Con:
		if len(t.Args) == 0 {
			p.sb.WriteString(t.Name)
			return
		}
	case *Var, *Tuple, *Record:
		p.typeString(t)
		return
	}
	p.sb.WriteByte('(')
	p.typeString(t)
	p.sb.WriteByte(')')
}

func (p *typePrinter) typeString(t Type) {
	sb := &p.sb
	switch t := t.(type) {
	case *Var:
		sb.WriteString(p.varName(t.ID))

	case *Con:
		sb.WriteString(t.Name)
		for _, arg := range t.Args {
			sb.WriteByte(' ')
			p.argString(arg)
		}

	case *App:
		p.argString(t.Base)
		for _, arg := range t.Args {
			sb.WriteByte(' ')
			p.argString(arg)
		}

	case *Func:
		if _, ok := t.Param.(*Func); ok {
			sb.WriteByte('(')
			p.typeString(t.Param)
			sb.WriteByte(')')
		} else {
			p.typeString(t.Param)
		}
		sb.WriteString(" -> ")
		p.typeString(t.Result)

	case *Tuple:
		sb.WriteByte('(')
		for i, item := range t.Items {
			if i > 0 {
				sb.WriteString(", ")
			}
			p.typeString(item)
		}
		sb.WriteByte(')')

	case *Record:
		if t.Fields.Len() == 0 {
			if t.Open {
				sb.WriteString("{ .. }")
			} else {
				sb.WriteString("{}")
			}
			return
		}
		sb.WriteString("{ ")
		i := 0
		t.Fields.Range(func(label string, ft Type) bool {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(label)
			sb.WriteString(": ")
			p.typeString(ft)
			i++
			return true
		})
		if t.Open {
			sb.WriteString(", ..")
		}
		sb.WriteString(" }")

	case nil:
		sb.WriteString("<nil>")
	}
}
