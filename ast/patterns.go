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

package ast

// Pattern is the base for all patterns.
type Pattern interface {
	// Name of the syntax-type of the pattern.
	PatternName() string
	Span() Span
}

var (
	_ Pattern = (*PWildcard)(nil)
	_ Pattern = (*PIdent)(nil)
	_ Pattern = (*PLiteral)(nil)
	_ Pattern = (*PConstructor)(nil)
	_ Pattern = (*PTuple)(nil)
	_ Pattern = (*PRecord)(nil)
)

// Wildcard: `_`
type PWildcard struct {
	Loc Span
}

// Binding: `x`
type PIdent struct {
	Name SpannedName
}

// Literal: `1` or `"a"`
type PLiteral struct {
	Literal *Literal
}

// Constructor: `Some x`
type PConstructor struct {
	Name SpannedName
	Args []Pattern
	Loc  Span
}

// Tuple: `(a, b)`
type PTuple struct {
	Items []Pattern
	Loc   Span
}

// Record: `{ name, age: a }`
type PRecord struct {
	Fields []PRecordField
	Loc    Span
}

// Field of a record pattern. A nil Pattern binds the field to its own name.
type PRecordField struct {
	Name    SpannedName
	Pattern Pattern
}

func (p *PWildcard) PatternName() string    { return "Wildcard" }
func (p *PIdent) PatternName() string       { return "Ident" }
func (p *PLiteral) PatternName() string     { return "Literal" }
func (p *PConstructor) PatternName() string { return "Constructor" }
func (p *PTuple) PatternName() string       { return "Tuple" }
func (p *PRecord) PatternName() string      { return "Record" }

func (p *PWildcard) Span() Span    { return p.Loc }
func (p *PIdent) Span() Span       { return p.Name.Loc }
func (p *PLiteral) Span() Span     { return p.Literal.Loc }
func (p *PConstructor) Span() Span { return p.Loc }
func (p *PTuple) Span() Span       { return p.Loc }
func (p *PRecord) Span() Span      { return p.Loc }

// Check if a pattern matches every value of its type: a wildcard or a binding.
func IsCatchAll(p Pattern) bool {
	switch p.(type) {
	case *PWildcard, *PIdent:
		return true
	}
	return false
}
