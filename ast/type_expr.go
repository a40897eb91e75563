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

// TypeExpr is the base for all type expressions.
type TypeExpr interface {
	// Name of the syntax-type of the type expression.
	TypeExprName() string
	Span() Span
}

var (
	_ TypeExpr = (*TypeName)(nil)
	_ TypeExpr = (*TypeApply)(nil)
	_ TypeExpr = (*TypeFunc)(nil)
	_ TypeExpr = (*TypeRecord)(nil)
	_ TypeExpr = (*TypeTuple)(nil)
	_ TypeExpr = (*TypeBranded)(nil)
)

// Named type or type-variable: `Int` or `A`
type TypeName struct {
	Name string
	Loc  Span
}

// Type application: `List Int`
type TypeApply struct {
	Base TypeExpr
	Args []TypeExpr
	Loc  Span
}

// Function type: `Int -> Int -> Bool`
type TypeFunc struct {
	Params []TypeExpr
	Result TypeExpr
	Loc    Span
}

// Record type: `{ name: Text, age: Int }`
type TypeRecord struct {
	Fields []TypeField
	Loc    Span
}

// Field of a record type.
type TypeField struct {
	Name SpannedName
	Type TypeExpr
}

// Tuple type: `(Int, Text)`
type TypeTuple struct {
	Items []TypeExpr
	Loc   Span
}

// Branded type: `Text!`
type TypeBranded struct {
	Inner TypeExpr
	Loc   Span
}

func (t *TypeName) TypeExprName() string    { return "TypeName" }
func (t *TypeApply) TypeExprName() string   { return "TypeApply" }
func (t *TypeFunc) TypeExprName() string    { return "TypeFunc" }
func (t *TypeRecord) TypeExprName() string  { return "TypeRecord" }
func (t *TypeTuple) TypeExprName() string   { return "TypeTuple" }
func (t *TypeBranded) TypeExprName() string { return "TypeBranded" }

func (t *TypeName) Span() Span    { return t.Loc }
func (t *TypeApply) Span() Span   { return t.Loc }
func (t *TypeFunc) Span() Span    { return t.Loc }
func (t *TypeRecord) Span() Span  { return t.Loc }
func (t *TypeTuple) Span() Span   { return t.Loc }
func (t *TypeBranded) Span() Span { return t.Loc }
