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

// Expr is the base for all expressions.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
	Span() Span
}

var (
	_ Expr = (*Ident)(nil)
	_ Expr = (*Literal)(nil)
	_ Expr = (*List)(nil)
	_ Expr = (*Tuple)(nil)
	_ Expr = (*Record)(nil)
	_ Expr = (*FieldAccess)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Lambda)(nil)
	_ Expr = (*Match)(nil)
	_ Expr = (*If)(nil)
	_ Expr = (*Binary)(nil)
	_ Expr = (*Block)(nil)
)

// Identifier, possibly module-qualified: `x` or `math.add`
type Ident struct {
	Name string
	Loc  Span
}

// LiteralKind distinguishes literal syntax.
type LiteralKind int

const (
	NumberLiteral LiteralKind = iota
	TextLiteral
	BoolLiteral
)

// Literal value: `1`, `1.5`, `"a"` or `True`
type Literal struct {
	Kind LiteralKind
	// Syntax is the literal as written. Number literals containing '.' or an exponent are floats.
	Syntax string
	Loc    Span
}

// List literal: `[a, b]`
type List struct {
	Items []Expr
	Loc   Span
}

// Tuple literal: `(a, b)`
type Tuple struct {
	Items []Expr
	Loc   Span
}

// Record literal: `{ name: "a", ...rest }`
type Record struct {
	Fields []RecordField
	Loc    Span
}

// Field of a record literal. A spread field copies every field of Value; Name is empty.
type RecordField struct {
	Name   SpannedName
	Value  Expr
	Spread bool
}

// Field selection: `user.name`
type FieldAccess struct {
	Base  Expr
	Field SpannedName
	Loc   Span
}

// Application: `f x y`
type Call struct {
	Func Expr
	Args []Expr
	Loc  Span
}

// Abstraction: `x y => x`
type Lambda struct {
	Params []Pattern
	Body   Expr
	Loc    Span
}

// Pattern match: `x match | Some y => y | None => 0`
//
// A match without a scrutinee is a function of one argument which is matched by the arms.
type Match struct {
	Scrutinee Expr
	Arms      []MatchArm
	Loc       Span
}

// Arm of a pattern match, with an optional guard.
type MatchArm struct {
	Pattern Pattern
	Guard   Expr
	Body    Expr
	Loc     Span
}

// Conditional: `if c then a else b`
type If struct {
	Cond Expr
	Then Expr
	Else Expr
	Loc  Span
}

// Binary operator: `a + b`
type Binary struct {
	Op    string
	Left  Expr
	Right Expr
	Loc   Span
}

// Block of bindings and expressions. The block evaluates to its last expression.
type Block struct {
	Items []BlockItem
	Loc   Span
}

// BlockItemKind distinguishes bindings from expression statements.
type BlockItemKind int

const (
	LetItem BlockItemKind = iota
	ExprItem
)

// Item of a block: `x = e` binds the pattern; an expression statement evaluates Expr.
type BlockItem struct {
	Kind    BlockItemKind
	Pattern Pattern
	Expr    Expr
	Loc     Span
}

func (e *Ident) ExprName() string       { return "Ident" }
func (e *Literal) ExprName() string     { return "Literal" }
func (e *List) ExprName() string        { return "List" }
func (e *Tuple) ExprName() string       { return "Tuple" }
func (e *Record) ExprName() string      { return "Record" }
func (e *FieldAccess) ExprName() string { return "FieldAccess" }
func (e *Call) ExprName() string        { return "Call" }
func (e *Lambda) ExprName() string      { return "Lambda" }
func (e *Match) ExprName() string       { return "Match" }
func (e *If) ExprName() string          { return "If" }
func (e *Binary) ExprName() string      { return "Binary" }
func (e *Block) ExprName() string       { return "Block" }

func (e *Ident) Span() Span       { return e.Loc }
func (e *Literal) Span() Span     { return e.Loc }
func (e *List) Span() Span        { return e.Loc }
func (e *Tuple) Span() Span       { return e.Loc }
func (e *Record) Span() Span      { return e.Loc }
func (e *FieldAccess) Span() Span { return e.Loc }
func (e *Call) Span() Span        { return e.Loc }
func (e *Lambda) Span() Span      { return e.Loc }
func (e *Match) Span() Span       { return e.Loc }
func (e *If) Span() Span          { return e.Loc }
func (e *Binary) Span() Span      { return e.Loc }
func (e *Block) Span() Span       { return e.Loc }
