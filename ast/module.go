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

// Module is a parsed source module.
type Module struct {
	Name    SpannedName
	Path    string
	Exports []ExportItem
	Uses    []UseDecl
	Items   []Item
	Loc     Span
}

func (m *Module) Span() Span { return m.Loc }

// ScopeItemKind distinguishes exported or imported values from domains.
type ScopeItemKind int

const (
	ValueItem ScopeItemKind = iota
	DomainItem
)

// Exported name: `export add, domain Vector`
type ExportItem struct {
	Kind ScopeItemKind
	Name SpannedName
}

// Imported name within a use declaration.
type UseItem struct {
	Kind ScopeItemKind
	Name SpannedName
}

// Import: `use math (add, domain Vector)`, `use math (..)` or `use math as m`
type UseDecl struct {
	Module   SpannedName
	Items    []UseItem
	Wildcard bool
	Alias    *SpannedName
	Loc      Span
}

// Item is the base for all module-level declarations.
type Item interface {
	// Name of the syntax-type of the item.
	ItemName() string
	Span() Span
}

// DomainMember is the base for declarations which may occur within a domain.
type DomainMember interface {
	Item
	domainMember()
}

var (
	_ Item = (*Def)(nil)
	_ Item = (*TypeSig)(nil)
	_ Item = (*TypeDecl)(nil)
	_ Item = (*TypeAlias)(nil)
	_ Item = (*DomainDecl)(nil)
	_ Item = (*MachineDecl)(nil)
	_ Item = (*ClassDecl)(nil)
	_ Item = (*InstanceDecl)(nil)

	_ DomainMember = (*Def)(nil)
	_ DomainMember = (*TypeSig)(nil)
	_ DomainMember = (*TypeDecl)(nil)
	_ DomainMember = (*TypeAlias)(nil)
)

// Definition: `add x y = x + y`
type Def struct {
	Name   SpannedName
	Params []Pattern
	Expr   Expr
	Loc    Span
}

// Type signature: `add : Int -> Int -> Int`
type TypeSig struct {
	Name SpannedName
	Type TypeExpr
	Loc  Span
}

// Algebraic data type: `Option A = None | Some A`
type TypeDecl struct {
	Name         SpannedName
	Params       []SpannedName
	Constructors []TypeCtor
	Loc          Span
}

// Constructor of an algebraic data type.
type TypeCtor struct {
	Name SpannedName
	Args []TypeExpr
	Loc  Span
}

// Transparent type alias: `Point = { x: Int, y: Int }`
//
// An alias of a branded type (`Email = Text!`) declares a nominal type instead.
type TypeAlias struct {
	Name    SpannedName
	Params  []SpannedName
	Aliased TypeExpr
	Loc     Span
}

// Domain: a bundle of operators and functions over a carrier type.
//
//	domain Vector over Vec = { (+) : Vec -> Vec -> Vec ... }
type DomainDecl struct {
	Name  SpannedName
	Over  TypeExpr
	Items []DomainMember
	Loc   Span
}

// State machine declaration.
type MachineDecl struct {
	Name        SpannedName
	States      []SpannedName
	Transitions []MachineTransition
	Loc         Span
}

// Class: member signatures over type parameters.
//
//	class Show A = { show : A -> Text }
type ClassDecl struct {
	Name    SpannedName
	Params  []SpannedName
	Members []*TypeSig
	Loc     Span
}

// Instance of a class for specific types: `instance Show Int = { show x = "int" }`
type InstanceDecl struct {
	Class SpannedName
	Args  []TypeExpr
	Defs  []*Def
	Loc   Span
}

// Transition between machine states.
type MachineTransition struct {
	Name SpannedName
	From SpannedName
	To   SpannedName
	Loc  Span
}

func (i *Def) ItemName() string          { return "Def" }
func (i *TypeSig) ItemName() string      { return "TypeSig" }
func (i *TypeDecl) ItemName() string     { return "TypeDecl" }
func (i *TypeAlias) ItemName() string    { return "TypeAlias" }
func (i *DomainDecl) ItemName() string   { return "DomainDecl" }
func (i *MachineDecl) ItemName() string  { return "MachineDecl" }
func (i *ClassDecl) ItemName() string    { return "ClassDecl" }
func (i *InstanceDecl) ItemName() string { return "InstanceDecl" }

func (i *Def) Span() Span          { return i.Loc }
func (i *TypeSig) Span() Span      { return i.Loc }
func (i *TypeDecl) Span() Span     { return i.Loc }
func (i *TypeAlias) Span() Span    { return i.Loc }
func (i *DomainDecl) Span() Span   { return i.Loc }
func (i *MachineDecl) Span() Span  { return i.Loc }
func (i *ClassDecl) Span() Span    { return i.Loc }
func (i *InstanceDecl) Span() Span { return i.Loc }

func (i *Def) domainMember()       {}
func (i *TypeSig) domainMember()   {}
func (i *TypeDecl) domainMember()  {}
func (i *TypeAlias) domainMember() {}
