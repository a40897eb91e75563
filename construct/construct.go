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

package construct

import (
	"github.com/wdamron/typecore/ast"
	"github.com/wdamron/typecore/types"
)

// Types

// Create a type-variable with the given id.
func TVar(id types.VarID) *types.Var { return types.NewVar(id) }

// Named type constructor: `Int` or `List Int`
func TCon(name string, args ...types.Type) *types.Con { return types.NewCon(name, args...) }

// Type application with a non-constructor head: `f a`
func TApp(base types.Type, args ...types.Type) *types.App {
	return &types.App{Base: base, Args: args}
}

// Curried function type. The last type is the result: `TFunc(a, b, c)` is `a -> b -> c`
func TFunc(ts ...types.Type) types.Type {
	if len(ts) == 0 {
		panic("construct.TFunc: missing result type")
	}
	return types.NewFunc(ts[:len(ts)-1], ts[len(ts)-1])
}

// Function type: `a -> b`
func TFunc1(param, result types.Type) *types.Func {
	return &types.Func{Param: param, Result: result}
}

// Tuple type: `(a, b)`
func TTuple(items ...types.Type) *types.Tuple { return &types.Tuple{Items: items} }

// Closed record type: `{ a: Int }`
func TRecord(fields map[string]types.Type) *types.Record { return types.NewRecord(fields, false) }

// Open record type: `{ a: Int, .. }`
func TOpenRecord(fields map[string]types.Type) *types.Record { return types.NewRecord(fields, true) }

// Type-scheme quantifying the given type-variables.
func Forall(t types.Type, vars ...*types.Var) types.Scheme {
	ids := make([]types.VarID, len(vars))
	for i, v := range vars {
		ids[i] = v.ID
	}
	return types.Poly(ids, t)
}

// Type expressions

// Named type expression: `Int` or `A`
func TEName(name string) *ast.TypeName { return &ast.TypeName{Name: name} }

// Type application expression: `List Int`
func TEApply(base ast.TypeExpr, args ...ast.TypeExpr) *ast.TypeApply {
	return &ast.TypeApply{Base: base, Args: args}
}

// Function type expression. The last expression is the result.
func TEFunc(ts ...ast.TypeExpr) *ast.TypeFunc {
	if len(ts) == 0 {
		panic("construct.TEFunc: missing result type")
	}
	return &ast.TypeFunc{Params: ts[:len(ts)-1], Result: ts[len(ts)-1]}
}

// Record type expression: `{ a: Int }`
func TERecord(fields ...ast.TypeField) *ast.TypeRecord { return &ast.TypeRecord{Fields: fields} }

// Field of a record type expression.
func TEField(name string, t ast.TypeExpr) ast.TypeField {
	return ast.TypeField{Name: ast.SpannedName{Name: name}, Type: t}
}

// Tuple type expression: `(Int, Text)`
func TETuple(items ...ast.TypeExpr) *ast.TypeTuple { return &ast.TypeTuple{Items: items} }

// Branded type expression: `Text!`
func TEBranded(inner ast.TypeExpr) *ast.TypeBranded { return &ast.TypeBranded{Inner: inner} }

// Expressions

// Identifier: `x`
func Ident(name string) *ast.Ident { return &ast.Ident{Name: name} }

// Number literal: `1` or `1.5`
func Number(syntax string) *ast.Literal {
	return &ast.Literal{Kind: ast.NumberLiteral, Syntax: syntax}
}

// Text literal: `"a"`
func Text(s string) *ast.Literal { return &ast.Literal{Kind: ast.TextLiteral, Syntax: s} }

// Bool literal: `True` or `False`
func Bool(b bool) *ast.Literal {
	if b {
		return &ast.Literal{Kind: ast.BoolLiteral, Syntax: "True"}
	}
	return &ast.Literal{Kind: ast.BoolLiteral, Syntax: "False"}
}

// List literal: `[a, b]`
func List(items ...ast.Expr) *ast.List { return &ast.List{Items: items} }

// Tuple literal: `(a, b)`
func Tuple(items ...ast.Expr) *ast.Tuple { return &ast.Tuple{Items: items} }

// Record literal: `{ a: 1 }`
func Record(fields ...ast.RecordField) *ast.Record { return &ast.Record{Fields: fields} }

// Field of a record literal.
func Field(name string, value ast.Expr) ast.RecordField {
	return ast.RecordField{Name: ast.SpannedName{Name: name}, Value: value}
}

// Spread field of a record literal: `...base`
func Spread(value ast.Expr) ast.RecordField { return ast.RecordField{Value: value, Spread: true} }

// Field selection: `r.a`
func Select(base ast.Expr, field string) *ast.FieldAccess {
	return &ast.FieldAccess{Base: base, Field: ast.SpannedName{Name: field}}
}

// Application: `f x y`
func Call(fn ast.Expr, args ...ast.Expr) *ast.Call { return &ast.Call{Func: fn, Args: args} }

// Abstraction binding each parameter name: `x y => body`
func Func(params []string, body ast.Expr) *ast.Lambda {
	patterns := make([]ast.Pattern, len(params))
	for i, name := range params {
		patterns[i] = PVar(name)
	}
	return &ast.Lambda{Params: patterns, Body: body}
}

// Abstraction of one parameter: `x => body`
func Func1(param string, body ast.Expr) *ast.Lambda { return Func([]string{param}, body) }

// Abstraction with pattern parameters.
func Lambda(params []ast.Pattern, body ast.Expr) *ast.Lambda {
	return &ast.Lambda{Params: params, Body: body}
}

// Pattern match. A nil scrutinee creates a function of one argument.
func Match(scrutinee ast.Expr, arms ...ast.MatchArm) *ast.Match {
	return &ast.Match{Scrutinee: scrutinee, Arms: arms}
}

// Arm of a pattern match.
func Arm(pattern ast.Pattern, body ast.Expr) ast.MatchArm {
	return ast.MatchArm{Pattern: pattern, Body: body}
}

// Guarded arm of a pattern match.
func GuardedArm(pattern ast.Pattern, guard, body ast.Expr) ast.MatchArm {
	return ast.MatchArm{Pattern: pattern, Guard: guard, Body: body}
}

// Conditional: `if c then a else b`
func If(cond, then, els ast.Expr) *ast.If { return &ast.If{Cond: cond, Then: then, Else: els} }

// Binary operator: `a + b`
func Binary(op string, left, right ast.Expr) *ast.Binary {
	return &ast.Binary{Op: op, Left: left, Right: right}
}

// Block of bindings and expressions.
func Block(items ...ast.BlockItem) *ast.Block { return &ast.Block{Items: items} }

// Binding within a block: `x = e`
func Let(name string, value ast.Expr) ast.BlockItem {
	return ast.BlockItem{Kind: ast.LetItem, Pattern: PVar(name), Expr: value}
}

// Pattern binding within a block: `(a, b) = e`
func LetPattern(pattern ast.Pattern, value ast.Expr) ast.BlockItem {
	return ast.BlockItem{Kind: ast.LetItem, Pattern: pattern, Expr: value}
}

// Expression statement within a block.
func Do(expr ast.Expr) ast.BlockItem { return ast.BlockItem{Kind: ast.ExprItem, Expr: expr} }

// Patterns

// Wildcard pattern: `_`
func PWild() *ast.PWildcard { return &ast.PWildcard{} }

// Binding pattern: `x`
func PVar(name string) *ast.PIdent { return &ast.PIdent{Name: ast.SpannedName{Name: name}} }

// Literal pattern: `1`
func PLit(lit *ast.Literal) *ast.PLiteral { return &ast.PLiteral{Literal: lit} }

// Constructor pattern: `Some x`
func PCtor(name string, args ...ast.Pattern) *ast.PConstructor {
	return &ast.PConstructor{Name: ast.SpannedName{Name: name}, Args: args}
}

// Tuple pattern: `(a, b)`
func PTuple(items ...ast.Pattern) *ast.PTuple { return &ast.PTuple{Items: items} }

// Record pattern binding each field to its own name: `{ a, b }`
func PRecord(fields ...string) *ast.PRecord {
	out := make([]ast.PRecordField, len(fields))
	for i, name := range fields {
		out[i] = ast.PRecordField{Name: ast.SpannedName{Name: name}}
	}
	return &ast.PRecord{Fields: out}
}

// Module items

// Definition: `name params = expr`
func Def(name string, expr ast.Expr, params ...ast.Pattern) *ast.Def {
	return &ast.Def{Name: ast.SpannedName{Name: name}, Params: params, Expr: expr}
}

// Type signature: `name : t`
func Sig(name string, t ast.TypeExpr) *ast.TypeSig {
	return &ast.TypeSig{Name: ast.SpannedName{Name: name}, Type: t}
}

// Algebraic data type: `Name params = ctors`
func TypeDecl(name string, params []string, ctors ...ast.TypeCtor) *ast.TypeDecl {
	return &ast.TypeDecl{Name: ast.SpannedName{Name: name}, Params: names(params), Constructors: ctors}
}

// Constructor of an algebraic data type.
func Ctor(name string, args ...ast.TypeExpr) ast.TypeCtor {
	return ast.TypeCtor{Name: ast.SpannedName{Name: name}, Args: args}
}

// Type alias: `Name params = t`
func Alias(name string, params []string, t ast.TypeExpr) *ast.TypeAlias {
	return &ast.TypeAlias{Name: ast.SpannedName{Name: name}, Params: names(params), Aliased: t}
}

// Domain over a carrier type.
func Domain(name string, over ast.TypeExpr, members ...ast.DomainMember) *ast.DomainDecl {
	return &ast.DomainDecl{Name: ast.SpannedName{Name: name}, Over: over, Items: members}
}

// Class declaring member signatures over type parameters.
func Class(name string, params []string, members ...*ast.TypeSig) *ast.ClassDecl {
	return &ast.ClassDecl{Name: ast.SpannedName{Name: name}, Params: names(params), Members: members}
}

// Instance of a class for the given type arguments.
func Instance(class string, args []ast.TypeExpr, defs ...*ast.Def) *ast.InstanceDecl {
	return &ast.InstanceDecl{Class: ast.SpannedName{Name: class}, Args: args, Defs: defs}
}

// State machine declaration.
func Machine(name string, states []string, transitions ...ast.MachineTransition) *ast.MachineDecl {
	return &ast.MachineDecl{Name: ast.SpannedName{Name: name}, States: names(states), Transitions: transitions}
}

// Transition between machine states.
func Transition(name, from, to string) ast.MachineTransition {
	return ast.MachineTransition{
		Name: ast.SpannedName{Name: name},
		From: ast.SpannedName{Name: from},
		To:   ast.SpannedName{Name: to},
	}
}

// Modules

// Module containing the given items.
func Module(name string, items ...ast.Item) *ast.Module {
	return &ast.Module{Name: ast.SpannedName{Name: name}, Path: name + ".aivi", Items: items}
}

// Exported values.
func Export(values ...string) []ast.ExportItem {
	out := make([]ast.ExportItem, len(values))
	for i, name := range values {
		out[i] = ast.ExportItem{Kind: ast.ValueItem, Name: ast.SpannedName{Name: name}}
	}
	return out
}

// Exported domain.
func ExportDomain(name string) ast.ExportItem {
	return ast.ExportItem{Kind: ast.DomainItem, Name: ast.SpannedName{Name: name}}
}

// Qualified-only import: `use m`
func Use(module string) ast.UseDecl { return ast.UseDecl{Module: ast.SpannedName{Name: module}} }

// Wildcard import: `use m (..)`
func UseAll(module string) ast.UseDecl {
	u := Use(module)
	u.Wildcard = true
	return u
}

// Import of specific values: `use m (a, b)`
func UseItems(module string, values ...string) ast.UseDecl {
	u := Use(module)
	for _, name := range values {
		u.Items = append(u.Items, ast.UseItem{Kind: ast.ValueItem, Name: ast.SpannedName{Name: name}})
	}
	return u
}

// Import of a domain's members: `use m (domain D)`
func UseDomain(module, domain string) ast.UseDecl {
	u := Use(module)
	u.Items = []ast.UseItem{{Kind: ast.DomainItem, Name: ast.SpannedName{Name: domain}}}
	return u
}

// Aliased import: `use m as a`
func UseAs(module, alias string) ast.UseDecl {
	u := Use(module)
	u.Alias = &ast.SpannedName{Name: alias}
	return u
}

func names(ss []string) []ast.SpannedName {
	out := make([]ast.SpannedName, len(ss))
	for i, s := range ss {
		out[i] = ast.SpannedName{Name: s}
	}
	return out
}
