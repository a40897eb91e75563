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

package typecore

import (
	"strings"

	"github.com/wdamron/typecore/ast"
	"github.com/wdamron/typecore/types"
)

// Infer the type of an expression within a type-environment.
func (c *Checker) infer(expr ast.Expr, env *TypeEnv) (types.Type, error) {
	switch e := expr.(type) {
	case *ast.Ident:
		return c.inferIdent(e, env)

	case *ast.Literal:
		return literalType(e), nil

	case *ast.List:
		elem := c.ctx.Fresh()
		for _, item := range e.Items {
			if err := c.checkExpr(item, elem, env); err != nil {
				return nil, err
			}
		}
		return types.NewCon("List", elem), nil

	case *ast.Tuple:
		items := make([]types.Type, len(e.Items))
		for i, item := range e.Items {
			t, err := c.infer(item, env)
			if err != nil {
				return nil, err
			}
			items[i] = t
		}
		return &types.Tuple{Items: items}, nil

	case *ast.Record:
		return c.inferRecord(e, env)

	case *ast.FieldAccess:
		base, err := c.infer(e.Base, env)
		if err != nil {
			return nil, err
		}
		result := c.ctx.Fresh()
		field := &types.Record{Fields: types.SingletonFieldMap(e.Field.Name, result), Open: true}
		if err := c.unify(base, field, e.Loc); err != nil {
			return nil, err
		}
		return result, nil

	case *ast.Call:
		if id, ok := e.Func.(*ast.Ident); ok {
			if b, ok := env.Lookup(id.Name); ok && b.IsOverloaded() {
				args, err := c.inferAll(e.Args, env)
				if err != nil {
					return nil, err
				}
				return c.resolveOverload(id.Name, e.Loc, b.Candidates(), args, nil, false)
			}
		}
		fn, err := c.infer(e.Func, env)
		if err != nil {
			return nil, err
		}
		return c.applyArgs(fn, e.Args, env, e.Loc)

	case *ast.Lambda:
		scope := env.Child()
		params := make([]types.Type, len(e.Params))
		for i, p := range e.Params {
			t, err := c.inferPattern(p, scope)
			if err != nil {
				return nil, err
			}
			params[i] = t
		}
		body, err := c.infer(e.Body, scope)
		if err != nil {
			return nil, err
		}
		return types.NewFunc(params, body), nil

	case *ast.Match:
		result := c.ctx.Fresh()
		if e.Scrutinee == nil {
			param := c.ctx.Fresh()
			if err := c.checkMatch(e, env, param, result); err != nil {
				return nil, err
			}
			return &types.Func{Param: param, Result: result}, nil
		}
		scrutinee, err := c.infer(e.Scrutinee, env)
		if err != nil {
			return nil, err
		}
		if err := c.checkMatch(e, env, scrutinee, result); err != nil {
			return nil, err
		}
		return result, nil

	case *ast.If:
		if err := c.checkExpr(e.Cond, tBool, env); err != nil {
			return nil, err
		}
		t, err := c.infer(e.Then, env)
		if err != nil {
			return nil, err
		}
		if err := c.checkExpr(e.Else, t, env); err != nil {
			return nil, err
		}
		return t, nil

	case *ast.Binary:
		return c.inferBinary(e, env)

	case *ast.Block:
		return c.inferBlock(e, env, nil)
	}
	return nil, newTypeError(CodeTypeMismatch, expr.Span(), "unsupported expression "+expr.ExprName())
}

func (c *Checker) inferAll(exprs []ast.Expr, env *TypeEnv) ([]types.Type, error) {
	ts := make([]types.Type, len(exprs))
	for i, expr := range exprs {
		t, err := c.infer(expr, env)
		if err != nil {
			return nil, err
		}
		ts[i] = t
	}
	return ts, nil
}

func (c *Checker) inferIdent(e *ast.Ident, env *TypeEnv) (types.Type, error) {
	if e.Name == "_" {
		return c.ctx.Fresh(), nil
	}
	b, ok := env.Lookup(e.Name)
	if !ok {
		return nil, newTypeError(CodeUnknownName, e.Loc, "unknown name '"+e.Name+"'")
	}
	if s, ok := b.Scheme(); ok {
		return c.ctx.Instantiate(s), nil
	}
	candidates := c.dedupeSchemes(b.Candidates())
	if len(candidates) == 1 {
		return c.ctx.Instantiate(candidates[0]), nil
	}
	return nil, newTypeError(CodeAmbiguous, e.Loc,
		"ambiguous name '"+e.Name+"' (candidates: "+c.describeSchemes(candidates)+")")
}

// Number literals containing a decimal point or an exponent are floats.
func literalType(lit *ast.Literal) types.Type {
	switch lit.Kind {
	case ast.TextLiteral:
		return tText
	case ast.BoolLiteral:
		return tBool
	}
	s := lit.Syntax
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return tInt
	}
	if strings.ContainsAny(s, ".eE") {
		return tFloat
	}
	return tInt
}

func (c *Checker) inferRecord(e *ast.Record, env *TypeEnv) (types.Type, error) {
	b := types.NewFieldMapBuilder()
	for _, field := range e.Fields {
		t, err := c.infer(field.Value, env)
		if err != nil {
			return nil, err
		}
		if !field.Spread {
			b.Set(field.Name.Name, t)
			continue
		}
		rec, ok := c.ctx.Resolve(t).(*types.Record)
		if !ok {
			return nil, newTypeError(CodeTypeMismatch, field.Value.Span(),
				"cannot spread a value of type "+c.ctx.TypeStrings(t)[0]+" into a record")
		}
		rec.Fields.Range(func(label string, ft types.Type) bool {
			b.Set(label, ft)
			return true
		})
	}
	return &types.Record{Fields: b.Build()}, nil
}

// Apply a function type to argument expressions. Arguments are checked against known
// parameter types, so mismatches are reported at the argument.
func (c *Checker) applyArgs(fn types.Type, args []ast.Expr, env *TypeEnv, span ast.Span) (types.Type, error) {
	for _, arg := range args {
		if f, ok := c.ctx.Resolve(fn).(*types.Func); ok {
			if err := c.checkExpr(arg, f.Param, env); err != nil {
				return nil, err
			}
			fn = f.Result
			continue
		}
		argType, err := c.infer(arg, env)
		if err != nil {
			return nil, err
		}
		result := c.ctx.Fresh()
		if err := c.unify(fn, &types.Func{Param: argType, Result: result}, span); err != nil {
			return nil, err
		}
		fn = result
	}
	return fn, nil
}

// Infer a block. Bindings are let-generalized and visible to later items; the block's type
// is the type of its final expression statement, or Unit. When expected is not nil, the final
// expression is checked against it.
func (c *Checker) inferBlock(e *ast.Block, env *TypeEnv, expected types.Type) (types.Type, error) {
	scope := env
	var last types.Type = tUnit
	for i, item := range e.Items {
		final := i == len(e.Items)-1
		if item.Kind == ast.ExprItem {
			if final && expected != nil {
				if err := c.checkExpr(item.Expr, expected, scope); err != nil {
					return nil, err
				}
				return expected, nil
			}
			t, err := c.infer(item.Expr, scope)
			if err != nil {
				return nil, err
			}
			last = t
			continue
		}

		t, err := c.infer(item.Expr, scope)
		if err != nil {
			return nil, err
		}
		inner := scope.Child()
		if id, ok := item.Pattern.(*ast.PIdent); ok {
			inner.Insert(id.Name.Name, c.ctx.Generalize(t, scope.FreeVars(&c.ctx, "")))
		} else {
			pt, err := c.inferPattern(item.Pattern, inner)
			if err != nil {
				return nil, err
			}
			if err := c.unify(t, pt, item.Expr.Span()); err != nil {
				return nil, err
			}
		}
		scope = inner
		last = tUnit
	}
	if expected != nil {
		if err := c.unify(last, expected, e.Loc); err != nil {
			return nil, err
		}
	}
	return last, nil
}

var (
	arithmeticOps = map[string]bool{"+": true, "-": true, "*": true, "/": true, "%": true}
	comparisonOps = map[string]bool{"<": true, ">": true, "<=": true, ">=": true}
)

func (c *Checker) inferBinary(e *ast.Binary, env *TypeEnv) (types.Type, error) {
	switch e.Op {
	case "&&", "||":
		if err := c.checkExpr(e.Left, tBool, env); err != nil {
			return nil, err
		}
		if err := c.checkExpr(e.Right, tBool, env); err != nil {
			return nil, err
		}
		return tBool, nil

	case "==", "!=":
		left, err := c.infer(e.Left, env)
		if err != nil {
			return nil, err
		}
		if err := c.checkExpr(e.Right, left, env); err != nil {
			return nil, err
		}
		return tBool, nil

	case "|>":
		return c.inferPipe(e, env)
	}

	left, err := c.infer(e.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := c.infer(e.Right, env)
	if err != nil {
		return nil, err
	}
	result := func(operand types.Type) types.Type {
		if comparisonOps[e.Op] {
			return tBool
		}
		return operand
	}

	l, r := c.ctx.Resolve(left), c.ctx.Resolve(right)
	if builtinOperands(e.Op, l, r) {
		if err := c.unify(right, left, e.Right.Span()); err != nil {
			return nil, err
		}
		return result(left), nil
	}
	opName := "(" + e.Op + ")"
	if b, ok := env.Lookup(opName); ok {
		return c.resolveOverload(opName, e.Loc, b.Candidates(), []types.Type{left, right}, nil, true)
	}
	_, lvar := l.(*types.Var)
	_, rvar := r.(*types.Var)
	if lvar && rvar {
		if err := c.unify(right, left, e.Right.Span()); err != nil {
			return nil, err
		}
		return result(left), nil
	}
	return nil, c.noOperator(e.Op, e.Loc, []types.Type{left, right})
}

// Check if the built-in numeric rules apply to an operator: arithmetic over Int or Float,
// and comparisons over Int, Float, Text or Char. A type-variable operand takes the type of
// the other operand.
func builtinOperands(op string, l, r types.Type) bool {
	var accepts func(types.Type) bool
	switch {
	case arithmeticOps[op]:
		accepts = isNumeric
	case comparisonOps[op]:
		accepts = isComparable
	default:
		return false
	}
	_, lvar := l.(*types.Var)
	_, rvar := r.(*types.Var)
	return (accepts(l) && (rvar || accepts(r))) || (lvar && accepts(r))
}

func isNumeric(t types.Type) bool {
	con, ok := t.(*types.Con)
	return ok && len(con.Args) == 0 && (con.Name == "Int" || con.Name == "Float")
}

func isComparable(t types.Type) bool {
	if isNumeric(t) {
		return true
	}
	con, ok := t.(*types.Con)
	return ok && len(con.Args) == 0 && (con.Name == "Text" || con.Name == "Char")
}

// `x |> f` applies f to x.
func (c *Checker) inferPipe(e *ast.Binary, env *TypeEnv) (types.Type, error) {
	arg, err := c.infer(e.Left, env)
	if err != nil {
		return nil, err
	}
	if id, ok := e.Right.(*ast.Ident); ok {
		if b, ok := env.Lookup(id.Name); ok && b.IsOverloaded() {
			return c.resolveOverload(id.Name, e.Loc, b.Candidates(), []types.Type{arg}, nil, false)
		}
	}
	fn, err := c.infer(e.Right, env)
	if err != nil {
		return nil, err
	}
	if f, ok := c.ctx.Resolve(fn).(*types.Func); ok {
		if err := c.unify(arg, f.Param, e.Left.Span()); err != nil {
			return nil, err
		}
		return f.Result, nil
	}
	result := c.ctx.Fresh()
	if err := c.unify(fn, &types.Func{Param: arg, Result: result}, e.Right.Span()); err != nil {
		return nil, err
	}
	return result, nil
}
