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
	"github.com/wdamron/typecore/ast"
	"github.com/wdamron/typecore/types"
)

// Check an expression against an expected type.
//
// Expected types are pushed into record literals, lambdas, conditionals, matches, lists,
// tuples, blocks and overloaded names, so mismatches are reported at the innermost
// sub-expression which disagrees with the expected type.
func (c *Checker) checkExpr(expr ast.Expr, expected types.Type, env *TypeEnv) error {
	switch e := expr.(type) {
	case *ast.Record:
		rec, ok := c.ctx.Resolve(expected).(*types.Record)
		if !ok || hasSpread(e) {
			break
		}
		b := types.NewFieldMapBuilder()
		for _, field := range e.Fields {
			if ft, ok := rec.Fields.Get(field.Name.Name); ok {
				if err := c.checkExpr(field.Value, ft, env); err != nil {
					return err
				}
				b.Set(field.Name.Name, ft)
				continue
			}
			t, err := c.infer(field.Value, env)
			if err != nil {
				return err
			}
			b.Set(field.Name.Name, t)
		}
		return c.unify(&types.Record{Fields: b.Build()}, expected, e.Loc)

	case *ast.Lambda:
		params := make([]types.Type, 0, len(e.Params))
		result := expected
		for range e.Params {
			f, ok := c.ctx.Resolve(result).(*types.Func)
			if !ok {
				break
			}
			params = append(params, f.Param)
			result = f.Result
		}
		if len(params) < len(e.Params) {
			break
		}
		scope := env.Child()
		for i, p := range e.Params {
			t, err := c.inferPattern(p, scope)
			if err != nil {
				return err
			}
			if err := c.unify(t, params[i], p.Span()); err != nil {
				return err
			}
		}
		return c.checkExpr(e.Body, result, scope)

	case *ast.If:
		if err := c.checkExpr(e.Cond, tBool, env); err != nil {
			return err
		}
		if err := c.checkExpr(e.Then, expected, env); err != nil {
			return err
		}
		return c.checkExpr(e.Else, expected, env)

	case *ast.Match:
		if e.Scrutinee == nil {
			f, ok := c.ctx.Resolve(expected).(*types.Func)
			if !ok {
				break
			}
			return c.checkMatch(e, env, f.Param, f.Result)
		}
		scrutinee, err := c.infer(e.Scrutinee, env)
		if err != nil {
			return err
		}
		return c.checkMatch(e, env, scrutinee, expected)

	case *ast.List:
		list, ok := c.ctx.Resolve(expected).(*types.Con)
		if !ok || list.Name != "List" || len(list.Args) != 1 {
			break
		}
		for _, item := range e.Items {
			if err := c.checkExpr(item, list.Args[0], env); err != nil {
				return err
			}
		}
		return nil

	case *ast.Tuple:
		tuple, ok := c.ctx.Resolve(expected).(*types.Tuple)
		if !ok || len(tuple.Items) != len(e.Items) {
			break
		}
		for i, item := range e.Items {
			if err := c.checkExpr(item, tuple.Items[i], env); err != nil {
				return err
			}
		}
		return nil

	case *ast.Block:
		_, err := c.inferBlock(e, env, expected)
		return err

	case *ast.Ident:
		if b, ok := env.Lookup(e.Name); ok && b.IsOverloaded() {
			_, err := c.resolveOverload(e.Name, e.Loc, b.Candidates(), nil, expected, false)
			return err
		}

	case *ast.Call:
		id, ok := e.Func.(*ast.Ident)
		if !ok {
			break
		}
		if b, ok := env.Lookup(id.Name); ok && b.IsOverloaded() {
			args, err := c.inferAll(e.Args, env)
			if err != nil {
				return err
			}
			_, err = c.resolveOverload(id.Name, e.Loc, b.Candidates(), args, expected, false)
			return err
		}
	}

	t, err := c.infer(expr, env)
	if err != nil {
		return err
	}
	return c.unify(t, expected, expr.Span())
}

func hasSpread(e *ast.Record) bool {
	for _, field := range e.Fields {
		if field.Spread {
			return true
		}
	}
	return false
}

// Check the arms of a match against the scrutinee's type and the result type, then check
// the arms' coverage of the scrutinee.
func (c *Checker) checkMatch(e *ast.Match, env *TypeEnv, scrutinee, result types.Type) error {
	for _, arm := range e.Arms {
		scope := env.Child()
		t, err := c.inferPattern(arm.Pattern, scope)
		if err != nil {
			return err
		}
		if err := c.unify(t, scrutinee, arm.Pattern.Span()); err != nil {
			return err
		}
		if arm.Guard != nil {
			if err := c.checkExpr(arm.Guard, tBool, scope); err != nil {
				return err
			}
		}
		if err := c.checkExpr(arm.Body, result, scope); err != nil {
			return err
		}
	}
	return c.checkMatchArms(e, scrutinee)
}
