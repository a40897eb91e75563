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
	"strconv"

	"github.com/wdamron/typecore/ast"
	"github.com/wdamron/typecore/internal/typeutil"
	"github.com/wdamron/typecore/types"
)

// typeScope maps the type-variable names of a declaration to type-variables.
type typeScope map[string]types.Type

// Convert a type expression to a type, reporting kind errors. The returned kind is nil when
// the kind of the type is unknown, as for type-variables.
//
// Names which are neither in scope nor known type constructors are type-variables; a new
// type-variable is added to the scope for each. Record types directly in parameter position
// are open.
func (c *Checker) typeFromExpr(te ast.TypeExpr, scope typeScope, param bool) (types.Type, types.Kind) {
	switch te := te.(type) {
	case *ast.TypeName:
		if t, ok := scope[te.Name]; ok {
			return t, nil
		}
		if k, ok := c.kinds[te.Name]; ok {
			return types.NewCon(te.Name), k
		}
		tv := c.ctx.VarTracker.NewNamed(te.Name)
		scope[te.Name] = tv
		return tv, nil

	case *ast.TypeApply:
		base, kind := c.typeFromExpr(te.Base, scope, false)
		args := make([]types.Type, len(te.Args))
		for i, argExpr := range te.Args {
			arg, argKind := c.typeFromExpr(argExpr, scope, false)
			args[i] = arg
			if argKind != nil && !types.KindsEqual(argKind, types.Star) {
				c.errorAt(CodeKindMismatch, argExpr.Span(),
					"kind mismatch in type application: `"+ast.TypeExprString(argExpr)+"` has kind "+
						argKind.String()+", expected *")
			}
			if kind == nil {
				continue
			}
			arrow, ok := kind.(*types.KindArrow)
			if !ok {
				c.errorAt(CodeKindMismatch, te.Loc,
					"kind mismatch in type application: `"+ast.TypeExprString(te.Base)+"` of kind "+
						kindOf(c, te.Base).String()+" cannot be applied to "+plural(len(te.Args), "argument"))
				kind = nil
				continue
			}
			kind = arrow.Result
		}
		return types.Apply(base, args), kind

	case *ast.TypeFunc:
		params := make([]types.Type, len(te.Params))
		for i, p := range te.Params {
			t, k := c.typeFromExpr(p, scope, true)
			c.expectStar(p, k)
			params[i] = t
		}
		result, k := c.typeFromExpr(te.Result, scope, false)
		c.expectStar(te.Result, k)
		return types.NewFunc(params, result), types.Star

	case *ast.TypeRecord:
		b := types.NewFieldMapBuilder()
		for _, field := range te.Fields {
			t, k := c.typeFromExpr(field.Type, scope, false)
			c.expectStar(field.Type, k)
			b.Set(field.Name.Name, t)
		}
		return &types.Record{Fields: b.Build(), Open: param}, types.Star

	case *ast.TypeTuple:
		items := make([]types.Type, len(te.Items))
		for i, item := range te.Items {
			t, k := c.typeFromExpr(item, scope, false)
			c.expectStar(item, k)
			items[i] = t
		}
		return &types.Tuple{Items: items}, types.Star

	case *ast.TypeBranded:
		return c.typeFromExpr(te.Inner, scope, param)
	}
	return c.ctx.Fresh(), nil
}

func kindOf(c *Checker, te ast.TypeExpr) types.Kind {
	if name, ok := te.(*ast.TypeName); ok {
		if k, ok := c.kinds[name.Name]; ok {
			return k
		}
	}
	return types.Star
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}

// Report a kind error if a type expression of known kind is not a concrete type.
func (c *Checker) expectStar(te ast.TypeExpr, k types.Kind) {
	if k != nil && !types.KindsEqual(k, types.Star) {
		c.errorAt(CodeKindMismatch, te.Span(),
			"kind mismatch: `"+ast.TypeExprString(te)+"` has kind "+k.String()+", expected *")
	}
}

// Convert a signature's type expression to a scheme quantifying every type-variable it
// mentions.
func (c *Checker) schemeFromExpr(te ast.TypeExpr) types.Scheme {
	t, k := c.typeFromExpr(te, make(typeScope), false)
	c.expectStar(te, k)
	return types.Poly(typeutil.FreeVars(t), t)
}
