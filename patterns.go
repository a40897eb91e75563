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

// Infer the type of a pattern. Names bound by the pattern are inserted into scope with
// monomorphic types.
func (c *Checker) inferPattern(p ast.Pattern, scope *TypeEnv) (types.Type, error) {
	switch p := p.(type) {
	case *ast.PWildcard:
		return c.ctx.Fresh(), nil

	case *ast.PIdent:
		tv := c.ctx.Fresh()
		scope.Insert(p.Name.Name, types.Mono(tv))
		return tv, nil

	case *ast.PLiteral:
		return literalType(p.Literal), nil

	case *ast.PConstructor:
		return c.inferConstructorPattern(p, scope)

	case *ast.PTuple:
		items := make([]types.Type, len(p.Items))
		for i, item := range p.Items {
			t, err := c.inferPattern(item, scope)
			if err != nil {
				return nil, err
			}
			items[i] = t
		}
		return &types.Tuple{Items: items}, nil

	case *ast.PRecord:
		b := types.NewFieldMapBuilder()
		for _, field := range p.Fields {
			if field.Pattern == nil {
				tv := c.ctx.Fresh()
				scope.Insert(field.Name.Name, types.Mono(tv))
				b.Set(field.Name.Name, tv)
				continue
			}
			t, err := c.inferPattern(field.Pattern, scope)
			if err != nil {
				return nil, err
			}
			b.Set(field.Name.Name, t)
		}
		return &types.Record{Fields: b.Build(), Open: true}, nil
	}
	return nil, newTypeError(CodeTypeMismatch, p.Span(), "unsupported pattern "+p.PatternName())
}

func (c *Checker) inferConstructorPattern(p *ast.PConstructor, scope *TypeEnv) (types.Type, error) {
	name := p.Name.Name
	b, ok := scope.Lookup(name)
	if !ok {
		return nil, newTypeError(CodeUnknownName, p.Name.Loc, "unknown constructor '"+name+"'")
	}
	s, ok := b.Scheme()
	if !ok {
		candidates := c.dedupeSchemes(b.Candidates())
		if len(candidates) != 1 {
			return nil, newTypeError(CodeAmbiguous, p.Name.Loc,
				"ambiguous constructor '"+name+"' (candidates: "+c.describeSchemes(candidates)+")")
		}
		s = candidates[0]
	}

	t := c.ctx.Instantiate(s)
	params, result := types.FlattenFunc(c.ctx.Resolve(t))
	if len(params) != len(p.Args) {
		if _, ok := result.(*types.Var); !ok || len(p.Args) < len(params) {
			return nil, newTypeError(CodeConstructorArity, p.Loc,
				"constructor '"+name+"' expects "+plural(len(params), "argument")+", found "+
					plural(len(p.Args), "argument"))
		}
	}
	for _, arg := range p.Args {
		at, err := c.inferPattern(arg, scope)
		if err != nil {
			return nil, err
		}
		if f, ok := c.ctx.Resolve(t).(*types.Func); ok {
			if err := c.unify(at, f.Param, arg.Span()); err != nil {
				return nil, err
			}
			t = f.Result
			continue
		}
		rest := c.ctx.Fresh()
		if err := c.unify(t, &types.Func{Param: at, Result: rest}, arg.Span()); err != nil {
			return nil, err
		}
		t = rest
	}
	return t, nil
}
