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

package typeutil

import (
	"github.com/hashicorp/go-set/v2"

	"github.com/wdamron/typecore/types"
)

// Unify a found type with an expected type, extending the substitution so both become
// equal. Both types have the substitution applied and alias applications at their top
// unfolded before they are compared.
//
// A named constructor unifies with an application of fewer arguments by splitting the
// constructor's arguments: `f a` unifies with `Result E A` by binding f to `Result E`.
//
// Open records accept fields they do not list; closed records accept only the fields they
// list.
//
// A pair of alias applications met again while it is still being unified is assumed to
// unify, so recursive aliases such as `Stream = { head: Int, tail: Stream }` terminate.
func (ctx *Context) Unify(found, expected types.Type) error {
	found, expected = ctx.Apply(found), ctx.Apply(expected)
	if ctx.Aliases.isApplied(found) || ctx.Aliases.isApplied(expected) {
		key := aliasPairKey(found, expected)
		if ctx.assumed == nil {
			ctx.assumed = set.New[string](8)
		}
		if ctx.assumed.Contains(key) {
			return nil
		}
		if ctx.assumed.Size() >= maxAliasNesting {
			return &UnifyError{Kind: Mismatch, Expected: expected, Found: found, Detail: "type alias nesting is too deep"}
		}
		ctx.assumed.Insert(key)
		defer ctx.assumed.Remove(key)
	}
	found, expected = ctx.Apply(ctx.Aliases.Unfold(found)), ctx.Apply(ctx.Aliases.Unfold(expected))

	fvar, _ := found.(*types.Var)
	evar, _ := expected.(*types.Var)
	switch {
	case fvar != nil && evar != nil && fvar.ID == evar.ID:
		return nil
	case fvar != nil:
		return ctx.bindVar(fvar.ID, expected, true)
	case evar != nil:
		return ctx.bindVar(evar.ID, found, false)
	}

	switch f := found.(type) {
	case *types.Con:
		switch e := expected.(type) {
		case *types.Con:
			if f.Name != e.Name || len(f.Args) != len(e.Args) {
				return mismatch(expected, found)
			}
			return ctx.unifyLists(f.Args, e.Args)
		case *types.App:
			return ctx.unifyAppCon(e, f, false)
		}

	case *types.App:
		switch e := expected.(type) {
		case *types.App:
			if len(f.Args) != len(e.Args) {
				return mismatch(expected, found)
			}
			if err := ctx.Unify(f.Base, e.Base); err != nil {
				return err
			}
			return ctx.unifyLists(f.Args, e.Args)
		case *types.Con:
			return ctx.unifyAppCon(f, e, true)
		}

	case *types.Func:
		if e, ok := expected.(*types.Func); ok {
			if err := ctx.Unify(f.Param, e.Param); err != nil {
				return err
			}
			return ctx.Unify(f.Result, e.Result)
		}

	case *types.Tuple:
		if e, ok := expected.(*types.Tuple); ok {
			if len(f.Items) != len(e.Items) {
				return &UnifyError{Kind: Mismatch, Expected: expected, Found: found, Detail: "tuple length mismatch"}
			}
			return ctx.unifyLists(f.Items, e.Items)
		}

	case *types.Record:
		if e, ok := expected.(*types.Record); ok {
			return ctx.unifyRecords(f, e)
		}
	}

	return mismatch(expected, found)
}

func (ctx *Context) unifyLists(found, expected []types.Type) error {
	for i := range found {
		if err := ctx.Unify(found[i], expected[i]); err != nil {
			return err
		}
	}
	return nil
}

// Unify an application with a named constructor carrying at least as many arguments. The
// constructor is split into a prefix, unified with the application's base, and a suffix,
// unified pairwise with the application's arguments.
func (ctx *Context) unifyAppCon(app *types.App, con *types.Con, appIsFound bool) error {
	if len(con.Args) < len(app.Args) {
		if appIsFound {
			return mismatch(con, app)
		}
		return mismatch(app, con)
	}
	split := len(con.Args) - len(app.Args)
	prefix := &types.Con{Name: con.Name}
	if split > 0 {
		prefix.Args = con.Args[:split:split]
	}
	suffix := con.Args[split:]
	if appIsFound {
		if err := ctx.Unify(app.Base, prefix); err != nil {
			return err
		}
		return ctx.unifyLists(app.Args, suffix)
	}
	if err := ctx.Unify(prefix, app.Base); err != nil {
		return err
	}
	return ctx.unifyLists(suffix, app.Args)
}

// Unify the fields of two records. Labels are visited in sorted order, so the first missing
// label is reported deterministically.
func (ctx *Context) unifyRecords(found, expected *types.Record) error {
	fl, el := found.Fields.Labels(), expected.Fields.Labels()
	i, j := 0, 0
	for i < len(fl) || j < len(el) {
		switch {
		case j >= len(el) || (i < len(fl) && fl[i] < el[j]):
			// only in found
			if !expected.Open {
				return &UnifyError{Kind: MissingField, Field: fl[i], Expected: expected, Found: found}
			}
			i++
		case i >= len(fl) || el[j] < fl[i]:
			// only in expected
			if !found.Open {
				return &UnifyError{Kind: MissingField, Field: el[j], Expected: expected, Found: found}
			}
			j++
		default:
			ft, _ := found.Fields.Get(fl[i])
			et, _ := expected.Fields.Get(el[j])
			if err := ctx.Unify(ft, et); err != nil {
				return err
			}
			i, j = i+1, j+1
		}
	}
	return nil
}

func (ctx *Context) bindVar(id types.VarID, t types.Type, varIsFound bool) error {
	t = ctx.Apply(t)
	if tv, ok := t.(*types.Var); ok && tv.ID == id {
		return nil
	}
	if ctx.Occurs(id, t) {
		if varIsFound {
			return &UnifyError{Kind: OccursCheck, Expected: t, Found: types.NewVar(id)}
		}
		return &UnifyError{Kind: OccursCheck, Expected: types.NewVar(id), Found: t}
	}
	ctx.Subst.Bind(id, t)
	return nil
}

// Check if a type-variable occurs within a type, following bindings in the substitution.
// Cyclic bindings are visited at most once.
func (ctx *Context) Occurs(id types.VarID, t types.Type) bool {
	visiting := set.New[types.VarID](8)
	return ctx.occurs(id, t, visiting)
}

func (ctx *Context) occurs(id types.VarID, t types.Type, visiting *set.Set[types.VarID]) bool {
	switch t := t.(type) {
	case *types.Var:
		if t.ID == id {
			return true
		}
		next, ok := ctx.Subst.Lookup(t.ID)
		if !ok || !visiting.Insert(t.ID) {
			return false
		}
		return ctx.occurs(id, next, visiting)
	case *types.Con:
		for _, arg := range t.Args {
			if ctx.occurs(id, arg, visiting) {
				return true
			}
		}
	case *types.App:
		if ctx.occurs(id, t.Base, visiting) {
			return true
		}
		for _, arg := range t.Args {
			if ctx.occurs(id, arg, visiting) {
				return true
			}
		}
	case *types.Func:
		return ctx.occurs(id, t.Param, visiting) || ctx.occurs(id, t.Result, visiting)
	case *types.Tuple:
		for _, item := range t.Items {
			if ctx.occurs(id, item, visiting) {
				return true
			}
		}
	case *types.Record:
		found := false
		t.Fields.Range(func(_ string, ft types.Type) bool {
			found = ctx.occurs(id, ft, visiting)
			return !found
		})
		return found
	}
	return false
}
