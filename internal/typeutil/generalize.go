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

// Generalize a type with respect to the free type-variables of an environment. Every free
// type-variable of the (substituted) type which is not free in the environment is
// quantified, in order of first occurrence.
func (ctx *Context) Generalize(t types.Type, envFree *set.Set[types.VarID]) types.Scheme {
	t = ctx.Apply(t)
	free := FreeVars(t)
	vars := free[:0]
	for _, id := range free {
		if envFree == nil || !envFree.Contains(id) {
			vars = append(vars, id)
		}
	}
	if len(vars) == 0 {
		return types.Mono(t)
	}
	return types.Poly(vars, t)
}

// Get the free type-variables of a type after applying the substitution, in order of first
// occurrence and without duplicates.
func (ctx *Context) FreeVars(t types.Type) []types.VarID { return FreeVars(ctx.Apply(t)) }

// Get the free type-variables of a scheme after applying the substitution, excluding the
// variables it quantifies.
func (ctx *Context) SchemeFreeVars(s types.Scheme) []types.VarID {
	free := ctx.FreeVars(s.Type)
	if len(s.Vars) == 0 {
		return free
	}
	out := free[:0]
	for _, id := range free {
		if !s.Quantifies(id) {
			out = append(out, id)
		}
	}
	return out
}

// Get the type-variables occurring within a type, in order of first occurrence and without
// duplicates. No substitution is applied.
func FreeVars(t types.Type) []types.VarID {
	seen := set.New[types.VarID](8)
	var out []types.VarID
	collectFreeVars(t, seen, &out)
	return out
}

func collectFreeVars(t types.Type, seen *set.Set[types.VarID], out *[]types.VarID) {
	switch t := t.(type) {
	case *types.Var:
		if seen.Insert(t.ID) {
			*out = append(*out, t.ID)
		}
	case *types.Con:
		for _, arg := range t.Args {
			collectFreeVars(arg, seen, out)
		}
	case *types.App:
		collectFreeVars(t.Base, seen, out)
		for _, arg := range t.Args {
			collectFreeVars(arg, seen, out)
		}
	case *types.Func:
		collectFreeVars(t.Param, seen, out)
		collectFreeVars(t.Result, seen, out)
	case *types.Tuple:
		for _, item := range t.Items {
			collectFreeVars(item, seen, out)
		}
	case *types.Record:
		t.Fields.Range(func(_ string, ft types.Type) bool {
			collectFreeVars(ft, seen, out)
			return true
		})
	}
}
