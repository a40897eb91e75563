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
	"github.com/wdamron/typecore/types"
)

// Instantiate a type-scheme, replacing each quantified type-variable with a fresh
// type-variable. Free type-variables which are not quantified are left as-is. Debug names
// of quantified type-variables are copied to their replacements.
func (ctx *Context) Instantiate(s types.Scheme) types.Type {
	if len(s.Vars) == 0 {
		return s.Type
	}
	mapping := make(map[types.VarID]types.Type, len(s.Vars))
	for _, id := range s.Vars {
		name, _ := ctx.VarTracker.Name(id)
		mapping[id] = ctx.VarTracker.NewNamed(name)
	}
	return Substitute(s.Type, mapping)
}

// Replace type-variables within t according to mapping. No substitution is applied.
func Substitute(t types.Type, mapping map[types.VarID]types.Type) types.Type {
	if len(mapping) == 0 {
		return t
	}
	switch t := t.(type) {
	case *types.Var:
		if replacement, ok := mapping[t.ID]; ok {
			return replacement
		}
		return t
	case *types.Con:
		args, changed := substituteList(t.Args, mapping)
		if !changed {
			return t
		}
		return &types.Con{Name: t.Name, Args: args}
	case *types.App:
		base := Substitute(t.Base, mapping)
		args, changed := substituteList(t.Args, mapping)
		if !changed && base == t.Base {
			return t
		}
		return types.Apply(base, args)
	case *types.Func:
		param, result := Substitute(t.Param, mapping), Substitute(t.Result, mapping)
		if param == t.Param && result == t.Result {
			return t
		}
		return &types.Func{Param: param, Result: result}
	case *types.Tuple:
		items, changed := substituteList(t.Items, mapping)
		if !changed {
			return t
		}
		return &types.Tuple{Items: items}
	case *types.Record:
		fields := t.Fields.Map(func(ft types.Type) types.Type { return Substitute(ft, mapping) })
		if fields == t.Fields {
			return t
		}
		return &types.Record{Fields: fields, Open: t.Open}
	}
	return t
}

func substituteList(ts []types.Type, mapping map[types.VarID]types.Type) ([]types.Type, bool) {
	var out []types.Type
	for i, t := range ts {
		replaced := Substitute(t, mapping)
		if replaced != t && out == nil {
			out = make([]types.Type, len(ts))
			copy(out, ts[:i])
		}
		if out != nil {
			out[i] = replaced
		}
	}
	if out == nil {
		return ts, false
	}
	return out, true
}
