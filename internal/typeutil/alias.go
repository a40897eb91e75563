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
	"strconv"
	"strings"

	"github.com/hashicorp/go-set/v2"

	"github.com/wdamron/typecore/types"
)

// AliasTable maps alias names to their parameters and bodies.
type AliasTable map[string]types.AliasInfo

// Check if a name refers to an alias.
func (at AliasTable) IsAlias(name string) bool {
	_, ok := at[name]
	return ok
}

// Limit on alias applications being unified within each other. Aliases which grow their
// arguments on every unfolding (`T a = { next: T (List a) }`) would otherwise never repeat.
const maxAliasNesting = 512

// Check if t is an application of an alias to at least as many arguments as it has
// parameters.
func (at AliasTable) isApplied(t types.Type) bool {
	con, ok := t.(*types.Con)
	if !ok {
		return false
	}
	alias, ok := at[con.Name]
	return ok && len(con.Args) >= len(alias.Params)
}

// Key identifying an ordered pair of types. Type-variables are keyed by id.
func aliasPairKey(found, expected types.Type) string {
	var sb strings.Builder
	writeTypeKey(&sb, found)
	sb.WriteByte(0)
	writeTypeKey(&sb, expected)
	return sb.String()
}

func writeTypeKey(sb *strings.Builder, t types.Type) {
	switch t := t.(type) {
	case *types.Var:
		sb.WriteByte('\'')
		sb.WriteString(strconv.FormatUint(uint64(t.ID), 10))
	case *types.Con:
		sb.WriteString(t.Name)
		writeTypeKeys(sb, '[', t.Args, ']')
	case *types.App:
		sb.WriteByte('@')
		writeTypeKey(sb, t.Base)
		writeTypeKeys(sb, '[', t.Args, ']')
	case *types.Func:
		sb.WriteByte('(')
		writeTypeKey(sb, t.Param)
		sb.WriteString("->")
		writeTypeKey(sb, t.Result)
		sb.WriteByte(')')
	case *types.Tuple:
		writeTypeKeys(sb, '(', t.Items, ')')
	case *types.Record:
		sb.WriteByte('{')
		t.Fields.Range(func(label string, ft types.Type) bool {
			sb.WriteString(label)
			sb.WriteByte(':')
			writeTypeKey(sb, ft)
			sb.WriteByte(',')
			return true
		})
		if t.Open {
			sb.WriteString("..")
		}
		sb.WriteByte('}')
	}
}

func writeTypeKeys(sb *strings.Builder, start byte, ts []types.Type, end byte) {
	sb.WriteByte(start)
	for i, t := range ts {
		if i > 0 {
			sb.WriteByte(',')
		}
		writeTypeKey(sb, t)
	}
	sb.WriteByte(end)
}

// Unfold alias applications at the top of t until t is no longer an alias application.
// Aliases nested within the result are left unexpanded. An alias reached again while
// unfolding is returned as is.
func (at AliasTable) Unfold(t types.Type) types.Type {
	var seen []string
	for {
		con, ok := t.(*types.Con)
		if !ok {
			return t
		}
		alias, ok := at[con.Name]
		if !ok || len(con.Args) < len(alias.Params) {
			return t
		}
		for _, name := range seen {
			if name == con.Name {
				return t
			}
		}
		seen = append(seen, con.Name)
		mapping := make(map[types.VarID]types.Type, len(alias.Params))
		for i, param := range alias.Params {
			mapping[param] = con.Args[i]
		}
		t = types.Apply(Substitute(alias.Body, mapping), con.Args[len(alias.Params):])
	}
}

// Expand every alias within t, recursively.
//
// An alias which is already being expanded further up the same expansion is left
// unexpanded, so recursive and mutually-recursive aliases expand one level and then behave
// as nominal constructors. An alias applied to fewer arguments than it has parameters is
// left unexpanded; arguments beyond its parameters are applied to the expanded body.
func (at AliasTable) Expand(t types.Type) types.Type {
	if len(at) == 0 {
		return t
	}
	visiting := set.New[string](4)
	return at.expand(t, visiting)
}

func (at AliasTable) expand(t types.Type, visiting *set.Set[string]) types.Type {
	switch t := t.(type) {
	case *types.Con:
		args, changed := at.expandList(t.Args, visiting)
		alias, ok := at[t.Name]
		if !ok || visiting.Contains(t.Name) || len(args) < len(alias.Params) {
			if !changed {
				return t
			}
			return &types.Con{Name: t.Name, Args: args}
		}
		mapping := make(map[types.VarID]types.Type, len(alias.Params))
		for i, param := range alias.Params {
			mapping[param] = args[i]
		}
		visiting.Insert(t.Name)
		body := at.expand(Substitute(alias.Body, mapping), visiting)
		visiting.Remove(t.Name)
		return types.Apply(body, args[len(alias.Params):])

	case *types.App:
		base := at.expand(t.Base, visiting)
		args, changed := at.expandList(t.Args, visiting)
		if !changed && base == t.Base {
			return t
		}
		return types.Apply(base, args)

	case *types.Func:
		param, result := at.expand(t.Param, visiting), at.expand(t.Result, visiting)
		if param == t.Param && result == t.Result {
			return t
		}
		return &types.Func{Param: param, Result: result}

	case *types.Tuple:
		items, changed := at.expandList(t.Items, visiting)
		if !changed {
			return t
		}
		return &types.Tuple{Items: items}

	case *types.Record:
		fields := t.Fields.Map(func(ft types.Type) types.Type { return at.expand(ft, visiting) })
		if fields == t.Fields {
			return t
		}
		return &types.Record{Fields: fields, Open: t.Open}
	}
	return t
}

func (at AliasTable) expandList(ts []types.Type, visiting *set.Set[string]) ([]types.Type, bool) {
	var out []types.Type
	for i, t := range ts {
		expanded := at.expand(t, visiting)
		if expanded != t && out == nil {
			out = make([]types.Type, len(ts))
			copy(out, ts[:i])
		}
		if out != nil {
			out[i] = expanded
		}
	}
	if out == nil {
		return ts, false
	}
	return out, true
}
