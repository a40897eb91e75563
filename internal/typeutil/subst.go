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

type substEdit struct {
	id   types.VarID
	prev types.Type
	had  bool
}

// Substitution maps bound type-variables to types. Chains of bindings are followed (and
// shortened) by Apply.
//
// Writes made while a transaction is open are journaled so they can be rolled back.
type Substitution struct {
	entries map[types.VarID]types.Type
	journal []substEdit
	depth   int
}

// Create an empty substitution.
func NewSubstitution() *Substitution {
	return &Substitution{entries: make(map[types.VarID]types.Type, 64)}
}

func (s *Substitution) Reset() {
	s.entries, s.journal, s.depth = make(map[types.VarID]types.Type, 64), s.journal[:0], 0
}

// Get the number of bound type-variables.
func (s *Substitution) Len() int { return len(s.entries) }

// Get the direct binding for a type-variable, without following chains.
func (s *Substitution) Lookup(id types.VarID) (types.Type, bool) {
	t, ok := s.entries[id]
	return t, ok
}

// Bind a type-variable. Binding a variable to itself is ignored.
func (s *Substitution) Bind(id types.VarID, t types.Type) {
	if tv, ok := t.(*types.Var); ok && tv.ID == id {
		return
	}
	if s.entries == nil {
		s.entries = make(map[types.VarID]types.Type, 64)
	}
	if s.depth > 0 {
		prev, had := s.entries[id]
		s.journal = append(s.journal, substEdit{id: id, prev: prev, had: had})
	}
	s.entries[id] = t
}

func (s *Substitution) undo(mark int) {
	for i := len(s.journal) - 1; i >= mark; i-- {
		e := s.journal[i]
		if e.had {
			s.entries[e.id] = e.prev
		} else {
			delete(s.entries, e.id)
		}
	}
	s.journal = s.journal[:mark]
}

// Replace every bound type-variable within t by its binding, recursively. Resolved chains
// are written back so later lookups are shorter. Cyclic chains stop at the first repeated
// variable.
func (s *Substitution) Apply(t types.Type) types.Type {
	if len(s.entries) == 0 {
		return t
	}
	var visiting *set.Set[types.VarID]
	return s.apply(t, &visiting)
}

func (s *Substitution) apply(t types.Type, visiting **set.Set[types.VarID]) types.Type {
	switch t := t.(type) {
	case *types.Var:
		next, ok := s.entries[t.ID]
		if !ok {
			return t
		}
		if *visiting == nil {
			*visiting = set.New[types.VarID](8)
		}
		if !(*visiting).Insert(t.ID) {
			return t
		}
		resolved := s.apply(next, visiting)
		(*visiting).Remove(t.ID)
		if resolved != next {
			s.Bind(t.ID, resolved)
		}
		return resolved

	case *types.Con:
		args, changed := s.applyList(t.Args, visiting)
		if !changed {
			return t
		}
		return &types.Con{Name: t.Name, Args: args}

	case *types.App:
		base := s.apply(t.Base, visiting)
		args, changed := s.applyList(t.Args, visiting)
		if !changed && base == t.Base {
			return t
		}
		return types.Apply(base, args)

	case *types.Func:
		param, result := s.apply(t.Param, visiting), s.apply(t.Result, visiting)
		if param == t.Param && result == t.Result {
			return t
		}
		return &types.Func{Param: param, Result: result}

	case *types.Tuple:
		items, changed := s.applyList(t.Items, visiting)
		if !changed {
			return t
		}
		return &types.Tuple{Items: items}

	case *types.Record:
		fields := t.Fields.Map(func(ft types.Type) types.Type { return s.apply(ft, visiting) })
		if fields == t.Fields {
			return t
		}
		return &types.Record{Fields: fields, Open: t.Open}
	}
	return t
}

func (s *Substitution) applyList(ts []types.Type, visiting **set.Set[types.VarID]) ([]types.Type, bool) {
	var out []types.Type
	for i, t := range ts {
		applied := s.apply(t, visiting)
		if applied != t && out == nil {
			out = make([]types.Type, len(ts))
			copy(out, ts[:i])
		}
		if out != nil {
			out[i] = applied
		}
	}
	if out == nil {
		return ts, false
	}
	return out, true
}

// Remove every binding which is not reachable from the given roots. Bindings reachable
// through other bindings are kept. Compaction is skipped while a transaction is open.
//
// The ids of removed bindings are returned.
func (s *Substitution) Compact(roots []types.Type) []types.VarID {
	if s.depth > 0 || len(s.entries) == 0 {
		return nil
	}
	live := set.New[types.VarID](len(s.entries))
	for _, root := range roots {
		s.mark(root, live)
	}
	var removed []types.VarID
	for id := range s.entries {
		if !live.Contains(id) {
			removed = append(removed, id)
		}
	}
	for _, id := range removed {
		delete(s.entries, id)
	}
	return removed
}

func (s *Substitution) mark(t types.Type, live *set.Set[types.VarID]) {
	switch t := t.(type) {
	case *types.Var:
		if !live.Insert(t.ID) {
			return
		}
		if next, ok := s.entries[t.ID]; ok {
			s.mark(next, live)
		}
	case *types.Con:
		for _, arg := range t.Args {
			s.mark(arg, live)
		}
	case *types.App:
		s.mark(t.Base, live)
		for _, arg := range t.Args {
			s.mark(arg, live)
		}
	case *types.Func:
		s.mark(t.Param, live)
		s.mark(t.Result, live)
	case *types.Tuple:
		for _, item := range t.Items {
			s.mark(item, live)
		}
	case *types.Record:
		t.Fields.Range(func(_ string, ft types.Type) bool {
			s.mark(ft, live)
			return true
		})
	}
}
