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
	"sort"

	"github.com/hashicorp/go-set/v2"

	"github.com/wdamron/typecore/internal/typeutil"
	"github.com/wdamron/typecore/types"
)

// Binding is the type-scheme (or set of overloaded type-schemes) bound to a name.
//
// A binding holds either a single scheme, or an overload set of at least two schemes.
type Binding struct {
	single    types.Scheme
	overloads []types.Scheme
}

// Create a binding for a single scheme.
func SingleBinding(s types.Scheme) Binding { return Binding{single: s} }

// Create a binding for a set of overloaded schemes. A set with one scheme is a single
// binding.
func OverloadedBinding(ss []types.Scheme) Binding {
	if len(ss) == 1 {
		return Binding{single: ss[0]}
	}
	return Binding{overloads: append([]types.Scheme(nil), ss...)}
}

// Check if the binding is an overload set.
func (b Binding) IsOverloaded() bool { return b.overloads != nil }

// Get the scheme of a single binding.
func (b Binding) Scheme() (types.Scheme, bool) {
	if b.overloads != nil {
		return types.Scheme{}, false
	}
	return b.single, true
}

// Get every scheme of the binding.
func (b Binding) Candidates() []types.Scheme {
	if b.overloads != nil {
		return b.overloads
	}
	return []types.Scheme{b.single}
}

// TypeEnv is a type-environment containing mappings from identifiers to declared types.
//
// Child environments shadow bindings of their parents without modifying them. A
// type-environment cannot be used concurrently.
type TypeEnv struct {
	// Bindings in the parent of the current type-environment
	Parent *TypeEnv
	// Mappings from identifiers to bindings in the current type-environment
	Bindings map[string]Binding
}

// Create a type-environment. The new environment will inherit bindings from the parent, if
// the parent is not nil.
func NewTypeEnv(parent *TypeEnv) *TypeEnv {
	return &TypeEnv{Parent: parent, Bindings: make(map[string]Binding)}
}

// Create a child scope of the type-environment.
func (e *TypeEnv) Child() *TypeEnv { return NewTypeEnv(e) }

// Bind a name to a single scheme in the current scope, replacing any existing binding.
func (e *TypeEnv) Insert(name string, s types.Scheme) { e.Bindings[name] = SingleBinding(s) }

// Bind a name to a set of overloaded schemes in the current scope, replacing any existing
// binding. An empty set is ignored.
func (e *TypeEnv) InsertOverloads(name string, ss []types.Scheme) {
	if len(ss) == 0 {
		return
	}
	e.Bindings[name] = OverloadedBinding(ss)
}

// Lookup the binding for a name in the current scope, or the nearest parent scope which
// binds the name.
func (e *TypeEnv) Lookup(name string) (Binding, bool) {
	for env := e; env != nil; env = env.Parent {
		if b, ok := env.Bindings[name]; ok {
			return b, true
		}
	}
	return Binding{}, false
}

// Lookup the binding for a name in the current scope only.
func (e *TypeEnv) LookupLocal(name string) (Binding, bool) {
	b, ok := e.Bindings[name]
	return b, ok
}

// Get the sorted names bound in the current scope.
func (e *TypeEnv) Names() []string {
	names := make([]string, 0, len(e.Bindings))
	for name := range e.Bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Iterate over every scheme bound in the environment and its parents, including shadowed
// bindings. If f returns false, iteration will be stopped.
func (e *TypeEnv) RangeSchemes(f func(name string, s types.Scheme) bool) {
	for env := e; env != nil; env = env.Parent {
		for name, b := range env.Bindings {
			for _, s := range b.Candidates() {
				if !f(name, s) {
					return
				}
			}
		}
	}
}

// Get the free type-variables of every scheme in the environment and its parents, after
// applying the substitution. Bindings for the except name are skipped, so a definition can
// be generalized without counting its own placeholder.
func (e *TypeEnv) FreeVars(ctx *typeutil.Context, except string) *set.Set[types.VarID] {
	free := set.New[types.VarID](16)
	e.RangeSchemes(func(name string, s types.Scheme) bool {
		if name == except && except != "" {
			return true
		}
		for _, id := range ctx.SchemeFreeVars(s) {
			free.Insert(id)
		}
		return true
	})
	return free
}
