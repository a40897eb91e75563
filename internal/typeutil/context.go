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

// Context holds the mutable state shared by unification, instantiation and generalization
// within a single checking run: the type-variable allocator, the substitution and the table
// of type aliases.
type Context struct {
	VarTracker VarTracker
	Subst      Substitution
	Aliases    AliasTable
	Speculate  bool

	// pairs of alias applications currently being unified
	assumed *set.Set[string]
}

func (ctx *Context) Init() {
	ctx.Subst.Reset()
	if ctx.Aliases == nil {
		ctx.Aliases = make(AliasTable, 16)
	}
}

func (ctx *Context) Reset() {
	ctx.VarTracker.Reset()
	ctx.Subst.Reset()
	ctx.Aliases = make(AliasTable, 16)
	ctx.Speculate = false
	ctx.assumed = nil
}

// Allocate a fresh type-variable.
func (ctx *Context) Fresh() *types.Var { return ctx.VarTracker.New() }

// Apply the current substitution to a type.
func (ctx *Context) Apply(t types.Type) types.Type { return ctx.Subst.Apply(t) }

// Apply the current substitution to a type, then expand aliases within the result.
func (ctx *Context) Resolve(t types.Type) types.Type {
	return ctx.Aliases.Expand(ctx.Subst.Apply(t))
}

// Get the debug name of a type-variable, for printing.
func (ctx *Context) VarName(id types.VarID) (string, bool) { return ctx.VarTracker.Name(id) }

// Render types with the substitution applied, sharing type-variable names across them.
func (ctx *Context) TypeStrings(ts ...types.Type) []string {
	applied := make([]types.Type, len(ts))
	for i, t := range ts {
		applied[i] = ctx.Apply(t)
	}
	return types.TypeStrings(ctx.VarName, applied...)
}

// Remove substitution entries which are unreachable from the given roots, along with debug
// names of the removed type-variables. The number of removed entries is returned.
func (ctx *Context) Compact(roots []types.Type) int {
	removed := ctx.Subst.Compact(roots)
	for _, id := range removed {
		ctx.VarTracker.Forget(id)
	}
	return len(removed)
}

// UnifyTxn records the state of a context before speculative unification.
type UnifyTxn struct {
	Speculate bool
	mark      int
}

// Begin a transaction. Substitution writes made before the transaction is rolled back or
// committed are journaled. Transactions may be nested.
func (ctx *Context) NewUnifyTxn() UnifyTxn {
	txn := UnifyTxn{Speculate: ctx.Speculate, mark: len(ctx.Subst.journal)}
	ctx.Speculate = true
	ctx.Subst.depth++
	return txn
}

// Undo every substitution write made since the transaction began.
func (ctx *Context) Rollback(txn UnifyTxn) {
	ctx.Subst.undo(txn.mark)
	ctx.Subst.depth--
	ctx.Speculate = txn.Speculate
}

// Keep every substitution write made since the transaction began. Writes remain journaled
// while an enclosing transaction is open.
func (ctx *Context) Commit(txn UnifyTxn) {
	ctx.Subst.depth--
	if ctx.Subst.depth == 0 {
		ctx.Subst.journal = ctx.Subst.journal[:0]
	}
	ctx.Speculate = txn.Speculate
}

// Check if two types can be unified, without modifying the substitution.
func (ctx *Context) CanUnify(found, expected types.Type) bool {
	txn := ctx.NewUnifyTxn()
	err := ctx.Unify(found, expected)
	ctx.Rollback(txn)
	return err == nil
}

// Unify two types, leaving the substitution unmodified if unification fails.
func (ctx *Context) TryUnify(found, expected types.Type) error {
	txn := ctx.NewUnifyTxn()
	if err := ctx.Unify(found, expected); err != nil {
		ctx.Rollback(txn)
		return err
	}
	ctx.Commit(txn)
	return nil
}
