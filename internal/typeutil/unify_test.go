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

package typeutil_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-set/v2"

	. "github.com/wdamron/typecore/construct"

	"github.com/wdamron/typecore/internal/typeutil"
	"github.com/wdamron/typecore/types"
)

func newContext() *typeutil.Context {
	ctx := &typeutil.Context{}
	ctx.Init()
	return ctx
}

func TestUnifySymmetric(t *testing.T) {
	for _, flip := range []bool{false, true} {
		ctx := newContext()
		a, b := ctx.Fresh(), ctx.Fresh()
		left := TFunc(a, TCon("Int"))
		right := TFunc(TCon("Text"), b)
		var err error
		if flip {
			err = ctx.Unify(right, left)
		} else {
			err = ctx.Unify(left, right)
		}
		if err != nil {
			t.Fatal(err)
		}
		l, r := types.TypeString(ctx.Apply(left)), types.TypeString(ctx.Apply(right))
		if l != "Text -> Int" || l != r {
			t.Fatalf("flip=%v: %s != %s", flip, l, r)
		}
	}
}

func TestApplyIdempotent(t *testing.T) {
	ctx := newContext()
	a, b, c := ctx.Fresh(), ctx.Fresh(), ctx.Fresh()
	ctx.Subst.Bind(a.ID, b)
	ctx.Subst.Bind(b.ID, TCon("List", c))
	ctx.Subst.Bind(c.ID, TCon("Int"))

	once := ctx.Apply(TTuple(a, b))
	twice := ctx.Apply(once)
	if !types.Equal(once, twice) {
		t.Fatalf("apply is not idempotent:\n%s", spew.Sdump(once, twice))
	}
	if s := types.TypeString(once); s != "(List Int, List Int)" {
		t.Fatalf("type: %s", s)
	}
	// path compression:
	if bound, _ := ctx.Subst.Lookup(a.ID); types.TypeString(bound) != "List Int" {
		t.Fatalf("expected chain to be compressed, found %s", types.TypeString(bound))
	}
}

func TestApplyCycle(t *testing.T) {
	ctx := newContext()
	a, b := ctx.Fresh(), ctx.Fresh()
	ctx.Subst.Bind(a.ID, b)
	ctx.Subst.Bind(b.ID, a)

	once := ctx.Apply(TCon("List", a))
	twice := ctx.Apply(once)
	if !types.Equal(once, twice) {
		t.Fatalf("apply is not idempotent:\n%s", spew.Sdump(once, twice))
	}
	if bound, ok := ctx.Subst.Lookup(a.ID); ok {
		if tv, ok := bound.(*types.Var); ok && tv.ID == a.ID {
			t.Fatalf("apply wrote a self-binding")
		}
	}
}

func TestOccursCheck(t *testing.T) {
	ctx := newContext()
	a := ctx.Fresh()
	err := ctx.Unify(a, TCon("List", a))
	uerr, ok := err.(*typeutil.UnifyError)
	if !ok || uerr.Kind != typeutil.OccursCheck {
		t.Fatalf("expected occurs check failure, found %v", err)
	}
	if ctx.Subst.Len() != 0 {
		t.Fatalf("expected no bindings after a failed occurs check")
	}
}

func TestMismatchOrientation(t *testing.T) {
	ctx := newContext()
	err := ctx.Unify(TCon("Float"), TCon("Int"))
	uerr, ok := err.(*typeutil.UnifyError)
	if !ok || uerr.Kind != typeutil.Mismatch {
		t.Fatalf("expected mismatch, found %v", err)
	}
	if types.TypeString(uerr.Expected) != "Int" || types.TypeString(uerr.Found) != "Float" {
		t.Fatalf("expected Int, found Float; got expected %s, found %s",
			types.TypeString(uerr.Expected), types.TypeString(uerr.Found))
	}
}

func TestTupleLength(t *testing.T) {
	ctx := newContext()
	err := ctx.Unify(TTuple(TCon("Int")), TTuple(TCon("Int"), TCon("Int")))
	if err == nil || err.Error() != "tuple length mismatch" {
		t.Fatalf("expected tuple length mismatch, found %v", err)
	}
}

func TestAliasRecursionTerminates(t *testing.T) {
	ctx := newContext()
	ctx.Aliases["A"] = types.AliasInfo{Body: TCon("B")}
	ctx.Aliases["B"] = types.AliasInfo{Body: TCon("A")}

	expanded := ctx.Aliases.Expand(TCon("A"))
	if s := types.TypeString(expanded); s != "A" {
		t.Fatalf("type: %s", s)
	}
	if s := types.TypeString(ctx.Aliases.Expand(TCon("List", TCon("B")))); s != "List B" {
		t.Fatalf("type: %s", s)
	}
	if err := ctx.Unify(TCon("A"), TCon("A")); err != nil {
		t.Fatal(err)
	}
}

func TestRecursiveRecordAlias(t *testing.T) {
	ctx := newContext()
	ctx.Aliases["Stream"] = types.AliasInfo{Body: TRecord(map[string]types.Type{
		"head": TCon("Int"),
		"tail": TCon("Stream"),
	})}
	if err := ctx.Unify(TCon("Stream"), TCon("Stream")); err != nil {
		t.Fatal(err)
	}
	// one unfolding against the alias itself:
	unfolded := TRecord(map[string]types.Type{"head": TCon("Int"), "tail": TCon("Stream")})
	if err := ctx.Unify(unfolded, TCon("Stream")); err != nil {
		t.Fatal(err)
	}
	a := ctx.Fresh()
	if err := ctx.Unify(TRecord(map[string]types.Type{"head": a, "tail": TCon("Stream")}), TCon("Stream")); err != nil {
		t.Fatal(err)
	}
	if s := types.TypeString(ctx.Apply(a)); s != "Int" {
		t.Fatalf("head: %s", s)
	}
	err := ctx.Unify(TRecord(map[string]types.Type{"head": TCon("Text"), "tail": TCon("Stream")}), TCon("Stream"))
	if err == nil {
		t.Fatalf("expected mismatch on head")
	}
}

func TestMutuallyRecursiveRecordAliases(t *testing.T) {
	ctx := newContext()
	ctx.Aliases["Tree"] = types.AliasInfo{Body: TRecord(map[string]types.Type{"children": TCon("Forest")})}
	ctx.Aliases["Forest"] = types.AliasInfo{Body: TCon("List", TCon("Tree"))}
	if err := ctx.Unify(TCon("Tree"), TCon("Tree")); err != nil {
		t.Fatal(err)
	}
	unfolded := TRecord(map[string]types.Type{"children": TCon("List", TCon("Tree"))})
	if err := ctx.Unify(TCon("Tree"), unfolded); err != nil {
		t.Fatal(err)
	}
	if err := ctx.Unify(TCon("Forest"), TCon("List", unfolded)); err != nil {
		t.Fatal(err)
	}
}

func TestGrowingAliasTerminates(t *testing.T) {
	ctx := newContext()
	p := ctx.Fresh()
	ctx.Aliases["Nest"] = types.AliasInfo{
		Params: []types.VarID{p.ID},
		Body:   TRecord(map[string]types.Type{"next": TCon("Nest", TCon("List", p))}),
	}
	err := ctx.Unify(TCon("Nest", TCon("Int")), TCon("Nest", TCon("Int")))
	if err == nil || err.Error() != "type alias nesting is too deep" {
		t.Fatalf("unexpected result: %v", err)
	}
}

func TestParameterizedAlias(t *testing.T) {
	ctx := newContext()
	p := ctx.Fresh()
	ctx.Aliases["Patch"] = types.AliasInfo{Params: []types.VarID{p.ID}, Body: TFunc(p, p)}

	if s := types.TypeString(ctx.Aliases.Expand(TCon("Patch", TCon("Int")))); s != "Int -> Int" {
		t.Fatalf("type: %s", s)
	}
	// partially applied aliases are left unexpanded:
	if s := types.TypeString(ctx.Aliases.Expand(TCon("Patch"))); s != "Patch" {
		t.Fatalf("type: %s", s)
	}
	if err := ctx.Unify(TFunc(TCon("Text"), TCon("Text")), TCon("Patch", TCon("Text"))); err != nil {
		t.Fatal(err)
	}
}

func TestRecordOpenness(t *testing.T) {
	ctx := newContext()
	open := TOpenRecord(map[string]types.Type{"x": TCon("Int")})
	closedXY := TRecord(map[string]types.Type{"x": TCon("Int"), "y": TCon("Bool")})
	closedX := TRecord(map[string]types.Type{"x": TCon("Int")})

	if err := ctx.Unify(closedXY, open); err != nil {
		t.Fatalf("open record should accept extra fields: %v", err)
	}

	err := ctx.Unify(closedX, closedXY)
	uerr, ok := err.(*typeutil.UnifyError)
	if !ok || uerr.Kind != typeutil.MissingField || uerr.Field != "y" {
		t.Fatalf("expected missing field 'y', found %v", err)
	}
	if err.Error() != "missing field 'y'" {
		t.Fatalf("message: %s", err.Error())
	}
}

func TestBothOpenRecordsIncompatibleField(t *testing.T) {
	ctx := newContext()
	a := TOpenRecord(map[string]types.Type{"x": TCon("Int"), "y": TCon("Bool")})
	b := TOpenRecord(map[string]types.Type{"x": TCon("Text"), "z": TCon("Bool")})
	err := ctx.Unify(a, b)
	uerr, ok := err.(*typeutil.UnifyError)
	if !ok || uerr.Kind != typeutil.Mismatch {
		t.Fatalf("expected mismatch, found %v", err)
	}
}

func TestAppConSplit(t *testing.T) {
	ctx := newContext()
	f, a := ctx.Fresh(), ctx.Fresh()
	if err := ctx.Unify(TApp(f, a), TCon("Result", TCon("Text"), TCon("Int"))); err != nil {
		t.Fatal(err)
	}
	if s := types.TypeString(ctx.Apply(f)); s != "Result Text" {
		t.Fatalf("f: %s", s)
	}
	if s := types.TypeString(ctx.Apply(a)); s != "Int" {
		t.Fatalf("a: %s", s)
	}
	if s := types.TypeString(ctx.Apply(TApp(f, a))); s != "Result Text Int" {
		t.Fatalf("f a: %s", s)
	}

	// too few constructor arguments:
	g, b, c := ctx.Fresh(), ctx.Fresh(), ctx.Fresh()
	if err := ctx.Unify(TCon("Option", TCon("Int")), TApp(g, b, c)); err == nil {
		t.Fatalf("expected mismatch")
	}
}

func TestTxnRollback(t *testing.T) {
	ctx := newContext()
	a, b := ctx.Fresh(), ctx.Fresh()
	if err := ctx.Unify(a, TCon("Int")); err != nil {
		t.Fatal(err)
	}

	outer := ctx.NewUnifyTxn()
	if err := ctx.Unify(b, TCon("List", a)); err != nil {
		t.Fatal(err)
	}
	inner := ctx.NewUnifyTxn()
	c := ctx.Fresh()
	if err := ctx.Unify(c, b); err != nil {
		t.Fatal(err)
	}
	ctx.Commit(inner)
	ctx.Rollback(outer)

	if _, ok := ctx.Subst.Lookup(b.ID); ok {
		t.Fatalf("expected binding for b to be rolled back")
	}
	if _, ok := ctx.Subst.Lookup(c.ID); ok {
		t.Fatalf("expected committed inner binding to be rolled back with the outer transaction")
	}
	if s := types.TypeString(ctx.Apply(a)); s != "Int" {
		t.Fatalf("a: %s", s)
	}
	if ctx.Speculate {
		t.Fatalf("expected speculation to end with the outer transaction")
	}

	if !ctx.CanUnify(b, TCon("Int")) || ctx.Subst.Len() != 1 {
		t.Fatalf("CanUnify should not modify the substitution")
	}
	if err := ctx.TryUnify(TCon("Text"), a); err == nil || ctx.Subst.Len() != 1 {
		t.Fatalf("TryUnify should leave the substitution unmodified on failure")
	}
}

func TestGeneralizeInstantiate(t *testing.T) {
	ctx := newContext()
	a, b, envVar := ctx.Fresh(), ctx.Fresh(), ctx.Fresh()
	ty := TFunc(a, envVar, TTuple(a, b))

	envFree := set.From([]types.VarID{envVar.ID})
	scheme := ctx.Generalize(ty, envFree)
	if len(scheme.Vars) != 2 || scheme.Vars[0] != a.ID || scheme.Vars[1] != b.ID {
		t.Fatalf("vars: %v", scheme.Vars)
	}

	inst := ctx.Instantiate(scheme)
	for _, id := range typeutil.FreeVars(inst) {
		if id == a.ID || id == b.ID {
			t.Fatalf("quantified variable %d survived instantiation", id)
		}
	}
	if !ctx.Occurs(envVar.ID, inst) {
		t.Fatalf("free variable was not kept")
	}

	// generalizing the instance yields the same scheme up to renaming
	again := ctx.Generalize(inst, envFree)
	if types.TypeString(again.Type) != types.TypeString(scheme.Type) {
		t.Fatalf("%s != %s", types.TypeString(again.Type), types.TypeString(scheme.Type))
	}

	mono := ctx.Generalize(envVar, envFree)
	if mono.IsGeneric() {
		t.Fatalf("expected monomorphic scheme")
	}
}

func TestFreeVarsOrder(t *testing.T) {
	ctx := newContext()
	a, b, c := ctx.Fresh(), ctx.Fresh(), ctx.Fresh()
	ctx.Subst.Bind(c.ID, b)
	free := ctx.FreeVars(TFunc(b, a, TTuple(c, a)))
	if len(free) != 2 || free[0] != b.ID || free[1] != a.ID {
		t.Fatalf("free: %v", free)
	}
	s := types.Scheme{Vars: []types.VarID{a.ID}, Type: TFunc(a, b)}
	if sf := ctx.SchemeFreeVars(s); len(sf) != 1 || sf[0] != b.ID {
		t.Fatalf("scheme free: %v", sf)
	}
}

func TestCompact(t *testing.T) {
	ctx := newContext()
	live, dead, inner := ctx.Fresh(), ctx.Fresh(), ctx.Fresh()
	ctx.Subst.Bind(live.ID, TCon("List", inner))
	ctx.Subst.Bind(inner.ID, TCon("Int"))
	ctx.Subst.Bind(dead.ID, TCon("Text"))

	root := TTuple(live)
	if removed := ctx.Compact([]types.Type{root}); removed != 1 {
		t.Fatalf("removed %d entries", removed)
	}
	if after := types.TypeString(ctx.Apply(root)); after != "(List Int)" {
		t.Fatalf("type: %s", after)
	}
	if _, ok := ctx.Subst.Lookup(dead.ID); ok {
		t.Fatalf("expected unreachable binding to be removed")
	}

	txn := ctx.NewUnifyTxn()
	if removed := ctx.Compact(nil); removed != 0 {
		t.Fatalf("compaction should be skipped within a transaction")
	}
	ctx.Rollback(txn)
}

func TestTypeStringsShareNames(t *testing.T) {
	ctx := newContext()
	a, b := ctx.Fresh(), ctx.VarTracker.NewNamed("A")
	out := ctx.TypeStrings(TFunc(a, b), TCon("List", a))
	if out[0] != "'a -> A" || out[1] != "List 'a" {
		t.Fatalf("types: %v", out)
	}
}
