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

package types_test

import (
	"testing"

	. "github.com/wdamron/typecore/construct"

	"github.com/wdamron/typecore/types"
)

func TestTypeString(t *testing.T) {
	a, b := TVar(0), TVar(1)
	cases := []struct {
		t        types.Type
		expected string
	}{
		{TCon("Int"), "Int"},
		{TCon("List", TCon("Int")), "List Int"},
		{TCon("Result", TCon("Text"), TCon("List", a)), "Result Text (List 'a)"},
		{TApp(a, TCon("Int")), "'a Int"},
		{TFunc(a, b, a), "'a -> 'b -> 'a"},
		{TFunc(TFunc(a, b), TCon("List", a), TCon("List", b)), "('a -> 'b) -> List 'a -> List 'b"},
		{TCon("Option", TFunc(a, a)), "Option ('a -> 'a)"},
		{TTuple(a, TCon("Int")), "('a, Int)"},
		{TRecord(map[string]types.Type{"name": TCon("Text"), "age": TCon("Int")}), "{ age: Int, name: Text }"},
		{TOpenRecord(map[string]types.Type{"name": a}), "{ name: 'a, .. }"},
		{TRecord(nil), "{}"},
		{TOpenRecord(nil), "{ .. }"},
	}
	for _, c := range cases {
		if s := types.TypeString(c.t); s != c.expected {
			t.Fatalf("expected %s, found %s", c.expected, s)
		}
	}
}

func TestTypeStringsDebugNames(t *testing.T) {
	a, b, c := TVar(7), TVar(8), TVar(9)
	names := map[types.VarID]string{7: "A", 8: "A"}
	lookup := func(id types.VarID) (string, bool) {
		name, ok := names[id]
		return name, ok
	}
	out := types.TypeStrings(lookup, TFunc(a, b), TFunc(c, a))
	// distinct variables sharing a debug name are not printed identically
	if out[0] != "A -> 'a" || out[1] != "'b -> A" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestApplyType(t *testing.T) {
	a := TVar(0)
	if s := types.TypeString(types.Apply(TCon("Result", TCon("Text")), []types.Type{a})); s != "Result Text 'a" {
		t.Fatalf("unexpected application: %s", s)
	}
	applied := types.Apply(TApp(a, TCon("Int")), []types.Type{TCon("Text")})
	if app, ok := applied.(*types.App); !ok || len(app.Args) != 2 {
		t.Fatalf("expected application to be extended, found %s", types.TypeString(applied))
	}
	params, result := types.FlattenFunc(TFunc(a, TCon("Int"), TCon("Text")))
	if len(params) != 2 || types.TypeString(result) != "Text" {
		t.Fatalf("unexpected flattened function: %d params, result %s", len(params), types.TypeString(result))
	}
}

func TestKinds(t *testing.T) {
	if s := types.KindOfArity(2).String(); s != "* -> * -> *" {
		t.Fatalf("unexpected kind: %s", s)
	}
	higher := &types.KindArrow{Param: types.KindOfArity(1), Result: types.Star}
	if s := higher.String(); s != "(* -> *) -> *" {
		t.Fatalf("unexpected kind: %s", s)
	}
	if !types.KindsEqual(types.KindOfArity(1), &types.KindArrow{Param: types.Star, Result: types.Star}) {
		t.Fatalf("expected kinds to be equal")
	}
	if types.KindsEqual(types.Star, types.KindOfArity(1)) {
		t.Fatalf("expected kinds to differ")
	}
}

func TestDomainMembers(t *testing.T) {
	d := types.NewDomain("geo", "Vector", TCon("Vec"))
	d.AddMember("(+)", types.Mono(TFunc(TCon("Vec"), TCon("Vec"), TCon("Vec"))))
	d.DeclareMember("zero")
	d.DeclareMember("(+)")
	if names := d.MemberNames(); len(names) != 2 || names[0] != "(+)" || names[1] != "zero" {
		t.Fatalf("unexpected members: %v", names)
	}
	if origin := d.Members["(+)"][0].Origin.String(); origin != "geo.Vector" {
		t.Fatalf("unexpected origin: %s", origin)
	}
	if !d.HasMember("zero") || d.HasMember("(-)") {
		t.Fatalf("unexpected membership")
	}
}
