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
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/wdamron/typecore/construct"

	"github.com/wdamron/typecore/ast"
)

func showClass() *ast.ClassDecl {
	return Class("Show", []string{"A"}, Sig("show", TEFunc(TEName("A"), TEName("Text"))))
}

func TestInstanceOverloads(t *testing.T) {
	m := Module("main",
		Alias("Email", nil, TEBranded(TEName("Text"))),
		showClass(),
		Instance("Show", []ast.TypeExpr{TEName("Int")}, Def("show", Text("int"), PVar("x"))),
		Instance("Show", []ast.TypeExpr{TEName("Email")}, Def("show", Text("email"), PVar("e"))),
		Sig("addr", TEName("Email")),
		Def("a", Call(Ident("show"), Number("1"))),
		Def("b", Call(Ident("show"), Ident("addr"))),
		Def("bad", Call(Ident("show"), Text("x"))),
	)
	r := checkModules(t, DefaultOptions(), m)
	expectType(t, r, "main", "a", "Text")
	expectType(t, r, "main", "b", "Text")
	expectType(t, r, "main", "show", "Int -> Text | Email -> Text")

	// a branded type only has the instances declared for it
	var messages []string
	for _, d := range r.Diagnostics {
		messages = append(messages, d.Code+" "+d.Message)
	}
	expected := []string{"E3005 no matching overload for 'show' (argument types: Text)"}
	if diff := cmp.Diff(expected, messages); diff != "" {
		t.Fatalf("unexpected diagnostics (-expected +found):\n%s", diff)
	}
}

func TestInstanceErrors(t *testing.T) {
	m := Module("main",
		showClass(),
		Instance("Eq", []ast.TypeExpr{TEName("Int")}),
		Instance("Show", []ast.TypeExpr{TEName("Int"), TEName("Text")}),
		Instance("Show", []ast.TypeExpr{TEName("Bool")},
			Def("show", Number("1"), PVar("b")),
			Def("display", Text("x")),
		),
	)
	r := checkModules(t, DefaultOptions(), m)
	var messages []string
	for _, d := range r.Diagnostics {
		if d.Code == CodeTypeMismatch {
			messages = append(messages, d.Code)
			continue
		}
		messages = append(messages, d.Code+" "+d.Message)
	}
	expected := []string{
		"E3004 unknown class 'Eq'",
		"E3003 class 'Show' expects 1 type argument, found 2 type arguments",
		"E3004 'display' is not a member of class 'Show'",
		"E3000",
	}
	if diff := cmp.Diff(expected, messages); diff != "" {
		t.Fatalf("unexpected diagnostics (-expected +found):\n%s", diff)
	}
	expectType(t, r, "main", "show", "Bool -> Text")
}

func TestImportedInstances(t *testing.T) {
	lib := Module("lib",
		showClass(),
		Instance("Show", []ast.TypeExpr{TEName("Int")}, Def("show", Text("int"), PVar("x"))),
	)
	app := appModule([]ast.UseDecl{UseAll("lib")},
		Instance("Show", []ast.TypeExpr{TEName("Bool")}, Def("show", Text("bool"), PVar("b"))),
		Def("a", Call(Ident("show"), Number("1"))),
		Def("b", Call(Ident("show"), Bool(true))),
		Def("c", Call(Ident("lib.show"), Number("2"))),
		Def("amb", Ident("show")),
	)
	r := checkModules(t, DefaultOptions(), app, lib)
	expectType(t, r, "lib", "show", "Int -> Text")
	expectType(t, r, "app", "a", "Text")
	expectType(t, r, "app", "b", "Text")
	expectType(t, r, "app", "c", "Text")
	expectType(t, r, "app", "show", "Int -> Text | Bool -> Text")

	d := findDiagnostic(t, r, CodeAmbiguous)
	if d.Message != "ambiguous name 'show' (candidates: lib.(Show Int), app.(Show Bool))" {
		t.Fatalf("unexpected message: %s", d.Message)
	}
	if len(r.Diagnostics) != 1 {
		t.Fatalf("unexpected diagnostics: %v", r.Diagnostics)
	}
}
