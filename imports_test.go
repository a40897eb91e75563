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

	. "github.com/wdamron/typecore/construct"

	"github.com/wdamron/typecore/ast"
)

func libModule() *ast.Module {
	lib := Module("lib",
		vecType(),
		Domain("Vector", TEName("Vec"),
			binaryOpSig("+", "Vec"),
			Def("(+)", Func([]string{"a", "b"}, Ident("a"))),
		),
		Def("inc", Func1("x", Binary("+", Ident("x"), Number("1")))),
		Def("hidden", Number("0")),
	)
	lib.Exports = append(Export("inc", "Vec"), ExportDomain("Vector"))
	return lib
}

func appModule(uses []ast.UseDecl, items ...ast.Item) *ast.Module {
	app := Module("app", items...)
	app.Uses = uses
	return app
}

func TestQualifiedImport(t *testing.T) {
	app := appModule([]ast.UseDecl{Use("lib")},
		Def("a", Call(Ident("lib.inc"), Number("2"))),
		Def("b", Call(Ident("inc"), Number("2"))),
	)
	// app is listed first; modules are checked in dependency order
	r := checkModules(t, DefaultOptions(), app, libModule())
	expectType(t, r, "lib", "inc", "Int -> Int")
	expectType(t, r, "app", "a", "Int")
	d := findDiagnostic(t, r, CodeUnknownName)
	if d.Message != "unknown name 'inc'" || d.Module != "app" {
		t.Fatalf("unexpected diagnostic: %s", d.String())
	}
}

func TestWildcardAndAliasedImports(t *testing.T) {
	wildcard := appModule([]ast.UseDecl{UseAll("lib")},
		Def("a", Call(Ident("inc"), Number("2"))),
		Def("v", Binary("+", vec("1", "2"), vec("3", "4"))),
	)
	r := checkModules(t, DefaultOptions(), libModule(), wildcard)
	expectClean(t, r)
	expectType(t, r, "app", "a", "Int")
	expectType(t, r, "app", "v", "Vec")

	aliased := appModule([]ast.UseDecl{UseAs("lib", "l")},
		Def("a", Call(Ident("l.inc"), Number("2"))),
		Def("b", Call(Ident("inc"), Number("2"))),
		Def("c", Call(Ident("lib.inc"), Number("2"))),
	)
	r = checkModules(t, DefaultOptions(), libModule(), aliased)
	expectClean(t, r)
	for _, name := range []string{"a", "b", "c"} {
		expectType(t, r, "app", name, "Int")
	}
}

func TestImportItems(t *testing.T) {
	app := appModule([]ast.UseDecl{UseItems("lib", "inc", "hidden"), Use("nope")},
		Def("a", Call(Ident("inc"), Number("2"))),
	)
	r := checkModules(t, DefaultOptions(), libModule(), app)
	expectType(t, r, "app", "a", "Int")

	var messages []string
	for _, d := range r.Diagnostics {
		messages = append(messages, d.Message)
	}
	expected := []string{"module 'lib' does not export 'hidden'", "unknown module 'nope'"}
	if len(messages) != len(expected) || messages[0] != expected[0] || messages[1] != expected[1] {
		t.Fatalf("unexpected diagnostics: %q", messages)
	}
}

func TestDomainImport(t *testing.T) {
	app := appModule([]ast.UseDecl{UseDomain("lib", "Vector"), UseItems("lib", "Vec")},
		Def("v", Binary("+", vec("1", "2"), vec("3", "4"))),
		Def("bad", Call(Ident("inc"), Number("1"))),
	)
	r := checkModules(t, DefaultOptions(), libModule(), app)
	expectType(t, r, "app", "v", "Vec")
	d := findDiagnostic(t, r, CodeUnknownName)
	if d.Message != "unknown name 'inc'" {
		t.Fatalf("unexpected message: %s", d.Message)
	}
}

func TestImportedOverloadsMerge(t *testing.T) {
	app := appModule([]ast.UseDecl{UseAll("lib")},
		TypeDecl("Money", nil, Ctor("Money", TEName("Int"))),
		Domain("Currency", TEName("Money"),
			binaryOpSig("+", "Money"),
			Def("(+)", Func([]string{"a", "b"}, Ident("a"))),
		),
		Def("v", Binary("+", vec("1", "2"), vec("3", "4"))),
		Def("m", Binary("+", Call(Ident("Money"), Number("1")), Call(Ident("Money"), Number("2")))),
	)
	r := checkModules(t, DefaultOptions(), libModule(), app)
	expectClean(t, r)
	expectType(t, r, "app", "v", "Vec")
	expectType(t, r, "app", "m", "Money")
}

func TestImportCycle(t *testing.T) {
	a := appModule([]ast.UseDecl{Use("b")}, Def("x", Number("1")))
	a.Name.Name = "a"
	b := appModule([]ast.UseDecl{Use("a")}, Def("y", Number("1")))
	b.Name.Name = "b"
	r := checkModules(t, DefaultOptions(), a, b)
	d := findDiagnostic(t, r, CodeUnknownName)
	if d.Message != "module 'b' is imported within an import cycle" {
		t.Fatalf("unexpected message: %s", d.Message)
	}
	expectType(t, r, "a", "x", "Int")
	expectType(t, r, "b", "y", "Int")
}

func TestUnknownExport(t *testing.T) {
	m := Module("main", Def("a", Number("1")))
	m.Exports = append(Export("a", "missing"), ExportDomain("Nowhere"))
	r := checkModules(t, DefaultOptions(), m)
	var messages []string
	for _, d := range r.Diagnostics {
		messages = append(messages, d.Message)
	}
	if len(messages) != 2 || messages[0] != "cannot export unknown name 'missing'" ||
		messages[1] != "cannot export unknown domain 'Nowhere'" {
		t.Fatalf("unexpected diagnostics: %q", messages)
	}
}
