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
	"bytes"
	"testing"

	"github.com/wdamron/typecore/ast"
)

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{
		Code:     CodeTypeMismatch,
		Severity: SeverityError,
		Message:  "type mismatch: expected Int, found Float",
		Module:   "main",
		Path:     "main.aivi",
		Span:     ast.Span{Start: ast.Position{Line: 3, Column: 5}, End: ast.Position{Line: 3, Column: 8}},
	}
	if s := d.String(); s != "main.aivi:3:5: error[E3000]: type mismatch: expected Int, found Float" {
		t.Fatalf("unexpected rendering: %s", s)
	}
	d.Path, d.Severity, d.Code, d.Message = "", SeverityWarning, CodeUnreachableArm, "unreachable"
	if s := d.String(); s != "main:3:5: warning[W3101]: unreachable" {
		t.Fatalf("unexpected rendering: %s", s)
	}
}

func TestWriteDiagnostics(t *testing.T) {
	ds := []Diagnostic{
		{Code: CodeUnknownName, Message: "unknown name 'x'", Path: "a.aivi"},
		{Code: CodeUnreachableArm, Severity: SeverityWarning, Message: "unreachable", Path: "b.aivi"},
	}
	var buf bytes.Buffer
	if err := WriteDiagnostics(&buf, ds); err != nil {
		t.Fatal(err)
	}
	expected := "a.aivi:0:0: error[E3004]: unknown name 'x'\nb.aivi:0:0: warning[W3101]: unreachable\n"
	if buf.String() != expected {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
	if !HasErrors(ds) || HasErrors(ds[1:]) {
		t.Fatalf("unexpected HasErrors result")
	}
}
