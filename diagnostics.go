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
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/wdamron/typecore/ast"
)

// Diagnostic codes
const (
	CodeTypeMismatch       = "E3000"
	CodeOccursCheck        = "E3001"
	CodeMissingField       = "E3002"
	CodeKindMismatch       = "E3003"
	CodeUnknownName        = "E3004"
	CodeNoMatchingOverload = "E3005"
	CodeAmbiguous          = "E3006"
	CodeConstructorArity   = "E3007"
	CodeNonExhaustiveMatch = "E3100"
	CodeUnreachableArm     = "W3101"
)

// Severity of a diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic is an error or warning reported while checking a module.
type Diagnostic struct {
	Code     string
	Severity Severity
	Message  string
	// Module is the name of the module which was being checked.
	Module string
	// Path is the source path of the module.
	Path string
	Span ast.Span
	// Expected and Found are the rendered conflicting types, when the diagnostic reports a
	// failure to unify two types.
	Expected string
	Found    string
}

func (d Diagnostic) String() string {
	var sb strings.Builder
	writeDiagnostic(&sb, d, false)
	return sb.String()
}

// Check if any of the diagnostics is an error.
func HasErrors(ds []Diagnostic) bool {
	for _, d := range ds {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

const (
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiBold   = "\x1b[1m"
	ansiReset  = "\x1b[0m"
)

// Write diagnostics to w, one per line. Severities are colored when w is a terminal.
func WriteDiagnostics(w io.Writer, ds []Diagnostic) error {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	var sb strings.Builder
	for _, d := range ds {
		writeDiagnostic(&sb, d, color)
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// path:line:col: error[E3000]: message
func writeDiagnostic(sb *strings.Builder, d Diagnostic, color bool) {
	path := d.Path
	if path == "" {
		path = d.Module
	}
	sb.WriteString(path)
	sb.WriteByte(':')
	sb.WriteString(d.Span.Start.String())
	sb.WriteString(": ")
	if color {
		if d.Severity == SeverityWarning {
			sb.WriteString(ansiYellow)
		} else {
			sb.WriteString(ansiRed)
		}
		sb.WriteString(ansiBold)
	}
	sb.WriteString(d.Severity.String())
	sb.WriteByte('[')
	sb.WriteString(d.Code)
	sb.WriteByte(']')
	if color {
		sb.WriteString(ansiReset)
	}
	sb.WriteString(": ")
	sb.WriteString(d.Message)
}

// typeError is a diagnostic which stops checking of the current definition.
type typeError struct {
	Code     string
	Message  string
	Span     ast.Span
	Expected string
	Found    string
}

func (e *typeError) Error() string { return e.Message }
