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
	"strings"

	"github.com/wdamron/typecore/ast"
	"github.com/wdamron/typecore/types"
)

// Check the coverage of a match's arms. Unreachable arms are reported as warnings; an error is
// returned when the scrutinee is an algebraic data type and some constructor is matched by no
// arm.
func (c *Checker) checkMatchArms(e *ast.Match, scrutinee types.Type) error {
	var (
		catchAll  bool
		covered   = make(map[string]bool)
		mentioned = make(map[string]bool)
	)
	for _, arm := range e.Arms {
		if catchAll {
			c.warnAt(CodeUnreachableArm, arm.Pattern.Span(),
				"unreachable match arm (previous arm matches everything)")
			continue
		}
		ctor, full, isCtor := constructorCoverage(arm.Pattern)
		if isCtor && covered[ctor] {
			c.warnAt(CodeUnreachableArm, arm.Pattern.Span(),
				"unreachable match arm (constructor '"+ctor+"' already covered)")
			continue
		}
		if arm.Guard != nil {
			continue
		}
		if irrefutable(arm.Pattern) {
			catchAll = true
			continue
		}
		if isCtor {
			mentioned[ctor] = true
			if full {
				covered[ctor] = true
			}
		}
	}
	if catchAll {
		return nil
	}

	con, ok := c.ctx.Resolve(scrutinee).(*types.Con)
	if !ok {
		return nil
	}
	var missing []string
	for _, ctor := range c.adts[con.Name] {
		if !mentioned[ctor] {
			missing = append(missing, ctor)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return newTypeError(CodeNonExhaustiveMatch, e.Loc,
		"non-exhaustive match (missing: "+strings.Join(missing, ", ")+")")
}

// Get the constructor matched by a pattern, and whether the pattern matches every value built
// by that constructor. Bool literals match the True and False constructors.
func constructorCoverage(p ast.Pattern) (ctor string, full, ok bool) {
	switch p := p.(type) {
	case *ast.PConstructor:
		for _, arg := range p.Args {
			if !irrefutable(arg) {
				return p.Name.Name, false, true
			}
		}
		return p.Name.Name, true, true
	case *ast.PLiteral:
		if p.Literal.Kind == ast.BoolLiteral {
			return p.Literal.Syntax, true, true
		}
	}
	return "", false, false
}

// Check if a pattern matches every value of its type.
func irrefutable(p ast.Pattern) bool {
	switch p := p.(type) {
	case *ast.PTuple:
		for _, item := range p.Items {
			if !irrefutable(item) {
				return false
			}
		}
		return true
	case *ast.PRecord:
		for _, field := range p.Fields {
			if field.Pattern != nil && !irrefutable(field.Pattern) {
				return false
			}
		}
		return true
	}
	return ast.IsCatchAll(p)
}
