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

// Resolve a name bound to an overload set, given the types of its arguments and, optionally,
// the expected type of the result.
//
// Each candidate is instantiated and unified within a transaction which is always rolled
// back. When exactly one candidate succeeds, it is unified again and committed. When no
// candidate succeeds, or several do and the tie-break policy is TieBreakError, an error is
// returned.
func (c *Checker) resolveOverload(name string, span ast.Span, candidates []types.Scheme, args []types.Type, expected types.Type, operator bool) (types.Type, error) {
	candidates = c.dedupeSchemes(candidates)
	var matches []types.Scheme
	for _, s := range candidates {
		txn := c.ctx.NewUnifyTxn()
		_, err := c.applyCandidate(s, args, expected)
		c.ctx.Rollback(txn)
		if err == nil {
			matches = append(matches, s)
		}
	}

	switch {
	case len(matches) == 0:
		if operator {
			return nil, c.noOperator(strings.TrimSuffix(strings.TrimPrefix(name, "("), ")"), span, args)
		}
		if len(args) == 0 && expected != nil {
			return nil, newTypeError(CodeNoMatchingOverload, span,
				"no overload of '"+name+"' matches the expected type "+c.ctx.TypeStrings(expected)[0])
		}
		return nil, newTypeError(CodeNoMatchingOverload, span,
			"no matching overload for '"+name+"' (argument types: "+strings.Join(c.ctx.TypeStrings(args...), ", ")+")")

	case len(matches) > 1 && c.opts.OverloadTieBreak != TieBreakFirst:
		if len(args) == 0 {
			return nil, newTypeError(CodeAmbiguous, span,
				"ambiguous name '"+name+"' (candidates: "+c.describeSchemes(matches)+")")
		}
		return nil, newTypeError(CodeAmbiguous, span,
			"ambiguous call to '"+name+"' (multiple overloads match: "+c.describeSchemes(matches)+")")
	}

	t, err := c.applyCandidate(matches[0], args, expected)
	if err != nil {
		return nil, c.unifyError(err, span)
	}
	return t, nil
}

// Instantiate a candidate and apply it to argument types. Failures are unification errors,
// which are not reported.
func (c *Checker) applyCandidate(s types.Scheme, args []types.Type, expected types.Type) (types.Type, error) {
	fn := c.ctx.Instantiate(s)
	for _, arg := range args {
		if f, ok := c.ctx.Resolve(fn).(*types.Func); ok {
			if err := c.ctx.Unify(arg, f.Param); err != nil {
				return nil, err
			}
			fn = f.Result
			continue
		}
		result := c.ctx.Fresh()
		if err := c.ctx.Unify(fn, &types.Func{Param: arg, Result: result}); err != nil {
			return nil, err
		}
		fn = result
	}
	if expected != nil {
		if err := c.ctx.Unify(fn, expected); err != nil {
			return nil, err
		}
	}
	return fn, nil
}

func (c *Checker) noOperator(op string, span ast.Span, operands []types.Type) *typeError {
	return newTypeError(CodeNoMatchingOverload, span,
		"no domain operator '"+op+"' for these operand types ("+strings.Join(c.ctx.TypeStrings(operands...), ", ")+")")
}

// Describe schemes by origin. Schemes without an origin, or sharing an origin with another
// scheme, are described by their type as well.
func (c *Checker) describeSchemes(ss []types.Scheme) string {
	origins := make(map[string]int, len(ss))
	for _, s := range ss {
		origins[s.Origin.String()]++
	}
	parts := make([]string, len(ss))
	for i, s := range ss {
		origin := s.Origin.String()
		switch {
		case origin == "":
			parts[i] = c.schemeString(s)
		case origins[origin] > 1:
			parts[i] = origin + " : " + c.schemeString(s)
		default:
			parts[i] = origin
		}
	}
	return strings.Join(parts, ", ")
}
