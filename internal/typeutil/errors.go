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
	"github.com/wdamron/typecore/types"
)

// UnifyErrorKind classifies unification failures.
type UnifyErrorKind int

const (
	Mismatch UnifyErrorKind = iota
	OccursCheck
	MissingField
)

// UnifyError describes a failure to unify an expected type with a found type. Expected and
// Found hold the innermost pair of types which could not be unified.
type UnifyError struct {
	Kind     UnifyErrorKind
	Expected types.Type
	Found    types.Type
	// Field is set for MissingField errors.
	Field string
	// Detail optionally describes the mismatch, e.g. "tuple length mismatch".
	Detail string
}

func (e *UnifyError) Error() string {
	switch e.Kind {
	case OccursCheck:
		return "occurs check failed"
	case MissingField:
		return "missing field '" + e.Field + "'"
	}
	if e.Detail != "" {
		return e.Detail
	}
	return "type mismatch"
}

func mismatch(expected, found types.Type) error {
	return &UnifyError{Kind: Mismatch, Expected: expected, Found: found}
}
