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

package types

// Kind classifies type constructors by the number of type arguments they accept.
//
// A Kind is either Star, the kind of concrete types, or an arrow from a parameter kind to a
// result kind.
type Kind interface {
	String() string
	isKind()
}

type starKind struct{}

func (starKind) String() string { return "*" }
func (starKind) isKind()        {}

// The kind of concrete types.
var Star Kind = starKind{}

// Kind of a type constructor which accepts a type of the Param kind: `* -> *`
type KindArrow struct {
	Param  Kind
	Result Kind
}

func (k *KindArrow) isKind() {}

func (k *KindArrow) String() string {
	if _, ok := k.Param.(*KindArrow); ok {
		return "(" + k.Param.String() + ") -> " + k.Result.String()
	}
	return k.Param.String() + " -> " + k.Result.String()
}

// Get the kind of a type constructor with the given number of parameters of kind Star.
func KindOfArity(arity int) Kind {
	k := Star
	for i := 0; i < arity; i++ {
		k = &KindArrow{Param: Star, Result: k}
	}
	return k
}

// Check if two kinds are identical.
func KindsEqual(a, b Kind) bool {
	aa, aok := a.(*KindArrow)
	ba, bok := b.(*KindArrow)
	if !aok || !bok {
		return aok == bok
	}
	return KindsEqual(aa.Param, ba.Param) && KindsEqual(aa.Result, ba.Result)
}
