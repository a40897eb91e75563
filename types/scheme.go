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

// SchemeOrigin records where a signature was declared: a module, and optionally a domain or
// class instance within that module.
type SchemeOrigin struct {
	Module string
	Domain string
	// Instance is the rendered instance head, e.g. `Show Int`.
	Instance string
}

// Render the origin as `module`, `module.Domain` or `module.(Show Int)`.
func (o *SchemeOrigin) String() string {
	switch {
	case o == nil:
		return ""
	case o.Instance != "":
		return o.Module + ".(" + o.Instance + ")"
	case o.Domain != "":
		return o.Module + "." + o.Domain
	}
	return o.Module
}

// Scheme is a (possibly) polymorphic type: `forall vars. type`
type Scheme struct {
	Vars   []VarID
	Type   Type
	Origin *SchemeOrigin
}

// Create a monomorphic scheme which quantifies no variables.
func Mono(t Type) Scheme { return Scheme{Type: t} }

// Create a scheme which quantifies the given variables.
func Poly(vars []VarID, t Type) Scheme { return Scheme{Vars: vars, Type: t} }

// Check if the scheme quantifies any variables.
func (s Scheme) IsGeneric() bool { return len(s.Vars) > 0 }

// Copy the scheme with a different origin.
func (s Scheme) WithOrigin(origin *SchemeOrigin) Scheme {
	s.Origin = origin
	return s
}

// Check if a variable is quantified by the scheme.
func (s Scheme) Quantifies(id VarID) bool {
	for _, v := range s.Vars {
		if v == id {
			return true
		}
	}
	return false
}

// AliasInfo describes a transparent (possibly parameterized) type alias.
type AliasInfo struct {
	Params []VarID
	Body   Type
}
