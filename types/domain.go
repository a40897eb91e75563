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

import "sort"

// MemberSet is a set of named type-schemes declared within a domain.
type MemberSet map[string][]Scheme

// Domain is a named bundle of operators and functions attached to a carrier type, declared
// within a module. A member name may carry several signatures.
type Domain struct {
	Name    string
	Module  string
	Carrier Type
	Members MemberSet
}

// Create a new domain over a carrier type.
func NewDomain(module, name string, carrier Type) *Domain {
	return &Domain{Name: name, Module: module, Carrier: carrier, Members: make(MemberSet)}
}

// Get the origin stamped on schemes declared within the domain.
func (d *Domain) Origin() *SchemeOrigin { return &SchemeOrigin{Module: d.Module, Domain: d.Name} }

// Add a member signature to the domain. The scheme is stamped with the domain's origin.
func (d *Domain) AddMember(name string, s Scheme) {
	s.Origin = d.Origin()
	d.Members[name] = append(d.Members[name], s)
}

// Add a member name to the domain without a signature.
func (d *Domain) DeclareMember(name string) {
	if _, ok := d.Members[name]; !ok {
		d.Members[name] = nil
	}
}

// Check if a name is declared within the domain.
func (d *Domain) HasMember(name string) bool {
	_, ok := d.Members[name]
	return ok
}

// Get the sorted names of all members of the domain.
func (d *Domain) MemberNames() []string {
	names := make([]string, 0, len(d.Members))
	for name := range d.Members {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
