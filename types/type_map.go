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

import (
	"github.com/benbjohnson/immutable"
)

var emptyMap = immutable.NewSortedMap(nil)

var EmptyFieldMap = FieldMap{emptyMap}

// FieldMap contains immutable mappings from record labels to field types. Entries are
// sorted by label.
type FieldMap struct {
	m *immutable.SortedMap
}

// Create a FieldMap from a Go map.
func NewFieldMap(m map[string]Type) FieldMap {
	b := NewFieldMapBuilder()
	for name, t := range m {
		b.Set(name, t)
	}
	return b.Build()
}

// Create a FieldMap with a single entry.
func SingletonFieldMap(label string, t Type) FieldMap {
	return FieldMap{emptyMap.Set(label, t)}
}

// Get the number of entries in the map.
func (m FieldMap) Len() int {
	if m.m == nil {
		return 0
	}
	return m.m.Len()
}

// Get the type of a field.
func (m FieldMap) Get(label string) (Type, bool) {
	if m.m == nil {
		return nil, false
	}
	t, ok := m.m.Get(label)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Iterate over entries in the map, in label order.
// If f returns false, iteration will be stopped.
func (m FieldMap) Range(f func(string, Type) bool) {
	if m.m == nil {
		return
	}
	iter := m.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(Type)) {
			return
		}
	}
}

// Get the sorted list of labels in the map.
func (m FieldMap) Labels() []string {
	labels := make([]string, 0, m.Len())
	m.Range(func(label string, _ Type) bool {
		labels = append(labels, label)
		return true
	})
	return labels
}

// Create a new map with f applied to every field type. The existing map is returned if f
// returns every field type unchanged.
func (m FieldMap) Map(f func(Type) Type) FieldMap {
	var b FieldMapBuilder
	m.Range(func(label string, t Type) bool {
		mapped := f(t)
		if mapped != t {
			if b.b == nil {
				b = m.Builder()
			}
			b.Set(label, mapped)
		}
		return true
	})
	if b.b == nil {
		return m
	}
	return b.Build()
}

// Convert the map to a builder for modification, without mutating the existing map.
func (m FieldMap) Builder() FieldMapBuilder {
	imm := m.m
	if imm == nil {
		imm = emptyMap
	}
	return FieldMapBuilder{immutable.NewSortedMapBuilder(imm)}
}

// FieldMapBuilder enables in-place updates of a map before finalization.
type FieldMapBuilder struct {
	b *immutable.SortedMapBuilder
}

func NewFieldMapBuilder() FieldMapBuilder {
	return FieldMapBuilder{immutable.NewSortedMapBuilder(emptyMap)}
}

// Get the number of entries in the builder.
func (b FieldMapBuilder) Len() int {
	if b.b == nil {
		return 0
	}
	return b.b.Len()
}

// Set the type of a field, replacing any existing entry.
func (b *FieldMapBuilder) Set(label string, t Type) {
	if b.b == nil {
		b.b = immutable.NewSortedMapBuilder(emptyMap)
	}
	b.b.Set(label, t)
}

// Remove a field.
func (b *FieldMapBuilder) Delete(label string) {
	if b.b == nil {
		return
	}
	b.b.Delete(label)
}

// Finalize the builder into an immutable map. The builder should not be used afterwards.
func (b FieldMapBuilder) Build() FieldMap {
	if b.b == nil {
		return EmptyFieldMap
	}
	return FieldMap{b.b.Map()}
}
