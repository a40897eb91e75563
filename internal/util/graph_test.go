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

package util

import (
	"reflect"
	"testing"
)

func TestSCC(t *testing.T) {
	g := NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 0)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(2, 3)
	if len(g[2]) != 1 {
		t.Fatalf("expected duplicate edge to be ignored")
	}
	sccs := g.SCC()
	if len(sccs) != 3 {
		t.Fatalf("expected 3 components, found %v", sccs)
	}
	if len(sccs[0]) != 2 {
		t.Fatalf("expected cycle first, found %v", sccs)
	}
}

func TestDependencyOrder(t *testing.T) {
	names := []string{"main", "math", "base", "util"}
	less := func(a, b int) bool { return names[a] < names[b] }

	// main -> math -> base, util -> base
	g := NewGraph(len(names))
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(3, 2)

	order := g.DependencyOrder(less)
	if !reflect.DeepEqual(order, []int{2, 1, 0, 3}) {
		t.Fatalf("unexpected order: %v", order)
	}
}

func TestDependencyOrderCycle(t *testing.T) {
	names := []string{"b", "a", "c"}
	less := func(a, b int) bool { return names[a] < names[b] }

	// a <-> b, c -> a
	g := NewGraph(len(names))
	g.AddEdge(0, 1)
	g.AddEdge(1, 0)
	g.AddEdge(2, 1)

	order := g.DependencyOrder(less)
	if !reflect.DeepEqual(order, []int{1, 0, 2}) {
		t.Fatalf("unexpected order: %v", order)
	}
}
