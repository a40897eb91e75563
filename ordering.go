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
	"github.com/wdamron/typecore/ast"
	"github.com/wdamron/typecore/internal/util"
)

// Order modules so every module follows the modules it imports. Modules which are ready at
// the same time are ordered by name, and so are the modules of an import cycle.
func orderModules(modules []*ast.Module) []*ast.Module {
	index := make(map[string]int, len(modules))
	for i, m := range modules {
		if _, dup := index[m.Name.Name]; !dup {
			index[m.Name.Name] = i
		}
	}
	g := util.NewGraph(len(modules))
	for i, m := range modules {
		for _, use := range m.Uses {
			if j, ok := index[use.Module.Name]; ok && j != i {
				g.AddEdge(i, j)
			}
		}
	}
	order := g.DependencyOrder(func(a, b int) bool {
		if modules[a].Name.Name != modules[b].Name.Name {
			return modules[a].Name.Name < modules[b].Name.Name
		}
		return a < b
	})
	out := make([]*ast.Module, len(order))
	for i, v := range order {
		out[i] = modules[v]
	}
	return out
}
