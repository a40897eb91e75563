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
	"sort"

	"github.com/wdamron/typecore/ast"
	"github.com/wdamron/typecore/types"
)

// Bind the names imported by a module's use declarations. Every export of an imported
// module is bound under its qualified name; bare names are bound for wildcard imports,
// aliased imports, item lists and domain imports. Imported schemes are merged with any
// binding of the same name, so overloads declared in several modules form one set.
func (c *Checker) registerImports(m *ast.Module) {
	for _, use := range m.Uses {
		modName := use.Module.Name
		exports, ok := c.exports[modName]
		if !ok {
			if c.modules[modName] {
				c.errorAt(CodeUnknownName, use.Module.Loc, "module '"+modName+"' is imported within an import cycle")
			} else {
				c.errorAt(CodeUnknownName, use.Module.Loc, "unknown module '"+modName+"'")
			}
			continue
		}

		for _, name := range sortedExportNames(exports) {
			ss := exports[name]
			c.mergeBinding(modName+"."+name, ss)
			if use.Alias != nil {
				c.mergeBinding(use.Alias.Name+"."+name, ss)
			}
			if use.Alias != nil || use.Wildcard {
				c.mergeBinding(name, ss)
			}
		}

		for _, item := range use.Items {
			name := item.Name.Name
			switch item.Kind {
			case ast.ValueItem:
				ss, ok := exports[name]
				if !ok {
					c.errorAt(CodeUnknownName, item.Name.Loc, "module '"+modName+"' does not export '"+name+"'")
					continue
				}
				c.mergeBinding(name, ss)
			case ast.DomainItem:
				members, ok := c.domainExports[modName][name]
				if !ok {
					c.errorAt(CodeUnknownName, item.Name.Loc, "module '"+modName+"' does not export domain '"+name+"'")
					continue
				}
				for _, member := range members {
					c.mergeBinding(member, domainSchemes(exports[member], modName, name))
				}
			}
		}
	}
}

func sortedExportNames(exports map[string][]types.Scheme) []string {
	names := make([]string, 0, len(exports))
	for name := range exports {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select the schemes declared within a domain. When none carry the domain's origin, as for
// members defined without a signature, every scheme is kept.
func domainSchemes(ss []types.Scheme, module, domain string) []types.Scheme {
	var out []types.Scheme
	for _, s := range ss {
		if s.Origin != nil && s.Origin.Module == module && s.Origin.Domain == domain {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return ss
	}
	return out
}

// Merge schemes into the binding of a name in the module environment.
func (c *Checker) mergeBinding(name string, ss []types.Scheme) {
	if len(ss) == 0 {
		return
	}
	if b, ok := c.env.LookupLocal(name); ok {
		ss = append(append([]types.Scheme(nil), b.Candidates()...), ss...)
	}
	c.env.InsertOverloads(name, c.dedupeSchemes(ss))
}

// Remove duplicate schemes: schemes with the same origin and the same rendered type, as when
// one declaration is imported along several paths.
func (c *Checker) dedupeSchemes(ss []types.Scheme) []types.Scheme {
	if len(ss) < 2 {
		return ss
	}
	seen := make(map[string]bool, len(ss))
	out := make([]types.Scheme, 0, len(ss))
	for _, s := range ss {
		key := s.Origin.String() + "\x00" + c.schemeString(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

// Record the schemes exported by a module. Exporting an algebraic data type exports its
// constructors; exporting a domain exports every member of the domain. Members of every
// instance declared within the module are always exported.
func (c *Checker) collectExports(m *ast.Module) {
	module := m.Name.Name
	exports := make(map[string][]types.Scheme)
	domainExports := make(map[string][]string)

	exportName := func(name string) bool {
		b, ok := c.env.LookupLocal(name)
		if !ok {
			return false
		}
		ss := b.Candidates()
		local := make([]types.Scheme, 0, len(ss))
		for _, s := range ss {
			if s.Origin == nil || s.Origin.Module == module {
				local = append(local, s)
			}
		}
		if len(local) == 0 {
			// re-export of an imported name
			local = ss
		}
		for i, s := range local {
			s.Type = c.ctx.Apply(s.Type)
			local[i] = s
		}
		exports[name] = local
		return true
	}

	for _, item := range m.Exports {
		name := item.Name.Name
		switch item.Kind {
		case ast.ValueItem:
			if ctors, ok := c.localADT(m, name); ok {
				for _, ctor := range ctors {
					exportName(ctor)
				}
				continue
			}
			if !exportName(name) {
				c.errorAt(CodeUnknownName, item.Name.Loc, "cannot export unknown name '"+name+"'")
			}
		case ast.DomainItem:
			d, ok := c.domains[module][name]
			if !ok {
				c.errorAt(CodeUnknownName, item.Name.Loc, "cannot export unknown domain '"+name+"'")
				continue
			}
			members := d.MemberNames()
			domainExports[name] = members
			for _, member := range members {
				exportName(member)
			}
		}
	}

	for _, member := range c.instanceMembers() {
		ss := append([]types.Scheme(nil), exports[member]...)
		for _, s := range c.instanceSchemes[member] {
			s.Type = c.ctx.Apply(s.Type)
			ss = append(ss, s)
		}
		exports[member] = c.dedupeSchemes(ss)
	}

	c.exports[module] = exports
	c.domainExports[module] = domainExports
}

// Get the constructor names of an algebraic data type declared within a module.
func (c *Checker) localADT(m *ast.Module, name string) ([]string, bool) {
	found := false
	forEachTypeDecl(m, func(item ast.Item, _ *ast.DomainDecl) {
		if decl, ok := item.(*ast.TypeDecl); ok && decl.Name.Name == name {
			found = true
		}
	})
	if !found {
		return nil, false
	}
	return c.adts[name], true
}
