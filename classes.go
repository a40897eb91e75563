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
	"strings"

	"github.com/wdamron/typecore/ast"
	"github.com/wdamron/typecore/internal/typeutil"
	"github.com/wdamron/typecore/types"
)

// classInfo holds the parameters and member types of a declared class.
type classInfo struct {
	name    string
	params  []types.VarID
	members map[string]types.Type
	order   []string
}

// instanceDef is a definition within an instance, paired with the member's type for that
// instance.
type instanceDef struct {
	def    *ast.Def
	scheme types.Scheme
}

// Record the classes declared within a module.
func (c *Checker) collectClasses(m *ast.Module) {
	classes := make(map[string]*classInfo)
	c.classes[m.Name.Name] = classes
	for _, item := range m.Items {
		decl, ok := item.(*ast.ClassDecl)
		if !ok {
			continue
		}
		scope := make(typeScope, len(decl.Params))
		info := &classInfo{
			name:    decl.Name.Name,
			params:  make([]types.VarID, len(decl.Params)),
			members: make(map[string]types.Type, len(decl.Members)),
		}
		for i, p := range decl.Params {
			tv := c.ctx.VarTracker.NewNamed(p.Name)
			scope[p.Name] = tv
			info.params[i] = tv.ID
		}
		for _, sig := range decl.Members {
			t, k := c.typeFromExpr(sig.Type, scope, false)
			c.expectStar(sig.Type, k)
			if _, dup := info.members[sig.Name.Name]; !dup {
				info.order = append(info.order, sig.Name.Name)
			}
			info.members[sig.Name.Name] = t
		}
		classes[info.name] = info
	}
}

// Find a class declared within a module, or within a module it imports.
func (c *Checker) lookupClass(m *ast.Module, name string) (*classInfo, bool) {
	if info, ok := c.classes[m.Name.Name][name]; ok {
		return info, true
	}
	for _, use := range m.Uses {
		if info, ok := c.classes[use.Module.Name][name]; ok {
			return info, true
		}
	}
	return nil, false
}

// Bind the members of every instance declared within a module. Each instance contributes
// one candidate per class member, with the class parameters replaced by the instance's type
// arguments; candidates are merged with any other binding of the member name.
func (c *Checker) registerInstances(m *ast.Module) {
	module := m.Name.Name
	c.instanceDefs = c.instanceDefs[:0]
	c.instanceSchemes = make(map[string][]types.Scheme)

	for _, item := range m.Items {
		decl, ok := item.(*ast.InstanceDecl)
		if !ok {
			continue
		}
		class, ok := c.lookupClass(m, decl.Class.Name)
		if !ok {
			c.errorAt(CodeUnknownName, decl.Class.Loc, "unknown class '"+decl.Class.Name+"'")
			continue
		}
		if len(decl.Args) != len(class.params) {
			c.errorAt(CodeKindMismatch, decl.Loc, "class '"+class.name+"' expects "+
				plural(len(class.params), "type argument")+", found "+plural(len(decl.Args), "type argument"))
			continue
		}

		scope := make(typeScope)
		mapping := make(map[types.VarID]types.Type, len(class.params))
		for i, argExpr := range decl.Args {
			arg, _ := c.typeFromExpr(argExpr, scope, false)
			mapping[class.params[i]] = arg
		}
		origin := &types.SchemeOrigin{Module: module, Instance: instanceHead(class.name, decl.Args)}
		schemes := make(map[string]types.Scheme, len(class.order))
		for _, member := range class.order {
			t := typeutil.Substitute(class.members[member], mapping)
			s := types.Poly(typeutil.FreeVars(t), t).WithOrigin(origin)
			schemes[member] = s
			c.instanceSchemes[member] = append(c.instanceSchemes[member], s)
			c.mergeBinding(member, []types.Scheme{s})
		}
		for _, def := range decl.Defs {
			s, ok := schemes[def.Name.Name]
			if !ok {
				c.errorAt(CodeUnknownName, def.Name.Loc,
					"'"+def.Name.Name+"' is not a member of class '"+class.name+"'")
				continue
			}
			c.instanceDefs = append(c.instanceDefs, instanceDef{def: def, scheme: s})
		}
	}
}

// Render an instance head: `Show Int` or `Show (List A)`.
func instanceHead(class string, args []ast.TypeExpr) string {
	var sb strings.Builder
	sb.WriteString(class)
	for _, arg := range args {
		s := ast.TypeExprString(arg)
		sb.WriteByte(' ')
		if strings.ContainsRune(s, ' ') && !strings.HasPrefix(s, "(") && !strings.HasPrefix(s, "{") {
			sb.WriteString("(" + s + ")")
		} else {
			sb.WriteString(s)
		}
	}
	return sb.String()
}

// Check every instance definition of the current module against the member's type for its
// instance.
func (c *Checker) checkInstanceDefs() {
	for _, idef := range c.instanceDefs {
		def := idef.def
		expr := def.Expr
		if len(def.Params) > 0 {
			expr = &ast.Lambda{Params: def.Params, Body: def.Expr, Loc: def.Loc}
		}
		if err := c.checkExpr(expr, c.ctx.Instantiate(idef.scheme), c.env); err != nil {
			c.report(err)
		}
		c.afterDef()
	}
}

// Sorted names of the class members bound by instances of the current module.
func (c *Checker) instanceMembers() []string {
	names := make([]string, 0, len(c.instanceSchemes))
	for name := range c.instanceSchemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
