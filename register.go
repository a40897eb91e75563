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
	"github.com/wdamron/typecore/internal/typeutil"
	"github.com/wdamron/typecore/types"
)

// Call f for every type declaration and alias of a module, including those declared within
// domains. domain is nil for module-level declarations.
func forEachTypeDecl(m *ast.Module, f func(item ast.Item, domain *ast.DomainDecl)) {
	for _, item := range m.Items {
		switch item := item.(type) {
		case *ast.TypeDecl, *ast.TypeAlias:
			f(item, nil)
		case *ast.DomainDecl:
			for _, member := range item.Items {
				switch member.(type) {
				case *ast.TypeDecl, *ast.TypeAlias:
					f(member, item)
				}
			}
		}
	}
}

// Register the kinds of every type constructor declared in any module, then the bodies of
// every alias and branded type. Kinds are registered first so declarations may refer to
// types declared later, or within other modules.
func (c *Checker) registerTypes(modules []*ast.Module) {
	for _, m := range modules {
		forEachTypeDecl(m, func(item ast.Item, _ *ast.DomainDecl) {
			switch item := item.(type) {
			case *ast.TypeDecl:
				name := item.Name.Name
				c.kinds[name] = types.KindOfArity(len(item.Params))
				ctors := make([]string, len(item.Constructors))
				for i, ctor := range item.Constructors {
					ctors[i] = ctor.Name.Name
				}
				c.adts[name] = ctors
				delete(c.ctx.Aliases, name)
			case *ast.TypeAlias:
				name := item.Name.Name
				c.kinds[name] = types.KindOfArity(len(item.Params))
				delete(c.adts, name)
				delete(c.ctx.Aliases, name)
			}
		})
	}
	for _, m := range modules {
		c.module = m
		forEachTypeDecl(m, func(item ast.Item, _ *ast.DomainDecl) {
			if alias, ok := item.(*ast.TypeAlias); ok {
				c.registerAlias(alias)
			}
		})
	}
	c.module = nil
}

func (c *Checker) registerAlias(alias *ast.TypeAlias) {
	name := alias.Name.Name
	scope := make(typeScope, len(alias.Params))
	params := make([]types.VarID, len(alias.Params))
	for i, p := range alias.Params {
		tv := c.ctx.VarTracker.NewNamed(p.Name)
		scope[p.Name] = tv
		params[i] = tv.ID
	}

	if branded, ok := alias.Aliased.(*ast.TypeBranded); ok {
		underlying, k := c.typeFromExpr(branded.Inner, scope, false)
		c.expectStar(branded.Inner, k)
		c.brands[name] = underlying
		return
	}

	body, k := c.typeFromExpr(alias.Aliased, scope, false)
	if k != nil && !types.KindsEqual(k, types.Star) {
		// alias of a partially-applied constructor: `Pair = Result Text`
		for range alias.Params {
			k = &types.KindArrow{Param: types.Star, Result: k}
		}
		c.kinds[name] = k
	}
	c.ctx.Aliases[name] = types.AliasInfo{Params: params, Body: body}
}

// Bind the constructors of every algebraic data type declared in a module, and placeholders
// for every machine, state and transition.
func (c *Checker) registerConstructors(m *ast.Module) {
	forEachTypeDecl(m, func(item ast.Item, domain *ast.DomainDecl) {
		decl, ok := item.(*ast.TypeDecl)
		if !ok {
			return
		}
		origin := &types.SchemeOrigin{Module: m.Name.Name}
		if domain != nil {
			origin.Domain = domain.Name.Name
		}
		scope := make(typeScope, len(decl.Params))
		params := make([]types.Type, len(decl.Params))
		for i, p := range decl.Params {
			tv := c.ctx.VarTracker.NewNamed(p.Name)
			scope[p.Name] = tv
			params[i] = tv
		}
		result := types.NewCon(decl.Name.Name, params...)
		for _, ctor := range decl.Constructors {
			args := make([]types.Type, len(ctor.Args))
			for i, argExpr := range ctor.Args {
				arg, k := c.typeFromExpr(argExpr, scope, false)
				c.expectStar(argExpr, k)
				args[i] = arg
			}
			t := types.NewFunc(args, result)
			c.env.Insert(ctor.Name.Name, types.Poly(typeutil.FreeVars(t), t).WithOrigin(origin))
		}
	})

	for _, item := range m.Items {
		machine, ok := item.(*ast.MachineDecl)
		if !ok {
			continue
		}
		origin := &types.SchemeOrigin{Module: m.Name.Name}
		c.env.Insert(machine.Name.Name, types.Mono(c.ctx.Fresh()).WithOrigin(origin))
		for _, state := range machine.States {
			c.env.Insert(state.Name, types.Mono(c.ctx.Fresh()).WithOrigin(origin))
		}
		for _, tr := range machine.Transitions {
			c.env.Insert(tr.Name.Name, types.Mono(c.ctx.Fresh()).WithOrigin(origin))
		}
	}
}

// Collect the signatures declared within a module, including signatures declared within
// domains, stamped with their origin. A name with several signatures is overloaded.
func (c *Checker) collectTypeSigs(m *ast.Module) map[string][]types.Scheme {
	module := m.Name.Name
	sigs := make(map[string][]types.Scheme)
	domains := make(map[string]*types.Domain)
	c.domains[module] = domains

	for _, item := range m.Items {
		switch item := item.(type) {
		case *ast.TypeSig:
			s := c.schemeFromExpr(item.Type).WithOrigin(&types.SchemeOrigin{Module: module})
			sigs[item.Name.Name] = append(sigs[item.Name.Name], s)

		case *ast.DomainDecl:
			var carrier types.Type
			if item.Over != nil {
				carrier, _ = c.typeFromExpr(item.Over, make(typeScope), false)
			}
			d := types.NewDomain(module, item.Name.Name, carrier)
			for _, member := range item.Items {
				switch member := member.(type) {
				case *ast.TypeSig:
					name := member.Name.Name
					d.AddMember(name, c.schemeFromExpr(member.Type))
					members := d.Members[name]
					sigs[name] = append(sigs[name], members[len(members)-1])
				case *ast.Def:
					d.DeclareMember(member.Name.Name)
				}
			}
			domains[d.Name] = d
		}
	}
	return sigs
}

// Bind every signature of a module, and a monomorphic placeholder for every definition
// without a signature. Signatures are merged with imported overloads of the same name;
// placeholders shadow imports.
func (c *Checker) registerDefs(m *ast.Module) {
	for name, ss := range c.sigs {
		if b, ok := c.env.LookupLocal(name); ok {
			ss = append(append([]types.Scheme(nil), ss...), b.Candidates()...)
		}
		c.env.InsertOverloads(name, c.dedupeSchemes(ss))
	}
	placed := make(map[string]bool)
	forEachDef(m, func(def *ast.Def, domain *ast.DomainDecl) {
		name := def.Name.Name
		if _, ok := c.sigs[name]; ok || placed[name] {
			return
		}
		placed[name] = true
		origin := &types.SchemeOrigin{Module: m.Name.Name}
		if domain != nil {
			origin.Domain = domain.Name.Name
		}
		c.env.Insert(name, types.Mono(c.ctx.Fresh()).WithOrigin(origin))
	})
}
