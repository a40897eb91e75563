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
	"github.com/wdamron/typecore/types"
)

var (
	tInt   = types.NewCon("Int")
	tFloat = types.NewCon("Float")
	tText  = types.NewCon("Text")
	tBool  = types.NewCon("Bool")
	tUnit  = types.NewCon("Unit")
)

var preludeOrigin = &types.SchemeOrigin{Module: "prelude"}

// Create the environment of builtin constructors, and register builtin type constructors,
// algebraic data types and aliases. Declarations within modules replace builtins of the
// same name.
func (c *Checker) newPrelude() *TypeEnv {
	for _, name := range []string{"Int", "Float", "Text", "Bool", "Unit", "Char"} {
		c.kinds[name] = types.Star
	}
	c.kinds["List"] = types.KindOfArity(1)
	c.kinds["Option"] = types.KindOfArity(1)
	c.kinds["Result"] = types.KindOfArity(2)
	c.kinds["Map"] = types.KindOfArity(2)

	c.adts["Bool"] = []string{"True", "False"}
	c.adts["Option"] = []string{"None", "Some"}
	c.adts["Result"] = []string{"Ok", "Err"}

	env := NewTypeEnv(nil)
	poly := func(t types.Type, vars ...*types.Var) types.Scheme {
		ids := make([]types.VarID, len(vars))
		for i, v := range vars {
			ids[i] = v.ID
		}
		return types.Poly(ids, t).WithOrigin(preludeOrigin)
	}
	vt := &c.ctx.VarTracker

	env.Insert("True", types.Mono(tBool).WithOrigin(preludeOrigin))
	env.Insert("False", types.Mono(tBool).WithOrigin(preludeOrigin))

	a := vt.NewNamed("A")
	env.Insert("None", poly(types.NewCon("Option", a), a))
	a = vt.NewNamed("A")
	env.Insert("Some", poly(&types.Func{Param: a, Result: types.NewCon("Option", a)}, a))

	e, a := vt.NewNamed("E"), vt.NewNamed("A")
	env.Insert("Ok", poly(&types.Func{Param: a, Result: types.NewCon("Result", e, a)}, e, a))
	e, a = vt.NewNamed("E"), vt.NewNamed("A")
	env.Insert("Err", poly(&types.Func{Param: e, Result: types.NewCon("Result", e, a)}, e, a))

	a = vt.NewNamed("A")
	c.kinds["Patch"] = types.KindOfArity(1)
	c.ctx.Aliases["Patch"] = types.AliasInfo{
		Params: []types.VarID{a.ID},
		Body:   &types.Func{Param: a, Result: a},
	}
	return env
}
