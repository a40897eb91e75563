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

package typeutil

import (
	"github.com/wdamron/typecore/types"
)

// VarTracker allocates type-variables with unique ids and tracks optional debug names.
type VarTracker struct {
	NextId types.VarID
	names  map[types.VarID]string
}

func (vt *VarTracker) Reset() { vt.NextId, vt.names = 0, nil }

// Get the number of type-variables allocated since the last reset.
func (vt *VarTracker) Count() int { return int(vt.NextId) }

// Allocate a fresh type-variable.
func (vt *VarTracker) New() *types.Var {
	tv := types.NewVar(vt.NextId)
	vt.NextId++
	return tv
}

// Allocate a fresh type-variable with a debug name.
func (vt *VarTracker) NewNamed(name string) *types.Var {
	tv := vt.New()
	if name != "" {
		vt.SetName(tv.ID, name)
	}
	return tv
}

// Allocate count fresh type-variables.
func (vt *VarTracker) NewList(count int) []types.Type {
	vars := make([]types.Type, count)
	for i := range vars {
		vars[i] = vt.New()
	}
	return vars
}

// Get the debug name of a type-variable, if one was assigned.
func (vt *VarTracker) Name(id types.VarID) (string, bool) {
	name, ok := vt.names[id]
	return name, ok
}

func (vt *VarTracker) SetName(id types.VarID, name string) {
	if vt.names == nil {
		vt.names = make(map[types.VarID]string, 16)
	}
	vt.names[id] = name
}

// Drop the debug name of a type-variable which is no longer referenced.
func (vt *VarTracker) Forget(id types.VarID) { delete(vt.names, id) }
