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

// Type is the base interface for all types.
//
// Types are immutable once constructed. Type-variables carry only an id; bindings for
// type-variables are stored in a substitution owned by the checker.
type Type interface {
	TypeName() string
}

func (t *Var) TypeName() string    { return "Var" }
func (t *Con) TypeName() string    { return "Con" }
func (t *App) TypeName() string    { return "App" }
func (t *Func) TypeName() string   { return "Func" }
func (t *Tuple) TypeName() string  { return "Tuple" }
func (t *Record) TypeName() string { return "Record" }

// VarID uniquely identifies a type-variable within a single checking run.
type VarID uint32

// Type variable
type Var struct {
	ID VarID
}

// Create a type-variable with the given id.
func NewVar(id VarID) *Var { return &Var{ID: id} }

// Named type constructor, possibly applied to arguments: `Int` or `List Int`
type Con struct {
	Name string
	Args []Type
}

// Create a (possibly applied) named type constructor.
func NewCon(name string, args ...Type) *Con {
	if len(args) == 0 {
		return &Con{Name: name}
	}
	return &Con{Name: name, Args: args}
}

// Application of a non-constructor head, typically a type-variable: `f a`
type App struct {
	Base Type
	Args []Type
}

// Function type with a single parameter: `a -> b`
type Func struct {
	Param  Type
	Result Type
}

// Create a curried function type. The last type is the result type.
func NewFunc(params []Type, result Type) Type {
	t := result
	for i := len(params) - 1; i >= 0; i-- {
		t = &Func{Param: params[i], Result: t}
	}
	return t
}

// Positional product: `(a, b)`
type Tuple struct {
	Items []Type
}

// Record type: `{ name: Text, .. }`
//
// An open record may contain fields beyond those listed; a closed record contains exactly
// the listed fields.
type Record struct {
	Fields FieldMap
	Open   bool
}

// Create a record type from a mapping of labels to field types.
func NewRecord(fields map[string]Type, open bool) *Record {
	return &Record{Fields: NewFieldMap(fields), Open: open}
}

// Apply additional arguments to a type. Applying arguments to a named constructor extends
// its argument list, applying arguments to an application extends the application, and
// applying arguments to anything else creates a new application.
func Apply(t Type, args []Type) Type {
	if len(args) == 0 {
		return t
	}
	switch t := t.(type) {
	case *Con:
		return &Con{Name: t.Name, Args: appendTypes(t.Args, args)}
	case *App:
		return &App{Base: t.Base, Args: appendTypes(t.Args, args)}
	default:
		return &App{Base: t, Args: append([]Type(nil), args...)}
	}
}

func appendTypes(a, b []Type) []Type {
	out := make([]Type, 0, len(a)+len(b))
	return append(append(out, a...), b...)
}

// Split a function type into its parameters and final result.
func FlattenFunc(t Type) (params []Type, result Type) {
	for {
		fn, ok := t.(*Func)
		if !ok {
			return params, t
		}
		params = append(params, fn.Param)
		t = fn.Result
	}
}

// Check if two types are structurally identical. Type-variables are compared by id; no
// substitution is applied.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *Var:
		b, ok := b.(*Var)
		return ok && a.ID == b.ID
	case *Con:
		b, ok := b.(*Con)
		return ok && a.Name == b.Name && equalLists(a.Args, b.Args)
	case *App:
		b, ok := b.(*App)
		return ok && Equal(a.Base, b.Base) && equalLists(a.Args, b.Args)
	case *Func:
		b, ok := b.(*Func)
		return ok && Equal(a.Param, b.Param) && Equal(a.Result, b.Result)
	case *Tuple:
		b, ok := b.(*Tuple)
		return ok && equalLists(a.Items, b.Items)
	case *Record:
		b, ok := b.(*Record)
		if !ok || a.Open != b.Open || a.Fields.Len() != b.Fields.Len() {
			return false
		}
		equal := true
		a.Fields.Range(func(name string, t Type) bool {
			other, ok := b.Fields.Get(name)
			equal = ok && Equal(t, other)
			return equal
		})
		return equal
	}
	return false
}

func equalLists(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
