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
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/wdamron/typecore/ast"
	"github.com/wdamron/typecore/internal/typeutil"
	"github.com/wdamron/typecore/types"
)

// Result contains the diagnostics and inferred types produced by checking a set of modules.
type Result struct {
	Diagnostics []Diagnostic
	// Rendered types of definitions and signatures, by module name and then name. Overloaded
	// names render every candidate, separated by " | ".
	Types map[string]map[string]string
}

// Check if any diagnostic is an error.
func (r *Result) HasErrors() bool { return HasErrors(r.Diagnostics) }

// Get the rendered type of a definition.
func (r *Result) TypeOf(module, name string) (string, bool) {
	t, ok := r.Types[module][name]
	return t, ok
}

// Check modules with the default options.
func Check(modules []*ast.Module) *Result { return NewChecker(DefaultOptions()).Check(modules) }

// Checker infers and checks the types of definitions within modules.
//
// A Checker may be reused for several runs, but cannot be used concurrently.
type Checker struct {
	opts Options
	log  *slog.Logger
	ctx  typeutil.Context

	prelude *TypeEnv
	// kinds of type constructors, including aliases and branded types
	kinds map[string]types.Kind
	// constructor names of algebraic data types, in declaration order
	adts map[string][]string
	// underlying types of branded types
	brands map[string]types.Type
	// domains by module name and domain name
	domains map[string]map[string]*types.Domain
	// exported schemes by module name and exported name
	exports map[string]map[string][]types.Scheme
	// exported domain members by module name and domain name
	domainExports map[string]map[string][]string
	// classes by module name and class name
	classes map[string]map[string]*classInfo
	// names of every module in the current run
	modules map[string]bool

	diagnostics []Diagnostic
	inferred    map[string]map[string]string

	// state of the module being checked:
	module       *ast.Module
	env          *TypeEnv
	sigs         map[string][]types.Scheme
	defCounts    map[string]int
	sinceCompact int
	// instance definitions and member schemes of the current module
	instanceDefs    []instanceDef
	instanceSchemes map[string][]types.Scheme
}

// Create a checker. Invalid options are replaced by defaults.
func NewChecker(opts Options) *Checker {
	if opts.Validate() != nil {
		opts = DefaultOptions()
	}
	if opts.CompactInterval == 0 {
		opts.CompactInterval = 1
	}
	if opts.OverloadTieBreak == "" {
		opts.OverloadTieBreak = TieBreakError
	}
	return &Checker{
		opts: opts,
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Set the logger used for debug and timing output.
func (c *Checker) SetLogger(log *slog.Logger) {
	if log != nil {
		c.log = log
	}
}

// Get the underlying type of a branded type declared in the last run.
func (c *Checker) Brand(name string) (types.Type, bool) {
	t, ok := c.brands[name]
	return t, ok
}

func (c *Checker) reset() {
	c.ctx.Reset()
	c.ctx.Init()
	c.kinds = make(map[string]types.Kind, 32)
	c.adts = make(map[string][]string, 16)
	c.brands = make(map[string]types.Type)
	c.domains = make(map[string]map[string]*types.Domain)
	c.exports = make(map[string]map[string][]types.Scheme)
	c.domainExports = make(map[string]map[string][]string)
	c.classes = make(map[string]map[string]*classInfo)
	c.modules = make(map[string]bool)
	c.diagnostics = nil
	c.inferred = make(map[string]map[string]string)
	c.module, c.env, c.sigs, c.defCounts, c.sinceCompact = nil, nil, nil, nil, 0
	c.instanceDefs, c.instanceSchemes = nil, nil
	c.prelude = c.newPrelude()
}

// Check a set of modules. Modules are checked in dependency order; every definition of
// every module is checked, regardless of errors in other definitions.
func (c *Checker) Check(modules []*ast.Module) *Result {
	c.reset()
	for _, m := range modules {
		c.modules[m.Name.Name] = true
	}
	ordered := orderModules(modules)
	c.registerTypes(ordered)
	for _, m := range ordered {
		c.checkModule(m)
	}
	result := &Result{Diagnostics: c.diagnostics, Types: c.inferred}
	c.diagnostics, c.inferred = nil, nil
	return result
}

func (c *Checker) checkModule(m *ast.Module) {
	start := time.Now()
	name := m.Name.Name
	c.module = m
	c.env = NewTypeEnv(c.prelude)
	c.sinceCompact = 0

	c.registerConstructors(m)
	c.sigs = c.collectTypeSigs(m)
	c.collectClasses(m)
	c.registerImports(m)
	c.registerInstances(m)
	c.registerDefs(m)

	c.defCounts = make(map[string]int)
	forEachDef(m, func(def *ast.Def, _ *ast.DomainDecl) { c.defCounts[def.Name.Name]++ })
	seen := make(map[string]int)
	forEachDef(m, func(def *ast.Def, domain *ast.DomainDecl) {
		origin := &types.SchemeOrigin{Module: name}
		if domain != nil {
			origin.Domain = domain.Name.Name
		}
		c.checkDef(def, origin, seen[def.Name.Name])
		seen[def.Name.Name]++
	})
	c.checkInstanceDefs()

	c.inferred[name] = c.renderLocalTypes(m)
	c.collectExports(m)
	c.log.Debug("checked module",
		"module", name,
		"definitions", len(seen),
		"substitution", c.ctx.Subst.Len(),
		"elapsed", time.Since(start))
}

// Call f for every definition of a module, including definitions within domains, in
// declaration order.
func forEachDef(m *ast.Module, f func(def *ast.Def, domain *ast.DomainDecl)) {
	for _, item := range m.Items {
		switch item := item.(type) {
		case *ast.Def:
			f(item, nil)
		case *ast.DomainDecl:
			for _, member := range item.Items {
				if def, ok := member.(*ast.Def); ok {
					f(def, item)
				}
			}
		}
	}
}

func (c *Checker) checkDef(def *ast.Def, origin *types.SchemeOrigin, index int) {
	var start time.Time
	if c.opts.SlowDefThreshold > 0 {
		start = time.Now()
	}
	name := def.Name.Name
	expr := def.Expr
	if len(def.Params) > 0 {
		expr = &ast.Lambda{Params: def.Params, Body: def.Expr, Loc: def.Loc}
	}

	var err error
	switch sigs := c.sigs[name]; len(sigs) {
	case 0:
		err = c.checkUnsigned(name, expr, def.Loc, origin)
	case 1:
		err = c.checkExpr(expr, c.ctx.Instantiate(sigs[0]), c.env)
	default:
		err = c.checkOverloadedDef(name, expr, sigs, index)
	}

	if err != nil {
		c.report(err)
		if len(c.sigs[name]) == 0 {
			c.env.Insert(name, types.Mono(c.ctx.Fresh()).WithOrigin(origin))
		}
	}

	if c.opts.SlowDefThreshold > 0 {
		if elapsed := time.Since(start); elapsed >= c.opts.SlowDefThreshold {
			c.log.Debug("slow definition",
				"module", c.module.Name.Name,
				"name", name,
				"elapsed", elapsed)
		}
	}
	c.afterDef()
}

// Infer the type of a definition without a signature, and generalize it against the module
// environment. The definition's placeholder binding is replaced by the generalized scheme.
func (c *Checker) checkUnsigned(name string, expr ast.Expr, span ast.Span, origin *types.SchemeOrigin) error {
	var placeholder types.Type
	if b, ok := c.env.LookupLocal(name); ok {
		if s, ok := b.Scheme(); ok {
			placeholder = c.ctx.Instantiate(s)
		}
	}
	t, err := c.infer(expr, c.env)
	if err != nil {
		return err
	}
	if placeholder != nil {
		if err := c.unify(t, placeholder, span); err != nil {
			return err
		}
	}
	s := c.ctx.Generalize(t, c.env.FreeVars(&c.ctx, name)).WithOrigin(origin)
	c.env.Insert(name, s)
	return nil
}

// Check a definition whose name has several signatures. When the module contains one
// definition per signature, the i-th definition is checked against the i-th signature;
// otherwise the first signature which accepts the definition is used.
func (c *Checker) checkOverloadedDef(name string, expr ast.Expr, sigs []types.Scheme, index int) error {
	if c.defCounts[name] == len(sigs) && index < len(sigs) {
		return c.checkExpr(expr, c.ctx.Instantiate(sigs[index]), c.env)
	}
	var firstErr error
	for _, s := range sigs {
		txn, mark := c.ctx.NewUnifyTxn(), len(c.diagnostics)
		err := c.checkExpr(expr, c.ctx.Instantiate(s), c.env)
		if err == nil {
			c.ctx.Commit(txn)
			return nil
		}
		c.ctx.Rollback(txn)
		c.diagnostics = c.diagnostics[:mark]
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Render the types of every definition and signature of a module from the module
// environment, once every definition has been checked. A definition which failed to check
// renders its fallback type.
func (c *Checker) renderLocalTypes(m *ast.Module) map[string]string {
	rendered := make(map[string]string, len(c.sigs))
	render := func(name string) {
		if _, done := rendered[name]; done {
			return
		}
		b, ok := c.env.LookupLocal(name)
		if !ok {
			return
		}
		candidates := b.Candidates()
		parts := make([]string, len(candidates))
		for i, s := range candidates {
			parts[i] = c.schemeString(s)
		}
		rendered[name] = strings.Join(parts, " | ")
	}
	for name := range c.sigs {
		render(name)
	}
	for _, name := range c.instanceMembers() {
		render(name)
	}
	forEachDef(m, func(def *ast.Def, _ *ast.DomainDecl) { render(def.Name.Name) })
	return rendered
}

func (c *Checker) afterDef() {
	if !c.opts.CompactBetweenDefs {
		return
	}
	c.sinceCompact++
	if c.sinceCompact < c.opts.CompactInterval {
		return
	}
	c.sinceCompact = 0
	before := c.ctx.Subst.Len()
	removed := c.ctx.Compact(c.compactionRoots())
	c.log.Debug("compacted substitution",
		"module", c.module.Name.Name,
		"before", before,
		"removed", removed)
}

// Every type which may still be consulted after the current definition: schemes in the
// module environment, signatures, instance members, exports, alias bodies, branded types and
// domain carriers.
func (c *Checker) compactionRoots() []types.Type {
	var roots []types.Type
	c.env.RangeSchemes(func(_ string, s types.Scheme) bool {
		roots = append(roots, s.Type)
		return true
	})
	for _, ss := range c.sigs {
		for _, s := range ss {
			roots = append(roots, s.Type)
		}
	}
	for _, exports := range c.exports {
		for _, ss := range exports {
			for _, s := range ss {
				roots = append(roots, s.Type)
			}
		}
	}
	for _, ss := range c.instanceSchemes {
		for _, s := range ss {
			roots = append(roots, s.Type)
		}
	}
	for _, alias := range c.ctx.Aliases {
		roots = append(roots, alias.Body)
	}
	for _, t := range c.brands {
		roots = append(roots, t)
	}
	for _, domains := range c.domains {
		for _, d := range domains {
			if d.Carrier != nil {
				roots = append(roots, d.Carrier)
			}
		}
	}
	return roots
}

func (c *Checker) schemeString(s types.Scheme) string {
	return c.ctx.TypeStrings(s.Type)[0]
}

func (c *Checker) emit(d Diagnostic) {
	if c.module != nil {
		d.Module, d.Path = c.module.Name.Name, c.module.Path
	}
	c.diagnostics = append(c.diagnostics, d)
}

func (c *Checker) errorAt(code string, span ast.Span, message string) {
	c.emit(Diagnostic{Code: code, Severity: SeverityError, Message: message, Span: span})
}

func (c *Checker) warnAt(code string, span ast.Span, message string) {
	c.emit(Diagnostic{Code: code, Severity: SeverityWarning, Message: message, Span: span})
}

func (c *Checker) report(err error) {
	te, ok := err.(*typeError)
	if !ok {
		te = &typeError{Code: CodeTypeMismatch, Message: err.Error()}
	}
	c.emit(Diagnostic{
		Code:     te.Code,
		Severity: SeverityError,
		Message:  te.Message,
		Span:     te.Span,
		Expected: te.Expected,
		Found:    te.Found,
	})
}

func newTypeError(code string, span ast.Span, message string) *typeError {
	return &typeError{Code: code, Message: message, Span: span}
}

// Unify a found type with an expected type, converting failures into type errors at span.
func (c *Checker) unify(found, expected types.Type, span ast.Span) error {
	err := c.ctx.Unify(found, expected)
	if err == nil {
		return nil
	}
	return c.unifyError(err, span)
}

func (c *Checker) unifyError(err error, span ast.Span) *typeError {
	uerr, ok := err.(*typeutil.UnifyError)
	if !ok {
		return newTypeError(CodeTypeMismatch, span, err.Error())
	}
	names := c.ctx.TypeStrings(uerr.Expected, uerr.Found)
	te := &typeError{Span: span, Expected: names[0], Found: names[1]}
	switch uerr.Kind {
	case typeutil.OccursCheck:
		te.Code = CodeOccursCheck
	case typeutil.MissingField:
		te.Code = CodeMissingField
	default:
		te.Code = CodeTypeMismatch
	}
	te.Message = uerr.Error() + ": expected " + te.Expected + ", found " + te.Found
	return te
}
