// Package gen walks a parsed wire-DSP program and emits host-DSL builder
// code: a Python-flavored EDSL where `>>` is sequential composition, `|` is
// parallel composition, and split/merge/rec are named builder calls.
//
// Constructs without a faithful builder equivalent degrade to an escaped
// raw("...") pass-through carrying the original source text, each flagged
// with a warning; only an unknown AST variant aborts generation.
package gen

import (
	"fmt"
	"strconv"
	"strings"

	"wirec/internal/ast"
	"wirec/internal/diag"
	"wirec/internal/source"
)

// Generator holds per-file generation state.
type Generator struct {
	file   *source.File
	bag    *diag.Bag
	buf    strings.Builder
	indent int
	scopes []map[string]struct{}
}

// Generate emits host-DSL text for the program. Diagnostics report
// unsupported constructs that were degraded to pass-through, never hard
// failures: the text result is always usable.
func Generate(file *source.File, prog *ast.Program, maxDiagnostics int) (string, *diag.Bag) {
	g := &Generator{
		file: file,
		bag:  diag.NewBag(maxDiagnostics),
	}

	items := g.mergeFamilies(prog.Items)

	g.pushScope()
	for _, it := range items {
		if d, ok := it.(*ast.Definition); ok {
			g.declare(d.Name)
		}
	}

	g.line("from wirebuild import *")
	g.line("")

	for _, it := range items {
		switch item := it.(type) {
		case *ast.Import:
			g.line("# import(" + strconv.Quote(item.Path) + ")")
		case *ast.Declare:
			g.line("# declare " + item.Key + " " + strconv.Quote(item.Value))
		case *ast.Definition:
			g.definition(item)
		default:
			panic(fmt.Sprintf("gen: unknown top-level item %T", it))
		}
	}

	g.popScope()
	return g.buf.String(), g.bag
}

// definition emits one top-level binding. Parameterized definitions and
// definitions carrying with-locals become def blocks; plain values become
// assignments.
func (g *Generator) definition(d *ast.Definition) {
	body := d.Body
	var locals []*ast.Definition
	if w, ok := body.(*ast.With); ok {
		body = w.X
		locals = sortLocals(w.Locals)
	}

	if len(d.Params) == 0 && len(locals) == 0 {
		g.line(d.Name + " = " + g.expr(body, precLowest))
		return
	}

	g.pushScope()
	params := make([]string, len(d.Params))
	for i, p := range d.Params {
		params[i] = p.Text
		g.declare(p.Text)
	}
	for _, l := range locals {
		g.declare(l.Name)
	}

	g.line("def " + d.Name + "(" + strings.Join(params, ", ") + "):")
	g.indent++
	for _, l := range locals {
		g.local(l)
	}

	// a single-parameter definition whose body is a case dispatch lowers
	// straight onto the parameter instead of through a lambda
	if c, ok := body.(*ast.CaseExpr); ok && len(d.Params) == 1 {
		g.line("return " + g.lowerCase(c, d.Params[0].Text))
	} else {
		g.line("return " + g.expr(body, precLowest))
	}
	g.indent--
	g.popScope()

	if len(d.Params) == 0 {
		// value binding with locals: define, then call once
		g.line(d.Name + " = " + d.Name + "()")
	}
	g.line("")
}

// local emits one with-local inside a def block.
func (g *Generator) local(d *ast.Definition) {
	body := d.Body
	if w, ok := body.(*ast.With); ok {
		// nested with inside a local stays an inline closure chain
		body = w
	}
	if len(d.Params) == 0 {
		g.line(d.Name + " = " + g.expr(body, precLowest))
		return
	}
	g.pushScope()
	params := make([]string, len(d.Params))
	for i, p := range d.Params {
		params[i] = p.Text
		g.declare(p.Text)
	}
	g.line(d.Name + " = lambda " + strings.Join(params, ", ") + ": " + g.expr(body, precLowest))
	g.popScope()
}

func (g *Generator) line(s string) {
	for i := 0; i < g.indent; i++ {
		g.buf.WriteString("    ")
	}
	g.buf.WriteString(s)
	g.buf.WriteByte('\n')
}

func (g *Generator) pushScope() {
	g.scopes = append(g.scopes, make(map[string]struct{}))
}

func (g *Generator) popScope() {
	g.scopes = g.scopes[:len(g.scopes)-1]
}

func (g *Generator) declare(name string) {
	g.scopes[len(g.scopes)-1][name] = struct{}{}
}

func (g *Generator) inScope(name string) bool {
	for i := len(g.scopes) - 1; i >= 0; i-- {
		if _, ok := g.scopes[i][name]; ok {
			return true
		}
	}
	return false
}

// raw records a degradation diagnostic and returns the escaped pass-through
// form carrying the original source text under the span.
func (g *Generator) raw(sp source.Span, code diag.Code, msg string) string {
	g.warn(code, sp, msg)
	return "raw(" + strconv.Quote(g.snippet(sp)) + ")"
}

func (g *Generator) warn(code diag.Code, sp source.Span, msg string) {
	g.bag.Add(diag.New(diag.SevWarning, code, sp, msg))
}

// snippet slices the original source under a span.
func (g *Generator) snippet(sp source.Span) string {
	if int(sp.End) > len(g.file.Content) || sp.Start > sp.End {
		return ""
	}
	return string(g.file.Content[sp.Start:sp.End])
}

// sortLocals orders with-locals so that each local is bound before the
// locals that reference it; forward references in the source then resolve.
// Cyclic groups keep their original order.
func sortLocals(locals []*ast.Definition) []*ast.Definition {
	if len(locals) < 2 {
		return locals
	}

	names := make(map[string]int, len(locals))
	for i, l := range locals {
		names[l.Name] = i
	}

	deps := make([][]int, len(locals))
	for i, l := range locals {
		seen := make(map[int]struct{})
		collectRefs(l.Body, func(name string) {
			j, ok := names[name]
			if !ok || j == i {
				return
			}
			if _, dup := seen[j]; dup {
				return
			}
			seen[j] = struct{}{}
			deps[i] = append(deps[i], j)
		})
	}

	var order []*ast.Definition
	state := make([]uint8, len(locals)) // 0 unvisited, 1 in progress, 2 done
	var visit func(i int)
	visit = func(i int) {
		if state[i] != 0 {
			return
		}
		state[i] = 1
		for _, j := range deps[i] {
			if state[j] == 0 {
				visit(j)
			}
		}
		state[i] = 2
		order = append(order, locals[i])
	}
	for i := range locals {
		visit(i)
	}
	return order
}

// collectRefs calls fn for every identifier and call name referenced in e.
func collectRefs(e ast.Expr, fn func(name string)) {
	switch x := e.(type) {
	case nil:
	case *ast.IntLit, *ast.FloatLit, *ast.StringLit, *ast.Wire, *ast.Cut:
	case *ast.Ident:
		fn(x.Name)
	case *ast.QualifiedName:
		fn(x.Name())
	case *ast.BinaryExpr:
		collectRefs(x.L, fn)
		collectRefs(x.R, fn)
	case *ast.UnaryExpr:
		collectRefs(x.X, fn)
	case *ast.Call:
		fn(x.Name)
		for _, a := range x.Args {
			collectRefs(a, fn)
		}
	case *ast.UIElement:
		collectRefs(x.Init, fn)
		collectRefs(x.Min, fn)
		collectRefs(x.Max, fn)
		collectRefs(x.Step, fn)
	case *ast.UIGroup:
		collectRefs(x.Content, fn)
	case *ast.Iteration:
		collectRefs(x.Count, fn)
		collectRefs(x.Body, fn)
	case *ast.Lambda:
		collectRefs(x.Body, fn)
	case *ast.Waveform:
		for _, v := range x.Values {
			collectRefs(v, fn)
		}
	case *ast.Table:
		for _, a := range x.Args {
			collectRefs(a, fn)
		}
	case *ast.Route:
		collectRefs(x.Ins, fn)
		collectRefs(x.Outs, fn)
		for _, p := range x.Pairs {
			collectRefs(p, fn)
		}
	case *ast.Prime:
		collectRefs(x.X, fn)
	case *ast.Access:
		collectRefs(x.X, fn)
		collectRefs(x.Index, fn)
	case *ast.Paren:
		collectRefs(x.X, fn)
	case *ast.With:
		collectRefs(x.X, fn)
		for _, l := range x.Locals {
			collectRefs(l.Body, fn)
		}
	case *ast.Letrec:
		collectRefs(x.X, fn)
		for _, d := range x.Defs {
			collectRefs(d.X, fn)
		}
	case *ast.CaseExpr:
		for _, b := range x.Branches {
			collectRefs(b.Pattern, fn)
			collectRefs(b.Result, fn)
		}
	}
}
