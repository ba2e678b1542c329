package gen

import (
	"wirec/internal/ast"
	"wirec/internal/diag"
)

// caseBinder picks the variable name a case dispatch binds: the name of the
// default branch's pattern when there is one, otherwise "x".
func caseBinder(c *ast.CaseExpr) string {
	for _, b := range c.Branches {
		if id, ok := b.Pattern.(*ast.Ident); ok {
			return id.Name
		}
	}
	return "x"
}

// lowerCase rewrites a case dispatch into nested binary selects against the
// binder. The first integer pattern tests outermost, so branches keep their
// source evaluation order; the default branch (a variable pattern) sits in
// the innermost else position. Patterns outside the integer/variable subset
// degrade the whole expression to pass-through.
func (g *Generator) lowerCase(c *ast.CaseExpr, binder string) string {
	type intBranch struct {
		value  string
		result ast.Expr
	}
	var ints []intBranch
	var defaultResult ast.Expr
	defaults := 0

	for _, b := range c.Branches {
		switch p := b.Pattern.(type) {
		case *ast.IntLit:
			ints = append(ints, intBranch{value: p.Text, result: b.Result})
		case *ast.Ident:
			defaults++
			defaultResult = b.Result
		default:
			return g.raw(c.Sp, diag.GenCasePatternUnsupported,
				"case pattern is neither an integer nor a variable; passed through verbatim")
		}
	}
	if len(ints) == 0 || defaults > 1 {
		return g.raw(c.Sp, diag.GenCasePatternUnsupported,
			"case needs at least one integer pattern and at most one default; passed through verbatim")
	}

	g.pushScope()
	g.declare(binder)

	// innermost fallback: the default result, or the last integer branch's
	// result when no default exists
	var out string
	if defaultResult != nil {
		out = g.expr(defaultResult, precLowest)
	} else {
		out = g.expr(ints[len(ints)-1].result, precLowest)
		ints = ints[:len(ints)-1]
	}
	for i := len(ints) - 1; i >= 0; i-- {
		out = "sel(eq(" + binder + ", " + ints[i].value + "), " +
			g.expr(ints[i].result, precLowest) + ", " + out + ")"
	}

	g.popScope()
	return out
}

// mergeFamilies groups same-named top-level definitions. A family whose
// members all take exactly one parameter collapses into a single definition
// whose body is a case dispatch, branch order following definition order.
// Mixed-arity families keep only the last member; true multi-argument
// pattern matching stays unsupported and is flagged rather than guessed at.
func (g *Generator) mergeFamilies(items []ast.Item) []ast.Item {
	groups := make(map[string][]*ast.Definition)
	order := make(map[string]int)

	out := make([]ast.Item, 0, len(items))
	for _, it := range items {
		d, ok := it.(*ast.Definition)
		if !ok {
			out = append(out, it)
			continue
		}
		if _, seen := groups[d.Name]; !seen {
			order[d.Name] = len(out)
			out = append(out, nil) // placeholder, filled below
		}
		groups[d.Name] = append(groups[d.Name], d)
	}

	for name, defs := range groups {
		out[order[name]] = g.mergeGroup(name, defs)
	}
	return out
}

func (g *Generator) mergeGroup(name string, defs []*ast.Definition) *ast.Definition {
	if len(defs) == 1 {
		return defs[0]
	}

	for _, d := range defs {
		if len(d.Params) != 1 {
			last := defs[len(defs)-1]
			g.warn(diag.GenPatternFamilyUnsupported, last.Sp,
				"definitions of "+name+" do not all take one parameter; keeping only the last")
			return last
		}
	}

	c := &ast.CaseExpr{Sp: defs[0].Sp}
	for _, d := range defs {
		p := d.Params[0]
		var pattern ast.Expr
		if p.IsInt {
			pattern = &ast.IntLit{Value: p.IntVal, Text: p.Text, Sp: p.Sp}
		} else {
			pattern = &ast.Ident{Name: p.Text, Sp: p.Sp}
		}
		c.Branches = append(c.Branches, ast.CaseBranch{
			Pattern: pattern,
			Result:  d.Body,
			Sp:      d.Sp,
		})
	}

	binder := caseBinder(c)
	return &ast.Definition{
		Name:   name,
		Params: []ast.Param{{Text: binder, Sp: defs[0].Sp}},
		Body:   c,
		Sp:     defs[0].Sp,
	}
}
