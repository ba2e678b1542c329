package gen

import (
	"strings"

	"wirec/internal/ast"
	"wirec/internal/diag"
	"wirec/internal/libmap"
)

// maxCurried is the deepest partial application rendered with named closure
// parameters; beyond it the call degrades to pass-through.
const maxCurried = 3

// call renders a function application: user-defined calls verbatim, mapped
// library calls through their builder operation, under-applied library calls
// through a synthesized closure.
func (g *Generator) call(x *ast.Call, ambient int) string {
	if g.inScope(x.Name) {
		return x.Name + "(" + g.exprList(x.Args) + ")"
	}

	e, ok := libmap.Lookup(x.Name)
	if !ok {
		return g.raw(x.Sp, diag.GenUnmappedFunction,
			"no builder mapping for "+x.Name+"; passed through verbatim")
	}

	if s, done := g.unitIdiom(e, x); done {
		return s
	}

	if e.Variadic || len(x.Args) >= e.Arity || len(x.Args) == 0 {
		return e.Op + "(" + g.exprList(x.Args) + ")"
	}

	return g.curry(e, x, ambient)
}

// unitIdiom renders scalar conversions whose sole argument is a bare numeric
// literal through the matching unit constructor: db(-6), midi(60), sec(0.5).
func (g *Generator) unitIdiom(e libmap.Entry, x *ast.Call) (string, bool) {
	if e.Unit == "" || len(x.Args) != 1 || !isNumericLit(x.Args[0]) {
		return "", false
	}
	return e.Unit + "(" + g.expr(x.Args[0], precLowest) + ")", true
}

// curry synthesizes a closure over the missing trailing arguments, forwarding
// them after the supplied ones by position.
func (g *Generator) curry(e libmap.Entry, x *ast.Call, ambient int) string {
	missing := e.Arity - len(x.Args)
	if missing > maxCurried {
		return g.raw(x.Sp, diag.GenDeepPartialApplication,
			"partial application leaves more than three arguments open; passed through verbatim")
	}

	params := make([]string, missing)
	for i := range params {
		params[i] = "a" + string(rune('1'+i))
	}

	args := make([]string, 0, e.Arity)
	for _, a := range x.Args {
		args = append(args, g.expr(a, precLowest))
	}
	args = append(args, params...)

	s := "lambda " + strings.Join(params, ", ") + ": " +
		e.Op + "(" + strings.Join(args, ", ") + ")"
	return wrapIf(ambient > precLowest, s)
}
