package gen

import (
	"fmt"
	"strconv"
	"strings"

	"wirec/internal/ast"
	"wirec/internal/diag"
	"wirec/internal/libmap"
)

// Host-side operator precedence, mirroring Python so the emitted text parses
// the way it reads: `a >> b | c` groups the sequential chain first.
const (
	precLowest = 0
	precPar    = 1 // |
	precSeq    = 2 // >>
	precAdd    = 3 // + -
	precMul    = 4 // * / %
	precUnary  = 5
	precPow    = 6 // **
)

// expr renders one expression. The result is parenthesized when the
// expression's own operator binds looser than ambient demands.
func (g *Generator) expr(e ast.Expr, ambient int) string {
	switch x := e.(type) {
	case *ast.IntLit:
		return x.Text
	case *ast.FloatLit:
		return x.Text
	case *ast.StringLit:
		return strconv.Quote(x.Value)
	case *ast.Wire:
		return "wire()"
	case *ast.Cut:
		return "cut()"
	case *ast.Ident:
		return g.ident(x)
	case *ast.QualifiedName:
		return g.qualified(x)
	case *ast.BinaryExpr:
		return g.binary(x, ambient)
	case *ast.UnaryExpr:
		return wrapIf(precUnary < ambient, "-"+g.expr(x.X, precUnary))
	case *ast.Call:
		return g.call(x, ambient)
	case *ast.UIElement:
		return g.uiElement(x)
	case *ast.UIGroup:
		return g.uiGroup(x)
	case *ast.Iteration:
		return g.iteration(x, ambient)
	case *ast.Lambda:
		return g.lambda(x.Params, x.Body, ambient)
	case *ast.Waveform:
		return "waveform(" + g.exprList(x.Values) + ")"
	case *ast.Table:
		name := "rdtable"
		if x.Kind == ast.TableReadWrite {
			name = "rwtable"
		}
		return name + "(" + g.exprList(x.Args) + ")"
	case *ast.Route:
		args := []string{g.expr(x.Ins, precLowest), g.expr(x.Outs, precLowest)}
		for _, p := range x.Pairs {
			args = append(args, g.expr(p, precLowest))
		}
		return "route(" + strings.Join(args, ", ") + ")"
	case *ast.Prime:
		return "mem(" + g.expr(x.X, precLowest) + ")"
	case *ast.Access:
		return "at(" + g.expr(x.X, precLowest) + ", " + g.expr(x.Index, precLowest) + ")"
	case *ast.Paren:
		return g.expr(x.X, ambient)
	case *ast.With:
		return g.inlineWith(x, ambient)
	case *ast.Letrec:
		// true per-sample recursive state has no builder equivalent
		return g.raw(x.Span(), diag.GenLetrecUnsupported,
			"letrec has no host-DSL equivalent; passed through verbatim")
	case *ast.CaseExpr:
		binder := caseBinder(x)
		return wrapIf(ambient > precLowest, "lambda "+binder+": "+g.lowerCase(x, binder))
	default:
		panic(fmt.Sprintf("gen: unknown expression variant %T", e))
	}
}

func wrapIf(wrap bool, s string) string {
	if wrap {
		return "(" + s + ")"
	}
	return s
}

// operand renders a direct operand of a composition operator. Bare numeric
// literals are wrapped in n(...) there so the host language cannot read the
// composition operator as its own numeric operator.
func (g *Generator) operand(e ast.Expr, ambient int) string {
	if isNumericLit(e) {
		return "n(" + g.expr(e, precLowest) + ")"
	}
	return g.expr(e, ambient)
}

func isNumericLit(e ast.Expr) bool {
	switch x := e.(type) {
	case *ast.IntLit, *ast.FloatLit:
		return true
	case *ast.UnaryExpr:
		return isNumericLit(x.X)
	case *ast.Paren:
		return isNumericLit(x.X)
	default:
		return false
	}
}

func (g *Generator) binary(x *ast.BinaryExpr, ambient int) string {
	switch x.Op {
	case ast.OpSeq:
		// a sequential into a one-argument multiply/divide section is the
		// host language's native scaling operator
		if op, arg, ok := scaleSection(x.R); ok {
			s := g.expr(x.L, precMul) + " " + op + " " + g.expr(arg, precMul+1)
			return wrapIf(precMul < ambient, s)
		}
		s := g.operand(x.L, precSeq) + " >> " + g.operand(x.R, precSeq+1)
		return wrapIf(precSeq < ambient, s)
	case ast.OpPar:
		s := g.operand(x.L, precPar) + " | " + g.operand(x.R, precPar+1)
		return wrapIf(precPar < ambient, s)
	case ast.OpSplit:
		return "split(" + g.operand(x.L, precLowest) + ", " + g.operand(x.R, precLowest) + ")"
	case ast.OpMerge:
		return "merge(" + g.operand(x.L, precLowest) + ", " + g.operand(x.R, precLowest) + ")"
	case ast.OpRec:
		return "rec(" + g.operand(x.L, precLowest) + ", " + g.operand(x.R, precLowest) + ")"

	case ast.OpAdd, ast.OpSub:
		s := g.expr(x.L, precAdd) + " " + x.Op.String() + " " + g.expr(x.R, precAdd+1)
		return wrapIf(precAdd < ambient, s)
	case ast.OpMul, ast.OpDiv, ast.OpMod:
		s := g.expr(x.L, precMul) + " " + x.Op.String() + " " + g.expr(x.R, precMul+1)
		return wrapIf(precMul < ambient, s)
	case ast.OpPow:
		s := g.expr(x.L, precPow+1) + " ** " + g.expr(x.R, precPow)
		return wrapIf(precPow < ambient, s)
	case ast.OpDelay:
		return "delay(" + g.expr(x.L, precLowest) + ", " + g.expr(x.R, precLowest) + ")"

	case ast.OpEq, ast.OpNeq, ast.OpLt, ast.OpLe, ast.OpGt, ast.OpGe,
		ast.OpAnd, ast.OpOr, ast.OpBitAnd, ast.OpBitOr, ast.OpShl, ast.OpShr:
		return binaryCallNames[x.Op] + "(" + g.expr(x.L, precLowest) + ", " + g.expr(x.R, precLowest) + ")"
	default:
		panic(fmt.Sprintf("gen: unknown binary operator %v", x.Op))
	}
}

// binaryCallNames covers operators the host language cannot overload safely;
// they render as builder calls.
var binaryCallNames = map[ast.BinOp]string{
	ast.OpEq:     "eq",
	ast.OpNeq:    "neq",
	ast.OpLt:     "lt",
	ast.OpLe:     "le",
	ast.OpGt:     "gt",
	ast.OpGe:     "ge",
	ast.OpAnd:    "land",
	ast.OpOr:     "lor",
	ast.OpBitAnd: "band",
	ast.OpBitOr:  "bor",
	ast.OpShl:    "lshift",
	ast.OpShr:    "rshift",
}

// scaleSection recognizes *(x) and /(x) on the right of a sequential.
func scaleSection(e ast.Expr) (op string, arg ast.Expr, ok bool) {
	if p, isParen := e.(*ast.Paren); isParen {
		return scaleSection(p.X)
	}
	c, isCall := e.(*ast.Call)
	if !isCall || len(c.Args) != 1 {
		return "", nil, false
	}
	if c.Name != "*" && c.Name != "/" {
		return "", nil, false
	}
	return c.Name, c.Args[0], true
}

func (g *Generator) ident(x *ast.Ident) string {
	if g.inScope(x.Name) {
		return x.Name
	}
	if e, ok := libmap.Lookup(x.Name); ok && e.Arity == 0 && !e.Variadic {
		return e.Op + "()"
	}
	if e, ok := libmap.Lookup(x.Name); ok {
		return e.Op
	}
	return x.Name
}

func (g *Generator) qualified(x *ast.QualifiedName) string {
	name := x.Name()
	e, ok := libmap.Lookup(name)
	if !ok {
		return g.raw(x.Sp, diag.GenUnmappedFunction,
			"no builder mapping for "+name+"; passed through verbatim")
	}
	if e.Arity == 0 && !e.Variadic {
		return e.Op + "()"
	}
	return e.Op
}

func (g *Generator) exprList(exprs []ast.Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = g.expr(e, precLowest)
	}
	return strings.Join(parts, ", ")
}

func (g *Generator) uiElement(x *ast.UIElement) string {
	name := [...]string{"hslider", "vslider", "nentry", "button", "checkbox"}[x.Kind]
	switch x.Kind {
	case ast.WidgetButton, ast.WidgetCheckbox:
		return name + "(" + strconv.Quote(x.Label) + ")"
	default:
		return fmt.Sprintf("%s(%s, %s, %s, %s, %s)",
			name, strconv.Quote(x.Label),
			g.expr(x.Init, precLowest), g.expr(x.Min, precLowest),
			g.expr(x.Max, precLowest), g.expr(x.Step, precLowest))
	}
}

func (g *Generator) uiGroup(x *ast.UIGroup) string {
	name := [...]string{"hgroup", "vgroup", "tgroup"}[x.Kind]
	return name + "(" + strconv.Quote(x.Label) + ", " + g.expr(x.Content, precLowest) + ")"
}

func (g *Generator) iteration(x *ast.Iteration, ambient int) string {
	name := [...]string{"par_n", "seq_n", "sum_n", "prod_n"}[x.Kind]
	g.pushScope()
	g.declare(x.Var)
	body := g.expr(x.Body, precLowest)
	g.popScope()
	return name + "(" + g.expr(x.Count, precLowest) + ", lambda " + x.Var + ": " + body + ")"
}

func (g *Generator) lambda(params []string, body ast.Expr, ambient int) string {
	g.pushScope()
	for _, p := range params {
		g.declare(p)
	}
	s := "lambda " + strings.Join(params, ", ") + ": " + g.expr(body, precLowest)
	g.popScope()
	return wrapIf(ambient > precLowest, s)
}

// inlineWith renders a with-clause in expression position as a chain of
// immediately-invoked closures, one per local in dependency order. A default
// argument is evaluated where its closure is created, so each local sees the
// ones bound before it.
func (g *Generator) inlineWith(x *ast.With, ambient int) string {
	locals := sortLocals(x.Locals)

	g.pushScope()
	for _, l := range locals {
		g.declare(l.Name)
	}

	var open strings.Builder
	for _, l := range locals {
		var bound string
		if len(l.Params) == 0 {
			bound = g.expr(l.Body, precLowest)
		} else {
			bound = g.lambda(paramNames(l.Params), l.Body, precPar)
		}
		open.WriteString("(lambda " + l.Name + "=" + bound + ": ")
	}
	out := open.String() + g.expr(x.X, precLowest) + strings.Repeat(")()", len(locals))
	g.popScope()
	return out
}

func paramNames(params []ast.Param) []string {
	out := make([]string, len(params))
	for i, p := range params {
		out[i] = p.Text
	}
	return out
}
