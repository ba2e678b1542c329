package parser

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"wirec/internal/ast"
	"wirec/internal/diag"
	"wirec/internal/source"
)

func parseSource(t *testing.T, src string) (*ast.Program, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.dsp", []byte(src)))
	return Parse(file, 64)
}

// parseOneExpr parses `process = <src>;` and returns the body.
func parseOneExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	prog, bag := parseSource(t, "process = "+src+";")
	require.False(t, bag.HasErrors(), "unexpected diagnostics: %v", bag.Items())
	require.Len(t, prog.Items, 1)
	def, ok := prog.Items[0].(*ast.Definition)
	require.True(t, ok)
	return def.Body
}

// sexpr renders the expression shape for compact comparisons.
func sexpr(e ast.Expr) string {
	switch x := e.(type) {
	case *ast.IntLit:
		return x.Text
	case *ast.FloatLit:
		return x.Text
	case *ast.StringLit:
		return strconv.Quote(x.Value)
	case *ast.Wire:
		return "_"
	case *ast.Cut:
		return "!"
	case *ast.Ident:
		return x.Name
	case *ast.QualifiedName:
		return x.Name()
	case *ast.BinaryExpr:
		return "(" + x.Op.String() + " " + sexpr(x.L) + " " + sexpr(x.R) + ")"
	case *ast.UnaryExpr:
		return "(neg " + sexpr(x.X) + ")"
	case *ast.Call:
		return "(call " + x.Name + sexprList(x.Args) + ")"
	case *ast.Paren:
		return "(paren " + sexpr(x.X) + ")"
	case *ast.Prime:
		return "(prime " + sexpr(x.X) + ")"
	case *ast.Access:
		return "(at " + sexpr(x.X) + " " + sexpr(x.Index) + ")"
	case *ast.UIElement:
		if x.Init == nil {
			return fmt.Sprintf("(widget%d %q)", x.Kind, x.Label)
		}
		return fmt.Sprintf("(widget%d %q %s %s %s %s)", x.Kind, x.Label,
			sexpr(x.Init), sexpr(x.Min), sexpr(x.Max), sexpr(x.Step))
	case *ast.UIGroup:
		return fmt.Sprintf("(group%d %q %s)", x.Kind, x.Label, sexpr(x.Content))
	case *ast.Iteration:
		return fmt.Sprintf("(iter%d %s %s %s)", x.Kind, x.Var, sexpr(x.Count), sexpr(x.Body))
	case *ast.Lambda:
		return "(lambda (" + strings.Join(x.Params, " ") + ") " + sexpr(x.Body) + ")"
	case *ast.Waveform:
		return "(waveform" + sexprList(x.Values) + ")"
	case *ast.Table:
		return fmt.Sprintf("(table%d%s)", x.Kind, sexprList(x.Args))
	case *ast.Route:
		return "(route " + sexpr(x.Ins) + " " + sexpr(x.Outs) + sexprList(x.Pairs) + ")"
	case *ast.With:
		out := "(with " + sexpr(x.X)
		for _, l := range x.Locals {
			out += " (def " + l.Name + " " + sexpr(l.Body) + ")"
		}
		return out + ")"
	case *ast.Letrec:
		out := "(letrec " + sexpr(x.X)
		for _, d := range x.Defs {
			marker := ""
			if d.Next {
				marker = "'"
			}
			out += " (" + marker + d.Name + " " + sexpr(d.X) + ")"
		}
		return out + ")"
	case *ast.CaseExpr:
		out := "(case"
		for _, b := range x.Branches {
			out += " (" + sexpr(b.Pattern) + " => " + sexpr(b.Result) + ")"
		}
		return out + ")"
	default:
		return fmt.Sprintf("?%T", e)
	}
}

func sexprList(exprs []ast.Expr) string {
	out := ""
	for _, e := range exprs {
		out += " " + sexpr(e)
	}
	return out
}

func TestParse_Precedence(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"a , b : c", "(, a (: b c))"},
		{"a : b , c", "(, (: a b) c)"},
		{"a : b : c", "(: a (: b c))"}, // sequential is right-associative
		{"a <: b :> c", "(:> (<: a b) c)"},
		{"a : b <: c", "(: a (<: b c))"},
		{"a : b ~ c", "(: a (~ b c))"},
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"2 ^ 3 ^ 4", "(^ 2 (^ 3 4))"}, // power is right-associative
		{"a @ 5 + 1", "(+ (@ a 5) 1)"},
		{"a << 2 + 1", "(<< a (+ 2 1))"},
		{"a == b && c != d", "(&& (== a b) (!= c d))"},
		{"a && b || c", "(|| (&& a b) c)"},
		{"x + 1 : y", "(: (+ x 1) y)"},
		{"(a , b) : c", "(: (paren (, a b)) c)"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			require.Equal(t, tt.want, sexpr(parseOneExpr(t, tt.src)))
		})
	}
}

func TestParse_UnaryMinus(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"-x", "(neg x)"},
		{"--x", "(neg (neg x))"},
		{"-x * 2", "(* (neg x) 2)"},
		// '-' directly before '(' is the prefix subtraction section
		{"-(3)", "(call - 3)"},
		{"a : -(0.1)", "(: a (call - 0.1))"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			require.Equal(t, tt.want, sexpr(parseOneExpr(t, tt.src)))
		})
	}
}

func TestParse_OperatorSections(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"*(0.5)", "(call * 0.5)"},
		{"+(1)", "(call + 1)"},
		{"@(100)", "(call @ 100)"},
		{"os.osc(440) : *(0.5)", "(: (call os.osc 440) (call * 0.5))"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			require.Equal(t, tt.want, sexpr(parseOneExpr(t, tt.src)))
		})
	}
}

func TestParse_PostfixChain(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"x'", "(prime x)"},
		{"x''", "(prime (prime x))"},
		{"x[3]", "(at x 3)"},
		{"a.b.c", "a.b.c"},
		{"os.osc(440)", "(call os.osc 440)"},
		{"os.osc(440)'", "(prime (call os.osc 440))"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			require.Equal(t, tt.want, sexpr(parseOneExpr(t, tt.src)))
		})
	}
}

func TestParse_Widgets(t *testing.T) {
	got := parseOneExpr(t, `hslider("freq", 440, 50, 1000, 1)`)
	require.Equal(t, `(widget0 "freq" 440 50 1000 1)`, sexpr(got))

	// commas inside nested call arguments must not end a field
	got = parseOneExpr(t, `vslider("gain", ba.take(1, x), 0, 1, 0.01)`)
	require.Equal(t, `(widget1 "gain" (call ba.take 1 x) 0 1 0.01)`, sexpr(got))

	got = parseOneExpr(t, `button("gate")`)
	require.Equal(t, `(widget3 "gate")`, sexpr(got))

	got = parseOneExpr(t, `hgroup("top", a : b)`)
	require.Equal(t, `(group0 "top" (: a b))`, sexpr(got))
}

func TestParse_Forms(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"par(i, 4, _)", "(iter0 i 4 _)"},
		{"sum(k, 8, osc(k))", "(iter2 k 8 (call osc k))"},
		{`\(x, y).(x + y)`, "(lambda (x y) (+ x y))"},
		{"waveform{0, 1, 0, -1}", "(waveform 0 1 0 (neg 1))"},
		{"rdtable(64, w, idx)", "(table0 64 w idx)"},
		{"route(2, 2, 1, 2, 2, 1)", "(route 2 2 1 2 2 1)"},
		{"case { (0) => 1; (n) => n; }", "(case (0 => 1) (n => n))"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			require.Equal(t, tt.want, sexpr(parseOneExpr(t, tt.src)))
		})
	}
}

func TestParse_Letrec(t *testing.T) {
	got := parseOneExpr(t, "_ letrec { 'x = x + 1; y = 2; }")
	require.Equal(t, "(letrec _ ('x (+ x 1)) (y 2))", sexpr(got))
}

func TestParse_Items(t *testing.T) {
	prog, bag := parseSource(t, `
import("stdfaust.lib");
declare author "someone";
gain = 0.5;
f(x) = x * 2;
fact(0) = 1;
process = f(gain) with { g = 2; };
`)
	require.False(t, bag.HasErrors(), "unexpected diagnostics: %v", bag.Items())
	require.Len(t, prog.Items, 6)

	imp := prog.Items[0].(*ast.Import)
	require.Equal(t, "stdfaust.lib", imp.Path)

	decl := prog.Items[1].(*ast.Declare)
	require.Equal(t, "author", decl.Key)
	require.Equal(t, "someone", decl.Value)

	gain := prog.Items[2].(*ast.Definition)
	require.True(t, gain.IsValue())

	f := prog.Items[3].(*ast.Definition)
	require.Len(t, f.Params, 1)
	require.False(t, f.Params[0].IsInt)

	fact := prog.Items[4].(*ast.Definition)
	require.True(t, fact.Params[0].IsInt)
	require.EqualValues(t, 0, fact.Params[0].IntVal)

	proc := prog.Items[5].(*ast.Definition)
	require.Equal(t, "(with (call f gain) (def g 2))", sexpr(proc.Body))
}

func TestParse_ErrorRecoveryAtStatementBoundary(t *testing.T) {
	prog, bag := parseSource(t, `
broken = ;
good = 1;
also_broken = @;
fine = 2;
`)
	require.True(t, bag.HasErrors())

	var names []string
	for _, it := range prog.Items {
		names = append(names, it.(*ast.Definition).Name)
	}
	require.Equal(t, []string{"good", "fine"}, names)
}

func TestParse_DiagnosticPositions(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.dsp", []byte("process = 1 +;")))
	_, bag := Parse(file, 16)
	require.True(t, bag.HasErrors())

	pos := fs.Position(bag.Items()[0].Primary)
	require.EqualValues(t, 1, pos.Line)
	require.EqualValues(t, 14, pos.Col)
}
