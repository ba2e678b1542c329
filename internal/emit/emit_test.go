package emit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"wirec/internal/ast"
	"wirec/internal/ir"
	"wirec/internal/parser"
	"wirec/internal/source"
)

func osc(freq int64) *ir.Node {
	return ir.New(ir.KindOsc, nil, []*ir.Node{ir.Const(freq)})
}

func wire() *ir.Node { return ir.New(ir.KindWire, nil, nil) }

func TestExpr_MinimalParens(t *testing.T) {
	sig := osc(440)
	tests := []struct {
		name string
		node *ir.Node
		want string
	}{
		{
			"mul binds tighter than add",
			ir.New(ir.KindAdd, nil, []*ir.Node{ir.Const(1), ir.New(ir.KindMul, nil, []*ir.Node{ir.Const(2), ir.Const(3)})}),
			"1 + 2 * 3",
		},
		{
			"add under mul needs parens",
			ir.New(ir.KindMul, nil, []*ir.Node{
				ir.New(ir.KindAdd, nil, []*ir.Node{ir.Const(1), ir.Const(2)}),
				sig,
			}),
			"(1 + 2) * os.osc(440)",
		},
		{
			"seq is right-associative",
			ir.New(ir.KindSeq, nil, []*ir.Node{wire(), ir.New(ir.KindSeq, nil, []*ir.Node{wire(), wire()})}),
			"_ : _ : _",
		},
		{
			"left-nested seq keeps parens",
			ir.New(ir.KindSeq, nil, []*ir.Node{ir.New(ir.KindSeq, nil, []*ir.Node{wire(), wire()}), wire()}),
			"(_ : _) : _",
		},
		{
			"parallel inside a call argument",
			ir.New(ir.KindMin, nil, []*ir.Node{
				ir.New(ir.KindPar, nil, []*ir.Node{ir.Const(1), ir.Const(2)}),
				ir.Const(3),
			}),
			"min((1, 2), 3)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Expr(tt.node, 0))
		})
	}
}

func TestExpr_ScalarCommutation(t *testing.T) {
	sig := osc(440)
	half := ir.ConstF(0.5)

	// both operand orders collapse to the same canonical form
	left := ir.New(ir.KindMul, nil, []*ir.Node{half, sig})
	right := ir.New(ir.KindMul, nil, []*ir.Node{sig, half})
	require.Equal(t, "os.osc(440) : *(0.5)", Expr(left, 0))
	require.Equal(t, Expr(left, 0), Expr(right, 0))
}

func TestExpr_DivisionCommutesOnlyScalarDivisor(t *testing.T) {
	sig := osc(440)

	byScalar := ir.New(ir.KindDiv, nil, []*ir.Node{sig, ir.ConstF(2)})
	require.Equal(t, "os.osc(440) : /(2.0)", Expr(byScalar, 0))

	scalarOverSignal := ir.New(ir.KindDiv, nil, []*ir.Node{ir.ConstF(2), sig})
	require.Equal(t, "2.0 / os.osc(440)", Expr(scalarOverSignal, 0))
}

func TestExpr_ScalarByScalarStaysInfix(t *testing.T) {
	n := ir.New(ir.KindMul, nil, []*ir.Node{ir.Const(2), ir.Const(3)})
	require.Equal(t, "2 * 3", Expr(n, 0))
}

func TestExpr_Primitives(t *testing.T) {
	require.Equal(t, "no.noise", Expr(ir.New(ir.KindNoise, nil, nil), 0))
	require.Equal(t, "_", Expr(wire(), 0))
	require.Equal(t, "!", Expr(ir.New(ir.KindCut, nil, nil), 0))
	require.Equal(t, "mem(_)", Expr(ir.New(ir.KindMem, nil, []*ir.Node{wire()}), 0))
}

func TestExpr_UIElements(t *testing.T) {
	slider := ir.New(ir.KindHSlider, []ir.Arg{
		ir.StringArg("freq"), ir.IntArg(440), ir.IntArg(50), ir.IntArg(1000), ir.IntArg(1),
	}, nil)
	require.Equal(t, `hslider("freq", 440, 50, 1000, 1)`, Expr(slider, 0))

	gate := ir.New(ir.KindButton, []ir.Arg{ir.StringArg("gate")}, nil)
	require.Equal(t, `button("gate")`, Expr(gate, 0))

	group := ir.New(ir.KindHGroup, []ir.Arg{ir.StringArg("top")}, []*ir.Node{
		ir.New(ir.KindSeq, nil, []*ir.Node{wire(), wire()}),
	})
	require.Equal(t, `hgroup("top", _ : _)`, Expr(group, 0))
}

func TestSharedNodes(t *testing.T) {
	shared := osc(440)
	root := ir.New(ir.KindPar, nil, []*ir.Node{
		shared,
		ir.New(ir.KindSeq, nil, []*ir.Node{shared, wire()}),
	})

	got := sharedNodes(root)
	require.Len(t, got, 1)
	require.Same(t, shared, got[0])
}

func TestSharedNodes_TrivialNeverHoisted(t *testing.T) {
	w := wire()
	root := ir.New(ir.KindPar, nil, []*ir.Node{w, w})
	require.Empty(t, sharedNodes(root))
}

func TestSharedNodes_StructuralTwinsAreNotShared(t *testing.T) {
	root := ir.New(ir.KindPar, nil, []*ir.Node{osc(440), osc(440)})
	require.Empty(t, sharedNodes(root))
}

func TestExpr_RoundTripPreservesGraph(t *testing.T) {
	shared := osc(440)
	graphs := []*ir.Node{
		ir.New(ir.KindSeq, nil, []*ir.Node{osc(440), ir.New(ir.KindMul, nil, []*ir.Node{wire(), ir.ConstF(0.5)})}),
		ir.New(ir.KindPar, nil, []*ir.Node{shared, ir.New(ir.KindRec, nil, []*ir.Node{shared, ir.New(ir.KindMem, nil, []*ir.Node{wire()})})}),
		ir.New(ir.KindSplit, nil, []*ir.Node{wire(), ir.New(ir.KindPar, nil, []*ir.Node{wire(), wire()})}),
		ir.New(ir.KindPow, nil, []*ir.Node{ir.Const(2), ir.New(ir.KindPow, nil, []*ir.Node{ir.Const(3), ir.Const(4)})}),
		ir.New(ir.KindDelay, nil, []*ir.Node{wire(), ir.Const(100)}),
		ir.New(ir.KindPan, nil, []*ir.Node{ir.ConstF(0.5), osc(220)}),
		ir.New(ir.KindAdd, nil, []*ir.Node{ir.Const(1), ir.New(ir.KindMul, nil, []*ir.Node{ir.Const(2), ir.Const(3)})}),
	}
	for _, g := range graphs {
		out := Expr(g, 0)
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("rt.dsp", []byte("process = "+out+";")))
		prog, bag := parser.Parse(file, 16)
		require.False(t, bag.HasErrors(), "emitted %q: %v", out, bag.Items())

		relowered := lowerExpr(t, processDefinition(t, prog).Body)
		require.True(t, ir.StructurallyEqual(g, relowered),
			"emitted %q re-lowers to a different graph", out)
	}
}

func processDefinition(t *testing.T, prog *ast.Program) *ast.Definition {
	t.Helper()
	for _, item := range prog.Items {
		if def, ok := item.(*ast.Definition); ok && def.Name == "process" {
			return def
		}
	}
	t.Fatal("no process definition in parsed output")
	return nil
}

var lowerBinKinds = map[ast.BinOp]ir.Kind{
	ast.OpPar:   ir.KindPar,
	ast.OpSeq:   ir.KindSeq,
	ast.OpSplit: ir.KindSplit,
	ast.OpMerge: ir.KindMerge,
	ast.OpRec:   ir.KindRec,
	ast.OpAdd:   ir.KindAdd,
	ast.OpSub:   ir.KindSub,
	ast.OpMul:   ir.KindMul,
	ast.OpDiv:   ir.KindDiv,
	ast.OpMod:   ir.KindMod,
	ast.OpPow:   ir.KindPow,
	ast.OpDelay: ir.KindDelay,
}

var lowerCallKinds = map[string]ir.Kind{
	"os.osc":    ir.KindOsc,
	"mem":       ir.KindMem,
	"sp.panner": ir.KindPan,
}

// lowerExpr rebuilds a node graph from a parsed expression. It covers the
// constructs the round-trip graphs emit, folding the x : *(k) scale-section
// spelling back into the arithmetic node it came from.
func lowerExpr(t *testing.T, e ast.Expr) *ir.Node {
	t.Helper()
	switch v := e.(type) {
	case *ast.IntLit:
		return ir.Const(v.Value)
	case *ast.FloatLit:
		return ir.ConstF(v.Value)
	case *ast.Wire:
		return wire()
	case *ast.Cut:
		return ir.New(ir.KindCut, nil, nil)
	case *ast.Paren:
		return lowerExpr(t, v.X)
	case *ast.BinaryExpr:
		if v.Op == ast.OpSeq {
			if kind, arg, ok := scaleSectionTarget(v.R); ok {
				return ir.New(kind, nil, []*ir.Node{lowerExpr(t, v.L), lowerExpr(t, arg)})
			}
		}
		kind, ok := lowerBinKinds[v.Op]
		require.True(t, ok, "no graph kind for operator %s", v.Op)
		return ir.New(kind, nil, []*ir.Node{lowerExpr(t, v.L), lowerExpr(t, v.R)})
	case *ast.Call:
		kind, ok := lowerCallKinds[v.Name]
		require.True(t, ok, "no graph kind for call %q", v.Name)
		inputs := make([]*ir.Node, len(v.Args))
		for i, a := range v.Args {
			inputs[i] = lowerExpr(t, a)
		}
		return ir.New(kind, nil, inputs)
	default:
		t.Fatalf("round trip produced an unexpected %T", e)
		return nil
	}
}

// scaleSectionTarget recognizes *(k) and /(k) on the right of a sequential.
func scaleSectionTarget(e ast.Expr) (ir.Kind, ast.Expr, bool) {
	call, ok := e.(*ast.Call)
	if !ok || len(call.Args) != 1 {
		return "", nil, false
	}
	switch call.Name {
	case "*":
		return ir.KindMul, call.Args[0], true
	case "/":
		return ir.KindDiv, call.Args[0], true
	}
	return "", nil, false
}

func TestProgram_Header(t *testing.T) {
	root := ir.New(ir.KindMul, nil, []*ir.Node{osc(440), ir.ConstF(0.5)})
	got := Program(root, Options{
		Declares: []Declare{{Key: "author", Value: "someone"}},
	})
	want := "declare author \"someone\";\n" +
		"import(\"stdfaust.lib\");\n" +
		"\n" +
		"process = os.osc(440) : *(0.5);\n"
	require.Equal(t, want, got)
}

func TestProgram_CSE(t *testing.T) {
	shared := osc(440)
	root := ir.New(ir.KindPar, nil, []*ir.Node{
		shared,
		ir.New(ir.KindSeq, nil, []*ir.Node{shared, wire()}),
	})

	got := Program(root, Options{Imports: []string{}, ExtractCSE: true})
	want := "s0 = os.osc(440);\n" +
		"process = s0, s0 : _;\n"
	require.Equal(t, want, got)

	inlined := Program(root, Options{Imports: []string{}})
	require.Equal(t, "process = os.osc(440), os.osc(440) : _;\n", inlined)
}

func TestProgram_Pretty(t *testing.T) {
	root := ir.New(ir.KindSeq, nil, []*ir.Node{
		osc(440),
		ir.New(ir.KindMul, nil, []*ir.Node{wire(), ir.ConstF(0.5)}),
	})
	got := Program(root, Options{Imports: []string{}, Pretty: true})
	want := "process = os.osc(440)\n" +
		"    : _\n" +
		"    : *(0.5);\n"
	require.Equal(t, want, got)
}
