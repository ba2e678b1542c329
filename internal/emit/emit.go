// Package emit produces wire-DSP source text from IR node graphs.
//
// Precedence is threaded through the recursion: a sub-expression is
// parenthesized iff its operator binds looser than its context demands, so
// the output carries no redundant parentheses.
package emit

import (
	"fmt"
	"strconv"

	"wirec/internal/ir"
)

// Expr renders a single node at the given ambient precedence. Ambient 0
// never wraps the outermost expression.
func Expr(n *ir.Node, ambient int) string {
	e := &emitter{w: NewWriter(0)}
	e.expr(n, ambient)
	return e.w.String()
}

type emitter struct {
	w      *Writer
	pretty bool
	names  map[*ir.Node]string
}

// precedence context used inside call argument lists: parallel composition
// must be wrapped there because ',' separates arguments.
const argPrec = 2

func (e *emitter) expr(n *ir.Node, ambient int) {
	if name, ok := e.names[n]; ok {
		e.w.WriteString(name)
		return
	}

	info, ok := ir.Info(n.Kind())
	if !ok {
		panic(fmt.Sprintf("emit: unknown node kind %q", n.Kind()))
	}

	switch n.Kind() {
	case ir.KindConst:
		e.w.WriteString(n.Arg(0).Text())
		return
	case ir.KindRef:
		e.w.WriteString(n.Arg(0).Str)
		return
	case ir.KindWire, ir.KindCut:
		e.w.WriteString(info.Wire)
		return
	}

	if info.Operator && n.NumInputs() == 2 {
		e.binary(n, info, ambient)
		return
	}

	e.call(n, info)
}

// binary renders an infix operator node, applying the scalar-commutation
// rule to multiplies and divides.
func (e *emitter) binary(n *ir.Node, info ir.OpInfo, ambient int) {
	l, r := n.Input(0), n.Input(1)

	if scalar, signal, ok := commutedOperands(n); ok {
		// canonical idiomatic form: signal : *(scalar), never the reverse
		e.wrapped(ambient > 2, info, func() {
			e.expr(signal, 3)
			e.sep(":")
			e.w.WriteString(info.Wire)
			e.w.WriteString("(")
			e.expr(scalar, 0)
			e.w.WriteString(")")
		})
		return
	}

	leftPrec, rightPrec := info.Prec, info.Prec+1
	if info.RightAssoc {
		leftPrec, rightPrec = info.Prec+1, info.Prec
	}

	e.wrapped(info.Prec < ambient, info, func() {
		e.expr(l, leftPrec)
		e.sep(info.Wire)
		e.expr(r, rightPrec)
	})
}

// commutedOperands classifies a mul/div node for scalar commutation.
// Division commutes only when the scalar is the divisor; a scalar numerator
// keeps its infix form since the operand order is semantically load-bearing.
func commutedOperands(n *ir.Node) (scalar, signal *ir.Node, ok bool) {
	l, r := n.Input(0), n.Input(1)
	ls, rs := ir.IsScalar(l), ir.IsScalar(r)
	switch n.Kind() {
	case ir.KindMul:
		if ls && !rs {
			return l, r, true
		}
		if rs && !ls {
			return r, l, true
		}
	case ir.KindDiv:
		if rs && !ls {
			return r, l, true
		}
	}
	return nil, nil, false
}

// sep writes an operator separator: a single line in compact mode, a line
// break before composition operators in pretty mode.
func (e *emitter) sep(op string) {
	if e.pretty && isCompositionOp(op) {
		e.w.Newline()
		e.w.WriteString(op)
		e.w.WriteString(" ")
		return
	}
	e.w.WriteString(" ")
	e.w.WriteString(op)
	e.w.WriteString(" ")
}

func isCompositionOp(op string) bool {
	switch op {
	case ",", ":", "<:", ":>", "~":
		return true
	default:
		return false
	}
}

// wrapped runs body inside parentheses when wrap is set. Pretty mode moves
// wrapped composition bodies onto their own indented lines.
func (e *emitter) wrapped(wrap bool, info ir.OpInfo, body func()) {
	if !wrap {
		body()
		return
	}
	if e.pretty && info.Operator && info.Prec <= 4 {
		e.w.WriteString("(")
		e.w.Newline()
		e.w.Indent()
		body()
		e.w.Dedent()
		e.w.Newline()
		e.w.WriteString(")")
		return
	}
	e.w.WriteString("(")
	body()
	e.w.WriteString(")")
}

// call renders library calls, primitives, and UI nodes.
func (e *emitter) call(n *ir.Node, info ir.OpInfo) {
	switch n.Kind() {
	case ir.KindHSlider, ir.KindVSlider, ir.KindNEntry:
		e.w.WriteString(info.Wire)
		e.w.WriteString("(")
		e.w.WriteString(strconv.Quote(n.Arg(0).Str))
		for i := 1; i < n.NumArgs(); i++ {
			e.w.WriteString(", ")
			e.w.WriteString(n.Arg(i).Text())
		}
		e.w.WriteString(")")
		return

	case ir.KindButton, ir.KindCheckbox:
		e.w.WriteString(info.Wire)
		e.w.WriteString("(")
		e.w.WriteString(strconv.Quote(n.Arg(0).Str))
		e.w.WriteString(")")
		return

	case ir.KindHGroup, ir.KindVGroup, ir.KindTGroup:
		e.w.WriteString(info.Wire)
		e.w.WriteString("(")
		e.w.WriteString(strconv.Quote(n.Arg(0).Str))
		e.w.WriteString(", ")
		e.expr(n.Input(0), 0)
		e.w.WriteString(")")
		return
	}

	e.w.WriteString(info.Wire)
	if n.NumInputs() == 0 && n.NumArgs() == 0 {
		// zero-input primitives such as no.noise stand alone
		return
	}
	e.w.WriteString("(")
	for i := 0; i < n.NumArgs(); i++ {
		if i > 0 {
			e.w.WriteString(", ")
		}
		e.w.WriteString(n.Arg(i).Text())
	}
	for i := 0; i < n.NumInputs(); i++ {
		if i > 0 || n.NumArgs() > 0 {
			e.w.WriteString(", ")
		}
		e.expr(n.Input(i), argPrec)
	}
	e.w.WriteString(")")
}
