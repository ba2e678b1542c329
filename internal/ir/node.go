// Package ir is the graph representation of a DSP processing network.
//
// Nodes are immutable after construction and safe to share: the same *Node
// may be an input of multiple parents. Structural equality is established by
// content fingerprints, never by pointer identity.
package ir

import (
	"fmt"
	"strconv"

	"wirec/internal/source"
)

// Kind names an operation. The catalog of builder functions constructs nodes
// one-to-one from these kinds.
type Kind string

// ArgKind discriminates scalar argument variants.
type ArgKind uint8

const (
	ArgInt ArgKind = iota
	ArgFloat
	ArgString
)

// Arg is one scalar argument of a node.
type Arg struct {
	Kind ArgKind
	Int  int64
	Num  float64
	Str  string
}

func IntArg(v int64) Arg      { return Arg{Kind: ArgInt, Int: v} }
func FloatArg(v float64) Arg  { return Arg{Kind: ArgFloat, Num: v} }
func StringArg(v string) Arg  { return Arg{Kind: ArgString, Str: v} }

// Text renders the argument the way the emitter spells it.
func (a Arg) Text() string {
	switch a.Kind {
	case ArgInt:
		return strconv.FormatInt(a.Int, 10)
	case ArgFloat:
		return formatFloat(a.Num)
	default:
		return strconv.Quote(a.Str)
	}
}

func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	// keep floats visibly float-typed in emitted source
	if !containsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func containsAny(s, chars string) bool {
	for i := 0; i < len(s); i++ {
		for j := 0; j < len(chars); j++ {
			if s[i] == chars[j] {
				return true
			}
		}
	}
	return false
}

// Node is one vertex of the processing graph. Args and Inputs are fixed at
// construction; Channels reflects the declared output arity of Kind given
// the inputs.
type Node struct {
	kind     Kind
	args     []Arg
	inputs   []*Node
	channels int

	fp    source.Digest
	fpSet bool
}

// New constructs a node. Argument and input slices are copied so later
// mutation by the caller cannot reach the node. Unknown kinds panic: an
// unrecognized operation reaching the IR is a programming error.
func New(kind Kind, args []Arg, inputs []*Node) *Node {
	info, ok := registry[kind]
	if !ok {
		panic(fmt.Sprintf("ir: unknown node kind %q", kind))
	}
	n := &Node{
		kind:   kind,
		args:   append([]Arg(nil), args...),
		inputs: append([]*Node(nil), inputs...),
	}
	n.channels = computeChannels(info, n.inputs)
	return n
}

func (n *Node) Kind() Kind      { return n.kind }
func (n *Node) Channels() int   { return n.channels }
func (n *Node) NumArgs() int    { return len(n.args) }
func (n *Node) NumInputs() int  { return len(n.inputs) }
func (n *Node) Arg(i int) Arg   { return n.args[i] }
func (n *Node) Input(i int) *Node { return n.inputs[i] }

// Args returns a copy of the argument list.
func (n *Node) Args() []Arg {
	return append([]Arg(nil), n.args...)
}

// Inputs returns a copy of the input list. The nodes themselves are shared.
func (n *Node) Inputs() []*Node {
	return append([]*Node(nil), n.inputs...)
}

// Const builds an integer constant node.
func Const(v int64) *Node {
	return New(KindConst, []Arg{IntArg(v)}, nil)
}

// ConstF builds a float constant node.
func ConstF(v float64) *Node {
	return New(KindConst, []Arg{FloatArg(v)}, nil)
}
