// Package ast defines the parsed representation of wire-DSP source.
//
// Nodes are plain tagged variants built once by the parser and never mutated.
// Every node keeps its source span so later stages can slice the original
// text back out, which is how unsupported constructs degrade to verbatim
// pass-through instead of being dropped.
package ast
