package ast

import (
	"wirec/internal/source"
)

// Program is an ordered sequence of top-level statements.
type Program struct {
	Items []Item
}

// Item is a top-level statement: import, declare, or definition.
type Item interface {
	Span() source.Span
	item()
}

// Import is `import("path");`.
type Import struct {
	Path string
	Sp   source.Span
}

// Declare is `declare key "value";`.
type Declare struct {
	Key   string
	Value string
	Sp    source.Span
}

// Definition is `name = body;` or `name(p1, p2) = body;`.
// A parameter may be an integer literal, which makes the definition a member
// of a pattern-matching family.
type Definition struct {
	Name   string
	Params []Param
	Body   Expr
	Sp     source.Span
}

// Param is a definition parameter: an identifier or an integer pattern.
type Param struct {
	Text   string
	IsInt  bool
	IntVal int64
	Sp     source.Span
}

func (i *Import) Span() source.Span     { return i.Sp }
func (d *Declare) Span() source.Span    { return d.Sp }
func (d *Definition) Span() source.Span { return d.Sp }

func (*Import) item()     {}
func (*Declare) item()    {}
func (*Definition) item() {}

// IsValue reports whether the definition binds a plain value (no params).
func (d *Definition) IsValue() bool { return len(d.Params) == 0 }
