package ast

import (
	"wirec/internal/source"
)

// Expr is any wire-DSP expression.
type Expr interface {
	Span() source.Span
	expr()
}

// IntLit is an integer literal.
type IntLit struct {
	Value int64
	Text  string
	Sp    source.Span
}

// FloatLit is a decimal or exponent float literal.
type FloatLit struct {
	Value float64
	Text  string
	Sp    source.Span
}

// StringLit is a quoted string literal. Value is the unquoted content.
type StringLit struct {
	Value string
	Sp    source.Span
}

// Wire is the `_` identity primitive.
type Wire struct {
	Sp source.Span
}

// Cut is the `!` signal terminator primitive.
type Cut struct {
	Sp source.Span
}

// Ident is a bare identifier reference.
type Ident struct {
	Name string
	Sp   source.Span
}

// QualifiedName is a dotted namespace path such as os.osc.
type QualifiedName struct {
	Parts []string
	Sp    source.Span
}

// BinaryExpr covers composition, arithmetic, comparison, and bitwise
// operators.
type BinaryExpr struct {
	Op BinOp
	L  Expr
	R  Expr
	Sp source.Span
}

// UnaryExpr is unary negation.
type UnaryExpr struct {
	X  Expr
	Sp source.Span
}

// Call is a function application. Name is the dotted callee path; an
// operator section such as *(0.5) uses the operator spelling as Name.
type Call struct {
	Name string
	Args []Expr
	Sp   source.Span
}

// WidgetKind distinguishes the five UI widget forms.
type WidgetKind uint8

const (
	WidgetHSlider WidgetKind = iota
	WidgetVSlider
	WidgetNEntry
	WidgetButton
	WidgetCheckbox
)

// UIElement is hslider/vslider/nentry (label + 4 numeric sub-expressions) or
// button/checkbox (label only, numeric fields nil).
type UIElement struct {
	Kind  WidgetKind
	Label string
	Init  Expr
	Min   Expr
	Max   Expr
	Step  Expr
	Sp    source.Span
}

// GroupKind distinguishes the three UI group forms.
type GroupKind uint8

const (
	GroupH GroupKind = iota
	GroupV
	GroupT
)

// UIGroup is hgroup/vgroup/tgroup with one content expression.
type UIGroup struct {
	Kind    GroupKind
	Label   string
	Content Expr
	Sp      source.Span
}

// IterKind distinguishes par/seq/sum/prod iteration forms.
type IterKind uint8

const (
	IterPar IterKind = iota
	IterSeq
	IterSum
	IterProd
)

// Iteration is par/seq/sum/prod(var, count, body).
type Iteration struct {
	Kind  IterKind
	Var   string
	Count Expr
	Body  Expr
	Sp    source.Span
}

// Lambda is \(p1, p2).(body).
type Lambda struct {
	Params []string
	Body   Expr
	Sp     source.Span
}

// Waveform is waveform{v, v, ...}.
type Waveform struct {
	Values []Expr
	Sp     source.Span
}

// TableKind distinguishes rdtable from rwtable.
type TableKind uint8

const (
	TableRead TableKind = iota
	TableReadWrite
)

// Table is rdtable(...)/rwtable(...) with generic arity.
type Table struct {
	Kind TableKind
	Args []Expr
	Sp   source.Span
}

// Route is route(ins, outs, (from,to)*).
type Route struct {
	Ins   Expr
	Outs  Expr
	Pairs []Expr
	Sp    source.Span
}

// Prime is the postfix one-sample delay x'.
type Prime struct {
	X  Expr
	Sp source.Span
}

// Access is indexed access x[i].
type Access struct {
	X     Expr
	Index Expr
	Sp    source.Span
}

// Paren preserves explicit grouping from the source.
type Paren struct {
	X  Expr
	Sp source.Span
}

// With attaches block-scoped local definitions: expr with { ... }.
type With struct {
	X      Expr
	Locals []*Definition
	Sp     source.Span
}

// LetrecDef is one binding in a letrec block. Next marks the leading
// apostrophe ("next sample" state variable), which changes semantics and
// must survive round trips textually.
type LetrecDef struct {
	Next bool
	Name string
	X    Expr
	Sp   source.Span
}

// Letrec is the postfix recursive-state attachment: expr letrec { ... }.
type Letrec struct {
	X    Expr
	Defs []LetrecDef
	Sp   source.Span
}

// CaseBranch pairs a pattern (integer literal or variable) with a result.
type CaseBranch struct {
	Pattern Expr
	Result  Expr
	Sp      source.Span
}

// CaseExpr is case { (pattern) => result; ... }.
type CaseExpr struct {
	Branches []CaseBranch
	Sp       source.Span
}

func (e *IntLit) Span() source.Span        { return e.Sp }
func (e *FloatLit) Span() source.Span      { return e.Sp }
func (e *StringLit) Span() source.Span     { return e.Sp }
func (e *Wire) Span() source.Span          { return e.Sp }
func (e *Cut) Span() source.Span           { return e.Sp }
func (e *Ident) Span() source.Span         { return e.Sp }
func (e *QualifiedName) Span() source.Span { return e.Sp }
func (e *BinaryExpr) Span() source.Span    { return e.Sp }
func (e *UnaryExpr) Span() source.Span     { return e.Sp }
func (e *Call) Span() source.Span          { return e.Sp }
func (e *UIElement) Span() source.Span     { return e.Sp }
func (e *UIGroup) Span() source.Span       { return e.Sp }
func (e *Iteration) Span() source.Span     { return e.Sp }
func (e *Lambda) Span() source.Span        { return e.Sp }
func (e *Waveform) Span() source.Span      { return e.Sp }
func (e *Table) Span() source.Span         { return e.Sp }
func (e *Route) Span() source.Span         { return e.Sp }
func (e *Prime) Span() source.Span         { return e.Sp }
func (e *Access) Span() source.Span        { return e.Sp }
func (e *Paren) Span() source.Span         { return e.Sp }
func (e *With) Span() source.Span          { return e.Sp }
func (e *Letrec) Span() source.Span        { return e.Sp }
func (e *CaseExpr) Span() source.Span      { return e.Sp }

func (*IntLit) expr()        {}
func (*FloatLit) expr()      {}
func (*StringLit) expr()     {}
func (*Wire) expr()          {}
func (*Cut) expr()           {}
func (*Ident) expr()         {}
func (*QualifiedName) expr() {}
func (*BinaryExpr) expr()    {}
func (*UnaryExpr) expr()     {}
func (*Call) expr()          {}
func (*UIElement) expr()     {}
func (*UIGroup) expr()       {}
func (*Iteration) expr()     {}
func (*Lambda) expr()        {}
func (*Waveform) expr()      {}
func (*Table) expr()         {}
func (*Route) expr()         {}
func (*Prime) expr()         {}
func (*Access) expr()        {}
func (*Paren) expr()         {}
func (*With) expr()          {}
func (*Letrec) expr()        {}
func (*CaseExpr) expr()      {}

// Name returns the dotted spelling of the qualified path.
func (e *QualifiedName) Name() string {
	out := ""
	for i, p := range e.Parts {
		if i > 0 {
			out += "."
		}
		out += p
	}
	return out
}
