package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwDeclare represents the 'declare' keyword.
	KwDeclare // declare
	// KwWith represents the 'with' keyword.
	KwWith // with
	// KwLetrec represents the 'letrec' keyword.
	KwLetrec // letrec
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwProcess is not reserved; 'process' stays an identifier.

	// KwHSlider represents the 'hslider' UI widget keyword.
	KwHSlider // hslider
	// KwVSlider represents the 'vslider' UI widget keyword.
	KwVSlider // vslider
	// KwNEntry represents the 'nentry' UI widget keyword.
	KwNEntry // nentry
	// KwButton represents the 'button' UI widget keyword.
	KwButton // button
	// KwCheckbox represents the 'checkbox' UI widget keyword.
	KwCheckbox // checkbox
	// KwHGroup represents the 'hgroup' UI group keyword.
	KwHGroup // hgroup
	// KwVGroup represents the 'vgroup' UI group keyword.
	KwVGroup // vgroup
	// KwTGroup represents the 'tgroup' UI group keyword.
	KwTGroup // tgroup

	// KwRdTable represents the 'rdtable' keyword.
	KwRdTable // rdtable
	// KwRwTable represents the 'rwtable' keyword.
	KwRwTable // rwtable
	// KwRoute represents the 'route' keyword.
	KwRoute // route
	// KwWaveform represents the 'waveform' keyword.
	KwWaveform // waveform

	// KwPar represents the 'par' iteration keyword.
	KwPar // par
	// KwSeq represents the 'seq' iteration keyword.
	KwSeq // seq
	// KwSum represents the 'sum' iteration keyword.
	KwSum // sum
	// KwProd represents the 'prod' iteration keyword.
	KwProd // prod

	// IntLit represents the integer literal token.
	IntLit
	// FloatLit represents the float literal token.
	FloatLit
	// StringLit represents the string literal token.
	StringLit

	// Comma represents the ',' parallel-composition operator.
	Comma // ,
	// Colon represents the ':' sequential-composition operator.
	Colon // :
	// Split represents the '<:' split-composition operator.
	Split // <:
	// Merge represents the ':>' merge-composition operator.
	Merge // :>
	// Tilde represents the '~' recursive-feedback operator.
	Tilde // ~

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Caret represents the power operator token.
	Caret // ^
	// At represents the sample-delay operator token.
	At // @
	// Prime represents the one-sample-delay marker token.
	Prime // '

	// EqEq represents the equality operator token.
	EqEq // ==
	// BangEq represents the inequality operator token.
	BangEq // !=
	// Lt represents the less-than operator token.
	Lt // <
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// Gt represents the greater-than operator token.
	Gt // >
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=
	// Shl represents the left-shift operator token.
	Shl // <<
	// Shr represents the right-shift operator token.
	Shr // >>
	// Amp represents the bitwise-and operator token.
	Amp // &
	// Pipe represents the bitwise-or operator token.
	Pipe // |
	// AndAnd represents the logical-and operator token.
	AndAnd // &&
	// OrOr represents the logical-or operator token.
	OrOr // ||
	// Bang represents the logical-not operator token.
	Bang // !

	// Assign represents the '=' definition operator.
	Assign // =
	// Semicolon represents the statement terminator.
	Semicolon // ;
	// Dot represents the namespace-qualification dot.
	Dot // .
	// Backslash represents the lambda introducer.
	Backslash // \
	// FatArrow represents the '=>' case-branch arrow.
	FatArrow // =>

	// Underscore represents the '_' wire (identity) primitive.
	Underscore // _

	// LParen represents the left parenthesis.
	LParen // (
	// RParen represents the right parenthesis.
	RParen // )
	// LBrace represents the left brace.
	LBrace // {
	// RBrace represents the right brace.
	RBrace // }
	// LBracket represents the left bracket.
	LBracket // [
	// RBracket represents the right bracket.
	RBracket // ]
)

var kindNames = map[Kind]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Ident:      "Ident",
	KwImport:   "import",
	KwDeclare:  "declare",
	KwWith:     "with",
	KwLetrec:   "letrec",
	KwCase:     "case",
	KwHSlider:  "hslider",
	KwVSlider:  "vslider",
	KwNEntry:   "nentry",
	KwButton:   "button",
	KwCheckbox: "checkbox",
	KwHGroup:   "hgroup",
	KwVGroup:   "vgroup",
	KwTGroup:   "tgroup",
	KwRdTable:  "rdtable",
	KwRwTable:  "rwtable",
	KwRoute:    "route",
	KwWaveform: "waveform",
	KwPar:      "par",
	KwSeq:      "seq",
	KwSum:      "sum",
	KwProd:     "prod",
	IntLit:     "IntLit",
	FloatLit:   "FloatLit",
	StringLit:  "StringLit",
	Comma:      ",",
	Colon:      ":",
	Split:      "<:",
	Merge:      ":>",
	Tilde:      "~",
	Plus:       "+",
	Minus:      "-",
	Star:       "*",
	Slash:      "/",
	Percent:    "%",
	Caret:      "^",
	At:         "@",
	Prime:      "'",
	EqEq:       "==",
	BangEq:     "!=",
	Lt:         "<",
	LtEq:       "<=",
	Gt:         ">",
	GtEq:       ">=",
	Shl:        "<<",
	Shr:        ">>",
	Amp:        "&",
	Pipe:       "|",
	AndAnd:     "&&",
	OrOr:       "||",
	Bang:       "!",
	Assign:     "=",
	Semicolon:  ";",
	Dot:        ".",
	Backslash:  "\\",
	FatArrow:   "=>",
	Underscore: "_",
	LParen:     "(",
	RParen:     ")",
	LBrace:     "{",
	RBrace:     "}",
	LBracket:   "[",
	RBracket:   "]",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}
