package token

import (
	"wirec/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit:
		return true
	default:
		return false
	}
}

// IsComposition reports whether the token is one of the five composition
// operators.
func (t Token) IsComposition() bool {
	switch t.Kind {
	case Comma, Colon, Split, Merge, Tilde:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwImport, KwDeclare, KwWith, KwLetrec, KwCase,
		KwHSlider, KwVSlider, KwNEntry, KwButton, KwCheckbox,
		KwHGroup, KwVGroup, KwTGroup,
		KwRdTable, KwRwTable, KwRoute, KwWaveform,
		KwPar, KwSeq, KwSum, KwProd:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
