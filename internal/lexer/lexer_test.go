package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"wirec/internal/diag"
	"wirec/internal/source"
	"wirec/internal/token"
)

func tokenize(t *testing.T, src string) ([]token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.dsp", []byte(src)))
	bag := diag.NewBag(64)
	return Tokenize(file, Options{Reporter: diag.BagReporter{Bag: bag}}), bag
}

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Kind)
	}
	return out
}

func TestTokenize_MultiCharOperatorsFirst(t *testing.T) {
	tokens, bag := tokenize(t, "<: :> == != <= >= << >> && || =>")
	require.False(t, bag.HasErrors())
	require.Equal(t, []token.Kind{
		token.Split, token.Merge, token.EqEq, token.BangEq,
		token.LtEq, token.GtEq, token.Shl, token.Shr,
		token.AndAnd, token.OrOr, token.FatArrow, token.EOF,
	}, kinds(tokens))
}

func TestTokenize_SingleCharOperators(t *testing.T) {
	tokens, bag := tokenize(t, ", : ~ + - * / % ^ @ ' < > & | ! = ; \\ _")
	require.False(t, bag.HasErrors())
	require.Equal(t, []token.Kind{
		token.Comma, token.Colon, token.Tilde, token.Plus, token.Minus,
		token.Star, token.Slash, token.Percent, token.Caret, token.At,
		token.Prime, token.Lt, token.Gt, token.Amp, token.Pipe,
		token.Bang, token.Assign, token.Semicolon, token.Backslash,
		token.Underscore, token.EOF,
	}, kinds(tokens))
}

func TestTokenize_Numbers(t *testing.T) {
	tests := []struct {
		src  string
		kind token.Kind
		text string
	}{
		{"42", token.IntLit, "42"},
		{"3.14", token.FloatLit, "3.14"},
		{".5", token.FloatLit, ".5"},
		{"2.", token.FloatLit, "2."},
		{"1e3", token.FloatLit, "1e3"},
		{"1.5e-10", token.FloatLit, "1.5e-10"},
		{"2E+4", token.FloatLit, "2E+4"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tokens, bag := tokenize(t, tt.src)
			require.False(t, bag.HasErrors())
			require.Equal(t, tt.kind, tokens[0].Kind)
			require.Equal(t, tt.text, tokens[0].Text)
		})
	}
}

func TestTokenize_BadExponentKeepsMantissa(t *testing.T) {
	tokens, bag := tokenize(t, "1e+")
	require.True(t, bag.HasErrors())
	require.Equal(t, diag.LexBadNumber, bag.Items()[0].Code)
	// mantissa survives, the dangling exponent rescans as operators
	require.Equal(t, token.IntLit, tokens[0].Kind)
	require.Equal(t, "1", tokens[0].Text)
}

func TestTokenize_Strings(t *testing.T) {
	tokens, bag := tokenize(t, `"freq" "a\"b\n"`)
	require.False(t, bag.HasErrors())
	require.Equal(t, token.StringLit, tokens[0].Kind)
	require.Equal(t, `"freq"`, tokens[0].Text)
	require.Equal(t, token.StringLit, tokens[1].Kind)
}

func TestTokenize_UnterminatedStringStillYieldsToken(t *testing.T) {
	tokens, bag := tokenize(t, `"oops`)
	require.True(t, bag.HasErrors())
	require.Equal(t, diag.LexUnterminatedString, bag.Items()[0].Code)
	require.Equal(t, token.StringLit, tokens[0].Kind)
}

func TestTokenize_Comments(t *testing.T) {
	tokens, bag := tokenize(t, "a // line comment\n/* block /* nested */ still */ b")
	require.False(t, bag.HasErrors())
	require.Equal(t, []token.Kind{token.Ident, token.Ident, token.EOF}, kinds(tokens))
}

func TestTokenize_UnterminatedBlockComment(t *testing.T) {
	tokens, bag := tokenize(t, "a /* never closed")
	require.True(t, bag.HasErrors())
	require.Equal(t, diag.LexUnterminatedBlockComment, bag.Items()[0].Code)
	require.Equal(t, []token.Kind{token.Ident, token.EOF}, kinds(tokens))
}

func TestTokenize_SlashIsStillAnOperator(t *testing.T) {
	tokens, bag := tokenize(t, "a / b")
	require.False(t, bag.HasErrors())
	require.Equal(t, []token.Kind{token.Ident, token.Slash, token.Ident, token.EOF}, kinds(tokens))
}

func TestTokenize_KeywordsAndIdents(t *testing.T) {
	tokens, bag := tokenize(t, "process import declare with letrec case hslider par _ _state")
	require.False(t, bag.HasErrors())
	require.Equal(t, []token.Kind{
		token.Ident, token.KwImport, token.KwDeclare, token.KwWith,
		token.KwLetrec, token.KwCase, token.KwHSlider, token.KwPar,
		token.Underscore, token.Ident, token.EOF,
	}, kinds(tokens))
	require.Equal(t, "_state", tokens[9].Text)
}

func TestTokenize_UnknownChar(t *testing.T) {
	tokens, bag := tokenize(t, "a $ b")
	require.True(t, bag.HasErrors())
	require.Equal(t, diag.LexUnknownChar, bag.Items()[0].Code)
	require.Equal(t, []token.Kind{token.Ident, token.Invalid, token.Ident, token.EOF}, kinds(tokens))
}

func TestPeekDoesNotConsume(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.dsp", []byte("a b")))
	lx := New(file, Options{})

	require.Equal(t, "a", lx.Peek().Text)
	require.Equal(t, "a", lx.Next().Text)
	require.Equal(t, "b", lx.Next().Text)
	require.Equal(t, token.EOF, lx.Next().Kind)
	require.Equal(t, token.EOF, lx.Next().Kind)
}
