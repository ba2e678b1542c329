package parser

import (
	"strconv"
	"strings"

	"wirec/internal/ast"
	"wirec/internal/diag"
	"wirec/internal/token"
)

func (p *Parser) parsePrimaryExpr() (ast.Expr, bool) {
	tok := p.lx.Peek()

	switch tok.Kind {
	case token.IntLit:
		p.advance()
		v, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			p.report(diag.LexBadNumber, diag.SevError, tok.Span, "integer literal out of range")
			v = 0
		}
		return &ast.IntLit{Value: v, Text: tok.Text, Sp: tok.Span}, true

	case token.FloatLit:
		p.advance()
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			p.report(diag.LexBadNumber, diag.SevError, tok.Span, "malformed float literal")
			v = 0
		}
		return &ast.FloatLit{Value: v, Text: tok.Text, Sp: tok.Span}, true

	case token.StringLit:
		p.advance()
		return &ast.StringLit{Value: unquote(tok.Text), Sp: tok.Span}, true

	case token.Underscore:
		p.advance()
		return &ast.Wire{Sp: tok.Span}, true

	case token.Bang:
		p.advance()
		return &ast.Cut{Sp: tok.Span}, true

	case token.Ident:
		p.advance()
		return &ast.Ident{Name: tok.Text, Sp: tok.Span}, true

	case token.LParen:
		p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'")
		if !ok {
			return nil, false
		}
		return &ast.Paren{X: inner, Sp: tok.Span.Cover(closeTok.Span)}, true

	case token.KwHSlider, token.KwVSlider, token.KwNEntry:
		return p.parseSlider(tok)

	case token.KwButton, token.KwCheckbox:
		return p.parseButton(tok)

	case token.KwHGroup, token.KwVGroup, token.KwTGroup:
		return p.parseGroup(tok)

	case token.KwRdTable, token.KwRwTable:
		return p.parseTable(tok)

	case token.KwRoute:
		return p.parseRoute(tok)

	case token.KwWaveform:
		return p.parseWaveform(tok)

	case token.KwPar, token.KwSeq, token.KwSum, token.KwProd:
		return p.parseIteration(tok)

	case token.Backslash:
		return p.parseLambda(tok)

	case token.KwCase:
		return p.parseCase(tok)

	default:
		p.report(diag.SynUnexpectedToken, diag.SevError, p.diagnosticSpan(),
			"unexpected token '"+tok.Text+"' in expression")
		return nil, false
	}
}

// unquote strips the surrounding quotes and resolves the supported escapes.
func unquote(text string) string {
	s := strings.TrimPrefix(text, `"`)
	s = strings.TrimSuffix(s, `"`)
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
