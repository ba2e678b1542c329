package parser

import (
	"strconv"

	"wirec/internal/ast"
	"wirec/internal/diag"
	"wirec/internal/token"
)

// parseItems is the top-level loop: parse statements until EOF, recovering
// at statement boundaries.
func (p *Parser) parseItems() *ast.Program {
	prog := &ast.Program{}
	for !p.at(token.EOF) {
		item, ok := p.parseItem()
		if !ok {
			p.resyncStatement()
			continue
		}
		prog.Items = append(prog.Items, item)
	}
	return prog
}

func (p *Parser) parseItem() (ast.Item, bool) {
	switch p.lx.Peek().Kind {
	case token.KwImport:
		return p.parseImport()
	case token.KwDeclare:
		return p.parseDeclare()
	case token.Ident:
		return p.parseDefinition()
	case token.Invalid:
		// the lexer already reported it; just skip
		p.advance()
		return nil, false
	default:
		p.report(diag.SynUnexpectedTopLevel, diag.SevError, p.diagnosticSpan(),
			"expected import, declare, or definition")
		return nil, false
	}
}

// parseImport parses `import("lib");`.
func (p *Parser) parseImport() (ast.Item, bool) {
	kw := p.advance()
	if _, ok := p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after import"); !ok {
		return nil, false
	}
	pathTok, ok := p.expect(token.StringLit, diag.SynUnexpectedToken, "expected import path string")
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after import path"); !ok {
		return nil, false
	}
	semiTok, _ := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after import")
	return &ast.Import{Path: unquote(pathTok.Text), Sp: kw.Span.Cover(semiTok.Span)}, true
}

// parseDeclare parses `declare key "value";`.
func (p *Parser) parseDeclare() (ast.Item, bool) {
	kw := p.advance()
	keyTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected declare key")
	if !ok {
		return nil, false
	}
	valueTok, ok := p.expect(token.StringLit, diag.SynUnexpectedToken, "expected declare value string")
	if !ok {
		return nil, false
	}
	semiTok, _ := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after declare")
	return &ast.Declare{
		Key:   keyTok.Text,
		Value: unquote(valueTok.Text),
		Sp:    kw.Span.Cover(semiTok.Span),
	}, true
}

// parseDefinition parses `name = expr;` or `name(params) = expr;`, with an
// optional trailing `with { ... }` that scopes local definitions to the body.
func (p *Parser) parseDefinition() (ast.Item, bool) {
	nameTok := p.advance()

	var params []ast.Param
	if p.at(token.LParen) {
		var ok bool
		params, ok = p.parseParams()
		if !ok {
			return nil, false
		}
	}

	if _, ok := p.expect(token.Assign, diag.SynExpectAssign, "expected '=' in definition"); !ok {
		return nil, false
	}

	body, ok := p.parseExpr()
	if !ok {
		return nil, false
	}

	if p.at(token.KwWith) {
		body, ok = p.parseWith(body)
		if !ok {
			return nil, false
		}
	}

	semiTok, _ := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after definition")
	return &ast.Definition{
		Name:   nameTok.Text,
		Params: params,
		Body:   body,
		Sp:     nameTok.Span.Cover(semiTok.Span),
	}, true
}

// parseParams parses a definition parameter list. Entries are identifiers or
// integer literals; an integer makes the definition a pattern-family member.
func (p *Parser) parseParams() ([]ast.Param, bool) {
	p.advance() // '('

	var params []ast.Param
	for {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.Ident:
			p.advance()
			params = append(params, ast.Param{Text: tok.Text, Sp: tok.Span})
		case token.IntLit:
			p.advance()
			v, err := strconv.ParseInt(tok.Text, 10, 64)
			if err != nil {
				p.report(diag.LexBadNumber, diag.SevError, tok.Span, "integer pattern out of range")
			}
			params = append(params, ast.Param{Text: tok.Text, IsInt: true, IntVal: v, Sp: tok.Span})
		default:
			p.err(diag.SynExpectIdentifier, "expected parameter name or integer pattern")
			return nil, false
		}
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after parameters"); !ok {
		return nil, false
	}
	return params, true
}

// parseWith parses `with { def; def; ... }` and attaches the locals to expr.
func (p *Parser) parseWith(expr ast.Expr) (ast.Expr, bool) {
	p.advance() // 'with'
	if _, ok := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' after with"); !ok {
		return nil, false
	}

	var locals []*ast.Definition
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if !p.at(token.Ident) {
			p.err(diag.SynExpectIdentifier, "expected local definition in with block")
			p.resyncUntil(token.Semicolon, token.RBrace)
			if p.at(token.Semicolon) {
				p.advance()
			}
			continue
		}
		item, ok := p.parseDefinition()
		if !ok {
			p.resyncUntil(token.Semicolon, token.RBrace)
			if p.at(token.Semicolon) {
				p.advance()
			}
			continue
		}
		locals = append(locals, item.(*ast.Definition))
	}

	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close with block")
	if !ok {
		return nil, false
	}
	return &ast.With{X: expr, Locals: locals, Sp: expr.Span().Cover(closeTok.Span)}, true
}
