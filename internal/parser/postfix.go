package parser

import (
	"wirec/internal/ast"
	"wirec/internal/diag"
	"wirec/internal/source"
	"wirec/internal/token"
)

// parsePostfixExpr parses a primary and then consumes, in any order and
// repeatedly: ' (one-sample delay), [index], (args) when the base is a name,
// .ident (namespace qualification), and a trailing letrec block.
func (p *Parser) parsePostfixExpr() (ast.Expr, bool) {
	expr, ok := p.parsePrimaryExpr()
	if !ok {
		return nil, false
	}

	for {
		switch p.lx.Peek().Kind {
		case token.Prime:
			tok := p.advance()
			expr = &ast.Prime{X: expr, Sp: expr.Span().Cover(tok.Span)}

		case token.LBracket:
			expr, ok = p.parseAccess(expr)
			if !ok {
				return nil, false
			}

		case token.LParen:
			name, callable := calleeName(expr)
			if !callable {
				// '(' after a non-name base starts a new primary, not a call
				return expr, true
			}
			args, closeSpan, ok := p.parseCallArgs()
			if !ok {
				return nil, false
			}
			expr = &ast.Call{Name: name, Args: args, Sp: expr.Span().Cover(closeSpan)}

		case token.Dot:
			expr, ok = p.parseQualify(expr)
			if !ok {
				return nil, false
			}

		case token.KwLetrec:
			expr, ok = p.parseLetrec(expr)
			if !ok {
				return nil, false
			}

		default:
			return expr, true
		}
	}
}

// calleeName extracts the dotted name of a callable base.
func calleeName(e ast.Expr) (string, bool) {
	switch v := e.(type) {
	case *ast.Ident:
		return v.Name, true
	case *ast.QualifiedName:
		return v.Name(), true
	default:
		return "", false
	}
}

// parseCallArgs parses '(' arg, arg, ... ')' and returns the args plus the
// span of the closing paren.
func (p *Parser) parseCallArgs() ([]ast.Expr, source.Span, bool) {
	p.advance() // '('

	var args []ast.Expr
	if !p.at(token.RParen) {
		for {
			arg, ok := p.parseArgExpr()
			if !ok {
				p.resyncUntil(token.RParen, token.Semicolon)
				break
			}
			args = append(args, arg)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}

	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after arguments")
	if !ok {
		return nil, closeTok.Span, false
	}
	return args, closeTok.Span, true
}

// parseAccess parses x[index].
func (p *Parser) parseAccess(base ast.Expr) (ast.Expr, bool) {
	p.advance() // '['
	index, ok := p.parseExpr()
	if !ok {
		p.err(diag.SynExpectExpression, "expected index expression")
		return nil, false
	}
	closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after index")
	if !ok {
		return nil, false
	}
	return &ast.Access{X: base, Index: index, Sp: base.Span().Cover(closeTok.Span)}, true
}

// parseQualify extends an identifier into a dotted path: os . osc . ...
func (p *Parser) parseQualify(base ast.Expr) (ast.Expr, bool) {
	p.advance() // '.'
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected identifier after '.'")
	if !ok {
		return nil, false
	}

	switch v := base.(type) {
	case *ast.Ident:
		return &ast.QualifiedName{
			Parts: []string{v.Name, nameTok.Text},
			Sp:    v.Sp.Cover(nameTok.Span),
		}, true
	case *ast.QualifiedName:
		return &ast.QualifiedName{
			Parts: append(append([]string{}, v.Parts...), nameTok.Text),
			Sp:    v.Sp.Cover(nameTok.Span),
		}, true
	default:
		p.report(diag.SynUnexpectedToken, diag.SevError, nameTok.Span, "'.' qualification requires a name on the left")
		return nil, false
	}
}

// parseLetrec parses the postfix recursive-state block:
//
//	expr letrec { 'x = e; y = e; }
//
// The leading apostrophe marks a next-sample state variable and is kept.
func (p *Parser) parseLetrec(base ast.Expr) (ast.Expr, bool) {
	p.advance() // 'letrec'
	if _, ok := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' after letrec"); !ok {
		return nil, false
	}

	var defs []ast.LetrecDef
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		start := p.lx.Peek().Span

		next := false
		if p.at(token.Prime) {
			p.advance()
			next = true
		}
		nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected binding name in letrec")
		if !ok {
			p.resyncUntil(token.Semicolon, token.RBrace)
			if p.at(token.Semicolon) {
				p.advance()
			}
			continue
		}
		if _, ok := p.expect(token.Assign, diag.SynExpectAssign, "expected '=' in letrec binding"); !ok {
			p.resyncUntil(token.Semicolon, token.RBrace)
			if p.at(token.Semicolon) {
				p.advance()
			}
			continue
		}
		value, ok := p.parseExpr()
		if !ok {
			p.resyncUntil(token.Semicolon, token.RBrace)
			if p.at(token.Semicolon) {
				p.advance()
			}
			continue
		}
		semiTok, _ := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after letrec binding")

		defs = append(defs, ast.LetrecDef{
			Next: next,
			Name: nameTok.Text,
			X:    value,
			Sp:   start.Cover(semiTok.Span),
		})
	}

	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close letrec")
	if !ok {
		return nil, false
	}
	return &ast.Letrec{X: base, Defs: defs, Sp: base.Span().Cover(closeTok.Span)}, true
}
