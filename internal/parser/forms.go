package parser

import (
	"wirec/internal/ast"
	"wirec/internal/diag"
	"wirec/internal/token"
)

// parseSlider parses hslider/vslider/nentry("label", init, min, max, step).
// The four numeric fields are parsed above the argument-separator precedence
// so commas inside nested calls don't terminate a field early.
func (p *Parser) parseSlider(kw token.Token) (ast.Expr, bool) {
	p.advance()
	if _, ok := p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after "+kw.Text); !ok {
		return nil, false
	}
	labelTok, ok := p.expect(token.StringLit, diag.SynUnexpectedToken, "expected widget label string")
	if !ok {
		return nil, false
	}

	fields := make([]ast.Expr, 0, 4)
	for i := 0; i < 4; i++ {
		if _, ok := p.expect(token.Comma, diag.SynUnexpectedToken, "expected ',' between widget fields"); !ok {
			return nil, false
		}
		field, ok := p.parseArgExpr()
		if !ok {
			return nil, false
		}
		fields = append(fields, field)
	}
	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after widget fields")
	if !ok {
		return nil, false
	}

	return &ast.UIElement{
		Kind:  widgetKindFor(kw.Kind),
		Label: unquote(labelTok.Text),
		Init:  fields[0],
		Min:   fields[1],
		Max:   fields[2],
		Step:  fields[3],
		Sp:    kw.Span.Cover(closeTok.Span),
	}, true
}

// parseButton parses button/checkbox("label").
func (p *Parser) parseButton(kw token.Token) (ast.Expr, bool) {
	p.advance()
	if _, ok := p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after "+kw.Text); !ok {
		return nil, false
	}
	labelTok, ok := p.expect(token.StringLit, diag.SynUnexpectedToken, "expected widget label string")
	if !ok {
		return nil, false
	}
	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after widget label")
	if !ok {
		return nil, false
	}
	return &ast.UIElement{
		Kind:  widgetKindFor(kw.Kind),
		Label: unquote(labelTok.Text),
		Sp:    kw.Span.Cover(closeTok.Span),
	}, true
}

func widgetKindFor(k token.Kind) ast.WidgetKind {
	switch k {
	case token.KwHSlider:
		return ast.WidgetHSlider
	case token.KwVSlider:
		return ast.WidgetVSlider
	case token.KwNEntry:
		return ast.WidgetNEntry
	case token.KwButton:
		return ast.WidgetButton
	default:
		return ast.WidgetCheckbox
	}
}

// parseGroup parses hgroup/vgroup/tgroup("label", content).
func (p *Parser) parseGroup(kw token.Token) (ast.Expr, bool) {
	p.advance()
	if _, ok := p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after "+kw.Text); !ok {
		return nil, false
	}
	labelTok, ok := p.expect(token.StringLit, diag.SynUnexpectedToken, "expected group label string")
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Comma, diag.SynUnexpectedToken, "expected ',' after group label"); !ok {
		return nil, false
	}
	content, ok := p.parseArgExpr()
	if !ok {
		return nil, false
	}
	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after group content")
	if !ok {
		return nil, false
	}

	var kind ast.GroupKind
	switch kw.Kind {
	case token.KwHGroup:
		kind = ast.GroupH
	case token.KwVGroup:
		kind = ast.GroupV
	default:
		kind = ast.GroupT
	}
	return &ast.UIGroup{
		Kind:    kind,
		Label:   unquote(labelTok.Text),
		Content: content,
		Sp:      kw.Span.Cover(closeTok.Span),
	}, true
}

// parseTable parses rdtable/rwtable with the generic call-argument grammar.
func (p *Parser) parseTable(kw token.Token) (ast.Expr, bool) {
	p.advance()
	if !p.at(token.LParen) {
		p.err(diag.SynUnclosedParen, "expected '(' after "+kw.Text)
		return nil, false
	}
	args, closeSpan, ok := p.parseCallArgs()
	if !ok {
		return nil, false
	}
	kind := ast.TableRead
	if kw.Kind == token.KwRwTable {
		kind = ast.TableReadWrite
	}
	return &ast.Table{Kind: kind, Args: args, Sp: kw.Span.Cover(closeSpan)}, true
}

// parseRoute parses route(ins, outs, pair, pair, ...).
func (p *Parser) parseRoute(kw token.Token) (ast.Expr, bool) {
	p.advance()
	if !p.at(token.LParen) {
		p.err(diag.SynUnclosedParen, "expected '(' after route")
		return nil, false
	}
	args, closeSpan, ok := p.parseCallArgs()
	if !ok {
		return nil, false
	}
	if len(args) < 2 {
		p.report(diag.SynBadRoutePair, diag.SevError, kw.Span.Cover(closeSpan),
			"route requires input and output counts")
		return nil, false
	}
	return &ast.Route{
		Ins:   args[0],
		Outs:  args[1],
		Pairs: args[2:],
		Sp:    kw.Span.Cover(closeSpan),
	}, true
}

// parseWaveform parses waveform{v, v, ...}.
func (p *Parser) parseWaveform(kw token.Token) (ast.Expr, bool) {
	p.advance()
	if _, ok := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' after waveform"); !ok {
		return nil, false
	}

	var values []ast.Expr
	if !p.at(token.RBrace) {
		for {
			v, ok := p.parseArgExpr()
			if !ok {
				p.resyncUntil(token.RBrace, token.Semicolon)
				break
			}
			values = append(values, v)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close waveform")
	if !ok {
		return nil, false
	}
	return &ast.Waveform{Values: values, Sp: kw.Span.Cover(closeTok.Span)}, true
}

// parseIteration parses par/seq/sum/prod(var, count, body).
func (p *Parser) parseIteration(kw token.Token) (ast.Expr, bool) {
	p.advance()
	if _, ok := p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after "+kw.Text); !ok {
		return nil, false
	}
	varTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected iteration variable")
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Comma, diag.SynUnexpectedToken, "expected ',' after iteration variable"); !ok {
		return nil, false
	}
	count, ok := p.parseArgExpr()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Comma, diag.SynUnexpectedToken, "expected ',' after iteration count"); !ok {
		return nil, false
	}
	body, ok := p.parseArgExpr()
	if !ok {
		return nil, false
	}
	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after iteration body")
	if !ok {
		return nil, false
	}

	var kind ast.IterKind
	switch kw.Kind {
	case token.KwPar:
		kind = ast.IterPar
	case token.KwSeq:
		kind = ast.IterSeq
	case token.KwSum:
		kind = ast.IterSum
	default:
		kind = ast.IterProd
	}
	return &ast.Iteration{
		Kind:  kind,
		Var:   varTok.Text,
		Count: count,
		Body:  body,
		Sp:    kw.Span.Cover(closeTok.Span),
	}, true
}

// parseLambda parses \(p1, p2).(body).
func (p *Parser) parseLambda(bs token.Token) (ast.Expr, bool) {
	p.advance() // '\'
	if _, ok := p.expect(token.LParen, diag.SynBadLambda, "expected '(' after '\\'"); !ok {
		return nil, false
	}

	var params []string
	for {
		nameTok, ok := p.expect(token.Ident, diag.SynBadLambda, "expected lambda parameter")
		if !ok {
			return nil, false
		}
		params = append(params, nameTok.Text)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if _, ok := p.expect(token.RParen, diag.SynBadLambda, "expected ')' after lambda parameters"); !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Dot, diag.SynBadLambda, "expected '.' between lambda parameters and body"); !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LParen, diag.SynBadLambda, "expected '(' before lambda body"); !ok {
		return nil, false
	}
	body, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	closeTok, ok := p.expect(token.RParen, diag.SynBadLambda, "expected ')' after lambda body")
	if !ok {
		return nil, false
	}
	return &ast.Lambda{Params: params, Body: body, Sp: bs.Span.Cover(closeTok.Span)}, true
}

// parseCase parses case { (pattern) => result; ... }.
func (p *Parser) parseCase(kw token.Token) (ast.Expr, bool) {
	p.advance()
	if _, ok := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' after case"); !ok {
		return nil, false
	}

	var branches []ast.CaseBranch
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		start := p.lx.Peek().Span

		if _, ok := p.expect(token.LParen, diag.SynBadCaseBranch, "expected '(' before case pattern"); !ok {
			p.resyncUntil(token.Semicolon, token.RBrace)
			if p.at(token.Semicolon) {
				p.advance()
			}
			continue
		}
		pattern, ok := p.parseExpr()
		if !ok {
			p.resyncUntil(token.Semicolon, token.RBrace)
			if p.at(token.Semicolon) {
				p.advance()
			}
			continue
		}
		if _, ok := p.expect(token.RParen, diag.SynBadCaseBranch, "expected ')' after case pattern"); !ok {
			p.resyncUntil(token.Semicolon, token.RBrace)
			if p.at(token.Semicolon) {
				p.advance()
			}
			continue
		}
		if _, ok := p.expect(token.FatArrow, diag.SynBadCaseBranch, "expected '=>' after case pattern"); !ok {
			p.resyncUntil(token.Semicolon, token.RBrace)
			if p.at(token.Semicolon) {
				p.advance()
			}
			continue
		}
		result, ok := p.parseExpr()
		if !ok {
			p.resyncUntil(token.Semicolon, token.RBrace)
			if p.at(token.Semicolon) {
				p.advance()
			}
			continue
		}
		semiTok, _ := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after case branch")

		branches = append(branches, ast.CaseBranch{
			Pattern: pattern,
			Result:  result,
			Sp:      start.Cover(semiTok.Span),
		})
	}

	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close case")
	if !ok {
		return nil, false
	}
	return &ast.CaseExpr{Branches: branches, Sp: kw.Span.Cover(closeTok.Span)}, true
}
