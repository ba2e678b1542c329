package parser

import (
	"wirec/internal/ast"
	"wirec/internal/diag"
	"wirec/internal/token"
)

// parseExpr is the top entry for expression parsing.
func (p *Parser) parseExpr() (ast.Expr, bool) {
	return p.parseBinaryExpr(0)
}

// parseArgExpr parses a comma-free expression: widget fields, call and
// iteration arguments. Commas there separate arguments, so the parallel
// operator is excluded by raising the floor above its precedence.
func (p *Parser) parseArgExpr() (ast.Expr, bool) {
	return p.parseBinaryExpr(precSequential)
}

// parseBinaryExpr is precedence climbing: parse a unary expression, then
// keep consuming binary operators whose precedence is >= minPrec.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.Expr, bool) {
	left, ok := p.parseUnaryExpr()
	if !ok {
		return nil, false
	}

	for {
		tok := p.lx.Peek()
		op, prec, rightAssoc, isOp := binaryOpFor(tok.Kind)
		if !isOp || prec < minPrec {
			break
		}

		p.advance()

		nextMinPrec := prec + 1
		if rightAssoc {
			nextMinPrec = prec
		}

		right, ok := p.parseBinaryExpr(nextMinPrec)
		if !ok {
			p.err(diag.SynExpectExpression, "expected expression after '"+tok.Text+"'")
			return nil, false
		}

		left = &ast.BinaryExpr{
			Op: op,
			L:  left,
			R:  right,
			Sp: left.Span().Cover(right.Span()),
		}
	}

	return left, true
}

// parseUnaryExpr handles prefix minus. A '-' directly followed by '(' is the
// prefix partial-application form -(x) ("subtract x from the incoming
// signal"), not negation of a parenthesized value. Anything else after '-'
// is ordinary negation, applied recursively so --x parses.
func (p *Parser) parseUnaryExpr() (ast.Expr, bool) {
	if p.at(token.Minus) {
		minusTok := p.advance()

		if p.at(token.LParen) {
			return p.parseOperatorSection(minusTok)
		}

		operand, ok := p.parseUnaryExpr()
		if !ok {
			p.err(diag.SynExpectExpression, "expected expression after '-'")
			return nil, false
		}
		return &ast.UnaryExpr{X: operand, Sp: minusTok.Span.Cover(operand.Span())}, true
	}

	// operator sections such as *(0.5) at primary position
	if sectionable(p.lx.Peek().Kind) {
		opTok := p.advance()
		if !p.at(token.LParen) {
			p.err(diag.SynExpectExpression, "expected '(' after operator '"+opTok.Text+"'")
			return nil, false
		}
		return p.parseOperatorSection(opTok)
	}

	return p.parsePostfixExpr()
}

// parseOperatorSection parses op(args) into a Call named after the operator.
func (p *Parser) parseOperatorSection(opTok token.Token) (ast.Expr, bool) {
	args, closeSpan, ok := p.parseCallArgs()
	if !ok {
		return nil, false
	}
	return &ast.Call{
		Name: opTok.Text,
		Args: args,
		Sp:   opTok.Span.Cover(closeSpan),
	}, true
}
