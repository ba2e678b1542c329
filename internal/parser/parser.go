package parser

import (
	"slices"

	"wirec/internal/ast"
	"wirec/internal/diag"
	"wirec/internal/lexer"
	"wirec/internal/source"
	"wirec/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error budget is spent.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Program *ast.Program
	Bag     *diag.Bag
}

// Parser holds per-file parse state.
type Parser struct {
	lx       *lexer.Lexer
	file     *source.File
	opts     Options
	lastSpan source.Span // span of the last consumed token, for diagnostics
}

// ParseFile parses one wire-DSP file into a Program. Lexical diagnostics go
// through the same reporter as parse diagnostics.
func ParseFile(file *source.File, opts Options) Result {
	lx := lexer.New(file, lexer.Options{Reporter: opts.Reporter})
	p := Parser{
		lx:       lx,
		file:     file,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	prog := p.parseItems()
	var bag *diag.Bag
	if br, ok := opts.Reporter.(diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{Program: prog, Bag: bag}
}

// Parse is a convenience entry: tokenize and parse source text, returning
// the program plus all accumulated diagnostics.
func Parse(file *source.File, maxDiagnostics int) (*ast.Program, *diag.Bag) {
	bag := diag.NewBag(maxDiagnostics)
	res := ParseFile(file, Options{Reporter: diag.BagReporter{Bag: bag}})
	return res.Program, bag
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atAny(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// advance consumes the next token and tracks lastSpan.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// diagnosticSpan picks the best span for an error at the current position.
// At EOF the zero-length span lands right after the last consumed token.
func (p *Parser) diagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return peek.Span
}

// expect consumes the token of kind k or reports and returns ok=false.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.diagnosticSpan()
	p.report(code, diag.SevError, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp}, false
}

func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, diag.SevError, p.diagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if p.opts.Reporter == nil {
		return
	}
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	if !p.opts.Enough() {
		p.opts.Reporter.Report(code, sev, sp, msg)
	}
}

// resyncUntil skips tokens until one of the stop kinds or EOF.
func (p *Parser) resyncUntil(stop ...token.Kind) {
	for !p.at(token.EOF) && !p.atAny(stop...) {
		p.advance()
	}
}

// resyncStatement recovers after a malformed statement: skip to the next
// ';' and eat it, so one bad statement never aborts the parse.
func (p *Parser) resyncStatement() {
	p.resyncUntil(token.Semicolon)
	if p.at(token.Semicolon) {
		p.advance()
	}
}

// text slices the original source under a span.
func (p *Parser) text(sp source.Span) string {
	return string(p.file.Content[sp.Start:sp.End])
}
