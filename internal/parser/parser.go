// Package parser turns a token stream into the ast node set.
//
// Grouping parentheses produce no node: `(expr)` parses to expr with an
// unchanged span, leaving the paren tokens in the stream. The wrap rule
// depends on this: it probes the token neighbors of a node to decide
// whether the node is already parenthesized.
package parser

import (
	"slices"

	"jsxwrap/internal/ast"
	"jsxwrap/internal/diag"
	"jsxwrap/internal/source"
	"jsxwrap/internal/token"
)

// Options configures parsing for one file.
type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error budget is exhausted.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Parser holds the state for parsing one file. It reads from an
// already-tokenized slice, which gives it arbitrary lookahead for arrow
// detection and JSX scanning.
type Parser struct {
	file     *source.File
	toks     []token.Token
	pos      int
	opts     Options
	lastSpan source.Span
}

// New creates a parser over the given tokens. The slice must end with EOF.
func New(file *source.File, toks []token.Token, opts Options) *Parser {
	return &Parser{
		file: file,
		toks: toks,
		opts: opts,
	}
}

// ParseFile parses the whole token stream into a file node.
func (p *Parser) ParseFile() *ast.File {
	stmts := make([]ast.Stmt, 0, 8)
	for !p.at(token.EOF) {
		before := p.pos
		if stmt := p.parseStmt(); stmt != nil {
			stmts = append(stmts, stmt)
		}
		if p.pos == before {
			// no progress; drop the offending token to avoid looping
			p.advance()
		}
	}

	loc := source.Span{File: p.file.ID, Start: 0, End: uint32(len(p.file.Content))}
	return &ast.File{Stmts: stmts, Loc: loc}
}

func (p *Parser) cur() token.Token {
	return p.toks[p.pos]
}

// peekAt looks n tokens ahead without consuming. Out-of-range lookahead
// yields the trailing EOF.
func (p *Parser) peekAt(n int) token.Token {
	i := p.pos + n
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[i]
}

func (p *Parser) at(k token.Kind) bool {
	return p.cur().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.cur().Kind)
}

// advance consumes the current token and updates lastSpan.
func (p *Parser) advance() token.Token {
	tok := p.cur()
	if tok.Kind != token.EOF {
		p.pos++
	}
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// eat consumes the current token when it matches k.
func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

// diagnosticSpan picks the best span to point a diagnostic at: the current
// token, or the position right after the last consumed token at EOF.
func (p *Parser) diagnosticSpan() source.Span {
	cur := p.cur()
	if cur.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return cur.Span
}

// expect consumes a token of kind k or reports and returns (invalid, false).
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
		p.opts.Reporter.Report(code, sev, sp, msg, nil, nil)
	}
}

// spanBetween covers from the start of the first token to the end of the
// last consumed one.
func (p *Parser) spanFrom(start source.Span) source.Span {
	return start.Cover(p.lastSpan)
}
