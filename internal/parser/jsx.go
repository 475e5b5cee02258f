package parser

import (
	"strings"

	"jsxwrap/internal/ast"
	"jsxwrap/internal/diag"
	"jsxwrap/internal/source"
	"jsxwrap/internal/token"
)

// parseJSX parses an element or fragment starting at '<'.
func (p *Parser) parseJSX() ast.Expr {
	if p.peekAt(1).Kind == token.Gt {
		return p.parseJSXFragment()
	}
	return p.parseJSXElement()
}

func (p *Parser) parseJSXFragment() ast.Expr {
	open := p.advance() // <
	p.advance()         // >

	children := p.parseJSXChildren()

	p.expect(token.LtSlash, diag.SynUnclosedJSXTag, "expected '</>' to close fragment")
	p.expect(token.Gt, diag.SynUnclosedJSXTag, "expected '>' after '</'")

	return &ast.JSXFragment{Children: children, Loc: p.spanFrom(open.Span)}
}

func (p *Parser) parseJSXElement() ast.Expr {
	open := p.advance() // <

	name := p.parseJSXName()
	attrs := p.parseJSXAttrs()

	if p.eat(token.SlashGt) {
		return &ast.JSXElement{
			Name:        name,
			Attrs:       attrs,
			SelfClosing: true,
			Loc:         p.spanFrom(open.Span),
		}
	}

	p.expect(token.Gt, diag.SynUnclosedJSXTag, "expected '>' or '/>' in opening tag")

	children := p.parseJSXChildren()

	if _, ok := p.expect(token.LtSlash, diag.SynUnclosedJSXTag, "expected closing tag"); ok {
		closeName := p.parseJSXName()
		if closeName != name {
			p.err(diag.SynMismatchedJSXClose, "closing tag does not match '"+name+"'")
		}
		p.expect(token.Gt, diag.SynUnclosedJSXTag, "expected '>' after closing tag name")
	}

	return &ast.JSXElement{
		Name:     name,
		Attrs:    attrs,
		Children: children,
		Loc:      p.spanFrom(open.Span),
	}
}

// parseJSXName consumes `Ident('.'Ident)*`, e.g. div or Foo.Bar.
func (p *Parser) parseJSXName() string {
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected tag name")
	if !ok {
		return ""
	}
	var b strings.Builder
	b.WriteString(name.Text)
	for p.at(token.Dot) && p.peekAt(1).Kind == token.Ident {
		p.advance()
		part := p.advance()
		b.WriteByte('.')
		b.WriteString(part.Text)
	}
	return b.String()
}

func (p *Parser) parseJSXAttrs() []ast.JSXAttrNode {
	attrs := make([]ast.JSXAttrNode, 0, 2)

	for {
		switch p.cur().Kind {
		case token.Gt, token.SlashGt, token.EOF:
			return attrs

		case token.LBrace:
			// {...expr} spread attribute
			open := p.advance()
			p.expect(token.Ellipsis, diag.SynUnexpectedToken, "expected '...' in spread attribute")
			x := p.parseAssignExpr()
			p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close spread attribute")
			attrs = append(attrs, &ast.JSXSpreadAttr{X: x, Loc: p.spanFrom(open.Span)})

		case token.Ident:
			attrs = append(attrs, p.parseJSXAttr())

		default:
			p.err(diag.SynUnexpectedToken, "unexpected token in opening tag")
			p.advance()
		}
	}
}

func (p *Parser) parseJSXAttr() ast.JSXAttrNode {
	name := p.advance()
	attrName := name.Text
	loc := name.Span

	// attribute names may contain '-' (aria-label); accept contiguous runs
	for p.at(token.Minus) && p.cur().Span.Start == loc.End && p.peekAt(1).Kind == token.Ident {
		p.advance()
		part := p.advance()
		attrName += "-" + part.Text
		loc = loc.Cover(part.Span)
	}

	attr := &ast.JSXAttr{Name: attrName, Loc: loc}
	if !p.eat(token.Assign) {
		return attr
	}

	switch p.cur().Kind {
	case token.StringLit:
		lit := p.advance()
		attr.Value = &ast.BasicLit{Kind: lit.Kind, Value: lit.Text, Loc: lit.Span}
	case token.LBrace:
		attr.Value = p.parseJSXExprContainer()
	default:
		p.err(diag.SynExpectAttrValue, "expected string or '{expression}' as attribute value")
	}
	if attr.Value != nil {
		attr.Loc = attr.Loc.Cover(attr.Value.Span())
	}
	return attr
}

func (p *Parser) parseJSXExprContainer() ast.Expr {
	open := p.advance() // {
	container := &ast.JSXExprContainer{}

	if !p.at(token.RBrace) {
		container.X = p.parseAssignExpr()
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close expression container")
	container.Loc = p.spanFrom(open.Span)
	return container
}

// parseJSXChildren consumes element children until a closing tag or EOF:
// nested elements, {expr} containers, and raw text runs.
func (p *Parser) parseJSXChildren() []ast.Expr {
	children := make([]ast.Expr, 0, 4)

	for {
		switch p.cur().Kind {
		case token.LtSlash, token.EOF:
			return children

		case token.Lt:
			if child := p.parseJSX(); child != nil {
				children = append(children, child)
			}

		case token.LBrace:
			children = append(children, p.parseJSXExprContainer())

		default:
			children = append(children, p.parseJSXText())
		}
	}
}

// parseJSXText consumes a run of arbitrary tokens as markup text, stopping
// at '<', '</', '{', or EOF. The node keeps the exact source slice.
func (p *Parser) parseJSXText() ast.Expr {
	start := p.cur().Span
	end := start

	for !p.atOr(token.Lt, token.LtSlash, token.LBrace, token.EOF) {
		tok := p.advance()
		end = tok.Span
	}

	loc := source.Span{File: start.File, Start: start.Start, End: end.End}
	return &ast.JSXText{
		Raw: string(p.file.Content[loc.Start:loc.End]),
		Loc: loc,
	}
}
