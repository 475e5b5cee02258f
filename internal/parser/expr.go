package parser

import (
	"jsxwrap/internal/ast"
	"jsxwrap/internal/diag"
	"jsxwrap/internal/token"
)

// parseAssignExpr is the entry point of the expression grammar:
// assignment -> conditional -> ?? -> || -> && -> equality -> relational ->
// additive -> multiplicative -> unary -> postfix -> primary.
func (p *Parser) parseAssignExpr() ast.Expr {
	left := p.parseCondExpr()
	if left == nil {
		return nil
	}

	if p.cur().Kind.IsAssignOp() {
		op := p.advance()
		right := p.parseAssignExpr()
		loc := left.Span()
		if right != nil {
			loc = loc.Cover(right.Span())
		}
		return &ast.AssignExpr{Op: op.Kind, Left: left, Right: right, Loc: loc}
	}
	return left
}

func (p *Parser) parseCondExpr() ast.Expr {
	cond := p.parseNullish()
	if cond == nil || !p.at(token.Question) {
		return cond
	}
	p.advance()

	consequent := p.parseAssignExpr()
	p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' in conditional expression")
	alternate := p.parseAssignExpr()

	loc := cond.Span()
	if alternate != nil {
		loc = loc.Cover(alternate.Span())
	} else if consequent != nil {
		loc = loc.Cover(consequent.Span())
	}
	return &ast.CondExpr{Cond: cond, Consequent: consequent, Alternate: alternate, Loc: loc}
}

func (p *Parser) parseNullish() ast.Expr {
	return p.parseLogical(token.QuestionQuestion, p.parseLogicalOr)
}

func (p *Parser) parseLogicalOr() ast.Expr {
	return p.parseLogical(token.OrOr, p.parseLogicalAnd)
}

func (p *Parser) parseLogicalAnd() ast.Expr {
	return p.parseLogical(token.AndAnd, p.parseEquality)
}

func (p *Parser) parseLogical(op token.Kind, next func() ast.Expr) ast.Expr {
	left := next()
	for left != nil && p.at(op) {
		p.advance()
		right := next()
		loc := left.Span()
		if right != nil {
			loc = loc.Cover(right.Span())
		}
		left = &ast.LogicalExpr{Op: op, Left: left, Right: right, Loc: loc}
	}
	return left
}

func (p *Parser) parseEquality() ast.Expr {
	return p.parseBinary(p.parseRelational, token.EqEq, token.EqEqEq, token.BangEq, token.BangEqEq)
}

func (p *Parser) parseRelational() ast.Expr {
	return p.parseBinary(p.parseAdditive, token.Lt, token.Gt, token.LtEq, token.GtEq)
}

func (p *Parser) parseAdditive() ast.Expr {
	return p.parseBinary(p.parseMultiplicative, token.Plus, token.Minus)
}

func (p *Parser) parseMultiplicative() ast.Expr {
	return p.parseBinary(p.parseUnary, token.Star, token.Slash, token.Percent)
}

func (p *Parser) parseBinary(next func() ast.Expr, ops ...token.Kind) ast.Expr {
	left := next()
	for left != nil && p.atOr(ops...) {
		op := p.advance()
		right := next()
		loc := left.Span()
		if right != nil {
			loc = loc.Cover(right.Span())
		}
		left = &ast.BinaryExpr{Op: op.Kind, Left: left, Right: right, Loc: loc}
	}
	return left
}

func (p *Parser) parseUnary() ast.Expr {
	if p.atOr(token.Bang, token.Minus, token.Plus) {
		op := p.advance()
		x := p.parseUnary()
		loc := op.Span
		if x != nil {
			loc = loc.Cover(x.Span())
		}
		return &ast.UnaryExpr{Op: op.Kind, X: x, Loc: loc}
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.Expr {
	x := p.parsePrimary()

	for x != nil {
		switch p.cur().Kind {
		case token.LParen:
			p.advance()
			args := make([]ast.Expr, 0, 2)
			for !p.atOr(token.RParen, token.EOF) {
				if arg := p.parseAssignExpr(); arg != nil {
					args = append(args, arg)
				}
				if !p.eat(token.Comma) {
					break
				}
			}
			p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close call")
			x = &ast.CallExpr{Fun: x, Args: args, Loc: p.spanFrom(x.Span())}

		case token.Dot:
			p.advance()
			name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected property name after '.'")
			if !ok {
				return x
			}
			x = &ast.MemberExpr{
				Obj:  x,
				Prop: &ast.Ident{Name: name.Text, Loc: name.Span},
				Loc:  x.Span().Cover(name.Span),
			}

		case token.LBracket:
			p.advance()
			index := p.parseAssignExpr()
			p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' to close index")
			x = &ast.IndexExpr{Obj: x, Index: index, Loc: p.spanFrom(x.Span())}

		default:
			return x
		}
	}
	return x
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.cur()

	switch tok.Kind {
	case token.Ident:
		if p.peekAt(1).Kind == token.FatArrow {
			return p.parseArrowFunc()
		}
		p.advance()
		return &ast.Ident{Name: tok.Text, Loc: tok.Span}

	case token.NumberLit, token.StringLit, token.KwTrue, token.KwFalse, token.KwNull:
		p.advance()
		return &ast.BasicLit{Kind: tok.Kind, Value: tok.Text, Loc: tok.Span}

	case token.LParen:
		if p.parenArrowAhead() {
			return p.parseArrowFunc()
		}
		// grouping parens: the inner expression keeps its own span, the
		// paren tokens stay visible only in the token stream
		p.advance()
		x := p.parseAssignExpr()
		p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close group")
		return x

	case token.LBracket:
		return p.parseArrayLit()

	case token.LBrace:
		return p.parseObjectLit()

	case token.Lt:
		return p.parseJSX()

	default:
		p.err(diag.SynExpectExpression, "expected expression")
		return nil
	}
}

// parenArrowAhead reports whether the '(' at the cursor opens an arrow
// parameter list, i.e. the matching ')' is directly followed by '=>'.
func (p *Parser) parenArrowAhead() bool {
	depth := 0
	for i := 0; ; i++ {
		switch p.peekAt(i).Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
			if depth == 0 {
				return p.peekAt(i+1).Kind == token.FatArrow
			}
		case token.EOF:
			return false
		}
	}
}

func (p *Parser) parseArrowFunc() ast.Expr {
	start := p.cur().Span
	params := make([]*ast.Ident, 0, 2)

	if p.at(token.Ident) {
		name := p.advance()
		params = append(params, &ast.Ident{Name: name.Text, Loc: name.Span})
	} else {
		p.expect(token.LParen, diag.SynUnexpectedToken, "expected arrow parameter list")
		for !p.atOr(token.RParen, token.EOF) {
			name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected parameter name")
			if !ok {
				break
			}
			params = append(params, &ast.Ident{Name: name.Text, Loc: name.Span})
			if !p.eat(token.Comma) {
				break
			}
		}
		p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close parameter list")
	}

	p.expect(token.FatArrow, diag.SynUnexpectedToken, "expected '=>'")

	var body ast.Node
	if p.at(token.LBrace) {
		body = p.parseBlockStmt()
	} else {
		body = p.parseAssignExpr()
	}
	if body == nil {
		p.err(diag.SynExpectArrowBody, "expected arrow function body")
	}

	return &ast.ArrowFunc{Params: params, Body: body, Loc: p.spanFrom(start)}
}

func (p *Parser) parseArrayLit() ast.Expr {
	open := p.advance()
	elems := make([]ast.Expr, 0, 4)
	for !p.atOr(token.RBracket, token.EOF) {
		if e := p.parseAssignExpr(); e != nil {
			elems = append(elems, e)
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' to close array")
	return &ast.ArrayLit{Elems: elems, Loc: p.spanFrom(open.Span)}
}

func (p *Parser) parseObjectLit() ast.Expr {
	open := p.advance()
	fields := make([]ast.ObjectField, 0, 4)

	for !p.atOr(token.RBrace, token.EOF) {
		var key string
		keyTok := p.cur()
		switch keyTok.Kind {
		case token.Ident, token.StringLit, token.NumberLit:
			p.advance()
			key = keyTok.Text
		default:
			p.err(diag.SynExpectIdentifier, "expected object key")
			break
		}
		if key == "" {
			break
		}

		var value ast.Expr
		if p.eat(token.Colon) {
			value = p.parseAssignExpr()
		} else {
			// shorthand {name}
			value = &ast.Ident{Name: key, Loc: keyTok.Span}
		}

		loc := keyTok.Span
		if value != nil {
			loc = loc.Cover(value.Span())
		}
		fields = append(fields, ast.ObjectField{Key: key, Value: value, Loc: loc})

		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close object")
	return &ast.ObjectLit{Fields: fields, Loc: p.spanFrom(open.Span)}
}
