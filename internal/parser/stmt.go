package parser

import (
	"jsxwrap/internal/ast"
	"jsxwrap/internal/diag"
	"jsxwrap/internal/token"
)

func (p *Parser) parseStmt() ast.Stmt {
	switch p.cur().Kind {
	case token.KwConst, token.KwLet, token.KwVar:
		return p.parseVarDeclStmt()
	case token.KwFunction:
		return p.parseFuncDecl()
	case token.KwReturn:
		return p.parseReturnStmt()
	case token.LBrace:
		return p.parseBlockStmt()
	case token.Semicolon:
		p.advance()
		return nil
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseVarDeclStmt() ast.Stmt {
	kw := p.advance()

	var keyword ast.DeclKeyword
	switch kw.Kind {
	case token.KwConst:
		keyword = ast.DeclConst
	case token.KwLet:
		keyword = ast.DeclLet
	default:
		keyword = ast.DeclVar
	}

	decls := make([]*ast.VarDecl, 0, 1)
	for {
		name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected identifier in declaration")
		if !ok {
			break
		}
		decl := &ast.VarDecl{
			Name: &ast.Ident{Name: name.Text, Loc: name.Span},
			Loc:  name.Span,
		}
		if p.eat(token.Assign) {
			decl.Init = p.parseAssignExpr()
			if decl.Init != nil {
				decl.Loc = decl.Loc.Cover(decl.Init.Span())
			}
		}
		decls = append(decls, decl)
		if !p.eat(token.Comma) {
			break
		}
	}
	p.eat(token.Semicolon)

	return &ast.VarDeclStmt{
		Keyword: keyword,
		Decls:   decls,
		Loc:     p.spanFrom(kw.Span),
	}
}

func (p *Parser) parseFuncDecl() ast.Stmt {
	kw := p.advance()
	decl := &ast.FuncDecl{Loc: kw.Span}

	if name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected function name"); ok {
		decl.Name = &ast.Ident{Name: name.Text, Loc: name.Span}
	}

	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after function name"); ok {
		for !p.atOr(token.RParen, token.EOF) {
			param, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected parameter name")
			if !ok {
				break
			}
			decl.Params = append(decl.Params, &ast.Ident{Name: param.Text, Loc: param.Span})
			if !p.eat(token.Comma) {
				break
			}
		}
		p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close parameter list")
	}

	if p.at(token.LBrace) {
		decl.Body = p.parseBlockStmt()
	} else {
		p.err(diag.SynUnexpectedToken, "expected '{' to open function body")
	}

	decl.Loc = p.spanFrom(kw.Span)
	return decl
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	kw := p.advance()
	stmt := &ast.ReturnStmt{Loc: kw.Span}

	if !p.atOr(token.Semicolon, token.RBrace, token.EOF) {
		stmt.Result = p.parseAssignExpr()
	}
	p.eat(token.Semicolon)
	stmt.Loc = p.spanFrom(kw.Span)
	return stmt
}

func (p *Parser) parseBlockStmt() *ast.BlockStmt {
	open := p.advance()
	stmts := make([]ast.Stmt, 0, 4)

	for !p.atOr(token.RBrace, token.EOF) {
		before := p.pos
		if stmt := p.parseStmt(); stmt != nil {
			stmts = append(stmts, stmt)
		}
		if p.pos == before {
			p.advance()
		}
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close block"); !ok {
		return &ast.BlockStmt{Stmts: stmts, Loc: p.spanFrom(open.Span)}
	}
	return &ast.BlockStmt{Stmts: stmts, Loc: p.spanFrom(open.Span)}
}

func (p *Parser) parseExprStmt() ast.Stmt {
	start := p.cur().Span
	x := p.parseAssignExpr()
	if x == nil {
		return nil
	}
	p.eat(token.Semicolon)
	return &ast.ExprStmt{X: x, Loc: p.spanFrom(start)}
}
