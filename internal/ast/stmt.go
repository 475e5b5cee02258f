package ast

import (
	"jsxwrap/internal/source"
)

// DeclKeyword distinguishes const/let/var declarations.
type DeclKeyword uint8

const (
	DeclConst DeclKeyword = iota
	DeclLet
	DeclVar
)

func (k DeclKeyword) String() string {
	switch k {
	case DeclConst:
		return "const"
	case DeclLet:
		return "let"
	case DeclVar:
		return "var"
	}
	return "unknown"
}

// VarDecl is a single declarator: name plus optional initializer.
type VarDecl struct {
	Name *Ident
	Init Expr // may be nil
	Loc  source.Span
}

func (d *VarDecl) Span() source.Span { return d.Loc }

// VarDeclStmt is a const/let/var statement with one or more declarators.
type VarDeclStmt struct {
	Keyword DeclKeyword
	Decls   []*VarDecl
	Loc     source.Span
}

func (s *VarDeclStmt) Span() source.Span { return s.Loc }
func (s *VarDeclStmt) stmtNode()         {}

// ReturnStmt returns an optional result expression.
type ReturnStmt struct {
	Result Expr // may be nil
	Loc    source.Span
}

func (s *ReturnStmt) Span() source.Span { return s.Loc }
func (s *ReturnStmt) stmtNode()         {}

// FuncDecl is a `function name(params) { ... }` declaration.
type FuncDecl struct {
	Name   *Ident
	Params []*Ident
	Body   *BlockStmt
	Loc    source.Span
}

func (s *FuncDecl) Span() source.Span { return s.Loc }
func (s *FuncDecl) stmtNode()         {}

// ExprStmt wraps an expression used as a statement.
type ExprStmt struct {
	X   Expr
	Loc source.Span
}

func (s *ExprStmt) Span() source.Span { return s.Loc }
func (s *ExprStmt) stmtNode()         {}

// BlockStmt is a braced statement list. It doubles as an arrow-function
// block body.
type BlockStmt struct {
	Stmts []Stmt
	Loc   source.Span
}

func (s *BlockStmt) Span() source.Span { return s.Loc }
func (s *BlockStmt) stmtNode()         {}
