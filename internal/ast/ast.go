// Package ast defines the syntax tree for the JS/JSX dialect jsxwrap lints.
//
// The node set is closed: consumers classify nodes with type switches, and
// the parser is the only producer. Grouping parentheses are NOT represented
// as nodes; a parenthesized expression is the inner expression with the
// paren tokens left in the token stream. Whether an expression is wrapped is
// a token-level question, answered against the token stream, not the tree.
package ast

import (
	"jsxwrap/internal/source"
)

// Node is implemented by every syntax node.
type Node interface {
	Span() source.Span
}

// Expr is implemented by expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// File is the root of one parsed source file.
type File struct {
	Stmts []Stmt
	Loc   source.Span
}

func (f *File) Span() source.Span { return f.Loc }
