package ast

import (
	"jsxwrap/internal/source"
	"jsxwrap/internal/token"
)

// Ident is an identifier reference.
type Ident struct {
	Name string
	Loc  source.Span
}

func (e *Ident) Span() source.Span { return e.Loc }
func (e *Ident) exprNode()         {}

// BasicLit is a number, string, boolean, or null literal. Kind is the
// literal's token kind; Value the exact source text.
type BasicLit struct {
	Kind  token.Kind
	Value string
	Loc   source.Span
}

func (e *BasicLit) Span() source.Span { return e.Loc }
func (e *BasicLit) exprNode()         {}

// AssignExpr is `left op right` for =, +=, -=, *=, /=, %=.
type AssignExpr struct {
	Op    token.Kind
	Left  Expr
	Right Expr
	Loc   source.Span
}

func (e *AssignExpr) Span() source.Span { return e.Loc }
func (e *AssignExpr) exprNode()         {}

// CondExpr is the ternary `cond ? consequent : alternate`.
type CondExpr struct {
	Cond       Expr
	Consequent Expr
	Alternate  Expr
	Loc        source.Span
}

func (e *CondExpr) Span() source.Span { return e.Loc }
func (e *CondExpr) exprNode()         {}

// LogicalExpr is `left op right` for &&, ||, ??.
type LogicalExpr struct {
	Op    token.Kind
	Left  Expr
	Right Expr
	Loc   source.Span
}

func (e *LogicalExpr) Span() source.Span { return e.Loc }
func (e *LogicalExpr) exprNode()         {}

// BinaryExpr covers comparison and arithmetic operators.
type BinaryExpr struct {
	Op    token.Kind
	Left  Expr
	Right Expr
	Loc   source.Span
}

func (e *BinaryExpr) Span() source.Span { return e.Loc }
func (e *BinaryExpr) exprNode()         {}

// UnaryExpr is a prefix operator application (!x, -x, +x).
type UnaryExpr struct {
	Op  token.Kind
	X   Expr
	Loc source.Span
}

func (e *UnaryExpr) Span() source.Span { return e.Loc }
func (e *UnaryExpr) exprNode()         {}

// CallExpr is `fun(args...)`.
type CallExpr struct {
	Fun  Expr
	Args []Expr
	Loc  source.Span
}

func (e *CallExpr) Span() source.Span { return e.Loc }
func (e *CallExpr) exprNode()         {}

// MemberExpr is `obj.prop`.
type MemberExpr struct {
	Obj  Expr
	Prop *Ident
	Loc  source.Span
}

func (e *MemberExpr) Span() source.Span { return e.Loc }
func (e *MemberExpr) exprNode()         {}

// IndexExpr is `obj[index]`.
type IndexExpr struct {
	Obj   Expr
	Index Expr
	Loc   source.Span
}

func (e *IndexExpr) Span() source.Span { return e.Loc }
func (e *IndexExpr) exprNode()         {}

// ArrowFunc is `(params) => body`. Body is either an Expr (implicit return)
// or a *BlockStmt.
type ArrowFunc struct {
	Params []*Ident
	Body   Node
	Loc    source.Span
}

func (e *ArrowFunc) Span() source.Span { return e.Loc }
func (e *ArrowFunc) exprNode()         {}

// ExprBody returns the body as an expression when the arrow has an
// implicit-return body, or nil for block bodies.
func (e *ArrowFunc) ExprBody() Expr {
	if body, ok := e.Body.(Expr); ok {
		return body
	}
	return nil
}

// ArrayLit is `[elems...]`.
type ArrayLit struct {
	Elems []Expr
	Loc   source.Span
}

func (e *ArrayLit) Span() source.Span { return e.Loc }
func (e *ArrayLit) exprNode()         {}

// ObjectField is one `key: value` entry of an object literal.
type ObjectField struct {
	Key   string
	Value Expr
	Loc   source.Span
}

// ObjectLit is `{key: value, ...}`.
type ObjectLit struct {
	Fields []ObjectField
	Loc    source.Span
}

func (e *ObjectLit) Span() source.Span { return e.Loc }
func (e *ObjectLit) exprNode()         {}
