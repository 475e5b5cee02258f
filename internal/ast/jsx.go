package ast

import (
	"jsxwrap/internal/source"
)

// JSXElement is `<name attrs>children</name>` or the self-closing form.
// Name keeps the raw tag text, including member tags like `Foo.Bar`.
type JSXElement struct {
	Name        string
	Attrs       []JSXAttrNode
	Children    []Expr
	SelfClosing bool
	Loc         source.Span
}

func (e *JSXElement) Span() source.Span { return e.Loc }
func (e *JSXElement) exprNode()         {}

// JSXFragment is `<>children</>`.
type JSXFragment struct {
	Children []Expr
	Loc      source.Span
}

func (e *JSXFragment) Span() source.Span { return e.Loc }
func (e *JSXFragment) exprNode()         {}

// JSXText is a raw run of markup text between tags.
type JSXText struct {
	Raw string
	Loc source.Span
}

func (e *JSXText) Span() source.Span { return e.Loc }
func (e *JSXText) exprNode()         {}

// JSXExprContainer is a `{expr}` hole in markup, as a child or as an
// attribute value. X may be nil for an empty container `{}`.
type JSXExprContainer struct {
	X   Expr
	Loc source.Span
}

func (e *JSXExprContainer) Span() source.Span { return e.Loc }
func (e *JSXExprContainer) exprNode()         {}

// JSXAttrNode is implemented by the two attribute forms.
type JSXAttrNode interface {
	Node
	jsxAttrNode()
}

// JSXAttr is `name`, `name="str"`, or `name={expr}`. Value is nil, a
// *BasicLit string, or a *JSXExprContainer.
type JSXAttr struct {
	Name  string
	Value Expr
	Loc   source.Span
}

func (a *JSXAttr) Span() source.Span { return a.Loc }
func (a *JSXAttr) jsxAttrNode()      {}

// JSXSpreadAttr is `{...expr}`.
type JSXSpreadAttr struct {
	X   Expr
	Loc source.Span
}

func (a *JSXSpreadAttr) Span() source.Span { return a.Loc }
func (a *JSXSpreadAttr) jsxAttrNode()      {}

// IsJSX reports whether the node is a markup element or fragment, the only
// node kinds the wrap rule ever flags.
func IsJSX(n Node) bool {
	switch n.(type) {
	case *JSXElement, *JSXFragment:
		return true
	default:
		return false
	}
}
