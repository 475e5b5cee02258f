// Package rule implements the wrap-multilines check: a multiline JSX
// element in certain syntactic positions must be enclosed in grouping
// parentheses.
//
// The check never inspects markup content and never crosses files. Whether
// an element is wrapped is decided against the token stream, not the tree:
// the token immediately before the element must be '(' and the token
// immediately after must be ')'.
package rule

import (
	"fmt"

	"jsxwrap/internal/ast"
	"jsxwrap/internal/diag"
	"jsxwrap/internal/fix"
	"jsxwrap/internal/source"
	"jsxwrap/internal/token"
)

// Message is the single diagnostic text the rule emits.
const Message = "missing parentheses around multiline JSX"

// Checker evaluates one parsed file against a resolved Config.
type Checker struct {
	cfg  Config
	fs   *source.FileSet
	toks *token.Stream
	rep  diag.Reporter
}

// NewChecker builds a checker for one file's tokens. The reporter receives
// one warning per violation, each carrying a deferred wrap fix.
func NewChecker(cfg Config, fs *source.FileSet, toks *token.Stream, rep diag.Reporter) *Checker {
	return &Checker{cfg: cfg, fs: fs, toks: toks, rep: rep}
}

// Check walks the file and reports every violation.
func (c *Checker) Check(file *ast.File) {
	ast.Walk(&visitor{c: c}, file)
}

// visitor maps traversal events onto the seven contexts. Every context is
// classified on enter except the arrow body, which must wait until the
// arrow's subtree has been fully entered (nested arrows resolve inner-first).
type visitor struct {
	c *Checker
}

func (v *visitor) Enter(n ast.Node) bool {
	c := v.c
	switch node := n.(type) {
	case *ast.VarDecl:
		if c.cfg.Declaration {
			c.checkTopLevel(node.Init)
		}

	case *ast.AssignExpr:
		if c.cfg.Assignment {
			c.checkTopLevel(node.Right)
		}

	case *ast.ReturnStmt:
		if c.cfg.Return {
			c.checkCandidate(node.Result)
		}

	case *ast.CondExpr:
		if c.cfg.Condition {
			c.checkCandidate(node.Consequent)
			c.checkCandidate(node.Alternate)
		}

	case *ast.LogicalExpr:
		// only the right operand; the left is never checked
		if c.cfg.Logical {
			c.checkCandidate(node.Right)
		}

	case *ast.JSXAttr:
		if c.cfg.Prop {
			if container, ok := node.Value.(*ast.JSXExprContainer); ok {
				c.checkCandidate(container.X)
			}
		}
	}
	return true
}

func (v *visitor) Exit(n ast.Node) {
	c := v.c
	if arrow, ok := n.(*ast.ArrowFunc); ok && c.cfg.Arrow {
		// implicit-return bodies only; block bodies belong to the
		// return context
		c.checkCandidate(arrow.ExprBody())
	}
}

// checkTopLevel evaluates a declaration initializer or assignment RHS. When
// the expression is a conditional and the condition context is off, the
// branches are evaluated here instead of the conditional as a whole; the
// branches are what the user actually writes, and the conditional itself
// must not be double-reported.
func (c *Checker) checkTopLevel(x ast.Expr) {
	if cond, ok := x.(*ast.CondExpr); ok && !c.cfg.Condition {
		c.checkCandidate(cond.Consequent)
		c.checkCandidate(cond.Alternate)
		return
	}
	c.checkCandidate(x)
}

// checkCandidate reports the candidate when it is a multiline, unwrapped
// JSX node. Absent or non-JSX candidates are silently skipped.
func (c *Checker) checkCandidate(x ast.Expr) {
	if x == nil || !ast.IsJSX(x) {
		return
	}
	if !c.shouldFlag(x) {
		return
	}
	span := x.Span()
	diag.ReportWarning(c.rep, diag.LintWrapMultiline, span, Message).
		WithFixSuggestion(fix.WrapSpan(
			"wrap in parentheses",
			span,
			fix.WithID(fmt.Sprintf("wrap-%d-%d-%d", span.File, span.Start, span.End)),
			fix.Preferred(),
		)).
		Emit()
}

// shouldFlag implements the multiline-unparenthesized predicate.
func (c *Checker) shouldFlag(x ast.Expr) bool {
	span := x.Span()

	start, end := c.fs.Resolve(span)
	if start.Line == end.Line {
		// single-line nodes never need wrapping
		return false
	}

	return !c.parenthesized(span)
}

// parenthesized reports whether the span is immediately flanked by a '('
// and ')' token pair. Both neighbors must exist: a node at the very start
// or end of a file is not parenthesized. Requiring both tokens at once
// keeps unrelated parentheses (a call's, a group around a larger
// expression) from counting.
func (c *Checker) parenthesized(span source.Span) bool {
	before, ok := c.toks.Before(span)
	if !ok || before.Kind != token.LParen || before.Span.End > span.Start {
		return false
	}
	after, ok := c.toks.After(span)
	if !ok || after.Kind != token.RParen || after.Span.Start < span.End {
		return false
	}
	return true
}
