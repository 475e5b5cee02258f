package diag

import (
	"fmt"
)

// Code is a compact, stable identifier for a diagnostic kind.
// Ranges: 1xxx lexical, 2xxx syntax, 3xxx io, 4xxx lint.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexUnknownChar         Code = 1001
	LexUnterminatedString  Code = 1002
	LexUnterminatedComment Code = 1003
	LexBadNumber           Code = 1004

	// Syntax
	SynUnexpectedToken    Code = 2001
	SynExpectExpression   Code = 2002
	SynExpectIdentifier   Code = 2003
	SynUnclosedParen      Code = 2004
	SynUnclosedBrace      Code = 2005
	SynUnclosedBracket    Code = 2006
	SynUnclosedJSXTag     Code = 2007
	SynMismatchedJSXClose Code = 2008
	SynExpectAttrValue    Code = 2009
	SynExpectArrowBody    Code = 2010

	// IO
	IOLoadFileError Code = 3001

	// Lint
	LintWrapMultiline Code = 4001
)

var codeNames = map[Code]string{
	UnknownCode:            "unknown",
	LexUnknownChar:         "unknown-char",
	LexUnterminatedString:  "unterminated-string",
	LexUnterminatedComment: "unterminated-comment",
	LexBadNumber:           "bad-number",
	SynUnexpectedToken:     "unexpected-token",
	SynExpectExpression:    "expect-expression",
	SynExpectIdentifier:    "expect-identifier",
	SynUnclosedParen:       "unclosed-paren",
	SynUnclosedBrace:       "unclosed-brace",
	SynUnclosedBracket:     "unclosed-bracket",
	SynUnclosedJSXTag:      "unclosed-jsx-tag",
	SynMismatchedJSXClose:  "mismatched-jsx-close",
	SynExpectAttrValue:     "expect-attr-value",
	SynExpectArrowBody:     "expect-arrow-body",
	IOLoadFileError:        "load-file-error",
	LintWrapMultiline:      "wrap-multilines",
}

// ID returns the stable machine form, e.g. "JSX4001".
func (c Code) ID() string {
	return fmt.Sprintf("JSX%04d", uint16(c))
}

// String returns the human-readable name, falling back to the ID.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return c.ID()
}
