package lexer

import (
	"jsxwrap/internal/diag"
	"jsxwrap/internal/source"
)

// Options configures lexer behavior.
type Options struct {
	// Reporter receives lexical diagnostics. May be nil; scanning continues
	// either way.
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil, nil)
	}
}
