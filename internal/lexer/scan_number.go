package lexer

import (
	"jsxwrap/internal/diag"
	"jsxwrap/internal/source"
	"jsxwrap/internal/token"
)

// scanNumber scans decimal literals: 123, 1.5, .5, 1e9, 0x1f.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	// hex
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'x' || b1 == 'X') {
		lx.cursor.Bump()
		lx.cursor.Bump()
		digits := 0
		for isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
			digits++
		}
		sp := lx.cursor.SpanFrom(start)
		if digits == 0 {
			lx.report(diag.LexBadNumber, sp, "hex literal needs at least one digit")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		return token.Token{Kind: token.NumberLit, Span: sp, Text: lx.text(sp)}
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.isNumberAfterDot() || lx.cursor.Peek() == '.' && lx.cursor.Off != uint32(start) {
		if lx.cursor.Eat('.') {
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if b2 := lx.cursor.Peek(); b2 == '+' || b2 == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			// not an exponent after all
			lx.cursor.Reset(mark)
		} else {
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.NumberLit, Span: sp, Text: lx.text(sp)}
}

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
