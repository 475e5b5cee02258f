package lexer

import (
	"fmt"

	"jsxwrap/internal/diag"
	"jsxwrap/internal/token"
)

// scanOperatorOrPunct scans operators and punctuation, longest match first.
// JSX composites `</` and `/>` are produced here as single tokens; the
// parser decides whether they open markup or are ordinary comparisons.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	kind := token.Invalid
	switch {
	// three-byte operators
	case lx.try3('=', '=', '='):
		kind = token.EqEqEq
	case lx.try3('!', '=', '='):
		kind = token.BangEqEq
	case lx.try3('.', '.', '.'):
		kind = token.Ellipsis

	// two-byte operators
	case lx.try2('=', '>'):
		kind = token.FatArrow
	case lx.try2('=', '='):
		kind = token.EqEq
	case lx.try2('!', '='):
		kind = token.BangEq
	case lx.try2('&', '&'):
		kind = token.AndAnd
	case lx.try2('|', '|'):
		kind = token.OrOr
	case lx.try2('?', '?'):
		kind = token.QuestionQuestion
	case lx.try2('<', '/'):
		kind = token.LtSlash
	case lx.try2('/', '>'):
		kind = token.SlashGt
	case lx.try2('<', '='):
		kind = token.LtEq
	case lx.try2('>', '='):
		kind = token.GtEq
	case lx.try2('+', '='):
		kind = token.PlusAssign
	case lx.try2('-', '='):
		kind = token.MinusAssign
	case lx.try2('*', '='):
		kind = token.StarAssign
	case lx.try2('/', '='):
		kind = token.SlashAssign
	case lx.try2('%', '='):
		kind = token.PercentAssign

	default:
		b := lx.cursor.Bump()
		switch b {
		case '(':
			kind = token.LParen
		case ')':
			kind = token.RParen
		case '{':
			kind = token.LBrace
		case '}':
			kind = token.RBrace
		case '[':
			kind = token.LBracket
		case ']':
			kind = token.RBracket
		case '<':
			kind = token.Lt
		case '>':
			kind = token.Gt
		case '=':
			kind = token.Assign
		case '?':
			kind = token.Question
		case ':':
			kind = token.Colon
		case '!':
			kind = token.Bang
		case '+':
			kind = token.Plus
		case '-':
			kind = token.Minus
		case '*':
			kind = token.Star
		case '/':
			kind = token.Slash
		case '%':
			kind = token.Percent
		case ',':
			kind = token.Comma
		case ';':
			kind = token.Semicolon
		case '.':
			kind = token.Dot
		default:
			sp := lx.cursor.SpanFrom(start)
			lx.report(diag.LexUnknownChar, sp, fmt.Sprintf("unexpected character %q", b))
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}
