package token

import (
	"sort"

	"jsxwrap/internal/source"
)

// Stream is an immutable, position-ordered view over one file's tokens. It
// answers neighbor queries by byte offset: the token ending at or before a
// span and the token starting at or after it. Comments live in trivia, so
// they are invisible to these lookups.
type Stream struct {
	toks []Token
}

// NewStream wraps an already-ordered token slice. The EOF token, if present,
// is excluded from neighbor lookups.
func NewStream(toks []Token) *Stream {
	n := len(toks)
	if n > 0 && toks[n-1].Kind == EOF {
		toks = toks[:n-1]
	}
	return &Stream{toks: toks}
}

// Tokens returns the underlying slice. Callers must not modify it.
func (s *Stream) Tokens() []Token {
	return s.toks
}

// Before returns the last token whose span ends at or before sp.Start.
func (s *Stream) Before(sp source.Span) (Token, bool) {
	// first index with End > sp.Start; the answer precedes it
	i := sort.Search(len(s.toks), func(i int) bool {
		return s.toks[i].Span.End > sp.Start
	})
	if i == 0 {
		return Token{}, false
	}
	return s.toks[i-1], true
}

// After returns the first token whose span starts at or after sp.End.
func (s *Stream) After(sp source.Span) (Token, bool) {
	i := sort.Search(len(s.toks), func(i int) bool {
		return s.toks[i].Span.Start >= sp.End
	})
	if i == len(s.toks) {
		return Token{}, false
	}
	return s.toks[i], true
}
