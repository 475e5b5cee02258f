package token

import (
	"testing"

	"jsxwrap/internal/source"
)

func mkTok(kind Kind, start, end uint32, text string) Token {
	return Token{Kind: kind, Span: source.Span{Start: start, End: end}, Text: text}
}

// tokens for "(x)" plus EOF
func parenStream() *Stream {
	return NewStream([]Token{
		mkTok(LParen, 0, 1, "("),
		mkTok(Ident, 1, 2, "x"),
		mkTok(RParen, 2, 3, ")"),
		mkTok(EOF, 3, 3, ""),
	})
}

func TestStreamBefore(t *testing.T) {
	s := parenStream()

	tests := []struct {
		name     string
		span     source.Span
		wantText string
		wantOK   bool
	}{
		{"before inner ident", source.Span{Start: 1, End: 2}, "(", true},
		{"before closing paren", source.Span{Start: 2, End: 3}, "x", true},
		{"nothing before first token", source.Span{Start: 0, End: 1}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, ok := s.Before(tt.span)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && tok.Text != tt.wantText {
				t.Errorf("Before = %q, want %q", tok.Text, tt.wantText)
			}
		})
	}
}

func TestStreamAfter(t *testing.T) {
	s := parenStream()

	tests := []struct {
		name     string
		span     source.Span
		wantText string
		wantOK   bool
	}{
		{"after inner ident", source.Span{Start: 1, End: 2}, ")", true},
		{"after opening paren", source.Span{Start: 0, End: 1}, "x", true},
		{"nothing after last token", source.Span{Start: 2, End: 3}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, ok := s.After(tt.span)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && tok.Text != tt.wantText {
				t.Errorf("After = %q, want %q", tok.Text, tt.wantText)
			}
		})
	}
}

func TestStreamExcludesEOF(t *testing.T) {
	s := parenStream()
	if _, ok := s.After(source.Span{Start: 2, End: 3}); ok {
		t.Error("EOF must not be returned as a neighbor")
	}
	if got := len(s.Tokens()); got != 3 {
		t.Errorf("len(Tokens) = %d, want 3", got)
	}
}

func TestLookupKeyword(t *testing.T) {
	if LookupKeyword("const") != KwConst {
		t.Error("const not recognized")
	}
	if LookupKeyword("component") != Ident {
		t.Error("non-keyword should map to Ident")
	}
}
