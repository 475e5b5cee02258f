package lexer

import (
	"testing"

	"jsxwrap/internal/diag"
	"jsxwrap/internal/source"
	"jsxwrap/internal/token"
)

func lexSource(t *testing.T, src string) ([]token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.jsx", []byte(src))
	bag := diag.NewBag(64)
	toks := Tokenize(fs.Get(fileID), Options{Reporter: &diag.BagReporter{Bag: bag}})
	return toks, bag
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}

func requireKinds(t *testing.T, got []token.Token, want []token.Kind) {
	t.Helper()
	gotKinds := kinds(got)
	if len(gotKinds) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(gotKinds), len(want), gotKinds)
	}
	for i := range want {
		if gotKinds[i] != want[i] {
			t.Fatalf("token %d = %v, want %v", i, gotKinds[i], want[i])
		}
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	toks, bag := lexSource(t, "const answer = value;")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %d", bag.Len())
	}
	requireKinds(t, toks, []token.Kind{
		token.KwConst, token.Ident, token.Assign, token.Ident, token.Semicolon, token.EOF,
	})
	if toks[0].Text != "const" || toks[1].Text != "answer" {
		t.Fatalf("texts = %q, %q", toks[0].Text, toks[1].Text)
	}
}

func TestJSXCompositeOperators(t *testing.T) {
	toks, bag := lexSource(t, "<div>x</div> <br/>")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %d", bag.Len())
	}
	requireKinds(t, toks, []token.Kind{
		token.Lt, token.Ident, token.Gt,
		token.Ident,
		token.LtSlash, token.Ident, token.Gt,
		token.Lt, token.Ident, token.SlashGt,
		token.EOF,
	})
}

func TestOperatorLongestMatch(t *testing.T) {
	toks, _ := lexSource(t, "a === b => c ?? d ...e")
	requireKinds(t, toks, []token.Kind{
		token.Ident, token.EqEqEq, token.Ident,
		token.FatArrow, token.Ident,
		token.QuestionQuestion, token.Ident,
		token.Ellipsis, token.Ident,
		token.EOF,
	})
}

func TestLeadingTriviaAttachment(t *testing.T) {
	toks, _ := lexSource(t, "// header\n/* block */ const x = 1;")
	if toks[0].Kind != token.KwConst {
		t.Fatalf("first token = %v", toks[0].Kind)
	}
	if len(toks[0].Leading) != 2 {
		t.Fatalf("leading trivia = %d, want 2", len(toks[0].Leading))
	}
	if toks[0].Leading[0].Kind != token.TriviaLineComment {
		t.Fatalf("trivia 0 kind = %v", toks[0].Leading[0].Kind)
	}
	if toks[0].Leading[0].Text != "// header" {
		t.Fatalf("trivia 0 text = %q", toks[0].Leading[0].Text)
	}
	if toks[0].Leading[1].Kind != token.TriviaBlockComment {
		t.Fatalf("trivia 1 kind = %v", toks[0].Leading[1].Kind)
	}
}

func TestStrings(t *testing.T) {
	toks, bag := lexSource(t, `const s = "hi \"there\"" + 'x';`)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %d", bag.Len())
	}
	requireKinds(t, toks, []token.Kind{
		token.KwConst, token.Ident, token.Assign,
		token.StringLit, token.Plus, token.StringLit, token.Semicolon,
		token.EOF,
	})
	if toks[3].Text != `"hi \"there\""` {
		t.Fatalf("string text = %q", toks[3].Text)
	}
}

func TestUnterminatedString(t *testing.T) {
	toks, bag := lexSource(t, "const s = \"oops\nconst t = 1;")
	if bag.Len() != 1 {
		t.Fatalf("diagnostics = %d, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if d.Code != diag.LexUnterminatedString {
		t.Fatalf("code = %v", d.Code)
	}
	if d.Severity != diag.SevError {
		t.Fatalf("severity = %v", d.Severity)
	}
	// scanning continues on the next line
	sawConst := 0
	for _, tok := range toks {
		if tok.Kind == token.KwConst {
			sawConst++
		}
	}
	if sawConst != 2 {
		t.Fatalf("const count = %d, want 2", sawConst)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	_, bag := lexSource(t, "const x = 1; /* trailing")
	if bag.Len() != 1 {
		t.Fatalf("diagnostics = %d, want 1", bag.Len())
	}
	if bag.Items()[0].Code != diag.LexUnterminatedComment {
		t.Fatalf("code = %v", bag.Items()[0].Code)
	}
}

func TestNumbers(t *testing.T) {
	toks, bag := lexSource(t, "1 2.5 .5 1e9 2e-3 0x1f")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %d", bag.Len())
	}
	want := []string{"1", "2.5", ".5", "1e9", "2e-3", "0x1f"}
	var got []string
	for _, tok := range toks {
		if tok.Kind == token.NumberLit {
			got = append(got, tok.Text)
		}
	}
	if len(got) != len(want) {
		t.Fatalf("numbers = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("number %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBadHexLiteral(t *testing.T) {
	toks, bag := lexSource(t, "0x")
	if bag.Len() != 1 {
		t.Fatalf("diagnostics = %d, want 1", bag.Len())
	}
	if bag.Items()[0].Code != diag.LexBadNumber {
		t.Fatalf("code = %v", bag.Items()[0].Code)
	}
	if toks[0].Kind != token.Invalid {
		t.Fatalf("token kind = %v", toks[0].Kind)
	}
}

func TestUnknownCharacter(t *testing.T) {
	toks, bag := lexSource(t, "const x = #;")
	if bag.Len() != 1 {
		t.Fatalf("diagnostics = %d, want 1", bag.Len())
	}
	if bag.Items()[0].Code != diag.LexUnknownChar {
		t.Fatalf("code = %v", bag.Items()[0].Code)
	}
	sawInvalid := false
	for _, tok := range toks {
		if tok.Kind == token.Invalid {
			sawInvalid = true
		}
	}
	if !sawInvalid {
		t.Fatal("expected an Invalid token")
	}
}

func TestSpansCoverSource(t *testing.T) {
	src := "let y =\n  <div/>;"
	toks, _ := lexSource(t, src)
	for _, tok := range toks {
		if tok.Kind == token.EOF {
			continue
		}
		if int(tok.Span.End) > len(src) || tok.Span.Start > tok.Span.End {
			t.Fatalf("bad span %d..%d for %v", tok.Span.Start, tok.Span.End, tok.Kind)
		}
		if tok.Text != src[tok.Span.Start:tok.Span.End] {
			t.Fatalf("text %q does not match span slice %q", tok.Text, src[tok.Span.Start:tok.Span.End])
		}
	}
	if toks[len(toks)-1].Kind != token.EOF {
		t.Fatal("stream must end with EOF")
	}
}

func TestEOFIsSticky(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("empty.jsx", nil)
	lx := New(fs.Get(fileID), Options{})
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("call %d = %v, want EOF", i, tok.Kind)
		}
	}
}

func TestUnicodeIdentifiers(t *testing.T) {
	toks, bag := lexSource(t, "const café = 1;")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %d", bag.Len())
	}
	if toks[1].Kind != token.Ident || toks[1].Text != "café" {
		t.Fatalf("token = %v %q", toks[1].Kind, toks[1].Text)
	}
}
