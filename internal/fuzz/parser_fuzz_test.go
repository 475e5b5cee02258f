package fuzztests

import (
	"context"
	"testing"
	"time"

	"jsxwrap/internal/diag"
	"jsxwrap/internal/lexer"
	"jsxwrap/internal/parser"
	"jsxwrap/internal/rule"
	"jsxwrap/internal/source"
	"jsxwrap/internal/token"
)

// parseTimeout is the maximum time allowed for one input. Longer than that
// means an infinite loop in error recovery.
const parseTimeout = 5 * time.Second

func FuzzParserBuildsAST(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(_ *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.jsx", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(128)
		rep := &diag.BagReporter{Bag: bag}
		toks := lexer.Tokenize(file, lexer.Options{Reporter: rep})
		p := parser.New(file, toks, parser.Options{Reporter: rep, MaxErrors: 128})
		parsed := p.ParseFile()
		if parsed == nil {
			return
		}

		// the checker must survive whatever tree error recovery produced
		cfg := rule.Config{
			Declaration: true,
			Assignment:  true,
			Return:      true,
			Arrow:       true,
			Condition:   true,
			Logical:     true,
			Prop:        true,
		}
		rule.NewChecker(cfg, fs, token.NewStream(toks), rep).Check(parsed)
	})
}

// FuzzParserNoHang detects inputs where parsing never terminates.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	// edge cases around missing closers and deep nesting
	f.Add([]byte("const x = <div><div><div>"))
	f.Add([]byte("const x = ((((((((("))
	f.Add([]byte("a ? b ? c ? d : e : f :"))
	f.Add([]byte("const x = <a b= c=>"))
	f.Add([]byte("{ { { { } } }"))

	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)

			fs := source.NewFileSet()
			fileID := fs.AddVirtual("fuzz.jsx", input)
			file := fs.Get(fileID)

			bag := diag.NewBag(128)
			rep := &diag.BagReporter{Bag: bag}
			toks := lexer.Tokenize(file, lexer.Options{Reporter: rep})
			p := parser.New(file, toks, parser.Options{Reporter: rep, MaxErrors: 128})
			_ = p.ParseFile()
		}()

		select {
		case <-done:
		case <-ctx.Done():
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen], []byte("...")...)
}
