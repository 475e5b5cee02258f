package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"jsxwrap/internal/diag"
	"jsxwrap/internal/lexer"
	"jsxwrap/internal/source"
)

func TestJSONShape(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("const x =\n<div>\n</div>;\n")
	fileID := fs.AddVirtual("app.jsx", content)

	var buf bytes.Buffer
	err := JSON(&buf, wrapBag(fs, fileID, 10, 22), fs, JSONOpts{
		IncludePositions: true,
		IncludeFixes:     true,
		PathMode:         PathModeBasename,
	})
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, diagnostics = %d", out.Count, len(out.Diagnostics))
	}

	d := out.Diagnostics[0]
	if d.Code != "JSX4001" {
		t.Errorf("code = %q", d.Code)
	}
	if d.Severity != "warning" {
		t.Errorf("severity = %q", d.Severity)
	}
	if d.Location.File != "app.jsx" {
		t.Errorf("file = %q", d.Location.File)
	}
	if d.Location.StartLine != 2 || d.Location.StartCol != 1 {
		t.Errorf("start = %d:%d, want 2:1", d.Location.StartLine, d.Location.StartCol)
	}
	if len(d.Fixes) != 1 {
		t.Fatalf("fixes = %d", len(d.Fixes))
	}
	f := d.Fixes[0]
	if f.ID != "wrap-1" || !f.IsPreferred {
		t.Errorf("fix = %+v", f)
	}
	if f.Applicability != "always-safe" {
		t.Errorf("applicability = %q", f.Applicability)
	}
	if len(f.Edits) != 1 {
		t.Fatalf("edits = %d", len(f.Edits))
	}
	if !strings.HasPrefix(f.Edits[0].NewText, "(") || !strings.HasSuffix(f.Edits[0].NewText, ")") {
		t.Errorf("edit new_text = %q, want a parenthesized span", f.Edits[0].NewText)
	}
}

func TestJSONMaxTruncates(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("app.jsx", []byte("abc def ghi"))

	bag := diag.NewBag(10)
	for i := uint32(0); i < 3; i++ {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevWarning,
			Code:     diag.LintWrapMultiline,
			Message:  "missing parentheses around multiline JSX",
			Primary:  source.Span{File: fileID, Start: i * 4, End: i*4 + 3},
		})
	}

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Errorf("expected truncation to 2, got %d", len(out.Diagnostics))
	}
}

func TestJSONFixPreviews(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("const x =\n<div>\n</div>;\n")
	fileID := fs.AddVirtual("app.jsx", content)

	out := BuildDiagnosticsOutput(wrapBag(fs, fileID, 10, 22), fs, JSONOpts{
		IncludeFixes:    true,
		IncludePreviews: true,
	})
	if len(out.Diagnostics) != 1 || len(out.Diagnostics[0].Fixes) != 1 {
		t.Fatal("expected one diagnostic with one fix")
	}
	edit := out.Diagnostics[0].Fixes[0].Edits[0]
	if len(edit.BeforeLines) == 0 || len(edit.AfterLines) == 0 {
		t.Fatalf("expected before/after preview lines, got %+v", edit)
	}
	joined := strings.Join(edit.AfterLines, "\n")
	if !strings.Contains(joined, "(<div>") {
		t.Errorf("after preview lacks the wrapped element:\n%s", joined)
	}
}

func TestTokensPretty(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("app.jsx", []byte("// c\nconst x = 1;"))
	file := fs.Get(fileID)

	toks := lexer.Tokenize(file, lexer.Options{})

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks, fs); err != nil {
		t.Fatalf("FormatTokensPretty: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "const") {
		t.Errorf("missing const token:\n%s", out)
	}
	if !strings.Contains(out, "leading: LineComment") {
		t.Errorf("missing leading trivia:\n%s", out)
	}
	if !strings.Contains(out, "EOF") {
		t.Errorf("missing EOF token:\n%s", out)
	}
}

func TestTokensJSON(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("app.jsx", []byte("x"))
	file := fs.Get(fileID)

	toks := lexer.Tokenize(file, lexer.Options{})

	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, toks); err != nil {
		t.Fatalf("FormatTokensJSON: %v", err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected ident + EOF, got %d tokens", len(out))
	}
	if out[0].Kind != "Ident" || out[0].Text != "x" {
		t.Errorf("first token = %+v", out[0])
	}
}
