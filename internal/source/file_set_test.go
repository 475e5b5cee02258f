package source

import (
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("app.jsx", []byte("const a = 1;"), 0)
	if id1 != 0 {
		t.Errorf("expected first FileID to be 0, got %d", id1)
	}

	latestID, exists := fs.GetLatest("app.jsx")
	if !exists {
		t.Error("expected file to exist after Add")
	}
	if latestID != id1 {
		t.Errorf("expected latest ID to be %d, got %d", id1, latestID)
	}

	// re-adding the same path allocates a fresh ID and moves the index
	id2 := fs.Add("app.jsx", []byte("const a = 2;"), 0)
	if id2 != 1 {
		t.Errorf("expected second FileID to be 1, got %d", id2)
	}
	latestID, _ = fs.GetLatest("app.jsx")
	if latestID != id2 {
		t.Errorf("expected latest ID to be %d, got %d", id2, latestID)
	}

	if string(fs.Get(id1).Content) != "const a = 1;" {
		t.Errorf("first version content changed: %q", fs.Get(id1).Content)
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("lines.jsx", []byte("const a = 1;\nconst b = 2;\n"))

	tests := []struct {
		name      string
		span      Span
		wantStart LineCol
		wantEnd   LineCol
	}{
		{
			name:      "first line",
			span:      Span{File: id, Start: 0, End: 5},
			wantStart: LineCol{Line: 1, Col: 1},
			wantEnd:   LineCol{Line: 1, Col: 6},
		},
		{
			name:      "second line",
			span:      Span{File: id, Start: 13, End: 18},
			wantStart: LineCol{Line: 2, Col: 1},
			wantEnd:   LineCol{Line: 2, Col: 6},
		},
		{
			name:      "spanning both lines",
			span:      Span{File: id, Start: 6, End: 19},
			wantStart: LineCol{Line: 1, Col: 7},
			wantEnd:   LineCol{Line: 2, Col: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := fs.Resolve(tt.span)
			if start != tt.wantStart {
				t.Errorf("start = %+v, want %+v", start, tt.wantStart)
			}
			if end != tt.wantEnd {
				t.Errorf("end = %+v, want %+v", end, tt.wantEnd)
			}
		})
	}
}

func TestText(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.jsx", []byte("let x = <div/>;"))

	got := fs.Text(Span{File: id, Start: 8, End: 14})
	if got != "<div/>" {
		t.Errorf("Text = %q, want %q", got, "<div/>")
	}

	if fs.Text(Span{File: id, Start: 10, End: 1000}) != "" {
		t.Error("out-of-range span should produce empty text")
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("l.jsx", []byte("one\ntwo\nthree"))
	f := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "one"},
		{2, "two"},
		{3, "three"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestLoadNormalizesCRLF(t *testing.T) {
	fs := NewFileSet()
	id := fs.Add("crlf.jsx", append([]byte{0xEF, 0xBB, 0xBF}, []byte("a\r\nb")...), 0)
	// Add does not normalize; exercise the helpers directly instead.
	_ = id

	content, hadBOM := removeBOM([]byte{0xEF, 0xBB, 0xBF, 'a'})
	if !hadBOM || string(content) != "a" {
		t.Errorf("removeBOM = %q, %v", content, hadBOM)
	}

	content, changed := normalizeCRLF([]byte("a\r\nb\rc"))
	if !changed || string(content) != "a\nb\rc" {
		t.Errorf("normalizeCRLF = %q, %v", content, changed)
	}
}
