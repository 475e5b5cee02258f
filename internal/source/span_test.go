package source

import "testing"

func TestSpanBasics(t *testing.T) {
	s := Span{File: 1, Start: 4, End: 10}
	if s.Empty() {
		t.Error("non-empty span reported empty")
	}
	if s.Len() != 6 {
		t.Errorf("Len = %d, want 6", s.Len())
	}
	if s.String() != "1:4-10" {
		t.Errorf("String = %q", s.String())
	}

	empty := Span{File: 1, Start: 4, End: 4}
	if !empty.Empty() {
		t.Error("empty span not reported empty")
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 0, Start: 5, End: 10}
	b := Span{File: 0, Start: 2, End: 7}
	c := a.Cover(b)
	if c.Start != 2 || c.End != 10 {
		t.Errorf("Cover = %v", c)
	}

	other := Span{File: 1, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("Cover across files should be a no-op, got %v", got)
	}
}

func TestSpanCollapse(t *testing.T) {
	s := Span{File: 0, Start: 3, End: 8}
	if got := s.Collapse(false); got.Start != 3 || got.End != 3 {
		t.Errorf("Collapse(false) = %v", got)
	}
	if got := s.Collapse(true); got.Start != 8 || got.End != 8 {
		t.Errorf("Collapse(true) = %v", got)
	}
}
