package diag

import (
	"fmt"

	"jsxwrap/internal/source"
)

// FixKind is a coarse classification of a fix.
type FixKind uint8

const (
	FixKindQuickFix FixKind = iota
	FixKindRefactorRewrite
	FixKindSourceAction
)

func (k FixKind) String() string {
	switch k {
	case FixKindQuickFix:
		return "quickfix"
	case FixKindRefactorRewrite:
		return "refactor.rewrite"
	case FixKindSourceAction:
		return "source"
	}
	return "unknown"
}

// FixApplicability is the confidence level for applying a fix automatically.
type FixApplicability uint8

const (
	FixApplicabilityAlwaysSafe FixApplicability = iota
	FixApplicabilitySafeWithHeuristics
	FixApplicabilityManualReview
)

func (a FixApplicability) String() string {
	switch a {
	case FixApplicabilityAlwaysSafe:
		return "always-safe"
	case FixApplicabilitySafeWithHeuristics:
		return "safe-with-heuristics"
	case FixApplicabilityManualReview:
		return "manual-review"
	}
	return "unknown"
}

// TextEdit replaces the text covered by Span with NewText. OldText, when
// non-empty, is a guard: the fix engine refuses the edit if the file no
// longer contains exactly that text at the span.
type TextEdit struct {
	Span    source.Span
	NewText string
	OldText string
}

// FixBuildContext supplies what a FixThunk needs to materialize edits.
type FixBuildContext struct {
	FileSet *source.FileSet
}

// FixThunk lazily builds the edits of a fix from source text.
type FixThunk func(ctx FixBuildContext) ([]TextEdit, error)

// Fix represents one possible automated correction.
type Fix struct {
	ID            string
	Title         string
	Kind          FixKind
	Applicability FixApplicability
	IsPreferred   bool
	Edits         []TextEdit
	Thunk         FixThunk
}

// Resolve returns a copy of the fix with Edits populated, running the thunk
// if the edits are not materialized yet.
func (f Fix) Resolve(ctx FixBuildContext) (Fix, error) {
	if len(f.Edits) > 0 || f.Thunk == nil {
		return f, nil
	}
	edits, err := f.Thunk(ctx)
	if err != nil {
		return f, fmt.Errorf("build fix %q: %w", f.Title, err)
	}
	f.Edits = edits
	f.Thunk = nil
	return f, nil
}

// MaterializeFixes resolves every fix in the slice, expanding thunks.
func MaterializeFixes(ctx FixBuildContext, fixes []Fix) ([]Fix, error) {
	if len(fixes) == 0 {
		return nil, nil
	}
	out := make([]Fix, 0, len(fixes))
	for _, f := range fixes {
		resolved, err := f.Resolve(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, resolved)
	}
	return out, nil
}
