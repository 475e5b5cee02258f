// Package diag defines the diagnostic model shared by the lexer, the parser,
// and the lint rule.
//
// Diagnostic is the central record: severity, a stable numeric code, a
// message, a primary span, optional notes, and optional fix suggestions.
//
// Fixes are data-only. A Fix either carries concrete TextEdits or a Thunk
// that builds them on demand; MaterializeFixes expands thunks
// deterministically given a FixBuildContext. TextEdit.OldText is an optional
// guard the fix engine validates before touching a file.
//
// Producers emit through the Reporter interface, directly or via
// ReportBuilder. BagReporter aggregates into a Bag, which supports sorting,
// deduplication, and a capacity limit. Rendering lives in internal/diagfmt;
// applying fixes lives in internal/fix.
package diag
