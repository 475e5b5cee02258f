// Package token defines lexical token kinds and trivia for the JS/JSX
// dialect jsxwrap understands.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Begin..End).
//   - Comments never appear in the main token stream; they are carried as
//     leading Trivia on the token that follows them.
//   - Neighbor lookups over a Stream therefore skip comments naturally,
//     which is what the parenthesization probe relies on.
package token
