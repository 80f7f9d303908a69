// Package token defines lexical token kinds for the literal scanner.
// Invariants:
//   - Token.Text is the exact source text of Token.Span.
//   - Number tokens are classified but never evaluated here; the text is
//     handed to internal/parsenum unchanged.
//   - Comments and whitespace other than newlines produce no tokens.
package token
