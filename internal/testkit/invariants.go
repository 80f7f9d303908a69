// Package testkit holds structural checks shared by package tests and fuzz
// harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"numlit/internal/source"
	"numlit/internal/token"
)

// CheckTokenInvariants runs a minimal set of span invariants on a token
// stream (EOF excluded):
// 1) every span is non-empty, belongs to sf and lies within its content
// 2) spans are ordered and do not overlap
// 3) Text is the exact source slice, unless the token was cut as too long
func CheckTokenInvariants(toks []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	for i, tok := range toks {
		sp := tok.Span
		if sp.End <= sp.Start {
			return fmt.Errorf("token %d (%v) has empty span %v", i, tok.Kind, sp)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("token %d span file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End > lenContent {
			return fmt.Errorf("token %d span end beyond content: %d > %d", i, sp.End, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d span %v overlaps previous token ending at %d", i, sp, prevEnd)
		}
		prevEnd = sp.End

		if tok.Kind == token.Invalid && tok.Text == "" {
			continue
		}
		if want := sf.Text(sp); tok.Text != want {
			return fmt.Errorf("token %d text %q does not match source %q", i, tok.Text, want)
		}
	}
	return nil
}
