package token

import "numlit/internal/source"

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsNumber reports whether the token is a numeric literal.
func (t Token) IsNumber() bool { return t.Kind.IsNumber() }
