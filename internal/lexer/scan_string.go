package lexer

import (
	"numlit/internal/diag"
	"numlit/internal/token"
)

// scanString читает строку в одинарных, двойных или тройных кавычках,
// начиная с текущей кавычки; start может указывать на префикс.
func (lx *Lexer) scanString(start Mark) token.Token {
	q := lx.cursor.Bump()
	triple := false
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == q && b1 == q {
		lx.cursor.Advance(2)
		triple = true
	}

	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		switch {
		case ch == '\\':
			lx.cursor.Advance(2)
		case ch == '\n' && !triple:
			tok := lx.emit(token.Invalid, start)
			lx.report(diag.LexUnterminatedString, tok.Span, "unterminated string literal")
			return tok
		case ch == q:
			lx.cursor.Bump()
			if !triple {
				return lx.emit(token.StringLit, start)
			}
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == q && b1 == q {
				lx.cursor.Advance(2)
				return lx.emit(token.StringLit, start)
			}
		default:
			lx.cursor.Bump()
		}
	}

	tok := lx.emit(token.Invalid, start)
	lx.report(diag.LexUnterminatedString, tok.Span, "unterminated string literal")
	return tok
}
