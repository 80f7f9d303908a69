package lexer

import (
	"strings"

	"numlit/internal/diag"
	"numlit/internal/token"
)

// stringPrefixes: префиксы строк, после которых сразу идёт кавычка.
var stringPrefixes = map[string]bool{
	"r": true, "u": true, "b": true, "f": true,
	"br": true, "rb": true, "fr": true, "rf": true,
}

// scanIdentOrString читает идентификатор; если это префикс строки и дальше
// кавычка, продолжает как строку.
func (lx *Lexer) scanIdentOrString() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		if ch < 0x80 {
			if !isIdentContinueByte(ch) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r, _ := lx.peekRune()
		if !isIdentContinueRune(r) {
			break
		}
		lx.bumpRune()
	}

	if lx.cursor.Off == uint32(start) {
		// Не-ASCII символ, который не может начинать идентификатор:
		// съедаем кластер графем целиком, чтобы эмодзи давал одну ошибку.
		lx.bumpGrapheme()
		tok := lx.emit(token.Invalid, start)
		lx.report(diag.LexUnknownChar, tok.Span, "unexpected character "+tok.Text)
		return tok
	}

	if q := lx.cursor.Peek(); q == '"' || q == '\'' {
		text := strings.ToLower(string(lx.file.Content[start:lx.cursor.Off]))
		if stringPrefixes[text] {
			return lx.scanString(start)
		}
	}
	return lx.emit(token.Ident, start)
}
