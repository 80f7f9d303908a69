package lexer

import (
	"fmt"

	"numlit/internal/diag"
	"numlit/internal/token"
)

// scanOp выдаёт однобайтовый оператор или пунктуацию. Для подсчёта
// литералов многобайтовые операторы не нужны.
func (lx *Lexer) scanOp() token.Token {
	start := lx.cursor.Mark()
	ch := lx.cursor.Bump()
	switch {
	case ch == '$' || ch == '?' || ch == '`' || ch < 0x20 || ch == 0x7f:
		tok := lx.emit(token.Invalid, start)
		lx.report(diag.LexUnknownChar, tok.Span, fmt.Sprintf("unexpected character %q", ch))
		return tok
	}
	return lx.emit(token.Op, start)
}
