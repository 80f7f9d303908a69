package lexer

// skipTrivia пропускает пробелы, комментарии и продолжения строк ("\\\n").
// Переводы строк остаются токенами.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\f', '\r', '\v':
			lx.cursor.Bump()
		case '#':
			lx.cursor.SkipUntil('\n')
		case '\\':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '\\' || b1 != '\n' {
				return
			}
			lx.cursor.Advance(2)
		default:
			return
		}
	}
}
