package lexer

import "numlit/internal/token"

// scanNumber выделяет числовой литерал целиком, не проверяя его: значение
// и ошибки формата определяет parsenum.
//
// Правила:
//   - начало: цифра или ".цифра";
//   - 0x/0o/0b делает литерал целым: 'e' дальше считается цифрой;
//   - e/E (не в целом с префиксом) может сопровождаться знаком;
//   - буквы, цифры, '_' и '.' продолжают литерал;
//   - '.', 'e' дают FloatLit, 'j' даёт ImagLit.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit
	forcedInt := false

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && isBaseChar(b1) {
		forcedInt = true
		lx.cursor.Advance(2)
	} else if lx.cursor.Bump() == '.' {
		kind = token.FloatLit
	}

	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		switch {
		case !forcedInt && (ch == 'e' || ch == 'E'):
			kind = promote(kind, token.FloatLit)
			lx.cursor.Bump()
			if p := lx.cursor.Peek(); p == '+' || p == '-' {
				lx.cursor.Bump()
			}
		case ch == '.':
			kind = promote(kind, token.FloatLit)
			lx.cursor.Bump()
		case ch == 'j' || ch == 'J':
			kind = token.ImagLit
			lx.cursor.Bump()
		case isIdentContinueByte(ch):
			lx.cursor.Bump()
		default:
			return lx.emit(kind, start)
		}
	}
	return lx.emit(kind, start)
}

// promote never downgrades an imaginary literal.
func promote(cur, to token.Kind) token.Kind {
	if cur == token.ImagLit {
		return cur
	}
	return to
}
