package lexer

import (
	"fmt"

	"numlit/internal/diag"
	"numlit/internal/source"
	"numlit/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next возвращает следующий токен. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case ch == '\n':
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		tok = lx.emit(token.Newline, start)

	case isIdentStartByte(ch) || ch >= 0x80:
		tok = lx.scanIdentOrString()

	case isDec(ch), ch == '.' && lx.isNumberAfterDot():
		tok = lx.scanNumber()

	case ch == '"' || ch == '\'':
		tok = lx.scanString(lx.cursor.Mark())

	default:
		tok = lx.scanOp()
	}

	if tok.Span.Len() > lx.opts.maxTokenLength() {
		lx.report(diag.LexTokenTooLong, tok.Span,
			fmt.Sprintf("token exceeds %d bytes", lx.opts.maxTokenLength()))
		// Дальше не лексим: остаток файла пропускаем.
		lx.cursor.Off = lx.cursor.Limit
		tok.Kind = token.Invalid
		tok.Text = ""
	}
	return tok
}

// All collects tokens up to and excluding EOF.
func (lx *Lexer) All() []token.Token {
	var out []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return out
		}
		out = append(out, tok)
	}
}

func (lx *Lexer) emit(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.file.Text(sp)}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
