package lexer

import (
	"numlit/internal/diag"
	"numlit/internal/source"
)

// defaultMaxTokenLength bounds a single token in bytes.
const defaultMaxTokenLength = 1 << 16

type Options struct {
	Reporter diag.Reporter // может быть nil, тогда ошибки игнорируем (но продолжаем лексить)
	// MaxTokenLength overrides the token size limit; 0 keeps the default.
	MaxTokenLength int
}

func (o Options) maxTokenLength() uint32 {
	if o.MaxTokenLength > 0 && o.MaxTokenLength < 1<<31 {
		return uint32(o.MaxTokenLength) //nolint:gosec // G115: range checked above.
	}
	return defaultMaxTokenLength
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	diag.ReportError(lx.opts.Reporter, code, sp, msg)
}
