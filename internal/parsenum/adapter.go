package parsenum

import (
	"errors"
	"fmt"
	"strings"
)

// Location identifies the token being parsed when the tokenizer is the caller.
type Location struct {
	Source string
	Line   uint32
}

func (l Location) String() string { return fmt.Sprintf("%s:%d", l.Source, l.Line) }

// ValueError is the error runtime conversions report.
type ValueError struct {
	Msg string
	Err *NumError
}

func (e *ValueError) Error() string { return e.Msg }
func (e *ValueError) Unwrap() error {
	if e.Err == nil {
		return nil
	}
	return e.Err
}

// SyntaxError is the error the tokenizer reports; it carries the location of
// the offending token.
type SyntaxError struct {
	Msg string
	Loc Location
	Err *NumError
}

func (e *SyntaxError) Error() string { return e.Loc.String() + ": " + e.Msg }
func (e *SyntaxError) Unwrap() error {
	if e.Err == nil {
		return nil
	}
	return e.Err
}

// Adapter turns a *NumError into the error shape of the call site, with
// message detail chosen by Reporting.
type Adapter struct {
	Reporting Reporting
}

// Message renders the user-facing text for err.
func (a Adapter) Message(err *NumError) string {
	switch {
	case errors.Is(err.Err, ErrBase):
		return "int() arg 2 must be >= 2 and <= 36"
	case errors.Is(err.Err, ErrComplex), errors.Is(err.Err, ErrFloat), errors.Is(err.Err, ErrTooLarge):
		return err.Err.Error()
	case err.Func == FuncDecimal:
		return "invalid syntax for number"
	}
	switch a.Reporting {
	case ReportTerse:
		return "invalid syntax for integer"
	case ReportDetailed:
		return fmt.Sprintf("invalid syntax for integer with base %d: %s", err.Base, quoteBytes(err.Num))
	default:
		return fmt.Sprintf("invalid syntax for integer with base %d", err.Base)
	}
}

// ValueError builds the runtime-conversion error for err.
func (a Adapter) ValueError(err *NumError) *ValueError {
	return &ValueError{Msg: a.Message(err), Err: err}
}

// SyntaxError builds the tokenizer error for err at loc.
func (a Adapter) SyntaxError(err *NumError, loc Location) *SyntaxError {
	return &SyntaxError{Msg: a.Message(err), Loc: loc, Err: err}
}

// Raise picks the error shape from the call site: a non-nil loc means the
// tokenizer is parsing source text.
func (a Adapter) Raise(err *NumError, loc *Location) error {
	if err == nil {
		return nil
	}
	if loc != nil {
		return a.SyntaxError(err, *loc)
	}
	return a.ValueError(err)
}

// quoteBytes quotes s the way the interpreter prints a bytes-like string:
// single quotes unless s contains a single quote and no double quote, with
// escapes for the quote, backslash and non-printable bytes.
func quoteBytes(s string) string {
	q := byte('\'')
	if strings.IndexByte(s, '\'') >= 0 && strings.IndexByte(s, '"') < 0 {
		q = '"'
	}
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte(q)
	for i := range len(s) {
		ch := s[i]
		switch {
		case ch == q || ch == '\\':
			sb.WriteByte('\\')
			sb.WriteByte(ch)
		case ch == '\n':
			sb.WriteString(`\n`)
		case ch == '\r':
			sb.WriteString(`\r`)
		case ch == '\t':
			sb.WriteString(`\t`)
		case ch < 0x20 || ch >= 0x7f:
			fmt.Fprintf(&sb, `\x%02x`, ch)
		default:
			sb.WriteByte(ch)
		}
	}
	sb.WriteByte(q)
	return sb.String()
}
