package parsenum

import (
	"errors"
	"strconv"
)

var (
	// ErrSyntax indicates the text is not a well-formed literal.
	ErrSyntax = errors.New("invalid syntax")
	// ErrBase indicates an explicit radix outside [2, 36].
	ErrBase = errors.New("base out of range")
	// ErrComplex indicates a complex result while complex support is disabled.
	ErrComplex = errors.New("complex values not supported")
	// ErrFloat indicates a decimal parse while float support is disabled.
	ErrFloat = errors.New("decimal numbers not supported")
	// ErrTooLarge indicates an integer beyond the big-integer size limit.
	ErrTooLarge = errors.New("integer too large")
)

// Func names the parser that failed.
const (
	FuncInteger = "integer"
	FuncDecimal = "number"
)

// Reason refines ErrSyntax.
type Reason uint8

const (
	ReasonNone Reason = iota
	// ReasonNoDigits: no digit after sign and prefix.
	ReasonNoDigits
	// ReasonTrailing: bytes other than whitespace after the value.
	ReasonTrailing
	// ReasonExponent: exponent marker without exponent digits.
	ReasonExponent
)

func (r Reason) String() string {
	switch r {
	case ReasonNoDigits:
		return "no digits"
	case ReasonTrailing:
		return "trailing characters"
	case ReasonExponent:
		return "missing exponent digits"
	default:
		return ""
	}
}

// NumError records a failed parse. It is translated into a user-facing
// error by Adapter.
type NumError struct {
	Func   string // FuncInteger or FuncDecimal
	Num    string // the offending text, starting after sign and radix prefix
	Base   int    // effective radix, 10 for decimals
	Reason Reason
	Err    error // one of the sentinels above
}

func (e *NumError) Error() string {
	msg := "parsenum: parsing " + e.Func + " " + strconv.Quote(e.Num) + ": " + e.Err.Error()
	if e.Reason != ReasonNone {
		msg += " (" + e.Reason.String() + ")"
	}
	return msg
}

func (e *NumError) Unwrap() error { return e.Err }

func syntaxError(fn string, num []byte, base int, reason Reason) *NumError {
	return &NumError{Func: fn, Num: string(num), Base: base, Reason: reason, Err: ErrSyntax}
}
