package parsenum

import (
	"math"
	"strconv"
	"strings"

	"numlit/internal/bignum"
)

// Int is a parsed integer: inline when it fits the configured small range,
// big otherwise. The representation depends only on the value.
type Int struct {
	small int64
	big   bignum.BigInt
	isBig bool
}

// SmallInt wraps an inline value.
func SmallInt(v int64) Int { return Int{small: v} }

// newInt stores b inline when it fits the range of cfg.
func newInt(b bignum.BigInt, cfg Config) Int {
	if v, ok := b.Int64(); ok {
		lo, hi := cfg.SmallIntRange()
		if lo <= v && v <= hi {
			return Int{small: v}
		}
	}
	return Int{big: b, isBig: true}
}

// IsSmall reports whether the value is held inline.
func (i Int) IsSmall() bool { return !i.isBig }

// Small returns the inline value.
func (i Int) Small() (int64, bool) { return i.small, !i.isBig }

// Big returns the value as a big integer regardless of representation.
func (i Int) Big() bignum.BigInt {
	if i.isBig {
		return i.big
	}
	return bignum.IntFromInt64(i.small)
}

// Sign returns -1, 0 or +1.
func (i Int) Sign() int {
	if i.isBig {
		return i.big.Sign()
	}
	switch {
	case i.small < 0:
		return -1
	case i.small > 0:
		return 1
	}
	return 0
}

// Cmp compares two integers by value.
func (i Int) Cmp(j Int) int {
	if !i.isBig && !j.isBig {
		switch {
		case i.small < j.small:
			return -1
		case i.small > j.small:
			return 1
		}
		return 0
	}
	return i.Big().Cmp(j.Big())
}

func (i Int) String() string {
	if i.isBig {
		return bignum.FormatInt(i.big)
	}
	return strconv.FormatInt(i.small, 10)
}

// Kind distinguishes float and complex results.
type Kind uint8

const (
	KindFloat Kind = iota
	KindComplex
)

func (k Kind) String() string {
	if k == KindComplex {
		return "complex"
	}
	return "float"
}

// Number is the result of a decimal parse.
type Number struct {
	Kind    Kind
	Float   float64    // valid for KindFloat
	Complex complex128 // valid for KindComplex
}

// FloatNumber wraps a real result.
func FloatNumber(v float64) Number { return Number{Kind: KindFloat, Float: v} }

// ComplexNumber wraps a complex result.
func ComplexNumber(v complex128) Number { return Number{Kind: KindComplex, Complex: v} }

// String renders the value the way the interpreter prints it: 1.5, inf,
// 2j, (1+2j).
func (n Number) String() string {
	if n.Kind == KindFloat {
		return formatFloat(n.Float, true)
	}
	re, im := real(n.Complex), imag(n.Complex)
	if re == 0 && !math.Signbit(re) {
		return formatFloat(im, false) + "j"
	}
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(formatFloat(re, false))
	if im >= 0 || math.IsNaN(im) {
		sb.WriteByte('+')
	}
	sb.WriteString(formatFloat(im, false))
	sb.WriteString("j)")
	return sb.String()
}

// formatFloat switches to exponent notation below 1e-4 and from 1e16 up.
func formatFloat(v float64, dot bool) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	}
	if a := math.Abs(v); a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if dot && !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
