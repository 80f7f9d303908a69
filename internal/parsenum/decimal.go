package parsenum

import (
	"math"

	"numlit/internal/bignum"
)

type decState uint8

const (
	stateInt decState = iota
	stateFrac
	stateExp
)

// ScanDecimal parses text as a decimal float, inf, infinity or nan.
//
// With allowImag a trailing 'j' marks the value imaginary and ends the scan.
// Imaginary values become complex(0, v); forceComplex turns a real value into
// complex(v, 0). Complex results fail with ErrComplex when cfg disables them.
func ScanDecimal(text []byte, allowImag, forceComplex bool, cfg Config) (Number, *NumError) {
	if cfg.DisableFloat {
		return Number{}, &NumError{Func: FuncDecimal, Num: string(text), Base: 10, Err: ErrFloat}
	}

	s := span{buf: text}
	s.skipSpace()
	neg := s.sign()
	valStart := s.pos

	var (
		v    float64
		imag bool
	)
	switch {
	case s.matchFold("infinity"), s.matchFold("inf"):
		v = math.Inf(1)
	case s.matchFold("nan"):
		v = math.NaN()
	default:
		var nerr *NumError
		v, imag, nerr = scanMagnitude(&s, text[valStart:], allowImag)
		if nerr != nil {
			return Number{}, nerr
		}
	}
	if neg {
		v = -v
	}
	if err := expectEnd(&s, FuncDecimal, text[valStart:], 10); err != nil {
		return Number{}, err
	}

	if imag || forceComplex {
		if cfg.DisableComplex {
			return Number{}, &NumError{Func: FuncDecimal, Num: string(text[valStart:]), Base: 10, Err: ErrComplex}
		}
		if imag {
			return ComplexNumber(complex(0, v)), nil
		}
		return ComplexNumber(complex(v, 0)), nil
	}
	return FloatNumber(v), nil
}

// scanMagnitude runs the int/frac/exp state machine over s and converts the
// digits read. val is the text from the first mantissa byte, for errors.
func scanMagnitude(s *span, val []byte, allowImag bool) (v float64, imag bool, nerr *NumError) {
	var (
		state     = stateInt
		mant      bignum.BigUint
		expExtra  int
		expVal    int
		expNeg    bool
		digits    int
		expDigits int
		err       error
	)

scan:
	for !s.eof() {
		ch := s.peek()
		switch {
		case isDigit(ch):
			s.advance(1)
			d := int(ch - '0')
			if state == stateExp {
				expDigits++
				if expVal < expClamp {
					expVal = 10*expVal + d
				}
				continue
			}
			digits++
			if mant.BitLen() < mantissaBits {
				if mant, err = mulAddDigit(mant, d); err != nil {
					return 0, false, &NumError{Func: FuncDecimal, Num: string(val), Base: 10, Err: ErrTooLarge}
				}
				if state == stateFrac {
					expExtra--
				}
			} else if state == stateInt {
				// Digit past the precision limit: only its position counts.
				expExtra++
			}
		case ch == '.' && state == stateInt:
			s.advance(1)
			state = stateFrac
		case lower(ch) == 'e' && state != stateExp:
			s.advance(1)
			state = stateExp
			switch s.peek() {
			case '+':
				s.advance(1)
			case '-':
				s.advance(1)
				expNeg = true
			}
		case allowImag && lower(ch) == 'j':
			s.advance(1)
			imag = true
			break scan
		case ch == '_':
			s.advance(1)
		default:
			break scan
		}
	}

	if digits == 0 {
		return 0, false, syntaxError(FuncDecimal, val, 10, ReasonNoDigits)
	}
	if state == stateExp && expDigits == 0 {
		return 0, false, syntaxError(FuncDecimal, val, 10, ReasonExponent)
	}

	if expNeg {
		expVal = -expVal
	}
	v, err = exactFloat(mant, expVal+expExtra)
	if err != nil {
		return 0, false, &NumError{Func: FuncDecimal, Num: string(val), Base: 10, Err: ErrTooLarge}
	}
	return v, imag, nil
}

func mulAddDigit(u bignum.BigUint, d int) (bignum.BigUint, error) {
	u, err := bignum.UintMulSmall(u, 10)
	if err != nil {
		return bignum.BigUint{}, err
	}
	return bignum.UintAddSmall(u, uint32(d)) //nolint:gosec // G115: d is a decimal digit.
}
