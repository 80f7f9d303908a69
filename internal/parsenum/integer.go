package parsenum

import "numlit/internal/bignum"

// ScanInteger parses text as an integer in the given radix (0 for auto-detect,
// otherwise 2..36).
//
// Leading and trailing whitespace, one sign and a radix prefix are accepted;
// '_' may appear anywhere in the digit run. The value is accumulated inline
// until the next digit could leave the small range, at which point the whole
// digit run is re-scanned as a big integer.
func ScanInteger(text []byte, base int, cfg Config) (Int, *NumError) {
	if base != 0 && (base < 2 || base > 36) {
		return Int{}, &NumError{Func: FuncInteger, Num: string(text), Base: base, Err: ErrBase}
	}

	s := span{buf: text}
	s.skipSpace()
	neg := s.sign()
	base = detectBase(&s, base)

	valStart := s.pos
	_, limit := cfg.SmallIntRange()
	radix := int64(base)

	var (
		acc    int64
		digits int
	)
	for ; !s.eof(); s.advance(1) {
		ch := s.peek()
		if ch == '_' {
			continue
		}
		d := digitValue(ch)
		if d >= base {
			break
		}
		if acc > (limit-int64(d))/radix {
			return scanBigInteger(text, valStart, base, neg, cfg)
		}
		acc = acc*radix + int64(d)
		digits++
	}
	if digits == 0 {
		return Int{}, syntaxError(FuncInteger, text[valStart:], base, ReasonNoDigits)
	}
	if err := expectEnd(&s, FuncInteger, text[valStart:], base); err != nil {
		return Int{}, err
	}
	if neg {
		acc = -acc
	}
	return SmallInt(acc), nil
}

// scanBigInteger re-reads the digit run starting at valStart with the
// big-integer scanner and finishes the parse from where it stopped.
func scanBigInteger(text []byte, valStart, base int, neg bool, cfg Config) (Int, *NumError) {
	mag, n, err := bignum.ScanUint(text[valStart:], base)
	if err != nil {
		return Int{}, &NumError{Func: FuncInteger, Num: string(text[valStart:]), Base: base, Err: ErrTooLarge}
	}
	s := span{buf: text, pos: valStart + n}
	if err := expectEnd(&s, FuncInteger, text[valStart:], base); err != nil {
		return Int{}, err
	}
	return newInt(bignum.IntFromUint(mag, neg), cfg), nil
}

// expectEnd skips trailing whitespace and fails if anything else remains.
func expectEnd(s *span, fn string, val []byte, base int) *NumError {
	s.skipSpace()
	if !s.eof() {
		return syntaxError(fn, val, base, ReasonTrailing)
	}
	return nil
}
