package bignum

import "errors"

// ErrBase is returned for radices outside [2, 36].
var ErrBase = errors.New("base out of range")

// ScanUint reads a run of digits in the given base from the start of text.
//
// Digits are 0-9 then a-z/A-Z for 10..35; '_' is skipped anywhere in the run.
// Scanning stops at the first byte that is neither a digit valid for base nor
// '_'. It returns the value and the number of bytes consumed.
func ScanUint(text []byte, base int) (BigUint, int, error) {
	if base < 2 || base > 36 {
		return BigUint{}, 0, ErrBase
	}
	b := uint32(base) //nolint:gosec // G115: base checked above.

	// Largest power of base that fits in a limb, so digits are folded in
	// chunks instead of one multiply per digit.
	chunkMul := b
	chunkLen := 1
	for uint64(chunkMul)*uint64(b) <= 0xFFFF_FFFF {
		chunkMul *= b
		chunkLen++
	}

	var (
		acc   BigUint
		chunk uint32
		mul   = uint32(1)
		n     int
		pos   int
		err   error
	)
	flush := func() error {
		if n == 0 {
			return nil
		}
		var err error
		acc, err = UintMulSmall(acc, mul)
		if err != nil {
			return err
		}
		acc, err = UintAddSmall(acc, chunk)
		chunk, mul, n = 0, 1, 0
		return err
	}

	for ; pos < len(text); pos++ {
		ch := text[pos]
		if ch == '_' {
			continue
		}
		d := digitValue(ch)
		if d >= base {
			break
		}
		chunk = chunk*b + uint32(d) //nolint:gosec // G115: d < base.
		mul *= b
		n++
		if n == chunkLen {
			if err = flush(); err != nil {
				return BigUint{}, 0, err
			}
		}
	}
	if err = flush(); err != nil {
		return BigUint{}, 0, err
	}
	return acc, pos, nil
}

func digitValue(ch byte) int {
	switch {
	case '0' <= ch && ch <= '9':
		return int(ch - '0')
	case 'a' <= ch && ch <= 'z':
		return int(ch-'a') + 10
	case 'A' <= ch && ch <= 'Z':
		return int(ch-'A') + 10
	default:
		return 36
	}
}
