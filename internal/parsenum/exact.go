package parsenum

import (
	"math"

	"numlit/internal/bignum"
)

const (
	// mantissaBits stops mantissa accumulation: 52 bits of float64 mantissa
	// plus 16 guard bits.
	mantissaBits = 52 + 16
	// expClamp bounds the decimal exponent while its digits are read; any
	// larger value already means zero or infinity.
	expClamp = (math.MaxInt32/2 - 9) / 10
	// expCutoff: beyond ±400 the result is 0 or +Inf for any mantissa that
	// fits mantissaBits.
	expCutoff = 400
	// normBits is the width the working value is reduced to before the
	// float conversion: 53 bits plus a rounding bit and a sticky bit.
	normBits = 55

	minNormalExp = -1022
	minSubnormal = -1074
)

// exactFloat returns the float64 nearest to mant * 10**exp.
func exactFloat(mant bignum.BigUint, exp int) (float64, error) {
	if mant.IsZero() {
		return 0, nil
	}
	switch {
	case exp < -expCutoff:
		return 0, nil
	case exp > expCutoff:
		return math.Inf(1), nil
	}

	n := exp
	if n < 0 {
		n = -n
	}
	pow5, err := bignum.UintPow(5, n)
	if err != nil {
		return 0, err
	}

	// dec * 2**e2 is the value, exactly for exp >= 0 and up to a sticky bit
	// otherwise.
	var (
		dec bignum.BigUint
		e2  int
	)
	if exp >= 0 {
		dec, err = bignum.UintMul(mant, pow5)
		if err != nil {
			return 0, err
		}
		e2 = exp
	} else {
		shift := 3*n + 54
		dec, err = bignum.UintShl(mant, shift)
		if err != nil {
			return 0, err
		}
		var rem bignum.BigUint
		dec, rem, err = bignum.UintDivMod(dec, pow5)
		if err != nil {
			return 0, err
		}
		if !rem.IsZero() {
			dec = setLowBit(dec)
		}
		e2 = exp - shift
	}

	if k := dec.BitLen() - normBits; k > 0 {
		dec, err = shiftSticky(dec, k)
		if err != nil {
			return 0, err
		}
		e2 += k
	}

	if e2+dec.BitLen()-1 < minNormalExp {
		return subnormal(dec, e2)
	}
	return math.Ldexp(dec.Float64(), e2), nil
}

// subnormal rounds dec * 2**e2 to the 2**-1074 grid, ties to even, so the
// final scaling is exact.
func subnormal(dec bignum.BigUint, e2 int) (float64, error) {
	k := minSubnormal - e2
	if k <= 0 {
		return math.Ldexp(dec.Float64(), e2), nil
	}
	q, err := bignum.UintShr(dec, k)
	if err != nil {
		return 0, err
	}
	half, err := bignum.UintShr(dec, k-1)
	if err != nil {
		return 0, err
	}
	v, _ := q.Uint64()
	roundBit := len(half.Limbs) > 0 && half.Limbs[0]&1 == 1
	if roundBit && (dec.LowBitsNonZero(k-1) || v&1 == 1) {
		v++
	}
	return math.Ldexp(float64(v), minSubnormal), nil
}

// shiftSticky shifts right by k, keeping bit 0 set if any dropped bit was set.
func shiftSticky(u bignum.BigUint, k int) (bignum.BigUint, error) {
	sticky := u.LowBitsNonZero(k)
	out, err := bignum.UintShr(u, k)
	if err != nil {
		return bignum.BigUint{}, err
	}
	if sticky {
		out = setLowBit(out)
	}
	return out, nil
}

func setLowBit(u bignum.BigUint) bignum.BigUint {
	if len(u.Limbs) == 0 {
		return bignum.UintFromUint32(1)
	}
	limbs := make([]uint32, len(u.Limbs))
	copy(limbs, u.Limbs)
	limbs[0] |= 1
	return bignum.BigUint{Limbs: limbs}
}
