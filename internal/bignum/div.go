package bignum

import "math/bits"

// UintDivMod performs division with remainder on two BigUint values.
//
// Multi-limb divisors use schoolbook long division (Knuth, TAOCP vol. 2, 4.3.1 D).
func UintDivMod(a, b BigUint) (q, r BigUint, err error) {
	al := trimLimbs(a.Limbs)
	bl := trimLimbs(b.Limbs)
	if len(bl) == 0 {
		return BigUint{}, BigUint{}, ErrDivByZero
	}
	if cmpLimbs(al, bl) < 0 {
		return BigUint{}, BigUint{Limbs: al}, nil
	}
	if len(bl) == 1 {
		q, rem, err := UintDivModSmall(BigUint{Limbs: al}, bl[0])
		return q, UintFromUint32(rem), err
	}

	// Normalise so the divisor's top limb has its high bit set.
	s := uint(bits.LeadingZeros32(bl[len(bl)-1]))
	n := len(bl)
	m := len(al) - n
	vn := make([]uint32, n)
	shlLimbs(vn, bl, s)
	un := make([]uint32, len(al)+1)
	un[len(al)] = shlLimbs(un[:len(al)], al, s)

	quot := make([]uint32, m+1)
	vTop := uint64(vn[n-1])
	vNext := uint64(vn[n-2])
	const base = uint64(1) << 32
	for j := m; j >= 0; j-- {
		num := uint64(un[j+n])<<32 | uint64(un[j+n-1])
		qhat := num / vTop
		rhat := num % vTop
		for qhat >= base || qhat*vNext > rhat<<32|uint64(un[j+n-2]) {
			qhat--
			rhat += vTop
			if rhat >= base {
				break
			}
		}

		var borrow int64
		for i := range n {
			p := qhat * uint64(vn[i])
			t := int64(un[i+j]) - borrow - int64(p&0xFFFF_FFFF) //nolint:gosec // G115: operands < 2^32.
			un[i+j] = uint32(t)                                   //nolint:gosec // G115: truncation is intentional (limb arithmetic).
			borrow = int64(p>>32) - t>>32                         //nolint:gosec // G115: p>>32 < 2^32.
		}
		t := int64(un[j+n]) - borrow
		un[j+n] = uint32(t)     //nolint:gosec // G115: truncation is intentional (limb arithmetic).
		quot[j] = uint32(qhat) //nolint:gosec // G115: qhat < 2^32 after correction.

		if t < 0 {
			// qhat was one too large: add the divisor back.
			quot[j]--
			var carry uint32
			for i := range n {
				un[i+j], carry = bits.Add32(un[i+j], vn[i], carry)
			}
			un[j+n] += carry
		}
	}

	rem := make([]uint32, n)
	shrLimbs(rem, un[:n], s)
	return BigUint{Limbs: trimLimbs(quot)}, BigUint{Limbs: trimLimbs(rem)}, nil
}
