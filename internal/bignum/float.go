package bignum

import "math"

// Float64 converts the value to the nearest float64, ties to even.
//
// Values of up to 64 bits use the native integer conversion; wider values
// keep their top 64 bits with every dropped bit folded into bit 0, which sits
// below the float64 rounding position and so only breaks ties.
func (u BigUint) Float64() float64 {
	limbs := trimLimbs(u.Limbs)
	n := bitLenLimbs(limbs)
	if n <= 64 {
		v, _ := BigUint{Limbs: limbs}.Uint64()
		return float64(v)
	}
	shift := n - 64
	top, err := UintShr(BigUint{Limbs: limbs}, shift)
	if err != nil {
		return math.NaN()
	}
	v, _ := top.Uint64()
	if u.LowBitsNonZero(shift) {
		v |= 1
	}
	return math.Ldexp(float64(v), shift)
}
