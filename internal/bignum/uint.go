package bignum

import (
	"errors"
	"math/bits"
)

// MaxLimbs caps the size of any intermediate value.
const MaxLimbs = 1_000_000

var (
	// ErrMaxLimbs indicates the numeric size limit was exceeded.
	ErrMaxLimbs = errors.New("numeric size limit exceeded")
	// ErrDivByZero indicates an attempt to divide by zero.
	ErrDivByZero = errors.New("division by zero")
	// ErrNegativeShift is returned for shifts by a negative amount.
	ErrNegativeShift = errors.New("negative shift")
)

// BigUint represents a big unsigned integer.
type BigUint struct {
	// Limbs are base-2^32 little-endian (Limbs[0] is least significant).
	//
	// Canonical zero is represented as nil/empty slice.
	Limbs []uint32
}

// UintZero returns a zero BigUint.
func UintZero() BigUint { return BigUint{} }

// UintFromUint64 creates a BigUint from a uint64.
func UintFromUint64(v uint64) BigUint {
	if v == 0 {
		return BigUint{}
	}
	lo := uint32(v)       //nolint:gosec // G115: truncation is intentional (low limb).
	hi := uint32(v >> 32) //nolint:gosec // G115: truncation is intentional (high limb).
	if hi == 0 {
		return BigUint{Limbs: []uint32{lo}}
	}
	return BigUint{Limbs: []uint32{lo, hi}}
}

// UintFromUint32 creates a BigUint from a uint32.
func UintFromUint32(v uint32) BigUint {
	if v == 0 {
		return BigUint{}
	}
	return BigUint{Limbs: []uint32{v}}
}

// IsZero reports whether the unsigned integer is zero.
func (u BigUint) IsZero() bool {
	return len(trimLimbs(u.Limbs)) == 0
}

// BitLen returns the position of the highest set bit plus one (0 for zero).
func (u BigUint) BitLen() int {
	return bitLenLimbs(u.Limbs)
}

// Cmp compares two BigUint values.
func (u BigUint) Cmp(v BigUint) int {
	return cmpLimbs(u.Limbs, v.Limbs)
}

// Uint64 converts BigUint to uint64 if possible.
func (u BigUint) Uint64() (uint64, bool) {
	limbs := trimLimbs(u.Limbs)
	switch len(limbs) {
	case 0:
		return 0, true
	case 1:
		return uint64(limbs[0]), true
	case 2:
		return uint64(limbs[0]) | (uint64(limbs[1]) << 32), true
	default:
		return 0, false
	}
}

// UintAdd adds two BigUint values and returns the result.
func UintAdd(a, b BigUint) (BigUint, error) {
	al := trimLimbs(a.Limbs)
	bl := trimLimbs(b.Limbs)
	if len(al) < len(bl) {
		al, bl = bl, al
	}
	if len(al) == 0 {
		return BigUint{}, nil
	}

	out := make([]uint32, len(al)+1)
	var carry uint32
	for i := range al {
		var bv uint32
		if i < len(bl) {
			bv = bl[i]
		}
		out[i], carry = bits.Add32(al[i], bv, carry)
	}
	out[len(al)] = carry
	return finish(out)
}

// UintAddSmall adds a uint32 to a BigUint.
func UintAddSmall(u BigUint, v uint32) (BigUint, error) {
	limbs := trimLimbs(u.Limbs)
	if v == 0 {
		return BigUint{Limbs: limbs}, nil
	}
	if len(limbs) == 0 {
		return BigUint{Limbs: []uint32{v}}, nil
	}
	out := make([]uint32, len(limbs)+1)
	copy(out, limbs)
	carry := v
	for i := 0; carry != 0 && i < len(out); i++ {
		out[i], carry = bits.Add32(out[i], carry, 0)
	}
	return finish(out)
}

// UintMul multiplies two BigUint values.
func UintMul(a, b BigUint) (BigUint, error) {
	al := trimLimbs(a.Limbs)
	bl := trimLimbs(b.Limbs)
	if len(al) == 0 || len(bl) == 0 {
		return BigUint{}, nil
	}
	if len(al)+len(bl) > MaxLimbs+1 {
		return BigUint{}, ErrMaxLimbs
	}

	out := make([]uint32, len(al)+len(bl))
	for i, av := range al {
		if av == 0 {
			continue
		}
		var carry uint64
		for j, bv := range bl {
			sum := uint64(out[i+j]) + uint64(av)*uint64(bv) + carry
			out[i+j] = uint32(sum) //nolint:gosec // G115: truncation is intentional (limb arithmetic).
			carry = sum >> 32
		}
		out[i+len(bl)] = uint32(carry) //nolint:gosec // G115: carry < 2^32.
	}
	return finish(out)
}

// UintMulSmall multiplies a BigUint by a uint32.
func UintMulSmall(u BigUint, m uint32) (BigUint, error) {
	limbs := trimLimbs(u.Limbs)
	if m == 0 || len(limbs) == 0 {
		return BigUint{}, nil
	}
	if m == 1 {
		return BigUint{Limbs: limbs}, nil
	}
	out := make([]uint32, len(limbs)+1)
	var carry uint64
	for i, limb := range limbs {
		prod := uint64(limb)*uint64(m) + carry
		out[i] = uint32(prod) //nolint:gosec // G115: truncation is intentional (limb arithmetic).
		carry = prod >> 32
	}
	out[len(limbs)] = uint32(carry) //nolint:gosec // G115: carry < 2^32.
	return finish(out)
}

// UintDivModSmall performs division with remainder on a BigUint by a uint32.
func UintDivModSmall(u BigUint, d uint32) (q BigUint, r uint32, err error) {
	if d == 0 {
		return BigUint{}, 0, ErrDivByZero
	}
	limbs := trimLimbs(u.Limbs)
	if len(limbs) == 0 {
		return BigUint{}, 0, nil
	}

	out := make([]uint32, len(limbs))
	var rem uint32
	for i := len(limbs) - 1; i >= 0; i-- {
		out[i], rem = bits.Div32(rem, limbs[i], d)
	}
	return BigUint{Limbs: trimLimbs(out)}, rem, nil
}

// UintShl performs a left bit shift on a BigUint.
func UintShl(u BigUint, n int) (BigUint, error) {
	if n < 0 {
		return BigUint{}, ErrNegativeShift
	}
	limbs := trimLimbs(u.Limbs)
	if len(limbs) == 0 || n == 0 {
		return BigUint{Limbs: limbs}, nil
	}
	wordShift := n / 32
	if len(limbs)+wordShift > MaxLimbs {
		return BigUint{}, ErrMaxLimbs
	}
	out := make([]uint32, len(limbs)+wordShift+1)
	out[len(out)-1] = shlLimbs(out[wordShift:len(out)-1], limbs, uint(n%32))
	return finish(out)
}

// UintShr performs a right bit shift on a BigUint.
func UintShr(u BigUint, n int) (BigUint, error) {
	if n < 0 {
		return BigUint{}, ErrNegativeShift
	}
	limbs := trimLimbs(u.Limbs)
	if len(limbs) == 0 || n == 0 {
		return BigUint{Limbs: limbs}, nil
	}
	wordShift := n / 32
	if wordShift >= len(limbs) {
		return BigUint{}, nil
	}
	out := make([]uint32, len(limbs)-wordShift)
	shrLimbs(out, limbs[wordShift:], uint(n%32))
	return BigUint{Limbs: trimLimbs(out)}, nil
}

// LowBitsNonZero reports whether any of the n least significant bits is set.
func (u BigUint) LowBitsNonZero(n int) bool {
	for _, limb := range trimLimbs(u.Limbs) {
		switch {
		case n <= 0:
			return false
		case n < 32:
			return limb&(uint32(1)<<uint(n)-1) != 0
		case limb != 0:
			return true
		}
		n -= 32
	}
	return false
}

// shlLimbs writes src<<s into dst (len(dst) == len(src)) and returns the bits shifted out.
func shlLimbs(dst, src []uint32, s uint) uint32 {
	if s == 0 {
		copy(dst, src)
		return 0
	}
	var carry uint32
	for i, v := range src {
		dst[i] = v<<s | carry
		carry = v >> (32 - s)
	}
	return carry
}

// shrLimbs writes src>>s into dst (len(dst) == len(src)).
func shrLimbs(dst, src []uint32, s uint) {
	if s == 0 {
		copy(dst, src)
		return
	}
	var carry uint32
	for i := len(src) - 1; i >= 0; i-- {
		v := src[i]
		dst[i] = v>>s | carry
		carry = v << (32 - s)
	}
}

func finish(out []uint32) (BigUint, error) {
	out = trimLimbs(out)
	if len(out) > MaxLimbs {
		return BigUint{}, ErrMaxLimbs
	}
	return BigUint{Limbs: out}, nil
}

func trimLimbs(limbs []uint32) []uint32 {
	for len(limbs) > 0 && limbs[len(limbs)-1] == 0 {
		limbs = limbs[:len(limbs)-1]
	}
	if len(limbs) == 0 {
		return nil
	}
	return limbs
}

func bitLenLimbs(limbs []uint32) int {
	limbs = trimLimbs(limbs)
	if len(limbs) == 0 {
		return 0
	}
	return (len(limbs)-1)*32 + bits.Len32(limbs[len(limbs)-1])
}

func cmpLimbs(a, b []uint32) int {
	a = trimLimbs(a)
	b = trimLimbs(b)
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}
