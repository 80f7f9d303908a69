package bignum

// BigInt represents a big signed integer.
type BigInt struct {
	Neg bool
	// Limbs are base-2^32 little-endian magnitude (Limbs[0] is least significant).
	//
	// Canonical zero is represented as Neg=false and nil/empty Limbs.
	Limbs []uint32
}

// IntZero returns a zero BigInt.
func IntZero() BigInt { return BigInt{} }

// IntFromInt64 creates a BigInt from an int64.
func IntFromInt64(v int64) BigInt {
	if v == 0 {
		return BigInt{}
	}
	if v > 0 {
		return BigInt{Limbs: UintFromUint64(uint64(v)).Limbs}
	}
	u := uint64(-(v + 1)) //nolint:gosec // G115: -(v+1) is non-negative and fits in uint64 here.
	u++
	return BigInt{Neg: true, Limbs: UintFromUint64(u).Limbs}
}

// IntFromUint builds a signed value from a magnitude and a sign.
func IntFromUint(mag BigUint, neg bool) BigInt {
	limbs := trimLimbs(mag.Limbs)
	if len(limbs) == 0 {
		return BigInt{}
	}
	return BigInt{Neg: neg, Limbs: limbs}
}

// IsZero reports whether the integer is zero.
func (i BigInt) IsZero() bool {
	return len(trimLimbs(i.Limbs)) == 0
}

// Abs returns the absolute value as a BigUint.
func (i BigInt) Abs() BigUint {
	return BigUint{Limbs: trimLimbs(i.Limbs)}
}

// Negated returns the negated value.
func (i BigInt) Negated() BigInt {
	if i.IsZero() {
		return BigInt{}
	}
	return BigInt{Neg: !i.Neg, Limbs: trimLimbs(i.Limbs)}
}

// Sign returns -1, 0 or +1.
func (i BigInt) Sign() int {
	switch {
	case i.IsZero():
		return 0
	case i.Neg:
		return -1
	default:
		return 1
	}
}

// Cmp compares two BigInt values.
func (i BigInt) Cmp(j BigInt) int {
	ia := trimLimbs(i.Limbs)
	ja := trimLimbs(j.Limbs)
	switch {
	case len(ia) == 0 && len(ja) == 0:
		return 0
	case i.Sign() != j.Sign():
		if i.Sign() < j.Sign() {
			return -1
		}
		return 1
	default:
		cmp := cmpLimbs(ia, ja)
		if i.Neg {
			return -cmp
		}
		return cmp
	}
}

// Int64 converts BigInt to int64 if possible.
func (i BigInt) Int64() (int64, bool) {
	mag, ok := i.Abs().Uint64()
	if !ok {
		return 0, false
	}
	if !i.Neg {
		if mag > 1<<63-1 {
			return 0, false
		}
		return int64(mag), true //nolint:gosec // G115: range checked above.
	}
	if mag > 1<<63 {
		return 0, false
	}
	return -int64(mag-1) - 1, true //nolint:gosec // G115: range checked above.
}
