package bignum

// UintPow returns base**n by binary exponentiation.
func UintPow(base uint32, n int) (BigUint, error) {
	if n < 0 {
		return BigUint{}, ErrNegativeShift
	}
	result := UintFromUint32(1)
	if n == 0 {
		return result, nil
	}
	sq := UintFromUint32(base)
	var err error
	for {
		if n&1 == 1 {
			result, err = UintMul(result, sq)
			if err != nil {
				return BigUint{}, err
			}
		}
		n >>= 1
		if n == 0 {
			return result, nil
		}
		sq, err = UintMul(sq, sq)
		if err != nil {
			return BigUint{}, err
		}
	}
}
