package bignum

import (
	"strconv"
	"strings"
)

// FormatUint renders u in decimal.
func FormatUint(u BigUint) string {
	limbs := trimLimbs(u.Limbs)
	if len(limbs) == 0 {
		return "0"
	}

	const chunk = uint32(1_000_000_000)

	cur := BigUint{Limbs: limbs}
	var parts []uint32
	for !cur.IsZero() {
		q, r, err := UintDivModSmall(cur, chunk)
		if err != nil {
			return "<format-error>"
		}
		parts = append(parts, r)
		cur = q
	}

	var sb strings.Builder
	sb.Grow(len(parts) * 9)
	sb.WriteString(strconv.FormatUint(uint64(parts[len(parts)-1]), 10))
	for i := len(parts) - 2; i >= 0; i-- {
		s := strconv.FormatUint(uint64(parts[i]), 10)
		sb.WriteString(strings.Repeat("0", 9-len(s)))
		sb.WriteString(s)
	}
	return sb.String()
}

// FormatInt renders i in decimal with a leading '-' when negative.
func FormatInt(i BigInt) string {
	s := FormatUint(i.Abs())
	if i.Neg && s != "0" {
		return "-" + s
	}
	return s
}

// String implements fmt.Stringer.
func (u BigUint) String() string { return FormatUint(u) }

// String implements fmt.Stringer.
func (i BigInt) String() string { return FormatInt(i) }
