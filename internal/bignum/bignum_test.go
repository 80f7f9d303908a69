package bignum

import (
	"math"
	"math/big"
	"math/rand"
	"strconv"
	"testing"
)

func toBig(u BigUint) *big.Int {
	out := new(big.Int)
	for i := len(u.Limbs) - 1; i >= 0; i-- {
		out.Lsh(out, 32)
		out.Or(out, big.NewInt(int64(u.Limbs[i])))
	}
	return out
}

func fromBig(t *testing.T, b *big.Int) BigUint {
	t.Helper()
	u, n, err := ScanUint([]byte(b.Text(16)), 16)
	if err != nil || n != len(b.Text(16)) {
		t.Fatalf("ScanUint(%s): n=%d err=%v", b.Text(16), n, err)
	}
	return u
}

func randBig(r *rand.Rand, maxBits int) *big.Int {
	bitsN := 1 + r.Intn(maxBits)
	b := new(big.Int)
	for i := 0; i < bitsN; i += 31 {
		b.Lsh(b, 31)
		b.Or(b, big.NewInt(r.Int63n(1<<31)))
	}
	return b
}

func TestScanUintBases(t *testing.T) {
	cases := []struct {
		in   string
		base int
		want string
		n    int
	}{
		{"0", 10, "0", 1},
		{"123abc", 10, "123", 3},
		{"1_000_000", 10, "1000000", 9},
		{"ff", 16, "255", 2},
		{"FFg", 16, "255", 2},
		{"zz", 36, "1295", 2},
		{"101012", 2, "21", 5},
		{"", 10, "0", 0},
		{"18446744073709551616", 10, "18446744073709551616", 20},
	}
	for _, tc := range cases {
		u, n, err := ScanUint([]byte(tc.in), tc.base)
		if err != nil {
			t.Fatalf("ScanUint(%q, %d): %v", tc.in, tc.base, err)
		}
		if got := FormatUint(u); got != tc.want || n != tc.n {
			t.Errorf("ScanUint(%q, %d) = %s, %d; want %s, %d", tc.in, tc.base, got, n, tc.want, tc.n)
		}
	}
	if _, _, err := ScanUint([]byte("1"), 37); err != ErrBase {
		t.Errorf("expected ErrBase, got %v", err)
	}
}

func TestArithmeticMatchesMathBig(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for range 500 {
		a := randBig(r, 400)
		b := randBig(r, 200)
		ua := fromBig(t, a)
		ub := fromBig(t, b)

		sum, err := UintAdd(ua, ub)
		if err != nil || toBig(sum).Cmp(new(big.Int).Add(a, b)) != 0 {
			t.Fatalf("add %s + %s = %s (%v)", a, b, FormatUint(sum), err)
		}
		prod, err := UintMul(ua, ub)
		if err != nil || toBig(prod).Cmp(new(big.Int).Mul(a, b)) != 0 {
			t.Fatalf("mul %s * %s = %s (%v)", a, b, FormatUint(prod), err)
		}
		if b.Sign() == 0 {
			continue
		}
		q, rem, err := UintDivMod(ua, ub)
		wq, wr := new(big.Int).QuoRem(a, b, new(big.Int))
		if err != nil || toBig(q).Cmp(wq) != 0 || toBig(rem).Cmp(wr) != 0 {
			t.Fatalf("divmod %s / %s = %s r %s (%v); want %s r %s", a, b, FormatUint(q), FormatUint(rem), err, wq, wr)
		}
		if got, want := ua.Cmp(ub), a.Cmp(b); got != want {
			t.Fatalf("cmp %s %s = %d, want %d", a, b, got, want)
		}
		if got, want := ua.BitLen(), a.BitLen(); got != want {
			t.Fatalf("bitlen %s = %d, want %d", a, got, want)
		}
	}
}

func TestDivModAddBack(t *testing.T) {
	// Divisors with a near-full top limb exercise the quotient correction step.
	a := new(big.Int).Lsh(big.NewInt(1), 128)
	a.Sub(a, big.NewInt(1))
	b, _ := new(big.Int).SetString("80000000000000000000000000000001", 16)
	q, r, err := UintDivMod(fromBig(t, a), fromBig(t, b))
	if err != nil {
		t.Fatal(err)
	}
	wq, wr := new(big.Int).QuoRem(a, b, new(big.Int))
	if toBig(q).Cmp(wq) != 0 || toBig(r).Cmp(wr) != 0 {
		t.Fatalf("got %s r %s, want %s r %s", FormatUint(q), FormatUint(r), wq, wr)
	}
	if _, _, err := UintDivMod(a2u(1), BigUint{}); err != ErrDivByZero {
		t.Fatalf("expected ErrDivByZero, got %v", err)
	}
}

func a2u(v uint64) BigUint { return UintFromUint64(v) }

func TestShifts(t *testing.T) {
	u := a2u(0xDEADBEEF)
	for _, n := range []int{0, 1, 31, 32, 33, 64, 100} {
		l, err := UintShl(u, n)
		if err != nil {
			t.Fatal(err)
		}
		want := new(big.Int).Lsh(big.NewInt(0xDEADBEEF), uint(n))
		if toBig(l).Cmp(want) != 0 {
			t.Errorf("shl %d = %s, want %s", n, FormatUint(l), want)
		}
		back, _ := UintShr(l, n)
		if back.Cmp(u) != 0 {
			t.Errorf("shr(shl(x, %d)) = %s", n, FormatUint(back))
		}
	}
	if _, err := UintShl(u, -1); err != ErrNegativeShift {
		t.Errorf("expected ErrNegativeShift, got %v", err)
	}
	if !a2u(0b1000).LowBitsNonZero(4) || a2u(0b1000).LowBitsNonZero(3) {
		t.Error("LowBitsNonZero mismatch")
	}
}

func TestUintPow(t *testing.T) {
	for _, n := range []int{0, 1, 2, 27, 28, 100, 400} {
		p, err := UintPow(5, n)
		if err != nil {
			t.Fatal(err)
		}
		want := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(n)), nil)
		if toBig(p).Cmp(want) != 0 {
			t.Errorf("5^%d mismatch", n)
		}
	}
}

func TestFloat64RoundsToNearestEven(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for range 300 {
		b := randBig(r, 300)
		want, _ := new(big.Float).SetInt(b).Float64()
		if got := fromBig(t, b).Float64(); got != want {
			t.Fatalf("Float64(%s) = %v, want %v", b, got, want)
		}
	}
	// 2^64 + 2^11 + 1 sits just above the halfway point between two doubles.
	b, _ := new(big.Int).SetString("10000000000000801", 16)
	b.Lsh(b, 8)
	want, _ := new(big.Float).SetInt(b).Float64()
	if got := fromBig(t, b).Float64(); got != want {
		t.Fatalf("tie breaking: got %v, want %v", got, want)
	}
	huge, _ := UintShl(a2u(1), 1100)
	if !math.IsInf(huge.Float64(), 1) {
		t.Errorf("2^1100 should overflow to +Inf")
	}
}

func TestFormatAndSigned(t *testing.T) {
	v := IntFromInt64(math.MinInt64)
	if got := FormatInt(v); got != strconv.FormatInt(math.MinInt64, 10) {
		t.Errorf("FormatInt(MinInt64) = %s", got)
	}
	if n, ok := v.Int64(); !ok || n != math.MinInt64 {
		t.Errorf("Int64 round trip = %d, %v", n, ok)
	}
	big64 := IntFromUint(a2u(1<<63), false)
	if _, ok := big64.Int64(); ok {
		t.Errorf("2^63 should not fit int64")
	}
	if IntFromInt64(-5).Cmp(IntFromInt64(3)) != -1 || IntFromInt64(3).Cmp(IntFromInt64(-5)) != 1 {
		t.Errorf("signed compare mismatch")
	}
	if IntFromInt64(-7).Negated().Cmp(IntFromInt64(7)) != 0 {
		t.Errorf("negation mismatch")
	}
	if FormatUint(BigUint{}) != "0" || FormatInt(BigInt{Neg: true}) != "0" {
		t.Errorf("zero formatting mismatch")
	}
	if got := FormatUint(a2u(1_000_000_007_000_000_000)); got != "1000000007000000000" {
		t.Errorf("chunk padding: %s", got)
	}
}
