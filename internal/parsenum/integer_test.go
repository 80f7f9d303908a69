package parsenum

import (
	"errors"
	"math/big"
	"math/rand"
	"strings"
	"testing"
)

func TestScanIntegerValues(t *testing.T) {
	cases := []struct {
		in   string
		base int
		want string
	}{
		{"0", 0, "0"},
		{"00", 0, "0"},
		{"42", 10, "42"},
		{"  -0x1F  ", 0, "-31"},
		{"0X1f", 16, "31"},
		{"0o17", 0, "15"},
		{"0O17", 8, "15"},
		{"0b101", 0, "5"},
		{"0b101", 2, "5"},
		{"0b1", 16, "177"},
		{"+7", 0, "7"},
		{"-0", 10, "0"},
		{"1_000_000", 10, "1000000"},
		{"1__2", 10, "12"},
		{"z", 36, "35"},
		{"Zz", 36, "1295"},
		{"\t12 \n", 10, "12"},
		{"777", 8, "511"},
		{"123456789012345678901234567890", 10, "123456789012345678901234567890"},
		{"-0xffffffffffffffffffff", 0, "-1208925819614629174706175"},
		{"1_0000_0000_0000_0000_0000", 10, "100000000000000000000"},
	}
	for _, tc := range cases {
		got, err := ScanInteger([]byte(tc.in), tc.base, Config{})
		if err != nil {
			t.Errorf("ScanInteger(%q, %d) unexpected error: %v", tc.in, tc.base, err)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("ScanInteger(%q, %d) = %s, want %s", tc.in, tc.base, got, tc.want)
		}
	}
}

func TestScanIntegerErrors(t *testing.T) {
	cases := []struct {
		in     string
		base   int
		err    error
		reason Reason
	}{
		{"", 10, ErrSyntax, ReasonNoDigits},
		{"   ", 10, ErrSyntax, ReasonNoDigits},
		{"-", 10, ErrSyntax, ReasonNoDigits},
		{"_", 10, ErrSyntax, ReasonNoDigits},
		{"0x", 0, ErrSyntax, ReasonNoDigits},
		{"0b", 0, ErrSyntax, ReasonNoDigits},
		{"12a", 10, ErrSyntax, ReasonTrailing},
		{"0x1A", 10, ErrSyntax, ReasonTrailing},
		{"1 2", 10, ErrSyntax, ReasonTrailing},
		{"--1", 10, ErrSyntax, ReasonNoDigits},
		{"8", 8, ErrSyntax, ReasonNoDigits},
		{"99999999999999999999999x", 10, ErrSyntax, ReasonTrailing},
		{"1", 1, ErrBase, ReasonNone},
		{"1", 37, ErrBase, ReasonNone},
		{"1", -2, ErrBase, ReasonNone},
	}
	for _, tc := range cases {
		_, err := ScanInteger([]byte(tc.in), tc.base, Config{})
		if err == nil {
			t.Errorf("ScanInteger(%q, %d) expected error", tc.in, tc.base)
			continue
		}
		if !errors.Is(err, tc.err) || err.Reason != tc.reason {
			t.Errorf("ScanInteger(%q, %d) = %v (reason %v), want %v (reason %v)", tc.in, tc.base, err, err.Reason, tc.err, tc.reason)
		}
		if err.Func != FuncInteger {
			t.Errorf("ScanInteger(%q, %d) Func = %q", tc.in, tc.base, err.Func)
		}
	}
}

func TestScanIntegerBaseReportedAfterDetection(t *testing.T) {
	_, err := ScanInteger([]byte("0xZZ"), 0, Config{})
	if err == nil || err.Base != 16 || err.Num != "ZZ" {
		t.Fatalf("unexpected error %+v", err)
	}
}

func TestSmallIntBoundary(t *testing.T) {
	cases := []struct {
		bits  int
		in    string
		small bool
	}{
		{0, "4611686018427387903", true},
		{0, "4611686018427387904", false},
		{0, "-4611686018427387904", true},
		{0, "-4611686018427387905", false},
		{31, "1073741823", true},
		{31, "1073741824", false},
		{31, "-1073741824", true},
		{31, "-1073741825", false},
		{64, "9223372036854775807", true},
		{64, "9223372036854775808", false},
		{64, "-9223372036854775808", true},
		{64, "-9223372036854775809", false},
	}
	for _, tc := range cases {
		cfg := Config{SmallIntBits: tc.bits}
		got, err := ScanInteger([]byte(tc.in), 10, cfg)
		if err != nil {
			t.Fatalf("ScanInteger(%q) bits=%d: %v", tc.in, tc.bits, err)
		}
		if got.String() != tc.in {
			t.Errorf("ScanInteger(%q) bits=%d = %s", tc.in, tc.bits, got)
		}
		if got.IsSmall() != tc.small {
			t.Errorf("ScanInteger(%q) bits=%d small=%v, want %v", tc.in, tc.bits, got.IsSmall(), tc.small)
		}
	}
}

func TestScanIntegerMatchesMathBig(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for range 2000 {
		base := 2 + r.Intn(35)
		n := new(big.Int).Rand(r, new(big.Int).Lsh(big.NewInt(1), uint(1+r.Intn(200))))
		if r.Intn(2) == 0 {
			n.Neg(n)
		}
		text := n.Text(base)
		if r.Intn(3) == 0 {
			text = strings.ToUpper(text)
		}
		got, err := ScanInteger([]byte(text), base, Config{SmallIntBits: []int{0, 31, 64}[r.Intn(3)]})
		if err != nil {
			t.Fatalf("ScanInteger(%q, %d): %v", text, base, err)
		}
		if got.String() != n.String() {
			t.Fatalf("ScanInteger(%q, %d) = %s, want %s", text, base, got, n)
		}
	}
}

func TestScanIntegerLeavesInputUntouched(t *testing.T) {
	in := []byte("  0x_dead_BEEF_cafe_f00d_1234  ")
	orig := append([]byte(nil), in...)
	first, err := ScanInteger(in, 0, Config{})
	if err != nil {
		t.Fatal(err)
	}
	second, err := ScanInteger(in, 0, Config{})
	if err != nil {
		t.Fatal(err)
	}
	if string(in) != string(orig) {
		t.Errorf("input modified: %q", in)
	}
	if first.Cmp(second) != 0 {
		t.Errorf("repeated parse differs: %s vs %s", first, second)
	}
}

func TestDetectBase(t *testing.T) {
	cases := []struct {
		in        string
		base      int
		effective int
		prefixLen int
	}{
		{"0x10", 0, 16, 2},
		{"0x10", 16, 16, 2},
		{"0x10", 10, 10, 0},
		{"-0o7", 0, 8, 2},
		{"0o7", 16, 16, 0},
		{"0b1", 2, 2, 2},
		{"0b1", 8, 8, 0},
		{"0", 0, 10, 0},
		{"07", 0, 10, 0},
		{"x", 0, 10, 0},
	}
	for _, tc := range cases {
		eff, n := DetectBase([]byte(tc.in), tc.base)
		if eff != tc.effective || n != tc.prefixLen {
			t.Errorf("DetectBase(%q, %d) = %d, %d; want %d, %d", tc.in, tc.base, eff, n, tc.effective, tc.prefixLen)
		}
	}
}
