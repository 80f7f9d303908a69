// Package convert implements the runtime's string-to-number builtins on top
// of parsenum. Failures are always *parsenum.ValueError.
package convert

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"numlit/internal/parsenum"
)

// Int implements int(s, base). base 0 detects 0x/0o/0b prefixes.
func Int(p *parsenum.Parser, s string, base int) (parsenum.Int, error) {
	text, err := prepare(s)
	if err != nil {
		return parsenum.Int{}, err
	}
	return p.Integer(text, base, nil)
}

// Float implements float(s).
func Float(p *parsenum.Parser, s string) (float64, error) {
	text, err := prepare(s)
	if err != nil {
		return 0, err
	}
	n, err := p.Decimal(text, false, false, nil)
	if err != nil {
		return 0, err
	}
	return n.Float, nil
}

// Complex implements complex(s) for a single real or imaginary literal.
func Complex(p *parsenum.Parser, s string) (complex128, error) {
	text, err := prepare(s)
	if err != nil {
		return 0, err
	}
	n, err := p.Decimal(text, true, true, nil)
	if err != nil {
		return 0, err
	}
	return n.Complex, nil
}

// prepare folds compatibility forms (fullwidth digits, no-break spaces) to
// ASCII with NFKC. ASCII input is passed through untouched.
func prepare(s string) ([]byte, error) {
	if isASCII(s) {
		return []byte(s), nil
	}
	if !utf8.ValidString(s) {
		return nil, &parsenum.ValueError{Msg: "invalid UTF-8 in numeric string"}
	}
	return []byte(norm.NFKC.String(s)), nil
}

func isASCII(s string) bool {
	for i := range len(s) {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
