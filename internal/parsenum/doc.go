// Package parsenum converts numeric literal text into exact integers and
// correctly rounded floating-point values.
//
// Two entry points do the work: ScanInteger for integers in any radix from 2
// to 36 (with 0x/0o/0b prefixes when the radix allows them) and ScanDecimal
// for decimal floats, inf/nan and imaginary literals. Both are pure: they read
// the text, never modify it, and report failures as *NumError values.
//
// Integers accumulate in a machine word while the value fits the configured
// inline range and fall back to a big-integer re-scan otherwise. Decimals are
// converted with integer arithmetic only: the mantissa digits and the decimal
// exponent are combined exactly through powers of five, so the only rounding
// step is the final conversion to float64.
//
// Callers translate a *NumError through an Adapter. The tokenizer passes a
// Location and gets a *SyntaxError; runtime conversions pass nil and get a
// *ValueError. Parser bundles a Config with its Adapter.
package parsenum
