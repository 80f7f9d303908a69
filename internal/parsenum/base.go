package parsenum

// detectBase consumes a 0x/0o/0b prefix (either case) when the requested radix
// allows it and returns the effective radix.
//
// Radix 0 accepts any of the three prefixes and otherwise means 10. An explicit
// radix only accepts its own prefix, so 0b1 in radix 16 is the number 0xB1.
// Fewer than two bytes never form a prefix.
func detectBase(s *span, base int) int {
	if s.remaining() >= 2 && s.peek() == '0' {
		var prefixBase int
		switch lower(s.at(1)) {
		case 'x':
			prefixBase = 16
		case 'o':
			prefixBase = 8
		case 'b':
			prefixBase = 2
		}
		if prefixBase != 0 && (base == 0 || base == prefixBase) {
			s.advance(2)
			return prefixBase
		}
	}
	if base == 0 {
		return 10
	}
	return base
}

// DetectBase reports the radix text would be parsed with after optional
// whitespace and sign, and the number of bytes the prefix occupies.
func DetectBase(text []byte, base int) (effective, prefixLen int) {
	s := span{buf: text}
	s.skipSpace()
	s.sign()
	start := s.pos
	effective = detectBase(&s, base)
	return effective, s.pos - start
}
