package parsenum

// span is a read-only view of literal text with a cursor that only moves
// forward and never passes the end.
type span struct {
	buf []byte
	pos int
}

func (s *span) eof() bool { return s.pos >= len(s.buf) }

func (s *span) peek() byte {
	if s.eof() {
		return 0
	}
	return s.buf[s.pos]
}

func (s *span) at(k int) byte {
	if s.pos+k >= len(s.buf) {
		return 0
	}
	return s.buf[s.pos+k]
}

func (s *span) remaining() int { return len(s.buf) - s.pos }

func (s *span) advance(n int) {
	s.pos = min(s.pos+n, len(s.buf))
}

func (s *span) skipSpace() {
	for !s.eof() && isSpace(s.buf[s.pos]) {
		s.pos++
	}
}

// sign consumes an optional '+' or '-' and reports whether it was '-'.
func (s *span) sign() bool {
	switch s.peek() {
	case '+':
		s.pos++
	case '-':
		s.pos++
		return true
	}
	return false
}

// matchFold consumes word if the text continues with it, ignoring ASCII case.
// word must be lower case.
func (s *span) matchFold(word string) bool {
	if s.remaining() < len(word) {
		return false
	}
	for i := range len(word) {
		if lower(s.buf[s.pos+i]) != word[i] {
			return false
		}
	}
	s.pos += len(word)
	return true
}
