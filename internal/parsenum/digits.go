package parsenum

// noDigit is larger than any supported radix.
const noDigit = 36

func digitValue(ch byte) int {
	switch {
	case '0' <= ch && ch <= '9':
		return int(ch - '0')
	case 'a' <= lower(ch) && lower(ch) <= 'z':
		return int(lower(ch)-'a') + 10
	default:
		return noDigit
	}
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

// lower folds ASCII letters to lower case; other bytes may change but never
// into a letter.
func lower(ch byte) byte { return ch | 0x20 }

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
