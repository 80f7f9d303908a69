package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Newline ends a logical line.
	Newline
	// Ident is a name or keyword.
	Ident
	// IntLit is an integer literal: 42, 0x2A, 1_000.
	IntLit
	// FloatLit is a decimal literal with a '.' or an exponent: 1.5, 1e3.
	FloatLit
	// ImagLit is a literal with a j suffix: 2j, 1.5e3J.
	ImagLit
	// StringLit is a quoted string, prefix included.
	StringLit
	// Op is any other single punctuation or operator byte.
	Op
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Newline:   "Newline",
	Ident:     "Ident",
	IntLit:    "IntLit",
	FloatLit:  "FloatLit",
	ImagLit:   "ImagLit",
	StringLit: "StringLit",
	Op:        "Op",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsNumber reports whether the kind is one of the numeric literal kinds.
func (k Kind) IsNumber() bool {
	return k == IntLit || k == FloatLit || k == ImagLit
}
