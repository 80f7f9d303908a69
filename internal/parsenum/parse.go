package parsenum

// Parser binds a Config to the matching Adapter. It holds no mutable state
// and is safe for concurrent use.
type Parser struct {
	cfg     Config
	adapter Adapter
}

// New returns a Parser for cfg.
func New(cfg Config) *Parser {
	return &Parser{cfg: cfg, adapter: Adapter{Reporting: cfg.Reporting}}
}

// Default is a Parser with the zero Config.
var Default = New(Config{})

func (p *Parser) Config() Config   { return p.cfg }
func (p *Parser) Adapter() Adapter { return p.adapter }

// Integer parses text in radix base. loc is nil for runtime conversions,
// which get a *ValueError on failure; the tokenizer passes the token's
// location and gets a *SyntaxError.
func (p *Parser) Integer(text []byte, base int, loc *Location) (Int, error) {
	v, nerr := ScanInteger(text, base, p.cfg)
	if nerr != nil {
		return Int{}, p.adapter.Raise(nerr, loc)
	}
	return v, nil
}

// Decimal parses a decimal, inf/nan or imaginary literal. Errors follow the
// same loc convention as Integer.
func (p *Parser) Decimal(text []byte, allowImag, forceComplex bool, loc *Location) (Number, error) {
	v, nerr := ScanDecimal(text, allowImag, forceComplex, p.cfg)
	if nerr != nil {
		return Number{}, p.adapter.Raise(nerr, loc)
	}
	return v, nil
}
