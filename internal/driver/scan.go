package driver

import (
	"context"
	"errors"
	"fmt"

	"numlit/internal/diag"
	"numlit/internal/lexer"
	"numlit/internal/parsenum"
	"numlit/internal/source"
	"numlit/internal/token"
	"numlit/internal/trace"
)

// Literal is one numeric token of a file together with its parsed value.
// Int is set for IntLit tokens, Number for FloatLit and ImagLit.
type Literal struct {
	Span   source.Span
	Line   uint32
	Kind   token.Kind
	Text   string
	Int    parsenum.Int
	Number parsenum.Number
}

// Value renders the parsed value the way Python's repr would.
func (l Literal) Value() string {
	if l.Kind == token.IntLit {
		return l.Int.String()
	}
	return l.Number.String()
}

// FileResult holds what a scan of one file produced.
type FileResult struct {
	Path     string
	FileID   source.FileID
	Literals []Literal
	Bag      *diag.Bag
	Cached   bool // served from the result cache
}

// Options tune a scan run.
type Options struct {
	MaxDiagnostics int          // per file, 0 means the bag maximum
	Jobs           int          // parallel workers, 0 means GOMAXPROCS
	Cache          *ResultCache // nil disables caching
}

// ScanFile tokenizes the file and parses every numeric token it finds.
// Literals that fail to parse become diagnostics in the result bag.
func ScanFile(ctx context.Context, fs *source.FileSet, id source.FileID, p *parsenum.Parser, opts Options) (FileResult, error) {
	if err := ctx.Err(); err != nil {
		return FileResult{}, err
	}
	file := fs.Get(id)
	tracer := trace.FromContext(ctx)
	_, span := trace.StartSpan(ctx, trace.ScopeFile, "file:"+file.Path)
	defer span.End("")

	res := FileResult{
		Path:   file.Path,
		FileID: id,
		Bag:    diag.NewBag(opts.MaxDiagnostics),
	}

	var key CacheKey
	if opts.Cache != nil {
		key = opts.Cache.Key(file, p.Config())
		hit, err := opts.Cache.Load(key, file, p, &res)
		switch {
		case err != nil:
			trace.Error(tracer, trace.ScopeFile, "cache-load", span.ID(), err)
			res.Bag.Add(diag.Diagnostic{
				Severity: diag.SevWarning,
				Code:     diag.IOCacheError,
				Message:  fmt.Sprintf("ignoring cached result: %v", err),
				Primary:  source.Span{File: id},
			})
		case hit:
			span.WithExtra("cache", "hit")
			return res, nil
		}
	}

	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: res.Bag}})
	for tok := lx.Next(); tok.Kind != token.EOF; tok = lx.Next() {
		if !tok.IsNumber() {
			continue
		}
		lit, err := scanLiteral(file, tok, p)
		if err != nil {
			reportLiteral(res.Bag, tok, err)
			continue
		}
		trace.Point(tracer, trace.ScopeLiteral, "literal", span.ID(), tok.Text+" = "+lit.Value())
		res.Literals = append(res.Literals, lit)
	}
	span.WithExtra("literals", fmt.Sprint(len(res.Literals)))

	if opts.Cache != nil {
		if err := opts.Cache.Store(key, &res); err != nil {
			trace.Error(tracer, trace.ScopeFile, "cache-store", span.ID(), err)
			res.Bag.Add(diag.Diagnostic{
				Severity: diag.SevWarning,
				Code:     diag.IOCacheError,
				Message:  fmt.Sprintf("failed to cache result: %v", err),
				Primary:  source.Span{File: id},
			})
		}
	}
	return res, nil
}

// scanLiteral parses a number token from the tokenizer's call site, so
// failures come back as *parsenum.SyntaxError.
func scanLiteral(file *source.File, tok token.Token, p *parsenum.Parser) (Literal, error) {
	line := file.Position(tok.Span.Start).Line
	loc := &parsenum.Location{Source: file.Path, Line: line}
	lit := Literal{Span: tok.Span, Line: line, Kind: tok.Kind, Text: tok.Text}

	var err error
	if tok.Kind == token.IntLit {
		lit.Int, err = p.Integer([]byte(tok.Text), 0, loc)
	} else {
		lit.Number, err = p.Decimal([]byte(tok.Text), true, false, loc)
	}
	return lit, err
}

// reportLiteral turns a parse failure into a diagnostic on the token.
func reportLiteral(bag *diag.Bag, tok token.Token, err error) {
	msg := err.Error()
	var se *parsenum.SyntaxError
	if errors.As(err, &se) {
		msg = se.Msg
	}
	diag.ReportError(diag.BagReporter{Bag: bag}, literalCode(err), tok.Span, msg)
}

func literalCode(err error) diag.Code {
	switch {
	case errors.Is(err, parsenum.ErrComplex):
		return diag.LexComplexUnsupported
	case errors.Is(err, parsenum.ErrFloat):
		return diag.LexFloatUnsupported
	case errors.Is(err, parsenum.ErrTooLarge):
		return diag.LexNumberTooLarge
	default:
		return diag.LexBadNumber
	}
}
