package fuzztests

import (
	"context"
	"testing"

	"numlit/internal/diag"
	"numlit/internal/driver"
	"numlit/internal/lexer"
	"numlit/internal/parsenum"
	"numlit/internal/source"
	"numlit/internal/testkit"
	"numlit/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.py", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(64)
		reporter := diag.BagReporter{Bag: bag}
		lx := lexer.New(file, lexer.Options{Reporter: reporter})
		var toks []token.Token
		for {
			tok := lx.Next()
			if tok.Kind == token.EOF {
				break
			}
			toks = append(toks, tok)
			if len(toks) > len(input) {
				t.Fatalf("lexer does not advance: %d tokens for %d bytes", len(toks), len(input))
			}
		}
		if err := testkit.CheckTokenInvariants(toks, file); err != nil {
			t.Fatal(err)
		}
	})
}

func FuzzScanFile(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		id := fs.AddVirtual("fuzz.py", input)
		res, err := driver.ScanFile(context.Background(), fs, id, parsenum.Default, driver.Options{MaxDiagnostics: 64})
		if err != nil {
			t.Fatal(err)
		}
		for _, lit := range res.Literals {
			if !lit.Kind.IsNumber() {
				t.Fatalf("non-number literal %v %q", lit.Kind, lit.Text)
			}
			if lit.Value() == "" {
				t.Fatalf("literal %q has empty value", lit.Text)
			}
		}
	})
}
