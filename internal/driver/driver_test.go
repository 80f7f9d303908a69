package driver

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"numlit/internal/diag"
	"numlit/internal/parsenum"
	"numlit/internal/source"
	"numlit/internal/token"
	"numlit/internal/trace"
)

const sample = `x = 0x10 + 1_000
y = 1.5e3 * 2j  # comment 99
big = 123456789012345678901234567890
bad = 0b102
s = "12"
`

type litView struct {
	Line  uint32
	Kind  token.Kind
	Text  string
	Value string
}

func view(lits []Literal) []litView {
	out := make([]litView, len(lits))
	for i, l := range lits {
		out[i] = litView{Line: l.Line, Kind: l.Kind, Text: l.Text, Value: l.Value()}
	}
	return out
}

type diagView struct {
	Code diag.Code
	Text string
	Msg  string
}

func diagViews(fs *source.FileSet, bag *diag.Bag) []diagView {
	var out []diagView
	for _, d := range bag.Items() {
		f := fs.Get(d.Primary.File)
		out = append(out, diagView{
			Code: d.Code,
			Text: string(f.Content[d.Primary.Start:d.Primary.End]),
			Msg:  d.Message,
		})
	}
	return out
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestScanFile(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("sample.py", []byte(sample))

	res, err := ScanFile(context.Background(), fs, id, parsenum.Default, Options{})
	if err != nil {
		t.Fatal(err)
	}

	want := []litView{
		{1, token.IntLit, "0x10", "16"},
		{1, token.IntLit, "1_000", "1000"},
		{2, token.FloatLit, "1.5e3", "1500.0"},
		{2, token.ImagLit, "2j", "2j"},
		{3, token.IntLit, "123456789012345678901234567890", "123456789012345678901234567890"},
	}
	if diff := cmp.Diff(want, view(res.Literals)); diff != "" {
		t.Fatalf("literals mismatch (-want +got):\n%s", diff)
	}
	if res.Literals[4].Int.IsSmall() {
		t.Fatal("30-digit literal must be big")
	}

	wantDiags := []diagView{
		{diag.LexBadNumber, "0b102", "invalid syntax for integer with base 2"},
	}
	if diff := cmp.Diff(wantDiags, diagViews(fs, res.Bag)); diff != "" {
		t.Fatalf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestScanFileConfigCodes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("cfg.py", []byte("a = 1.5\nb = 3j\nc = 7\n"))

	cases := []struct {
		name string
		cfg  parsenum.Config
		want []diagView
	}{
		{
			name: "no-complex",
			cfg:  parsenum.Config{DisableComplex: true},
			want: []diagView{{diag.LexComplexUnsupported, "3j", "complex values not supported"}},
		},
		{
			name: "no-float",
			cfg:  parsenum.Config{DisableFloat: true},
			want: []diagView{
				{diag.LexFloatUnsupported, "1.5", "decimal numbers not supported"},
				{diag.LexFloatUnsupported, "3j", "decimal numbers not supported"},
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := ScanFile(context.Background(), fs, id, parsenum.New(tc.cfg), Options{})
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, diagViews(fs, res.Bag)); diff != "" {
				t.Fatalf("diagnostics mismatch (-want +got):\n%s", diff)
			}
			if got := res.Literals[len(res.Literals)-1].Value(); got != "7" {
				t.Fatalf("last literal = %s, want 7", got)
			}
		})
	}
}

func TestLiteralCode(t *testing.T) {
	loc := &parsenum.Location{Source: "f.py", Line: 1}
	_, err := parsenum.Default.Integer([]byte("12x"), 0, loc)
	var se *parsenum.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
	if got := literalCode(err); got != diag.LexBadNumber {
		t.Fatalf("literalCode = %v", got)
	}
}

func TestLiteralCodeSentinels(t *testing.T) {
	loc := &parsenum.Location{Source: "f.py", Line: 2}
	adapter := parsenum.Default.Adapter()
	cases := []struct {
		sentinel error
		code     diag.Code
		msg      string
	}{
		{parsenum.ErrTooLarge, diag.LexNumberTooLarge, "integer too large"},
		{parsenum.ErrComplex, diag.LexComplexUnsupported, "complex values not supported"},
		{parsenum.ErrFloat, diag.LexFloatUnsupported, "decimal numbers not supported"},
	}
	for _, tc := range cases {
		t.Run(tc.code.ID(), func(t *testing.T) {
			err := adapter.Raise(&parsenum.NumError{Func: parsenum.FuncInteger, Num: "1", Base: 10, Err: tc.sentinel}, loc)
			if got := literalCode(err); got != tc.code {
				t.Fatalf("literalCode = %v, want %v", got, tc.code)
			}
			bag := diag.NewBag(4)
			reportLiteral(bag, token.Token{Kind: token.IntLit, Span: source.Span{Start: 3, End: 4}, Text: "1"}, err)
			want := []diag.Diagnostic{{
				Severity: diag.SevError,
				Code:     tc.code,
				Message:  tc.msg,
				Primary:  source.Span{Start: 3, End: 4},
			}}
			if diff := cmp.Diff(want, bag.Items()); diff != "" {
				t.Fatalf("diagnostics mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScanFilesParallel(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"a.py", "b.py", "c.py", "d.py"} {
		paths = append(paths, writeFile(t, dir, name, sample))
	}
	paths = append(paths, filepath.Join(dir, "missing.py"))

	var traceBuf bytes.Buffer
	tracer := trace.NewStreamTracer(&traceBuf, trace.LevelDetail, trace.FormatText)
	ctx := trace.WithTracer(context.Background(), tracer)

	fs, results, err := ScanFiles(ctx, paths, parsenum.Default, Options{Jobs: 3})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(paths) {
		t.Fatalf("got %d results, want %d", len(results), len(paths))
	}
	for i, r := range results[:4] {
		if r.Path != filepath.Clean(paths[i]) && !strings.HasSuffix(r.Path, filepath.Base(paths[i])) {
			t.Errorf("result %d path %q, want %q", i, r.Path, paths[i])
		}
		if len(r.Literals) != 5 || r.Bag.Len() != 1 {
			t.Errorf("result %d: %d literals, %d diagnostics", i, len(r.Literals), r.Bag.Len())
		}
	}

	missing := results[4]
	if missing.Bag.Len() != 1 || missing.Bag.Items()[0].Code != diag.IOLoadFileError {
		t.Fatalf("missing file diagnostics: %+v", missing.Bag.Items())
	}

	merged := MergeBags(results)
	if merged.Len() != 5 || !merged.HasErrors() {
		t.Fatalf("merged bag has %d items", merged.Len())
	}
	if fs.Len() != len(paths) {
		t.Fatalf("file set has %d files", fs.Len())
	}

	out := traceBuf.String()
	if !strings.Contains(out, "→ scan") || !strings.Contains(out, "file:") || !strings.Contains(out, "! load:") {
		t.Fatalf("unexpected trace output:\n%s", out)
	}
}

func TestScanFilesCanceled(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.py", sample)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := ScanFiles(ctx, []string{path}, parsenum.Default, Options{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestResultCache(t *testing.T) {
	cache, err := OpenResultCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	fs := source.NewFileSet()
	id := fs.AddVirtual("cached.py", []byte(sample+"z = 1e400 + 0.1j\n"))
	opts := Options{Cache: cache}

	first, err := ScanFile(context.Background(), fs, id, parsenum.Default, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.Cached {
		t.Fatal("first scan must miss")
	}

	second, err := ScanFile(context.Background(), fs, id, parsenum.Default, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.Cached {
		t.Fatal("second scan must hit")
	}
	if diff := cmp.Diff(view(first.Literals), view(second.Literals)); diff != "" {
		t.Fatalf("cached literals differ (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(diagViews(fs, first.Bag), diagViews(fs, second.Bag)); diff != "" {
		t.Fatalf("cached diagnostics differ (-first +second):\n%s", diff)
	}

	// Другая конфигурация даёт другой ключ.
	terse := parsenum.New(parsenum.Config{Reporting: parsenum.ReportTerse})
	third, err := ScanFile(context.Background(), fs, id, terse, opts)
	if err != nil {
		t.Fatal(err)
	}
	if third.Cached {
		t.Fatal("changed configuration must miss")
	}

	if err := cache.Clear(); err != nil {
		t.Fatal(err)
	}
	fourth, err := ScanFile(context.Background(), fs, id, parsenum.Default, opts)
	if err != nil {
		t.Fatal(err)
	}
	if fourth.Cached {
		t.Fatal("cleared cache must miss")
	}
}

func TestExpandPaths(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "pkg/a.py", "1")
	b := writeFile(t, dir, "pkg/sub/b.py", "2")
	writeFile(t, dir, "pkg/notes.txt", "3")
	c := writeFile(t, dir, "c.py", "4")

	got, err := ExpandPaths([]string{filepath.Join(dir, "pkg"), c, a})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{a, b, c}, got); diff != "" {
		t.Fatalf("directory expansion (-want +got):\n%s", diff)
	}

	got, err = ExpandPaths([]string{filepath.Join(dir, "**", "*.py")})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{c, a, b}, got); diff != "" {
		t.Fatalf("glob expansion (-want +got):\n%s", diff)
	}

	if _, err := ExpandPaths([]string{filepath.Join(dir, "*.rs")}); err == nil {
		t.Fatal("expected error for empty match")
	}
}
