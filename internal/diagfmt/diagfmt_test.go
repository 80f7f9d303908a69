package diagfmt

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"numlit/internal/diag"
	"numlit/internal/driver"
	"numlit/internal/parsenum"
	"numlit/internal/source"
)

func scanVirtual(t *testing.T, name, content string) (*source.FileSet, []driver.FileResult, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, []byte(content))
	res, err := driver.ScanFile(context.Background(), fs, id, parsenum.Default, driver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	results := []driver.FileResult{res}
	return fs, results, driver.MergeBags(results)
}

func TestPretty(t *testing.T) {
	fs, _, bag := scanVirtual(t, "test.py", "x = 1\ny = 0b12\n")

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"test.py:2:5: ERROR LEX1004: invalid syntax for integer with base 2",
		"2 | y = 0b12",
		"  |     ^~~~",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("pretty output mismatch (-want +got):\n%s", diff)
	}
}

func TestPrettyContextAndLimit(t *testing.T) {
	fs, _, bag := scanVirtual(t, "ctx.py", "a = 1\nb = 2x\nc = 3y\nd = 4\n")
	if bag.Len() != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", bag.Len())
	}

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{Context: 1, Max: 1}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"1 | a = 1", "2 | b = 2x", "3 | c = 3y", "... 1 more diagnostic(s) not shown"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "ctx.py:3:") {
		t.Errorf("second diagnostic must be cut by Max:\n%s", out)
	}
}

func TestCaretLayoutWide(t *testing.T) {
	pad, width := caretLayout("s = '日本' + 0b2", 16, 3)
	if pad != 13 || width != 3 {
		t.Fatalf("caretLayout = (%d, %d), want (13, 3)", pad, width)
	}
	pad, width = caretLayout("\tx = 1_", 6, 2)
	if pad != 8 || width != 2 {
		t.Fatalf("caretLayout with tab = (%d, %d), want (8, 2)", pad, width)
	}
	if got := expandTabs("ab\tc"); got != "ab  c" {
		t.Fatalf("expandTabs = %q", got)
	}
}

func TestLiteralsPretty(t *testing.T) {
	fs, results, _ := scanVirtual(t, "lit.py", "a = 0x1F\nb = 1e-3 + 2j\n")

	var buf bytes.Buffer
	if err := LiteralsPretty(&buf, results, fs, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"lit.py:1:5   IntLit    0x1F  31",
		"lit.py:2:5   FloatLit  1e-3  0.001",
		"lit.py:2:12  ImagLit   2j    2j",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("literal table mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONAndMsgpack(t *testing.T) {
	fs, results, bag := scanVirtual(t, "doc.py", "n = 99999999999999999999\nf = 1e999\nbad = 0o9\n")
	out := BuildScanOutput(results, bag, fs, JSONOpts{IncludePositions: true})

	var buf bytes.Buffer
	if err := JSON(&buf, out); err != nil {
		t.Fatal(err)
	}
	var decoded ScanOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	lits := decoded.Files[0].Literals
	if len(lits) != 2 {
		t.Fatalf("expected 2 literals, got %+v", lits)
	}
	if lits[0].Value != "99999999999999999999" || lits[0].Small {
		t.Errorf("big literal = %+v", lits[0])
	}
	if lits[1].Value != "inf" || lits[1].Location.StartLine != 2 {
		t.Errorf("float literal = %+v", lits[1])
	}
	if decoded.Count != 1 || decoded.Diagnostics[0].Code != "LEX1004" {
		t.Errorf("diagnostics = %+v", decoded.Diagnostics)
	}

	buf.Reset()
	if err := Msgpack(&buf, out); err != nil {
		t.Fatal(err)
	}
	back, err := DecodeMsgpack(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(out, back, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("msgpack round trip (-want +got):\n%s", diff)
	}
}

func TestParsePathMode(t *testing.T) {
	for in, want := range map[string]PathMode{"": PathModeAuto, "abs": PathModeAbsolute, "relative": PathModeRelative, "basename": PathModeBasename} {
		got, err := ParsePathMode(in)
		if err != nil || got != want {
			t.Errorf("ParsePathMode(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParsePathMode("weird"); err == nil {
		t.Error("expected error")
	}
}
