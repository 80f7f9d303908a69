package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.py", []byte("hello world"), 0)
	id2 := fs.Add("./test.py", []byte("hello universe"), 0)
	if id1 != 0 || id2 != 1 {
		t.Fatalf("unexpected ids %d, %d", id1, id2)
	}

	// Индекс указывает на последнюю версию файла
	latest, ok := fs.GetLatest("test.py")
	if !ok || latest != id2 {
		t.Errorf("GetLatest = %d, %v; want %d", latest, ok, id2)
	}
	if string(fs.Get(id1).Content) != "hello world" {
		t.Errorf("old version lost")
	}
	if fs.Len() != 2 {
		t.Errorf("Len = %d", fs.Len())
	}
}

func TestPosition(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("a.py", []byte("ab\ncd\n\nx")))

	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{2, LineCol{1, 3}}, // сам '\n' принадлежит первой строке
		{3, LineCol{2, 1}},
		{4, LineCol{2, 2}},
		{6, LineCol{3, 1}},
		{7, LineCol{4, 1}},
		{8, LineCol{4, 2}},
	}
	for _, tc := range cases {
		if got := f.Position(tc.off); got != tc.want {
			t.Errorf("Position(%d) = %+v, want %+v", tc.off, got, tc.want)
		}
	}

	start, end := fs.Resolve(Span{File: f.ID, Start: 3, End: 5})
	if start != (LineCol{2, 1}) || end != (LineCol{2, 3}) {
		t.Errorf("Resolve = %+v %+v", start, end)
	}
}

func TestLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("a.py", []byte("first\nsecond\n\nlast")))
	for n, want := range map[uint32]string{0: "", 1: "first", 2: "second", 3: "", 4: "last", 5: ""} {
		if got := f.Line(n); got != want {
			t.Errorf("Line(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.py")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFx = 1\r\ny = 2\r\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	f := fs.Get(id)
	if string(f.Content) != "x = 1\ny = 2\n" {
		t.Errorf("content = %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("flags = %b", f.Flags)
	}
	if _, err := fs.Load(filepath.Join(dir, "missing.py")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestFileText(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("t.py", []byte("n = 0x1F\n")))
	if got := f.Text(Span{File: f.ID, Start: 4, End: 8}); got != "0x1F" {
		t.Errorf("Text = %q", got)
	}
	if got := f.Text(Span{File: f.ID, Start: 6, End: 100}); got != "1F\n" {
		t.Errorf("clipped Text = %q", got)
	}
	if got := f.Text(Span{File: f.ID, Start: 50, End: 60}); got != "" {
		t.Errorf("out of range Text = %q", got)
	}
}
