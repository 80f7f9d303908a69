package source

import "fmt"

type (
	// FileID indexes a file in its FileSet.
	FileID uint32
	// FileFlags records how a file's content was obtained.
	FileFlags uint8
)

const (
	// FileVirtual marks content that did not come from disk: tests, fuzz
	// inputs and the empty stand-in for an unreadable path.
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File is one loaded source. Content is normalised (no BOM, LF line ends)
// and never modified after loading; Hash is the sha256 of Content and keys
// the result cache.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // offsets of '\n'
	Hash    [32]byte
	Flags   FileFlags
}

// Text returns the source text covered by sp, clipped to the content.
func (f *File) Text(sp Span) string {
	n := uint32(len(f.Content)) //nolint:gosec // G115: content size is checked on load.
	start, end := min(sp.Start, n), min(sp.End, n)
	if start >= end {
		return ""
	}
	return string(f.Content[start:end])
}

// LineCol is a 1-based position; Col counts bytes, not runes.
type LineCol struct {
	Line uint32
	Col  uint32
}

// Span is a half-open byte range [Start, End) in one file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

func (s Span) Len() uint32 { return s.End - s.Start }

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}
