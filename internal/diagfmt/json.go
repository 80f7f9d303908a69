package diagfmt

import (
	"encoding/json"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"numlit/internal/diag"
	"numlit/internal/driver"
	"numlit/internal/source"
	"numlit/internal/token"
)

// LocationJSON представляет местоположение в файле для JSON
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// NoteJSON представляет дополнительную заметку для JSON
type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
}

// LiteralJSON is one parsed literal. Value is the Python repr of the
// parsed value, so big integers and inf/nan survive any JSON reader.
type LiteralJSON struct {
	Kind     string       `json:"kind"`
	Text     string       `json:"text"`
	Value    string       `json:"value"`
	Small    bool         `json:"small,omitempty"`
	Location LocationJSON `json:"location"`
}

// FileJSON groups the literals of one file.
type FileJSON struct {
	Path     string        `json:"path"`
	Cached   bool          `json:"cached,omitempty"`
	Literals []LiteralJSON `json:"literals"`
}

// ScanOutput is the root document of `numlit scan --format json|msgpack`.
type ScanOutput struct {
	Files       []FileJSON       `json:"files"`
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
	Dropped     int              `json:"dropped,omitempty"`
}

// makeLocation создаёт LocationJSON из Span
func makeLocation(span source.Span, fs *source.FileSet, pathMode PathMode, includePositions bool) LocationJSON {
	f := fs.Get(span.File)
	loc := LocationJSON{
		File:      displayPath(f, pathMode),
		StartByte: span.Start,
		EndByte:   span.End,
	}

	if includePositions {
		startPos, endPos := fs.Resolve(span)
		loc.StartLine = startPos.Line
		loc.StartCol = startPos.Col
		loc.EndLine = endPos.Line
		loc.EndCol = endPos.Col
	}
	return loc
}

// BuildDiagnostics формирует JSON-представление диагностик без сериализации.
func BuildDiagnostics(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) []DiagnosticJSON {
	items := bag.Items()
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	diagnostics := make([]DiagnosticJSON, 0, maxItems)
	for _, d := range items[:maxItems] {
		dj := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Location: makeLocation(d.Primary, fs, opts.PathMode, opts.IncludePositions),
		}
		if opts.IncludeNotes && len(d.Notes) > 0 {
			dj.Notes = make([]NoteJSON, len(d.Notes))
			for j, note := range d.Notes {
				dj.Notes[j] = NoteJSON{
					Message:  note.Msg,
					Location: makeLocation(note.Span, fs, opts.PathMode, opts.IncludePositions),
				}
			}
		}
		diagnostics = append(diagnostics, dj)
	}
	return diagnostics
}

// BuildScanOutput собирает литералы и диагностики всего прогона.
func BuildScanOutput(results []driver.FileResult, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) ScanOutput {
	out := ScanOutput{Files: make([]FileJSON, 0, len(results))}
	for _, r := range results {
		fj := FileJSON{
			Path:     displayPath(fs.Get(r.FileID), opts.PathMode),
			Cached:   r.Cached,
			Literals: make([]LiteralJSON, 0, len(r.Literals)),
		}
		for _, lit := range r.Literals {
			fj.Literals = append(fj.Literals, LiteralJSON{
				Kind:     lit.Kind.String(),
				Text:     lit.Text,
				Value:    lit.Value(),
				Small:    lit.Kind == token.IntLit && lit.Int.IsSmall(),
				Location: makeLocation(lit.Span, fs, opts.PathMode, opts.IncludePositions),
			})
		}
		out.Files = append(out.Files, fj)
	}
	out.Diagnostics = BuildDiagnostics(bag, fs, opts)
	out.Count = len(out.Diagnostics)
	out.Dropped = bag.Len() - out.Count + bag.Dropped()
	return out
}

// JSON пишет ScanOutput с отступами.
func JSON(w io.Writer, out ScanOutput) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// Msgpack пишет ScanOutput в msgpack с теми же именами полей, что и JSON.
func Msgpack(w io.Writer, out ScanOutput) error {
	enc := msgpack.NewEncoder(w)
	enc.SetCustomStructTag("json")
	return enc.Encode(out)
}

// DecodeMsgpack читает документ, записанный Msgpack.
func DecodeMsgpack(r io.Reader) (ScanOutput, error) {
	var out ScanOutput
	dec := msgpack.NewDecoder(r)
	dec.SetCustomStructTag("json")
	err := dec.Decode(&out)
	return out, err
}
