package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"numlit/internal/diag"
	"numlit/internal/source"
)

const tabWidth = 4

type palette struct {
	err, warn, info *color.Color
	code, path      *color.Color
	gutter, caret   *color.Color
	note            *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.Bold),
		path:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
		note:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.path, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes с аналогичным форматом.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	pal := newPalette(opts.Color)
	items := bag.Items()
	shown := len(items)
	if opts.Max > 0 && opts.Max < shown {
		shown = opts.Max
	}

	for i := range shown {
		d := items[i]
		f := fs.Get(d.Primary.File)
		start, _ := fs.Resolve(d.Primary)

		if _, err := fmt.Fprintf(w, "%s: %s %s: %s\n",
			pal.path.Sprintf("%s:%d:%d", displayPath(f, opts.PathMode), start.Line, start.Col),
			pal.severity(d.Severity).Sprint(d.Severity.String()),
			pal.code.Sprint(d.Code.ID()),
			d.Message,
		); err != nil {
			return err
		}
		if err := writeSnippet(w, f, d.Primary, opts.Context, pal); err != nil {
			return err
		}

		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			nf := fs.Get(n.Span.File)
			pos := nf.Position(n.Span.Start)
			if _, err := fmt.Fprintf(w, "  %s %s:%d:%d: %s\n",
				pal.note.Sprint("note:"), displayPath(nf, opts.PathMode), pos.Line, pos.Col, n.Msg); err != nil {
				return err
			}
		}
	}

	hidden := len(items) - shown + bag.Dropped()
	if hidden > 0 {
		if _, err := fmt.Fprintf(w, "... %d more diagnostic(s) not shown\n", hidden); err != nil {
			return err
		}
	}
	return nil
}

// writeSnippet печатает строку span'а с контекстом и подчёркиванием.
func writeSnippet(w io.Writer, f *source.File, sp source.Span, context int8, pal palette) error {
	if len(f.Content) == 0 {
		return nil
	}
	start := f.Position(sp.Start)
	ctx := uint32(max(context, 0))
	first := uint32(1)
	if start.Line > ctx {
		first = start.Line - ctx
	}
	last := start.Line + ctx
	gutterWidth := len(fmt.Sprint(last))

	for ln := first; ln <= last; ln++ {
		if ln != start.Line && ln > uint32(len(f.LineIdx))+1 { //nolint:gosec // G115: len(LineIdx) < len(Content) < 2^32.
			break
		}
		text := expandTabs(f.Line(ln))
		if _, err := fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", gutterWidth, ln), text); err != nil {
			return err
		}
		if ln != start.Line {
			continue
		}
		pad, width := caretLayout(f.Line(ln), start.Col, sp.Len())
		marker := "^" + strings.Repeat("~", max(width-1, 0))
		if _, err := fmt.Fprintf(w, "%s %s%s\n",
			pal.gutter.Sprintf("%*s |", gutterWidth, ""),
			strings.Repeat(" ", pad),
			pal.caret.Sprint(marker)); err != nil {
			return err
		}
	}
	return nil
}

// caretLayout returns the display column of col (1-based, bytes) within line
// and the display width of the n bytes starting there, clipped to the line.
func caretLayout(line string, col, n uint32) (pad, width int) {
	off := min(int(col)-1, len(line))
	off = max(off, 0)
	end := min(off+int(n), len(line))
	pad = runewidth.StringWidth(expandTabs(line[:off]))
	width = runewidth.StringWidth(expandTabs(line[:end])) - pad
	return pad, max(width, 1)
}

func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var sb strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		sb.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return sb.String()
}
