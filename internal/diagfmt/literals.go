package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"numlit/internal/driver"
	"numlit/internal/source"
	"numlit/internal/token"
)

// maxTextWidth clips long literal text in the table.
const maxTextWidth = 40

// LiteralsPretty prints one aligned row per literal:
//
//	path:line:col  KIND      text  value
func LiteralsPretty(w io.Writer, results []driver.FileResult, fs *source.FileSet, opts PrettyOpts) error {
	type row struct {
		pos, kind, text, value string
		big                    bool
	}
	var rows []row
	posWidth, textWidth := 0, 0
	for _, r := range results {
		for _, lit := range r.Literals {
			f := fs.Get(lit.Span.File)
			lc := f.Position(lit.Span.Start)
			rw := row{
				pos:   fmt.Sprintf("%s:%d:%d", displayPath(f, opts.PathMode), lc.Line, lc.Col),
				kind:  lit.Kind.String(),
				text:  runewidth.Truncate(lit.Text, maxTextWidth, "..."),
				value: lit.Value(),
				big:   lit.Kind == token.IntLit && !lit.Int.IsSmall(),
			}
			posWidth = max(posWidth, runewidth.StringWidth(rw.pos))
			textWidth = max(textWidth, runewidth.StringWidth(rw.text))
			rows = append(rows, rw)
		}
	}

	kindColor := color.New(color.FgCyan)
	bigColor := color.New(color.FgMagenta)
	for _, c := range []*color.Color{kindColor, bigColor} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	for _, rw := range rows {
		value := rw.value
		if rw.big {
			value = bigColor.Sprint(value)
		}
		line := runewidth.FillRight(rw.pos, posWidth) + "  " +
			kindColor.Sprint(runewidth.FillRight(rw.kind, len("FloatLit"))) + "  " +
			runewidth.FillRight(rw.text, textWidth) + "  " + value
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}
