package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"checkattr/internal/diag"
	"checkattr/internal/source"
)

type palette struct {
	err, warn, info, note, code, gutter, path *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		note:   color.New(color.FgCyan),
		code:   color.New(color.Bold),
		gutter: color.New(color.FgBlue, color.Bold),
		path:   color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.code, p.gutter, p.path} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	}
	return p.info
}

// Pretty renders diagnostics for humans, in bag order:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// followed by the offending source line with the span underlined, the other
// locations of a multi-span diagnostic, and notes when enabled.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	pal := newPalette(opts.Color)
	items := bag.Items()
	n := limit(len(items), opts.Max)
	for i := 0; i < n; i++ {
		if err := prettyOne(w, &items[i], fs, opts, pal); err != nil {
			return err
		}
	}
	if n < len(items) {
		if _, err := fmt.Fprintf(w, "... %d more diagnostics not shown\n", len(items)-n); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) error {
	var b strings.Builder

	b.WriteString(pal.path.Sprint(location(fs, d.Primary, opts.PathMode)))
	b.WriteString(": ")
	b.WriteString(pal.severity(d.Severity).Sprint(d.Severity.String()))
	if id := d.Code.ID(); id != "" {
		b.WriteString(" ")
		b.WriteString(pal.code.Sprint(id))
	}
	b.WriteString(": ")
	b.WriteString(d.Message)
	b.WriteString("\n")

	sevColor := pal.severity(d.Severity)
	for _, sp := range d.Locations() {
		snippet(&b, fs, sp, '^', sevColor, pal, "")
	}
	if opts.ShowNotes {
		for _, note := range d.Notes {
			fmt.Fprintf(&b, "  %s %s: %s\n", pal.note.Sprint("note:"), location(fs, note.Span, opts.PathMode), note.Msg)
			snippet(&b, fs, note.Span, '-', pal.note, pal, "")
		}
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func location(fs *source.FileSet, sp source.Span, mode PathMode) string {
	f := fs.Get(sp.File)
	if f == nil {
		return "<unknown>"
	}
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", formatPath(f, fs, mode), start.Line, start.Col)
}

// snippet writes the first line of sp with a marker underneath. Spans that
// continue past the line are underlined to its end.
func snippet(b *strings.Builder, fs *source.FileSet, sp source.Span, mark byte, markColor *color.Color, pal palette, label string) {
	f := fs.Get(sp.File)
	if f == nil || len(f.Content) == 0 {
		return
	}
	start, end := fs.Resolve(sp)
	line := strings.TrimSuffix(f.GetLine(start.Line), "\r")
	if line == "" && start.Line > 1 {
		return
	}

	lineNo := strconv.FormatUint(uint64(start.Line), 10)
	pad := strings.Repeat(" ", len(lineNo))

	col := int(start.Col) - 1
	if col > len(line) {
		col = len(line)
	}
	endCol := len(line)
	if end.Line == start.Line {
		endCol = int(end.Col) - 1
		if endCol > len(line) {
			endCol = len(line)
		}
	}
	if endCol < col {
		endCol = col
	}

	lead := runewidth.StringWidth(expandTabs(line[:col]))
	width := runewidth.StringWidth(expandTabs(line[col:endCol]))
	if width == 0 {
		width = 1
	}

	underline := string(mark) + strings.Repeat(markTail(mark), width-1)
	fmt.Fprintf(b, "%s %s\n", pad, pal.gutter.Sprint("|"))
	fmt.Fprintf(b, "%s %s %s\n", pal.gutter.Sprint(lineNo), pal.gutter.Sprint("|"), expandTabs(line))
	fmt.Fprintf(b, "%s %s %s%s", pad, pal.gutter.Sprint("|"), strings.Repeat(" ", lead), markColor.Sprint(underline))
	if label != "" {
		b.WriteString(" ")
		b.WriteString(markColor.Sprint(label))
	}
	b.WriteString("\n")
}

func markTail(mark byte) string {
	if mark == '^' {
		return "~"
	}
	return string(mark)
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
