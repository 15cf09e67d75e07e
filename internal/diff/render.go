package diff

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// lineWidth is the total column budget of a preview block, shared between
// the number gutter and the content area.
const lineWidth = 80

// markerGutter is the fixed gutter width of single-line marker rows.
const markerGutter = 4

// Box drawing characters making up the preview frame.
const (
	ruleHeavy = "═"
	ruleLight = "─"
	teeHeavy  = "╤"
	crossBar  = "┼"
	barVert   = "│"
)

// palette defines consistent colors for the preview.
// Red: lines leaving the repository copy
// Green: lines arriving from the live system
// Cyan: modified markers for content that cannot be diffed
// Faint: context lines and the line number gutter
type palette struct {
	context  *color.Color
	remove   *color.Color
	removeHi *color.Color
	add      *color.Color
	addHi    *color.Color
	modified *color.Color
	number   *color.Color
}

// newPalette creates the standard color palette for previews.
// The emphasized styles mark the sub-line ranges that actually changed.
func newPalette() *palette {
	return &palette{
		context:  color.New(color.Faint),
		remove:   color.New(color.FgRed),
		removeHi: color.New(color.FgHiRed, color.Italic),
		add:      color.New(color.FgGreen),
		addHi:    color.New(color.FgHiGreen, color.Italic),
		modified: color.New(color.FgCyan),
		number:   color.New(color.Faint),
	}
}

// Renderer writes file change previews to a terminal-oriented writer.
// Colors are automatically disabled when the writer is not a TTY via
// fatih/color's built-in detection.
type Renderer struct {
	out    io.Writer
	colors *palette
}

// NewRenderer creates a Renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		out:    out,
		colors: newPalette(),
	}
}

// Render writes the grouped diff of d: a framed header naming the file,
// then each change group, separated by light rules where context was
// elided between them.
func (r *Renderer) Render(d *FileDiff) {
	width := gutterWidth(d.OldLines, d.NewLines)
	left := width*2 + 3

	r.rule(left, ruleHeavy, teeHeavy)
	fmt.Fprintf(r.out, "%*s%s %s\n", left, "", barVert, d.Path)
	r.rule(left, ruleLight, crossBar)

	for idx, group := range d.Groups {
		// Separate groups where unchanged lines were elided
		if idx > 0 {
			r.rule(left, ruleLight, crossBar)
		}
		for _, change := range group {
			r.renderChange(width, change)
		}
	}
}

// RenderModified writes a single ~ marker row for a file whose content
// changed but cannot be previewed line by line.
func (r *Renderer) RenderModified(path string) {
	r.marker(r.colors.modified.Sprint("~"), path)
}

// RenderAdded writes a single + marker row for a file the repository does
// not contain yet.
func (r *Renderer) RenderAdded(path string) {
	r.marker(r.colors.add.Sprint("+"), path)
}

// rule writes one horizontal rule with a junction where the gutter ends.
func (r *Renderer) rule(left int, char, junction string) {
	fmt.Fprintf(r.out, "%s%s%s\n",
		strings.Repeat(char, left),
		junction,
		strings.Repeat(char, lineWidth-left-1))
}

// marker writes the fixed-gutter frame used for single-line markers.
func (r *Renderer) marker(sign, path string) {
	r.rule(markerGutter, ruleHeavy, teeHeavy)
	fmt.Fprintf(r.out, "  %s %s %s\n", sign, barVert, path)
}

// renderChange writes one diff row: both line numbers, the change sign,
// and the line content with emphasis spans highlighted.
func (r *Renderer) renderChange(width int, c Change) {
	var line, emph *color.Color
	var sign string
	switch c.Tag {
	case Delete:
		line, emph, sign = r.colors.remove, r.colors.removeHi, "-"
	case Insert:
		line, emph, sign = r.colors.add, r.colors.addHi, "+"
	default:
		line, emph, sign = r.colors.context, r.colors.context, " "
	}

	var b strings.Builder
	b.WriteString(r.colors.number.Sprintf("%-*s %-*s ",
		width, indexLabel(c.OldIndex),
		width, indexLabel(c.NewIndex)))
	b.WriteString(line.Sprint(sign))
	b.WriteString(barVert)
	b.WriteString(" ")
	b.WriteString(renderSpans(line, emph, c.Text, c.Spans))
	fmt.Fprintln(r.out, b.String())
}

// indexLabel formats a zero-based line index, blank when the line does
// not exist on that side of the diff.
func indexLabel(idx int) string {
	if idx < 0 {
		return ""
	}
	return strconv.Itoa(idx)
}

// renderSpans styles text with emph applied to the span ranges and the
// line style everywhere else.
func renderSpans(line, emph *color.Color, text string, spans []Span) string {
	if len(spans) == 0 {
		return line.Sprint(text)
	}

	var b strings.Builder
	pos := 0
	for _, span := range spans {
		if span.Start > pos {
			b.WriteString(line.Sprint(text[pos:span.Start]))
		}
		b.WriteString(emph.Sprint(text[span.Start:span.End]))
		pos = span.End
	}
	if pos < len(text) {
		b.WriteString(line.Sprint(text[pos:]))
	}
	return b.String()
}

// gutterWidth returns the digit width reserved for one line number
// column, derived from the larger of the two line counts.
func gutterWidth(oldLines, newLines int) int {
	lines := max(oldLines, newLines)
	if lines <= 1 {
		return 0
	}
	return int(math.Ceil(math.Log10(float64(lines))))
}
