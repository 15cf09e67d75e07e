// Package diff computes and renders grouped line diffs for pull previews.
package diff

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is the number of unchanged lines kept around each change
// group. Changes separated by more than twice this many lines are split
// into separate groups.
const contextLines = 2

// Tag classifies one line of a FileDiff.
type Tag int

const (
	// Equal lines appear in both texts and provide context
	Equal Tag = iota
	// Delete lines appear only in the old text
	Delete
	// Insert lines appear only in the new text
	Insert
)

// Span marks a half-open byte range [Start, End) within a line's text
// whose content has no counterpart on the other side of the diff.
type Span struct {
	Start int
	End   int
}

// Change is one rendered line of a diff. OldIndex and NewIndex are
// zero-based and -1 when the line does not exist on that side.
type Change struct {
	Tag      Tag
	OldIndex int
	NewIndex int
	Text     string
	Spans    []Span
}

// FileDiff is the grouped line diff of one file.
type FileDiff struct {
	Path     string
	OldLines int
	NewLines int
	Groups   [][]Change
}

// Empty reports whether the diff contains no changes at all. Texts that
// split into identical line sequences produce an empty diff.
func (d *FileDiff) Empty() bool {
	return len(d.Groups) == 0
}

// Compute aligns oldText and newText line by line and returns the change
// groups, each padded with up to two lines of context. Replaced lines
// additionally carry emphasis spans from a character-level pass, so the
// renderer can highlight what changed inside a line.
func Compute(path, oldText, newText string) *FileDiff {
	oldLines := splitLines(oldText)
	newLines := splitLines(newText)

	matcher := difflib.NewMatcher(oldLines, newLines)

	var groups [][]Change
	for _, group := range matcher.GetGroupedOpCodes(contextLines) {
		var changes []Change
		for _, op := range group {
			switch op.Tag {
			case 'e':
				for k := 0; k < op.I2-op.I1; k++ {
					changes = append(changes, Change{
						Tag:      Equal,
						OldIndex: op.I1 + k,
						NewIndex: op.J1 + k,
						Text:     oldLines[op.I1+k],
					})
				}
			case 'd':
				for i := op.I1; i < op.I2; i++ {
					changes = append(changes, Change{
						Tag:      Delete,
						OldIndex: i,
						NewIndex: -1,
						Text:     oldLines[i],
					})
				}
			case 'i':
				for j := op.J1; j < op.J2; j++ {
					changes = append(changes, Change{
						Tag:      Insert,
						OldIndex: -1,
						NewIndex: j,
						Text:     newLines[j],
					})
				}
			case 'r':
				changes = append(changes, replaceChanges(op, oldLines, newLines)...)
			}
		}
		groups = append(groups, changes)
	}

	return &FileDiff{
		Path:     path,
		OldLines: len(oldLines),
		NewLines: len(newLines),
		Groups:   groups,
	}
}

// splitLines splits text into lines without their newline terminators.
// A trailing final newline does not produce an extra empty line, so texts
// differing only in that byte compare as equal line sequences.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// replaceChanges expands one replace opcode into delete and insert lines
// with emphasis spans. The old and new blocks are compared character by
// character; every run present on only one side is recorded as a span on
// the lines it falls into.
func replaceChanges(op difflib.OpCode, oldLines, newLines []string) []Change {
	oldBlock := oldLines[op.I1:op.I2]
	newBlock := newLines[op.J1:op.J2]

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(strings.Join(oldBlock, "\n"), strings.Join(newBlock, "\n"), false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	oldSpans := make([][]Span, len(oldBlock))
	newSpans := make([][]Span, len(newBlock))

	oldPos, newPos := 0, 0
	for _, d := range diffs {
		n := len(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			oldPos += n
			newPos += n
		case diffmatchpatch.DiffDelete:
			markSpan(oldSpans, oldBlock, oldPos, oldPos+n)
			oldPos += n
		case diffmatchpatch.DiffInsert:
			markSpan(newSpans, newBlock, newPos, newPos+n)
			newPos += n
		}
	}

	changes := make([]Change, 0, len(oldBlock)+len(newBlock))
	for i, line := range oldBlock {
		changes = append(changes, Change{
			Tag:      Delete,
			OldIndex: op.I1 + i,
			NewIndex: -1,
			Text:     line,
			Spans:    oldSpans[i],
		})
	}
	for j, line := range newBlock {
		changes = append(changes, Change{
			Tag:      Insert,
			OldIndex: -1,
			NewIndex: op.J1 + j,
			Text:     line,
			Spans:    newSpans[j],
		})
	}
	return changes
}

// markSpan splits the block byte range [start, end) at line boundaries and
// records the pieces as per-line spans. The separator newlines between
// block lines carry no emphasis of their own.
func markSpan(spans [][]Span, lines []string, start, end int) {
	offset := 0
	for i, line := range lines {
		lineStart := offset
		lineEnd := offset + len(line)
		s := max(start, lineStart)
		e := min(end, lineEnd)
		if s < e {
			spans[i] = append(spans[i], Span{Start: s - lineStart, End: e - lineStart})
		}
		offset = lineEnd + 1
	}
}
