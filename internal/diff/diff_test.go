package diff

import (
	"reflect"
	"testing"
)

func TestComputeIdenticalTexts(t *testing.T) {
	tests := []struct {
		name string
		old  string
		new  string
	}{
		{name: "byte identical", old: "a\nb\nc\n", new: "a\nb\nc\n"},
		{name: "both empty", old: "", new: ""},
		{name: "trailing newline only", old: "a\nb", new: "a\nb\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Compute("file", tt.old, tt.new)
			if !d.Empty() {
				t.Errorf("expected empty diff, got %d groups", len(d.Groups))
			}
		})
	}
}

func TestComputeSingleChange(t *testing.T) {
	d := Compute("file", "a\nb\nc\n", "a\nx\nc\n")

	if len(d.Groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(d.Groups))
	}

	got := d.Groups[0]
	want := []struct {
		tag      Tag
		oldIndex int
		newIndex int
		text     string
	}{
		{Equal, 0, 0, "a"},
		{Delete, 1, -1, "b"},
		{Insert, -1, 1, "x"},
		{Equal, 2, 2, "c"},
	}

	if len(got) != len(want) {
		t.Fatalf("changes = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		c := got[i]
		if c.Tag != w.tag || c.OldIndex != w.oldIndex || c.NewIndex != w.newIndex || c.Text != w.text {
			t.Errorf("change %d = {%v %d %d %q}, want {%v %d %d %q}",
				i, c.Tag, c.OldIndex, c.NewIndex, c.Text, w.tag, w.oldIndex, w.newIndex, w.text)
		}
	}
}

func TestComputeAddition(t *testing.T) {
	d := Compute("file", "a\nc\n", "a\nb\nc\n")

	if len(d.Groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(d.Groups))
	}

	var inserts []Change
	for _, c := range d.Groups[0] {
		if c.Tag == Insert {
			inserts = append(inserts, c)
		}
	}
	if len(inserts) != 1 {
		t.Fatalf("inserts = %d, want 1", len(inserts))
	}
	if inserts[0].Text != "b" || inserts[0].OldIndex != -1 || inserts[0].NewIndex != 1 {
		t.Errorf("insert = {%d %d %q}", inserts[0].OldIndex, inserts[0].NewIndex, inserts[0].Text)
	}
	if inserts[0].Spans != nil {
		t.Errorf("pure insertion carries spans %v", inserts[0].Spans)
	}
}

func TestComputeIntoEmptyText(t *testing.T) {
	d := Compute("file", "", "a\nb\n")

	if len(d.Groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(d.Groups))
	}
	if d.OldLines != 0 || d.NewLines != 2 {
		t.Errorf("line counts = %d/%d, want 0/2", d.OldLines, d.NewLines)
	}
	for _, c := range d.Groups[0] {
		if c.Tag != Insert {
			t.Errorf("unexpected %v change in insert-only diff", c.Tag)
		}
	}
}

// Changes separated by more than twice the context width split into
// separate groups; nearby changes share one group.
func TestComputeGrouping(t *testing.T) {
	oldText := "A\nc1\nc2\nc3\nc4\nc5\nc6\nc7\nc8\nZ\n"

	t.Run("distant changes split", func(t *testing.T) {
		newText := "B\nc1\nc2\nc3\nc4\nc5\nc6\nc7\nc8\nY\n"
		d := Compute("file", oldText, newText)
		if len(d.Groups) != 2 {
			t.Fatalf("groups = %d, want 2", len(d.Groups))
		}

		// Each group carries at most two context lines on each side.
		first := d.Groups[0]
		if got := first[len(first)-1].Text; got != "c2" {
			t.Errorf("first group ends with %q, want c2", got)
		}
		second := d.Groups[1]
		if got := second[0].Text; got != "c7" {
			t.Errorf("second group starts with %q, want c7", got)
		}
	})

	t.Run("nearby changes merge", func(t *testing.T) {
		newText := "B\nc1\nc2\nc3\nY\nc5\nc6\nc7\nc8\nZ\n"
		d := Compute("file", oldText, newText)
		if len(d.Groups) != 1 {
			t.Fatalf("groups = %d, want 1", len(d.Groups))
		}
	})
}

func TestComputeInlineSpans(t *testing.T) {
	d := Compute("file", "color = blue\n", "color = green\n")

	if len(d.Groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(d.Groups))
	}

	var del, ins *Change
	for i := range d.Groups[0] {
		c := &d.Groups[0][i]
		switch c.Tag {
		case Delete:
			del = c
		case Insert:
			ins = c
		}
	}
	if del == nil || ins == nil {
		t.Fatal("expected one delete and one insert line")
	}

	// Only the changed value is emphasized, never the shared prefix.
	if want := []Span{{Start: 8, End: 12}}; !reflect.DeepEqual(del.Spans, want) {
		t.Errorf("delete spans = %v, want %v", del.Spans, want)
	}
	if want := []Span{{Start: 8, End: 13}}; !reflect.DeepEqual(ins.Spans, want) {
		t.Errorf("insert spans = %v, want %v", ins.Spans, want)
	}
}

// A span crossing a line boundary in a multi-line replace must land on
// the individual lines it touches.
func TestComputeSpansAcrossLines(t *testing.T) {
	d := Compute("file", "foo1\nbar1\n", "foo2\nbar2\n")

	if len(d.Groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(d.Groups))
	}

	for _, c := range d.Groups[0] {
		if want := []Span{{Start: 3, End: 4}}; !reflect.DeepEqual(c.Spans, want) {
			t.Errorf("%v line %q spans = %v, want %v", c.Tag, c.Text, c.Spans, want)
		}
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty", text: "", want: nil},
		{name: "no trailing newline", text: "a\nb", want: []string{"a", "b"}},
		{name: "trailing newline", text: "a\nb\n", want: []string{"a", "b"}},
		{name: "blank interior line", text: "a\n\nb\n", want: []string{"a", "", "b"}},
		{name: "single newline", text: "\n", want: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitLines(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitLines(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
