package display

import (
	"fmt"
	"io"
)

// ProgressIndicator manages multi-step progress display with ANSI colors
type ProgressIndicator struct {
	writer  io.Writer
	total   int
	current int
}

// NewProgressIndicator creates a new progress indicator
func NewProgressIndicator(w io.Writer, total int) *ProgressIndicator {
	return &ProgressIndicator{
		writer:  w,
		total:   total,
		current: 0,
	}
}

// Start displays the header message
func (p *ProgressIndicator) Start() {
	fmt.Fprintf(p.writer, "Deploying configurations:\n")
}

// Step displays progress for current item: [N/Total] name (cyan)
func (p *ProgressIndicator) Step(name string) {
	p.current++
	fmt.Fprintf(p.writer, "\x1b[36m  [%d/%d] %s\x1b[0m\n", p.current, p.total, name)
}

// Complete displays success message with green checkmark
func (p *ProgressIndicator) Complete() {
	fmt.Fprintf(p.writer, "\x1b[32m✓\x1b[0m Deployed %d configurations\n", p.total)
}

// DisplaySingleConfig shows a simple message for a single configuration
func DisplaySingleConfig(w io.Writer, name string) {
	fmt.Fprintf(w, "Deploying configuration '%s'...\n", name)
}
