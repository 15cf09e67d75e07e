package display

import (
	"fmt"
	"io"
	"strings"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Configs    []string // Related configurations (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning in yellow
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	// Start with yellow color, emoji, and title
	b.WriteString("\x1b[33m")
	b.WriteString("⚠️  Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	// Add message with 4-space indent if present
	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	// Add configurations with proper singular/plural and indentation
	if len(w.Configs) > 0 {
		b.WriteString("    ")
		if len(w.Configs) == 1 {
			b.WriteString("Affected configuration:\n")
		} else {
			b.WriteString("Affected configurations:\n")
		}

		for i, name := range w.Configs {
			b.WriteString("      ")
			b.WriteString(fmt.Sprintf("%d. %s", i+1, name))
			b.WriteString("\n")
		}
	}

	// Add suggestion with 4-space indent if present
	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	// End with reset code
	b.WriteString("\x1b[0m")

	fmt.Fprint(out, b.String())
}

// WarnFailedConfigs creates a warning listing configurations that failed
func WarnFailedConfigs(title string, configs []string) Warning {
	return Warning{
		Title:   title,
		Configs: configs,
	}
}
