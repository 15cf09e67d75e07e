// Package prompt implements the interactive confirmation gate used before
// files are copied back into the repository.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// LineReader defines the interface for reading user answers (for testing).
// A bufio.Reader satisfies it directly.
type LineReader interface {
	ReadString(delim byte) (string, error)
}

// Gate asks the user to approve individual changes. Every question blocks
// until an understandable answer arrives.
type Gate struct {
	in  LineReader
	out io.Writer
}

// NewGate creates a Gate reading answers from stdin and writing questions
// to out.
func NewGate(out io.Writer) *Gate {
	return NewGateWithReader(bufio.NewReader(os.Stdin), out)
}

// NewGateWithReader allows injection of the answer source for testing.
func NewGateWithReader(in LineReader, out io.Writer) *Gate {
	return &Gate{
		in:  in,
		out: out,
	}
}

// Confirm prints message followed by a default-aware [Y/n] suffix and
// blocks for one answer. Empty input selects the default, y/yes and n/no
// are accepted case-insensitively, and anything else asks again. A closed
// or failing input stream aborts with an error rather than answering for
// the user.
func (g *Gate) Confirm(message string, defaultYes bool) (bool, error) {
	suffix := "[y/N]"
	if defaultYes {
		suffix = "[Y/n]"
	}

	for {
		fmt.Fprintf(g.out, "%s%s ", message, suffix)

		line, err := g.in.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))

		switch answer {
		case "":
			if err == nil {
				return defaultYes, nil
			}
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		if err != nil {
			return false, fmt.Errorf("failed to read answer: %w", err)
		}
	}
}
