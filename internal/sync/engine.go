// Package sync implements the two synchronization directions between a
// dotfiles repository and the live system: deploy copies a configuration
// out to its platform target, pull previews live changes and copies the
// approved ones back into the repository.
package sync

import (
	"io"
	"path"
	"path/filepath"

	"github.com/harrison/dotsync/internal/config"
	"github.com/harrison/dotsync/internal/platform"
	"github.com/harrison/dotsync/internal/structure"
)

// Logger defines the interface for reporting sync progress.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
}

// Confirmer asks the user to approve one pending change.
type Confirmer interface {
	Confirm(message string, defaultYes bool) (bool, error)
}

// Engine executes deploy and pull operations against a resolved
// repository structure. Operations run synchronously and touch files one
// at a time in enumeration order.
type Engine struct {
	structure *structure.Structure
	platform  platform.Platform
	out       io.Writer
	confirm   Confirmer
	log       Logger
}

// NewEngine creates an Engine for the given repository structure and
// platform. Previews are written to out, pull confirmations go through
// confirm. The logger parameter is optional and can be nil.
func NewEngine(s *structure.Structure, p platform.Platform, out io.Writer, confirm Confirmer, log Logger) *Engine {
	if s == nil {
		panic("structure cannot be nil")
	}
	if log == nil {
		log = nopLogger{}
	}

	return &Engine{
		structure: s,
		platform:  p,
		out:       out,
		confirm:   confirm,
		log:       log,
	}
}

// isProtected reports whether rel names the per-configuration metadata
// file. The comparison happens on the cleaned slash form, so alternate
// separators or redundant path elements cannot smuggle the file through.
func isProtected(rel string) bool {
	return path.Clean(filepath.ToSlash(rel)) == config.ProtectedPath
}

// nopLogger discards all messages.
type nopLogger struct{}

func (nopLogger) LogTrace(string) {}
func (nopLogger) LogDebug(string) {}
func (nopLogger) LogInfo(string)  {}
func (nopLogger) LogWarn(string)  {}
func (nopLogger) LogError(string) {}
