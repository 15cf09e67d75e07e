package sync

import (
	"github.com/bmatcuk/doublestar/v4"

	"github.com/harrison/dotsync/internal/config"
)

// PatternGroup labels a list of glob patterns with the configuration key
// they were read from, so compilation failures can point at the right list.
type PatternGroup struct {
	Source   string
	Patterns []string
}

// Matcher reports whether a relative path is excluded from a sync
// operation. The zero value matches nothing.
type Matcher struct {
	patterns []string
}

// CompileExcludes validates the given pattern groups and unions them into
// a single match-if-any Matcher. The first malformed pattern fails the
// compilation with a GlobError naming the pattern and its source key.
func CompileExcludes(groups ...PatternGroup) (*Matcher, error) {
	var patterns []string
	for _, group := range groups {
		for _, pattern := range group.Patterns {
			if !doublestar.ValidatePattern(pattern) {
				return nil, &config.GlobError{Pattern: pattern, Source: group.Source}
			}
			patterns = append(patterns, pattern)
		}
	}

	return &Matcher{patterns: patterns}, nil
}

// Match reports whether the slash-relative path rel matches any pattern.
// A single * stays within one path segment, ** crosses segments.
func (m *Matcher) Match(rel string) bool {
	for _, pattern := range m.patterns {
		// Patterns were validated at compile time, so Match cannot fail.
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
