package config

import (
	"errors"
	"fmt"
	"strings"
)

// ConfigError represents invalid or missing repository configuration.
// It includes the file or directory the error relates to when known.
type ConfigError struct {
	Path    string // File or directory the error relates to (optional)
	Message string // Human-readable error message
	Err     error  // Underlying error (optional)
}

// NewConfigError creates a new ConfigError.
func NewConfigError(path, msg string, err error) *ConfigError {
	return &ConfigError{
		Path:    path,
		Message: msg,
		Err:     err,
	}
}

// Error implements the error interface for ConfigError.
func (e *ConfigError) Error() string {
	var sb strings.Builder
	if e.Path != "" {
		sb.WriteString(fmt.Sprintf("%s: %s", e.Path, e.Message))
	} else {
		sb.WriteString(e.Message)
	}
	if e.Err != nil {
		sb.WriteString(fmt.Sprintf(": %v", e.Err))
	}
	return sb.String()
}

// Unwrap returns the underlying error for error wrapping support.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// GlobError reports a malformed exclude pattern together with the
// configuration key it was read from, so the user knows which list to fix.
type GlobError struct {
	Pattern string // The offending glob pattern
	Source  string // Configuration key the pattern came from, e.g. "deploy.linux.exclude"
}

// Error implements the error interface for GlobError.
func (e *GlobError) Error() string {
	return fmt.Sprintf("invalid glob pattern %q in %s", e.Pattern, e.Source)
}

// IsConfigError checks if the error is or wraps a ConfigError.
func IsConfigError(err error) bool {
	if err == nil {
		return false
	}
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsGlobError checks if the error is or wraps a GlobError.
func IsGlobError(err error) bool {
	if err == nil {
		return false
	}
	var ge *GlobError
	return errors.As(err, &ge)
}
