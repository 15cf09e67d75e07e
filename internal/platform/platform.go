// Package platform resolves the running operating system to one of the
// platforms dotsync knows how to deploy to, and expands home-relative paths.
package platform

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Platform identifies an operating system with per-OS deploy and pull rules.
type Platform string

const (
	// Windows selects the [deploy.windows] / [pull.windows] sections.
	Windows Platform = "windows"
	// Linux selects the [deploy.linux] / [pull.linux] sections.
	Linux Platform = "linux"
)

// supported maps GOOS values to their Platform. Adding an OS means adding an
// entry here and the matching sections in the configuration schema.
var supported = map[string]Platform{
	"windows": Windows,
	"linux":   Linux,
}

// UnsupportedError reports an operating system outside the recognized set.
type UnsupportedError struct {
	OS string
}

// Error implements the error interface for UnsupportedError.
func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("operating system %q is not supported", e.OS)
}

// IsUnsupportedError checks if the error is or wraps an UnsupportedError.
func IsUnsupportedError(err error) bool {
	if err == nil {
		return false
	}
	var ue *UnsupportedError
	return errors.As(err, &ue)
}

// Current resolves the platform for the running operating system.
func Current() (Platform, error) {
	return FromOS(runtime.GOOS)
}

// FromOS resolves a GOOS value to a Platform.
// Unrecognized values yield an UnsupportedError.
func FromOS(goos string) (Platform, error) {
	p, ok := supported[goos]
	if !ok {
		return "", &UnsupportedError{OS: goos}
	}
	return p, nil
}

// ExpandHome expands a leading "~" in path to the current user's home
// directory. Only the bare "~" and "~/" (or "~\" on Windows-style paths)
// forms expand; "~user" forms are returned unchanged, as are paths that do
// not start with a tilde.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	if len(path) > 1 && path[1] != '/' && path[1] != '\\' {
		// ~user form; leave it to the shell
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	rest := strings.TrimLeft(path[1:], `/\`)
	if rest == "" {
		return home, nil
	}
	return home + string(os.PathSeparator) + rest, nil
}
