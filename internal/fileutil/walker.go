package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// WalkFunc is called once per matched file with the file's slash-separated
// path relative to the enumeration root. Returning an error stops the walk
// and propagates the error to the caller of WalkMatching.
type WalkFunc func(rel string) error

// WalkMatching walks root depth-first and calls fn for every regular file
// whose relative path matches the glob pattern. Every subdirectory is
// visited unconditionally; only files are filtered by the pattern. Entries
// that are neither files nor directories (symlinks, sockets, devices) are
// ignored. The first directory listing failure aborts the whole walk.
func WalkMatching(root, pattern string, fn WalkFunc) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("access enumeration root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("enumeration root is not a directory: %s", root)
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable directory or stat failure: no partial results.
			return fmt.Errorf("list %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("resolve path relative to %s: %w", root, err)
		}
		rel = filepath.ToSlash(rel)

		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			return fmt.Errorf("invalid enumeration pattern %q: %w", pattern, err)
		}
		if !matched {
			return nil
		}

		return fn(rel)
	})
}

// ListMatching returns the relative paths of all files under root matching
// pattern, in traversal order. On any error no partial result is returned.
func ListMatching(root, pattern string) ([]string, error) {
	var files []string
	err := WalkMatching(root, pattern, func(rel string) error {
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
