// Package fileutil provides recursive file enumeration for sync operations.
//
// This package is the single source of truth for walking configuration trees.
// Enumeration is depth-first and deterministic (directory entries are visited
// in lexical order), visits every subdirectory unconditionally, and yields
// only regular files whose path relative to the enumeration root matches a
// glob pattern. Matching uses doublestar semantics: '*' does not cross path
// separators, '**' does.
//
// Walking is lazy: matched paths are streamed to a callback one at a time and
// the sequence is consumed exactly once per invocation. Any directory that
// cannot be listed aborts the whole walk with the filesystem error; there is
// no partial-result mode.
//
// Basic usage:
//
//	err := fileutil.WalkMatching(configDir, "**/*", func(rel string) error {
//	    fmt.Println(rel)
//	    return nil
//	})
//
// ListMatching is the eager convenience form used where the full set is small
// and needed up front:
//
//	files, err := fileutil.ListMatching(configDir, "**/*")
//
// All yielded paths are slash-separated and relative to the root, which is
// the form exclude patterns and the protected-path check operate on.
package fileutil
