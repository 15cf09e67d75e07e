package sync

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CopyFile copies src over dst, creating missing parent directories.
// The content lands in a temporary file in the destination directory
// which is synced and renamed over dst, so an interrupted copy never
// leaves a truncated destination behind. The destination takes over the
// source file's permission bits.
func CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", src, err)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	// Same directory as the target keeps the rename on one filesystem
	tmpFile, err := os.CreateTemp(dir, ".dotsync-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Ensure the temp file is cleaned up on error
	defer func() {
		if tmpFile != nil {
			tmpFile.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := io.Copy(tmpFile, in); err != nil {
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tmpPath, dst); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", dst, err)
	}

	// Success - prevent cleanup of the temp file since it's now renamed
	tmpFile = nil

	return nil
}
