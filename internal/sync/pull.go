package sync

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/harrison/dotsync/internal/config"
	"github.com/harrison/dotsync/internal/diff"
	"github.com/harrison/dotsync/internal/fileutil"
	"github.com/harrison/dotsync/internal/platform"
)

// Pull walks the live files of one configuration, previews every change
// against the repository copy, and copies the approved ones back. The
// source is the per-platform pull override when set, otherwise the deploy
// target. Unchanged files are passed over without a prompt, so a pull
// directly after a deploy asks nothing.
//
// Finding the protected metadata file among the live files aborts the
// pull immediately; files approved before the abort stay copied.
func (e *Engine) Pull(name string) error {
	cfg, err := e.structure.Config(name)
	if err != nil {
		return err
	}

	source := cfg.Source(e.platform)
	if source == "" {
		return config.NewConfigError("", fmt.Sprintf("config '%s' has no pull source for %s", name, e.platform), nil)
	}

	from, err := platform.ExpandHome(source)
	if err != nil {
		return err
	}

	spec := cfg.Pull.SpecFor(e.platform)
	excludes, err := CompileExcludes(
		PatternGroup{Source: "pull.exclude", Patterns: cfg.Pull.Exclude},
		PatternGroup{Source: fmt.Sprintf("pull.%s.exclude", e.platform), Patterns: spec.Exclude},
	)
	if err != nil {
		return err
	}

	dir := e.structure.Dir(name)
	renderer := diff.NewRenderer(e.out)
	e.log.LogDebug(fmt.Sprintf("pulling config '%s' from %s", name, from))

	return fileutil.WalkMatching(from, "**/*", func(rel string) error {
		// Exclusion is checked first: an excluded dotconfig.toml in the
		// source is harmless.
		if excludes.Match(rel) {
			e.log.LogTrace(fmt.Sprintf("skipping excluded file %s", rel))
			return nil
		}
		if isProtected(rel) {
			return NewPreconditionError(rel, "pulling would overwrite the dotconfig.toml configuration file; add 'dotconfig.toml' to your excludes in the pull configuration")
		}

		return e.pullFile(renderer, from, dir, rel)
	})
}

// pullFile previews one live file and copies it into the repository when
// the user approves. Byte-identical files are skipped silently. Pairs
// that render as a line diff get the full preview; added files and
// content that cannot be diffed get a single marker row instead.
func (e *Engine) pullFile(renderer *diff.Renderer, from, dir, rel string) error {
	src := filepath.Join(from, filepath.FromSlash(rel))
	dst := filepath.Join(dir, filepath.FromSlash(rel))

	liveData, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
	}

	repoData, err := os.ReadFile(dst)
	switch {
	case os.IsNotExist(err):
		renderer.RenderAdded(rel)
	case err != nil:
		return fmt.Errorf("failed to read %s: %w", dst, err)
	case bytes.Equal(liveData, repoData):
		e.log.LogTrace(fmt.Sprintf("unchanged file %s", rel))
		return nil
	case decodable(liveData) && decodable(repoData):
		d := diff.Compute(rel, string(repoData), string(liveData))
		if d.Empty() {
			// The contents differ only in the trailing final newline
			renderer.RenderModified(rel)
		} else {
			renderer.Render(d)
		}
	default:
		renderer.RenderModified(rel)
	}

	ok, err := e.confirm.Confirm("Do you want to continue? ", true)
	if err != nil {
		return err
	}
	if !ok {
		e.log.LogDebug(fmt.Sprintf("skipping declined file %s", rel))
		return nil
	}

	if err := CopyFile(src, dst); err != nil {
		return err
	}
	e.log.LogDebug(fmt.Sprintf("pulled %s", rel))
	return nil
}

// decodable reports whether data can be shown as a line based text diff:
// valid UTF-8 with no NUL bytes.
func decodable(data []byte) bool {
	return utf8.Valid(data) && !bytes.ContainsRune(data, 0)
}
