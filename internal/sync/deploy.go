package sync

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/harrison/dotsync/internal/config"
	"github.com/harrison/dotsync/internal/display"
	"github.com/harrison/dotsync/internal/fileutil"
	"github.com/harrison/dotsync/internal/platform"
)

// Deploy copies one configuration out to its platform target, creating
// the target and any missing parents. The protected metadata file and
// excluded paths are skipped; every other file overwrites its destination
// unconditionally, without preview or prompt.
func (e *Engine) Deploy(name string) error {
	cfg, err := e.structure.Config(name)
	if err != nil {
		return err
	}

	spec := cfg.Deploy.SpecFor(e.platform)
	if spec.Target == "" {
		return config.NewConfigError("", fmt.Sprintf("config '%s' has no deploy target for %s", name, e.platform), nil)
	}

	target, err := platform.ExpandHome(spec.Target)
	if err != nil {
		return err
	}

	// The emptiness requirement is checked before anything is written,
	// so a violation leaves the target entirely untouched.
	if cfg.Deploy.RequireEmptyFor(e.platform) {
		if err := checkNullOrEmpty(target); err != nil {
			return err
		}
	}

	excludes, err := CompileExcludes(
		PatternGroup{Source: "deploy.exclude", Patterns: cfg.Deploy.Exclude},
		PatternGroup{Source: fmt.Sprintf("deploy.%s.exclude", e.platform), Patterns: spec.Exclude},
	)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(target, 0755); err != nil {
		return fmt.Errorf("failed to create target directory %s: %w", target, err)
	}

	dir := e.structure.Dir(name)
	e.log.LogDebug(fmt.Sprintf("deploying config '%s' from %s to %s", name, dir, target))

	copied := 0
	err = fileutil.WalkMatching(dir, "**/*", func(rel string) error {
		if isProtected(rel) {
			e.log.LogTrace(fmt.Sprintf("skipping protected file %s", rel))
			return nil
		}
		if excludes.Match(rel) {
			e.log.LogTrace(fmt.Sprintf("skipping excluded file %s", rel))
			return nil
		}

		if err := CopyFile(filepath.Join(dir, filepath.FromSlash(rel)), filepath.Join(target, filepath.FromSlash(rel))); err != nil {
			return err
		}
		e.log.LogDebug(fmt.Sprintf("copied %s", rel))
		copied++
		return nil
	})
	if err != nil {
		return err
	}

	e.log.LogInfo(fmt.Sprintf("deployed config '%s': %d file(s)", name, copied))
	return nil
}

// DeployAll deploys every configuration in name order, stepping a
// progress indicator on out. A failing configuration is reported and the
// remaining ones still deploy; the collected failures come back as a
// single BatchError.
func (e *Engine) DeployAll() error {
	names := e.structure.Names()
	batch := &BatchError{Total: len(names)}

	progress := display.NewProgressIndicator(e.out, len(names))
	progress.Start()

	for _, name := range names {
		progress.Step(name)
		if err := e.Deploy(name); err != nil {
			e.log.LogError(fmt.Sprintf("could not deploy config '%s': %v", name, err))
			batch.Add(&ConfigFailure{Name: name, Err: err})
		}
	}

	if len(batch.Failures) > 0 {
		return batch
	}

	progress.Complete()
	return nil
}

// checkNullOrEmpty passes when target is absent or an empty directory.
func checkNullOrEmpty(target string) error {
	entries, err := os.ReadDir(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		if info, statErr := os.Stat(target); statErr == nil && !info.IsDir() {
			return NewPreconditionError(target, "target exists and is not a directory")
		}
		return fmt.Errorf("failed to read target directory %s: %w", target, err)
	}

	if len(entries) > 0 {
		return NewPreconditionError(target, "target directory is not empty")
	}
	return nil
}
