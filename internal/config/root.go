package config

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/harrison/dotsync/internal/filelock"
)

// RootFile is the filename marking the root of a dotfiles repository.
// Every command locates the repository by searching for it.
const RootFile = "dotsync.toml"

// CurrentVersion is the repository format version written by init.
const CurrentVersion = 1

// RootConfig is the parsed contents of dotsync.toml.
type RootConfig struct {
	// Version is the repository format version
	Version int `toml:"version"`
}

// DefaultRootConfig returns the RootConfig written by init.
func DefaultRootConfig() *RootConfig {
	return &RootConfig{
		Version: CurrentVersion,
	}
}

// LoadRootConfig reads the dotsync.toml at path.
func LoadRootConfig(path string) (*RootConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigError(path, "failed to read root configuration", err)
	}

	var cfg RootConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, NewConfigError(path, "failed to parse root configuration", err)
	}

	return &cfg, nil
}

// SaveRootConfig writes cfg to path atomically under the metadata lock.
func SaveRootConfig(path string, cfg *RootConfig) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return NewConfigError(path, "failed to encode root configuration", err)
	}

	if err := filelock.LockAndWrite(path, data); err != nil {
		return NewConfigError(path, "failed to write root configuration", err)
	}

	return nil
}

// FindRoot walks upward from startDir until it finds a directory containing
// dotsync.toml and returns that directory. Commands use this so they work
// from anywhere inside the repository, not just its root.
func FindRoot(startDir string) (string, error) {
	current, err := filepath.Abs(startDir)
	if err != nil {
		return "", NewConfigError(startDir, "failed to resolve directory", err)
	}

	for {
		marker := filepath.Join(current, RootFile)
		if info, err := os.Stat(marker); err == nil && info.Mode().IsRegular() {
			return current, nil
		}

		// Move up one directory
		parent := filepath.Dir(current)
		if parent == current {
			// Reached filesystem root
			break
		}
		current = parent
	}

	return "", NewConfigError(startDir, "not inside a dotfiles repository (no dotsync.toml found in any parent directory)", nil)
}
