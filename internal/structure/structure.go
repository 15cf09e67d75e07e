// Package structure resolves the on-disk layout of a dotfiles repository
// into the set of named configurations the commands operate on.
package structure

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/harrison/dotsync/internal/config"
)

// Structure represents a resolved dotfiles repository: its root directory
// and every configuration found inside it. It is resolved once per
// invocation and not mutated by sync operations.
type Structure struct {
	// Root is the absolute path of the repository root
	Root string

	// RootConfig is the parsed dotsync.toml
	RootConfig *config.RootConfig

	// Configs maps configuration names to their parsed dotconfig.toml
	Configs map[string]*config.Configuration
}

// Resolve loads the repository rooted at root. Every immediate
// subdirectory containing a dotconfig.toml is a configuration, named by
// its directory; hidden directories are skipped. Any unreadable or
// invalid configuration fails the whole resolution, so commands never
// operate on a partially valid repository.
func Resolve(root string) (*Structure, error) {
	rootCfg, err := config.LoadRootConfig(filepath.Join(root, config.RootFile))
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, config.NewConfigError(root, "failed to read repository", err)
	}

	configs := make(map[string]*config.Configuration)
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		path := filepath.Join(root, entry.Name(), config.ProtectedPath)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				// A plain directory, not a configuration
				continue
			}
			return nil, config.NewConfigError(path, "failed to access configuration", err)
		}

		cfg, err := config.LoadConfiguration(path)
		if err != nil {
			return nil, err
		}
		configs[entry.Name()] = cfg
	}

	return &Structure{
		Root:       root,
		RootConfig: rootCfg,
		Configs:    configs,
	}, nil
}

// Discover finds the repository containing startDir and resolves it.
func Discover(startDir string) (*Structure, error) {
	root, err := config.FindRoot(startDir)
	if err != nil {
		return nil, err
	}
	return Resolve(root)
}

// Config returns the named configuration.
func (s *Structure) Config(name string) (*config.Configuration, error) {
	cfg, ok := s.Configs[name]
	if !ok {
		return nil, config.NewConfigError("", fmt.Sprintf("config '%s' does not exist", name), nil)
	}
	return cfg, nil
}

// Dir returns the directory holding the named configuration's files.
func (s *Structure) Dir(name string) string {
	return filepath.Join(s.Root, name)
}

// Names returns all configuration names in sorted order.
func (s *Structure) Names() []string {
	names := make([]string, 0, len(s.Configs))
	for name := range s.Configs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// validName rejects names that could never resolve back into a
// configuration: empty names, hidden directories, and path separators.
func validName(name string) bool {
	if name == "" || strings.HasPrefix(name, ".") {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}

// CreateConfig creates a new configuration directory holding a default
// dotconfig.toml and registers it in the structure. It fails when a
// configuration with that name already exists.
func (s *Structure) CreateConfig(name string) error {
	if !validName(name) {
		return config.NewConfigError("", fmt.Sprintf("invalid config name '%s'", name), nil)
	}
	if _, ok := s.Configs[name]; ok {
		return config.NewConfigError("", fmt.Sprintf("there already exists a config with the name '%s'", name), nil)
	}

	dir := s.Dir(name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return config.NewConfigError(dir, "failed to create configuration directory", err)
	}

	cfg := config.DefaultConfiguration()
	if err := config.SaveConfiguration(filepath.Join(dir, config.ProtectedPath), cfg); err != nil {
		return err
	}

	s.Configs[name] = cfg
	return nil
}

// DeleteConfig removes the named configuration together with its
// directory. It fails when no configuration with that name exists.
func (s *Structure) DeleteConfig(name string) error {
	if _, ok := s.Configs[name]; !ok {
		return config.NewConfigError("", fmt.Sprintf("there is no config with the name '%s'", name), nil)
	}

	if err := os.RemoveAll(s.Dir(name)); err != nil {
		return config.NewConfigError(s.Dir(name), "failed to delete configuration directory", err)
	}

	delete(s.Configs, name)
	return nil
}
