package config

import (
	"os"

	"github.com/bmatcuk/doublestar/v4"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/harrison/dotsync/internal/filelock"
	"github.com/harrison/dotsync/internal/platform"
)

// ProtectedPath is the per-configuration metadata filename. Deploy never
// copies it to the system and pull refuses to overwrite it.
const ProtectedPath = "dotconfig.toml"

// TargetSpec describes where one platform deploys a configuration.
type TargetSpec struct {
	// Target is the deploy destination; a leading ~ expands to the home directory
	Target string `toml:"target"`

	// Exclude holds target-level glob patterns, unioned with the section-level list
	Exclude []string `toml:"exclude"`

	// TargetRequireEmpty overrides the section-level default when set
	TargetRequireEmpty *bool `toml:"target_require_empty,omitempty"`
}

// DeploySection holds deploy settings shared across platforms plus one
// TargetSpec per supported platform.
type DeploySection struct {
	// TargetRequireEmpty refuses to deploy into a non-empty target directory
	TargetRequireEmpty bool `toml:"target_require_empty"`

	// Exclude holds configuration-level glob patterns applied on every platform
	Exclude []string `toml:"exclude"`

	Windows TargetSpec `toml:"windows"`
	Linux   TargetSpec `toml:"linux"`
}

// SpecFor returns the deploy spec for the given platform.
func (d *DeploySection) SpecFor(p platform.Platform) TargetSpec {
	return map[platform.Platform]TargetSpec{
		platform.Windows: d.Windows,
		platform.Linux:   d.Linux,
	}[p]
}

// RequireEmptyFor resolves the effective target_require_empty value for the
// given platform. A per-target override wins over the section default.
func (d *DeploySection) RequireEmptyFor(p platform.Platform) bool {
	if spec := d.SpecFor(p); spec.TargetRequireEmpty != nil {
		return *spec.TargetRequireEmpty
	}
	return d.TargetRequireEmpty
}

// PullSpec describes where one platform pulls a configuration from.
type PullSpec struct {
	// From overrides the pull source; empty means the deploy target is used
	From string `toml:"from"`

	// Exclude holds pull glob patterns for this platform only
	Exclude []string `toml:"exclude"`
}

// PullSection holds pull settings shared across platforms plus one PullSpec
// per supported platform.
type PullSection struct {
	// Exclude holds configuration-level glob patterns applied on every platform
	Exclude []string `toml:"exclude"`

	Windows PullSpec `toml:"windows"`
	Linux   PullSpec `toml:"linux"`
}

// SpecFor returns the pull spec for the given platform.
func (p *PullSection) SpecFor(pl platform.Platform) PullSpec {
	return map[platform.Platform]PullSpec{
		platform.Windows: p.Windows,
		platform.Linux:   p.Linux,
	}[pl]
}

// Configuration is the parsed contents of one dotconfig.toml.
type Configuration struct {
	Deploy DeploySection `toml:"deploy"`
	Pull   PullSection   `toml:"pull"`
}

// Source resolves the pull source directory for the given platform: the
// per-platform pull override when set, otherwise the deploy target for the
// same platform.
func (c *Configuration) Source(p platform.Platform) string {
	if spec := c.Pull.SpecFor(p); spec.From != "" {
		return spec.From
	}
	return c.Deploy.SpecFor(p).Target
}

// DefaultConfiguration returns the Configuration scaffold written by
// config create. Targets are left empty for the user to fill in.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Deploy: DeploySection{
			TargetRequireEmpty: false,
			Exclude:            []string{},
			Windows:            TargetSpec{Target: "", Exclude: []string{}},
			Linux:              TargetSpec{Target: "", Exclude: []string{}},
		},
		Pull: PullSection{
			Exclude: []string{},
			Windows: PullSpec{From: "", Exclude: []string{}},
			Linux:   PullSpec{From: "", Exclude: []string{}},
		},
	}
}

// Validate checks every exclude list for malformed glob patterns.
// The first malformed pattern is reported as a GlobError naming the
// configuration key it came from, so a bad pattern in one list never
// masks the rest of the file.
func (c *Configuration) Validate() error {
	lists := []struct {
		source   string
		patterns []string
	}{
		{"deploy.exclude", c.Deploy.Exclude},
		{"deploy.windows.exclude", c.Deploy.Windows.Exclude},
		{"deploy.linux.exclude", c.Deploy.Linux.Exclude},
		{"pull.exclude", c.Pull.Exclude},
		{"pull.windows.exclude", c.Pull.Windows.Exclude},
		{"pull.linux.exclude", c.Pull.Linux.Exclude},
	}

	for _, list := range lists {
		for _, pattern := range list.patterns {
			if !doublestar.ValidatePattern(pattern) {
				return &GlobError{Pattern: pattern, Source: list.source}
			}
		}
	}

	return nil
}

// LoadConfiguration reads and validates the dotconfig.toml at path.
// A missing file, unparseable TOML, or a malformed exclude pattern all
// fail the load; a partially valid configuration is never returned.
func LoadConfiguration(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigError(path, "failed to read configuration", err)
	}

	var cfg Configuration
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, NewConfigError(path, "failed to parse configuration", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SaveConfiguration writes cfg to path atomically under the metadata lock,
// so concurrent invocations cannot corrupt repository metadata.
func SaveConfiguration(path string, cfg *Configuration) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return NewConfigError(path, "failed to encode configuration", err)
	}

	if err := filelock.LockAndWrite(path, data); err != nil {
		return NewConfigError(path, "failed to write configuration", err)
	}

	return nil
}
