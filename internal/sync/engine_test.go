package sync

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/harrison/dotsync/internal/config"
	"github.com/harrison/dotsync/internal/platform"
	"github.com/harrison/dotsync/internal/structure"
)

// writeFile creates a file with parent directories below root.
func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

// testStructure builds a resolved repository in a temp directory holding
// the given configurations. Payload files are written by the callers.
func testStructure(t *testing.T, configs map[string]*config.Configuration) *structure.Structure {
	t.Helper()
	root := t.TempDir()
	for name := range configs {
		if err := os.MkdirAll(filepath.Join(root, name), 0755); err != nil {
			t.Fatalf("failed to create configuration directory: %v", err)
		}
	}
	return &structure.Structure{
		Root:       root,
		RootConfig: config.DefaultRootConfig(),
		Configs:    configs,
	}
}

// linuxConfig returns a configuration deploying to target on linux.
func linuxConfig(target string) *config.Configuration {
	cfg := config.DefaultConfiguration()
	cfg.Deploy.Linux.Target = target
	return cfg
}

// scriptedConfirmer plays back a fixed list of answers and fails when
// asked more often than scripted.
type scriptedConfirmer struct {
	answers []bool
	asked   int
}

func (c *scriptedConfirmer) Confirm(message string, defaultYes bool) (bool, error) {
	if c.asked >= len(c.answers) {
		return false, fmt.Errorf("unexpected confirmation request %d", c.asked+1)
	}
	answer := c.answers[c.asked]
	c.asked++
	return answer, nil
}

// forbidConfirmer fails the test on any confirmation request.
type forbidConfirmer struct {
	t *testing.T
}

func (c forbidConfirmer) Confirm(message string, defaultYes bool) (bool, error) {
	c.t.Errorf("unexpected confirmation request: %s", message)
	return false, nil
}

// newTestEngine wires an Engine for linux with captured preview output.
func newTestEngine(t *testing.T, s *structure.Structure, confirm Confirmer) (*Engine, *strings.Builder) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var out strings.Builder
	return NewEngine(s, platform.Linux, &out, confirm, nil), &out
}

func TestIsProtected(t *testing.T) {
	tests := []struct {
		rel  string
		want bool
	}{
		{rel: "dotconfig.toml", want: true},
		{rel: "./dotconfig.toml", want: true},
		{rel: "nested/dotconfig.toml", want: false},
		{rel: "dotconfig.toml.bak", want: false},
		{rel: "init.lua", want: false},
	}

	for _, tt := range tests {
		if got := isProtected(tt.rel); got != tt.want {
			t.Errorf("isProtected(%q) = %v, want %v", tt.rel, got, tt.want)
		}
	}
}
