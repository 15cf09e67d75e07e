package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/harrison/dotsync/internal/config"
	"github.com/harrison/dotsync/internal/logger"
	"github.com/harrison/dotsync/internal/platform"
	"github.com/harrison/dotsync/internal/structure"
	"github.com/harrison/dotsync/internal/sync"
)

// autoConfirm approves every change, so the cycle runs without a terminal.
type autoConfirm struct{}

func (autoConfirm) Confirm(string, bool) (bool, error) { return true, nil }

func main() {
	work, err := os.MkdirTemp("", "dotsync-headless-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Temp dir creation failed: %v\n", err)
		os.Exit(1)
	}
	defer os.RemoveAll(work)

	root := filepath.Join(work, "repo")
	target := filepath.Join(work, "target")

	fmt.Fprintf(os.Stderr, "\n=== HEADLESS SYNC TEST ===\n")
	fmt.Fprintf(os.Stderr, "Repo: %s\n", root)
	fmt.Fprintf(os.Stderr, "Target: %s\n\n", target)

	if err := os.MkdirAll(filepath.Join(root, "demo"), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Repo setup failed: %v\n", err)
		os.Exit(1)
	}
	if err := config.SaveRootConfig(filepath.Join(root, config.RootFile), config.DefaultRootConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Root config write failed: %v\n", err)
		os.Exit(1)
	}

	cfg := config.DefaultConfiguration()
	cfg.Deploy.Linux.Target = target
	cfg.Deploy.Windows.Target = target
	if err := config.SaveConfiguration(filepath.Join(root, "demo", config.ProtectedPath), cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration write failed: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(filepath.Join(root, "demo", "demo.conf"), []byte("value = 1\n"), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Fixture write failed: %v\n", err)
		os.Exit(1)
	}

	s, err := structure.Resolve(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Structure resolution failed: %v\n", err)
		os.Exit(1)
	}

	p, err := platform.Current()
	if err != nil {
		// Run the check as linux on hosts outside the supported set
		p = platform.Linux
	}

	engine := sync.NewEngine(s, p, os.Stdout, autoConfirm{}, logger.NewNoOpLogger())

	if err := engine.Deploy("demo"); err != nil {
		fmt.Fprintf(os.Stderr, "Deploy failed: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(filepath.Join(target, "demo.conf"), []byte("value = 2\n"), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Live mutation failed: %v\n", err)
		os.Exit(1)
	}
	if err := engine.Pull("demo"); err != nil {
		fmt.Fprintf(os.Stderr, "Pull failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "\n=== VERIFICATION ===\n")
	data, err := os.ReadFile(filepath.Join(root, "demo", "demo.conf"))
	if err == nil && string(data) == "value = 2\n" {
		fmt.Fprintf(os.Stderr, "✅ Round trip pulled the live change back\n")
	} else {
		fmt.Fprintf(os.Stderr, "❌ Round trip mismatch: %q (%v)\n", data, err)
		os.Exit(1)
	}
}
