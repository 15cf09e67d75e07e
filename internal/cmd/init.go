package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/harrison/dotsync/internal/config"
	"github.com/harrison/dotsync/internal/sync"
	"github.com/spf13/cobra"
)

// NewInitCommand creates the 'dotsync init' command
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new dotfiles repo in the current directory",
		Long: `Initialize a new dotfiles repository in the current directory.

The directory must be empty. A dotsync.toml marking the repository root
is written and a fresh git repository is initialized around it.

Examples:
  mkdir dotfiles && cd dotfiles
  dotsync init`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	return cmd
}

// runInit implements the init command logic
func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine working directory: %w", err)
	}

	// The check runs before anything is written, so a failed init leaves
	// the directory exactly as it was.
	entries, err := os.ReadDir(cwd)
	if err != nil {
		return fmt.Errorf("failed to read current directory: %w", err)
	}
	if len(entries) > 0 {
		return sync.NewPreconditionError(cwd, "the directory is not empty")
	}

	if err := config.SaveRootConfig(filepath.Join(cwd, config.RootFile), config.DefaultRootConfig()); err != nil {
		return err
	}

	// The metadata lock files never belong in version control.
	if err := os.WriteFile(filepath.Join(cwd, ".gitignore"), []byte("*.lock\n"), 0644); err != nil {
		return fmt.Errorf("failed to write .gitignore: %w", err)
	}

	if _, err := git.PlainInit(cwd, false); err != nil {
		return fmt.Errorf("could not initialize git repository: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized empty dotfiles repository in %s\n", cwd)
	return nil
}
