package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for dotsync
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dotsync",
		Short: "Keep your dotfiles in sync between a git repository and the system",
		Long: `Dotsync manages a repository of named dotfile configurations and
synchronizes them with the running system in both directions.

Deploying copies a configuration out of the repository to its
platform-specific target directory. Pulling walks the deployed files,
shows a line diff of everything that changed on the system, and copies
the changes you approve back into the repository.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Detect if we're in a terminal (for color output)
			if !isatty.IsTerminal(os.Stdout.Fd()) {
				color.NoColor = true
			}
		},
	}

	cmd.PersistentFlags().Bool("verbose", false, "Show detailed execution information")
	cmd.PersistentFlags().String("log-dir", "", "Directory for log files (default: console only)")

	// Add subcommands
	cmd.AddCommand(NewInitCommand())
	cmd.AddCommand(NewConfigCommand())
	cmd.AddCommand(NewDeployCommand())

	return cmd
}
