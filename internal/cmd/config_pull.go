package cmd

import (
	"github.com/spf13/cobra"
)

// newConfigPullCommand creates the 'dotsync config pull' command
func newConfigPullCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pull <name>",
		Short: "Pull changes from the deployed configuration into the dotfiles repo",
		Long: `Walk the deployed files of a configuration, diff each one against its
repository copy, and copy the changes you approve back into the
repository.

Every added or modified file is previewed before its confirmation
prompt; pressing enter accepts the default answer (yes). Files that are
byte-identical on both sides are skipped silently.

Examples:
  dotsync config pull nvim
  dotsync config pull nvim --verbose   # also log each copied file`,
		Args: cobra.ExactArgs(1),
		RunE: runConfigPull,
	}

	return cmd
}

// runConfigPull implements the config pull command logic
func runConfigPull(cmd *cobra.Command, args []string) error {
	engine, closeLogs, err := newEngine(cmd)
	if err != nil {
		return err
	}
	defer closeLogs()

	return engine.Pull(args[0])
}
