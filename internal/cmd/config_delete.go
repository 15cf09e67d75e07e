package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newConfigDeleteCommand creates the 'dotsync config delete' command
func newConfigDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a configuration",
		Long: `Delete a configuration together with its directory in the repository.

Files already deployed to the system are left alone; only the
repository copy goes away.`,
		Args: cobra.ExactArgs(1),
		RunE: runConfigDelete,
	}

	return cmd
}

// runConfigDelete implements the config delete command logic
func runConfigDelete(cmd *cobra.Command, args []string) error {
	name := args[0]

	s, err := discoverStructure()
	if err != nil {
		return err
	}

	if err := s.DeleteConfig(name); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted config '%s'\n", name)
	return nil
}
