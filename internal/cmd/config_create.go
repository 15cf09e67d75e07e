package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newConfigCreateCommand creates the 'dotsync config create' command
func newConfigCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new configuration",
		Long: `Create a new configuration directory holding a default dotconfig.toml.

The generated configuration has no deploy targets yet; edit its
dotconfig.toml to point each platform somewhere before deploying.

Examples:
  dotsync config create nvim
  dotsync config nvim          # same thing`,
		Args: cobra.ExactArgs(1),
		RunE: runConfigCreate,
	}

	return cmd
}

// runConfigCreate implements the config create command logic
func runConfigCreate(cmd *cobra.Command, args []string) error {
	name := args[0]

	s, err := discoverStructure()
	if err != nil {
		return err
	}

	if err := s.CreateConfig(name); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config '%s'\n", name)
	return nil
}
