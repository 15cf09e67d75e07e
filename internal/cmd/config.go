package cmd

import (
	"github.com/spf13/cobra"
)

// NewConfigCommand creates the 'dotsync config' parent command
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config [name]",
		Short: "Manage your individual dotfile configurations",
		Long: `Commands for creating, deleting and pulling the named dotfile
configurations of the repository.

A bare name is a shortcut for 'config create', analogous to
'git branch <name>'.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runConfigCreate(cmd, args)
		},
	}

	// Add subcommands
	cmd.AddCommand(newConfigCreateCommand())
	cmd.AddCommand(newConfigDeleteCommand())
	cmd.AddCommand(newConfigPullCommand())

	return cmd
}
