package cmd

import (
	"errors"
	"fmt"

	"github.com/harrison/dotsync/internal/display"
	"github.com/harrison/dotsync/internal/sync"
	"github.com/spf13/cobra"
)

// NewDeployCommand creates the 'dotsync deploy' command
func NewDeployCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy [name]",
		Short: "Deploy your configurations to the system",
		Long: `Deploy configurations from the repository to their platform targets.

With a name, only that configuration deploys. Without one, every
configuration in the repository deploys in turn; a failing configuration
is reported and the remaining ones still deploy.

Deployed files overwrite their targets unconditionally. Run
'dotsync config pull' first when the system copies may have changed.

Examples:
  dotsync deploy             # deploy every configuration
  dotsync deploy nvim        # deploy a single configuration
  dotsync deploy --verbose   # log every copied file`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDeploy,
	}

	return cmd
}

// runDeploy implements the deploy command logic
func runDeploy(cmd *cobra.Command, args []string) error {
	engine, closeLogs, err := newEngine(cmd)
	if err != nil {
		return err
	}
	defer closeLogs()

	if len(args) == 1 {
		display.DisplaySingleConfig(cmd.OutOrStdout(), args[0])
		return engine.Deploy(args[0])
	}

	err = engine.DeployAll()

	var batch *sync.BatchError
	if errors.As(err, &batch) {
		failed := make([]string, len(batch.Failures))
		for i, failure := range batch.Failures {
			failed[i] = failure.Name
		}

		warning := display.WarnFailedConfigs(
			fmt.Sprintf("%d of %d configurations could not be deployed", len(batch.Failures), batch.Total),
			failed,
		)
		warning.Suggestion = "Deploy the failing configurations individually to see their errors."
		warning.Display(cmd.OutOrStdout())

		return fmt.Errorf("%d configuration(s) failed to deploy", len(batch.Failures))
	}

	return err
}
