package cli

import (
	"github.com/spf13/cobra"

	"github.com/Aatka-Saleem/DeployFlow/cmd/deployflow/cli/command"
	"github.com/Aatka-Saleem/DeployFlow/internal"
)

// Application constructs the deployflow CLI application
func Application() *cobra.Command {
	app := &cobra.Command{
		Use:     "deployflow",
		Short:   "A configuration security scanner for generated deployment artifacts",
		Long:    `DeployFlow scans generated deployment artifacts (container build files, compose files, orchestration manifests) against a declarative rule set, aggregates findings into a risk score, and renders a deployment gating decision.`,
		Version: internal.ApplicationVersion(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Set up logging based on verbose flag
			verbose, _ := cmd.Flags().GetBool("verbose")
			command.SetupLogging(verbose)
		},
	}

	// Add global flags
	app.PersistentFlags().StringP("rules", "r", "", "path to a YAML rule document (defaults to the built-in rule set)")
	app.PersistentFlags().StringP("output", "o", "table", "output format (table, json)")
	app.PersistentFlags().StringP("output-file", "f", "", "write JSON output to file")
	app.PersistentFlags().BoolP("quiet", "q", false, "suppress all non-essential output")
	app.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	// Add subcommands
	app.AddCommand(
		command.Scan(),
		command.Rules(),
		command.Version(),
	)

	return app
}
