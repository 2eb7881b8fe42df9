package command

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wagoodman/go-partybus"
	"github.com/wagoodman/go-progress"

	"github.com/Aatka-Saleem/DeployFlow/deployflow"
	"github.com/Aatka-Saleem/DeployFlow/event"
	"github.com/Aatka-Saleem/DeployFlow/internal/bus"
)

// Scan creates the scan command
func Scan() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan deployment artifacts against the security rule set",
		Long: `Scan evaluates generated deployment artifacts against a declarative rule set
and renders a deployment gating decision.

Artifacts are supplied by path; "-" reads one artifact from stdin:

  deployflow scan --build-file Dockerfile --manifest deploy.yaml
  cat Dockerfile | deployflow scan --build-file -

Exit codes:
- 0: gate is APPROVED (or REVIEW_REQUIRED without --strict)
- 1: gate is BLOCKED, or REVIEW_REQUIRED with --strict
- 2: the rule document could not be loaded`,
		RunE: runScan,
	}

	// Add command-specific flags
	cmd.Flags().String("build-file", "", "path to a container build file")
	cmd.Flags().String("compose-file", "", "path to a compose file")
	cmd.Flags().String("manifest", "", "path to an orchestration manifest")
	cmd.Flags().Bool("strict", false, "treat REVIEW_REQUIRED as a gate failure")

	return cmd
}

// runScan executes the scan command
func runScan(cmd *cobra.Command, args []string) error {
	globalConfig := GetGlobalConfig(cmd)
	strict, _ := cmd.Flags().GetBool("strict")

	rules, ruleSource, err := LoadRules(globalConfig)
	if err != nil {
		HandleError(err, globalConfig.Quiet)
		return err
	}

	artifacts, order, err := collectArtifacts(cmd)
	if err != nil {
		HandleError(err, globalConfig.Quiet)
		return err
	}
	if len(artifacts) == 0 {
		err := fmt.Errorf("no artifacts supplied (use --build-file, --compose-file, or --manifest)")
		HandleError(err, globalConfig.Quiet)
		return err
	}

	prog := bus.PublishTask(
		event.Title{
			Default:      "Scan artifacts",
			WhileRunning: "Scanning artifacts",
			OnSuccess:    "Scanned artifacts",
		},
		ruleSource,
		len(artifacts),
	)

	sources := make([]string, 0, len(order))
	for _, kind := range order {
		sources = append(sources, string(kind))
	}
	bus.Publish(partybus.Event{
		Type:   event.CLIScanCmdStarted,
		Source: sources,
		Value:  progress.StagedProgressable(prog),
	})

	result := deployflow.Scan(rules, artifacts)
	prog.Add(int64(len(artifacts)))
	prog.SetCompleted()

	argv := append([]string{"deployflow", "scan"}, args...)
	response := deployflow.NewResponse(argv, ruleSource, order, result)

	if !globalConfig.Quiet {
		if err := OutputResult(response, globalConfig.OutputFormat, globalConfig.OutputFile); err != nil {
			HandleError(fmt.Errorf("failed to output result: %w", err), globalConfig.Quiet)
			return err
		}
	}
	bus.Notify(fmt.Sprintf("scan status: %s", result.Status))
	bus.Exit()

	return handleExitCode(result, strict)
}

// collectArtifacts builds the artifact set from the scan flags, preserving
// the kind order artifacts were declared in.
func collectArtifacts(cmd *cobra.Command) (deployflow.ArtifactSet, []deployflow.ArtifactKind, error) {
	flags := []struct {
		name string
		kind deployflow.ArtifactKind
	}{
		{"build-file", deployflow.ArtifactBuildFile},
		{"compose-file", deployflow.ArtifactComposeFile},
		{"manifest", deployflow.ArtifactManifest},
	}

	artifacts := make(deployflow.ArtifactSet)
	order := make([]deployflow.ArtifactKind, 0, len(flags))
	for _, f := range flags {
		path, _ := cmd.Flags().GetString(f.name)
		if path == "" {
			continue
		}
		content, err := readArtifactFile(path)
		if err != nil {
			return nil, nil, err
		}
		artifacts[f.kind] = content
		order = append(order, f.kind)
	}
	return artifacts, order, nil
}

// handleExitCode determines the appropriate exit code
func handleExitCode(result deployflow.ScanResult, strict bool) error {
	switch result.Status {
	case deployflow.StatusBlocked:
		os.Exit(exitGateFailed)
	case deployflow.StatusReviewRequired:
		if strict {
			os.Exit(exitGateFailed)
		}
	}
	return nil
}
