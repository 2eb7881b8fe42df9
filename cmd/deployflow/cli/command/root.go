package command

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Aatka-Saleem/DeployFlow/cmd/deployflow/cli/internal"
	"github.com/Aatka-Saleem/DeployFlow/deployflow"
	"github.com/Aatka-Saleem/DeployFlow/internal/log"
	"github.com/anchore/go-logger"
	"github.com/anchore/go-logger/adapter/logrus"
)

const (
	formatJSON  = "json"
	formatTable = "table"

	// gating failures and rule set configuration problems exit distinctly
	exitGateFailed  = 1
	exitConfigError = 2
)

// GlobalConfig holds configuration that applies to all commands
type GlobalConfig struct {
	RulesFile    string
	OutputFormat string
	OutputFile   string
	Quiet        bool
	Verbose      bool
}

// GetGlobalConfig extracts global configuration from cobra command
func GetGlobalConfig(cmd *cobra.Command) *GlobalConfig {
	rulesFile, _ := cmd.Flags().GetString("rules")
	outputFormat, _ := cmd.Flags().GetString("output")
	outputFile, _ := cmd.Flags().GetString("output-file")
	quiet, _ := cmd.Flags().GetBool("quiet")
	verbose, _ := cmd.Flags().GetBool("verbose")

	return &GlobalConfig{
		RulesFile:    rulesFile,
		OutputFormat: outputFormat,
		OutputFile:   outputFile,
		Quiet:        quiet,
		Verbose:      verbose,
	}
}

// SetupLogging configures logging based on verbose flag
func SetupLogging(verbose bool) {
	var logLevel logger.Level
	if verbose {
		logLevel = logger.DebugLevel
	} else {
		logLevel = logger.WarnLevel
	}

	cfg := logrus.Config{
		EnableConsole: true,
		Level:         logLevel,
	}

	l, _ := logrus.New(cfg)
	log.Set(l)
}

// LoadRules loads the rule set named by the global config, falling back to
// the built-in rule set when no document path was given.
func LoadRules(config *GlobalConfig) (deployflow.Rules, string, error) {
	if config.RulesFile == "" {
		log.Debug("no rule document supplied, using the built-in rule set")
		return deployflow.DefaultRuleSet(), "builtin", nil
	}

	rules, err := deployflow.LoadRuleSetFromFile(config.RulesFile)
	if err != nil {
		return nil, "", err
	}
	log.Debugf("loaded %d rules from %s", len(rules), config.RulesFile)
	return rules, config.RulesFile, nil
}

// HandleError handles command errors consistently. Rule set errors are a
// scanner configuration problem and exit with a distinct code.
func HandleError(err error, quiet bool) {
	if err == nil {
		return
	}
	if !quiet {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	var rsErr *deployflow.RuleSetError
	if errors.As(err, &rsErr) {
		os.Exit(exitConfigError)
	}
}

// OutputResult outputs the result in the specified format
func OutputResult(result *deployflow.Response, format string, outputFile string) error {
	output := internal.NewOutput()

	// If output file is specified, always write JSON to file
	if outputFile != "" {
		if err := output.OutputJSON(result, outputFile); err != nil {
			return err
		}
	}

	switch format {
	case formatJSON:
		return output.OutputJSON(result, "")
	case formatTable:
		return output.OutputTable(result)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// readArtifactFile reads artifact text from a path, with "-" meaning stdin.
func readArtifactFile(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("unable to read artifact %q: %w", path, err)
	}
	return string(data), nil
}
