package command

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// Rules creates the rules command, which lists the active rule set.
func Rules() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the rules of the active rule set",
		RunE:  runRules,
	}
}

func runRules(cmd *cobra.Command, args []string) error {
	globalConfig := GetGlobalConfig(cmd)

	rules, ruleSource, err := LoadRules(globalConfig)
	if err != nil {
		HandleError(err, globalConfig.Quiet)
		return err
	}

	fmt.Printf("Rule set: %s (%d rules)\n\n", ruleSource, len(rules))

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.Style().Options.SeparateHeader = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateFooter = false
	t.Style().Options.SeparateRows = false

	t.AppendHeader(table.Row{"ID", "SEVERITY", "KIND", "APPLIES TO", "MESSAGE"})
	for _, rule := range rules {
		kinds := make([]string, 0, len(rule.AppliesTo))
		for _, k := range rule.AppliesTo {
			kinds = append(kinds, string(k))
		}
		t.AppendRow(table.Row{
			rule.ID,
			rule.Severity,
			rule.Kind,
			strings.Join(kinds, ", "),
			rule.Message,
		})
	}
	t.Render()
	return nil
}
