package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/gookit/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Aatka-Saleem/DeployFlow/deployflow"
	"github.com/Aatka-Saleem/DeployFlow/internal/bus"
	"github.com/Aatka-Saleem/DeployFlow/internal/redact"
)

// Output handles different output formats for scan results
type Output struct{}

// NewOutput creates a new Output instance
func NewOutput() *Output {
	return &Output{}
}

// OutputJSON outputs the result as JSON
func (o *Output) OutputJSON(result *deployflow.Response, outputFile string) error {
	var writer = os.Stdout

	if outputFile != "" {
		// #nosec G304 - outputFile is controlled by user via CLI flag
		file, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file %s: %w", outputFile, err)
		}
		defer func() {
			if err := file.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close output file: %v\n", err)
			}
		}()
		writer = file
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return err
	}

	jsonData, err := json.Marshal(result)
	if err != nil {
		return err
	}
	bus.Report(string(jsonData))
	return nil
}

// OutputTable outputs the scan verdict as a formatted report
func (o *Output) OutputTable(result *deployflow.Response) error {
	scan := result.Run.Result

	fmt.Printf("Status: %s\n", formatStatus(scan.Status))
	fmt.Printf("Risk score: %s\n", formatScore(scan.RiskScore))
	fmt.Println()

	fmt.Println("Summary:")
	fmt.Printf("  Total issues: %d\n", scan.TotalIssues)
	if scan.Critical > 0 {
		fmt.Printf("  Critical: %d\n", scan.Critical)
	}
	if scan.High > 0 {
		fmt.Printf("  High: %d\n", scan.High)
	}
	if scan.Medium > 0 {
		fmt.Printf("  Medium: %d\n", scan.Medium)
	}
	if scan.Low > 0 {
		fmt.Printf("  Low: %d\n", scan.Low)
	}
	fmt.Println()

	if len(scan.Issues) > 0 {
		if err := o.printIssueTable(scan.Issues); err != nil {
			return err
		}
		fmt.Println()
	}

	o.printCompliance(scan.Compliance)
	o.printRecommendations(scan.Recommendations)
	return nil
}

// printIssueTable prints findings in a borderless table
func (o *Output) printIssueTable(issues []deployflow.Finding) error {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)

	t.Style().Options.SeparateHeader = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateFooter = false
	t.Style().Options.SeparateRows = false

	t.AppendHeader(table.Row{"SEVERITY", "RULE", "LOCATION", "LINE", "DETAIL"})

	for _, issue := range issues {
		line := ""
		if issue.Line > 0 {
			line = strconv.Itoa(issue.Line)
		}
		detail := issue.Message
		if issue.Matched != "" {
			// snippets may carry the flagged secret itself
			detail += " [" + redact.Apply(issue.Matched) + "]"
		}
		t.AppendRow(table.Row{
			formatSeverity(issue.Severity),
			issue.RuleID,
			issue.Location,
			line,
			detail,
		})
	}

	t.Render()
	return nil
}

func (o *Output) printCompliance(compliance deployflow.Compliance) {
	if compliance.ProductionReady {
		fmt.Printf("%s Production ready\n", color.Green.Sprint("✓"))
		return
	}
	fmt.Printf("%s Not production ready\n", color.Red.Sprint("✗"))
	for _, req := range compliance.MissingRequirements {
		fmt.Printf("  - %s\n", req)
	}
}

func (o *Output) printRecommendations(recommendations []string) {
	if len(recommendations) == 0 {
		return
	}
	fmt.Println("\nRecommendations:")
	for _, rec := range recommendations {
		fmt.Printf("  • %s\n", rec)
	}
}

// formatStatus formats the gating status with colors
func formatStatus(status deployflow.Status) string {
	switch status {
	case deployflow.StatusApproved:
		return color.Green.Sprint("✓ APPROVED")
	case deployflow.StatusReviewRequired:
		return color.Yellow.Sprint("! REVIEW REQUIRED")
	case deployflow.StatusBlocked:
		return color.Red.Sprint("✗ BLOCKED")
	default:
		return string(status)
	}
}

func formatScore(score int) string {
	text := fmt.Sprintf("%d/100", score)
	switch {
	case score >= 50:
		return color.Red.Sprint(text)
	case score > 0:
		return color.Yellow.Sprint(text)
	default:
		return color.Green.Sprint(text)
	}
}

func formatSeverity(severity deployflow.Severity) string {
	switch severity {
	case deployflow.SeverityCritical:
		return color.Red.Sprint(severity)
	case deployflow.SeverityHigh:
		return color.Yellow.Sprint(severity)
	default:
		return string(severity)
	}
}
