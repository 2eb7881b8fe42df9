package deployflow

import (
	"fmt"
	"strings"
)

// Severity classifies how badly a triggered rule compromises a deployment.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
)

// Severities lists all valid severities in decreasing order of impact.
var Severities = []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

// ParseSeverity parses a severity string case-insensitively. Values outside
// the closed CRITICAL/HIGH/MEDIUM/LOW set are an error, never coerced.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CRITICAL":
		return SeverityCritical, nil
	case "HIGH":
		return SeverityHigh, nil
	case "MEDIUM":
		return SeverityMedium, nil
	case "LOW":
		return SeverityLow, nil
	default:
		return "", fmt.Errorf("invalid severity %q (expected one of CRITICAL, HIGH, MEDIUM, LOW)", s)
	}
}

func (s Severity) String() string {
	return string(s)
}

// Rank returns an integer rank for ordering (CRITICAL=4 ... LOW=1, unknown=0).
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}
