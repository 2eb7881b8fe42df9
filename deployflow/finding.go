package deployflow

// Finding is a single rule violation discovered in one artifact. Findings are
// created during evaluation and never mutated afterward.
type Finding struct {
	// RuleID references the rule that triggered.
	RuleID string `json:"rule" yaml:"rule"`
	// Severity is copied from the rule at evaluation time.
	Severity Severity `json:"severity" yaml:"severity"`
	// Message describes the violation.
	Message string `json:"message" yaml:"message"`
	// Location is the artifact kind the violation was found in.
	Location ArtifactKind `json:"location" yaml:"location"`
	// Line is the 1-based line number of the first match, when the trigger is
	// line-localizable (pattern rules only). Zero means no line information.
	Line int `json:"line,omitempty" yaml:"line,omitempty"`
	// Matched is the trimmed matching line, when one exists.
	Matched string `json:"matched,omitempty" yaml:"matched,omitempty"`
	// Fix is the remediation advisory for the rule.
	Fix string `json:"fix" yaml:"fix"`
}
