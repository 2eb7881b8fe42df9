package deployflow

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultMessage = "Security issue detected."

// RuleSetError reports that a rule document could not be loaded: the source
// was unreadable, malformed, or a rule entry failed validation. When a load
// fails, no partial rule set is ever returned.
type RuleSetError struct {
	// Source describes where the rule document came from (usually a path).
	Source string
	// RuleID is the offending rule identifier, when one was parsed.
	RuleID string
	// Err is the underlying cause.
	Err error
}

func (e *RuleSetError) Error() string {
	if e.RuleID != "" {
		return fmt.Sprintf("rule set %s: rule %s: %v", e.Source, e.RuleID, e.Err)
	}
	return fmt.Sprintf("rule set %s: %v", e.Source, e.Err)
}

func (e *RuleSetError) Unwrap() error {
	return e.Err
}

// ruleEntry is the YAML shape of a single rule in the rule document.
type ruleEntry struct {
	ID        string   `yaml:"id"`
	Severity  string   `yaml:"severity"`
	Message   string   `yaml:"message"`
	Kind      string   `yaml:"kind"`
	Pattern   string   `yaml:"pattern"`
	Patterns  []string `yaml:"patterns"`
	Predicate string   `yaml:"predicate"`
	AppliesTo []string `yaml:"applies_to"`
	Fix       string   `yaml:"fix"`
}

type ruleDocument struct {
	Rules []ruleEntry `yaml:"rules"`
}

// LoadRuleSetFromFile loads and validates a YAML rule document from disk.
func LoadRuleSetFromFile(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &RuleSetError{Source: path, Err: err}
	}
	return LoadRuleSet(path, data)
}

// LoadRuleSetFromReader loads and validates a YAML rule document from a reader.
// The source string is only used in error messages.
func LoadRuleSetFromReader(source string, r io.Reader) (Rules, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &RuleSetError{Source: source, Err: err}
	}
	return LoadRuleSet(source, data)
}

// LoadRuleSet parses a YAML rule document and validates every entry. The
// document order of the rules is preserved; it becomes the order findings are
// emitted in downstream. Any validation failure aborts the whole load.
func LoadRuleSet(source string, data []byte) (Rules, error) {
	var doc ruleDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &RuleSetError{Source: source, Err: fmt.Errorf("malformed rule document: %w", err)}
	}
	if len(doc.Rules) == 0 {
		return nil, &RuleSetError{Source: source, Err: fmt.Errorf("rule document contains no rules")}
	}

	rules := make(Rules, 0, len(doc.Rules))
	seen := make(map[string]struct{}, len(doc.Rules))
	for i, entry := range doc.Rules {
		rule, err := buildRule(entry)
		if err != nil {
			id := entry.ID
			if id == "" {
				id = fmt.Sprintf("#%d", i+1)
			}
			return nil, &RuleSetError{Source: source, RuleID: id, Err: err}
		}
		if _, dup := seen[rule.ID]; dup {
			return nil, &RuleSetError{Source: source, RuleID: rule.ID, Err: fmt.Errorf("duplicate rule identifier")}
		}
		seen[rule.ID] = struct{}{}
		rules = append(rules, rule)
	}
	return rules, nil
}

func buildRule(entry ruleEntry) (Rule, error) {
	if entry.ID == "" {
		return Rule{}, fmt.Errorf("missing required field: id")
	}
	if entry.Severity == "" {
		return Rule{}, fmt.Errorf("missing required field: severity")
	}
	severity, err := ParseSeverity(entry.Severity)
	if err != nil {
		return Rule{}, err
	}
	if len(entry.AppliesTo) == 0 {
		return Rule{}, fmt.Errorf("missing required field: applies_to")
	}
	appliesTo := make([]ArtifactKind, 0, len(entry.AppliesTo))
	for _, kind := range entry.AppliesTo {
		if strings.TrimSpace(kind) == "" {
			return Rule{}, fmt.Errorf("applies_to entries must be non-empty")
		}
		appliesTo = append(appliesTo, ArtifactKind(kind))
	}

	message := entry.Message
	if message == "" {
		message = defaultMessage
	}

	rule := Rule{
		ID:        entry.ID,
		Severity:  severity,
		Message:   message,
		AppliesTo: appliesTo,
		Fix:       entry.Fix,
	}

	switch CheckKind(strings.ToLower(entry.Kind)) {
	case CheckPattern:
		if entry.Predicate != "" {
			return Rule{}, fmt.Errorf("pattern rule must not name a predicate")
		}
		expressions := entry.Patterns
		if entry.Pattern != "" {
			expressions = append([]string{entry.Pattern}, expressions...)
		}
		if len(expressions) == 0 {
			return Rule{}, fmt.Errorf("missing required field: pattern")
		}
		rule.Kind = CheckPattern
		rule.Patterns = make([]*regexp.Regexp, 0, len(expressions))
		for _, expr := range expressions {
			// matches are case-insensitive regardless of how the
			// expression was written
			re, err := regexp.Compile("(?i)" + expr)
			if err != nil {
				return Rule{}, fmt.Errorf("invalid pattern %q: %w", expr, err)
			}
			rule.Patterns = append(rule.Patterns, re)
		}
	case CheckLogic:
		if entry.Pattern != "" || len(entry.Patterns) > 0 {
			return Rule{}, fmt.Errorf("logic rule must not carry patterns")
		}
		if entry.Predicate == "" {
			return Rule{}, fmt.Errorf("missing required field: predicate")
		}
		name := PredicateName(entry.Predicate)
		if !KnownPredicate(name) {
			return Rule{}, fmt.Errorf("unknown predicate %q", entry.Predicate)
		}
		rule.Kind = CheckLogic
		rule.Predicate = name
	case "":
		return Rule{}, fmt.Errorf("missing required field: kind")
	default:
		return Rule{}, fmt.Errorf("invalid check kind %q (expected pattern or logic)", entry.Kind)
	}

	return rule, nil
}
