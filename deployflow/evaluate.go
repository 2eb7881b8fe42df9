package deployflow

import "strings"

// Evaluate runs every rule against every applicable artifact present in the
// set and returns the findings in rule-declaration order, with ties within a
// rule resolved by the order the rule's applicability list names artifact
// kinds. Each (rule, artifact) pair yields at most one finding. The result is
// deterministic for identical inputs.
//
// Evaluate is a pure function: it takes immutable inputs, holds no state
// across calls, and is safe to run from concurrent goroutines sharing one
// rule set.
func Evaluate(rules Rules, artifacts ArtifactSet) []Finding {
	findings := make([]Finding, 0)
	for _, rule := range rules {
		for _, kind := range rule.AppliesTo {
			content, present := artifacts[kind]
			if !present {
				// an absent artifact is never a violation by omission
				continue
			}
			if finding, triggered := evaluateRule(rule, kind, content); triggered {
				findings = append(findings, finding)
			}
		}
	}
	return findings
}

func evaluateRule(rule Rule, kind ArtifactKind, content string) (Finding, bool) {
	switch rule.Kind {
	case CheckPattern:
		return evaluatePattern(rule, kind, content)
	case CheckLogic:
		return evaluateLogic(rule, kind, content)
	}
	return Finding{}, false
}

// evaluatePattern scans line by line in document order and triggers on the
// first line any of the rule's alternatives matches. One finding per rule per
// artifact keeps a single violated rule from flooding the output.
func evaluatePattern(rule Rule, kind ArtifactKind, content string) (Finding, bool) {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		for _, re := range rule.Patterns {
			if re.MatchString(line) {
				return newFinding(rule, kind, i+1, strings.TrimSpace(line)), true
			}
		}
	}
	return Finding{}, false
}

// evaluateLogic runs the rule's predicate over the whole artifact text. The
// properties being checked are existential over the artifact, so no line
// number is attributable.
func evaluateLogic(rule Rule, kind ArtifactKind, content string) (Finding, bool) {
	check, ok := predicates[rule.Predicate]
	if !ok {
		// unreachable for loaded rule sets; unknown predicates are rejected
		// at load time
		return Finding{}, false
	}
	if !check(content) {
		return Finding{}, false
	}
	return newFinding(rule, kind, 0, ""), true
}

func newFinding(rule Rule, kind ArtifactKind, line int, matched string) Finding {
	fix := rule.Fix
	if fix == "" {
		fix = FixFor(rule.ID)
	}
	return Finding{
		RuleID:   rule.ID,
		Severity: rule.Severity,
		Message:  rule.Message,
		Location: kind,
		Line:     line,
		Matched:  matched,
		Fix:      fix,
	}
}
