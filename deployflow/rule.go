package deployflow

import "regexp"

// Rules is an ordered rule set. Document order is load-bearing: it decides
// the order findings are emitted in.
type Rules []Rule

// CheckKind selects how a rule decides whether it is triggered.
type CheckKind string

const (
	// CheckPattern searches artifact text line by line for a regular expression.
	CheckPattern CheckKind = "pattern"
	// CheckLogic evaluates a named predicate against the whole artifact text.
	CheckLogic CheckKind = "logic"
)

// Rule is a single security or production-readiness policy check.
// Exactly one of Patterns or Predicate is set, according to Kind.
type Rule struct {
	// ID is the stable identifier, unique within a rule set.
	ID string
	// Severity of any finding this rule produces.
	Severity Severity
	// Message describes the violation to a human.
	Message string
	// Kind is the check kind: pattern or logic.
	Kind CheckKind
	// Patterns holds compiled alternatives for pattern rules. The first
	// matching alternative on the first matching line wins.
	Patterns []*regexp.Regexp
	// Predicate names the structural check for logic rules.
	Predicate PredicateName
	// AppliesTo lists the artifact kinds this rule is evaluated against,
	// in evaluation order. Never empty.
	AppliesTo []ArtifactKind
	// Fix is an optional remediation hint carried by the rule document.
	// When empty, FixFor supplies the advisory text.
	Fix string
}

// AppliesToKind reports whether the rule covers the given artifact kind.
func (r Rule) AppliesToKind(kind ArtifactKind) bool {
	for _, k := range r.AppliesTo {
		if k == kind {
			return true
		}
	}
	return false
}
