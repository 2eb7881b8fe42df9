package deployflow

// Status is the deployment gating decision derived from a scan.
type Status string

const (
	// StatusBlocked means at least one critical finding exists; deployment
	// must not proceed. Takes precedence over any score computation.
	StatusBlocked Status = "BLOCKED"
	// StatusReviewRequired means the findings warrant a human look before
	// deploying.
	StatusReviewRequired Status = "REVIEW_REQUIRED"
	// StatusApproved means the scan found nothing gate-worthy.
	StatusApproved Status = "APPROVED"
)

// Policy constants for risk scoring and gating. The weights are strictly
// decreasing across severities and the score is clamped to maxRiskScore.
const (
	weightCritical = 25
	weightHigh     = 10
	weightMedium   = 5
	weightLow      = 2

	maxRiskScore    = 100
	reviewThreshold = 40
)

// ScanResult is the aggregate output of a scan. It is built once from the
// findings list and never mutated afterward.
type ScanResult struct {
	Status          Status     `json:"status" yaml:"status"`
	TotalIssues     int        `json:"total_issues" yaml:"total_issues"`
	Critical        int        `json:"critical" yaml:"critical"`
	High            int        `json:"high" yaml:"high"`
	Medium          int        `json:"medium" yaml:"medium"`
	Low             int        `json:"low" yaml:"low"`
	RiskScore       int        `json:"risk_score" yaml:"risk_score"`
	Issues          []Finding  `json:"issues" yaml:"issues"`
	Compliance      Compliance `json:"compliance" yaml:"compliance"`
	Recommendations []string   `json:"recommendations" yaml:"recommendations"`
}

// Compliance reports production readiness.
type Compliance struct {
	ProductionReady     bool     `json:"production_ready" yaml:"production_ready"`
	MissingRequirements []string `json:"missing_requirements" yaml:"missing_requirements"`
}

// productionRequirement ties a named readiness requirement to the rule whose
// finding marks it unmet.
type productionRequirement struct {
	name   string
	ruleID string
}

var productionRequirements = []productionRequirement{
	{"Non-root user present", RuleMissingNonrootUser},
	{"No unpinned base image", RuleLatestTag},
	{"Resource limits present", RuleMissingResourceLimits},
	{"Security context hardened", RuleNoSecurityContext},
	{"No hardcoded secrets", RuleHardcodedSecrets},
}

// AffirmativeRecommendation is the single entry returned when a scan finds
// nothing to recommend against.
const AffirmativeRecommendation = "Configuration follows security best practices"

// Scan is the full pipeline over an immutable rule set and artifact set:
// evaluate, then aggregate into a gating verdict.
func Scan(rules Rules, artifacts ArtifactSet) ScanResult {
	return Aggregate(Evaluate(rules, artifacts))
}

// Aggregate reduces an ordered findings list to a ScanResult: per-severity
// tallies, a clamped risk score, the gating status, the production-readiness
// checklist, and recommendations.
func Aggregate(findings []Finding) ScanResult {
	result := ScanResult{
		TotalIssues: len(findings),
		Issues:      findings,
	}
	if result.Issues == nil {
		result.Issues = []Finding{}
	}

	for _, f := range findings {
		switch f.Severity {
		case SeverityCritical:
			result.Critical++
		case SeverityHigh:
			result.High++
		case SeverityMedium:
			result.Medium++
		case SeverityLow:
			result.Low++
		}
	}

	score := result.Critical*weightCritical +
		result.High*weightHigh +
		result.Medium*weightMedium +
		result.Low*weightLow
	if score > maxRiskScore {
		score = maxRiskScore
	}
	result.RiskScore = score

	// a single critical always blocks, no matter how low the score
	switch {
	case result.Critical > 0:
		result.Status = StatusBlocked
	case result.High > 0 || score > reviewThreshold:
		result.Status = StatusReviewRequired
	default:
		result.Status = StatusApproved
	}

	missing := make([]string, 0)
	for _, req := range productionRequirements {
		if hasFindingForRule(findings, req.ruleID) {
			missing = append(missing, req.name)
		}
	}
	result.Compliance = Compliance{
		// criticals outside the checklist still veto readiness
		ProductionReady:     len(missing) == 0 && result.Critical == 0,
		MissingRequirements: missing,
	}

	result.Recommendations = recommendations(findings, result.Critical)
	return result
}

func hasFindingForRule(findings []Finding, ruleID string) bool {
	for _, f := range findings {
		if f.RuleID == ruleID {
			return true
		}
	}
	return false
}

func recommendations(findings []Finding, criticalCount int) []string {
	if len(findings) == 0 {
		return []string{AffirmativeRecommendation}
	}

	recs := make([]string, 0)
	if criticalCount > 0 {
		recs = append(recs, "Critical issues must be fixed before deployment")
	}

	// ordered by rule category so output is deterministic
	byRule := []struct {
		ruleID string
		advice string
	}{
		{RuleMissingNonrootUser, "Add a non-root user to the container build file"},
		{RuleLatestTag, "Use specific version tags instead of :latest"},
		{RuleMissingResourceLimits, "Set resource limits to prevent resource exhaustion"},
		{RuleNoSecurityContext, "Configure a security context with runAsNonRoot: true"},
		{RuleMissingHealthcheck, "Add health checks for better reliability"},
	}
	for _, r := range byRule {
		if hasFindingForRule(findings, r.ruleID) {
			recs = append(recs, r.advice)
		}
	}

	if len(recs) == 0 {
		recs = append(recs, "Review the reported findings and apply the suggested fixes")
	}
	return recs
}
