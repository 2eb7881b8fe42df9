package deployflow

import "regexp"

// Identifiers of the built-in rules. The production-readiness checklist and
// the fix advisory table key off these.
const (
	RuleHardcodedSecrets      = "hardcoded_secrets"
	RuleMissingNonrootUser    = "missing_nonroot_user"
	RulePrivilegeEscalation   = "privilege_escalation"
	RuleLatestTag             = "latest_tag"
	RuleMissingResourceLimits = "missing_resource_limits"
	RuleNoSecurityContext     = "no_security_context"
	RuleExposedSensitivePorts = "exposed_sensitive_ports"
	RuleMissingHealthcheck    = "missing_healthcheck"
	RuleWritableFilesystem    = "writable_filesystem"
	RuleLargeBaseImage        = "large_base_image"
)

func mustPattern(exprs ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		patterns = append(patterns, regexp.MustCompile("(?i)"+expr))
	}
	return patterns
}

// DefaultRuleSet returns the built-in rule set used when no rule document is
// supplied. Declaration order here is the finding emission order.
func DefaultRuleSet() Rules {
	return Rules{
		{
			ID:       RuleHardcodedSecrets,
			Severity: SeverityCritical,
			Message:  "Hardcoded secrets detected. Use environment variables or secrets management.",
			Kind:     CheckPattern,
			Patterns: mustPattern(`(PASSWORD|API_KEY|SECRET|TOKEN)\s*[:=]\s*['"]?[\w-]{4,}`),
			AppliesTo: []ArtifactKind{
				ArtifactBuildFile, ArtifactComposeFile, ArtifactManifest,
			},
		},
		{
			ID:        RuleMissingNonrootUser,
			Severity:  SeverityCritical,
			Message:   "No non-root user declared; container runs as root.",
			Kind:      CheckLogic,
			Predicate: PredicateMissingNonrootUser,
			AppliesTo: []ArtifactKind{ArtifactBuildFile},
		},
		{
			ID:        RulePrivilegeEscalation,
			Severity:  SeverityCritical,
			Message:   "Privilege escalation is enabled.",
			Kind:      CheckLogic,
			Predicate: PredicatePrivilegeEscalation,
			AppliesTo: []ArtifactKind{ArtifactManifest},
		},
		{
			ID:        RuleLatestTag,
			Severity:  SeverityHigh,
			Message:   "Using :latest tag - pin a specific image version.",
			Kind:      CheckPattern,
			Patterns:  mustPattern(`FROM\s+[\w./-]+:latest\b`),
			AppliesTo: []ArtifactKind{ArtifactBuildFile},
		},
		{
			ID:        RuleMissingResourceLimits,
			Severity:  SeverityHigh,
			Message:   "No resource limits defined.",
			Kind:      CheckLogic,
			Predicate: PredicateMissingResourceLimits,
			AppliesTo: []ArtifactKind{ArtifactManifest},
		},
		{
			ID:        RuleNoSecurityContext,
			Severity:  SeverityHigh,
			Message:   "runAsNonRoot is not set to true.",
			Kind:      CheckLogic,
			Predicate: PredicateMissingSecurityContext,
			AppliesTo: []ArtifactKind{ArtifactManifest},
		},
		{
			ID:        RuleExposedSensitivePorts,
			Severity:  SeverityHigh,
			Message:   "Sensitive ports (SSH or database) exposed.",
			Kind:      CheckPattern,
			Patterns:  mustPattern(`EXPOSE\s+(22|3306|5432|27017|6379)\b`),
			AppliesTo: []ArtifactKind{ArtifactBuildFile},
		},
		{
			ID:        RuleMissingHealthcheck,
			Severity:  SeverityMedium,
			Message:   "No health checks configured.",
			Kind:      CheckLogic,
			Predicate: PredicateMissingHealthcheck,
			AppliesTo: []ArtifactKind{ArtifactBuildFile, ArtifactManifest},
		},
		{
			ID:        RuleWritableFilesystem,
			Severity:  SeverityMedium,
			Message:   "Root filesystem is writable.",
			Kind:      CheckPattern,
			Patterns:  mustPattern(`readOnlyRootFilesystem\s*:\s*false`),
			AppliesTo: []ArtifactKind{ArtifactManifest},
		},
		{
			ID:        RuleLargeBaseImage,
			Severity:  SeverityLow,
			Message:   "Using a full base image instead of a slim or alpine variant.",
			Kind:      CheckPattern,
			Patterns:  mustPattern(`FROM\s+(python|node):[\d.]+\s*$`),
			AppliesTo: []ArtifactKind{ArtifactBuildFile},
		},
	}
}
