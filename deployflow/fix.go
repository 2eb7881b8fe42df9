package deployflow

// GenericFix is the advisory returned for rule identifiers without a curated
// suggestion. Fix text is advisory, not safety-critical: a missing suggestion
// never blocks a scan from completing.
const GenericFix = "Review the finding and apply the recommended fix."

var fixAdvisories = map[string]string{
	RuleHardcodedSecrets:      "Pass secrets via environment variables or a secrets manager at runtime.",
	RuleMissingNonrootUser:    "Add a non-root user: RUN useradd -m appuser && USER appuser",
	RulePrivilegeEscalation:   "Set allowPrivilegeEscalation: false in the container securityContext.",
	RuleLatestTag:             "Pin the base image to a specific version, e.g. FROM python:3.11-slim.",
	RuleMissingResourceLimits: "Add CPU and memory limits under the resources section.",
	RuleNoSecurityContext:     "Add runAsNonRoot: true to the pod securityContext.",
	RuleExposedSensitivePorts: "Remove EXPOSE for database and SSH ports; reach them over an internal network.",
	RuleMissingHealthcheck:    "Add a HEALTHCHECK instruction or a liveness probe.",
	RuleWritableFilesystem:    "Set readOnlyRootFilesystem: true where the workload allows it.",
	RuleLargeBaseImage:        "Use a slim or alpine base image variant.",
}

// FixFor maps a rule identifier to its remediation advisory. It is total over
// the identifier space: unknown identifiers map to GenericFix rather than
// failing.
func FixFor(ruleID string) string {
	if fix, ok := fixAdvisories[ruleID]; ok {
		return fix
	}
	return GenericFix
}
