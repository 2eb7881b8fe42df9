package deployflow

import (
	"regexp"
	"strings"
)

// PredicateName identifies a structural check a logic rule can run.
// Unrecognized names are rejected when the rule set is loaded; evaluation
// never sees a predicate it cannot run.
type PredicateName string

const (
	// PredicateMissingNonrootUser triggers when the artifact never declares a
	// non-root execution user, or explicitly declares root (by name or uid 0).
	PredicateMissingNonrootUser PredicateName = "missing_nonroot_user"
	// PredicateMissingHealthcheck triggers when no health-check construct is
	// declared. A liveness probe counts as a health check.
	PredicateMissingHealthcheck PredicateName = "missing_healthcheck"
	// PredicateMissingResourceLimits triggers when no upper-bound resource
	// constraint section is declared.
	PredicateMissingResourceLimits PredicateName = "missing_resource_limits"
	// PredicatePrivilegeEscalation triggers when the artifact explicitly
	// allows privilege escalation.
	PredicatePrivilegeEscalation PredicateName = "privilege_escalation_enabled"
	// PredicateMissingSecurityContext triggers when the artifact never opts
	// into running as a non-root user at the security context level.
	PredicateMissingSecurityContext PredicateName = "missing_security_context"
)

type predicateFunc func(content string) bool

var predicates = map[PredicateName]predicateFunc{
	PredicateMissingNonrootUser:     missingNonrootUser,
	PredicateMissingHealthcheck:     missingHealthcheck,
	PredicateMissingResourceLimits:  missingResourceLimits,
	PredicatePrivilegeEscalation:    privilegeEscalationEnabled,
	PredicateMissingSecurityContext: missingSecurityContext,
}

// KnownPredicate reports whether the engine implements the named predicate.
func KnownPredicate(name PredicateName) bool {
	_, ok := predicates[name]
	return ok
}

var (
	userDeclRe            = regexp.MustCompile(`(?im)^\s*USER\s+(\S+)`)
	healthcheckRe         = regexp.MustCompile(`(?i)HEALTHCHECK|livenessProbe`)
	resourceLimitsRe      = regexp.MustCompile(`(?im)^\s*limits\s*:`)
	privilegeEscalationRe = regexp.MustCompile(`(?i)allowPrivilegeEscalation\s*:\s*true`)
	runAsNonRootRe        = regexp.MustCompile(`(?i)runAsNonRoot\s*:\s*true`)
)

// missingNonrootUser is satisfied (does not trigger) only when some user
// declaration names a non-root user. A "user:group" form is matched on the
// user half; uid 0 counts as root.
func missingNonrootUser(content string) bool {
	for _, m := range userDeclRe.FindAllStringSubmatch(content, -1) {
		user := m[1]
		if i := strings.IndexByte(user, ':'); i >= 0 {
			user = user[:i]
		}
		if !strings.EqualFold(user, "root") && user != "0" {
			return false
		}
	}
	return true
}

func missingHealthcheck(content string) bool {
	return !healthcheckRe.MatchString(content)
}

func missingResourceLimits(content string) bool {
	return !resourceLimitsRe.MatchString(content)
}

func privilegeEscalationEnabled(content string) bool {
	return privilegeEscalationRe.MatchString(content)
}

func missingSecurityContext(content string) bool {
	return !runAsNonRootRe.MatchString(content)
}
