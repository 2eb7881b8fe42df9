package deployflow

import "testing"

func Test_missingNonrootUser(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{
			name:    "no user declared at all",
			content: "FROM python:3.11-slim\nWORKDIR /app\nCMD [\"app\"]",
			want:    true,
		},
		{
			name:    "only root declared by name",
			content: "FROM debian:12\nUSER root\n",
			want:    true,
		},
		{
			name:    "only root declared by uid",
			content: "FROM debian:12\nUSER 0\n",
			want:    true,
		},
		{
			name:    "named non-root user satisfies the check",
			content: "FROM debian:12\nRUN useradd -m appuser\nUSER appuser\n",
			want:    false,
		},
		{
			name:    "numeric non-root uid satisfies the check",
			content: "FROM debian:12\nUSER 1001\n",
			want:    false,
		},
		{
			name:    "user and group form is matched on the user half",
			content: "FROM debian:12\nUSER appuser:appgroup\n",
			want:    false,
		},
		{
			name:    "root with group is still root",
			content: "FROM debian:12\nUSER root:root\n",
			want:    true,
		},
		{
			name:    "lowercase instruction still counts",
			content: "from debian:12\nuser appuser\n",
			want:    false,
		},
		{
			name:    "non-root user after root wins",
			content: "FROM debian:12\nUSER root\nRUN apt-get update\nUSER appuser\n",
			want:    false,
		},
		{
			name:    "empty artifact has no user",
			content: "",
			want:    true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := missingNonrootUser(tc.content); got != tc.want {
				t.Errorf("missingNonrootUser() = %v, want %v", got, tc.want)
			}
		})
	}
}

func Test_missingHealthcheck(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{
			name:    "no health check declared",
			content: "FROM nginx:1.25\nEXPOSE 80\n",
			want:    true,
		},
		{
			name:    "HEALTHCHECK instruction satisfies the check",
			content: "FROM nginx:1.25\nHEALTHCHECK CMD curl -f http://localhost/ || exit 1\n",
			want:    false,
		},
		{
			name:    "liveness probe satisfies the check for manifests",
			content: "containers:\n- name: app\n  livenessProbe:\n    httpGet:\n      path: /health\n",
			want:    false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := missingHealthcheck(tc.content); got != tc.want {
				t.Errorf("missingHealthcheck() = %v, want %v", got, tc.want)
			}
		})
	}
}

func Test_missingResourceLimits(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{
			name:    "no limits section",
			content: "resources:\n  requests:\n    cpu: 100m\n",
			want:    true,
		},
		{
			name:    "limits section present",
			content: "resources:\n  limits:\n    cpu: \"1\"\n    memory: 1Gi\n",
			want:    false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := missingResourceLimits(tc.content); got != tc.want {
				t.Errorf("missingResourceLimits() = %v, want %v", got, tc.want)
			}
		})
	}
}

func Test_privilegeEscalationEnabled(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{
			name:    "explicitly enabled triggers",
			content: "securityContext:\n  allowPrivilegeEscalation: true\n",
			want:    true,
		},
		{
			name:    "explicitly disabled does not trigger",
			content: "securityContext:\n  allowPrivilegeEscalation: false\n",
			want:    false,
		},
		{
			name:    "absence does not trigger",
			content: "securityContext:\n  runAsNonRoot: true\n",
			want:    false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := privilegeEscalationEnabled(tc.content); got != tc.want {
				t.Errorf("privilegeEscalationEnabled() = %v, want %v", got, tc.want)
			}
		})
	}
}

func Test_missingSecurityContext(t *testing.T) {
	if !missingSecurityContext("spec:\n  containers: []\n") {
		t.Error("expected trigger when runAsNonRoot is absent")
	}
	if missingSecurityContext("securityContext:\n  runAsNonRoot: true\n") {
		t.Error("expected no trigger when runAsNonRoot is true")
	}
}

func Test_KnownPredicate(t *testing.T) {
	for _, name := range []PredicateName{
		PredicateMissingNonrootUser,
		PredicateMissingHealthcheck,
		PredicateMissingResourceLimits,
		PredicatePrivilegeEscalation,
		PredicateMissingSecurityContext,
	} {
		if !KnownPredicate(name) {
			t.Errorf("expected %q to be a known predicate", name)
		}
	}
	if KnownPredicate("checks_nothing") {
		t.Error("expected unknown predicate to be rejected")
	}
}
