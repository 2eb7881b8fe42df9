package deployflow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validRuleDoc = `
rules:
  - id: hardcoded_secrets
    severity: CRITICAL
    message: Hardcoded secrets detected.
    kind: pattern
    pattern: (PASSWORD|API_KEY|SECRET|TOKEN)\s*=\s*\S+
    applies_to: [build-file, compose-file]
    fix: Use environment variables.
  - id: missing_nonroot_user
    severity: CRITICAL
    message: Container runs as root.
    kind: logic
    predicate: missing_nonroot_user
    applies_to: [build-file]
`

func Test_LoadRuleSet(t *testing.T) {
	rules, err := LoadRuleSet("test", []byte(validRuleDoc))
	require.NoError(t, err)
	require.Len(t, rules, 2)

	// document order is preserved
	assert.Equal(t, "hardcoded_secrets", rules[0].ID)
	assert.Equal(t, "missing_nonroot_user", rules[1].ID)

	assert.Equal(t, CheckPattern, rules[0].Kind)
	assert.Equal(t, SeverityCritical, rules[0].Severity)
	assert.Equal(t, []ArtifactKind{ArtifactBuildFile, ArtifactComposeFile}, rules[0].AppliesTo)
	assert.Equal(t, "Use environment variables.", rules[0].Fix)
	require.Len(t, rules[0].Patterns, 1)

	assert.Equal(t, CheckLogic, rules[1].Kind)
	assert.Equal(t, PredicateMissingNonrootUser, rules[1].Predicate)
}

func Test_LoadRuleSet_patternsAreCaseInsensitive(t *testing.T) {
	doc := `
rules:
  - id: latest_tag
    severity: HIGH
    kind: pattern
    pattern: FROM\s+\S+:latest
    applies_to: [build-file]
`
	rules, err := LoadRuleSet("test", []byte(doc))
	require.NoError(t, err)
	assert.True(t, rules[0].Patterns[0].MatchString("from python:latest"))
}

func Test_LoadRuleSet_errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "malformed yaml",
			doc:  "rules: [",
		},
		{
			name: "empty document",
			doc:  "rules: []",
		},
		{
			name: "missing id",
			doc: `
rules:
  - severity: HIGH
    kind: pattern
    pattern: foo
    applies_to: [build-file]
`,
		},
		{
			name: "missing severity",
			doc: `
rules:
  - id: some_rule
    kind: pattern
    pattern: foo
    applies_to: [build-file]
`,
		},
		{
			name: "severity outside the closed set",
			doc: `
rules:
  - id: some_rule
    severity: SEVERE
    kind: pattern
    pattern: foo
    applies_to: [build-file]
`,
		},
		{
			name: "missing kind",
			doc: `
rules:
  - id: some_rule
    severity: HIGH
    pattern: foo
    applies_to: [build-file]
`,
		},
		{
			name: "invalid kind",
			doc: `
rules:
  - id: some_rule
    severity: HIGH
    kind: structural
    pattern: foo
    applies_to: [build-file]
`,
		},
		{
			name: "pattern rule without pattern",
			doc: `
rules:
  - id: some_rule
    severity: HIGH
    kind: pattern
    applies_to: [build-file]
`,
		},
		{
			name: "pattern rule with invalid regular expression",
			doc: `
rules:
  - id: some_rule
    severity: HIGH
    kind: pattern
    pattern: "["
    applies_to: [build-file]
`,
		},
		{
			name: "pattern rule naming a predicate",
			doc: `
rules:
  - id: some_rule
    severity: HIGH
    kind: pattern
    pattern: foo
    predicate: missing_healthcheck
    applies_to: [build-file]
`,
		},
		{
			name: "logic rule without predicate",
			doc: `
rules:
  - id: some_rule
    severity: HIGH
    kind: logic
    applies_to: [build-file]
`,
		},
		{
			name: "logic rule with unknown predicate fails at load, not at evaluation",
			doc: `
rules:
  - id: some_rule
    severity: HIGH
    kind: logic
    predicate: checks_nothing
    applies_to: [build-file]
`,
		},
		{
			name: "logic rule carrying patterns",
			doc: `
rules:
  - id: some_rule
    severity: HIGH
    kind: logic
    predicate: missing_healthcheck
    pattern: foo
    applies_to: [build-file]
`,
		},
		{
			name: "empty applicability set",
			doc: `
rules:
  - id: some_rule
    severity: HIGH
    kind: pattern
    pattern: foo
    applies_to: []
`,
		},
		{
			name: "duplicate rule identifier",
			doc: `
rules:
  - id: some_rule
    severity: HIGH
    kind: pattern
    pattern: foo
    applies_to: [build-file]
  - id: some_rule
    severity: LOW
    kind: pattern
    pattern: bar
    applies_to: [build-file]
`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rules, err := LoadRuleSet("test", []byte(tc.doc))
			require.Error(t, err)
			// no partial rule set is ever returned
			assert.Nil(t, rules)

			var rsErr *RuleSetError
			assert.True(t, errors.As(err, &rsErr), "expected a *RuleSetError, got %T", err)
		})
	}
}

func Test_LoadRuleSetFromFile_missing(t *testing.T) {
	rules, err := LoadRuleSetFromFile("testdata/does-not-exist.yaml")
	require.Error(t, err)
	assert.Nil(t, rules)

	var rsErr *RuleSetError
	require.True(t, errors.As(err, &rsErr))
	assert.Equal(t, "testdata/does-not-exist.yaml", rsErr.Source)
}

func Test_LoadRuleSetFromFile(t *testing.T) {
	rules, err := LoadRuleSetFromFile("testdata/rules.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, rules)
}

func Test_DefaultRuleSet_isValid(t *testing.T) {
	rules := DefaultRuleSet()
	require.NotEmpty(t, rules)

	seen := map[string]struct{}{}
	for _, rule := range rules {
		assert.NotEmpty(t, rule.ID)
		assert.NotEmpty(t, rule.AppliesTo, "rule %s has an empty applicability set", rule.ID)
		_, dup := seen[rule.ID]
		assert.False(t, dup, "duplicate rule id %s", rule.ID)
		seen[rule.ID] = struct{}{}

		switch rule.Kind {
		case CheckPattern:
			assert.NotEmpty(t, rule.Patterns, "pattern rule %s has no patterns", rule.ID)
			assert.Empty(t, rule.Predicate)
		case CheckLogic:
			assert.True(t, KnownPredicate(rule.Predicate), "rule %s names unknown predicate %q", rule.ID, rule.Predicate)
			assert.Empty(t, rule.Patterns)
		default:
			t.Errorf("rule %s has invalid kind %q", rule.ID, rule.Kind)
		}
	}
}
