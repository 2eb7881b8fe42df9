// Package redact removes secret values from text before it leaves the
// scanner. Matched snippets for secret-bearing pattern rules can contain the
// very credential the rule flagged; everything user-facing goes through Apply.
package redact

import "regexp"

var secretAssignRe = regexp.MustCompile(`(?i)(\w*(?:PASSWORD|PASSWD|API_?KEY|SECRET|TOKEN|ACCESS_?KEY)\w*\s*[:=]\s*['"]?)[\w-]+`)

// Apply replaces secret assignment values in s with a fixed mask. Text
// without secret assignments passes through unchanged.
func Apply(s string) string {
	return secretAssignRe.ReplaceAllString(s, `${1}********`)
}
