package deployflow

import "testing"

func Test_ParseSeverity(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Severity
		wantErr bool
	}{
		{
			name:  "uppercase value parses",
			input: "CRITICAL",
			want:  SeverityCritical,
		},
		{
			name:  "lowercase value parses",
			input: "high",
			want:  SeverityHigh,
		},
		{
			name:  "mixed case and padding parses",
			input: " Medium ",
			want:  SeverityMedium,
		},
		{
			name:  "low parses",
			input: "LOW",
			want:  SeverityLow,
		},
		{
			name:    "value outside the closed set is an error, not coerced",
			input:   "BLOCKER",
			wantErr: true,
		},
		{
			name:    "empty value is an error",
			input:   "",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseSeverity(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseSeverity(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseSeverity(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func Test_Severity_Rank(t *testing.T) {
	// ranks must be strictly decreasing across the severity order
	for i := 1; i < len(Severities); i++ {
		higher, lower := Severities[i-1], Severities[i]
		if higher.Rank() <= lower.Rank() {
			t.Errorf("expected %s to rank above %s, got %d <= %d", higher, lower, higher.Rank(), lower.Rank())
		}
	}
}
