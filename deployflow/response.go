package deployflow

import "github.com/Aatka-Saleem/DeployFlow/internal"

// Response is the complete JSON envelope emitted for a scan run.
type Response struct {
	Tool    string     `json:"tool"`
	Version string     `json:"version"`
	Run     RunDetails `json:"run"`
}

// RunDetails contains the execution details and the scan verdict.
type RunDetails struct {
	Argv []string `json:"argv"`
	// RuleSource is the rule document path, or "builtin" for the default set.
	RuleSource string `json:"ruleSource"`
	// Artifacts lists the artifact kinds that were present in the input, in
	// the order they were supplied.
	Artifacts []ArtifactKind `json:"artifacts"`
	Result    ScanResult     `json:"result"`
}

// NewResponse wraps a ScanResult in the response envelope.
func NewResponse(argv []string, ruleSource string, artifacts []ArtifactKind, result ScanResult) *Response {
	if artifacts == nil {
		artifacts = []ArtifactKind{}
	}
	return &Response{
		Tool:    internal.ApplicationName,
		Version: internal.ApplicationVersion(),
		Run: RunDetails{
			Argv:       argv,
			RuleSource: ruleSource,
			Artifacts:  artifacts,
			Result:     result,
		},
	}
}
