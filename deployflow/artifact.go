package deployflow

// ArtifactKind names a category of generated deployment artifact.
type ArtifactKind string

const (
	// ArtifactBuildFile is a container build file (Dockerfile and friends).
	ArtifactBuildFile ArtifactKind = "build-file"
	// ArtifactComposeFile is a multi-container compose file.
	ArtifactComposeFile ArtifactKind = "compose-file"
	// ArtifactManifest is an orchestration manifest (Kubernetes-style YAML).
	ArtifactManifest ArtifactKind = "orchestration-manifest"
)

// ArtifactSet is the scan input: raw artifact text keyed by artifact kind.
// Kinds not referenced by any rule are accepted and ignored. The set is
// treated as immutable once handed to Evaluate.
type ArtifactSet map[ArtifactKind]string

// Present reports whether the set carries content for the given kind.
// An empty string is still present; "nothing to check" is valid input.
func (a ArtifactSet) Present(kind ArtifactKind) bool {
	_, ok := a[kind]
	return ok
}
