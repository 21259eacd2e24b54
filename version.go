package quorum

// Release is the semantic version of this module. Builds between releases
// carry a pre release suffix, for example v0.2.0-dev.
const Release = "v0.1.0"

// GitCommit is the commit a binary was built from. It is set at link time:
//
//	go build -ldflags "-X github.com/iov-one/quorum.GitCommit=$(git rev-parse --short HEAD)"
var GitCommit = ""

// Version returns the release followed by the build commit, when known.
func Version() string {
	if GitCommit == "" {
		return Release
	}
	return Release + " " + GitCommit
}
