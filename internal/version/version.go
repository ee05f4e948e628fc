package version

import "fmt"

// Version is the objdoc release, injected at build time:
// go build -ldflags "-X git.home.luguber.info/inful/objdoc/internal/version.Version=v0.1.0".
var Version = "unknown"

// BuildInfo contains additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String renders the line printed by --version.
func String() string {
	return fmt.Sprintf("objdoc %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
