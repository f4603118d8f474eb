package buildinfo

import "fmt"

// Set via -ldflags "-X github.com/calumari/mailwalk/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String formats the build metadata for --version.
func String() string {
	return fmt.Sprintf("mailwalk %s (commit=%s, date=%s)", Version, Commit, Date)
}
