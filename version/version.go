// Package version carries the build metadata injected with
// -ldflags "-X github.com/philipparndt/lidarview/version.Version=..."
package version

import "fmt"

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// GetFullVersion appends commit and build date when they were injected
func GetFullVersion() string {
	if GitCommit == "unknown" {
		return Version
	}
	if BuildDate == "unknown" {
		return fmt.Sprintf("%s (%s)", Version, GitCommit)
	}
	return fmt.Sprintf("%s (%s, built %s)", Version, GitCommit, BuildDate)
}
