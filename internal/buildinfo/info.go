// Package buildinfo carries version metadata stamped in at link time with
// -ldflags "-X github.com/ledgerdash/ledgerdash/internal/buildinfo.Version=...".
package buildinfo

var (
	// Version will be set via ldflags during build.
	Version = "dev"
	// Commit will be set via ldflags during build.
	Commit = "none"
	// Date will be set via ldflags during build.
	Date = "unknown"
)
