// Package version exposes build information stamped in at link time.
package version

// Overridden with -ldflags "-X .../internal/version.Version=..." by the
// release build; the defaults identify an untagged local build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
