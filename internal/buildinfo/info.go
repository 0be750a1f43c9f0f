// Package buildinfo carries version metadata stamped at build time.
package buildinfo

// Set via -ldflags "-X github.com/bankfeed-dev/bankfeed/internal/buildinfo.Version=..."
// and friends; the zero build reports dev/none/unknown.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
