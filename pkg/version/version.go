// Package version exposes build metadata stamped via -ldflags.
package version

import "fmt"

// Populated at build time with:
//
//	-ldflags "-X github.com/rzbill/snip/pkg/version.Version=v0.2.0 ..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns a single-line version description.
func String() string {
	return fmt.Sprintf("snip %s (commit %s, built %s)", Version, Commit, Date)
}
