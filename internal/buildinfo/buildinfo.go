// Package buildinfo carries the build identifier shown in the window title
// and the startup log line.
package buildinfo

import "runtime/debug"

// Version, Commit and Date are set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// Short returns a compact build identifier for UI/logging.
//
// Precedence: an explicit Version, then an explicit Commit, then the VCS
// revision the Go toolchain stamped into the binary, then "dev".
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return shortRev(Commit)
	}
	if rev := vcsRevision(); rev != "" {
		return shortRev(rev)
	}
	return "dev"
}

// String returns the full identifier: version, commit and date.
func String() string {
	return Short() + " (commit " + Commit + ", built " + Date + ")"
}

func vcsRevision() string {
	bi, ok := readBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}

func shortRev(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
