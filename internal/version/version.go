// Package version reports the deployfix build version.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/EmundoT/deployfix/internal/version.Version=..." at release time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the release version. Development builds installed with
// `go install module@version` report the module version instead of "dev".
func GetVersion() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := readBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}

// GetFullVersion returns the version with commit and build date.
// Format: "v0.3.0 (commit: abc123, built: 2026-01-02T10:30:00Z)"
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", GetVersion(), Commit, Date)
}
