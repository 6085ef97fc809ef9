// Package version reports the cbd build version.
package version

import "runtime/debug"

// Set at build time with -ldflags "-X .../internal/version.Version=...".
var (
	Version = "development"
	Commit  = "unknown"
)

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// String returns the version, with the commit appended when known. Binaries
// installed with go install report their module version instead of
// "development".
func String() string {
	v := Version
	if v == "development" {
		if info, ok := readBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
	}
	if Commit != "unknown" && Commit != "" {
		return v + "+" + Commit
	}
	return v
}
