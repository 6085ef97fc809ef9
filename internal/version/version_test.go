package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	origVersion, origCommit, origRead := Version, Commit, readBuildInfo
	t.Cleanup(func() { Version, Commit, readBuildInfo = origVersion, origCommit, origRead })

	noBuildInfo := func() (*debug.BuildInfo, bool) { return nil, false }
	devel := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, true
	}
	installed := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Main: debug.Module{Version: "v1.4.0"}}, true
	}

	tests := []struct {
		name     string
		version  string
		commit   string
		read     func() (*debug.BuildInfo, bool)
		expected string
	}{
		{name: "development without commit", version: "development", commit: "unknown", read: noBuildInfo, expected: "development"},
		{name: "release with commit", version: "1.0.0", commit: "abc1234", read: noBuildInfo, expected: "1.0.0+abc1234"},
		{name: "unknown commit shows only version", version: "2.0.0", commit: "unknown", read: installed, expected: "2.0.0"},
		{name: "go install module version", version: "development", commit: "unknown", read: installed, expected: "v1.4.0"},
		{name: "devel build keeps development", version: "development", commit: "", read: devel, expected: "development"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Commit, readBuildInfo = tt.version, tt.commit, tt.read
			assert.Equal(t, tt.expected, String())
		})
	}
}
