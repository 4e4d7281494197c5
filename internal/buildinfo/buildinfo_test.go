package buildinfo

import (
	"runtime/debug"
	"testing"
)

func TestShort(t *testing.T) {
	defer func(v, c string, r func() (*debug.BuildInfo, bool)) {
		Version, Commit, readBuildInfo = v, c, r
	}(Version, Commit, readBuildInfo)

	stamped := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}}}, true
	}
	none := func() (*debug.BuildInfo, bool) { return nil, false }

	tests := []struct {
		version, commit string
		read            func() (*debug.BuildInfo, bool)
		want            string
	}{
		{"v1.2.0", "abc", stamped, "v1.2.0"},
		{"dev", "deadbeefcafe0000", stamped, "deadbeefcafe"},
		{"dev", "unknown", stamped, "0123456789ab"},
		{"dev", "unknown", none, "dev"},
	}
	for _, tt := range tests {
		Version, Commit, readBuildInfo = tt.version, tt.commit, tt.read
		if got := Short(); got != tt.want {
			t.Fatalf("Short() with version %q commit %q = %q, want %q", tt.version, tt.commit, got, tt.want)
		}
	}
}
