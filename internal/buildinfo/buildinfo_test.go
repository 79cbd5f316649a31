package buildinfo

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetInfo(t *testing.T) {
	t.Helper()
	saved := current
	t.Cleanup(func() { current = saved })
	Set(unsetVersion, unsetCommit, unsetValue, unsetValue)
}

func TestSetAndGet(t *testing.T) {
	resetInfo(t)
	Set("1.2.3", "abc123", "2025-01-01", "ci")

	assert.Equal(t, Info{Version: "1.2.3", Commit: "abc123", Date: "2025-01-01", BuiltBy: "ci"}, Get())
}

func TestEnrichFromBuildInfo(t *testing.T) {
	resetInfo(t)
	enrichFrom(func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			GoVersion: "go1.25.0",
			Main:      debug.Module{Version: "v0.3.0"},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "deadbeef"},
				{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
			},
		}, true
	})

	got := Get()
	assert.Equal(t, "v0.3.0", got.Version)
	assert.Equal(t, "deadbeef", got.Commit)
	assert.Equal(t, "2026-01-02T03:04:05Z", got.Date)
	assert.Equal(t, "go1.25.0", got.BuiltBy)
}

func TestEnrichIgnoresDevelVersion(t *testing.T) {
	resetInfo(t)
	enrichFrom(func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{GoVersion: "go1.25.0", Main: debug.Module{Version: "(devel)"}}, true
	})

	assert.Equal(t, "dev", Get().Version)
	assert.Equal(t, "go1.25.0", Get().BuiltBy)
}

func TestEnrichPreservesExplicitValues(t *testing.T) {
	resetInfo(t)
	Set("v1.0.0", "cafe", "2025-06-01", "goreleaser")
	called := false
	enrichFrom(func() (*debug.BuildInfo, bool) {
		called = true
		return nil, false
	})

	assert.False(t, called)
	assert.Equal(t, "cafe", Get().Commit)
}

func TestEnrichWithoutBuildInfo(t *testing.T) {
	resetInfo(t)
	enrichFrom(func() (*debug.BuildInfo, bool) { return nil, false })

	assert.Equal(t, "none", Get().Commit)
}

func TestInfoString(t *testing.T) {
	info := Info{Version: "1.0", Commit: "abc", Date: "today", BuiltBy: "me"}
	assert.Equal(t, "1.0 (commit: abc, built: today, by: me)", info.String())
}
