package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildWithoutMetadataFallsBackToUnknown(t *testing.T) {
	info := build(nil)

	assert.Equal(t, APIName, info.APIName)
	assert.Equal(t, Version, info.Version)
	assert.NotEmpty(t, info.BuildDate)
	assert.Equal(t, "unknown", info.Git.CommitHash)
	assert.Equal(t, "unknown", info.Git.ShortHash)
	assert.Equal(t, "unknown", info.Git.CommitDate)
	assert.Equal(t, "unknown", info.Git.CommitMessage)
	assert.False(t, info.Git.IsDirty)
}

func TestBuildReadsVCSSettings(t *testing.T) {
	info := build(&debug.BuildInfo{Settings: []debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef0123456789abcdef01234567"},
		{Key: "vcs.time", Value: "2026-10-01T08:00:00Z"},
		{Key: "vcs.modified", Value: "true"},
	}})

	assert.Equal(t, "0123456789abcdef0123456789abcdef01234567", info.Git.CommitHash)
	assert.Equal(t, "0123456", info.Git.ShortHash)
	assert.Equal(t, "2026-10-01T08:00:00Z", info.Git.CommitDate)
	assert.True(t, info.Git.IsDirty)
}

func TestLdflagsTakePrecedence(t *testing.T) {
	oldHash, oldMsg := CommitHash, CommitMessage
	t.Cleanup(func() { CommitHash, CommitMessage = oldHash, oldMsg })
	CommitHash = "abc1234def"
	CommitMessage = "Add pallet viewer"

	info := build(&debug.BuildInfo{Settings: []debug.BuildSetting{
		{Key: "vcs.revision", Value: "ffffffffffff"},
	}})

	assert.Equal(t, "abc1234def", info.Git.CommitHash)
	assert.Equal(t, "abc1234", info.Git.ShortHash)
	assert.Equal(t, "Add pallet viewer", info.Git.CommitMessage)
}
