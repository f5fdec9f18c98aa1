package version

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_Defaults(t *testing.T) {
	ResetBuildVars()
	t.Cleanup(ResetBuildVars)

	info := Get()
	assert.Equal(t, DefaultVersion, info.Version)
	assert.Equal(t, DefaultCommit, info.Commit)
	assert.Equal(t, DefaultBuildTime, info.BuildTime)
	assert.True(t, info.IsDevelopment())
}

func TestGet_InjectedValues(t *testing.T) {
	SetBuildVars("1.2.3", "abc123", "2024-01-01T00:00:00Z")
	t.Cleanup(ResetBuildVars)

	info := Get()
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "abc123", info.Commit)
	assert.False(t, info.IsDevelopment())
}

func TestInfo_Formats(t *testing.T) {
	SetBuildVars("1.2.3", "abc123", "2024-01-01T00:00:00Z")
	t.Cleanup(ResetBuildVars)

	info := Get()
	assert.Equal(t, "1.2.3", info.FormatShort())

	full := info.FormatFull()
	assert.Contains(t, full, ApplicationName)
	assert.Contains(t, full, "Version:    1.2.3")
	assert.Contains(t, full, "Commit:     abc123")
	assert.Contains(t, full, "Built:      2024-01-01T00:00:00Z")
}

func TestInfo_Write(t *testing.T) {
	SetBuildVars("1.2.3", "abc123", "2024-01-01T00:00:00Z")
	t.Cleanup(ResetBuildVars)

	var short bytes.Buffer
	require.NoError(t, Get().Write(&short, true))
	assert.Equal(t, "1.2.3\n", short.String())

	var full bytes.Buffer
	require.NoError(t, Get().Write(&full, false))
	assert.Contains(t, full.String(), "Version:    1.2.3")
}

func TestInfo_BuildTimestamp(t *testing.T) {
	tests := []struct {
		name      string
		buildTime string
		expected  time.Time
	}{
		{
			name:      "rfc3339",
			buildTime: "2024-01-01T12:00:00Z",
			expected:  time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name:      "date_only",
			buildTime: "2024-01-01",
			expected:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{name: "unknown", buildTime: DefaultBuildTime},
		{name: "garbage", buildTime: "not a time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := &Info{BuildTime: tt.buildTime}
			assert.Equal(t, tt.expected, info.BuildTimestamp())
		})
	}
}
