package gotool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gowheel/internal/core/domain"
)

func TestBuildLDFlags(t *testing.T) {
	tests := []struct {
		name  string
		extra string
		want  string
	}{
		{
			name:  "defaults only",
			extra: "",
			want:  "-s -w",
		},
		{
			name:  "extra flags appended",
			extra: "-X main.version=1.0.0",
			want:  "-s -w -X main.version=1.0.0",
		},
		{
			name:  "multiple extra flags",
			extra: "-X main.version=1.0.0 -X main.commit=abc",
			want:  "-s -w -X main.version=1.0.0 -X main.commit=abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildLDFlags(tt.extra))
		})
	}
}

func TestBuildEnv(t *testing.T) {
	plat, ok := domain.LookupPlatform("darwin-arm64")
	require.True(t, ok)

	sysEnv := []string{
		"PATH=/usr/bin",
		"GOOS=linux",
		"GOARCH=amd64",
		"CGO_ENABLED=1",
		"HOME=/home/dev",
	}

	env := buildEnv(sysEnv, plat)

	assert.Contains(t, env, "PATH=/usr/bin")
	assert.Contains(t, env, "HOME=/home/dev")
	assert.Contains(t, env, "GOOS=darwin")
	assert.Contains(t, env, "GOARCH=arm64")
	assert.Contains(t, env, "CGO_ENABLED=0")

	// Inherited target selection must not survive alongside the overlay
	assert.NotContains(t, env, "GOOS=linux")
	assert.NotContains(t, env, "GOARCH=amd64")
	assert.NotContains(t, env, "CGO_ENABLED=1")
}

func TestBuildEnv_MuslTargetsKeepLinuxGOOS(t *testing.T) {
	plat, ok := domain.LookupPlatform("linux-amd64-musl")
	require.True(t, ok)

	env := buildEnv(nil, plat)
	assert.Contains(t, env, "GOOS=linux")
	assert.Contains(t, env, "GOARCH=amd64")
	assert.Contains(t, env, "CGO_ENABLED=0")
}
