package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scp-fs2open/releasefiles/internal/domain/entities"
)

func strPtr(s string) *string { return &s }

func TestMatchBinaryAsset(t *testing.T) {
	tests := []struct {
		name         string
		asset        string
		wantMatch    bool
		wantPlatform string
		wantVariant  *string
	}{
		{
			name:         "platform without variant",
			asset:        "fs2_open_3.8-builds-Linux.tar.gz",
			wantMatch:    true,
			wantPlatform: "Linux",
		},
		{
			name:         "platform with variant",
			asset:        "fs2_open_3.8-builds-x64-SSE2.7z",
			wantMatch:    true,
			wantPlatform: "x64",
			wantVariant:  strPtr("SSE2"),
		},
		{
			name:         "variant present but empty",
			asset:        "fs2_open_3.8-builds-Win32-.zip",
			wantMatch:    true,
			wantPlatform: "Win32",
			wantVariant:  strPtr(""),
		},
		{
			name:         "last builds marker wins",
			asset:        "fs2_open_3_8_0-builds-a-builds-MacOSX.tar.gz",
			wantMatch:    true,
			wantPlatform: "MacOSX",
		},
		{
			name:      "source archive",
			asset:     "fs2_open_3.8-source-full.tar.gz",
			wantMatch: false,
		},
		{
			name:      "prefix not at start",
			asset:     "old_fs2_open_3.8-builds-Linux.tar.gz",
			wantMatch: false,
		},
		{
			name:      "unrelated file",
			asset:     "README.txt",
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchBinaryAsset(tt.asset)
			require.Equal(t, tt.wantMatch, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantPlatform, got.Platform)
			assert.Equal(t, tt.wantVariant, got.Variant)
		})
	}
}

func TestMatchSourceAsset(t *testing.T) {
	tests := []struct {
		name      string
		asset     string
		wantMatch bool
		wantGroup string
	}{
		{name: "full source", asset: "fs2_open_3.8-source-full.tar.gz", wantMatch: true, wantGroup: "full"},
		{name: "empty group", asset: "fs2_open_3.8-source-.tar.gz", wantMatch: true, wantGroup: ""},
		{name: "group up to end", asset: "fs2_open_3.8-source-Unix", wantMatch: true, wantGroup: "Unix"},
		{name: "binary asset", asset: "fs2_open_3.8-builds-Linux.tar.gz", wantMatch: false},
		{name: "unrelated", asset: "checksums.sha256", wantMatch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchSourceAsset(tt.asset)
			require.Equal(t, tt.wantMatch, ok)
			assert.Equal(t, tt.wantGroup, got.Group)
		})
	}
}

func TestMatchNightlyBuild(t *testing.T) {
	got, ok := MatchNightlyBuild("nightly_1.0.0-builds-Linux.tar.gz")
	require.True(t, ok)
	assert.Equal(t, "Linux", got.Group)

	got, ok = MatchNightlyBuild("nightly_20240101_abc-builds-x64-AVX.zip")
	require.True(t, ok)
	assert.Equal(t, "x64-AVX", got.Group)

	_, ok = MatchNightlyBuild("nightly_20240101_abc-source.tar.gz")
	assert.False(t, ok)

	_, ok = MatchNightlyBuild("nightly_1.0.0-builds-.zip")
	assert.False(t, ok, "group must not be empty")
}

func TestParseNightlyTag(t *testing.T) {
	version, err := ParseNightlyTag("nightly_20240101_1a2b3c4")
	require.NoError(t, err)
	assert.Equal(t, "20240101_1a2b3c4", version)

	version, err = ParseNightlyTag("nightly_")
	require.NoError(t, err)
	assert.Equal(t, "", version)

	_, err = ParseNightlyTag("release_3_8_0")
	require.Error(t, err)
	assert.True(t, errors.Is(err, entities.ErrMalformedTag))

	var tagErr *entities.MalformedTagError
	require.ErrorAs(t, err, &tagErr)
	assert.Equal(t, "release_3_8_0", tagErr.Tag)
}

func TestIsNightlyTag(t *testing.T) {
	assert.True(t, IsNightlyTag("nightly_20240101"))
	assert.False(t, IsNightlyTag("release_3_8_0"))
	assert.False(t, IsNightlyTag("Nightly_20240101"))
}

func TestNormalizeBinaryPlatform(t *testing.T) {
	tests := map[string]string{
		"x64":     "Win64",
		"Linux":   "Linux",
		"Win32":   "Win32",
		"x64-AVX": "x64-AVX",
		"MacOSX":  "MacOSX",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeBinaryPlatform(in), in)
	}
}

func TestNormalizeNightlyGroup(t *testing.T) {
	tests := map[string]string{
		"x64":       "Win64",
		"x64-debug": "Win64-debug",
		"Mac":       "MacOSX",
		"MacMini":   "MacMini",
		"MacOSX":    "MacOSX",
		"Linux":     "Linux",
		"x64x64":    "Win64Win64",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeNightlyGroup(in), in)
	}
}
