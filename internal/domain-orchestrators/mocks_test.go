package orchestrators

import (
	"context"
	"errors"
	"strings"

	"github.com/scp-fs2open/releasefiles/internal/domain/interfaces/gateways"
)

// Mock implementations for testing
type mockGitHubGateway struct {
	release  *gateways.GitHubRelease
	failures int // number of calls that fail before the release is returned
	err      error
	calls    int
}

func (m *mockGitHubGateway) GetReleaseByTag(_ context.Context, _, _, _ string) (*gateways.GitHubRelease, error) {
	m.calls++
	if m.calls <= m.failures {
		if m.err != nil {
			return nil, m.err
		}
		return nil, errors.New("transient failure")
	}
	return m.release, nil
}

type mockMirrorGateway struct {
	listings map[string][]string // listing URL -> files; missing URL fails
	requests []string
}

func (m *mockMirrorGateway) ListFiles(_ context.Context, listingURL string) ([]string, error) {
	m.requests = append(m.requests, listingURL)
	files, ok := m.listings[listingURL]
	if !ok {
		return nil, errors.New("connection refused")
	}
	return files, nil
}

type mockAssetFilter struct {
	suffixes []string
}

func (m *mockAssetFilter) Ignore(name string) bool {
	for _, s := range m.suffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}

func releaseWithAssets(names ...string) *gateways.GitHubRelease {
	assets := make([]gateways.GitHubAsset, len(names))
	for i, n := range names {
		assets[i] = gateways.GitHubAsset{
			ID:                 int64(i + 1),
			Name:               n,
			BrowserDownloadURL: "https://github.com/scp-fs2open/fs2open.github.com/releases/download/release_3_8_0/" + n,
		}
	}
	return &gateways.GitHubRelease{ID: 1, TagName: "release_3_8_0", Assets: assets}
}
