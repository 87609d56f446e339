// Package gateways defines interfaces for external service adapters.
package gateways

import "context"

// GitHubRelease represents a GitHub release as returned by the releases API
type GitHubRelease struct {
	ID      int64
	TagName string
	Name    string
	Assets  []GitHubAsset
}

// GitHubAsset represents a file attached to a release
type GitHubAsset struct {
	ID                 int64
	Name               string
	Size               int64
	BrowserDownloadURL string
}

// GitHubGateway defines operations for GitHub API interactions
type GitHubGateway interface {
	// GetReleaseByTag retrieves a release and its assets by tag name.
	// A single call makes a single request; retrying is the caller's concern.
	GetReleaseByTag(ctx context.Context, owner, repo, tag string) (*GitHubRelease, error)
}
