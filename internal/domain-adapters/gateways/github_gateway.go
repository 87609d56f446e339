package gateways

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/scp-fs2open/releasefiles/internal/domain/entities"
	"github.com/scp-fs2open/releasefiles/internal/domain/interfaces"
	"github.com/scp-fs2open/releasefiles/internal/domain/interfaces/gateways"
)

const (
	// GitHubAcceptHeader selects the v3 REST media type
	GitHubAcceptHeader = "application/vnd.github.v3+json"

	// rateLimitWarnThreshold is the remaining-call count below which a warning is logged
	rateLimitWarnThreshold = 10

	// maxErrorBody bounds how much of an error response is kept for the error message
	maxErrorBody = 4 << 10
)

// HTTPGitHubGateway implements GitHubGateway using standard HTTP client
type HTTPGitHubGateway struct {
	client    *http.Client
	baseURL   string
	token     string
	userAgent string
	logger    interfaces.Logger
}

// NewHTTPGitHubGateway creates a new GitHub gateway with HTTP client
func NewHTTPGitHubGateway(cfg entities.GitHubConfig, httpCfg entities.HTTPConfig, logger interfaces.Logger) *HTTPGitHubGateway {
	baseURL := strings.TrimRight(cfg.APIURL, "/")
	if baseURL == "" {
		baseURL = entities.DefaultGitHubAPIURL
	}
	timeout := httpCfg.Timeout
	if timeout <= 0 {
		timeout = entities.DefaultHTTPTimeout
	}
	userAgent := httpCfg.UserAgent
	if userAgent == "" {
		userAgent = entities.DefaultUserAgent
	}
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}

	return &HTTPGitHubGateway{
		client:    &http.Client{Timeout: timeout},
		baseURL:   baseURL,
		token:     cfg.Token,
		userAgent: userAgent,
		logger:    logger,
	}
}

// checkRateLimit checks GitHub API rate limit headers and returns error if exhausted
func (g *HTTPGitHubGateway) checkRateLimit(resp *http.Response) error {
	remaining := resp.Header.Get("X-RateLimit-Remaining")
	if remaining == "" {
		return nil
	}

	remainingInt, err := strconv.Atoi(remaining)
	if err != nil {
		return nil // Invalid header, ignore
	}

	if remainingInt == 0 && resp.StatusCode != http.StatusOK {
		resetTime := resp.Header.Get("X-RateLimit-Reset")
		if resetUnix, err := strconv.ParseInt(resetTime, 10, 64); err == nil {
			resetAt := time.Unix(resetUnix, 0)
			return fmt.Errorf("GitHub API rate limit exceeded (0 remaining), resets at %s", resetAt.Format(time.RFC3339))
		}
		return fmt.Errorf("GitHub API rate limit exceeded (0 remaining)")
	}

	if remainingInt <= rateLimitWarnThreshold {
		g.logger.Warn("GitHub API rate limit low", interfaces.F("remaining", remainingInt))
	}

	return nil
}

// githubRelease represents the GitHub API release format
type githubRelease struct {
	ID      int64         `json:"id"`
	TagName string        `json:"tag_name"`
	Name    string        `json:"name"`
	Assets  []githubAsset `json:"assets"`
}

// githubAsset represents a GitHub release asset
type githubAsset struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Size               int64  `json:"size"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// GetReleaseByTag retrieves a release by tag name. Any non-2xx response is an error.
func (g *HTTPGitHubGateway) GetReleaseByTag(ctx context.Context, owner, repo, tag string) (*gateways.GitHubRelease, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/releases/tags/%s",
		g.baseURL, url.PathEscape(owner), url.PathEscape(repo), url.PathEscape(tag))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", GitHubAcceptHeader)
	req.Header.Set("User-Agent", g.userAgent)
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}

	g.logger.Debug("fetching release", interfaces.F("url", endpoint))

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get release: %w", err)
	}
	//nolint:errcheck // Defer close on HTTP response body
	defer resp.Body.Close()

	if err := g.checkRateLimit(resp); err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &entities.HTTPStatusError{
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var result githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	assets := make([]gateways.GitHubAsset, len(result.Assets))
	for i, a := range result.Assets {
		assets[i] = gateways.GitHubAsset{
			ID:                 a.ID,
			Name:               a.Name,
			Size:               a.Size,
			BrowserDownloadURL: a.BrowserDownloadURL,
		}
	}

	return &gateways.GitHubRelease{
		ID:      result.ID,
		TagName: result.TagName,
		Name:    result.Name,
		Assets:  assets,
	}, nil
}
