package gateways

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/net/html"

	"github.com/scp-fs2open/releasefiles/internal/domain/entities"
)

// nightlyFilePrefix is the href prefix of nightly build files in a listing
const nightlyFilePrefix = "nightly_"

// HTTPMirrorGateway implements MirrorGateway over plain HTTP
type HTTPMirrorGateway struct {
	client    *http.Client
	userAgent string
}

// NewHTTPMirrorGateway creates a mirror gateway; each request is bounded by the configured timeout
func NewHTTPMirrorGateway(httpCfg entities.HTTPConfig) *HTTPMirrorGateway {
	timeout := httpCfg.Timeout
	if timeout <= 0 {
		timeout = entities.DefaultHTTPTimeout
	}
	userAgent := httpCfg.UserAgent
	if userAgent == "" {
		userAgent = entities.DefaultUserAgent
	}

	return &HTTPMirrorGateway{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// ListFiles fetches a directory listing and returns the nightly file links in it
func (g *HTTPMirrorGateway) ListFiles(ctx context.Context, listingURL string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listingURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	//nolint:errcheck // Defer close
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &entities.HTTPStatusError{URL: listingURL, StatusCode: resp.StatusCode}
	}

	files, err := ExtractNightlyLinks(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read listing: %w", err)
	}
	return files, nil
}

// ExtractNightlyLinks returns the href of every anchor whose target starts
// with nightly_, in document order. Other markup is ignored.
func ExtractNightlyLinks(r io.Reader) ([]string, error) {
	var files []string

	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return files, nil
			}
			return nil, z.Err()

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if tok.Data != "a" {
				continue
			}
			for _, attr := range tok.Attr {
				if attr.Key != "href" {
					continue
				}
				if isNightlyLink(attr.Val) {
					files = append(files, attr.Val)
				}
				break
			}
		}
	}
}

func isNightlyLink(href string) bool {
	return len(href) > len(nightlyFilePrefix) &&
		strings.HasPrefix(href, nightlyFilePrefix) &&
		!strings.Contains(href, `"`)
}
