package gateways

import "context"

// MirrorGateway reads directory listings published by download mirrors
type MirrorGateway interface {
	// ListFiles fetches the listing at listingURL and returns the href targets
	// that name nightly build files, in document order
	ListFiles(ctx context.Context, listingURL string) ([]string, error)
}
