//nolint:revive // Package name 'interfaces' is intentional for domain layer
package interfaces

import "context"

// RetryPolicy runs an operation until it succeeds or the attempt budget is spent
type RetryPolicy interface {
	// Do runs op and returns nil on the first success, or the last failure
	Do(ctx context.Context, op func(ctx context.Context) error) error

	// MaxAttempts returns the attempt budget, including the first try
	MaxAttempts() int
}

// AssetFilter decides whether a release asset is dropped before classification
type AssetFilter interface {
	Ignore(name string) bool
}
