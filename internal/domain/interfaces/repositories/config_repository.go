// Package repositories defines interfaces for data access layers.
package repositories

import (
	"context"

	"github.com/scp-fs2open/releasefiles/internal/domain/entities"
)

// ConfigRepository defines the interface for loading resolver configuration
type ConfigRepository interface {
	// Load reads and validates the configuration
	Load(ctx context.Context) (*entities.Config, error)
}
