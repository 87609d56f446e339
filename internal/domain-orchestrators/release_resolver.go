package orchestrators

import (
	"context"

	"github.com/scp-fs2open/releasefiles/internal/domain/entities"
	"github.com/scp-fs2open/releasefiles/internal/domain/services"
)

// ReleaseResolver picks the resolver matching the release type of a tag
type ReleaseResolver struct {
	tagged  *TaggedReleaseResolver
	nightly *NightlyReleaseResolver
}

// NewReleaseResolver combines the tagged and nightly resolvers
func NewReleaseResolver(tagged *TaggedReleaseResolver, nightly *NightlyReleaseResolver) *ReleaseResolver {
	return &ReleaseResolver{tagged: tagged, nightly: nightly}
}

// Resolve resolves nightly_ tags from the mirrors and every other tag from GitHub
func (r *ReleaseResolver) Resolve(ctx context.Context, tag string) (*entities.Resolution, error) {
	if services.IsNightlyTag(tag) {
		release, err := r.nightly.Resolve(ctx, tag)
		if err != nil {
			return nil, err
		}
		return release.Resolution(), nil
	}

	release, err := r.tagged.Resolve(ctx, tag)
	if err != nil {
		return nil, err
	}
	return release.Resolution(), nil
}
