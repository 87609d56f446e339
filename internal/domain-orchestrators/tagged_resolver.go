// Package orchestrators coordinates complex workflows across multiple domain services.
package orchestrators

import (
	"context"
	"fmt"

	"github.com/scp-fs2open/releasefiles/internal/domain/entities"
	"github.com/scp-fs2open/releasefiles/internal/domain/interfaces"
	"github.com/scp-fs2open/releasefiles/internal/domain/interfaces/gateways"
	"github.com/scp-fs2open/releasefiles/internal/domain/services"
)

// TaggedReleaseResolver turns a GitHub release into binary and source artifacts
type TaggedReleaseResolver struct {
	github gateways.GitHubGateway
	retry  interfaces.RetryPolicy
	filter interfaces.AssetFilter
	logger interfaces.Logger
	owner  string
	repo   string
}

// TaggedReleaseResolverConfig holds configuration for the tagged resolver
type TaggedReleaseResolverConfig struct {
	Owner  string
	Repo   string
	Filter interfaces.AssetFilter // optional
}

// NewTaggedReleaseResolver creates a new tagged release resolver
func NewTaggedReleaseResolver(
	github gateways.GitHubGateway,
	retry interfaces.RetryPolicy,
	logger interfaces.Logger,
	config TaggedReleaseResolverConfig,
) *TaggedReleaseResolver {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &TaggedReleaseResolver{
		github: github,
		retry:  retry,
		filter: config.Filter,
		logger: logger,
		owner:  config.Owner,
		repo:   config.Repo,
	}
}

// Resolve fetches the release tagged tag and classifies its assets.
// A release that cannot be fetched within the retry budget yields a *entities.FetchError.
func (r *TaggedReleaseResolver) Resolve(ctx context.Context, tag string) (*entities.TaggedRelease, error) {
	if r.owner == "" || r.repo == "" {
		return nil, fmt.Errorf("github user and repo must be configured to resolve %s", tag)
	}

	// Step 1: Fetch the release, retrying failed requests
	var release *gateways.GitHubRelease
	attempts := 0
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		attempts++
		rel, err := r.github.GetReleaseByTag(ctx, r.owner, r.repo, tag)
		if err != nil {
			return err
		}
		release = rel
		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		r.logger.Error("failed to fetch release",
			interfaces.F("tag", tag),
			interfaces.F("attempts", attempts),
			interfaces.Err(err))
		return nil, &entities.FetchError{Tag: tag, Attempts: attempts, Err: err}
	}

	// Step 2: Classify assets in response order
	result := &entities.TaggedRelease{
		Tag:      tag,
		Binaries: make([]entities.ReleaseFile, 0, len(release.Assets)),
		Sources:  make(map[string]entities.SourceFile),
	}
	for _, asset := range release.Assets {
		r.classify(asset, result)
	}

	r.logger.Info("resolved tagged release",
		interfaces.F("tag", tag),
		interfaces.F("binaries", len(result.Binaries)),
		interfaces.F("sources", len(result.Sources)))

	return result, nil
}

// classify adds one asset to the binaries or the sources, or reports it as unrecognized
func (r *TaggedReleaseResolver) classify(asset gateways.GitHubAsset, result *entities.TaggedRelease) {
	if r.filter != nil && r.filter.Ignore(asset.Name) {
		r.logger.Debug("ignoring asset", interfaces.F("asset", asset.Name))
		result.Diagnostics = append(result.Diagnostics, entities.Diagnostic{
			Kind:    entities.DiagIgnoredAsset,
			Subject: asset.Name,
			Message: "asset matches an ignore pattern",
		})
		return
	}

	if m, ok := services.MatchBinaryAsset(asset.Name); ok {
		platform := services.NormalizeBinaryPlatform(m.Platform)
		result.Binaries = append(result.Binaries,
			entities.NewReleaseFile(asset.Name, asset.BrowserDownloadURL, platform, m.Variant, nil))
		return
	}

	if m, ok := services.MatchSourceAsset(asset.Name); ok {
		// one source archive per group; a later asset replaces an earlier one
		if prev, exists := result.Sources[m.Group]; exists {
			r.logger.Warn("duplicate source group, keeping the later asset",
				interfaces.F("group", m.Group),
				interfaces.F("replaced", prev.Name),
				interfaces.F("asset", asset.Name))
		}
		result.Sources[m.Group] = entities.SourceFile{
			Name:  asset.Name,
			URL:   asset.BrowserDownloadURL,
			Group: m.Group,
		}
		return
	}

	r.logger.Debug("ignoring unrecognized asset", interfaces.F("asset", asset.Name))
	result.Diagnostics = append(result.Diagnostics, entities.Diagnostic{
		Kind:    entities.DiagUnrecognizedAsset,
		Subject: asset.Name,
		Message: "asset is neither a binary build nor a source archive",
	})
}
