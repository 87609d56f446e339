package orchestrators

import (
	"context"
	"fmt"

	"github.com/scp-fs2open/releasefiles/internal/domain/entities"
	"github.com/scp-fs2open/releasefiles/internal/domain/interfaces"
	"github.com/scp-fs2open/releasefiles/internal/domain/interfaces/gateways"
	"github.com/scp-fs2open/releasefiles/internal/domain/services"
)

// NightlyReleaseResolver discovers nightly build files on the configured mirrors
type NightlyReleaseResolver struct {
	mirrors   gateways.MirrorGateway
	templates []string
	logger    interfaces.Logger
}

// NewNightlyReleaseResolver creates a resolver over mirror URL templates, in priority order
func NewNightlyReleaseResolver(mirrors gateways.MirrorGateway, templates []string, logger interfaces.Logger) *NightlyReleaseResolver {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	owned := make([]string, len(templates))
	copy(owned, templates)

	return &NightlyReleaseResolver{
		mirrors:   mirrors,
		templates: owned,
		logger:    logger,
	}
}

// Resolve lists the files of a nightly build. Unreachable mirrors are not errors:
// when no mirror answers, the result is empty and carries a NoMirrorsAvailable diagnostic.
// Only a malformed tag or a cancelled context produce an error.
func (r *NightlyReleaseResolver) Resolve(ctx context.Context, tag string) (*entities.NightlyRelease, error) {
	version, err := services.ParseNightlyTag(tag)
	if err != nil {
		return nil, err
	}

	result := &entities.NightlyRelease{
		Tag:     tag,
		Version: version,
		Files:   []entities.ReleaseFile{},
	}

	// Step 1: First mirror with a readable listing wins
	files, err := r.listFiles(ctx, version, result)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		msg := "no mirror provided a listing"
		if result.ListingURL != "" {
			msg = fmt.Sprintf("listing %s contains no nightly files", result.ListingURL)
		}
		r.logger.Warn("no nightly files found", interfaces.F("tag", tag), interfaces.F("reason", msg))
		result.Diagnostics = append(result.Diagnostics, entities.Diagnostic{
			Kind:    entities.DiagNoMirrorsAvailable,
			Subject: tag,
			Message: msg,
		})
		return result, nil
	}

	// Step 2: Classify files and build download URLs on every mirror
	for _, file := range files {
		m, ok := services.MatchNightlyBuild(file)
		if !ok {
			r.logger.Info("ignoring non nightly build file", interfaces.F("file", file))
			result.Diagnostics = append(result.Diagnostics, entities.Diagnostic{
				Kind:    entities.DiagUnrecognizedFile,
				Subject: file,
				Message: "file is not a nightly build",
			})
			continue
		}

		group := services.NormalizeNightlyGroup(m.Group)
		primary, fallbacks := services.NightlyFileURLs(r.templates, version, file)
		result.Files = append(result.Files, entities.NewReleaseFile(file, primary, group, nil, fallbacks))
	}

	r.logger.Info("resolved nightly release",
		interfaces.F("tag", tag),
		interfaces.F("listing", result.ListingURL),
		interfaces.F("files", len(result.Files)))

	return result, nil
}

// listFiles tries each mirror once, in order, and returns the first listing obtained
func (r *NightlyReleaseResolver) listFiles(ctx context.Context, version string, result *entities.NightlyRelease) ([]string, error) {
	for _, template := range r.templates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		listingURL := services.NightlyListingURL(template, version)
		files, err := r.mirrors.ListFiles(ctx, listingURL)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			r.logger.Warn("failed to retrieve file list",
				interfaces.F("url", listingURL),
				interfaces.Err(err))
			result.Diagnostics = append(result.Diagnostics, entities.Diagnostic{
				Kind:    entities.DiagMirrorUnavailable,
				Subject: listingURL,
				Message: err.Error(),
			})
			continue
		}

		result.ListingURL = listingURL
		return files, nil
	}
	return nil, nil
}
