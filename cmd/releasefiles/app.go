package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scp-fs2open/releasefiles/internal/domain-adapters/gateways"
	orchestrators "github.com/scp-fs2open/releasefiles/internal/domain-orchestrators"
	"github.com/scp-fs2open/releasefiles/internal/domain/interfaces"
	"github.com/scp-fs2open/releasefiles/internal/external-adapters/glob"
	"github.com/scp-fs2open/releasefiles/internal/external-adapters/retry"
)

// app bundles the resolvers wired from configuration
type app struct {
	tagged   *orchestrators.TaggedReleaseResolver
	nightly  *orchestrators.NightlyReleaseResolver
	resolver *orchestrators.ReleaseResolver
	logger   interfaces.Logger
	format   outputFormat
}

// newApp loads configuration and wires gateways, retry policy and resolvers
func newApp(cmd *cobra.Command, opts *options) (*app, error) {
	format, err := parseOutputFormat(opts.output)
	if err != nil {
		return nil, &usageError{err: err}
	}

	logger, err := opts.newLogger(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	cfg, err := opts.loadConfig(cmd.Context(), cmd.Flags().Changed("config"))
	if err != nil {
		return nil, err
	}

	filter, err := glob.NewAssetFilter(cfg.GitHub.Ignore)
	if err != nil {
		return nil, usageErrorf("github.ignore: %v", err)
	}

	logger.Debug("Configuration loaded",
		interfaces.F("config", opts.configPath),
		interfaces.F("repository", fmt.Sprintf("%s/%s", cfg.GitHub.User, cfg.GitHub.Repo)),
		interfaces.F("mirrors", len(cfg.FTP.Mirrors)),
		interfaces.F("ignore", len(cfg.GitHub.Ignore)))

	githubGateway := gateways.NewHTTPGitHubGateway(cfg.GitHub, cfg.HTTP, logger)
	mirrorGateway := gateways.NewHTTPMirrorGateway(cfg.HTTP)
	policy := retry.NewBackoffPolicy(cfg.Retry, retry.WithLogger(logger))

	tagged := orchestrators.NewTaggedReleaseResolver(githubGateway, policy, logger,
		orchestrators.TaggedReleaseResolverConfig{
			Owner:  cfg.GitHub.User,
			Repo:   cfg.GitHub.Repo,
			Filter: filter,
		})
	nightly := orchestrators.NewNightlyReleaseResolver(mirrorGateway, cfg.FTP.Mirrors, logger)

	return &app{
		tagged:   tagged,
		nightly:  nightly,
		resolver: orchestrators.NewReleaseResolver(tagged, nightly),
		logger:   logger,
		format:   format,
	}, nil
}
