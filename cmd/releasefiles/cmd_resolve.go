package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/scp-fs2open/releasefiles/internal/domain/entities"
)

func newTaggedCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tagged <tag>",
		Short: "List the artifacts of a tagged GitHub release",
		Example: `  releasefiles tagged release_23_0_0
  releasefiles tagged release_23_0_0 --user scp-fs2open --repo fs2open.github.com`,
		Args: exactTagArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			release, err := a.tagged.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), release.Resolution())
		},
	}
}

func newNightlyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "nightly <tag>",
		Short: "List the files of a nightly build from the download mirrors",
		Example: `  releasefiles nightly nightly_20240101_abcdef0
  releasefiles nightly nightly_20240101_abcdef0 --mirror 'https://example.org/{type}/{version}/{file}'`,
		Args: exactTagArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			release, err := a.nightly.Resolve(cmd.Context(), args[0])
			if err != nil {
				return asUsageIfMalformed(err)
			}
			return a.render(cmd.OutOrStdout(), release.Resolution())
		},
	}
}

func newResolveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <tag>",
		Short: "Resolve a tag, choosing nightly or tagged by its name",
		Long: `Resolve a release tag into its artifacts.

Tags starting with nightly_ are resolved from the download mirrors; every
other tag is looked up in the GitHub releases API.`,
		Args: exactTagArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			resolution, err := a.resolver.Resolve(cmd.Context(), args[0])
			if err != nil {
				return asUsageIfMalformed(err)
			}
			return a.render(cmd.OutOrStdout(), resolution)
		},
	}
}

func exactTagArg(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return &usageError{err: err}
	}
	if args[0] == "" {
		return usageErrorf("tag must not be empty")
	}
	return nil
}

// asUsageIfMalformed reports a malformed nightly tag as a usage error
func asUsageIfMalformed(err error) error {
	var malformed *entities.MalformedTagError
	if errors.As(err, &malformed) {
		return &usageError{err: err}
	}
	return err
}
