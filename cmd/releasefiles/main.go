package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
)

// version is set via ldflags during build
var version = "dev"

// Exit codes
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// usageError marks errors caused by bad flags, arguments or configuration
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...interface{}) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		var uerr *usageError
		if errors.As(err, &uerr) {
			return exitUsage
		}
		return exitFailure
	}
	return exitOK
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "releasefiles",
		Short: "Resolve a release into its downloadable artifacts",
		Long: `releasefiles lists the binary builds and source archives of a release.

Tagged releases are read from the GitHub releases API. Nightly builds
(tags starting with nightly_) are discovered from the configured download
mirrors, and every file is listed with a primary URL and its mirrors.`,
		SilenceUsage:  true,
		SilenceErrors: true, // run prints the error once
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	addGlobalFlags(rootCmd.PersistentFlags(), opts)

	rootCmd.AddCommand(newTaggedCmd(opts))
	rootCmd.AddCommand(newNightlyCmd(opts))
	rootCmd.AddCommand(newResolveCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	// cobra reports unknown flags and bad argument counts as plain errors
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of releasefiles",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "releasefiles version %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "Built with %s\n", runtime.Version())
		},
	}
}
