package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/scp-fs2open/releasefiles/internal/domain/entities"
	"github.com/scp-fs2open/releasefiles/internal/domain/interfaces"
	"github.com/scp-fs2open/releasefiles/internal/domain/interfaces/repositories"
	"github.com/scp-fs2open/releasefiles/internal/domain/services"
	"github.com/scp-fs2open/releasefiles/internal/external-adapters/toml"
	"github.com/scp-fs2open/releasefiles/internal/external-adapters/yaml"
	zlog "github.com/scp-fs2open/releasefiles/internal/external-adapters/zerolog"
)

const defaultConfigPath = "releasefiles.yml"

// options holds the global command line flags
type options struct {
	configPath string
	logLevel   string
	logFormat  string
	output     string

	user    string
	repo    string
	apiURL  string
	mirrors []string
}

func addGlobalFlags(flags *pflag.FlagSet, o *options) {
	flags.StringVarP(&o.configPath, "config", "c", defaultConfigPath,
		"Configuration file (.yml, .yaml or .toml)")
	flags.StringVar(&o.logLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	flags.StringVar(&o.logFormat, "log-format", string(zlog.FormatConsole), "Log format (console|json)")
	flags.StringVarP(&o.output, "output", "o", string(formatJSON), "Output format (json|yaml)")

	flags.StringVar(&o.user, "user", "", "GitHub repository owner (overrides config)")
	flags.StringVar(&o.repo, "repo", "", "GitHub repository name (overrides config)")
	flags.StringVar(&o.apiURL, "api-url", "", "GitHub API base URL (overrides config)")
	flags.StringArrayVar(&o.mirrors, "mirror", nil,
		"Nightly mirror URL template with {type}, {version} and {file}; repeatable, replaces configured mirrors")
}

// newLogger builds the zerolog-backed logger writing to stderr
func (o *options) newLogger(stderr io.Writer) (interfaces.Logger, error) {
	l, err := zlog.New(stderr, o.logLevel, zlog.Format(o.logFormat))
	if err != nil {
		return nil, &usageError{err: err}
	}
	return l, nil
}

// configRepository picks the configuration format from the file extension
func configRepository(path string) (repositories.ConfigRepository, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yaml.NewConfigRepository(path), nil
	case ".toml":
		return toml.NewConfigRepository(path), nil
	default:
		return nil, fmt.Errorf("unsupported config file extension %q (want .yml, .yaml or .toml)", filepath.Ext(path))
	}
}

// loadConfig reads the configuration file and applies flag and environment overrides.
// A missing default config file is not an error; flags alone may be enough.
func (o *options) loadConfig(ctx context.Context, configChanged bool) (*entities.Config, error) {
	cfg := entities.NewDefaultConfig()

	_, statErr := os.Stat(o.configPath)
	if statErr == nil || configChanged {
		repo, err := configRepository(o.configPath)
		if err != nil {
			return nil, &usageError{err: err}
		}
		cfg, err = repo.Load(ctx)
		if err != nil {
			return nil, &usageError{err: err}
		}
	}

	if o.user != "" {
		cfg.GitHub.User = o.user
	}
	if o.repo != "" {
		cfg.GitHub.Repo = o.repo
	}
	if o.apiURL != "" {
		cfg.GitHub.APIURL = o.apiURL
	}
	if len(o.mirrors) > 0 {
		cfg.FTP.Mirrors = append([]string(nil), o.mirrors...)
	}
	if cfg.GitHub.Token == "" {
		cfg.GitHub.Token = os.Getenv("GITHUB_TOKEN")
	}
	if cfg.GitHub.Token == "" {
		cfg.GitHub.Token = os.Getenv("GH_TOKEN")
	}

	if err := services.ValidateConfig(cfg); err != nil {
		return nil, &usageError{err: fmt.Errorf("invalid configuration: %w", err)}
	}
	cfg.ApplyDefaults()
	return cfg, nil
}
