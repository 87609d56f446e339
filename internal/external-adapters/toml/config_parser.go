// Package toml provides TOML-based configuration parsing.
package toml

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/scp-fs2open/releasefiles/internal/domain/entities"
	"github.com/scp-fs2open/releasefiles/internal/domain/services"
)

type tomlConfig struct {
	GitHub struct {
		User   string   `toml:"user"`
		Repo   string   `toml:"repo"`
		APIURL string   `toml:"api_url"`
		Token  string   `toml:"token"`
		Ignore []string `toml:"ignore"`
	} `toml:"github"`
	FTP struct {
		Mirrors []string `toml:"mirrors"`
	} `toml:"ftp"`
	HTTP struct {
		Timeout   duration `toml:"timeout"`
		UserAgent string   `toml:"user_agent"`
	} `toml:"http"`
	Retry struct {
		MaxAttempts    int      `toml:"max_attempts"`
		InitialBackoff duration `toml:"initial_backoff"`
		MaxBackoff     duration `toml:"max_backoff"`
	} `toml:"retry"`
}

// duration decodes Go duration strings such as "30s"
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// ConfigRepository implements repositories.ConfigRepository using a TOML file
type ConfigRepository struct {
	path string
}

// NewConfigRepository creates a new TOML-based configuration repository
func NewConfigRepository(path string) *ConfigRepository {
	return &ConfigRepository{path: path}
}

// Load reads the configuration file
func (r *ConfigRepository) Load(_ context.Context) (*entities.Config, error) {
	//nolint:gosec // G304: path is the configuration path chosen by the operator
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", r.path)
		}
		return nil, fmt.Errorf("failed to read file %s: %w", r.path, err)
	}
	return Parse(data)
}

// Parse parses TOML bytes into a Config entity with defaults applied
func Parse(data []byte) (*entities.Config, error) {
	var raw tomlConfig
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown configuration key %q", undecoded[0].String())
	}

	cfg := &entities.Config{
		GitHub: entities.GitHubConfig{
			User:   raw.GitHub.User,
			Repo:   raw.GitHub.Repo,
			APIURL: raw.GitHub.APIURL,
			Token:  raw.GitHub.Token,
			Ignore: raw.GitHub.Ignore,
		},
		FTP: entities.FTPConfig{
			Mirrors: raw.FTP.Mirrors,
		},
		HTTP: entities.HTTPConfig{
			Timeout:   raw.HTTP.Timeout.Duration,
			UserAgent: raw.HTTP.UserAgent,
		},
		Retry: entities.RetryConfig{
			MaxAttempts:    raw.Retry.MaxAttempts,
			InitialBackoff: raw.Retry.InitialBackoff.Duration,
			MaxBackoff:     raw.Retry.MaxBackoff.Duration,
		},
	}

	if err := services.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	cfg.ApplyDefaults()

	return cfg, nil
}
