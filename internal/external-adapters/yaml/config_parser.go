// Package yaml provides YAML-based configuration parsing and repository implementations.
package yaml

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/scp-fs2open/releasefiles/internal/domain/entities"
	"github.com/scp-fs2open/releasefiles/internal/domain/services"
)

// yamlConfig represents the raw YAML structure
type yamlConfig struct {
	GitHub yamlGitHub `yaml:"github"`
	FTP    yamlFTP    `yaml:"ftp"`
	HTTP   yamlHTTP   `yaml:"http"`
	Retry  yamlRetry  `yaml:"retry"`
}

type yamlGitHub struct {
	User   string   `yaml:"user"`
	Repo   string   `yaml:"repo"`
	APIURL string   `yaml:"api_url"`
	Token  string   `yaml:"token"`
	Ignore []string `yaml:"ignore"`
}

type yamlFTP struct {
	Mirrors []string `yaml:"mirrors"`
}

type yamlHTTP struct {
	Timeout   string `yaml:"timeout"`
	UserAgent string `yaml:"user_agent"`
}

type yamlRetry struct {
	MaxAttempts    int    `yaml:"max_attempts"`
	InitialBackoff string `yaml:"initial_backoff"`
	MaxBackoff     string `yaml:"max_backoff"`
}

// ConfigParser parses YAML configuration files
type ConfigParser struct{}

// NewConfigParser creates a new YAML parser
func NewConfigParser() *ConfigParser {
	return &ConfigParser{}
}

// ParseFile parses a YAML configuration file into a Config entity
func (p *ConfigParser) ParseFile(filePath string) (*entities.Config, error) {
	//nolint:gosec // G304: filePath is the configuration path chosen by the operator
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	return p.Parse(data)
}

// Parse parses YAML bytes into a Config entity with defaults applied
func (p *ConfigParser) Parse(data []byte) (*entities.Config, error) {
	var raw yamlConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	timeout, err := parseDuration("http.timeout", raw.HTTP.Timeout)
	if err != nil {
		return nil, err
	}
	initial, err := parseDuration("retry.initial_backoff", raw.Retry.InitialBackoff)
	if err != nil {
		return nil, err
	}
	maxBackoff, err := parseDuration("retry.max_backoff", raw.Retry.MaxBackoff)
	if err != nil {
		return nil, err
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
			Timeout:   timeout,
			UserAgent: raw.HTTP.UserAgent,
		},
		Retry: entities.RetryConfig{
			MaxAttempts:    raw.Retry.MaxAttempts,
			InitialBackoff: initial,
			MaxBackoff:     maxBackoff,
		},
	}

	if err := services.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	cfg.ApplyDefaults()

	return cfg, nil
}

// parseDuration accepts Go duration strings; empty means unset
func parseDuration(field, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return d, nil
}
