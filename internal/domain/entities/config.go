package entities

import "time"

// Default configuration values
const (
	DefaultGitHubAPIURL   = "https://api.github.com"
	DefaultUserAgent      = "releasefiles/1.0"
	DefaultHTTPTimeout    = 60 * time.Second
	DefaultMaxAttempts    = 5
	DefaultInitialBackoff = 1 * time.Second
	DefaultMaxBackoff     = 30 * time.Second
)

// Config is the resolver configuration
type Config struct {
	GitHub GitHubConfig
	FTP    FTPConfig
	HTTP   HTTPConfig
	Retry  RetryConfig
}

// GitHubConfig identifies the repository whose releases are resolved
type GitHubConfig struct {
	User   string
	Repo   string
	APIURL string
	Token  string
	Ignore []string // glob patterns of asset names dropped before classification
}

// FTPConfig lists the nightly mirrors in priority order
type FTPConfig struct {
	// Mirrors are URL templates taking {type}, {version} and {file}
	Mirrors []string
}

// HTTPConfig holds transport settings
type HTTPConfig struct {
	Timeout   time.Duration
	UserAgent string
}

// RetryConfig bounds the retry policy used for the releases API
type RetryConfig struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// NewDefaultConfig returns a configuration with every optional value set
func NewDefaultConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			APIURL: DefaultGitHubAPIURL,
		},
		HTTP: HTTPConfig{
			Timeout:   DefaultHTTPTimeout,
			UserAgent: DefaultUserAgent,
		},
		Retry: RetryConfig{
			MaxAttempts:    DefaultMaxAttempts,
			InitialBackoff: DefaultInitialBackoff,
			MaxBackoff:     DefaultMaxBackoff,
		},
	}
}

// ApplyDefaults fills unset optional values
func (c *Config) ApplyDefaults() {
	if c.GitHub.APIURL == "" {
		c.GitHub.APIURL = DefaultGitHubAPIURL
	}
	if c.HTTP.Timeout <= 0 {
		c.HTTP.Timeout = DefaultHTTPTimeout
	}
	if c.HTTP.UserAgent == "" {
		c.HTTP.UserAgent = DefaultUserAgent
	}
	if c.Retry.MaxAttempts <= 0 {
		c.Retry.MaxAttempts = DefaultMaxAttempts
	}
	if c.Retry.InitialBackoff <= 0 {
		c.Retry.InitialBackoff = DefaultInitialBackoff
	}
	if c.Retry.MaxBackoff <= 0 {
		c.Retry.MaxBackoff = DefaultMaxBackoff
	}
}

// HasRepository returns true if both the GitHub user and repository are set
func (c *Config) HasRepository() bool {
	return c.GitHub.User != "" && c.GitHub.Repo != ""
}
