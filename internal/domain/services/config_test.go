package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/scp-fs2open/releasefiles/internal/domain/entities"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *entities.Config)
		wantErr string
	}{
		{
			name:   "defaults with mirrors",
			mutate: func(c *entities.Config) { c.FTP.Mirrors = []string{"https://a.example.org/{type}/{version}/{file}"} },
		},
		{
			name:    "unknown template field",
			mutate:  func(c *entities.Config) { c.FTP.Mirrors = []string{"https://a/{file}", "https://b/{arch}/{file}"} },
			wantErr: "ftp.mirrors[1]",
		},
		{
			name:    "negative attempts",
			mutate:  func(c *entities.Config) { c.Retry.MaxAttempts = -1 },
			wantErr: "retry.max_attempts",
		},
		{
			name: "backoff bounds inverted",
			mutate: func(c *entities.Config) {
				c.Retry.InitialBackoff = 10 * time.Second
				c.Retry.MaxBackoff = time.Second
			},
			wantErr: "retry.max_backoff",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *entities.Config) { c.HTTP.Timeout = -time.Second },
			wantErr: "http.timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := entities.NewDefaultConfig()
			tt.mutate(cfg)
			err := ValidateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
