package services

import (
	"fmt"

	"github.com/scp-fs2open/releasefiles/internal/domain/entities"
)

// ValidateConfig checks the values a resolver relies on
func ValidateConfig(cfg *entities.Config) error {
	for i, m := range cfg.FTP.Mirrors {
		if err := ValidateMirrorTemplate(m); err != nil {
			return fmt.Errorf("ftp.mirrors[%d]: %w", i, err)
		}
	}
	if cfg.Retry.MaxAttempts < 0 {
		return fmt.Errorf("retry.max_attempts must not be negative")
	}
	if cfg.Retry.MaxBackoff > 0 && cfg.Retry.MaxBackoff < cfg.Retry.InitialBackoff {
		return fmt.Errorf("retry.max_backoff (%s) is shorter than retry.initial_backoff (%s)",
			cfg.Retry.MaxBackoff, cfg.Retry.InitialBackoff)
	}
	if cfg.HTTP.Timeout < 0 {
		return fmt.Errorf("http.timeout must not be negative")
	}
	return nil
}
