// Package retry provides retry policies for remote calls, backed by cenkalti/backoff.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/scp-fs2open/releasefiles/internal/domain/entities"
	"github.com/scp-fs2open/releasefiles/internal/domain/interfaces"
)

// BackoffPolicy retries failed operations with exponential backoff
type BackoffPolicy struct {
	maxAttempts int
	newBackOff  func() backoff.BackOff
	logger      interfaces.Logger
}

// Option customizes a BackoffPolicy
type Option func(*BackoffPolicy)

// WithLogger reports every failed attempt that will be retried
func WithLogger(logger interfaces.Logger) Option {
	return func(p *BackoffPolicy) {
		p.logger = logger
	}
}

// WithoutDelay retries immediately; intended for tests
func WithoutDelay() Option {
	return func(p *BackoffPolicy) {
		p.newBackOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }
	}
}

// NewBackoffPolicy creates a policy from the retry configuration
func NewBackoffPolicy(cfg entities.RetryConfig, opts ...Option) *BackoffPolicy {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = entities.DefaultMaxAttempts
	}
	initial := cfg.InitialBackoff
	if initial <= 0 {
		initial = entities.DefaultInitialBackoff
	}
	maxBackoff := cfg.MaxBackoff
	if maxBackoff < initial {
		maxBackoff = initial
	}

	p := &BackoffPolicy{
		maxAttempts: maxAttempts,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = initial
			b.MaxInterval = maxBackoff
			return b
		},
		logger: &interfaces.NoOpLogger{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// MaxAttempts returns the attempt budget, including the first try
func (p *BackoffPolicy) MaxAttempts() int {
	return p.maxAttempts
}

// Do runs op until it succeeds, the attempts are spent, or ctx is done.
// The last failure is returned unchanged.
func (p *BackoffPolicy) Do(ctx context.Context, op func(ctx context.Context) error) error {
	attempt := 0
	_, err := backoff.Retry(ctx,
		func() (struct{}, error) {
			attempt++
			return struct{}{}, op(ctx)
		},
		backoff.WithBackOff(p.newBackOff()),
		backoff.WithMaxTries(uint(p.maxAttempts)),
		// the attempt budget is the only bound
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, next time.Duration) {
			p.logger.Warn("attempt failed, retrying",
				interfaces.F("attempt", attempt),
				interfaces.F("max_attempts", p.maxAttempts),
				interfaces.F("backoff", next.String()),
				interfaces.Err(err))
		}),
	)
	return err
}

// SingleAttempt runs an operation exactly once
type SingleAttempt struct{}

// MaxAttempts always returns 1
func (SingleAttempt) MaxAttempts() int { return 1 }

// Do runs op once and returns its error
func (SingleAttempt) Do(ctx context.Context, op func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return op(ctx)
}
