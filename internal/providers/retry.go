package providers

import (
	"context"
	"log/slog"
	"time"

	"nba-predictor-service/internal/logging"
)

const (
	// DefaultRetryAttempts bounds how many times a fetch is tried before
	// the failure is surfaced to the caller.
	DefaultRetryAttempts = 3
	// DefaultBackoff is multiplied by the attempt number between tries.
	DefaultBackoff = time.Second
)

// RetryConfig parameterizes the bounded-retry combinator per call site.
type RetryConfig struct {
	Attempts int
	Backoff  time.Duration
	Name     string
	Logger   *slog.Logger
}

func (c RetryConfig) normalized() RetryConfig {
	if c.Attempts <= 0 {
		c.Attempts = DefaultRetryAttempts
	}
	if c.Backoff <= 0 {
		c.Backoff = DefaultBackoff
	}
	return c
}

// Retry runs fn up to cfg.Attempts times, sleeping backoff × attempt between
// failures. The final failure is always propagated, never swallowed.
func Retry[T any](ctx context.Context, cfg RetryConfig, fn func(ctx context.Context) (T, error)) (T, error) {
	cfg = cfg.normalized()

	var zero T
	var lastErr error

	for attempt := 1; attempt <= cfg.Attempts; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt == cfg.Attempts {
			break
		}

		logger := logging.FromContext(ctx, cfg.Logger)
		logging.Warn(logger, "fetch retry",
			slog.String(logging.FieldProvider, cfg.Name),
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", cfg.Attempts),
			slog.Any("error", err),
		)

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(time.Duration(attempt) * cfg.Backoff):
		}
	}

	logger := logging.FromContext(ctx, cfg.Logger)
	logging.Warn(logger, "fetch failed",
		slog.String(logging.FieldProvider, cfg.Name),
		slog.Int("attempts", cfg.Attempts),
		slog.Any("error", lastErr),
	)
	return zero, lastErr
}
