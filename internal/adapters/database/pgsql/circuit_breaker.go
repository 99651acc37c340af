package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/payment_recon_app/internal/apperrors"
	"github.com/sony/gobreaker"
)

// BreakerConfig controls when the store circuit opens.
type BreakerConfig struct {
	MaxFailures uint32        // consecutive store failures before opening
	OpenTimeout time.Duration // how long the circuit stays open before probing
}

// DefaultBreakerConfig returns the breaker settings used when none are configured.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{MaxFailures: 5, OpenTimeout: 30 * time.Second}
}

func newStoreBreaker(cfg BreakerConfig) *gobreaker.CircuitBreaker {
	if cfg.MaxFailures == 0 {
		cfg.MaxFailures = DefaultBreakerConfig().MaxFailures
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = DefaultBreakerConfig().OpenTimeout
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "ledger-store",
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.MaxFailures
		},
		// Business rejections (not found, invalid transition, ...) are the
		// store working correctly; only infrastructure failures count.
		IsSuccessful: func(err error) bool {
			return err == nil || (!apperrors.IsRetryable(err) && apperrors.Kind(err) != "INTERNAL")
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			slog.Warn("Circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})
}

// guard runs fn with the store timeout applied and through the circuit breaker.
func (r *BaseRepository) guard(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if r.breaker == nil {
		return fn(ctx)
	}
	_, err := r.breaker.Execute(func() (interface{}, error) {
		return nil, fn(ctx)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	return err
}
