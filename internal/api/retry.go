package api

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/resend/client-go/internal/apierrors"
)

// RetryConfig configures retries of rate-limited calls.
type RetryConfig struct {
	// MaxRetries is the maximum number of retries after the first call.
	MaxRetries int
	// DefaultDelay is the minimum wait between attempts. The server's
	// ratelimit-reset wins when it is longer.
	DefaultDelay time.Duration
	// JitterMin and JitterMax bound the random delay added to every wait,
	// sampled from [JitterMin, JitterMax).
	JitterMin time.Duration
	JitterMax time.Duration
}

// DefaultRetryConfig returns the default retry configuration.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:   3,
		DefaultDelay: time.Second,
		JitterMin:    0,
		JitterMax:    30 * time.Millisecond,
	}
}

// Delay calculates the wait before retrying after rl, jitter included.
func (r RetryConfig) Delay(rl *apierrors.RateLimitError) time.Duration {
	delay := r.DefaultDelay
	if rl != nil && rl.ResetSeconds != nil {
		if reset := time.Duration(*rl.ResetSeconds) * time.Second; reset > delay {
			delay = reset
		}
	}
	return delay + r.jitter()
}

func (r RetryConfig) jitter() time.Duration {
	if r.JitterMax <= r.JitterMin {
		return max(r.JitterMin, 0)
	}
	return r.JitterMin + rand.N(r.JitterMax-r.JitterMin)
}

// sleep is replaced in tests.
var sleep = func(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Retry calls fn until it returns something other than a rate limit error or
// MaxRetries retries are spent. Calls are strictly sequential.
func Retry[T any](ctx context.Context, cfg RetryConfig, fn func(context.Context) (T, error)) (T, error) {
	retries := cfg.MaxRetries
	for {
		v, err := fn(ctx)
		var rl *apierrors.RateLimitError
		if err == nil || !errors.As(err, &rl) {
			return v, err
		}
		if retries <= 0 {
			return v, err
		}
		if werr := sleep(ctx, cfg.Delay(rl)); werr != nil {
			var zero T
			return zero, fmt.Errorf("retry wait: %w", werr)
		}
		retries--
	}
}
