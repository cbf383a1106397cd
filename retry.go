package resend

import (
	"context"

	"github.com/resend/client-go/internal/api"
)

// RetryOptions configures Retry.
//
//   - MaxRetries: retries after the first call (0 means a single call).
//   - DefaultDelay: minimum wait; a longer ratelimit-reset wins.
//   - JitterMin, JitterMax: random extra wait sampled from [JitterMin, JitterMax).
type RetryOptions = api.RetryConfig

// DefaultRetryOptions returns 3 retries, a 1s minimum wait and 0-30ms jitter.
func DefaultRetryOptions() RetryOptions {
	return api.DefaultRetryConfig()
}

// Retry calls fn and, while it fails with a *RateLimitError, waits and calls
// it again up to opts.MaxRetries more times. Any other result is returned
// immediately. A cancelled ctx ends the wait and is returned wrapped.
//
//	email, err := resend.Retry(ctx, resend.DefaultRetryOptions(), func(ctx context.Context) (*resend.SendEmailResponse, error) {
//		return client.Emails.Send(ctx, req)
//	})
func Retry[T any](ctx context.Context, opts RetryOptions, fn func(context.Context) (T, error)) (T, error) {
	return api.Retry(ctx, opts, fn)
}
