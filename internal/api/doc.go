// Package api provides the HTTP transport shared by every resource of the
// resend client. It owns authentication, request construction, response
// status mapping and the rate-limit retry loop.
//
// # Configuration
//
// [NewConfig] builds an immutable [Config]. The API key falls back to
// RESEND_API_KEY when empty; RESEND_BASE_URL and RESEND_USER_AGENT override
// the defaults, and explicit options override the environment.
//
// # Requests
//
// [Config.Build] joins a path onto the base URL and attaches the
// Authorization and User-Agent headers. Headers, a raw query string or a JSON
// body can be attached before [Config.Send] or [Config.Do] dispatches it.
//
// # Error Handling
//
// Responses are mapped onto the apierrors taxonomy:
//
//   - 2xx: returned to the caller for decoding.
//   - 429: [apierrors.RateLimitError] built from the ratelimit-* headers.
//   - other 4xx/5xx with an error document: [apierrors.RemoteError].
//   - 5xx without a document: [apierrors.RemoteError] with KindServerError.
//   - anything undecodable: [apierrors.DecodeError].
//
// # Retry Behavior
//
// [Retry] retries only rate-limited calls, waiting for the longer of the
// server's reset and [RetryConfig.DefaultDelay], plus jitter.
//
// # Thread Safety
//
// A [Config] holds no mutable state and may be shared by any number of
// goroutines.
package api
