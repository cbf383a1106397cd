package resend

import (
	"log/slog"
	"net/http"

	"github.com/resend/client-go/internal/api"
)

// DefaultBaseURL is the API origin used when neither WithBaseURL nor
// RESEND_BASE_URL is set.
const DefaultBaseURL = api.DefaultBaseURL

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL. It overrides RESEND_BASE_URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithUserAgent sets the User-Agent header. It overrides RESEND_USER_AGENT.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// WithHTTPClient sets a custom HTTP client. Timeouts, proxies and connection
// pooling are configured there; the library adds none of its own.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithLogger sets the logger for request tracing. Requests are logged at
// Debug and rate limiting at Warn. The API key is never logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// apiOptions converts the set fields into transport options. Unset fields are
// left out so the environment can supply them.
func (c *clientConfig) apiOptions() []api.Option {
	var opts []api.Option
	if c.baseURL != "" {
		opts = append(opts, api.WithBaseURL(c.baseURL))
	}
	if c.userAgent != "" {
		opts = append(opts, api.WithUserAgent(c.userAgent))
	}
	if c.httpClient != nil {
		opts = append(opts, api.WithHTTPClient(c.httpClient))
	}
	if c.logger != nil {
		opts = append(opts, api.WithLogger(c.logger))
	}
	return opts
}
