package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/resend/client-go/internal/apierrors"
)

// DefaultBaseURL is the production API origin.
const DefaultBaseURL = "https://api.resend.com"

// Environment variables read once by NewConfig.
const (
	EnvAPIKey    = "RESEND_API_KEY"
	EnvBaseURL   = "RESEND_BASE_URL"
	EnvUserAgent = "RESEND_USER_AGENT"
)

// redactedKey replaces the credential whenever a Config is rendered.
const redactedKey = "[REDACTED]"

// DefaultTimeout is the timeout of the HTTP client built when none is supplied.
const DefaultTimeout = 30 * time.Second

// Config is the immutable transport configuration shared by every resource
// service. It is safe for concurrent use.
type Config struct {
	apiKey     string
	userAgent  string
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

type settings struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Config.
type Option func(*settings)

// WithBaseURL sets the base URL. It takes precedence over RESEND_BASE_URL.
func WithBaseURL(u string) Option {
	return func(s *settings) {
		s.baseURL = u
	}
}

// WithUserAgent sets the User-Agent header. It takes precedence over RESEND_USER_AGENT.
func WithUserAgent(ua string) Option {
	return func(s *settings) {
		s.userAgent = ua
	}
}

// WithHTTPClient sets the HTTP client used for every request.
func WithHTTPClient(client *http.Client) Option {
	return func(s *settings) {
		s.httpClient = client
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// NewConfig builds a Config. An empty apiKey falls back to RESEND_API_KEY.
// RESEND_BASE_URL and RESEND_USER_AGENT override the defaults; explicit
// options override the environment.
func NewConfig(apiKey, defaultUserAgent string, opts ...Option) (*Config, error) {
	if apiKey == "" {
		apiKey = os.Getenv(EnvAPIKey)
	}
	if apiKey == "" {
		return nil, apierrors.ErrMissingAPIKey
	}

	s := &settings{
		baseURL:   DefaultBaseURL,
		userAgent: defaultUserAgent,
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		if _, err := parseBaseURL(v); err != nil {
			return nil, fmt.Errorf("%s: %w", EnvBaseURL, err)
		}
		s.baseURL = v
	}
	if v := os.Getenv(EnvUserAgent); v != "" {
		s.userAgent = v
	}

	for _, opt := range opts {
		opt(s)
	}

	base, err := parseBaseURL(s.baseURL)
	if err != nil {
		return nil, err
	}

	if s.httpClient == nil {
		s.httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}

	return &Config{
		apiKey:     apiKey,
		userAgent:  s.userAgent,
		baseURL:    base,
		httpClient: s.httpClient,
		logger:     s.logger,
	}, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", raw)
	}
	return u, nil
}

// BaseURL returns a copy of the configured base URL.
func (c *Config) BaseURL() *url.URL {
	u := *c.baseURL
	return &u
}

// UserAgent returns the User-Agent sent with every request.
func (c *Config) UserAgent() string {
	return c.userAgent
}

// HTTPClient returns the underlying HTTP client.
func (c *Config) HTTPClient() *http.Client {
	return c.httpClient
}

// String renders the Config with the credential redacted.
func (c *Config) String() string {
	return fmt.Sprintf("Config{BaseURL: %s, UserAgent: %q, APIKey: %s}", c.baseURL, c.userAgent, redactedKey)
}

// GoString renders the Config for %#v with the credential redacted.
func (c *Config) GoString() string {
	return "&api." + c.String()
}

// LogValue implements slog.LogValuer.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("base_url", c.baseURL.String()),
		slog.String("user_agent", c.userAgent),
		slog.String("api_key", redactedKey),
	)
}

// Build resolves path against the base URL and returns a Request carrying the
// authorization and user agent headers.
func (c *Config) Build(method, path string) (*Request, error) {
	if err := checkSegments(path); err != nil {
		return nil, &apierrors.InvalidPathError{Path: path, Err: err}
	}
	u, err := c.baseURL.Parse(path)
	if err != nil {
		return nil, &apierrors.InvalidPathError{Path: path, Err: err}
	}

	header := make(http.Header)
	header.Set("Authorization", "Bearer "+c.apiKey)
	header.Set("User-Agent", c.userAgent)
	header.Set("Accept", "application/json")

	return &Request{
		Method: method,
		URL:    u,
		Header: header,
	}, nil
}

// checkSegments rejects empty and dot segments. URL resolution would drop or
// collapse them and retarget the request at a parent resource.
func checkSegments(path string) error {
	for i, seg := range strings.Split(strings.TrimPrefix(path, "/"), "/") {
		if raw, err := url.PathUnescape(seg); err == nil {
			seg = raw
		}
		switch seg {
		case "":
			return fmt.Errorf("segment %d is empty", i)
		case ".", "..":
			return fmt.Errorf("segment %d is a dot segment", i)
		}
	}
	return nil
}

// Send dispatches req. A nil error means a 2xx response whose body the caller
// must close. Every other outcome is mapped onto the apierrors taxonomy.
func (c *Config) Send(ctx context.Context, req *Request) (*http.Response, error) {
	httpReq, err := req.httpRequest(ctx)
	if err != nil {
		return nil, &apierrors.InvalidPathError{Path: req.URL.String(), Err: err}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.DebugContext(ctx, "resend request failed",
			"method", req.Method, "path", req.URL.Path, "error", err)
		return nil, &apierrors.TransportError{Method: req.Method, Path: req.URL.Path, Err: err}
	}

	c.logger.DebugContext(ctx, "resend request",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if err := checkResponse(resp); err != nil {
		resp.Body.Close()
		var rl *apierrors.RateLimitError
		if errors.As(err, &rl) {
			c.logger.WarnContext(ctx, "resend rate limited",
				"path", req.URL.Path, "error", rl.Error())
		}
		return nil, err
	}

	return resp, nil
}

// Do sends req and decodes a JSON response body into result. A nil result
// discards the body.
func (c *Config) Do(ctx context.Context, req *Request, result any) error {
	resp, err := c.Send(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if result == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return &apierrors.DecodeError{
			Context: fmt.Sprintf("%s %s response", req.Method, req.URL.Path),
			Err:     err,
		}
	}
	return nil
}
