package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// IdempotencyKeyHeader carries the caller-supplied deduplication key.
const IdempotencyKeyHeader = "Idempotency-Key"

// Request is a short-lived request under construction. It is produced by
// Config.Build and consumed by Config.Send.
type Request struct {
	Method string
	URL    *url.URL
	Header http.Header
	body   []byte
}

// SetHeader sets a header, replacing any existing value.
func (r *Request) SetHeader(key, value string) *Request {
	r.Header.Set(key, value)
	return r
}

// SetIdempotencyKey attaches the Idempotency-Key header. An empty key is a no-op.
func (r *Request) SetIdempotencyKey(key string) *Request {
	if key != "" {
		r.Header.Set(IdempotencyKeyHeader, key)
	}
	return r
}

// SetRawQuery replaces the query string. The string is used as-is, so the
// caller controls parameter order.
func (r *Request) SetRawQuery(query string) *Request {
	r.URL.RawQuery = query
	return r
}

// SetJSON marshals v as the request body.
func (r *Request) SetJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal request body: %w", err)
	}
	r.body = data
	r.Header.Set("Content-Type", "application/json")
	return nil
}

// Body returns the serialised request body, or nil when none was set.
func (r *Request) Body() []byte {
	return r.body
}

func (r *Request) httpRequest(ctx context.Context) (*http.Request, error) {
	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header = r.Header.Clone()
	return req, nil
}

// PathJoin escapes each segment and joins them under a leading slash. Identifiers
// are always path segments, never query parameters.
func PathJoin(segments ...string) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}
