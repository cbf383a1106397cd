package resend

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// clearEnv blanks the variables New reads so the host environment cannot leak
// into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("RESEND_API_KEY", "")
	t.Setenv("RESEND_BASE_URL", "")
	t.Setenv("RESEND_USER_AGENT", "")
}

// capturedRequest is what the test server saw.
type capturedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

type recorder struct {
	mu   sync.Mutex
	reqs []capturedRequest
}

func (r *recorder) add(req capturedRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reqs = append(r.reqs, req)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reqs)
}

func (r *recorder) last(t *testing.T) capturedRequest {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.reqs) == 0 {
		t.Fatal("server received no request")
	}
	return r.reqs[len(r.reqs)-1]
}

// newTestClient starts a server that records each request and answers with
// status and body.
func newTestClient(t *testing.T, status int, body string) (*Client, *recorder) {
	t.Helper()
	clearEnv(t)

	seen := &recorder{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		seen.add(capturedRequest{
			Method: r.Method,
			Path:   r.URL.EscapedPath(),
			Query:  r.URL.RawQuery,
			Header: r.Header.Clone(),
			Body:   b,
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(server.Close)

	client, err := New("re_test", WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client, seen
}

func TestNew_RequiresAPIKey(t *testing.T) {
	clearEnv(t)

	_, err := New("")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("New() error = %v, want ErrMissingAPIKey", err)
	}
}

func TestNew_APIKeyFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("RESEND_API_KEY", "re_env")

	if _, err := New(""); err != nil {
		t.Fatalf("New() error = %v", err)
	}
}

func TestNew_Defaults(t *testing.T) {
	clearEnv(t)

	client, err := New("re_test")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client.BaseURL() != DefaultBaseURL {
		t.Errorf("BaseURL() = %s, want %s", client.BaseURL(), DefaultBaseURL)
	}
	if !strings.HasPrefix(client.UserAgent(), "resend-go/") {
		t.Errorf("UserAgent() = %q, want resend-go/ prefix", client.UserAgent())
	}
}

func TestNew_OptionsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("RESEND_BASE_URL", "https://env.example.com")
	t.Setenv("RESEND_USER_AGENT", "env-agent")

	client, err := New("re_test", WithBaseURL("https://opt.example.com"), WithUserAgent("opt-agent"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client.BaseURL() != "https://opt.example.com" {
		t.Errorf("BaseURL() = %s, want https://opt.example.com", client.BaseURL())
	}
	if client.UserAgent() != "opt-agent" {
		t.Errorf("UserAgent() = %s, want opt-agent", client.UserAgent())
	}
}

func TestNew_InvalidEnvBaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("RESEND_BASE_URL", "::not a url")

	if _, err := New("re_test"); err == nil {
		t.Fatal("New() expected error for invalid RESEND_BASE_URL")
	}
}

func TestNew_AllServicesSet(t *testing.T) {
	clearEnv(t)

	c, err := New("re_test")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	services := map[string]any{
		"Emails": c.Emails, "Batch": c.Batch, "Receiving": c.Receiving, "Domains": c.Domains,
		"Audiences": c.Audiences, "Contacts": c.Contacts, "Segments": c.Segments,
		"Broadcasts": c.Broadcasts, "Templates": c.Templates, "Topics": c.Topics,
		"Webhooks": c.Webhooks, "APIKeys": c.APIKeys,
	}
	for name, s := range services {
		if s == nil {
			t.Errorf("%s service is nil", name)
		}
	}
}

func TestClient_StringRedactsKey(t *testing.T) {
	clearEnv(t)

	c, err := New("re_supersecret")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	for _, s := range []string{c.String(), fmt.Sprintf("%v", c), fmt.Sprintf("%+v", c)} {
		if strings.Contains(s, "re_supersecret") {
			t.Errorf("rendering leaks API key: %s", s)
		}
	}
}

func TestClient_SendsAuthAndUserAgent(t *testing.T) {
	client, seen := newTestClient(t, http.StatusOK, `{"id":"em_1"}`)

	if _, err := client.Emails.Get(t.Context(), "em_1"); err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	req := seen.last(t)
	if got := req.Header.Get("Authorization"); got != "Bearer re_test" {
		t.Errorf("Authorization = %q, want Bearer re_test", got)
	}
	if req.Header.Get("User-Agent") == "" {
		t.Error("User-Agent header missing")
	}
}

func TestClient_RemoteErrorsMatchSentinels(t *testing.T) {
	tests := []struct {
		status int
		body   string
		want   error
	}{
		{401, `{"statusCode":401,"name":"missing_api_key","message":"Missing API key"}`, ErrUnauthorized},
		{403, `{"statusCode":403,"name":"invalid_api_key","message":"API key is invalid"}`, ErrUnauthorized},
		{404, `{"statusCode":404,"name":"not_found","message":"Email not found"}`, ErrNotFound},
		{422, `{"statusCode":422,"name":"validation_error","message":"Invalid to field"}`, ErrValidation},
		{500, `{"statusCode":500,"name":"application_error","message":"boom"}`, ErrServer},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			client, _ := newTestClient(t, tt.status, tt.body)

			_, err := client.Emails.Get(t.Context(), "em_1")
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			var remote *RemoteError
			if !errors.As(err, &remote) {
				t.Fatalf("error = %T, want *RemoteError", err)
			}
			if remote.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", remote.StatusCode, tt.status)
			}
			var re ResendError
			if !errors.As(err, &re) {
				t.Error("error does not implement ResendError")
			}
		})
	}
}

func TestClient_RateLimitError(t *testing.T) {
	clearEnv(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("ratelimit-limit", "10")
		w.Header().Set("ratelimit-remaining", "0")
		w.Header().Set("ratelimit-reset", "5")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := New("re_test", WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = client.Domains.List(t.Context(), nil)
	var rl *RateLimitError
	if !errors.As(err, &rl) {
		t.Fatalf("error = %v, want *RateLimitError", err)
	}
	if rl.Limit == nil || *rl.Limit != 10 || rl.Remaining == nil || *rl.Remaining != 0 ||
		rl.ResetSeconds == nil || *rl.ResetSeconds != 5 {
		t.Errorf("RateLimitError = %v, want limit=10 remaining=0 reset=5s", rl)
	}
}

func TestClient_DecodeError(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `{not json`)

	_, err := client.Domains.Get(t.Context(), "d_1")
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Errorf("error = %v, want *DecodeError", err)
	}
}

func TestClient_JSONBodyHasContentType(t *testing.T) {
	client, seen := newTestClient(t, http.StatusOK, `{"id":"aud_1","name":"news"}`)

	if _, err := client.Audiences.Create(t.Context(), &CreateAudienceRequest{Name: "news"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	req := seen.last(t)
	if ct := req.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	var body map[string]any
	if err := json.Unmarshal(req.Body, &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body["name"] != "news" {
		t.Errorf("body = %v", body)
	}
}
