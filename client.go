package resend

import (
	"context"

	"github.com/resend/client-go/internal/api"
)

// Client is the entry point to the API. Each resource is exposed as a service
// field. A Client holds no mutable state and is safe for concurrent use.
type Client struct {
	cfg *api.Config

	Emails     *EmailsService
	Batch      *BatchService
	Receiving  *ReceivingService
	Domains    *DomainsService
	Audiences  *AudiencesService
	Contacts   *ContactsService
	Segments   *SegmentsService
	Broadcasts *BroadcastsService
	Templates  *TemplatesService
	Topics     *TopicsService
	Webhooks   *WebhooksService
	APIKeys    *APIKeysService
}

// New creates a client. An empty apiKey falls back to RESEND_API_KEY; if both
// are empty New returns ErrMissingAPIKey. RESEND_BASE_URL and
// RESEND_USER_AGENT are read once here.
func New(apiKey string, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	apiCfg, err := api.NewConfig(apiKey, defaultUserAgent, cfg.apiOptions()...)
	if err != nil {
		return nil, err
	}

	s := service{cfg: apiCfg}
	return &Client{
		cfg:        apiCfg,
		Emails:     &EmailsService{s},
		Batch:      &BatchService{s},
		Receiving:  &ReceivingService{s},
		Domains:    &DomainsService{s},
		Audiences:  &AudiencesService{s},
		Contacts:   &ContactsService{s},
		Segments:   &SegmentsService{s},
		Broadcasts: &BroadcastsService{s},
		Templates:  &TemplatesService{s},
		Topics:     &TopicsService{s},
		Webhooks:   &WebhooksService{s},
		APIKeys:    &APIKeysService{s},
	}, nil
}

// BaseURL returns the resolved API base URL.
func (c *Client) BaseURL() string {
	return c.cfg.BaseURL().String()
}

// UserAgent returns the User-Agent sent with every request.
func (c *Client) UserAgent() string {
	return c.cfg.UserAgent()
}

// String renders the client without its API key.
func (c *Client) String() string {
	return "resend.Client{" + c.cfg.String() + "}"
}

// service is embedded by every resource service.
type service struct {
	cfg *api.Config
}

// requestOption adjusts a request between Build and Send.
type requestOption func(*api.Request)

func withIdempotencyKey(key string) requestOption {
	return func(r *api.Request) {
		r.SetIdempotencyKey(key)
	}
}

func withHeader(key, value string) requestOption {
	return func(r *api.Request) {
		r.SetHeader(key, value)
	}
}

func withQuery(query string) requestOption {
	return func(r *api.Request) {
		if query != "" {
			r.SetRawQuery(query)
		}
	}
}

// call builds, attaches body and options, sends and decodes into result.
func (s service) call(ctx context.Context, method, path string, body, result any, opts ...requestOption) error {
	req, err := s.cfg.Build(method, path)
	if err != nil {
		return err
	}
	for _, opt := range opts {
		opt(req)
	}
	if body != nil {
		if err := req.SetJSON(body); err != nil {
			return invalidArgument("body", err.Error())
		}
	}
	return s.cfg.Do(ctx, req, result)
}

// doJSON is call with a freshly allocated typed result.
func doJSON[T any](ctx context.Context, s service, method, path string, body any, opts ...requestOption) (*T, error) {
	var out T
	if err := s.call(ctx, method, path, body, &out, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// list validates the paginator and fetches one page.
func list[T any](ctx context.Context, s service, path string, p Paginator) (*ListResponse[T], error) {
	var opts []requestOption
	if p != nil {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		opts = append(opts, withQuery(p.Query()))
	}
	return doJSON[ListResponse[T]](ctx, s, "GET", path, nil, opts...)
}

// route joins escaped segments; identifiers are always path segments.
func route(segments ...string) string {
	return api.PathJoin(segments...)
}
