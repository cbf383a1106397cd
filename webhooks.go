package resend

import (
	"context"
	"encoding/json"
	"net/http"
)

// WebhookStatus is whether a webhook endpoint receives events.
type WebhookStatus string

const (
	WebhookEnabled  WebhookStatus = "enabled"
	WebhookDisabled WebhookStatus = "disabled"
)

// CreateWebhookRequest is the body of POST /webhooks.
type CreateWebhookRequest struct {
	Endpoint string      `json:"endpoint"`
	Events   []EventType `json:"events"`
}

// Webhook is an endpoint that receives events. SigningSecret is only returned
// on creation; use it to verify deliveries before calling ParseEvent.
type Webhook struct {
	Object        string        `json:"object,omitempty"`
	ID            WebhookID     `json:"id"`
	Endpoint      string        `json:"endpoint,omitempty"`
	Events        []EventType   `json:"events"`
	Status        WebhookStatus `json:"status,omitempty"`
	SigningSecret string        `json:"signing_secret,omitempty"`
	CreatedAt     string        `json:"created_at,omitempty"`
}

type webhookWire Webhook

// UnmarshalJSON decodes a null event list as empty.
func (w *Webhook) UnmarshalJSON(b []byte) error {
	var v webhookWire
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	v.Events = nullable(v.Events)
	*w = Webhook(v)
	return nil
}

// UpdateWebhookRequest is the body of PATCH /webhooks/{id}.
type UpdateWebhookRequest struct {
	Endpoint string        `json:"endpoint,omitempty"`
	Events   []EventType   `json:"events,omitempty"`
	Status   WebhookStatus `json:"status,omitempty"`
}

// WebhooksService manages webhook endpoints.
type WebhooksService struct {
	service
}

// Create registers an endpoint.
func (s *WebhooksService) Create(ctx context.Context, req *CreateWebhookRequest) (*Webhook, error) {
	if req == nil || req.Endpoint == "" {
		return nil, invalidArgument("endpoint", "is required")
	}
	if len(req.Events) == 0 {
		return nil, invalidArgument("events", "at least one event type is required")
	}
	return doJSON[Webhook](ctx, s.service, http.MethodPost, "/webhooks", req)
}

// Get retrieves a webhook.
func (s *WebhooksService) Get(ctx context.Context, id WebhookID) (*Webhook, error) {
	return doJSON[Webhook](ctx, s.service, http.MethodGet, route("webhooks", id.String()), nil)
}

// List retrieves a page of webhooks.
func (s *WebhooksService) List(ctx context.Context, opts Paginator) (*ListResponse[Webhook], error) {
	return list[Webhook](ctx, s.service, "/webhooks", opts)
}

// Update changes a webhook's endpoint, events or status.
func (s *WebhooksService) Update(ctx context.Context, id WebhookID, req *UpdateWebhookRequest) (*ObjectRef[WebhookID], error) {
	if req == nil {
		return nil, invalidArgument("request", "is required")
	}
	return doJSON[ObjectRef[WebhookID]](ctx, s.service, http.MethodPatch, route("webhooks", id.String()), req)
}

// Delete removes a webhook.
func (s *WebhooksService) Delete(ctx context.Context, id WebhookID) (*Deleted[WebhookID], error) {
	return doJSON[Deleted[WebhookID]](ctx, s.service, http.MethodDelete, route("webhooks", id.String()), nil)
}
