package resend

import (
	"context"
	"encoding/json"
	"net/http"
)

// VariableType is the declared type of a template variable.
type VariableType string

const (
	VariableString VariableType = "string"
	VariableNumber VariableType = "number"
)

// TemplateVariable declares a placeholder usable as {{{KEY}}} in a template.
type TemplateVariable struct {
	Key           string       `json:"key"`
	Type          VariableType `json:"type"`
	FallbackValue any          `json:"fallback_value,omitempty"`
}

// CreateTemplateRequest is the body of POST /templates.
type CreateTemplateRequest struct {
	Name      string             `json:"name"`
	Alias     string             `json:"alias,omitempty"`
	From      string             `json:"from,omitempty"`
	Subject   string             `json:"subject,omitempty"`
	ReplyTo   []string           `json:"reply_to,omitempty"`
	HTML      string             `json:"html"`
	Text      string             `json:"text,omitempty"`
	Variables []TemplateVariable `json:"variables,omitempty"`
}

// NewTemplate starts a template with its name and HTML.
func NewTemplate(name, html string) *CreateTemplateRequest {
	return &CreateTemplateRequest{Name: name, HTML: html}
}

// WithAlias sets a human-readable alias usable in place of the ID.
func (t *CreateTemplateRequest) WithAlias(alias string) *CreateTemplateRequest {
	t.Alias = alias
	return t
}

// WithSubject sets the default subject.
func (t *CreateTemplateRequest) WithSubject(subject string) *CreateTemplateRequest {
	t.Subject = subject
	return t
}

// WithFrom sets the default sender.
func (t *CreateTemplateRequest) WithFrom(from string) *CreateTemplateRequest {
	t.From = from
	return t
}

// WithVariable declares a variable.
func (t *CreateTemplateRequest) WithVariable(v TemplateVariable) *CreateTemplateRequest {
	t.Variables = append(t.Variables, v)
	return t
}

// Template is a stored email template.
type Template struct {
	Object      string             `json:"object,omitempty"`
	ID          TemplateID         `json:"id"`
	Name        string             `json:"name"`
	Alias       string             `json:"alias,omitempty"`
	Status      string             `json:"status,omitempty"`
	From        string             `json:"from,omitempty"`
	Subject     string             `json:"subject,omitempty"`
	ReplyTo     []string           `json:"reply_to"`
	HTML        string             `json:"html,omitempty"`
	Text        string             `json:"text,omitempty"`
	Variables   []TemplateVariable `json:"variables"`
	CreatedAt   string             `json:"created_at,omitempty"`
	UpdatedAt   string             `json:"updated_at,omitempty"`
	PublishedAt string             `json:"published_at,omitempty"`
}

type templateWire Template

// UnmarshalJSON decodes null lists as empty.
func (t *Template) UnmarshalJSON(b []byte) error {
	var w templateWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	w.ReplyTo = nullable(w.ReplyTo)
	w.Variables = nullable(w.Variables)
	*t = Template(w)
	return nil
}

// UpdateTemplateRequest is the body of PATCH /templates/{id}. Empty fields are
// left unchanged.
type UpdateTemplateRequest struct {
	Name      string             `json:"name,omitempty"`
	Alias     string             `json:"alias,omitempty"`
	From      string             `json:"from,omitempty"`
	Subject   string             `json:"subject,omitempty"`
	ReplyTo   []string           `json:"reply_to,omitempty"`
	HTML      string             `json:"html,omitempty"`
	Text      string             `json:"text,omitempty"`
	Variables []TemplateVariable `json:"variables,omitempty"`
}

// TemplatesService manages templates.
type TemplatesService struct {
	service
}

// Create creates a draft template.
func (s *TemplatesService) Create(ctx context.Context, req *CreateTemplateRequest) (*ObjectRef[TemplateID], error) {
	if req == nil || req.Name == "" {
		return nil, invalidArgument("name", "is required")
	}
	return doJSON[ObjectRef[TemplateID]](ctx, s.service, http.MethodPost, "/templates", req)
}

// Get retrieves a template by ID or alias.
func (s *TemplatesService) Get(ctx context.Context, id TemplateID) (*Template, error) {
	return doJSON[Template](ctx, s.service, http.MethodGet, route("templates", id.String()), nil)
}

// List retrieves a page of templates.
func (s *TemplatesService) List(ctx context.Context, opts Paginator) (*ListResponse[Template], error) {
	return list[Template](ctx, s.service, "/templates", opts)
}

// Update changes a template's draft.
func (s *TemplatesService) Update(ctx context.Context, id TemplateID, req *UpdateTemplateRequest) (*ObjectRef[TemplateID], error) {
	if req == nil {
		return nil, invalidArgument("request", "is required")
	}
	return doJSON[ObjectRef[TemplateID]](ctx, s.service, http.MethodPatch, route("templates", id.String()), req)
}

// Delete removes a template.
func (s *TemplatesService) Delete(ctx context.Context, id TemplateID) (*Deleted[TemplateID], error) {
	return doJSON[Deleted[TemplateID]](ctx, s.service, http.MethodDelete, route("templates", id.String()), nil)
}

// Publish makes the current draft the version used for sending.
func (s *TemplatesService) Publish(ctx context.Context, id TemplateID) (*ObjectRef[TemplateID], error) {
	return doJSON[ObjectRef[TemplateID]](ctx, s.service, http.MethodPost, route("templates", id.String(), "publish"), nil)
}

// Duplicate copies a template and returns the new one's ID.
func (s *TemplatesService) Duplicate(ctx context.Context, id TemplateID) (*ObjectRef[TemplateID], error) {
	return doJSON[ObjectRef[TemplateID]](ctx, s.service, http.MethodPost, route("templates", id.String(), "duplicate"), nil)
}
