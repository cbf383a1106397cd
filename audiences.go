package resend

import (
	"context"
	"net/http"
)

// CreateAudienceRequest is the body of POST /audiences.
type CreateAudienceRequest struct {
	Name string `json:"name"`
}

// Audience is a named list of contacts.
type Audience struct {
	Object    string     `json:"object,omitempty"`
	ID        AudienceID `json:"id"`
	Name      string     `json:"name"`
	CreatedAt string     `json:"created_at,omitempty"`
}

// AudiencesService manages audiences.
type AudiencesService struct {
	service
}

// Create creates an audience.
func (s *AudiencesService) Create(ctx context.Context, req *CreateAudienceRequest) (*Audience, error) {
	if req == nil || req.Name == "" {
		return nil, invalidArgument("name", "is required")
	}
	return doJSON[Audience](ctx, s.service, http.MethodPost, "/audiences", req)
}

// Get retrieves an audience.
func (s *AudiencesService) Get(ctx context.Context, id AudienceID) (*Audience, error) {
	return doJSON[Audience](ctx, s.service, http.MethodGet, route("audiences", id.String()), nil)
}

// List retrieves a page of audiences.
func (s *AudiencesService) List(ctx context.Context, opts Paginator) (*ListResponse[Audience], error) {
	return list[Audience](ctx, s.service, "/audiences", opts)
}

// Delete removes an audience and its contacts.
func (s *AudiencesService) Delete(ctx context.Context, id AudienceID) (*Deleted[AudienceID], error) {
	return doJSON[Deleted[AudienceID]](ctx, s.service, http.MethodDelete, route("audiences", id.String()), nil)
}
