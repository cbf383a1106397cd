package resend

import (
	"context"
	"net/http"
)

// CreateSegmentRequest is the body of POST /segments.
type CreateSegmentRequest struct {
	Name string `json:"name"`
}

// Segment is a named subset of contacts that broadcasts can target.
type Segment struct {
	Object    string    `json:"object,omitempty"`
	ID        SegmentID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt string    `json:"created_at,omitempty"`
}

// SegmentsService manages segments and their membership.
type SegmentsService struct {
	service
}

// Create creates a segment.
func (s *SegmentsService) Create(ctx context.Context, req *CreateSegmentRequest) (*Segment, error) {
	if req == nil || req.Name == "" {
		return nil, invalidArgument("name", "is required")
	}
	return doJSON[Segment](ctx, s.service, http.MethodPost, "/segments", req)
}

// Get retrieves a segment.
func (s *SegmentsService) Get(ctx context.Context, id SegmentID) (*Segment, error) {
	return doJSON[Segment](ctx, s.service, http.MethodGet, route("segments", id.String()), nil)
}

// List retrieves a page of segments.
func (s *SegmentsService) List(ctx context.Context, opts Paginator) (*ListResponse[Segment], error) {
	return list[Segment](ctx, s.service, "/segments", opts)
}

// Delete removes a segment. Its contacts are kept.
func (s *SegmentsService) Delete(ctx context.Context, id SegmentID) (*Deleted[SegmentID], error) {
	return doJSON[Deleted[SegmentID]](ctx, s.service, http.MethodDelete, route("segments", id.String()), nil)
}

// AddContact adds a contact to a segment.
func (s *SegmentsService) AddContact(ctx context.Context, contact ContactRef, id SegmentID) (*ObjectRef[SegmentID], error) {
	return doJSON[ObjectRef[SegmentID]](ctx, s.service, http.MethodPost,
		route("contacts", contact.String(), "segments", id.String()), nil)
}

// RemoveContact removes a contact from a segment.
func (s *SegmentsService) RemoveContact(ctx context.Context, contact ContactRef, id SegmentID) (*Deleted[SegmentID], error) {
	return doJSON[Deleted[SegmentID]](ctx, s.service, http.MethodDelete,
		route("contacts", contact.String(), "segments", id.String()), nil)
}
