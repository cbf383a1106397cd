package resend

import (
	"context"
	"net/http"
)

// Subscription is the default subscription state of a topic.
type Subscription string

const (
	SubscriptionOptIn  Subscription = "opt_in"
	SubscriptionOptOut Subscription = "opt_out"
)

// CreateTopicRequest is the body of POST /topics.
type CreateTopicRequest struct {
	Name                string       `json:"name"`
	DefaultSubscription Subscription `json:"default_subscription"`
	Description         string       `json:"description,omitempty"`
}

// Topic is a subscription category contacts can opt in or out of.
type Topic struct {
	Object              string       `json:"object,omitempty"`
	ID                  TopicID      `json:"id"`
	Name                string       `json:"name"`
	Description         string       `json:"description,omitempty"`
	DefaultSubscription Subscription `json:"default_subscription"`
	CreatedAt           string       `json:"created_at,omitempty"`
}

// UpdateTopicRequest is the body of PATCH /topics/{id}.
type UpdateTopicRequest struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// TopicsService manages topics.
type TopicsService struct {
	service
}

// Create creates a topic.
func (s *TopicsService) Create(ctx context.Context, req *CreateTopicRequest) (*ObjectRef[TopicID], error) {
	if req == nil || req.Name == "" {
		return nil, invalidArgument("name", "is required")
	}
	switch req.DefaultSubscription {
	case SubscriptionOptIn, SubscriptionOptOut:
	default:
		return nil, invalidArgument("default_subscription", "must be opt_in or opt_out")
	}
	return doJSON[ObjectRef[TopicID]](ctx, s.service, http.MethodPost, "/topics", req)
}

// Get retrieves a topic.
func (s *TopicsService) Get(ctx context.Context, id TopicID) (*Topic, error) {
	return doJSON[Topic](ctx, s.service, http.MethodGet, route("topics", id.String()), nil)
}

// List retrieves a page of topics.
func (s *TopicsService) List(ctx context.Context, opts Paginator) (*ListResponse[Topic], error) {
	return list[Topic](ctx, s.service, "/topics", opts)
}

// Update renames or redescribes a topic.
func (s *TopicsService) Update(ctx context.Context, id TopicID, req *UpdateTopicRequest) (*ObjectRef[TopicID], error) {
	if req == nil {
		return nil, invalidArgument("request", "is required")
	}
	return doJSON[ObjectRef[TopicID]](ctx, s.service, http.MethodPatch, route("topics", id.String()), req)
}

// Delete removes a topic.
func (s *TopicsService) Delete(ctx context.Context, id TopicID) (*Deleted[TopicID], error) {
	return doJSON[Deleted[TopicID]](ctx, s.service, http.MethodDelete, route("topics", id.String()), nil)
}
