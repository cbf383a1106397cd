package resend

import (
	"context"
	"encoding/json"
	"net/http"
)

// CreateBroadcastRequest is the body of POST /broadcasts. Either SegmentID or
// the older AudienceID selects the recipients.
type CreateBroadcastRequest struct {
	SegmentID  SegmentID  `json:"segment_id,omitempty"`
	AudienceID AudienceID `json:"audience_id,omitempty"`
	From       string     `json:"from"`
	Subject    string     `json:"subject"`
	ReplyTo    []string   `json:"reply_to,omitempty"`
	HTML       string     `json:"html,omitempty"`
	Text       string     `json:"text,omitempty"`
	Name       string     `json:"name,omitempty"`
	TopicID    TopicID    `json:"topic_id,omitempty"`
}

// NewBroadcast starts a broadcast to a segment.
func NewBroadcast(segment SegmentID, from, subject string) *CreateBroadcastRequest {
	return &CreateBroadcastRequest{SegmentID: segment, From: from, Subject: subject}
}

// WithHTML sets the HTML body.
func (b *CreateBroadcastRequest) WithHTML(html string) *CreateBroadcastRequest {
	b.HTML = html
	return b
}

// WithText sets the plain-text body.
func (b *CreateBroadcastRequest) WithText(text string) *CreateBroadcastRequest {
	b.Text = text
	return b
}

// WithReplyTo appends reply-to addresses.
func (b *CreateBroadcastRequest) WithReplyTo(addrs ...string) *CreateBroadcastRequest {
	b.ReplyTo = append(b.ReplyTo, addrs...)
	return b
}

// WithName sets the internal name shown in the dashboard.
func (b *CreateBroadcastRequest) WithName(name string) *CreateBroadcastRequest {
	b.Name = name
	return b
}

// WithTopic restricts delivery to contacts subscribed to a topic.
func (b *CreateBroadcastRequest) WithTopic(id TopicID) *CreateBroadcastRequest {
	b.TopicID = id
	return b
}

// Broadcast is a campaign sent to a segment.
type Broadcast struct {
	Object      string      `json:"object,omitempty"`
	ID          BroadcastID `json:"id"`
	Name        string      `json:"name,omitempty"`
	SegmentID   SegmentID   `json:"segment_id,omitempty"`
	AudienceID  AudienceID  `json:"audience_id,omitempty"`
	From        string      `json:"from"`
	Subject     string      `json:"subject"`
	ReplyTo     []string    `json:"reply_to"`
	PreviewText string      `json:"preview_text,omitempty"`
	Status      string      `json:"status"`
	CreatedAt   string      `json:"created_at"`
	ScheduledAt string      `json:"scheduled_at,omitempty"`
	SentAt      string      `json:"sent_at,omitempty"`
}

type broadcastWire Broadcast

// UnmarshalJSON decodes a null reply_to as empty.
func (b *Broadcast) UnmarshalJSON(data []byte) error {
	var w broadcastWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	w.ReplyTo = nullable(w.ReplyTo)
	*b = Broadcast(w)
	return nil
}

// UpdateBroadcastRequest is the body of PATCH /broadcasts/{id}. Only draft
// broadcasts can be updated; empty fields are left unchanged.
type UpdateBroadcastRequest struct {
	SegmentID SegmentID `json:"segment_id,omitempty"`
	From      string    `json:"from,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	ReplyTo   []string  `json:"reply_to,omitempty"`
	HTML      string    `json:"html,omitempty"`
	Text      string    `json:"text,omitempty"`
	Name      string    `json:"name,omitempty"`
}

// SendBroadcastRequest is the body of POST /broadcasts/{id}/send. An empty
// ScheduledAt sends immediately.
type SendBroadcastRequest struct {
	ScheduledAt string `json:"scheduled_at,omitempty"`
}

// BroadcastsService manages broadcasts.
type BroadcastsService struct {
	service
}

// Create creates a draft broadcast.
func (s *BroadcastsService) Create(ctx context.Context, req *CreateBroadcastRequest) (*ObjectRef[BroadcastID], error) {
	if req == nil {
		return nil, invalidArgument("broadcast", "is nil")
	}
	if req.SegmentID == "" && req.AudienceID == "" {
		return nil, invalidArgument("segment_id", "a segment or audience is required")
	}
	return doJSON[ObjectRef[BroadcastID]](ctx, s.service, http.MethodPost, "/broadcasts", req)
}

// Get retrieves a broadcast.
func (s *BroadcastsService) Get(ctx context.Context, id BroadcastID) (*Broadcast, error) {
	return doJSON[Broadcast](ctx, s.service, http.MethodGet, route("broadcasts", id.String()), nil)
}

// List retrieves a page of broadcasts.
func (s *BroadcastsService) List(ctx context.Context, opts Paginator) (*ListResponse[Broadcast], error) {
	return list[Broadcast](ctx, s.service, "/broadcasts", opts)
}

// Update changes a draft broadcast.
func (s *BroadcastsService) Update(ctx context.Context, id BroadcastID, req *UpdateBroadcastRequest) (*ObjectRef[BroadcastID], error) {
	if req == nil {
		return nil, invalidArgument("request", "is required")
	}
	return doJSON[ObjectRef[BroadcastID]](ctx, s.service, http.MethodPatch, route("broadcasts", id.String()), req)
}

// Delete removes a draft broadcast.
func (s *BroadcastsService) Delete(ctx context.Context, id BroadcastID) (*Deleted[BroadcastID], error) {
	return doJSON[Deleted[BroadcastID]](ctx, s.service, http.MethodDelete, route("broadcasts", id.String()), nil)
}

// Send sends or schedules a broadcast. req may be nil.
func (s *BroadcastsService) Send(ctx context.Context, id BroadcastID, req *SendBroadcastRequest) (*ObjectRef[BroadcastID], error) {
	if req == nil {
		req = &SendBroadcastRequest{}
	}
	return doJSON[ObjectRef[BroadcastID]](ctx, s.service, http.MethodPost, route("broadcasts", id.String(), "send"), req)
}
