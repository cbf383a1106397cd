package resend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
)

// Composition limits enforced before a request is sent.
const (
	MaxRecipients     = 50
	MaxAttachmentSize = 40 * 1024 * 1024
	maxTagLength      = 256
)

var tagPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,256}$`)

// CreateEmailRequest is the body of POST /emails. Build it with NewEmail and
// the With methods; optional fields left unset are omitted from the JSON.
type CreateEmailRequest struct {
	From        string            `json:"from"`
	To          []string          `json:"to"`
	Subject     string            `json:"subject"`
	Bcc         []string          `json:"bcc,omitempty"`
	Cc          []string          `json:"cc,omitempty"`
	ReplyTo     []string          `json:"reply_to,omitempty"`
	HTML        string            `json:"html,omitempty"`
	Text        string            `json:"text,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
	ScheduledAt string            `json:"scheduled_at,omitempty"`
	Attachments []*Attachment     `json:"attachments,omitempty"`
	Tags        []Tag             `json:"tags,omitempty"`
	Template    *EmailTemplate    `json:"template,omitempty"`
	TopicID     TopicID           `json:"topic_id,omitempty"`
}

// NewEmail starts a message with its required fields.
func NewEmail(from string, to []string, subject string) *CreateEmailRequest {
	return &CreateEmailRequest{From: from, To: to, Subject: subject}
}

// WithHTML sets the HTML body.
func (e *CreateEmailRequest) WithHTML(html string) *CreateEmailRequest {
	e.HTML = html
	return e
}

// WithText sets the plain-text body.
func (e *CreateEmailRequest) WithText(text string) *CreateEmailRequest {
	e.Text = text
	return e
}

// WithBcc appends blind carbon copy recipients.
func (e *CreateEmailRequest) WithBcc(addrs ...string) *CreateEmailRequest {
	e.Bcc = append(e.Bcc, addrs...)
	return e
}

// WithCc appends carbon copy recipients.
func (e *CreateEmailRequest) WithCc(addrs ...string) *CreateEmailRequest {
	e.Cc = append(e.Cc, addrs...)
	return e
}

// WithReplyTo appends reply-to addresses.
func (e *CreateEmailRequest) WithReplyTo(addrs ...string) *CreateEmailRequest {
	e.ReplyTo = append(e.ReplyTo, addrs...)
	return e
}

// WithHeader sets a custom message header.
func (e *CreateEmailRequest) WithHeader(name, value string) *CreateEmailRequest {
	if e.Headers == nil {
		e.Headers = make(map[string]string)
	}
	e.Headers[name] = value
	return e
}

// WithAttachment appends an attachment.
func (e *CreateEmailRequest) WithAttachment(a *Attachment) *CreateEmailRequest {
	e.Attachments = append(e.Attachments, a)
	return e
}

// WithTag appends a tag.
func (e *CreateEmailRequest) WithTag(name, value string) *CreateEmailRequest {
	e.Tags = append(e.Tags, Tag{Name: name, Value: value})
	return e
}

// WithScheduledAt schedules delivery. The value is an ISO 8601 timestamp or a
// natural-language expression such as "in 1 hour"; the server parses it.
func (e *CreateEmailRequest) WithScheduledAt(at string) *CreateEmailRequest {
	e.ScheduledAt = at
	return e
}

// WithTemplate renders a published template instead of HTML or text.
func (e *CreateEmailRequest) WithTemplate(t *EmailTemplate) *CreateEmailRequest {
	e.Template = t
	return e
}

// WithTopic scopes the send to contacts subscribed to a topic.
func (e *CreateEmailRequest) WithTopic(id TopicID) *CreateEmailRequest {
	e.TopicID = id
	return e
}

// Validate checks the constraints the API would otherwise reject.
func (e *CreateEmailRequest) Validate() error {
	if e == nil {
		return invalidArgument("email", "is nil")
	}
	if e.From == "" {
		return invalidArgument("from", "is required")
	}
	if len(e.To) == 0 {
		return invalidArgument("to", "at least one recipient is required")
	}
	if len(e.To) > MaxRecipients {
		return invalidArgument("to", fmt.Sprintf("at most %d recipients, got %d", MaxRecipients, len(e.To)))
	}
	if e.Subject == "" {
		return invalidArgument("subject", "is required")
	}

	total := 0
	for i, a := range e.Attachments {
		if err := a.validate(); err != nil {
			return invalidArgument(fmt.Sprintf("attachments[%d]", i), err.Error())
		}
		total += len(a.Content)
	}
	if total > MaxAttachmentSize {
		return invalidArgument("attachments", fmt.Sprintf("total size %d exceeds %d bytes", total, MaxAttachmentSize))
	}

	for i, t := range e.Tags {
		if err := t.validate(); err != nil {
			return invalidArgument(fmt.Sprintf("tags[%d]", i), err.Error())
		}
	}
	return nil
}

// Tag is a name/value pair attached to an email and echoed in events.
type Tag struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (t Tag) validate() error {
	if !tagPattern.MatchString(t.Name) {
		return fmt.Errorf("name %q must be 1-%d ASCII letters, digits, underscores or dashes", t.Name, maxTagLength)
	}
	if !tagPattern.MatchString(t.Value) {
		return fmt.Errorf("value %q must be 1-%d ASCII letters, digits, underscores or dashes", t.Value, maxTagLength)
	}
	return nil
}

// EmailTemplate selects a published template and its variables.
type EmailTemplate struct {
	ID        TemplateID     `json:"id"`
	Variables map[string]any `json:"variables,omitempty"`
}

// Attachment is either inline bytes or a path/URL the server fetches. Content
// is base64 encoded on the wire.
type Attachment struct {
	Content     []byte `json:"content,omitempty"`
	Path        string `json:"path,omitempty"`
	Filename    string `json:"filename,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	ContentID   string `json:"content_id,omitempty"`
}

// AttachmentFromContent creates an attachment from raw bytes.
func AttachmentFromContent(content []byte) *Attachment {
	return &Attachment{Content: content}
}

// AttachmentFromPath creates an attachment the server downloads from path.
func AttachmentFromPath(path string) *Attachment {
	return &Attachment{Path: path}
}

// WithFilename sets the file name shown to the recipient.
func (a *Attachment) WithFilename(name string) *Attachment {
	a.Filename = name
	return a
}

// WithContentType overrides the type derived from the file name.
func (a *Attachment) WithContentType(ct string) *Attachment {
	a.ContentType = ct
	return a
}

// WithContentID makes the attachment inline, referenced from HTML as cid:id.
func (a *Attachment) WithContentID(id string) *Attachment {
	a.ContentID = id
	return a
}

// IsInline reports whether the attachment has a content ID.
func (a *Attachment) IsInline() bool {
	return a.ContentID != ""
}

func (a *Attachment) validate() error {
	switch {
	case a == nil:
		return fmt.Errorf("is nil")
	case len(a.Content) > 0 && a.Path != "":
		return fmt.Errorf("content and path are mutually exclusive")
	case len(a.Content) == 0 && a.Path == "":
		return fmt.Errorf("content or path is required")
	}
	return nil
}

// SendEmailResponse is returned by Send.
type SendEmailResponse struct {
	ID EmailID `json:"id"`
}

// Email is a sent or scheduled message.
type Email struct {
	Object      string   `json:"object"`
	ID          EmailID  `json:"id"`
	From        string   `json:"from"`
	To          []string `json:"to"`
	Subject     string   `json:"subject"`
	HTML        string   `json:"html,omitempty"`
	Text        string   `json:"text,omitempty"`
	Bcc         []string `json:"bcc"`
	Cc          []string `json:"cc"`
	ReplyTo     []string `json:"reply_to"`
	CreatedAt   string   `json:"created_at"`
	LastEvent   string   `json:"last_event,omitempty"`
	ScheduledAt string   `json:"scheduled_at,omitempty"`
	Tags        []Tag    `json:"tags,omitempty"`
}

type emailWire Email

// UnmarshalJSON decodes null recipient lists as empty.
func (e *Email) UnmarshalJSON(b []byte) error {
	var w emailWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	w.To = nullable(w.To)
	w.Bcc = nullable(w.Bcc)
	w.Cc = nullable(w.Cc)
	w.ReplyTo = nullable(w.ReplyTo)
	*e = Email(w)
	return nil
}

// UpdateEmailRequest reschedules a scheduled email.
type UpdateEmailRequest struct {
	ScheduledAt string `json:"scheduled_at"`
}

// EmailsService sends and manages single emails.
type EmailsService struct {
	service
}

// Send sends an email.
func (s *EmailsService) Send(ctx context.Context, req *CreateEmailRequest) (*SendEmailResponse, error) {
	return s.SendIdempotent(ctx, Idempotently(req))
}

// SendIdempotent sends an email with an optional Idempotency-Key header.
func (s *EmailsService) SendIdempotent(ctx context.Context, req Idempotent[*CreateEmailRequest]) (*SendEmailResponse, error) {
	if err := req.Data.Validate(); err != nil {
		return nil, err
	}
	return doJSON[SendEmailResponse](ctx, s.service, http.MethodPost, "/emails", req.Data,
		withIdempotencyKey(req.IdempotencyKey))
}

// Get retrieves a single email.
func (s *EmailsService) Get(ctx context.Context, id EmailID) (*Email, error) {
	return doJSON[Email](ctx, s.service, http.MethodGet, route("emails", id.String()), nil)
}

// List retrieves a page of sent emails. opts may be nil.
func (s *EmailsService) List(ctx context.Context, opts Paginator) (*ListResponse[Email], error) {
	return list[Email](ctx, s.service, "/emails", opts)
}

// Update reschedules a scheduled email.
func (s *EmailsService) Update(ctx context.Context, id EmailID, req *UpdateEmailRequest) (*ObjectRef[EmailID], error) {
	if req == nil || req.ScheduledAt == "" {
		return nil, invalidArgument("scheduled_at", "is required")
	}
	return doJSON[ObjectRef[EmailID]](ctx, s.service, http.MethodPatch, route("emails", id.String()), req)
}

// Cancel cancels a scheduled email.
func (s *EmailsService) Cancel(ctx context.Context, id EmailID) (*ObjectRef[EmailID], error) {
	return doJSON[ObjectRef[EmailID]](ctx, s.service, http.MethodPost, route("emails", id.String(), "cancel"), nil)
}
