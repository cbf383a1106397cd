package resend

import (
	"context"
	"encoding/json"
	"net/http"
)

// ReceivedEmail is an inbound message accepted by a receiving domain.
type ReceivedEmail struct {
	Object      string               `json:"object"`
	ID          ReceivedEmailID      `json:"id"`
	From        string               `json:"from"`
	To          []string             `json:"to"`
	Bcc         []string             `json:"bcc"`
	Cc          []string             `json:"cc"`
	ReplyTo     []string             `json:"reply_to"`
	Subject     string               `json:"subject"`
	HTML        string               `json:"html,omitempty"`
	Text        string               `json:"text,omitempty"`
	Headers     map[string]string    `json:"headers,omitempty"`
	MessageID   string               `json:"message_id,omitempty"`
	CreatedAt   string               `json:"created_at"`
	Attachments []ReceivedAttachment `json:"attachments"`
}

type receivedEmailWire ReceivedEmail

// UnmarshalJSON decodes null lists as empty.
func (e *ReceivedEmail) UnmarshalJSON(b []byte) error {
	var w receivedEmailWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	w.To = nullable(w.To)
	w.Bcc = nullable(w.Bcc)
	w.Cc = nullable(w.Cc)
	w.ReplyTo = nullable(w.ReplyTo)
	w.Attachments = nullable(w.Attachments)
	*e = ReceivedEmail(w)
	return nil
}

// ReceivedAttachment describes a file attached to an inbound message. The
// content itself is fetched from DownloadURL until ExpiresAt.
type ReceivedAttachment struct {
	Object             string       `json:"object,omitempty"`
	ID                 AttachmentID `json:"id"`
	Filename           string       `json:"filename"`
	ContentType        string       `json:"content_type"`
	ContentID          string       `json:"content_id,omitempty"`
	ContentDisposition string       `json:"content_disposition,omitempty"`
	Size               int64        `json:"size"`
	DownloadURL        string       `json:"download_url,omitempty"`
	ExpiresAt          string       `json:"expires_at,omitempty"`
}

// ReceivingService reads inbound emails.
type ReceivingService struct {
	service
}

// List retrieves a page of received emails.
func (s *ReceivingService) List(ctx context.Context, opts Paginator) (*ListResponse[ReceivedEmail], error) {
	return list[ReceivedEmail](ctx, s.service, "/emails/receiving", opts)
}

// Get retrieves a received email.
func (s *ReceivingService) Get(ctx context.Context, id ReceivedEmailID) (*ReceivedEmail, error) {
	return doJSON[ReceivedEmail](ctx, s.service, http.MethodGet, route("emails", "receiving", id.String()), nil)
}

// ListAttachments retrieves a page of a received email's attachments.
func (s *ReceivingService) ListAttachments(ctx context.Context, id ReceivedEmailID, opts Paginator) (*ListResponse[ReceivedAttachment], error) {
	return list[ReceivedAttachment](ctx, s.service, route("emails", "receiving", id.String(), "attachments"), opts)
}

// GetAttachment retrieves one attachment of a received email.
func (s *ReceivingService) GetAttachment(ctx context.Context, id ReceivedEmailID, attachment AttachmentID) (*ReceivedAttachment, error) {
	return doJSON[ReceivedAttachment](ctx, s.service, http.MethodGet,
		route("emails", "receiving", id.String(), "attachments", attachment.String()), nil)
}
