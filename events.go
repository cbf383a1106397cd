package resend

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// EventType is the `type` field of an inbound event envelope.
type EventType string

const (
	EventEmailSent            EventType = "email.sent"
	EventEmailDelivered       EventType = "email.delivered"
	EventEmailDeliveryDelayed EventType = "email.delivery_delayed"
	EventEmailComplained      EventType = "email.complained"
	EventEmailBounced         EventType = "email.bounced"
	EventEmailOpened          EventType = "email.opened"
	EventEmailClicked         EventType = "email.clicked"

	EventContactCreated EventType = "contact.created"
	EventContactUpdated EventType = "contact.updated"
	EventContactDeleted EventType = "contact.deleted"

	EventDomainCreated EventType = "domain.created"
	EventDomainUpdated EventType = "domain.updated"
	EventDomainDeleted EventType = "domain.deleted"
)

// Envelope type prefixes select the event family.
const (
	emailEventPrefix   = "email."
	contactEventPrefix = "contact."
	domainEventPrefix  = "domain."
)

var (
	emailEventTypes = []EventType{
		EventEmailSent, EventEmailDelivered, EventEmailDeliveryDelayed, EventEmailComplained,
		EventEmailBounced, EventEmailOpened, EventEmailClicked,
	}
	contactEventTypes = []EventType{EventContactCreated, EventContactUpdated, EventContactDeleted}
	domainEventTypes  = []EventType{EventDomainCreated, EventDomainUpdated, EventDomainDeleted}
)

// EventTypes returns every event type ParseEvent understands.
func EventTypes() []EventType {
	all := make([]EventType, 0, len(emailEventTypes)+len(contactEventTypes)+len(domainEventTypes))
	all = append(all, emailEventTypes...)
	all = append(all, contactEventTypes...)
	return append(all, domainEventTypes...)
}

// Event is one of *EmailEvent, *ContactEvent or *DomainEvent. Use a type switch
// to get at the body.
type Event interface {
	EventType() EventType
	// Timestamp is the envelope's created_at, verbatim.
	Timestamp() string

	isEvent()
}

// EmailEvent reports a change in the delivery state of a sent email.
type EmailEvent struct {
	Type      EventType      `json:"type"`
	CreatedAt string         `json:"created_at,omitempty"`
	Data      EmailEventData `json:"data"`
}

// EmailEventData is the body shared by every email event. Click is set only for
// email.clicked and Bounce only for email.bounced.
type EmailEventData struct {
	CreatedAt string            `json:"created_at,omitempty"`
	EmailID   EmailID           `json:"email_id"`
	From      string            `json:"from"`
	To        []string          `json:"to"`
	Subject   string            `json:"subject"`
	Click     *Click            `json:"click,omitempty"`
	Bounce    *Bounce           `json:"bounce,omitempty"`
	Tags      map[string]string `json:"tags,omitempty"`
}

// Click describes the link a recipient followed.
type Click struct {
	IPAddress string `json:"ipAddress"`
	Link      string `json:"link"`
	Timestamp string `json:"timestamp"`
	UserAgent string `json:"userAgent"`
}

// Bounce describes why delivery failed.
type Bounce struct {
	Message string `json:"message"`
	SubType string `json:"subType"`
	Type    string `json:"type"`
}

// ContactEvent reports a change to an audience contact.
type ContactEvent struct {
	Type      EventType        `json:"type"`
	CreatedAt string           `json:"created_at,omitempty"`
	Data      ContactEventData `json:"data"`
}

// ContactEventData is the contact as it was after the change.
type ContactEventData struct {
	ID           ContactID  `json:"id"`
	AudienceID   AudienceID `json:"audience_id,omitempty"`
	Email        string     `json:"email"`
	FirstName    string     `json:"first_name,omitempty"`
	LastName     string     `json:"last_name,omitempty"`
	Unsubscribed bool       `json:"unsubscribed"`
	CreatedAt    string     `json:"created_at,omitempty"`
	UpdatedAt    string     `json:"updated_at,omitempty"`
}

// DomainEvent reports a change to a sending domain.
type DomainEvent struct {
	Type      EventType       `json:"type"`
	CreatedAt string          `json:"created_at,omitempty"`
	Data      DomainEventData `json:"data"`
}

// DomainEventData is the domain as it was after the change.
type DomainEventData struct {
	ID        DomainID       `json:"id"`
	Name      string         `json:"name"`
	Status    string         `json:"status,omitempty"`
	Region    Region         `json:"region,omitempty"`
	CreatedAt string         `json:"created_at,omitempty"`
	Records   []DomainRecord `json:"records,omitempty"`
}

// EventType returns the full event type, such as email.delivered.
func (e *EmailEvent) EventType() EventType { return e.Type }

// EventType returns the full event type, such as contact.created.
func (e *ContactEvent) EventType() EventType { return e.Type }

// EventType returns the full event type, such as domain.updated.
func (e *DomainEvent) EventType() EventType { return e.Type }

// Timestamp returns the envelope created_at, verbatim.
func (e *EmailEvent) Timestamp() string { return e.CreatedAt }

// Timestamp returns the envelope created_at, verbatim.
func (e *ContactEvent) Timestamp() string { return e.CreatedAt }

// Timestamp returns the envelope created_at, verbatim.
func (e *DomainEvent) Timestamp() string { return e.CreatedAt }

func (*EmailEvent) isEvent()   {}
func (*ContactEvent) isEvent() {}
func (*DomainEvent) isEvent()  {}

type envelope struct {
	Type      EventType       `json:"type"`
	CreatedAt string          `json:"created_at"`
	Data      json.RawMessage `json:"data"`
}

// ParseEvent decodes an inbound event delivered to a webhook endpoint. It does
// not authenticate the payload; verify the signature of the raw body first.
//
// Malformed JSON or an envelope without type or data yields *ParseError. An
// unknown type, or a body missing the fields its family requires, yields
// *DecodeError.
func ParseEvent(b []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, &ParseError{Message: "invalid envelope", Err: err}
	}
	if env.Type == "" {
		return nil, &ParseError{Message: "missing type"}
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, &ParseError{Message: "missing data"}
	}

	t := string(env.Type)
	switch {
	case strings.HasPrefix(t, emailEventPrefix):
		return parseEmailEvent(env)
	case strings.HasPrefix(t, contactEventPrefix):
		return parseContactEvent(env)
	case strings.HasPrefix(t, domainEventPrefix):
		return parseDomainEvent(env)
	}
	return nil, &DecodeError{Context: fmt.Sprintf("event: unknown type %q", t)}
}

func parseEmailEvent(env envelope) (*EmailEvent, error) {
	if !slices.Contains(emailEventTypes, env.Type) {
		return nil, &DecodeError{Context: fmt.Sprintf("email event: unknown type %q", env.Type)}
	}
	var data EmailEventData
	if err := decodeEventData(env, &data); err != nil {
		return nil, err
	}
	if data.EmailID == "" {
		return nil, &DecodeError{Context: fmt.Sprintf("%s data: missing email_id", env.Type)}
	}
	if env.Type != EventEmailClicked {
		data.Click = nil
	}
	data.To = nullable(data.To)
	return &EmailEvent{Type: env.Type, CreatedAt: env.CreatedAt, Data: data}, nil
}

func parseContactEvent(env envelope) (*ContactEvent, error) {
	if !slices.Contains(contactEventTypes, env.Type) {
		return nil, &DecodeError{Context: fmt.Sprintf("contact event: unknown type %q", env.Type)}
	}
	var data ContactEventData
	if err := decodeEventData(env, &data); err != nil {
		return nil, err
	}
	if data.ID == "" || data.Email == "" {
		return nil, &DecodeError{Context: fmt.Sprintf("%s data: missing id or email", env.Type)}
	}
	return &ContactEvent{Type: env.Type, CreatedAt: env.CreatedAt, Data: data}, nil
}

func parseDomainEvent(env envelope) (*DomainEvent, error) {
	if !slices.Contains(domainEventTypes, env.Type) {
		return nil, &DecodeError{Context: fmt.Sprintf("domain event: unknown type %q", env.Type)}
	}
	var data DomainEventData
	if err := decodeEventData(env, &data); err != nil {
		return nil, err
	}
	if data.ID == "" || data.Name == "" {
		return nil, &DecodeError{Context: fmt.Sprintf("%s data: missing id or name", env.Type)}
	}
	return &DomainEvent{Type: env.Type, CreatedAt: env.CreatedAt, Data: data}, nil
}

func decodeEventData(env envelope, v any) error {
	if err := json.Unmarshal(env.Data, v); err != nil {
		return &DecodeError{Context: fmt.Sprintf("%s data", env.Type), Err: err}
	}
	return nil
}
