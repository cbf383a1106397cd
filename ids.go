package resend

// Typed identifiers. Each resource has its own string-backed type so an ID of
// one resource cannot be passed where another is expected.
type (
	EmailID         string
	ReceivedEmailID string
	AttachmentID    string
	DomainID        string
	AudienceID      string
	ContactID       string
	SegmentID       string
	BroadcastID     string
	TemplateID      string
	TopicID         string
	WebhookID       string
	APIKeyID        string
)

// String returns the identifier as sent in request paths.
func (id EmailID) String() string         { return string(id) }
func (id ReceivedEmailID) String() string { return string(id) }
func (id AttachmentID) String() string    { return string(id) }
func (id DomainID) String() string        { return string(id) }
func (id AudienceID) String() string      { return string(id) }
func (id ContactID) String() string       { return string(id) }
func (id SegmentID) String() string       { return string(id) }
func (id BroadcastID) String() string     { return string(id) }
func (id TemplateID) String() string      { return string(id) }
func (id TopicID) String() string         { return string(id) }
func (id WebhookID) String() string       { return string(id) }
func (id APIKeyID) String() string        { return string(id) }

// Deleted is the body returned by delete endpoints that echo the identifier.
type Deleted[ID ~string] struct {
	Object  string `json:"object"`
	ID      ID     `json:"id"`
	Deleted bool   `json:"deleted"`
}

// ObjectRef is the minimal {object, id} body returned by action endpoints.
type ObjectRef[ID ~string] struct {
	Object string `json:"object,omitempty"`
	ID     ID     `json:"id"`
}
