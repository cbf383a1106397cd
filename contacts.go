package resend

import (
	"context"
	"net/http"
)

// ContactRef addresses a contact by ID or by email address; the API accepts
// either in the same path segment.
type ContactRef string

// ContactByID refers to a contact by its identifier.
func ContactByID(id ContactID) ContactRef { return ContactRef(id) }

// ContactByEmail refers to a contact by its email address.
func ContactByEmail(email string) ContactRef { return ContactRef(email) }

// String returns the ID or email used as the path segment.
func (r ContactRef) String() string { return string(r) }

// CreateContactRequest is the body of POST /audiences/{id}/contacts.
type CreateContactRequest struct {
	Email        string `json:"email"`
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	Unsubscribed bool   `json:"unsubscribed,omitempty"`
}

// NewContact starts a contact with its email address.
func NewContact(email string) *CreateContactRequest {
	return &CreateContactRequest{Email: email}
}

// WithName sets the first and last name.
func (c *CreateContactRequest) WithName(first, last string) *CreateContactRequest {
	c.FirstName = first
	c.LastName = last
	return c
}

// WithUnsubscribed creates the contact already unsubscribed.
func (c *CreateContactRequest) WithUnsubscribed(v bool) *CreateContactRequest {
	c.Unsubscribed = v
	return c
}

// Contact is a member of an audience.
type Contact struct {
	Object       string    `json:"object,omitempty"`
	ID           ContactID `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	Unsubscribed bool      `json:"unsubscribed"`
	CreatedAt    string    `json:"created_at,omitempty"`
}

// UpdateContactRequest is the body of PATCH on a contact. Nil fields are left
// unchanged.
type UpdateContactRequest struct {
	Email        string  `json:"email,omitempty"`
	FirstName    *string `json:"first_name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	Unsubscribed *bool   `json:"unsubscribed,omitempty"`
}

// ContactDeleted is returned when a contact is removed. Contact echoes the ID
// or email used in the request.
type ContactDeleted struct {
	Object  string `json:"object"`
	Contact string `json:"contact"`
	Deleted bool   `json:"deleted"`
}

// ContactsService manages the contacts of an audience.
type ContactsService struct {
	service
}

func contactsPath(audience AudienceID, ref ...ContactRef) string {
	segs := []string{"audiences", audience.String(), "contacts"}
	for _, r := range ref {
		segs = append(segs, r.String())
	}
	return route(segs...)
}

// Create adds a contact to an audience.
func (s *ContactsService) Create(ctx context.Context, audience AudienceID, req *CreateContactRequest) (*ObjectRef[ContactID], error) {
	if req == nil || req.Email == "" {
		return nil, invalidArgument("email", "is required")
	}
	return doJSON[ObjectRef[ContactID]](ctx, s.service, http.MethodPost, contactsPath(audience), req)
}

// Get retrieves a contact.
func (s *ContactsService) Get(ctx context.Context, audience AudienceID, contact ContactRef) (*Contact, error) {
	return doJSON[Contact](ctx, s.service, http.MethodGet, contactsPath(audience, contact), nil)
}

// List retrieves a page of an audience's contacts.
func (s *ContactsService) List(ctx context.Context, audience AudienceID, opts Paginator) (*ListResponse[Contact], error) {
	return list[Contact](ctx, s.service, contactsPath(audience), opts)
}

// Update changes a contact.
func (s *ContactsService) Update(ctx context.Context, audience AudienceID, contact ContactRef, req *UpdateContactRequest) (*ObjectRef[ContactID], error) {
	if req == nil {
		return nil, invalidArgument("request", "is required")
	}
	return doJSON[ObjectRef[ContactID]](ctx, s.service, http.MethodPatch, contactsPath(audience, contact), req)
}

// Delete removes a contact.
func (s *ContactsService) Delete(ctx context.Context, audience AudienceID, contact ContactRef) (*ContactDeleted, error) {
	return doJSON[ContactDeleted](ctx, s.service, http.MethodDelete, contactsPath(audience, contact), nil)
}
