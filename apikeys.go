package resend

import (
	"context"
	"net/http"
)

// Permission is the scope of an API key.
type Permission string

const (
	PermissionFullAccess    Permission = "full_access"
	PermissionSendingAccess Permission = "sending_access"
)

// CreateAPIKeyRequest is the body of POST /api-keys. DomainID restricts a
// sending_access key to one domain.
type CreateAPIKeyRequest struct {
	Name       string     `json:"name"`
	Permission Permission `json:"permission,omitempty"`
	DomainID   DomainID   `json:"domain_id,omitempty"`
}

// CreatedAPIKey holds the token of a new key. The token is shown only once.
type CreatedAPIKey struct {
	ID    APIKeyID `json:"id"`
	Token string   `json:"token"`
}

// String renders the key without its token.
func (k CreatedAPIKey) String() string {
	return "CreatedAPIKey{ID: " + k.ID.String() + ", Token: [REDACTED]}"
}

// APIKey is an existing key. Tokens are never listed.
type APIKey struct {
	ID        APIKeyID `json:"id"`
	Name      string   `json:"name"`
	CreatedAt string   `json:"created_at"`
}

// APIKeysService manages API keys.
type APIKeysService struct {
	service
}

// Create creates an API key.
func (s *APIKeysService) Create(ctx context.Context, req *CreateAPIKeyRequest) (*CreatedAPIKey, error) {
	if req == nil || req.Name == "" {
		return nil, invalidArgument("name", "is required")
	}
	if req.DomainID != "" && req.Permission != PermissionSendingAccess {
		return nil, invalidArgument("domain_id", "requires sending_access permission")
	}
	return doJSON[CreatedAPIKey](ctx, s.service, http.MethodPost, "/api-keys", req)
}

// List retrieves a page of API keys.
func (s *APIKeysService) List(ctx context.Context, opts Paginator) (*ListResponse[APIKey], error) {
	return list[APIKey](ctx, s.service, "/api-keys", opts)
}

// Delete revokes an API key. The endpoint returns no body, so success is
// reported as true.
func (s *APIKeysService) Delete(ctx context.Context, id APIKeyID) (bool, error) {
	if err := s.call(ctx, http.MethodDelete, route("api-keys", id.String()), nil, nil); err != nil {
		return false, err
	}
	return true, nil
}
