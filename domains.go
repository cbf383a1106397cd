package resend

import (
	"context"
	"encoding/json"
	"net/http"
)

// Region is the AWS region a domain sends from.
type Region string

const (
	RegionUSEast1      Region = "us-east-1"
	RegionEUWest1      Region = "eu-west-1"
	RegionSAEast1      Region = "sa-east-1"
	RegionAPNortheast1 Region = "ap-northeast-1"
)

// TLSMode controls how a domain negotiates TLS with receiving servers.
type TLSMode string

const (
	TLSOpportunistic TLSMode = "opportunistic"
	TLSEnforced      TLSMode = "enforced"
)

// CreateDomainRequest is the body of POST /domains.
type CreateDomainRequest struct {
	Name             string `json:"name"`
	Region           Region `json:"region,omitempty"`
	CustomReturnPath string `json:"custom_return_path,omitempty"`
}

// NewDomain starts a domain registration.
func NewDomain(name string) *CreateDomainRequest {
	return &CreateDomainRequest{Name: name}
}

// WithRegion sets the sending region.
func (d *CreateDomainRequest) WithRegion(r Region) *CreateDomainRequest {
	d.Region = r
	return d
}

// WithCustomReturnPath sets the Return-Path subdomain.
func (d *CreateDomainRequest) WithCustomReturnPath(sub string) *CreateDomainRequest {
	d.CustomReturnPath = sub
	return d
}

// DomainRecord is a DNS record the domain owner must publish.
type DomainRecord struct {
	Record   string `json:"record"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	TTL      string `json:"ttl"`
	Status   string `json:"status"`
	Value    string `json:"value"`
	Priority *int   `json:"priority,omitempty"`
}

// Domain is a sending domain.
type Domain struct {
	Object    string         `json:"object,omitempty"`
	ID        DomainID       `json:"id"`
	Name      string         `json:"name"`
	Status    string         `json:"status"`
	Region    Region         `json:"region"`
	CreatedAt string         `json:"created_at"`
	Records   []DomainRecord `json:"records"`
}

type domainWire Domain

// UnmarshalJSON decodes a null record list as empty.
func (d *Domain) UnmarshalJSON(b []byte) error {
	var w domainWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	w.Records = nullable(w.Records)
	*d = Domain(w)
	return nil
}

// UpdateDomainRequest is the body of PATCH /domains/{id}. Nil fields are left
// unchanged.
type UpdateDomainRequest struct {
	ClickTracking *bool   `json:"click_tracking,omitempty"`
	OpenTracking  *bool   `json:"open_tracking,omitempty"`
	TLS           TLSMode `json:"tls,omitempty"`
}

// DomainsService manages sending domains.
type DomainsService struct {
	service
}

// Create registers a domain and returns the DNS records to publish.
func (s *DomainsService) Create(ctx context.Context, req *CreateDomainRequest) (*Domain, error) {
	if req == nil || req.Name == "" {
		return nil, invalidArgument("name", "is required")
	}
	return doJSON[Domain](ctx, s.service, http.MethodPost, "/domains", req)
}

// Get retrieves a domain.
func (s *DomainsService) Get(ctx context.Context, id DomainID) (*Domain, error) {
	return doJSON[Domain](ctx, s.service, http.MethodGet, route("domains", id.String()), nil)
}

// List retrieves a page of domains.
func (s *DomainsService) List(ctx context.Context, opts Paginator) (*ListResponse[Domain], error) {
	return list[Domain](ctx, s.service, "/domains", opts)
}

// Update changes tracking and TLS settings.
func (s *DomainsService) Update(ctx context.Context, id DomainID, req *UpdateDomainRequest) (*ObjectRef[DomainID], error) {
	if req == nil {
		return nil, invalidArgument("request", "is required")
	}
	return doJSON[ObjectRef[DomainID]](ctx, s.service, http.MethodPatch, route("domains", id.String()), req)
}

// Delete removes a domain.
func (s *DomainsService) Delete(ctx context.Context, id DomainID) (*Deleted[DomainID], error) {
	return doJSON[Deleted[DomainID]](ctx, s.service, http.MethodDelete, route("domains", id.String()), nil)
}

// Verify starts DNS verification of a domain.
func (s *DomainsService) Verify(ctx context.Context, id DomainID) (*ObjectRef[DomainID], error) {
	return doJSON[ObjectRef[DomainID]](ctx, s.service, http.MethodPost, route("domains", id.String(), "verify"), nil)
}
