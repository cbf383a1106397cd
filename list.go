package resend

import (
	"encoding/json"
	"net/url"
	"strconv"
)

// MaxListLimit is the largest page size the API accepts.
const MaxListLimit = 100

// Paginator is implemented by ListOptions, ListBeforeOptions and
// ListAfterOptions. The three types encode which cursor, if any, is set, so a
// request can never carry both before and after.
type Paginator interface {
	// Query renders the options as a query string, limit first.
	Query() string
	// Validate reports a limit outside 1..100.
	Validate() error

	paginator()
}

// ListOptions is a page request without a cursor. Use ListBefore or ListAfter
// to move to a cursored request.
type ListOptions struct {
	limit *int
}

// ListBeforeOptions is a page request ending before a given identifier.
type ListBeforeOptions struct {
	limit  *int
	before string
}

// ListAfterOptions is a page request starting after a given identifier.
type ListAfterOptions struct {
	limit *int
	after string
}

// WithLimit sets the page size.
func (o ListOptions) WithLimit(n int) ListOptions {
	o.limit = &n
	return o
}

// ListBefore returns options that page backwards from id.
func (o ListOptions) ListBefore(id string) ListBeforeOptions {
	return ListBeforeOptions{limit: o.limit, before: id}
}

// ListAfter returns options that page forwards from id.
func (o ListOptions) ListAfter(id string) ListAfterOptions {
	return ListAfterOptions{limit: o.limit, after: id}
}

// WithLimit sets the page size.
func (o ListBeforeOptions) WithLimit(n int) ListBeforeOptions {
	o.limit = &n
	return o
}

// WithLimit sets the page size.
func (o ListAfterOptions) WithLimit(n int) ListAfterOptions {
	o.limit = &n
	return o
}

// Query returns the encoded query string, limit first.
func (o ListOptions) Query() string { return listQuery(o.limit, "", "") }

// Query returns the encoded query string, limit first and then before.
func (o ListBeforeOptions) Query() string { return listQuery(o.limit, "before", o.before) }

// Query returns the encoded query string, limit first and then after.
func (o ListAfterOptions) Query() string { return listQuery(o.limit, "after", o.after) }

// Validate reports a limit outside 1..MaxListLimit.
func (o ListOptions) Validate() error { return validateLimit(o.limit) }

// Validate reports a limit outside 1..MaxListLimit.
func (o ListBeforeOptions) Validate() error { return validateLimit(o.limit) }

// Validate reports a limit outside 1..MaxListLimit.
func (o ListAfterOptions) Validate() error { return validateLimit(o.limit) }

func (ListOptions) paginator()       {}
func (ListBeforeOptions) paginator() {}
func (ListAfterOptions) paginator()  {}

// listQuery keeps limit ahead of the cursor; url.Values.Encode would sort the
// keys alphabetically.
func listQuery(limit *int, cursorKey, cursor string) string {
	q := ""
	if limit != nil {
		q = "limit=" + strconv.Itoa(*limit)
	}
	if cursorKey != "" {
		if q != "" {
			q += "&"
		}
		q += cursorKey + "=" + url.QueryEscape(cursor)
	}
	return q
}

func validateLimit(limit *int) error {
	if limit == nil {
		return nil
	}
	if *limit < 1 || *limit > MaxListLimit {
		return invalidArgument("limit", "must be between 1 and 100, got "+strconv.Itoa(*limit))
	}
	return nil
}

// ListResponse is one page of a list endpoint.
type ListResponse[T any] struct {
	Object  string `json:"object"`
	HasMore bool   `json:"has_more"`
	Data    []T    `json:"data"`
}

// Len returns the number of items on the page.
func (r *ListResponse[T]) Len() int {
	return len(r.Data)
}

// At returns the i-th item. It panics if i is out of range.
func (r *ListResponse[T]) At(i int) T {
	return r.Data[i]
}

type listResponseWire[T any] struct {
	Object  string `json:"object"`
	HasMore bool   `json:"has_more"`
	Data    []T    `json:"data"`
}

// UnmarshalJSON decodes a null or missing data array as an empty page.
func (r *ListResponse[T]) UnmarshalJSON(b []byte) error {
	var w listResponseWire[T]
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	r.Object = w.Object
	r.HasMore = w.HasMore
	r.Data = nullable(w.Data)
	return nil
}

// nullable turns a nil slice from a JSON null into an empty one.
func nullable[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
