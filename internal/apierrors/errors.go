// Package apierrors provides the error types shared by the transport and the
// public resend package.
package apierrors

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided and RESEND_API_KEY is unset.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrUnauthorized is returned when the API key is missing, invalid or restricted.
	ErrUnauthorized = errors.New("invalid or restricted API key")

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation is returned when the server rejects the request payload.
	ErrValidation = errors.New("request validation failed")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrQuotaExceeded is returned when the daily or monthly sending quota is exhausted.
	ErrQuotaExceeded = errors.New("sending quota exceeded")

	// ErrIdempotency is returned when an idempotency key is invalid or reused.
	ErrIdempotency = errors.New("idempotency key conflict")

	// ErrServer is returned for 5xx responses.
	ErrServer = errors.New("server error")
)

// ErrorKind classifies a remote error. It is derived from the `name` field of
// the error document returned by the API.
type ErrorKind string

const (
	KindUnknown                      ErrorKind = ""
	KindValidation                   ErrorKind = "validation_error"
	KindMissingRequiredField         ErrorKind = "missing_required_field"
	KindInvalidIdempotencyKey        ErrorKind = "invalid_idempotency_key"
	KindInvalidIdempotentRequest     ErrorKind = "invalid_idempotent_request"
	KindConcurrentIdempotentRequests ErrorKind = "concurrent_idempotent_requests"
	KindInvalidAccess                ErrorKind = "invalid_access"
	KindInvalidParameter             ErrorKind = "invalid_parameter"
	KindInvalidRegion                ErrorKind = "invalid_region"
	KindRateLimitExceeded            ErrorKind = "rate_limit_exceeded"
	KindMissingAPIKey                ErrorKind = "missing_api_key"
	KindInvalidAPIKey                ErrorKind = "invalid_api_key"
	KindRestrictedAPIKey             ErrorKind = "restricted_api_key"
	KindInvalidFromAddress           ErrorKind = "invalid_from_address"
	KindInvalidAttachment            ErrorKind = "invalid_attachment"
	KindNotFound                     ErrorKind = "not_found"
	KindMethodNotAllowed             ErrorKind = "method_not_allowed"
	KindDailyQuotaExceeded           ErrorKind = "daily_quota_exceeded"
	KindMonthlyQuotaExceeded         ErrorKind = "monthly_quota_exceeded"
	KindSecurityError                ErrorKind = "security_error"
	KindApplicationError             ErrorKind = "application_error"
	KindServerError                  ErrorKind = "internal_server_error"
)

var knownKinds = map[ErrorKind]struct{}{
	KindValidation:                   {},
	KindMissingRequiredField:         {},
	KindInvalidIdempotencyKey:        {},
	KindInvalidIdempotentRequest:     {},
	KindConcurrentIdempotentRequests: {},
	KindInvalidAccess:                {},
	KindInvalidParameter:             {},
	KindInvalidRegion:                {},
	KindRateLimitExceeded:            {},
	KindMissingAPIKey:                {},
	KindInvalidAPIKey:                {},
	KindRestrictedAPIKey:             {},
	KindInvalidFromAddress:           {},
	KindInvalidAttachment:            {},
	KindNotFound:                     {},
	KindMethodNotAllowed:             {},
	KindDailyQuotaExceeded:           {},
	KindMonthlyQuotaExceeded:         {},
	KindSecurityError:                {},
	KindApplicationError:             {},
	KindServerError:                  {},
}

// ParseErrorKind maps an error document name to an ErrorKind. Unrecognised
// names map to KindUnknown.
func ParseErrorKind(name string) ErrorKind {
	k := ErrorKind(name)
	if _, ok := knownKinds[k]; ok {
		return k
	}
	return KindUnknown
}

// TransportError wraps a failure of the underlying HTTP client: DNS, connect,
// TLS, read/write or cancellation.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s %s: %v", e.Method, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ResendError implements the ResendError interface.
func (e *TransportError) ResendError() {}

// RemoteError is an HTTP 4xx/5xx response carrying an error document.
type RemoteError struct {
	Kind       ErrorKind
	Name       string // raw name from the error document
	Message    string
	StatusCode int
}

func (e *RemoteError) Error() string {
	name := e.Name
	if name == "" {
		name = string(e.Kind)
	}
	switch {
	case name != "" && e.Message != "":
		return fmt.Sprintf("API error %d (%s): %s", e.StatusCode, name, e.Message)
	case e.Message != "":
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	case name != "":
		return fmt.Sprintf("API error %d (%s)", e.StatusCode, name)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// ResendError implements the ResendError interface.
func (e *RemoteError) ResendError() {}

// Is implements errors.Is for sentinel error matching.
func (e *RemoteError) Is(target error) bool {
	switch e.Kind {
	case KindMissingAPIKey, KindInvalidAPIKey, KindRestrictedAPIKey:
		return target == ErrUnauthorized
	case KindNotFound:
		return target == ErrNotFound
	case KindValidation, KindMissingRequiredField, KindInvalidParameter,
		KindInvalidFromAddress, KindInvalidAttachment, KindInvalidRegion:
		return target == ErrValidation
	case KindDailyQuotaExceeded, KindMonthlyQuotaExceeded:
		return target == ErrQuotaExceeded
	case KindInvalidIdempotencyKey, KindInvalidIdempotentRequest, KindConcurrentIdempotentRequests:
		return target == ErrIdempotency
	case KindRateLimitExceeded:
		return target == ErrRateLimited
	}
	switch {
	case e.StatusCode == 401 || e.StatusCode == 403:
		return target == ErrUnauthorized
	case e.StatusCode == 404:
		return target == ErrNotFound
	case e.StatusCode == 422:
		return target == ErrValidation
	case e.StatusCode >= 500:
		return target == ErrServer
	}
	return false
}

// RateLimitError is returned for HTTP 429. Each field is nil when the
// corresponding header was absent or not a decimal integer.
type RateLimitError struct {
	Limit        *int
	Remaining    *int
	ResetSeconds *int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded (limit=%s remaining=%s reset=%ss)",
		optInt(e.Limit), optInt(e.Remaining), optInt(e.ResetSeconds))
}

// ResendError implements the ResendError interface.
func (e *RateLimitError) ResendError() {}

// Is implements errors.Is for sentinel error matching.
func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}

func optInt(v *int) string {
	if v == nil {
		return "?"
	}
	return strconv.Itoa(*v)
}

// DecodeError indicates a response body or event body could not be decoded.
type DecodeError struct {
	Context string
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode %s: %v", e.Context, e.Err)
	}
	return fmt.Sprintf("decode %s", e.Context)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ResendError implements the ResendError interface.
func (e *DecodeError) ResendError() {}

// InvalidPathError is returned when a path cannot be joined onto the base URL.
type InvalidPathError struct {
	Path string
	Err  error
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid path %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *InvalidPathError) Unwrap() error {
	return e.Err
}

// ResendError implements the ResendError interface.
func (e *InvalidPathError) ResendError() {}

// InvalidArgumentError is returned before any I/O when a request option is out
// of range.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Field, e.Reason)
}

// ResendError implements the ResendError interface.
func (e *InvalidArgumentError) ResendError() {}

// ParseError is returned when an inbound event envelope is not valid JSON or
// lacks its envelope fields.
type ParseError struct {
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse event: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("parse event: %s", e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ResendError implements the ResendError interface.
func (e *ParseError) ResendError() {}
