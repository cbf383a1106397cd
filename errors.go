package resend

import "github.com/resend/client-go/internal/apierrors"

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned by New when no API key is given and RESEND_API_KEY is unset.
	ErrMissingAPIKey = apierrors.ErrMissingAPIKey

	// ErrUnauthorized matches missing, invalid and restricted API key errors.
	ErrUnauthorized = apierrors.ErrUnauthorized

	// ErrNotFound matches not_found errors and bare 404 responses.
	ErrNotFound = apierrors.ErrNotFound

	// ErrValidation matches payload validation errors.
	ErrValidation = apierrors.ErrValidation

	// ErrRateLimited matches RateLimitError.
	ErrRateLimited = apierrors.ErrRateLimited

	// ErrQuotaExceeded matches daily and monthly quota errors.
	ErrQuotaExceeded = apierrors.ErrQuotaExceeded

	// ErrIdempotency matches idempotency key errors.
	ErrIdempotency = apierrors.ErrIdempotency

	// ErrServer matches 5xx responses without a more specific kind.
	ErrServer = apierrors.ErrServer
)

// ResendError is implemented by all errors returned from this package.
type ResendError interface {
	error
	ResendError() // marker method
}

// Error types. Every public call returns one of these, possibly wrapped.
type (
	// TransportError wraps a failure of the underlying HTTP client.
	TransportError = apierrors.TransportError
	// RemoteError is a 4xx/5xx response with an error document.
	RemoteError = apierrors.RemoteError
	// RateLimitError is an HTTP 429 with the parsed ratelimit-* headers.
	RateLimitError = apierrors.RateLimitError
	// DecodeError is a response or event body that could not be decoded.
	DecodeError = apierrors.DecodeError
	// InvalidPathError is a path that could not be joined onto the base URL.
	InvalidPathError = apierrors.InvalidPathError
	// InvalidArgumentError is a request option rejected before any I/O.
	InvalidArgumentError = apierrors.InvalidArgumentError
	// ParseError is an inbound event envelope that is not valid JSON.
	ParseError = apierrors.ParseError
)

// ErrorKind classifies a RemoteError by the name in its error document.
type ErrorKind = apierrors.ErrorKind

// Error kinds reported by the API.
const (
	KindUnknown                      = apierrors.KindUnknown
	KindValidation                   = apierrors.KindValidation
	KindMissingRequiredField         = apierrors.KindMissingRequiredField
	KindInvalidIdempotencyKey        = apierrors.KindInvalidIdempotencyKey
	KindInvalidIdempotentRequest     = apierrors.KindInvalidIdempotentRequest
	KindConcurrentIdempotentRequests = apierrors.KindConcurrentIdempotentRequests
	KindInvalidAccess                = apierrors.KindInvalidAccess
	KindInvalidParameter             = apierrors.KindInvalidParameter
	KindInvalidRegion                = apierrors.KindInvalidRegion
	KindRateLimitExceeded            = apierrors.KindRateLimitExceeded
	KindMissingAPIKey                = apierrors.KindMissingAPIKey
	KindInvalidAPIKey                = apierrors.KindInvalidAPIKey
	KindRestrictedAPIKey             = apierrors.KindRestrictedAPIKey
	KindInvalidFromAddress           = apierrors.KindInvalidFromAddress
	KindInvalidAttachment            = apierrors.KindInvalidAttachment
	KindNotFound                     = apierrors.KindNotFound
	KindMethodNotAllowed             = apierrors.KindMethodNotAllowed
	KindDailyQuotaExceeded           = apierrors.KindDailyQuotaExceeded
	KindMonthlyQuotaExceeded         = apierrors.KindMonthlyQuotaExceeded
	KindSecurityError                = apierrors.KindSecurityError
	KindApplicationError             = apierrors.KindApplicationError
	KindServerError                  = apierrors.KindServerError
)

func invalidArgument(field, reason string) error {
	return &InvalidArgumentError{Field: field, Reason: reason}
}
