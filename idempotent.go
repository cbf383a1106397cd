package resend

import "github.com/google/uuid"

// Idempotent pairs a request body with an optional idempotency key. The key
// travels in the Idempotency-Key header and never in the JSON body.
type Idempotent[T any] struct {
	IdempotencyKey string
	Data           T
}

// Idempotently wraps data without a key. Use WithKey to attach one.
func Idempotently[T any](data T) Idempotent[T] {
	return Idempotent[T]{Data: data}
}

// WithKey sets the idempotency key.
func (i Idempotent[T]) WithKey(key string) Idempotent[T] {
	i.IdempotencyKey = key
	return i
}

// NewIdempotencyKey returns a random key suitable for Idempotent.WithKey.
func NewIdempotencyKey() string {
	return uuid.NewString()
}
