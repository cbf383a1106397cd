package resend

import (
	"context"
	"fmt"
	"net/http"
)

// MaxBatchSize is the largest number of emails accepted by one batch call.
const MaxBatchSize = 100

// BatchValidationHeader selects how the server treats invalid batch items.
const BatchValidationHeader = "x-batch-validation"

// BatchValidation is the value of the x-batch-validation header.
type BatchValidation string

const (
	// BatchStrict rejects the whole batch if any email is invalid.
	BatchStrict BatchValidation = "strict"
	// BatchPermissive sends the valid emails and reports the rest in Errors.
	BatchPermissive BatchValidation = "permissive"
)

type batchConfig struct {
	validation BatchValidation
}

// BatchOption configures a batch send.
type BatchOption func(*batchConfig)

// WithBatchValidation sets the x-batch-validation mode.
func WithBatchValidation(mode BatchValidation) BatchOption {
	return func(c *batchConfig) {
		c.validation = mode
	}
}

// BatchError reports one email rejected in permissive mode.
type BatchError struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

// BatchResponse lists the IDs of the emails accepted, in request order.
type BatchResponse struct {
	Data   []SendEmailResponse `json:"data"`
	Errors []BatchError        `json:"errors,omitempty"`
}

// BatchService sends up to MaxBatchSize emails in one request.
type BatchService struct {
	service
}

// Send sends a batch of emails.
func (s *BatchService) Send(ctx context.Context, emails []*CreateEmailRequest, opts ...BatchOption) (*BatchResponse, error) {
	return s.SendIdempotent(ctx, Idempotently(emails), opts...)
}

// SendIdempotent sends a batch with an optional Idempotency-Key header. The key
// applies to the batch as a whole.
func (s *BatchService) SendIdempotent(ctx context.Context, req Idempotent[[]*CreateEmailRequest], opts ...BatchOption) (*BatchResponse, error) {
	cfg := &batchConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if len(req.Data) == 0 {
		return nil, invalidArgument("emails", "batch is empty")
	}
	if len(req.Data) > MaxBatchSize {
		return nil, invalidArgument("emails", fmt.Sprintf("at most %d emails per batch, got %d", MaxBatchSize, len(req.Data)))
	}
	// Permissive batches let the server report bad items individually.
	if cfg.validation != BatchPermissive {
		for i, e := range req.Data {
			if err := e.Validate(); err != nil {
				return nil, fmt.Errorf("emails[%d]: %w", i, err)
			}
		}
	}

	reqOpts := []requestOption{withIdempotencyKey(req.IdempotencyKey)}
	if cfg.validation != "" {
		reqOpts = append(reqOpts, withHeader(BatchValidationHeader, string(cfg.validation)))
	}

	resp, err := doJSON[BatchResponse](ctx, s.service, http.MethodPost, "/emails/batch", req.Data, reqOpts...)
	if err != nil {
		return nil, err
	}
	resp.Data = nullable(resp.Data)
	return resp, nil
}
