package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/resend/client-go/internal/apierrors"
)

// Rate limit headers read on HTTP 429.
const (
	HeaderRateLimitLimit     = "ratelimit-limit"
	HeaderRateLimitRemaining = "ratelimit-remaining"
	HeaderRateLimitReset     = "ratelimit-reset"
)

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 1 << 20

// errorDocument is the JSON body the API returns on 4xx/5xx.
type errorDocument struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}

func checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return RateLimitFromHeader(resp.Header)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return &apierrors.DecodeError{
			Context: fmt.Sprintf("error response (HTTP %d)", resp.StatusCode),
			Err:     err,
		}
	}

	var doc errorDocument
	if len(bytes.TrimSpace(body)) > 0 {
		if err = json.Unmarshal(body, &doc); err == nil && (doc.Name != "" || doc.Message != "") {
			return &apierrors.RemoteError{
				Kind:       apierrors.ParseErrorKind(doc.Name),
				Name:       doc.Name,
				Message:    doc.Message,
				StatusCode: resp.StatusCode,
			}
		}
	}

	if resp.StatusCode >= 500 {
		return &apierrors.RemoteError{
			Kind:       apierrors.KindServerError,
			Message:    http.StatusText(resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
	}

	return &apierrors.DecodeError{
		Context: fmt.Sprintf("error response (HTTP %d)", resp.StatusCode),
		Err:     err,
	}
}

// RateLimitFromHeader extracts the rate limit signal. Absent or non-numeric
// headers leave the corresponding field nil.
func RateLimitFromHeader(h http.Header) *apierrors.RateLimitError {
	return &apierrors.RateLimitError{
		Limit:        headerInt(h, HeaderRateLimitLimit),
		Remaining:    headerInt(h, HeaderRateLimitRemaining),
		ResetSeconds: headerInt(h, HeaderRateLimitReset),
	}
}

func headerInt(h http.Header, key string) *int {
	v := strings.TrimSpace(h.Get(key))
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}
