package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when the request carries no usable order ID.
	ErrInvalidInput = errors.New("missing or invalid order_id")
	// ErrConfigMissing is returned when the order API URL or key is not configured.
	ErrConfigMissing = errors.New("missing ORDER_API_URL or ORDER_API_KEY")
	// ErrOrderNotFound is returned when the order API does not know the order.
	ErrOrderNotFound = errors.New("order not found")
	// ErrVerificationMismatch is returned when the supplied phone does not match the order.
	ErrVerificationMismatch = errors.New("provided phone does not match order")
	// ErrMalformedUpstream is returned when a successful upstream response cannot be decoded.
	ErrMalformedUpstream = errors.New("malformed upstream order")
)

// BackendError is returned when the order API answers with a non-success status other than 404.
type BackendError struct {
	// StatusCode is the upstream HTTP status.
	StatusCode int
	// Body is the raw upstream response body.
	Body string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("upstream error: %d %s", e.StatusCode, e.Body)
}
