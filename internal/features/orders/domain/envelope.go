package domain

// EnvelopeStatus discriminates the outcome carried by an Envelope.
type EnvelopeStatus string

const (
	EnvelopeStatusOK       EnvelopeStatus = "ok"
	EnvelopeStatusNotFound EnvelopeStatus = "not_found"
	EnvelopeStatusError    EnvelopeStatus = "error"
)

// ErrorCode is the stable machine-readable failure code of an Envelope.
type ErrorCode string

const (
	ErrorCodeInvalidInput         ErrorCode = "INVALID_INPUT"
	ErrorCodeConfig               ErrorCode = "CONFIG_ERROR"
	ErrorCodeOrderNotFound        ErrorCode = "ORDER_NOT_FOUND"
	ErrorCodeVerificationMismatch ErrorCode = "VERIFICATION_MISMATCH"
	ErrorCodeBackend              ErrorCode = "BACKEND_ERROR"
	ErrorCodeUnhandled            ErrorCode = "UNHANDLED_EXCEPTION"
)

// Envelope is the response body for every lookup outcome.
// Either Order or ErrorCode/ErrorMessage is set, never both.
type Envelope struct {
	Status       EnvelopeStatus   `json:"status"`
	Order        *NormalizedOrder `json:"order,omitempty"`
	ErrorCode    ErrorCode        `json:"error_code,omitempty"`
	ErrorMessage string           `json:"error_message,omitempty"`
}

// OKEnvelope wraps a normalized order.
func OKEnvelope(order *NormalizedOrder) Envelope {
	return Envelope{Status: EnvelopeStatusOK, Order: order}
}

// NotFoundEnvelope reports an unknown or unverifiable order.
func NotFoundEnvelope(code ErrorCode, message string) Envelope {
	return Envelope{Status: EnvelopeStatusNotFound, ErrorCode: code, ErrorMessage: message}
}

// ErrorEnvelope reports a failed lookup.
func ErrorEnvelope(code ErrorCode, message string) Envelope {
	return Envelope{Status: EnvelopeStatusError, ErrorCode: code, ErrorMessage: message}
}
