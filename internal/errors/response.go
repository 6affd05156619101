package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Envelope is the uniform API response shape. Success responses carry a
// payload in Data; error responses reuse the same shape with an error code
// and descriptive message and no payload.
type Envelope struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	TraceID string      `json:"traceId,omitempty"`
}

// EnvelopeOption is a functional option for configuring error envelopes
type EnvelopeOption func(*Envelope)

// WithMessage overrides the default message for the error code
func WithMessage(message string) EnvelopeOption {
	return func(e *Envelope) {
		e.Message = message
	}
}

// NewErrorEnvelope creates a standardized error envelope for the given error
// code and trace ID. Optional overrides are applied via functional options.
func NewErrorEnvelope(code ErrorCode, traceID string, opts ...EnvelopeOption) *Envelope {
	envelope := &Envelope{
		Code:    string(code),
		Message: GetErrorMessage(code),
		TraceID: traceID,
	}

	for _, opt := range opts {
		opt(envelope)
	}

	return envelope
}

// NewSuccessEnvelope creates a success envelope wrapping the given payload
func NewSuccessEnvelope(data interface{}) *Envelope {
	return &Envelope{
		Code:    "200",
		Message: "Success",
		Data:    data,
	}
}

// WrapSystemError wraps an internal error with a generic system error
// message so internal details never reach clients. The original error is
// returned separately for server-side logging.
func WrapSystemError(err error, traceID string) (*Envelope, error) {
	return NewErrorEnvelope(SystemDatabaseError, traceID), err
}

// ToJSON serializes the envelope to JSON bytes
func (e *Envelope) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// GetHTTPStatus returns the appropriate HTTP status code for the error code
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	// 400 Bad Request - validation errors, malformed requests
	case ValidationGeneral, ValidationInvalidDate, ValidationMissingBody,
		ValidationOutOfRange, MerchantInvalidID, TransactionInvalidAmount:
		return http.StatusBadRequest

	// 404 Not Found - missing resources
	case MerchantNotFound, TransactionNotFound:
		return http.StatusNotFound

	// 429 Too Many Requests - rate limiting
	case SystemRateLimitExceeded:
		return http.StatusTooManyRequests

	// 503 Service Unavailable
	case SystemServiceUnavailable:
		return http.StatusServiceUnavailable

	// 500 Internal Server Error - system errors (default)
	case SystemInternalError, SystemDatabaseError:
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// GetHTTPStatus returns the HTTP status code for the envelope's code
func (e *Envelope) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(e.Code))
}

// IsClientError returns true if the envelope carries a 4xx error code
func (e *Envelope) IsClientError() bool {
	status := e.GetHTTPStatus()
	return status >= 400 && status < 500
}

// String returns a string representation of the envelope
func (e *Envelope) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", e.Code, e.Message, e.TraceID)
}
