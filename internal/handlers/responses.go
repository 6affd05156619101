package handlers

import (
	"net/http"

	"merchant-payments/internal/errors"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED RESPONSE PATTERNS
//
// Every endpoint answers with the uniform envelope {code, message, data}:
//
// 1. SendSuccess - 200 responses; wraps the payload in a success envelope
//
// 2. SendError - Client errors and business rule violations (4xx)
//    - Validation errors: SendError(c, errors.ValidationGeneral)
//    - Bad date input:    SendError(c, errors.ValidationInvalidDate)
//    - Missing merchant:  SendError(c, errors.MerchantNotFound)
//
// 3. SendSystemError - System/internal errors (500). The original error
//    never reaches the client; correlate via the trace ID.
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use SendError or SendSystemError instead
//    - Direct c.JSON() for errors - Use the helper functions

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendSuccess sends the payload wrapped in the standard success envelope
func SendSuccess(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, errors.NewSuccessEnvelope(data))
}

// SendError sends a standardized error envelope with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.EnvelopeOption) error {
	envelope := errors.NewErrorEnvelope(code, getTraceID(c), opts...)
	return c.JSON(envelope.GetHTTPStatus(), envelope)
}

// SendSystemError wraps a system error with a generic message so internal
// details never leak to clients
func SendSystemError(c echo.Context, err error) error {
	envelope, _ := errors.WrapSystemError(err, getTraceID(c))
	return c.JSON(http.StatusInternalServerError, envelope)
}
