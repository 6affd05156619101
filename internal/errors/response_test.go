package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for response envelopes
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

// SetupTest runs before each test
func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

// TestNewErrorEnvelope_BasicUsage tests creating a basic error envelope
func (s *ResponseTestSuite) TestNewErrorEnvelope_BasicUsage() {
	envelope := NewErrorEnvelope(MerchantNotFound, s.traceID)

	s.NotNil(envelope)
	s.Equal("MERCHANT_001", envelope.Code)
	s.Equal("Merchant not found", envelope.Message)
	s.Equal(s.traceID, envelope.TraceID)
	s.Nil(envelope.Data)
}

// TestNewErrorEnvelope_WithCustomMessage tests overriding the default message
func (s *ResponseTestSuite) TestNewErrorEnvelope_WithCustomMessage() {
	customMessage := "Custom error message for specific context"
	envelope := NewErrorEnvelope(SystemInternalError, s.traceID, WithMessage(customMessage))

	s.NotNil(envelope)
	s.Equal("SYSTEM_001", envelope.Code)
	s.Equal(customMessage, envelope.Message)
	s.Equal(s.traceID, envelope.TraceID)
}

// TestNewSuccessEnvelope tests the success envelope shape
func (s *ResponseTestSuite) TestNewSuccessEnvelope() {
	payload := map[string]string{"merchantCode": "MCH-1A2B3C4D"}
	envelope := NewSuccessEnvelope(payload)

	s.Equal("200", envelope.Code)
	s.Equal("Success", envelope.Message)
	s.Equal(payload, envelope.Data)
	s.Empty(envelope.TraceID)
}

// TestWrapSystemError tests that internal errors are masked for clients
func (s *ResponseTestSuite) TestWrapSystemError() {
	internal := errors.New("pq: connection reset by peer")
	envelope, original := WrapSystemError(internal, s.traceID)

	s.Equal("SYSTEM_002", envelope.Code)
	s.Equal("A database error occurred", envelope.Message)
	s.Equal(s.traceID, envelope.TraceID)
	s.NotContains(envelope.Message, "pq:")
	s.Equal(internal, original)
}

// TestToJSON tests envelope serialization
func (s *ResponseTestSuite) TestToJSON() {
	envelope := NewErrorEnvelope(ValidationInvalidDate, s.traceID)

	bytes, err := envelope.ToJSON()
	s.NoError(err)

	var decoded map[string]interface{}
	s.Require().NoError(json.Unmarshal(bytes, &decoded))
	s.Equal("VALIDATION_002", decoded["code"])
	s.Equal("Invalid date format. Expected yyyy-MM-dd", decoded["message"])
	s.Equal(s.traceID, decoded["traceId"])

	// data is omitted for error envelopes
	_, hasData := decoded["data"]
	s.False(hasData)
}

// TestGetHTTPStatus tests the code to HTTP status mapping
func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ValidationInvalidDate, http.StatusBadRequest},
		{ValidationMissingBody, http.StatusBadRequest},
		{ValidationOutOfRange, http.StatusBadRequest},
		{MerchantInvalidID, http.StatusBadRequest},
		{TransactionInvalidAmount, http.StatusBadRequest},
		{MerchantNotFound, http.StatusNotFound},
		{TransactionNotFound, http.StatusNotFound},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{SystemDatabaseError, http.StatusInternalServerError},
		{"UNKNOWN_CODE", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetHTTPStatus(tc.code))
		})
	}
}

// TestEnvelope_GetHTTPStatus tests status resolution from the envelope itself
func (s *ResponseTestSuite) TestEnvelope_GetHTTPStatus() {
	envelope := NewErrorEnvelope(MerchantNotFound, s.traceID)
	s.Equal(http.StatusNotFound, envelope.GetHTTPStatus())
}

// TestEnvelope_IsClientError tests client vs server error classification
func (s *ResponseTestSuite) TestEnvelope_IsClientError() {
	s.True(NewErrorEnvelope(ValidationGeneral, s.traceID).IsClientError())
	s.True(NewErrorEnvelope(MerchantNotFound, s.traceID).IsClientError())
	s.True(NewErrorEnvelope(SystemRateLimitExceeded, s.traceID).IsClientError())
	s.False(NewErrorEnvelope(SystemDatabaseError, s.traceID).IsClientError())
	s.False(NewErrorEnvelope(SystemServiceUnavailable, s.traceID).IsClientError())
}

// TestEnvelope_String tests the string representation
func (s *ResponseTestSuite) TestEnvelope_String() {
	envelope := NewErrorEnvelope(MerchantNotFound, s.traceID)

	str := envelope.String()
	s.Contains(str, "MERCHANT_001")
	s.Contains(str, "Merchant not found")
	s.Contains(str, s.traceID)
}
