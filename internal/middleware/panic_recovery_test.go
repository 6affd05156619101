package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// PanicRecoveryTestSuite defines the test suite for the panic recovery middleware
type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

// SetupTest runs before each test
func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
}

// TestPanicRecoveryTestSuite runs the test suite
func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) envelope(rec *httptest.ResponseRecorder) map[string]interface{} {
	var envelope map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

// TestPanicRecovery_ReturnsInternalErrorEnvelope tests that a panic becomes a 500 response
func (s *PanicRecoveryTestSuite) TestPanicRecovery_ReturnsInternalErrorEnvelope() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		panic("boom")
	})

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)

	envelope := s.envelope(rec)
	s.Equal("SYSTEM_001", envelope["code"])
	s.Equal("An internal error occurred", envelope["message"])
	s.Equal("unknown", envelope["traceId"])
}

// TestPanicRecovery_UsesTraceIDFromContext tests that the envelope carries the request trace ID
func (s *PanicRecoveryTestSuite) TestPanicRecovery_UsesTraceIDFromContext() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-abc-123")

	handler := PanicRecovery()(func(c echo.Context) error {
		panic("boom")
	})

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)

	envelope := s.envelope(rec)
	s.Equal("SYSTEM_001", envelope["code"])
	s.Equal("trace-abc-123", envelope["traceId"])
}

// TestPanicRecovery_PassesThroughWithoutPanic tests the happy path is untouched
func (s *PanicRecoveryTestSuite) TestPanicRecovery_PassesThroughWithoutPanic() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

// TestPanicRecovery_PropagatesHandlerError tests that plain errors are not swallowed
func (s *PanicRecoveryTestSuite) TestPanicRecovery_PropagatesHandlerError() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		return echo.ErrBadRequest
	})

	err := handler(c)
	s.ErrorIs(err, echo.ErrBadRequest)
}
