package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"merchant-payments/internal/dto"
	"merchant-payments/internal/services"
	"merchant-payments/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	echo       *echo.Echo
	txnService *service_mocks.MockTransactionServiceInterface
	handler    *TransactionHandler
	merchantID string
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.txnService = service_mocks.NewMockTransactionServiceInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.txnService)
	s.merchantID = "MCH-1A2B3C4D"
}

func (s *TransactionHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionHandlerTestSuite) newListContext(queryString string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/merchant-transaction/"+s.merchantID+"/transactions"+queryString, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetPath("/api/v1/merchant-transaction/:merchantId/transactions")
	c.SetParamNames("merchantId")
	c.SetParamValues(s.merchantID)
	return c, rec
}

func (s *TransactionHandlerTestSuite) envelope(rec *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func (s *TransactionHandlerTestSuite) TestListTransactions_Success() {
	c, rec := s.newListContext("?startDate=2024-03-01&endDate=2024-03-14&status=completed&page=0&size=20")

	listResponse := &dto.TransactionListResponse{
		MerchantID: s.merchantID,
		DateRange: dto.DateRange{
			StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		Transactions: []dto.Transaction{
			{TxnID: 1, MerchantID: s.merchantID, Amount: "5.00", Status: "completed", Details: []dto.Detail{}},
		},
		Summary: dto.Summary{
			TotalTransactions: 1,
			TotalAmount:       "5.00",
			Currency:          "USD",
			ByStatus:          map[string]int64{"completed": 1},
		},
		Pagination: dto.Pagination{Page: 0, PageSize: 20, TotalPages: 1, TotalElements: 1},
	}

	s.txnService.EXPECT().
		ListTransactions(gomock.Any(), s.merchantID, dto.TransactionListQuery{
			StartDate: "2024-03-01",
			EndDate:   "2024-03-14",
			Status:    "completed",
			Page:      0,
			Size:      20,
		}).
		Return(listResponse, nil)

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)

	response := s.envelope(rec)
	s.Equal("200", response["code"])
	s.Equal("Success", response["message"])
	s.NotNil(response["data"])
}

func (s *TransactionHandlerTestSuite) TestListTransactions_InvalidDateFormat() {
	c, rec := s.newListContext("?startDate=03/01/2024")

	s.txnService.EXPECT().
		ListTransactions(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, services.ErrInvalidDateFormat)

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	response := s.envelope(rec)
	s.Equal("VALIDATION_002", response["code"])
	s.Equal("Invalid date format. Expected yyyy-MM-dd", response["message"])
}

func (s *TransactionHandlerTestSuite) TestListTransactions_NegativePageRejected() {
	c, rec := s.newListContext("?page=-1")

	s.txnService.EXPECT().
		ListTransactions(gomock.Any(), gomock.Any(), gomock.Any()).
		Times(0)

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	response := s.envelope(rec)
	s.Equal("VALIDATION_004", response["code"])
}

func (s *TransactionHandlerTestSuite) TestListTransactions_OversizedPageRejected() {
	c, rec := s.newListContext("?size=500")

	s.txnService.EXPECT().
		ListTransactions(gomock.Any(), gomock.Any(), gomock.Any()).
		Times(0)

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_ServiceFailure() {
	c, rec := s.newListContext("")

	s.txnService.EXPECT().
		ListTransactions(gomock.Any(), s.merchantID, gomock.Any()).
		Return(nil, echo.ErrInternalServerError)

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusInternalServerError, rec.Code)

	response := s.envelope(rec)
	s.Equal("SYSTEM_002", response["code"])
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	body := `{"amount":"25.50","currency":"USD","cardType":"VISA","cardLast4":"4242"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/merchant-transaction/"+s.merchantID+"/transactions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("merchantId")
	c.SetParamValues(s.merchantID)

	s.txnService.EXPECT().
		RecordTransaction(gomock.Any(), s.merchantID, gomock.Any()).
		Return(&dto.CreateTransactionResponse{MerchantID: s.merchantID, TransactionID: 777}, nil)

	s.NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusCreated, rec.Code)

	response := s.envelope(rec)
	s.Equal("200", response["code"])
	data := response["data"].(map[string]interface{})
	s.Equal(float64(777), data["transactionId"])
}

// Free-form status and currency values and non-positive amounts are not
// the handler's concern; the payload reaches the service untouched
func (s *TransactionHandlerTestSuite) TestCreateTransaction_FreeFormFieldsAccepted() {
	body := `{"amount":"0","currency":"usd","status":"refunded"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/merchant-transaction/"+s.merchantID+"/transactions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("merchantId")
	c.SetParamValues(s.merchantID)

	s.txnService.EXPECT().
		RecordTransaction(gomock.Any(), s.merchantID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req *dto.CreateTransactionRequest) (*dto.CreateTransactionResponse, error) {
			s.Equal("0", req.Amount)
			s.Equal("usd", req.Currency)
			s.Equal("refunded", req.Status)
			return &dto.CreateTransactionResponse{MerchantID: s.merchantID, TransactionID: 42}, nil
		})

	s.NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_ValidationFailure() {
	body := `{"amount":"25.50","cardLast4":"12345"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/merchant-transaction/"+s.merchantID+"/transactions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("merchantId")
	c.SetParamValues(s.merchantID)

	s.txnService.EXPECT().
		RecordTransaction(gomock.Any(), gomock.Any(), gomock.Any()).
		Times(0)

	s.NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	response := s.envelope(rec)
	s.Equal("VALIDATION_001", response["code"])
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_InvalidAmountFromService() {
	body := `{"amount":"10.00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/merchant-transaction/"+s.merchantID+"/transactions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("merchantId")
	c.SetParamValues(s.merchantID)

	s.txnService.EXPECT().
		RecordTransaction(gomock.Any(), s.merchantID, gomock.Any()).
		Return(nil, services.ErrInvalidAmount)

	s.NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	response := s.envelope(rec)
	s.Equal("TRANSACTION_002", response["code"])
}
