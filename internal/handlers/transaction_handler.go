package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apierrors "merchant-payments/internal/errors"

	"merchant-payments/internal/dto"
	"merchant-payments/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles merchant transaction endpoints
type TransactionHandler struct {
	txnService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(txnService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		txnService: txnService,
	}
}

// ListTransactions handles GET /api/v1/merchant-transaction/:merchantId/transactions
// @Summary List merchant transactions
// @Description Paginated transaction listing with date window, status filter, per-page details and a whole-set summary
// @Tags Transactions
// @Produce json
// @Param merchantId path string true "Merchant ID"
// @Param startDate query string false "Start date (yyyy-MM-dd), defaults to one month ago"
// @Param endDate query string false "End date (yyyy-MM-dd), defaults to today"
// @Param status query string false "Status filter, case-insensitive; absent matches all"
// @Param page query int false "Zero-based page number"
// @Param size query int false "Page size (1-100)"
// @Success 200 {object} errors.Envelope{data=dto.TransactionListResponse}
// @Failure 400 {object} errors.Envelope "VALIDATION_002 - Invalid date format"
// @Router /api/v1/merchant-transaction/{merchantId}/transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	merchantID := c.Param("merchantId")
	if merchantID == "" {
		return SendError(c, apierrors.MerchantInvalidID)
	}

	query := dto.TransactionListQuery{
		StartDate: c.QueryParam("startDate"),
		EndDate:   c.QueryParam("endDate"),
		Status:    c.QueryParam("status"),
		Page:      getIntParam(c, "page", 0),
		Size:      getIntParam(c, "size", 0),
	}

	if query.Page < 0 {
		return SendError(c, apierrors.ValidationOutOfRange,
			apierrors.WithMessage("Page must not be negative"))
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if query.Size < 1 || query.Size > 100 {
			return SendError(c, apierrors.ValidationOutOfRange,
				apierrors.WithMessage("Page size must be between 1 and 100"))
		}
	}

	response, err := h.txnService.ListTransactions(c.Request().Context(), merchantID, query)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDateFormat) {
			return SendError(c, apierrors.ValidationInvalidDate)
		}
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, response)
}

// CreateTransaction handles POST /api/v1/merchant-transaction/:merchantId/transactions
// @Summary Record a transaction
// @Description Persist a new transaction for the merchant; the store assigns the ID and missing fields get defaults
// @Tags Transactions
// @Accept json
// @Produce json
// @Param merchantId path string true "Merchant ID"
// @Param request body dto.CreateTransactionRequest true "Transaction payload"
// @Success 201 {object} errors.Envelope{data=dto.CreateTransactionResponse}
// @Failure 400 {object} errors.Envelope "VALIDATION_003 - Missing or invalid body"
// @Router /api/v1/merchant-transaction/{merchantId}/transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	merchantID := c.Param("merchantId")
	if merchantID == "" {
		return SendError(c, apierrors.MerchantInvalidID)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationMissingBody)
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral,
			apierrors.WithMessage(err.Error()))
	}

	response, err := h.txnService.RecordTransaction(c.Request().Context(), merchantID, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAmount) {
			return SendError(c, apierrors.TransactionInvalidAmount)
		}
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusCreated, response)
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(param)
	if err != nil {
		return defaultValue
	}

	return value
}
