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

// MerchantHandler handles merchant directory endpoints
type MerchantHandler struct {
	merchantService services.MerchantServiceInterface
}

// NewMerchantHandler creates a new merchant handler
func NewMerchantHandler(merchantService services.MerchantServiceInterface) *MerchantHandler {
	return &MerchantHandler{
		merchantService: merchantService,
	}
}

// CreateMerchant handles POST /api/v1/merchants
// @Summary Onboard a merchant
// @Tags Merchants
// @Accept json
// @Produce json
// @Param request body dto.CreateMerchantRequest true "Merchant payload"
// @Success 201 {object} errors.Envelope{data=models.Merchant}
// @Failure 400 {object} errors.Envelope "VALIDATION_001 - Invalid payload"
// @Router /api/v1/merchants [post]
func (h *MerchantHandler) CreateMerchant(c echo.Context) error {
	var req dto.CreateMerchantRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationMissingBody)
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral,
			apierrors.WithMessage(err.Error()))
	}

	merchant, err := h.merchantService.CreateMerchant(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAmount) {
			return SendError(c, apierrors.TransactionInvalidAmount)
		}
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusCreated, merchant)
}

// GetMerchant handles GET /api/v1/merchants/:merchantId
// @Summary Get a merchant
// @Tags Merchants
// @Produce json
// @Param merchantId path int true "Merchant ID"
// @Success 200 {object} errors.Envelope{data=models.Merchant}
// @Failure 404 {object} errors.Envelope "MERCHANT_001 - Merchant not found"
// @Router /api/v1/merchants/{merchantId} [get]
func (h *MerchantHandler) GetMerchant(c echo.Context) error {
	id, err := parseMerchantID(c)
	if err != nil {
		return SendError(c, apierrors.MerchantInvalidID)
	}

	merchant, err := h.merchantService.GetMerchant(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return SendError(c, apierrors.MerchantNotFound)
		}
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, merchant)
}

// ListMerchants handles GET /api/v1/merchants
// @Summary List merchants
// @Tags Merchants
// @Produce json
// @Param status query string false "Lifecycle status filter"
// @Param page query int false "Zero-based page number"
// @Param size query int false "Page size"
// @Success 200 {object} errors.Envelope{data=dto.MerchantListResponse}
// @Router /api/v1/merchants [get]
func (h *MerchantHandler) ListMerchants(c echo.Context) error {
	query := dto.MerchantListQuery{
		Status: c.QueryParam("status"),
		Page:   getIntParam(c, "page", 0),
		Size:   getIntParam(c, "size", 0),
	}

	response, err := h.merchantService.ListMerchants(c.Request().Context(), query)
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, response)
}

// UpdateMerchant handles PUT /api/v1/merchants/:merchantId
// @Summary Update a merchant
// @Description Partial update; only fields present in the payload change
// @Tags Merchants
// @Accept json
// @Produce json
// @Param merchantId path int true "Merchant ID"
// @Param request body dto.UpdateMerchantRequest true "Fields to update"
// @Success 200 {object} errors.Envelope{data=models.Merchant}
// @Failure 404 {object} errors.Envelope "MERCHANT_001 - Merchant not found"
// @Router /api/v1/merchants/{merchantId} [put]
func (h *MerchantHandler) UpdateMerchant(c echo.Context) error {
	id, err := parseMerchantID(c)
	if err != nil {
		return SendError(c, apierrors.MerchantInvalidID)
	}

	var req dto.UpdateMerchantRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationMissingBody)
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral,
			apierrors.WithMessage(err.Error()))
	}

	merchant, err := h.merchantService.UpdateMerchant(c.Request().Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return SendError(c, apierrors.MerchantNotFound)
		case errors.Is(err, services.ErrInvalidAmount):
			return SendError(c, apierrors.TransactionInvalidAmount)
		default:
			return SendSystemError(c, err)
		}
	}

	return SendSuccess(c, http.StatusOK, merchant)
}

// DeactivateMerchant handles DELETE /api/v1/merchants/:merchantId
// @Summary Deactivate a merchant
// @Description Soft removal; the merchant's transaction history stays queryable
// @Tags Merchants
// @Produce json
// @Param merchantId path int true "Merchant ID"
// @Success 200 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope "MERCHANT_001 - Merchant not found"
// @Router /api/v1/merchants/{merchantId} [delete]
func (h *MerchantHandler) DeactivateMerchant(c echo.Context) error {
	id, err := parseMerchantID(c)
	if err != nil {
		return SendError(c, apierrors.MerchantInvalidID)
	}

	if err := h.merchantService.DeactivateMerchant(c.Request().Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return SendError(c, apierrors.MerchantNotFound)
		}
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, nil)
}

func parseMerchantID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("merchantId"), 10, 64)
}
