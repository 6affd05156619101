package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"merchant-payments/internal/config"
	"merchant-payments/internal/dto"
	"merchant-payments/internal/models"
	"merchant-payments/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("resource not found")
)

type merchantService struct {
	merchantRepo repositories.MerchantRepositoryInterface
	cfg          config.QueryConfig
	metrics      MetricsRecorderInterface
}

// NewMerchantService creates a new merchant service
func NewMerchantService(
	merchantRepo repositories.MerchantRepositoryInterface,
	cfg config.QueryConfig,
	metrics MetricsRecorderInterface,
) MerchantServiceInterface {
	return &merchantService{
		merchantRepo: merchantRepo,
		cfg:          cfg,
		metrics:      metrics,
	}
}

// CreateMerchant onboards a new merchant with settlement defaults
func (s *merchantService) CreateMerchant(ctx context.Context, req *dto.CreateMerchantRequest) (*models.Merchant, error) {
	merchant := &models.Merchant{
		MerchantName:        req.MerchantName,
		BusinessType:        req.BusinessType,
		WebsiteURL:          req.WebsiteURL,
		ContactEmail:        req.ContactEmail,
		ContactPhone:        req.ContactPhone,
		RegistrationNumber:  req.RegistrationNumber,
		Country:             req.Country,
		AddressLine1:        req.AddressLine1,
		AddressLine2:        req.AddressLine2,
		City:                req.City,
		State:               req.State,
		PostalCode:          req.PostalCode,
		SettlementCurrency:  req.SettlementCurrency,
		SettlementCycle:     req.SettlementCycle,
		PayoutAccountNumber: req.PayoutAccountNumber,
		PayoutBankName:      req.PayoutBankName,
		PayoutBankCountry:   req.PayoutBankCountry,
		RiskLevel:           models.DefaultRiskLevel,
		Status:              models.MerchantStatusPending,
	}

	if merchant.SettlementCurrency == "" {
		merchant.SettlementCurrency = models.DefaultSettlementCurrency
	}
	if merchant.SettlementCycle == "" {
		merchant.SettlementCycle = models.DefaultSettlementCycle
	}

	var err error
	if merchant.DailyTxnLimit, err = parseLimitOrDefault(req.DailyTxnLimit, models.DefaultDailyTxnLimit); err != nil {
		return nil, ErrInvalidAmount
	}
	if merchant.MonthlyTxnLimit, err = parseLimitOrDefault(req.MonthlyTxnLimit, models.DefaultMonthlyTxnLimit); err != nil {
		return nil, ErrInvalidAmount
	}

	if err := s.merchantRepo.Create(ctx, merchant); err != nil {
		slog.Error("failed to create merchant",
			"merchant_name", req.MerchantName,
			"error", err)
		return nil, err
	}

	s.metrics.IncrementCounter("merchant.created", nil)

	slog.Info("merchant created",
		"merchant_id", merchant.MerchantID,
		"merchant_code", merchant.MerchantCode,
		"status", merchant.Status)

	return merchant, nil
}

// GetMerchant retrieves a single merchant by ID
func (s *merchantService) GetMerchant(ctx context.Context, id int64) (*models.Merchant, error) {
	merchant, err := s.merchantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMerchantNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get merchant: %w", err)
	}
	return merchant, nil
}

// ListMerchants returns a page of the merchant directory
func (s *merchantService) ListMerchants(ctx context.Context, query dto.MerchantListQuery) (*dto.MerchantListResponse, error) {
	page := query.Page
	if page < 0 {
		page = 0
	}
	size := query.Size
	if size <= 0 {
		size = s.cfg.DefaultPageSize
	}
	if size > s.cfg.MaxPageSize {
		size = s.cfg.MaxPageSize
	}

	merchants, total, err := s.merchantRepo.List(ctx, query.Status, page*size, size)
	if err != nil {
		slog.Error("failed to list merchants", "error", err)
		return nil, err
	}

	return &dto.MerchantListResponse{
		Merchants:  merchants,
		Pagination: buildPagination(page, size, total),
	}, nil
}

// UpdateMerchant applies a partial update; only non-nil request fields change
func (s *merchantService) UpdateMerchant(ctx context.Context, id int64, req *dto.UpdateMerchantRequest) (*models.Merchant, error) {
	merchant, err := s.GetMerchant(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	applyString(&merchant.MerchantName, req.MerchantName)
	applyString(&merchant.BusinessType, req.BusinessType)
	applyString(&merchant.WebsiteURL, req.WebsiteURL)
	applyString(&merchant.ContactEmail, req.ContactEmail)
	applyString(&merchant.ContactPhone, req.ContactPhone)
	applyString(&merchant.AddressLine1, req.AddressLine1)
	applyString(&merchant.AddressLine2, req.AddressLine2)
	applyString(&merchant.City, req.City)
	applyString(&merchant.State, req.State)
	applyString(&merchant.PostalCode, req.PostalCode)
	applyString(&merchant.SettlementCurrency, req.SettlementCurrency)
	applyString(&merchant.SettlementCycle, req.SettlementCycle)
	applyString(&merchant.PayoutAccountNumber, req.PayoutAccountNumber)
	applyString(&merchant.PayoutBankName, req.PayoutBankName)
	applyString(&merchant.PayoutBankCountry, req.PayoutBankCountry)
	applyString(&merchant.Status, req.Status)

	if req.DailyTxnLimit != nil {
		if merchant.DailyTxnLimit, err = parseLimitOrDefault(*req.DailyTxnLimit, merchant.DailyTxnLimit); err != nil {
			return nil, ErrInvalidAmount
		}
	}
	if req.MonthlyTxnLimit != nil {
		if merchant.MonthlyTxnLimit, err = parseLimitOrDefault(*req.MonthlyTxnLimit, merchant.MonthlyTxnLimit); err != nil {
			return nil, ErrInvalidAmount
		}
	}

	if err := merchant.Validate(); err != nil {
		return nil, err
	}

	if err := s.merchantRepo.Update(ctx, merchant); err != nil {
		if errors.Is(err, repositories.ErrMerchantNotFound) {
			return nil, ErrNotFound
		}
		slog.Error("failed to update merchant",
			"merchant_id", id,
			"error", err)
		return nil, err
	}

	s.metrics.IncrementCounter("merchant.updated", nil)

	slog.Info("merchant updated", "merchant_id", id)

	return merchant, nil
}

// DeactivateMerchant moves a merchant to the inactive state. Transactions
// already recorded for it remain queryable.
func (s *merchantService) DeactivateMerchant(ctx context.Context, id int64) error {
	if err := s.merchantRepo.UpdateStatus(ctx, id, models.MerchantStatusInactive); err != nil {
		if errors.Is(err, repositories.ErrMerchantNotFound) {
			return ErrNotFound
		}
		slog.Error("failed to deactivate merchant",
			"merchant_id", id,
			"error", err)
		return err
	}

	s.metrics.IncrementCounter("merchant.deactivated", nil)

	slog.Info("merchant deactivated", "merchant_id", id)

	return nil
}

func parseLimitOrDefault(raw string, fallback decimal.Decimal) (decimal.Decimal, error) {
	if raw == "" {
		return fallback, nil
	}
	limit, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, err
	}
	if limit.IsNegative() {
		return decimal.Zero, errors.New("limit must not be negative")
	}
	return limit, nil
}
