package services

import (
	"context"
	"time"

	"merchant-payments/internal/dto"
	"merchant-payments/internal/models"
)

// TransactionServiceInterface defines the transaction listing and recording operations
type TransactionServiceInterface interface {
	// ListTransactions runs the full listing pipeline: resolve the date
	// window, fan out the page/count/status reads, join details and
	// assemble the response
	ListTransactions(ctx context.Context, merchantID string, query dto.TransactionListQuery) (*dto.TransactionListResponse, error)

	// RecordTransaction persists a new transaction for the merchant,
	// applying server-side defaults
	RecordTransaction(ctx context.Context, merchantID string, req *dto.CreateTransactionRequest) (*dto.CreateTransactionResponse, error)
}

// MerchantServiceInterface defines merchant directory operations
type MerchantServiceInterface interface {
	CreateMerchant(ctx context.Context, req *dto.CreateMerchantRequest) (*models.Merchant, error)
	GetMerchant(ctx context.Context, id int64) (*models.Merchant, error)
	ListMerchants(ctx context.Context, query dto.MerchantListQuery) (*dto.MerchantListResponse, error)
	UpdateMerchant(ctx context.Context, id int64, req *dto.UpdateMerchantRequest) (*models.Merchant, error)
	DeactivateMerchant(ctx context.Context, id int64) error
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
