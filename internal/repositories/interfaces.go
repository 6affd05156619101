package repositories

import (
	"context"
	"time"

	"merchant-payments/internal/models"
)

// TransactionQuery is the resolved filter set shared by the page fetch,
// the count and the status aggregate so all three reads see the same rows
type TransactionQuery struct {
	MerchantID string
	Start      time.Time
	End        time.Time
	Status     string
	Offset     int
	Limit      int
}

// TransactionRepositoryInterface defines the contract for transaction repository operations.
// All reads take a context so a listing request can cancel its sibling
// queries when one of them fails or the deadline expires.
type TransactionRepositoryInterface interface {
	FetchPage(ctx context.Context, query TransactionQuery) ([]models.TransactionMaster, error)
	CountMatching(ctx context.Context, query TransactionQuery) (int64, error)
	AggregateByStatus(ctx context.Context, query TransactionQuery) ([]models.StatusSummary, error)
	Insert(ctx context.Context, txn *models.TransactionMaster) error
}

// TransactionDetailRepositoryInterface defines the contract for detail row lookups
type TransactionDetailRepositoryInterface interface {
	GetByMasterIDs(ctx context.Context, masterIDs []int64) ([]models.TransactionDetail, error)
}

// MerchantRepositoryInterface defines the contract for merchant repository operations
type MerchantRepositoryInterface interface {
	Create(ctx context.Context, merchant *models.Merchant) error
	GetByID(ctx context.Context, id int64) (*models.Merchant, error)
	GetByCode(ctx context.Context, code string) (*models.Merchant, error)
	List(ctx context.Context, status string, offset, limit int) ([]models.Merchant, int64, error)
	Update(ctx context.Context, merchant *models.Merchant) error
	UpdateStatus(ctx context.Context, id int64, status string) error
}
