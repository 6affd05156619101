package repositories

import (
	"context"
	"fmt"

	"merchant-payments/internal/models"

	"gorm.io/gorm"
)

// transactionDetailRepository implements TransactionDetailRepositoryInterface
type transactionDetailRepository struct {
	db *gorm.DB
}

// NewTransactionDetailRepository creates a new transaction detail repository
func NewTransactionDetailRepository(db *gorm.DB) TransactionDetailRepositoryInterface {
	return &transactionDetailRepository{
		db: db,
	}
}

// GetByMasterIDs retrieves all detail rows belonging to the given master
// transactions in a single batch query
func (r *transactionDetailRepository) GetByMasterIDs(ctx context.Context, masterIDs []int64) ([]models.TransactionDetail, error) {
	if len(masterIDs) == 0 {
		return nil, nil
	}

	var details []models.TransactionDetail
	if err := r.db.WithContext(ctx).
		Where("master_txn_id IN ?", masterIDs).
		Order("master_txn_id ASC, txn_detail_id ASC").
		Find(&details).Error; err != nil {
		return nil, fmt.Errorf("failed to get transaction details: %w", err)
	}

	return details, nil
}
