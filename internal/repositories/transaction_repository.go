package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"merchant-payments/internal/models"

	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// scoped builds the base filtered query shared by all three listing reads.
// Status matching is case-insensitive; the end bound is exclusive.
func (r *transactionRepository) scoped(ctx context.Context, query TransactionQuery) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.TransactionMaster{}).
		Where("merchant_id = ?", query.MerchantID).
		Where("created_at >= ? AND created_at < ?", query.Start, query.End)

	if query.Status != "" {
		q = q.Where("LOWER(status) = ?", strings.ToLower(query.Status))
	}

	return q
}

// FetchPage retrieves one page of matching transactions, newest first.
// txn_id breaks ties between rows created in the same instant so page
// boundaries stay stable.
func (r *transactionRepository) FetchPage(ctx context.Context, query TransactionQuery) ([]models.TransactionMaster, error) {
	var transactions []models.TransactionMaster

	if err := r.scoped(ctx, query).
		Order("created_at DESC, txn_id ASC").
		Offset(query.Offset).
		Limit(query.Limit).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch transaction page: %w", err)
	}

	return transactions, nil
}

// CountMatching counts all rows matching the filter, independent of paging
func (r *transactionRepository) CountMatching(ctx context.Context, query TransactionQuery) (int64, error) {
	var total int64

	if err := r.scoped(ctx, query).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	return total, nil
}

// AggregateByStatus groups the full filtered set by stored status value.
// Casing is left as stored; the service layer folds case variants together.
func (r *transactionRepository) AggregateByStatus(ctx context.Context, query TransactionQuery) ([]models.StatusSummary, error) {
	var summaries []models.StatusSummary

	if err := r.scoped(ctx, query).
		Select("status, COUNT(*) as txn_count, SUM(amount) as total_amount").
		Group("status").
		Scan(&summaries).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate transactions by status: %w", err)
	}

	return summaries, nil
}

// Insert persists a new master transaction and backfills its generated ID
func (r *transactionRepository) Insert(ctx context.Context, txn *models.TransactionMaster) error {
	if err := r.db.WithContext(ctx).Create(txn).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}
