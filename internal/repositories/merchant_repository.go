package repositories

import (
	"context"
	"errors"
	"fmt"

	"merchant-payments/internal/models"

	"gorm.io/gorm"
)

var (
	ErrMerchantNotFound = errors.New("merchant not found")
)

// merchantRepository implements MerchantRepositoryInterface
type merchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository creates a new merchant repository
func NewMerchantRepository(db *gorm.DB) MerchantRepositoryInterface {
	return &merchantRepository{
		db: db,
	}
}

// Create creates a new merchant
func (r *merchantRepository) Create(ctx context.Context, merchant *models.Merchant) error {
	if err := r.db.WithContext(ctx).Create(merchant).Error; err != nil {
		return fmt.Errorf("failed to create merchant: %w", err)
	}
	return nil
}

// GetByID retrieves a merchant by its numeric ID
func (r *merchantRepository) GetByID(ctx context.Context, id int64) (*models.Merchant, error) {
	var merchant models.Merchant
	if err := r.db.WithContext(ctx).First(&merchant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, fmt.Errorf("failed to get merchant: %w", err)
	}
	return &merchant, nil
}

// GetByCode retrieves a merchant by its merchant code
func (r *merchantRepository) GetByCode(ctx context.Context, code string) (*models.Merchant, error) {
	var merchant models.Merchant
	if err := r.db.WithContext(ctx).Where("merchant_code = ?", code).First(&merchant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, fmt.Errorf("failed to get merchant by code: %w", err)
	}
	return &merchant, nil
}

// List retrieves merchants with optional status filtering and pagination
func (r *merchantRepository) List(ctx context.Context, status string, offset, limit int) ([]models.Merchant, int64, error) {
	var merchants []models.Merchant
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Merchant{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count merchants: %w", err)
	}

	if err := query.Offset(offset).Limit(limit).
		Order("created_at DESC, merchant_id ASC").
		Find(&merchants).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list merchants: %w", err)
	}

	return merchants, total, nil
}

// Update persists all fields of an existing merchant
func (r *merchantRepository) Update(ctx context.Context, merchant *models.Merchant) error {
	result := r.db.WithContext(ctx).Save(merchant)
	if result.Error != nil {
		return fmt.Errorf("failed to update merchant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMerchantNotFound
	}
	return nil
}

// UpdateStatus updates only the merchant's lifecycle status
func (r *merchantRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	if !models.IsValidMerchantStatus(status) {
		return models.ErrInvalidMerchantStatus
	}

	result := r.db.WithContext(ctx).Model(&models.Merchant{MerchantID: id}).
		Update("status", status)

	if result.Error != nil {
		return fmt.Errorf("failed to update merchant status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMerchantNotFound
	}
	return nil
}
