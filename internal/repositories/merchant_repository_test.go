package repositories

import (
	"context"
	"testing"

	"merchant-payments/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MerchantRepositoryTestSuite is the test suite for the merchant repository
type MerchantRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo MerchantRepositoryInterface
	ctx  context.Context
}

// SetupTest runs before each test
func (s *MerchantRepositoryTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	err = db.AutoMigrate(&models.Merchant{})
	require.NoError(s.T(), err)

	s.db = db
	s.repo = NewMerchantRepository(db)
	s.ctx = context.Background()
}

// TearDownTest runs after each test
func (s *MerchantRepositoryTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

// TestMerchantRepositoryTestSuite runs the test suite
func TestMerchantRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MerchantRepositoryTestSuite))
}

func (s *MerchantRepositoryTestSuite) createTestMerchant(status string) *models.Merchant {
	merchant := &models.Merchant{
		MerchantName: gofakeit.Company(),
		BusinessType: "retail",
		ContactEmail: gofakeit.Email(),
		ContactPhone: gofakeit.Phone(),
		Country:      "US",
		Status:       status,
	}
	require.NoError(s.T(), s.repo.Create(s.ctx, merchant))
	return merchant
}

func (s *MerchantRepositoryTestSuite) TestCreate_GeneratesCode() {
	merchant := s.createTestMerchant("")

	assert.NotZero(s.T(), merchant.MerchantID)
	assert.NotEmpty(s.T(), merchant.MerchantCode)
	assert.Equal(s.T(), models.MerchantStatusPending, merchant.Status)
}

func (s *MerchantRepositoryTestSuite) TestCreate_RejectsMissingName() {
	err := s.repo.Create(s.ctx, &models.Merchant{Status: models.MerchantStatusActive})
	require.Error(s.T(), err)
	assert.ErrorIs(s.T(), err, models.ErrMissingMerchantName)
}

func (s *MerchantRepositoryTestSuite) TestGetByID() {
	created := s.createTestMerchant(models.MerchantStatusActive)

	merchant, err := s.repo.GetByID(s.ctx, created.MerchantID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), created.MerchantName, merchant.MerchantName)
}

func (s *MerchantRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(s.ctx, 99999)
	assert.ErrorIs(s.T(), err, ErrMerchantNotFound)
}

func (s *MerchantRepositoryTestSuite) TestGetByCode() {
	created := s.createTestMerchant(models.MerchantStatusActive)

	merchant, err := s.repo.GetByCode(s.ctx, created.MerchantCode)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), created.MerchantID, merchant.MerchantID)
}

func (s *MerchantRepositoryTestSuite) TestList_FiltersByStatus() {
	s.createTestMerchant(models.MerchantStatusActive)
	s.createTestMerchant(models.MerchantStatusActive)
	s.createTestMerchant(models.MerchantStatusInactive)

	active, total, err := s.repo.List(s.ctx, models.MerchantStatusActive, 0, 10)
	require.NoError(s.T(), err)
	assert.Len(s.T(), active, 2)
	assert.Equal(s.T(), int64(2), total)

	all, total, err := s.repo.List(s.ctx, "", 0, 10)
	require.NoError(s.T(), err)
	assert.Len(s.T(), all, 3)
	assert.Equal(s.T(), int64(3), total)
}

func (s *MerchantRepositoryTestSuite) TestList_Paginates() {
	for i := 0; i < 5; i++ {
		s.createTestMerchant(models.MerchantStatusActive)
	}

	page, total, err := s.repo.List(s.ctx, "", 2, 2)
	require.NoError(s.T(), err)
	assert.Len(s.T(), page, 2)
	assert.Equal(s.T(), int64(5), total)
}

func (s *MerchantRepositoryTestSuite) TestUpdateStatus() {
	created := s.createTestMerchant(models.MerchantStatusActive)

	err := s.repo.UpdateStatus(s.ctx, created.MerchantID, models.MerchantStatusInactive)
	require.NoError(s.T(), err)

	merchant, err := s.repo.GetByID(s.ctx, created.MerchantID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.MerchantStatusInactive, merchant.Status)
}

func (s *MerchantRepositoryTestSuite) TestUpdateStatus_InvalidStatus() {
	created := s.createTestMerchant(models.MerchantStatusActive)

	err := s.repo.UpdateStatus(s.ctx, created.MerchantID, "frozen")
	assert.ErrorIs(s.T(), err, models.ErrInvalidMerchantStatus)
}

func (s *MerchantRepositoryTestSuite) TestUpdateStatus_NotFound() {
	err := s.repo.UpdateStatus(s.ctx, 99999, models.MerchantStatusInactive)
	assert.ErrorIs(s.T(), err, ErrMerchantNotFound)
}
