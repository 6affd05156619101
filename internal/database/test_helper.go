package database

import (
	"testing"
	"time"

	"merchant-payments/internal/config"
	"merchant-payments/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if db != nil {
		if err := db.Close(); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	}
}

func CreateTestMerchant(t *testing.T, db *DB, name string) *models.Merchant {
	t.Helper()

	merchant := &models.Merchant{
		MerchantName:       name,
		BusinessType:       "retail",
		ContactEmail:       "owner@example.com",
		ContactPhone:       "+15550100",
		Country:            "US",
		SettlementCurrency: models.DefaultSettlementCurrency,
		SettlementCycle:    models.DefaultSettlementCycle,
		RiskLevel:          models.DefaultRiskLevel,
		DailyTxnLimit:      decimal.NewFromInt(10000),
		MonthlyTxnLimit:    decimal.NewFromInt(100000),
		Status:             models.MerchantStatusActive,
	}

	if err := db.Create(merchant).Error; err != nil {
		t.Fatalf("failed to create test merchant: %v", err)
	}

	return merchant
}

func CreateTestTransaction(t *testing.T, db *DB, merchantID, status string, amount decimal.Decimal, createdAt time.Time) *models.TransactionMaster {
	t.Helper()

	txn := &models.TransactionMaster{
		MerchantID: merchantID,
		Amount:     amount,
		Currency:   "USD",
		Status:     status,
		CardType:   "VISA",
		CardLast4:  "4242",
		CreatedAt:  createdAt,
	}

	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return txn
}
