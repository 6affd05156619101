package database

import (
	"testing"
	"time"

	"merchant-payments/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestDB_MigratesSchema(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	for _, table := range []string{"merchants", "transaction_master", "transaction_details"} {
		assert.True(t, db.Migrator().HasTable(table), "expected table %s to exist", table)
	}
}

func TestHealthCheck(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	assert.NoError(t, db.HealthCheck())
}

func TestHealthCheck_AfterClose(t *testing.T) {
	db := SetupTestDB(t)

	require.NoError(t, db.Close())
	assert.Error(t, db.HealthCheck())
}

func TestCreateIndexes(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	// Index creation failures are logged, never fatal
	assert.NoError(t, db.CreateIndexes())
	assert.True(t, db.Migrator().HasIndex(&models.Merchant{}, "idx_merchants_status"))
	assert.True(t, db.Migrator().HasIndex(&models.TransactionMaster{}, "idx_transaction_master_merchant_created"))
}

func TestCreateTestFixtures(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	merchant := CreateTestMerchant(t, db, "Blue Harbor Coffee")
	require.NotZero(t, merchant.MerchantID)
	require.NotEmpty(t, merchant.MerchantCode)

	txn := CreateTestTransaction(t, db, merchant.MerchantCode, models.TransactionStatusCompleted,
		decimal.NewFromFloat(25.50), time.Now().UTC())
	require.NotZero(t, txn.TxnID)

	var count int64
	require.NoError(t, db.Model(&models.TransactionMaster{}).
		Where("merchant_id = ?", merchant.MerchantCode).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
