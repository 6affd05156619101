package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionStatusPending   = "PENDING"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
)

// TransactionMaster is the primary transaction row for a merchant payment.
// The acquirer/issuer enrichment pipeline is not implemented, so the read
// view always emits those fields as null.
type TransactionMaster struct {
	TxnID            int64           `gorm:"primaryKey;autoIncrement" json:"txnId"`
	MerchantID       string          `gorm:"type:varchar(50);not null;index" json:"merchantId"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency         string          `gorm:"type:varchar(3)" json:"currency"`
	Status           string          `gorm:"type:varchar(20);index" json:"status"`
	CardType         string          `gorm:"type:varchar(20)" json:"cardType,omitempty"`
	CardLast4        string          `gorm:"type:varchar(4)" json:"cardLast4,omitempty"`
	LocalTxnDateTime *time.Time      `json:"localTxnDateTime,omitempty"`
	TxnDate          *time.Time      `gorm:"type:date" json:"txnDate,omitempty"`
	CreatedAt        time.Time       `gorm:"not null;index" json:"createdAt"`
}

// TableName returns the table name for TransactionMaster
func (t *TransactionMaster) TableName() string {
	return "transaction_master"
}

// TransactionDetail is a child row itemizing a component of a master
// transaction, e.g. a fee or tax line. Details never exist without a master.
type TransactionDetail struct {
	TxnDetailID int64           `gorm:"primaryKey;autoIncrement" json:"txnDetailId"`
	MasterTxnID int64           `gorm:"not null;index" json:"masterTxnId"`
	DetailType  string          `gorm:"type:varchar(50)" json:"detailType"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2)" json:"amount"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
}

// TableName returns the table name for TransactionDetail
func (t *TransactionDetail) TableName() string {
	return "transaction_details"
}

// StatusSummary is a read-only aggregate row produced by the store's
// group-by-status query. TotalAmount is nullable because SUM over an
// all-NULL amount group comes back as NULL.
type StatusSummary struct {
	Status      string              `json:"status"`
	TxnCount    int64               `json:"txnCount"`
	TotalAmount decimal.NullDecimal `json:"totalAmount"`
}
