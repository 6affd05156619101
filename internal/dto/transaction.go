package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionListQuery carries the raw query parameters of a transaction
// listing request. Dates stay as strings until the date-range resolver
// parses them so the handler can report a precise validation error.
type TransactionListQuery struct {
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
	Status    string `query:"status"`
	Page      int    `query:"page"`
	Size      int    `query:"size"`
}

// CreateTransactionRequest is the payload for recording a new transaction.
// Amount is bound as a string to avoid float rounding before decimal
// parsing. Status, currency and amount persist as submitted; this path
// carries no business validation (limits, currency checks, duplicate
// detection), only format checks on the card fields.
type CreateTransactionRequest struct {
	Amount           string     `json:"amount"`
	Currency         string     `json:"currency"`
	Status           string     `json:"status"`
	CardType         string     `json:"cardType" validate:"omitempty,max=20"`
	CardLast4        string     `json:"cardLast4" validate:"omitempty,card_last4"`
	LocalTxnDateTime *time.Time `json:"localTxnDateTime"`
	TxnDate          *time.Time `json:"txnDate"`
	CreatedAt        *time.Time `json:"createdAt"`
}

// Detail is the read view of a child detail row
type Detail struct {
	TxnDetailID int64  `json:"txnDetailId"`
	DetailType  string `json:"detailType"`
	Amount      string `json:"amount"`
	Description string `json:"description,omitempty"`
}

// Transaction is the read view of a master transaction with its joined
// details. Acquirer and Issuer are placeholders for an enrichment pipeline
// that does not exist yet, so they always serialize as null. Details is
// never nil; a master without children carries an empty array.
type Transaction struct {
	TxnID            int64      `json:"txnId"`
	MerchantID       string     `json:"merchantId"`
	Amount           string     `json:"amount"`
	Currency         string     `json:"currency"`
	Status           string     `json:"status"`
	CardType         string     `json:"cardType,omitempty"`
	CardLast4        string     `json:"cardLast4,omitempty"`
	LocalTxnDateTime *time.Time `json:"localTxnDateTime"`
	TxnDate          *time.Time `json:"txnDate"`
	CreatedAt        time.Time  `json:"createdAt"`
	Acquirer         *string    `json:"acquirer"`
	Issuer           *string    `json:"issuer"`
	Details          []Detail   `json:"details"`
}

// Summary aggregates the full filtered set, not just the returned page
type Summary struct {
	TotalTransactions int64            `json:"totalTransactions"`
	TotalAmount       string           `json:"totalAmount"`
	Currency          string           `json:"currency"`
	ByStatus          map[string]int64 `json:"byStatus"`
}

// Pagination describes the position of the returned page within the
// filtered set
type Pagination struct {
	Page          int   `json:"page"`
	PageSize      int   `json:"pageSize"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
}

// DateRange echoes the resolved half-open query window back to the
// caller. EndDate is the exclusive upper bound.
type DateRange struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// TransactionListResponse is the full listing payload
type TransactionListResponse struct {
	MerchantID   string        `json:"merchantId"`
	DateRange    DateRange     `json:"dateRange"`
	Transactions []Transaction `json:"transactions"`
	Summary      Summary       `json:"summary"`
	Pagination   Pagination    `json:"pagination"`
}

// CreateTransactionResponse acknowledges a recorded transaction
type CreateTransactionResponse struct {
	MerchantID    string `json:"merchantId"`
	TransactionID int64  `json:"transactionId"`
}

// FormatAmount renders a decimal for the wire
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
