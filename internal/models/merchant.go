package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	MerchantStatusPending  = "pending"
	MerchantStatusActive   = "active"
	MerchantStatusInactive = "inactive"

	DefaultSettlementCurrency = "USD"
	DefaultSettlementCycle    = "daily"
	DefaultRiskLevel          = "low"
)

// Default transaction limits applied at onboarding when the request
// leaves them unset
var (
	DefaultDailyTxnLimit   = decimal.NewFromInt(10000)
	DefaultMonthlyTxnLimit = decimal.NewFromInt(100000)
)

var (
	ErrInvalidMerchantStatus = errors.New("invalid merchant status")
	ErrMissingMerchantName   = errors.New("merchant name is required")
)

// Merchant represents an onboarded merchant account
type Merchant struct {
	MerchantID          int64           `gorm:"primaryKey;autoIncrement" json:"merchantId"`
	MerchantCode        string          `gorm:"type:varchar(20);uniqueIndex" json:"merchantCode"`
	MerchantName        string          `gorm:"type:varchar(255);not null" json:"merchantName"`
	BusinessType        string          `gorm:"type:varchar(50)" json:"businessType"`
	WebsiteURL          string          `gorm:"type:varchar(255)" json:"websiteUrl,omitempty"`
	ContactEmail        string          `gorm:"type:varchar(255)" json:"contactEmail"`
	ContactPhone        string          `gorm:"type:varchar(50)" json:"contactPhone"`
	RegistrationNumber  string          `gorm:"type:varchar(100)" json:"registrationNumber,omitempty"`
	Country             string          `gorm:"type:varchar(2)" json:"country"`
	AddressLine1        string          `gorm:"type:varchar(255)" json:"addressLine1,omitempty"`
	AddressLine2        string          `gorm:"type:varchar(255)" json:"addressLine2,omitempty"`
	City                string          `gorm:"type:varchar(100)" json:"city,omitempty"`
	State               string          `gorm:"type:varchar(100)" json:"state,omitempty"`
	PostalCode          string          `gorm:"type:varchar(20)" json:"postalCode,omitempty"`
	AcquirerID          *int            `json:"acquirerId,omitempty"`
	SettlementCurrency  string          `gorm:"type:varchar(3)" json:"settlementCurrency"`
	SettlementCycle     string          `gorm:"type:varchar(20)" json:"settlementCycle"`
	PayoutAccountNumber string          `gorm:"type:varchar(50)" json:"payoutAccountNumber,omitempty"`
	PayoutBankName      string          `gorm:"type:varchar(255)" json:"payoutBankName,omitempty"`
	PayoutBankCountry   string          `gorm:"type:varchar(2)" json:"payoutBankCountry,omitempty"`
	RiskLevel           string          `gorm:"type:varchar(20)" json:"riskLevel"`
	DailyTxnLimit       decimal.Decimal `gorm:"type:decimal(15,2)" json:"dailyTxnLimit"`
	MonthlyTxnLimit     decimal.Decimal `gorm:"type:decimal(15,2)" json:"monthlyTxnLimit"`
	Status              string          `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt           time.Time       `gorm:"not null" json:"createdAt"`
	UpdatedAt           time.Time       `gorm:"not null" json:"updatedAt"`
}

// TableName returns the table name for Merchant
func (m *Merchant) TableName() string {
	return "merchants"
}

// BeforeCreate hook for Merchant
func (m *Merchant) BeforeCreate(tx *gorm.DB) error {
	if m.MerchantCode == "" {
		m.MerchantCode = GenerateMerchantCode()
	}
	if m.Status == "" {
		m.Status = MerchantStatusPending
	}
	return m.Validate()
}

// Validate validates the merchant fields
func (m *Merchant) Validate() error {
	if strings.TrimSpace(m.MerchantName) == "" {
		return ErrMissingMerchantName
	}
	if !IsValidMerchantStatus(m.Status) {
		return ErrInvalidMerchantStatus
	}
	return nil
}

// IsActive returns true if the merchant can accept transactions
func (m *Merchant) IsActive() bool {
	return m.Status == MerchantStatusActive
}

// IsValidMerchantStatus checks if the merchant status is valid
func IsValidMerchantStatus(status string) bool {
	switch status {
	case MerchantStatusPending, MerchantStatusActive, MerchantStatusInactive:
		return true
	default:
		return false
	}
}

// GenerateMerchantCode generates a unique merchant code
func GenerateMerchantCode() string {
	return "MCH-" + strings.ToUpper(uuid.New().String()[:8])
}
