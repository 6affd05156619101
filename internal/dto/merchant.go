package dto

import (
	"merchant-payments/internal/models"
)

// CreateMerchantRequest is the onboarding payload for a new merchant
type CreateMerchantRequest struct {
	MerchantName        string `json:"merchantName" validate:"required,min=2,max=255"`
	BusinessType        string `json:"businessType" validate:"required,max=50"`
	WebsiteURL          string `json:"websiteUrl" validate:"omitempty,url"`
	ContactEmail        string `json:"contactEmail" validate:"required,email"`
	ContactPhone        string `json:"contactPhone" validate:"required,max=50"`
	RegistrationNumber  string `json:"registrationNumber" validate:"omitempty,max=100"`
	Country             string `json:"country" validate:"required,len=2"`
	AddressLine1        string `json:"addressLine1" validate:"omitempty,max=255"`
	AddressLine2        string `json:"addressLine2" validate:"omitempty,max=255"`
	City                string `json:"city" validate:"omitempty,max=100"`
	State               string `json:"state" validate:"omitempty,max=100"`
	PostalCode          string `json:"postalCode" validate:"omitempty,max=20"`
	SettlementCurrency  string `json:"settlementCurrency" validate:"omitempty,currency_code"`
	SettlementCycle     string `json:"settlementCycle" validate:"omitempty,settlement_cycle"`
	PayoutAccountNumber string `json:"payoutAccountNumber" validate:"omitempty,max=50"`
	PayoutBankName      string `json:"payoutBankName" validate:"omitempty,max=255"`
	PayoutBankCountry   string `json:"payoutBankCountry" validate:"omitempty,len=2"`
	DailyTxnLimit       string `json:"dailyTxnLimit" validate:"omitempty,positive_decimal"`
	MonthlyTxnLimit     string `json:"monthlyTxnLimit" validate:"omitempty,positive_decimal"`
}

// UpdateMerchantRequest carries a partial merchant update. Only non-nil
// fields are applied.
type UpdateMerchantRequest struct {
	MerchantName        *string `json:"merchantName" validate:"omitempty,min=2,max=255"`
	BusinessType        *string `json:"businessType" validate:"omitempty,max=50"`
	WebsiteURL          *string `json:"websiteUrl" validate:"omitempty,url"`
	ContactEmail        *string `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone        *string `json:"contactPhone" validate:"omitempty,max=50"`
	AddressLine1        *string `json:"addressLine1" validate:"omitempty,max=255"`
	AddressLine2        *string `json:"addressLine2" validate:"omitempty,max=255"`
	City                *string `json:"city" validate:"omitempty,max=100"`
	State               *string `json:"state" validate:"omitempty,max=100"`
	PostalCode          *string `json:"postalCode" validate:"omitempty,max=20"`
	SettlementCurrency  *string `json:"settlementCurrency" validate:"omitempty,currency_code"`
	SettlementCycle     *string `json:"settlementCycle" validate:"omitempty,settlement_cycle"`
	PayoutAccountNumber *string `json:"payoutAccountNumber" validate:"omitempty,max=50"`
	PayoutBankName      *string `json:"payoutBankName" validate:"omitempty,max=255"`
	PayoutBankCountry   *string `json:"payoutBankCountry" validate:"omitempty,len=2"`
	DailyTxnLimit       *string `json:"dailyTxnLimit" validate:"omitempty,positive_decimal"`
	MonthlyTxnLimit     *string `json:"monthlyTxnLimit" validate:"omitempty,positive_decimal"`
	Status              *string `json:"status" validate:"omitempty,merchant_status"`
}

// MerchantListQuery carries the listing filters for the merchant directory
type MerchantListQuery struct {
	Status string `query:"status"`
	Page   int    `query:"page"`
	Size   int    `query:"size"`
}

// MerchantListResponse is the paginated merchant directory payload
type MerchantListResponse struct {
	Merchants  []models.Merchant `json:"merchants"`
	Pagination Pagination        `json:"pagination"`
}
