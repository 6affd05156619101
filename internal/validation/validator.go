package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("currency_code", validateCurrencyCode)
	_ = v.RegisterValidation("card_last4", validateCardLast4)
	_ = v.RegisterValidation("txn_status", validateTransactionStatus)
	_ = v.RegisterValidation("merchant_status", validateMerchantStatus)
	_ = v.RegisterValidation("positive_decimal", validatePositiveDecimal)
	_ = v.RegisterValidation("settlement_cycle", validateSettlementCycle)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateCurrencyCode validates an ISO 4217 style three-letter currency code
func validateCurrencyCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	matched, _ := regexp.MatchString(`^[A-Z]{3}$`, code)
	return matched
}

// validateCardLast4 validates the last four digits of a card number
func validateCardLast4(fl validator.FieldLevel) bool {
	last4 := fl.Field().String()
	matched, _ := regexp.MatchString(`^\d{4}$`, last4)
	return matched
}

// validateTransactionStatus validates that a transaction status is one of the
// known processing states, case-insensitively
func validateTransactionStatus(fl validator.FieldLevel) bool {
	status := strings.ToLower(fl.Field().String())
	validStatuses := map[string]bool{
		"pending":   true,
		"completed": true,
		"failed":    true,
	}
	return validStatuses[status]
}

// validateMerchantStatus validates that a merchant status is one of the
// allowed lifecycle states
func validateMerchantStatus(fl validator.FieldLevel) bool {
	status := strings.ToLower(fl.Field().String())
	validStatuses := map[string]bool{
		"pending":  true,
		"active":   true,
		"inactive": true,
	}
	return validStatuses[status]
}

// validatePositiveDecimal validates that a decimal amount is greater than zero
func validatePositiveDecimal(fl validator.FieldLevel) bool {
	switch value := fl.Field().Interface().(type) {
	case decimal.Decimal:
		return value.IsPositive()
	case string:
		d, err := decimal.NewFromString(value)
		if err != nil {
			return false
		}
		return d.IsPositive()
	default:
		return false
	}
}

// validateSettlementCycle validates that a settlement cycle is one of the
// supported payout schedules
func validateSettlementCycle(fl validator.FieldLevel) bool {
	cycle := strings.ToLower(fl.Field().String())
	validCycles := map[string]bool{
		"daily":   true,
		"weekly":  true,
		"monthly": true,
	}
	return validCycles[cycle]
}
