package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral     ErrorCode = "VALIDATION_001"
	ValidationInvalidDate ErrorCode = "VALIDATION_002"
	ValidationMissingBody ErrorCode = "VALIDATION_003"
	ValidationOutOfRange  ErrorCode = "VALIDATION_004"
)

// Merchant error codes (MERCHANT_*)
const (
	MerchantNotFound  ErrorCode = "MERCHANT_001"
	MerchantInvalidID ErrorCode = "MERCHANT_002"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount ErrorCode = "TRANSACTION_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	ValidationGeneral:     "Validation failed",
	ValidationInvalidDate: "Invalid date format. Expected yyyy-MM-dd",
	ValidationMissingBody: "Request body is required",
	ValidationOutOfRange:  "Field value is out of allowed range",

	MerchantNotFound:  "Merchant not found",
	MerchantInvalidID: "Invalid merchant ID format",

	TransactionNotFound:      "Transaction not found",
	TransactionInvalidAmount: "Invalid transaction amount",

	SystemInternalError:      "An internal error occurred",
	SystemDatabaseError:      "A database error occurred",
	SystemServiceUnavailable: "Service is temporarily unavailable",
	SystemRateLimitExceeded:  "Too many requests, please try again later",
}

// GetErrorMessage returns the default message for an error code
func GetErrorMessage(code ErrorCode) string {
	if message, ok := errorMessages[code]; ok {
		return message
	}
	return "An unexpected error occurred"
}

// IsValidErrorCode reports whether the code is a known API error code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
