package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Pricing errors
	ErrUnknownPricingTier = errors.New("unknown pricing tier")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrPricingMismatch    = errors.New("pricing mismatch")

	// Model generation errors
	ErrModelNotFound             = errors.New("model not found")
	ErrQuotaExhausted            = errors.New("no free generations remaining")
	ErrInvalidTransition         = errors.New("invalid model status transition")
	ErrMissingProviderCredential = errors.New("no api key available for generator")
	ErrProviderFailure           = errors.New("generation provider failure")

	// Concept image errors
	ErrConceptNotFound = errors.New("concept image not found")

	// Order errors
	ErrOrderNotFound = errors.New("order not found")

	// Printer network errors
	ErrApplicationNotFound = errors.New("printer application not found")
	ErrApplicationExists   = errors.New("printer application already pending or approved")
	ErrPrinterNotFound     = errors.New("printer not found")

	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailTaken        = errors.New("email already registered")
	ErrInvalidCredential = errors.New("invalid email or password")
	ErrNotOwner          = errors.New("resource owned by another user")

	// Payment errors
	ErrPaymentFailure = errors.New("payment provider failure")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
