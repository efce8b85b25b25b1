package errs

import "errors"

// Sentinel errors shared across usecase layers. Handlers map these to HTTP
// statuses; everything inside a transaction scope that fails with one of
// these rolls the whole scope back.
var (
	// Lifecycle errors
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrConcurrentModification = errors.New("booking modified concurrently")
	ErrOperationTimeout       = errors.New("operation timed out acquiring atomic scope")

	// Ledger errors
	ErrInsufficientBalance = errors.New("insufficient points balance")
	ErrBalanceMismatch     = errors.New("ledger balance chain mismatch")
	ErrAccountNotFound     = errors.New("loyalty account not found")
	ErrAccountDisabled     = errors.New("loyalty account is disabled")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")

	// Collaborator errors
	ErrCollaboratorUnavailable = errors.New("collaborator unavailable")
	ErrInventoryHoldLost       = errors.New("inventory hold no longer valid")
	ErrRedemptionNotEligible   = errors.New("redemption not eligible")

	// Access errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)
