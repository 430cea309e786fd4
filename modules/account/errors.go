package account

import (
	"errors"
	"fmt"
	"time"
)

// Input and registration errors
var (
	ErrValidation    = errors.New("validation failed")
	ErrUsernameTaken = errors.New("username already taken")
)

// Authentication errors
var (
	// ErrInvalidCredentials is deliberately opaque: it never reveals
	// whether the username exists or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingCode        = errors.New("two-factor code required")
	ErrInvalidCode        = errors.New("invalid two-factor code")
	ErrRateLimited        = errors.New("too many attempts, try again later")
)

// Ownership proof errors
var (
	ErrMnemonicMismatch = errors.New("recovery mnemonic does not match")
	ErrSamePassword     = errors.New("new password must differ from the current one")
)

// Lookup and sequencing errors
var (
	ErrAccountNotFound = errors.New("account not found")

	// ErrSequence signals an attempt to skip an onboarding step.
	ErrSequence = errors.New("onboarding step attempted out of sequence")
)

// Storage concurrency errors
var (
	// ErrVersionConflict means the account row changed between read
	// and write; the caller must re-read and resubmit.
	ErrVersionConflict = errors.New("account was modified concurrently")
)

// BannedError blocks all protected access for a banned account. It
// carries the reason and the time remaining until the ban lifts.
type BannedError struct {
	Reason    string
	Until     time.Time
	Remaining Countdown
}

func (e *BannedError) Error() string {
	return fmt.Sprintf("account banned: %s (%s remaining)", e.Reason, e.Remaining)
}
