package account

import (
	"time"

	"github.com/google/uuid"
)

// RoleBuyer is the default role assigned at registration.
const RoleBuyer = "buyer"

// OnboardingState describes how far an account has progressed through
// the mandatory onboarding sequence. The state is derived from durable
// flags, never stored directly.
type OnboardingState string

const (
	// StateRegistered means the account exists but the recovery
	// mnemonic has not been revealed yet.
	StateRegistered OnboardingState = "registered"

	// StateMnemonicShown means the mnemonic was revealed and the
	// account must now enroll a two-factor device.
	StateMnemonicShown OnboardingState = "mnemonic_shown"

	// StateFullyEnrolled means two-factor is active; onboarding is
	// complete and the account has full access.
	StateFullyEnrolled OnboardingState = "fully_enrolled"
)

// Account is the central entity managed by this module.
type Account struct {
	ID           uuid.UUID
	Username     string // unique, stored lowercased
	PasswordHash []byte
	PhraseHint   string // user-chosen hint, stored verbatim

	// EncryptedTwoFactorSecret is non-empty iff TwoFactorEnabled is true.
	TwoFactorEnabled         bool
	EncryptedTwoFactorSecret string

	// EncryptedMnemonic is set exactly once at creation and never
	// changes. MnemonicShown flips false to true exactly once.
	EncryptedMnemonic string
	MnemonicShown     bool

	// IsBanned true implies BannedReason and BannedUntil are set;
	// false implies both are nil.
	IsBanned     bool
	BannedReason *string
	BannedUntil  *time.Time

	RoleID uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time

	// Version guards read-modify-write cycles; Storage.Update and
	// Storage.Delete fail with ErrVersionConflict when it is stale.
	Version int64
}

// OnboardingState derives the current onboarding state from the
// account's durable flags.
func (a *Account) OnboardingState() OnboardingState {
	switch {
	case a.TwoFactorEnabled:
		return StateFullyEnrolled
	case a.MnemonicShown:
		return StateMnemonicShown
	default:
		return StateRegistered
	}
}

// Role is a named access level referenced by every account.
type Role struct {
	ID   uuid.UUID
	Name string
}

// Identity is the resolved caller of a gated operation. It is produced
// by Manager.Authenticate from a bearer token and passed into every
// operation that requires an authenticated account.
type Identity struct {
	AccountID uuid.UUID
	TokenID   string
	ExpiresAt time.Time
}
