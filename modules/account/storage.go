package account

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Storage defines the credential store operations the lifecycle
// manager requires. Implementations own username uniqueness and must
// serialize concurrent mutations through the account Version: Update
// and Delete fail with ErrVersionConflict when the stored version no
// longer matches the one read.
type Storage interface {
	// Create persists a new account. Returns ErrUsernameTaken when the
	// lowercased username already exists.
	Create(ctx context.Context, acc *Account) error

	// GetByID returns the account or ErrAccountNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)

	// GetByUsername looks up by the lowercased username. Returns
	// ErrAccountNotFound when absent.
	GetByUsername(ctx context.Context, username string) (*Account, error)

	// Update writes the account conditionally on acc.Version and
	// increments it on success. Returns ErrVersionConflict when the
	// row moved underneath the caller.
	Update(ctx context.Context, acc *Account) error

	// Delete removes the account conditionally on version so a delete
	// racing a mutation fully precedes or fully follows it.
	Delete(ctx context.Context, id uuid.UUID, version int64) error

	// ExpiredBans returns all accounts whose ban expiry lies in the
	// past, for the periodic unban sweep.
	ExpiredBans(ctx context.Context, now time.Time) ([]Account, error)

	// EnsureRole returns the id of the named role, creating it when
	// absent.
	EnsureRole(ctx context.Context, name string) (uuid.UUID, error)
}
