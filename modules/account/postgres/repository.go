package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/shadowbay/marketkit/modules/account"
	"github.com/shadowbay/marketkit/pkg/pg"
)

// DB is the pgx query surface the repository needs. *pgxpool.Pool
// satisfies it, as does pgxmock in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository is the PostgreSQL credential store. Mutations are
// conditional on the account version column; see account.Storage.
type Repository struct {
	db DB
}

// NewRepository creates a credential store over a pgx connection pool.
func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

const accountColumns = `id, username, password_hash, phrase_hint,
		twofactor_enabled, twofactor_secret, mnemonic, mnemonic_shown,
		is_banned, banned_reason, banned_until, role_id,
		created_at, updated_at, version`

func (r *Repository) Create(ctx context.Context, acc *account.Account) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO accounts (id, username, password_hash, phrase_hint,
			twofactor_enabled, twofactor_secret, mnemonic, mnemonic_shown,
			is_banned, banned_reason, banned_until, role_id,
			created_at, updated_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, 1)`,
		acc.ID, acc.Username, acc.PasswordHash, acc.PhraseHint,
		acc.TwoFactorEnabled, acc.EncryptedTwoFactorSecret,
		acc.EncryptedMnemonic, acc.MnemonicShown,
		acc.IsBanned, acc.BannedReason, acc.BannedUntil, acc.RoleID,
		acc.CreatedAt, acc.UpdatedAt,
	)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return account.ErrUsernameTaken
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	acc.Version = 1
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
	return scanAccount(row)
}

func (r *Repository) GetByUsername(ctx context.Context, username string) (*account.Account, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE username = $1`, username)
	return scanAccount(row)
}

// Update writes the account conditionally on its version. Zero rows
// affected means the row moved (or vanished) since the read.
func (r *Repository) Update(ctx context.Context, acc *account.Account) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE accounts
		SET password_hash = $1, twofactor_enabled = $2, twofactor_secret = $3,
			mnemonic_shown = $4, is_banned = $5, banned_reason = $6,
			banned_until = $7, updated_at = $8, version = version + 1
		WHERE id = $9 AND version = $10`,
		acc.PasswordHash, acc.TwoFactorEnabled, acc.EncryptedTwoFactorSecret,
		acc.MnemonicShown, acc.IsBanned, acc.BannedReason, acc.BannedUntil,
		acc.UpdatedAt, acc.ID, acc.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return account.ErrVersionConflict
	}
	acc.Version++
	return nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID, version int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM accounts WHERE id = $1 AND version = $2`, id, version)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return account.ErrVersionConflict
	}
	return nil
}

func (r *Repository) ExpiredBans(ctx context.Context, now time.Time) ([]account.Account, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+accountColumns+` FROM accounts
		WHERE is_banned = TRUE AND banned_until < $1`, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list expired bans: %w", err)
	}
	defer rows.Close()

	var accounts []account.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expired bans: %w", err)
	}
	return accounts, nil
}

func (r *Repository) EnsureRole(ctx context.Context, name string) (uuid.UUID, error) {
	// The no-op update makes RETURNING yield the id on conflict too.
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO roles (id, name)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`,
		uuid.New(), name,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to ensure role %q: %w", name, err)
	}
	return id, nil
}

func scanAccount(row pgx.Row) (*account.Account, error) {
	var acc account.Account
	err := row.Scan(
		&acc.ID, &acc.Username, &acc.PasswordHash, &acc.PhraseHint,
		&acc.TwoFactorEnabled, &acc.EncryptedTwoFactorSecret,
		&acc.EncryptedMnemonic, &acc.MnemonicShown,
		&acc.IsBanned, &acc.BannedReason, &acc.BannedUntil, &acc.RoleID,
		&acc.CreatedAt, &acc.UpdatedAt, &acc.Version,
	)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, account.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}
	return &acc, nil
}
