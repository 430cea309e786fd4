// Package postgres implements the account credential store on
// PostgreSQL via pgx/v5. Username uniqueness is enforced by the
// schema; concurrent mutations are serialized through an optimistic
// version column so read-modify-write cycles fail cleanly with
// account.ErrVersionConflict instead of silently overwriting.
package postgres
