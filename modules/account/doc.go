// Package account implements the account lifecycle: registration,
// recovery-mnemonic reveal, two-factor enrollment, login, session
// issuance, ban enforcement and account mutation.
//
// Every account moves through a strict one-way onboarding sequence:
// registered, mnemonic shown, fully enrolled. Steps cannot be skipped
// or revisited; GateAccess consults a central transition table and
// returns either an allow decision or the step the caller must visit
// instead. A banned account is stopped at the gate regardless of its
// onboarding state.
//
// The Manager consumes four collaborators: a Storage implementation
// (see modules/account/postgres), the secrets codec for mnemonic and
// TOTP ciphertext, the TOTP engine, and the session token issuer.
// Identity resolution happens once through Authenticate; all gated
// operations take the resulting Identity value.
//
// Concurrency is serialized at the store: mutations are conditional on
// the account Version, so the mnemonic-shown flag cannot flip twice
// and a deletion racing a mutation fully precedes or follows it.
package account
