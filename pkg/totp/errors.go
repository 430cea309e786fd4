package totp

import "errors"

var (
	ErrFailedToGenerateSecret = errors.New("failed to generate TOTP secret key")
	ErrInvalidSecret          = errors.New("invalid TOTP secret")
	ErrInvalidCodeFormat      = errors.New("invalid code format")
	ErrMissingIssuer          = errors.New("missing issuer")
	ErrMissingAccountName     = errors.New("missing account name")
)
