package totp

import (
	"fmt"
	"net/url"
)

// Enrollment is the ephemeral material handed to a user setting up an
// authenticator. The secret is not persisted anywhere until the user
// proves possession by submitting a valid code derived from it.
type Enrollment struct {
	Secret string // Base32-encoded secret key
	URI    string // otpauth:// URI for authenticator apps
}

// GenerateEnrollment creates a fresh secret and the matching Key Uri
// Format payload (https://github.com/google/google-authenticator/wiki/Key-Uri-Format).
func GenerateEnrollment(issuer, accountName string) (*Enrollment, error) {
	if issuer == "" {
		return nil, ErrMissingIssuer
	}
	if accountName == "" {
		return nil, ErrMissingAccountName
	}

	secret, err := GenerateSecretKey()
	if err != nil {
		return nil, err
	}

	label := fmt.Sprintf("%s:%s", url.PathEscape(issuer), url.PathEscape(accountName))

	query := url.Values{}
	query.Set("secret", secret)
	query.Set("issuer", issuer)
	query.Set("algorithm", "SHA1")
	query.Set("digits", fmt.Sprintf("%d", Digits))
	query.Set("period", fmt.Sprintf("%d", Period))

	return &Enrollment{
		Secret: secret,
		URI:    fmt.Sprintf("otpauth://totp/%s?%s", label, query.Encode()),
	}, nil
}
