package sessiontoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// JWT header constants required by RFC 7519.
const (
	headerType      = "JWT"
	headerAlgorithm = "HS256"
)

type header struct {
	Type      string `json:"typ"`
	Algorithm string `json:"alg"`
}

// Claims is the payload carried by a session token. Validity is purely
// cryptographic and time-based; nothing is persisted server-side.
type Claims struct {
	ID        string `json:"jti"` // unique token identifier
	Subject   string `json:"sub"` // account identifier
	IssuedAt  int64  `json:"iat"` // Unix timestamp of issuance
	ExpiresAt int64  `json:"exp"` // Unix timestamp of absolute expiry
}

// AccountID parses the subject claim into an account identifier.
func (c Claims) AccountID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return id, nil
}

// valid checks the expiry against the supplied instant. Expiry is
// absolute from issuance, not sliding; an expired token forces re-login.
func (c Claims) valid(now time.Time) error {
	if c.ExpiresAt <= 0 || now.Unix() > c.ExpiresAt {
		return ErrTokenExpired
	}
	return nil
}

// Issuer mints and validates signed, time-bounded session tokens.
// The signing key lives only in memory and should be at least 32 bytes.
type Issuer struct {
	signingKey []byte
	ttl        time.Duration
	now        func() time.Time
}

// Option configures an Issuer during construction.
type Option func(*Issuer)

// WithClock overrides the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(i *Issuer) {
		i.now = now
	}
}

// New creates an Issuer with the given signing key and token lifetime.
func New(signingKey []byte, ttl time.Duration, opts ...Option) (*Issuer, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}

	i := &Issuer{
		signingKey: signingKey,
		ttl:        ttl,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

// NewFromConfig builds an Issuer from environment-backed configuration.
func NewFromConfig(cfg Config, opts ...Option) (*Issuer, error) {
	return New([]byte(cfg.SigningKey), cfg.TTL, opts...)
}

// Issue mints a token bound to the account with an absolute expiry of
// TTL from now. Returns the token string and its expiry instant.
func (i *Issuer) Issue(accountID uuid.UUID) (string, time.Time, error) {
	if accountID == uuid.Nil {
		return "", time.Time{}, ErrMissingSubject
	}

	now := i.now()
	expiresAt := now.Add(i.ttl)
	claims := Claims{
		ID:        uuid.NewString(),
		Subject:   accountID.String(),
		IssuedAt:  now.Unix(),
		ExpiresAt: expiresAt.Unix(),
	}

	headerJSON, err := json.Marshal(header{Type: headerType, Algorithm: headerAlgorithm})
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to marshal header: %w", err)
	}
	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to marshal claims: %w", err)
	}

	payload := base64URLEncode(headerJSON) + "." + base64URLEncode(claimsJSON)
	return payload + "." + i.sign(payload), expiresAt, nil
}

// Parse verifies a token's signature, algorithm and expiry and returns
// its claims. All failures collapse into ErrInvalidToken except expiry,
// which surfaces as ErrTokenExpired so callers can redirect to login.
func (i *Issuer) Parse(tokenString string) (Claims, error) {
	var claims Claims

	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return claims, ErrInvalidToken
	}

	// Signature check comes first so malformed payloads never reach the
	// JSON decoder unauthenticated.
	payload := parts[0] + "." + parts[1]
	expected := i.sign(payload)
	if subtle.ConstantTimeCompare([]byte(parts[2]), []byte(expected)) != 1 {
		return claims, ErrInvalidSignature
	}

	headerJSON, err := base64URLDecode(parts[0])
	if err != nil {
		return claims, ErrInvalidToken
	}
	var hdr header
	if err := json.Unmarshal(headerJSON, &hdr); err != nil {
		return claims, ErrInvalidToken
	}
	// Reject unexpected algorithms to prevent confusion attacks.
	if hdr.Algorithm != headerAlgorithm {
		return claims, ErrUnexpectedSigningMethod
	}

	claimsJSON, err := base64URLDecode(parts[1])
	if err != nil {
		return claims, ErrInvalidToken
	}
	if err := json.Unmarshal(claimsJSON, &claims); err != nil {
		return claims, ErrInvalidToken
	}

	if err := claims.valid(i.now()); err != nil {
		return claims, err
	}
	return claims, nil
}

func (i *Issuer) sign(payload string) string {
	mac := hmac.New(sha256.New, i.signingKey)
	mac.Write([]byte(payload))
	return base64URLEncode(mac.Sum(nil))
}

func base64URLEncode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

func base64URLDecode(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}
