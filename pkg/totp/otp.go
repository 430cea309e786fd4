package totp

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"encoding/base32"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

const (
	// Digits is the length of generated codes (RFC 6238 standard).
	Digits = 6
	// Period is the code validity window in seconds (RFC 6238 standard).
	Period = 30
	// SecretSize is the raw secret length in bytes (RFC 4226 recommendation).
	SecretSize = 20

	// DefaultWindow accepts codes from the previous, current and next
	// period to absorb clock drift between server and authenticator.
	DefaultWindow = 1
)

var (
	// secretKeyRegex enforces Base32 format: uppercase A-Z, digits 2-7, optional padding.
	secretKeyRegex = regexp.MustCompile("^[A-Z2-7]+=*$")
	codeRegex      = regexp.MustCompile(fmt.Sprintf(`^\d{%d}$`, Digits))
)

// GenerateSecretKey generates a new Base32-encoded TOTP secret key.
func GenerateSecretKey() (string, error) {
	secret := make([]byte, SecretSize)
	if _, err := rand.Read(secret); err != nil {
		return "", errors.Join(ErrFailedToGenerateSecret, err)
	}
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(secret), nil
}

// Verify checks a user-supplied code against the secret, accepting codes
// from up to window periods before and after the current one. A window
// below zero falls back to DefaultWindow.
func Verify(secret, code string, window int) (bool, error) {
	return verifyAt(secret, code, window, time.Now())
}

// VerifyAt is Verify pinned to a specific instant, for deterministic tests.
func VerifyAt(secret, code string, window int, t time.Time) (bool, error) {
	return verifyAt(secret, code, window, t)
}

func verifyAt(secret, code string, window int, t time.Time) (bool, error) {
	key, err := decodeSecret(secret)
	if err != nil {
		return false, err
	}

	code = strings.TrimSpace(code)
	if !codeRegex.MatchString(code) {
		return false, ErrInvalidCodeFormat
	}

	if window < 0 {
		window = DefaultWindow
	}

	counter := t.Unix() / Period
	for i := -window; i <= window; i++ {
		candidate := generateHOTP(key, counter+int64(i), Digits)
		if fmt.Sprintf("%06d", candidate) == code {
			return true, nil
		}
	}
	return false, nil
}

// GenerateCode produces the code for the current period. Used by
// enrollment tests and operator tooling, not by the verification path.
func GenerateCode(secret string) (string, error) {
	return GenerateCodeAt(secret, time.Now())
}

// GenerateCodeAt produces the code for the period containing t.
func GenerateCodeAt(secret string, t time.Time) (string, error) {
	key, err := decodeSecret(secret)
	if err != nil {
		return "", err
	}
	code := generateHOTP(key, t.Unix()/Period, Digits)
	return fmt.Sprintf("%06d", code), nil
}

func decodeSecret(secret string) ([]byte, error) {
	secret = strings.TrimSpace(strings.ToUpper(secret))
	if !secretKeyRegex.MatchString(secret) {
		return nil, ErrInvalidSecret
	}
	key, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(strings.TrimRight(secret, "="))
	if err != nil {
		return nil, errors.Join(ErrInvalidSecret, err)
	}
	return key, nil
}

// generateHOTP implements the RFC 4226 HMAC-based one-time password
// algorithm: HMAC-SHA1 over the big-endian counter, dynamic truncation,
// reduction to the requested number of digits.
func generateHOTP(key []byte, counter int64, digits int) int {
	counterBytes := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		counterBytes[i] = byte(counter & 0xff)
		counter >>= 8
	}

	mac := hmac.New(sha1.New, key)
	mac.Write(counterBytes)
	hash := mac.Sum(nil)

	offset := hash[len(hash)-1] & 0x0f
	code := (int(hash[offset]&0x7f) << 24) |
		(int(hash[offset+1]&0xff) << 16) |
		(int(hash[offset+2]&0xff) << 8) |
		(int(hash[offset+3] & 0xff))

	return code % int(math.Pow10(digits))
}
