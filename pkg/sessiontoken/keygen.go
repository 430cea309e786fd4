package sessiontoken

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
)

const signingKeySize = 32 // 256-bit HMAC key

// GenerateKey creates a cryptographically secure random signing key.
func GenerateKey() ([]byte, error) {
	key := make([]byte, signingKeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, errors.Join(ErrKeyGenerationFailed, err)
	}
	return key, nil
}

// GenerateEncodedKey creates a random signing key encoded as base64,
// suitable for the SESSION_SIGNING_KEY environment variable.
func GenerateEncodedKey() (string, error) {
	key, err := GenerateKey()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(key), nil
}
