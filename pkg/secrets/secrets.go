package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the required master key size for AES-256.
	KeySize = 32

	// saltInfo provides domain separation for HKDF derivation.
	saltInfo = "marketkit-secrets-v1"
)

// Purpose selects the HKDF subkey a value is sealed under. Ciphertext
// produced for one purpose cannot be opened under another, so a leaked
// decryption path for TOTP secrets does not expose recovery mnemonics.
type Purpose string

const (
	PurposeMnemonic Purpose = "mnemonic"
	PurposeTOTP     Purpose = "totp"
)

// Codec encrypts and decrypts account secrets with a process-wide master
// key. Plaintext only exists transiently in memory; callers must not
// retain the decrypted value beyond a single verification.
type Codec struct {
	masterKey []byte
}

// New creates a Codec from a raw 32-byte master key.
func New(masterKey []byte) (*Codec, error) {
	if len(masterKey) != KeySize {
		return nil, ErrInvalidKeyLength
	}
	key := make([]byte, KeySize)
	copy(key, masterKey)
	return &Codec{masterKey: key}, nil
}

// NewFromConfig decodes the base64 master key from configuration.
func NewFromConfig(cfg Config) (*Codec, error) {
	key, err := DecodeKey(cfg.EncryptionKey)
	if err != nil {
		return nil, err
	}
	return New(key)
}

// EncryptString seals plaintext under the purpose subkey using
// AES-256-GCM and returns base64(nonce || ciphertext || tag).
func (c *Codec) EncryptString(purpose Purpose, plaintext string) (string, error) {
	aesGCM, err := c.sealer(purpose)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", errors.Join(ErrEncryptionFailed, err)
	}

	cipherText := aesGCM.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(cipherText), nil
}

// DecryptString opens a base64 ciphertext previously produced by
// EncryptString with the same purpose.
func (c *Codec) DecryptString(purpose Purpose, encoded string) (string, error) {
	cipherText, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", errors.Join(ErrInvalidCiphertext, err)
	}

	aesGCM, err := c.sealer(purpose)
	if err != nil {
		return "", err
	}

	nonceSize := aesGCM.NonceSize()
	if len(cipherText) < nonceSize {
		return "", ErrInvalidCiphertext
	}
	nonce, cipherText := cipherText[:nonceSize], cipherText[nonceSize:]

	plainText, err := aesGCM.Open(nil, nonce, cipherText, nil)
	if err != nil {
		return "", errors.Join(ErrDecryptionFailed, err)
	}

	return string(plainText), nil
}

// sealer derives the purpose subkey and builds an AES-GCM AEAD over it.
func (c *Codec) sealer(purpose Purpose) (cipher.AEAD, error) {
	key, err := c.deriveKey(purpose)
	if err != nil {
		return nil, err
	}
	defer clearBytes(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}
	return aesGCM, nil
}

// deriveKey expands the master key into a purpose-bound subkey via
// HKDF-SHA256. The caller clears the returned key after use.
func (c *Codec) deriveKey(purpose Purpose) ([]byte, error) {
	if purpose == "" {
		return nil, ErrMissingPurpose
	}

	hkdfReader := hkdf.New(sha256.New, c.masterKey, []byte(purpose), []byte(saltInfo))

	derived := make([]byte, KeySize)
	if _, err := io.ReadFull(hkdfReader, derived); err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}
	return derived, nil
}

// clearBytes zeros key material once it is no longer needed.
func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// GenerateKey creates a new random 32-byte master key.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, errors.Join(ErrKeyGenerationFailed, err)
	}
	return key, nil
}

// GenerateEncodedKey creates a new master key as a base64 string, ready
// to be placed in the SECRETS_ENCRYPTION_KEY environment variable.
func GenerateEncodedKey() (string, error) {
	key, err := GenerateKey()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// DecodeKey decodes a base64 master key and checks its length.
func DecodeKey(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, ErrKeyNotSet
	}
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Join(ErrInvalidKey, err)
	}
	if len(key) != KeySize {
		return nil, ErrInvalidKeyLength
	}
	return key, nil
}
