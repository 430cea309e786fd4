package secrets

import "errors"

var (
	ErrInvalidKeyLength    = errors.New("invalid encryption key length, must be 32 bytes")
	ErrInvalidKey          = errors.New("invalid encryption key encoding")
	ErrKeyNotSet           = errors.New("encryption key not set")
	ErrMissingPurpose      = errors.New("missing encryption purpose")
	ErrEncryptionFailed    = errors.New("encryption failed")
	ErrDecryptionFailed    = errors.New("decryption failed")
	ErrInvalidCiphertext   = errors.New("invalid ciphertext format")
	ErrKeyDerivationFailed = errors.New("key derivation failed")
	ErrKeyGenerationFailed = errors.New("key generation failed")
)
