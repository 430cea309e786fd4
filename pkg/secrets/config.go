package secrets

// Config carries the process-wide master key used to seal account
// secrets at rest. The value must be a base64-encoded 32-byte key;
// cmd/keygen prints a fresh one.
type Config struct {
	EncryptionKey string `env:"SECRETS_ENCRYPTION_KEY,required"`
}
