package sessiontoken

import "time"

// Config holds session token policy. Expiry is absolute from issuance;
// there is no sliding renewal, expired tokens force a fresh login.
type Config struct {
	SigningKey string        `env:"SESSION_SIGNING_KEY,required"`
	TTL        time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}
