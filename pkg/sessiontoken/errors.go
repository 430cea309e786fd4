package sessiontoken

import "errors"

var (
	ErrMissingSigningKey       = errors.New("sessiontoken: missing signing key")
	ErrInvalidTTL              = errors.New("sessiontoken: ttl must be positive")
	ErrMissingSubject          = errors.New("sessiontoken: missing account id")
	ErrInvalidToken            = errors.New("sessiontoken: invalid token")
	ErrInvalidSignature        = errors.New("sessiontoken: invalid signature")
	ErrTokenExpired            = errors.New("sessiontoken: token expired")
	ErrUnexpectedSigningMethod = errors.New("sessiontoken: unexpected signing method")
	ErrKeyGenerationFailed     = errors.New("sessiontoken: failed to generate signing key")
)
