// Package totp implements the time-based one-time password engine used
// for mandatory two-factor authentication.
//
// It is a self-contained RFC 4226/6238 implementation: secret key
// creation (GenerateSecretKey), enrollment material with an otpauth URI
// for authenticator apps (GenerateEnrollment), and code verification
// with a bounded clock-skew window (Verify). Codes are 6 digits over
// 30-second periods with HMAC-SHA1, matching what authenticator apps
// expect.
//
// Secrets travel through this package only as Base32 strings; encrypting
// them at rest is the job of pkg/secrets.
package totp
