// Package mnemonic generates recovery phrases used as a secondary proof
// of account ownership for password reset and account deletion.
//
// A phrase is 24 words drawn with crypto/rand from a fixed 256-word list
// (192 bits of entropy). Comparison happens through Verify, which
// normalizes both sides and compares SHA-256 digests in constant time.
package mnemonic
