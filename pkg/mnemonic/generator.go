package mnemonic

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"strings"
)

// WordCount is the number of words in a generated recovery phrase.
// Each word carries 8 bits of entropy, giving 192 bits per phrase.
const WordCount = 24

// Generate returns a fresh space-joined recovery phrase. A phrase is
// generated exactly once per account, at registration, and never again.
func Generate() (string, error) {
	buf := make([]byte, WordCount)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Join(ErrGenerationFailed, err)
	}

	words := make([]string, WordCount)
	for i, b := range buf {
		words[i] = wordlist[b]
	}
	return strings.Join(words, " "), nil
}

// Normalize prepares user-supplied proof for comparison: trims, lowers
// and collapses internal whitespace. Generated phrases are already in
// normal form.
func Normalize(phrase string) string {
	return strings.Join(strings.Fields(strings.ToLower(phrase)), " ")
}

// Verify reports whether candidate matches phrase. Both sides are
// normalized and compared via digests so the comparison is constant
// time regardless of where the first difference occurs.
func Verify(phrase, candidate string) bool {
	a := sha256.Sum256([]byte(Normalize(phrase)))
	b := sha256.Sum256([]byte(Normalize(candidate)))
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}
