// Package sanitizer provides small, composable input normalization
// helpers. The important one is NormalizeUsername, which defines the
// canonical storage form of usernames (trimmed, lowercased) used by
// every lookup and uniqueness check.
package sanitizer
