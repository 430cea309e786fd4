package sanitizer

import "strings"

// Apply runs transforms left to right over the value.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, t := range transforms {
		value = t(value)
	}
	return value
}

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower lowercases the string.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// CollapseWhitespace replaces runs of whitespace with single spaces.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeUsername puts a username into storage form: trimmed and
// lowercased. Every lookup and uniqueness check runs on this form.
func NormalizeUsername(username string) string {
	return Apply(username, Trim, ToLower)
}
