package validator

import "regexp"

var (
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	digitRegex     = regexp.MustCompile(`[0-9]`)
	symbolRegex    = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// PasswordPolicy describes the password composition requirements.
type PasswordPolicy struct {
	MinLength int
	MaxLength int
}

// DefaultPasswordPolicy matches the registration form: 8-32 characters
// with at least one uppercase letter, lowercase letter, digit and symbol.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{MinLength: 8, MaxLength: 32}
}

// StrongPassword fails unless the value satisfies the policy length and
// contains all four character classes.
func StrongPassword(field, value string, policy PasswordPolicy) Rule {
	return Rule{
		Check: func() bool {
			if len(value) < policy.MinLength || len(value) > policy.MaxLength {
				return false
			}
			return uppercaseRegex.MatchString(value) &&
				lowercaseRegex.MatchString(value) &&
				digitRegex.MatchString(value) &&
				symbolRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must have 8-32 characters including an uppercase letter, a lowercase letter, a digit and a symbol",
		},
	}
}
