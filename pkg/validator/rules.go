package validator

import (
	"fmt"
	"regexp"
)

var alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// Required fails when the value is empty.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return value != "" },
		Error: ValidationError{Field: field, Message: "is required"},
	}
}

// LengthBetween fails when the value's byte length is outside [min, max].
func LengthBetween(field, value string, min, max int) Rule {
	return Rule{
		Check: func() bool { return len(value) >= min && len(value) <= max },
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %d and %d characters", min, max),
		},
	}
}

// Alphanumeric fails when the value contains anything but ASCII letters
// and digits.
func Alphanumeric(field, value string) Rule {
	return Rule{
		Check: func() bool { return alphanumericRegex.MatchString(value) },
		Error: ValidationError{Field: field, Message: "must contain only letters and digits"},
	}
}

// Equal fails when the two values differ. Used for confirm-password
// fields.
func Equal(field, value, other, message string) Rule {
	return Rule{
		Check: func() bool { return value == other },
		Error: ValidationError{Field: field, Message: message},
	}
}
