package bookstore

import (
	"strings"
	"unicode/utf8"
)

const MinPasswordLength = 8

// PasswordPolicyError lists every rule a password failed.
type PasswordPolicyError struct {
	Failed []string
}

func (e *PasswordPolicyError) Error() string {
	return "password " + strings.Join(e.Failed, ", ")
}

// ValidatePassword applies the registration password policy locally:
// at least MinPasswordLength characters with an ASCII uppercase letter,
// lowercase letter, digit, and a character that is none of those.
func ValidatePassword(password string) error {
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	var failed []string
	if utf8.RuneCountInString(password) < MinPasswordLength {
		failed = append(failed, "is shorter than 8 characters")
	}
	if !hasUpper {
		failed = append(failed, "has no uppercase letter")
	}
	if !hasLower {
		failed = append(failed, "has no lowercase letter")
	}
	if !hasDigit {
		failed = append(failed, "has no digit")
	}
	if !hasSpecial {
		failed = append(failed, "has no special character")
	}
	if len(failed) > 0 {
		return &PasswordPolicyError{Failed: failed}
	}
	return nil
}

func IsValidPassword(password string) bool {
	return ValidatePassword(password) == nil
}
