package validation

import "strings"

// MinPasswordLength applies to user and admin registration.
const MinPasswordLength = 8

// ValidPassword reports whether a password meets the registration policy.
func ValidPassword(password string) bool {
	return len(password) >= MinPasswordLength
}

// HasSpecialChar reports whether s contains at least one punctuation
// character. Required for admin passwords.
func HasSpecialChar(s string) bool {
	specialChars := "!@#$%^&*()_+-=[]{}|;:,.<>?`~"
	for _, char := range s {
		if strings.ContainsRune(specialChars, char) {
			return true
		}
	}
	return false
}
