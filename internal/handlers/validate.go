package handlers

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Validation limits for account and preference fields.
const (
	maxEmailLen       = 254
	minPasswordLen    = 8
	maxPasswordLen    = 200
	maxDisplayNameLen = 100
	maxToolNameLen    = 100
)

// validateEmail checks the address shape and length.
func validateEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return "Email is required."
	}
	if utf8.RuneCountInString(email) > maxEmailLen {
		return "Email is too long."
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "Email address is not valid."
	}
	return ""
}

// validatePassword enforces the length bounds. Composition rules are
// deliberately not enforced.
func validatePassword(password string) string {
	if len(password) < minPasswordLen {
		return "Password must be at least 8 characters."
	}
	if len(password) > maxPasswordLen {
		return "Password is too long."
	}
	return ""
}

// validateDisplayName checks the optional display name.
func validateDisplayName(name string) string {
	if utf8.RuneCountInString(name) > maxDisplayNameLen {
		return "Display name is too long (max 100 characters)."
	}
	return ""
}
