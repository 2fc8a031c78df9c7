package usecase

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail trims and lowercases an address before validation.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidEmail is a syntactic check only: something@something.tld with no
// whitespace. Deliverability is the CRM's problem.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
