package shop

import "strings"

// Standalone field predicates. No constructor calls these; callers decide
// when input deserves checking.

// ValidateEmail reports whether s looks like an email address. The check is
// deliberately naive: an "@" and a "." anywhere in the string pass.
func ValidateEmail(s string) bool {
	return strings.Contains(s, "@") && strings.Contains(s, ".")
}

// ValidateAge reports whether n is a plausible age, 0 through 150.
func ValidateAge(n int) bool {
	return n >= 0 && n <= 150
}

// ValidateName reports whether s is non-empty.
func ValidateName(s string) bool {
	return s != ""
}
