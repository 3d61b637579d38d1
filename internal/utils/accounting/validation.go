package accounting

import (
	"regexp"
	"strings"
)

var (
	// phoneRegex accepts local 8-digit numbers starting with 2, 3 or 4.
	phoneRegex = regexp.MustCompile(`^[234]\d{7}$`)
	// personNameRegex accepts letters (accented included) and spaces only.
	personNameRegex = regexp.MustCompile(`^[\p{L} ]+$`)
)

// ValidatePhone reports whether phone is exactly 8 digits with a leading 2, 3 or 4.
func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// ValidatePersonName reports whether name is non-blank and made of letters and spaces.
func ValidatePersonName(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	return personNameRegex.MatchString(name)
}
