package validator

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrEmptyContact indicates the contact number is empty
	ErrEmptyContact = errors.New("contact number cannot be empty")

	// ErrInvalidFormat indicates the contact number contains invalid characters
	ErrInvalidFormat = errors.New("contact number can only contain digits")

	// ErrInvalidLength indicates the contact number is not 10 digits
	ErrInvalidLength = errors.New("contact number must be exactly 10 digits")

	// ErrInvalidPrefix indicates the contact number does not start with 0
	ErrInvalidPrefix = errors.New("contact number must start with 0")
)

// digitsOnly matches digits only
var digitsOnly = regexp.MustCompile(`^\d+$`)

// ContactValidator handles passenger contact number validation
type ContactValidator struct{}

// NewContactValidator creates a new contact validator instance
func NewContactValidator() *ContactValidator {
	return &ContactValidator{}
}

// Validate validates a passenger contact number.
// Accepts format: 0771234567 or 077 123 4567 or 077-123-4567.
// Returns the sanitized number (digits only) and an error if invalid.
func (v *ContactValidator) Validate(contact string) (string, error) {
	if contact == "" {
		return "", ErrEmptyContact
	}

	sanitized := v.Sanitize(contact)

	if !digitsOnly.MatchString(sanitized) {
		return "", ErrInvalidFormat
	}
	if len(sanitized) != 10 {
		return "", ErrInvalidLength
	}
	if !strings.HasPrefix(sanitized, "0") {
		return "", ErrInvalidPrefix
	}

	return sanitized, nil
}

// Sanitize removes spaces, dashes and parentheses from a contact number
func (v *ContactValidator) Sanitize(contact string) string {
	replacer := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
	return replacer.Replace(contact)
}
