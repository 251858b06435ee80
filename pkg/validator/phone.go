package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrEmptyPhone indicates phone number is empty
	ErrEmptyPhone = errors.New("phone number cannot be empty")

	// ErrInvalidFormat indicates phone number contains invalid characters
	ErrInvalidFormat = errors.New("phone number can only contain digits and an optional leading +")

	// ErrInvalidLength indicates phone number length is outside 7-15 digits
	ErrInvalidLength = errors.New("phone number must contain 7 to 15 digits")
)

// phoneRegex matches digits with an optional leading +
var phoneRegex = regexp.MustCompile(`^\+?\d+$`)

// NormalizePhone validates a contact phone number and returns its
// canonical form: the digits, with international numbers keeping their
// leading +.
// Accepts formats like +49 171 1234567, (071) 123-4567 or 0711234567.
func NormalizePhone(phone string) (string, error) {
	if phone == "" {
		return "", ErrEmptyPhone
	}

	sanitized := Sanitize(phone)

	if !phoneRegex.MatchString(sanitized) {
		return "", ErrInvalidFormat
	}

	digits := strings.TrimPrefix(sanitized, "+")
	if len(digits) < 7 || len(digits) > 15 {
		return "", ErrInvalidLength
	}

	return sanitized, nil
}

// Sanitize removes common separator characters from a phone number
func Sanitize(phone string) string {
	phone = strings.TrimSpace(phone)
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")
	phone = strings.ReplaceAll(phone, "(", "")
	phone = strings.ReplaceAll(phone, ")", "")
	phone = strings.ReplaceAll(phone, ".", "")

	// Keep a single leading +, drop any other
	if strings.HasPrefix(phone, "+") {
		return "+" + strings.ReplaceAll(phone[1:], "+", "")
	}
	return strings.ReplaceAll(phone, "+", "")
}

// IsValid is a convenience method that returns true if phone is valid
func IsValid(phone string) bool {
	_, err := NormalizePhone(phone)
	return err == nil
}

// Format formats a normalized phone number for display, grouping the
// last seven digits as XXX XXXX.
func Format(phone string) (string, error) {
	normalized, err := NormalizePhone(phone)
	if err != nil {
		return "", err
	}

	digits := strings.TrimPrefix(normalized, "+")
	prefix := digits[:len(digits)-7]
	if strings.HasPrefix(normalized, "+") {
		prefix = "+" + prefix
	}
	return fmt.Sprintf("%s %s %s", prefix, digits[len(digits)-7:len(digits)-4], digits[len(digits)-4:]), nil
}
