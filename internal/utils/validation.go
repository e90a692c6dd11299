package utils

import (
	"errors"
	"regexp"
	"strings"
)

// Compiled regular expressions for validation
var (
	// Station and line ids are ASCII: "<line>-<sequence>" like 1-11 or S8-2
	validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

	// Detect potentially dangerous characters - focused on injection patterns
	dangerousPattern = regexp.MustCompile(`[<>]|--|\/\*|\*\/|;.*--`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// ValidateID validates that a station or line id is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidateName validates a station name query. Names may contain any UTF-8
// text, so only obviously dangerous content is rejected.
func ValidateName(name string) error {
	// Empty names are allowed; they yield empty results downstream
	if name == "" {
		return nil
	}

	if len(name) > 200 {
		return errors.New("name too long (max 200 characters)")
	}

	if dangerousPattern.MatchString(name) {
		return errors.New("name contains invalid characters")
	}

	return nil
}

// SanitizeInput removes HTML tags and other potentially dangerous content
func SanitizeInput(input string) string {
	sanitized := htmlTagPattern.ReplaceAllString(input, "")
	sanitized = strings.TrimSpace(sanitized)

	return sanitized
}

// ValidateAndSanitizeName validates and sanitizes a station name query
func ValidateAndSanitizeName(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	return SanitizeInput(name), nil
}
