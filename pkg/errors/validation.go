package errors

import "strings"

// ValidateUsername trims surrounding whitespace and rejects blank input.
// No other sanitization is applied; the API decides what exists.
func ValidateUsername(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", InvalidUsername()
	}
	return name, nil
}
