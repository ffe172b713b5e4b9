package domain

import "strings"

// HasText fails unless s contains at least one non-whitespace character.
func HasText(s, message string) error {
	if strings.TrimSpace(s) == "" {
		return &InvalidArgumentError{Message: message}
	}
	return nil
}

// IsTrue fails when cond is false.
func IsTrue(cond bool, message string) error {
	if !cond {
		return &InvalidArgumentError{Message: message}
	}
	return nil
}

// NotZero fails when v is the zero value of its type.
func NotZero[T comparable](v T, message string) error {
	var zero T
	if v == zero {
		return &InvalidArgumentError{Message: message}
	}
	return nil
}
