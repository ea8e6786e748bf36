package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound marks operations that target an id with no row behind it.
var ErrNotFound = errors.New("product not found")

// ValidationError is rejected input. It never reaches storage and maps to a
// 400 at the HTTP boundary.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
