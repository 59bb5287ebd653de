package order

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced to handlers. Store failures are wrapped with
// %w and propagate unchanged; there is no retry logic at this layer.
var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrForbidden         = errors.New("actor may not perform this operation")
	ErrAlreadyRated      = errors.New("order has already been rated")
	ErrOrderNotCompleted = errors.New("order is not completed yet")
)

// ValidationError reports a missing or malformed checkout field. No
// write happens when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}
