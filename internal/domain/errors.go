package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrConflict          = errors.New("order changed concurrently")
	ErrTransport         = errors.New("store unavailable")
)

// ErrValidation is the match target for creation-input failures; the
// concrete error is always a *ValidationError carrying the field.
var ErrValidation = errors.New("validation failed")

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalidStatus(s string) error {
	return fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// InvalidTransition names both ends of the rejected edge so the dashboard
// can tell the operator what happened.
func InvalidTransition(from, to OrderStatus) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
