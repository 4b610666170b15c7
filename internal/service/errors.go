package service

import (
	"errors"
	"fmt"
)

var (
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrPersistence  = errors.New("persistence failure")

	ErrInvalidTransition = fmt.Errorf("%w: illegal moderation transition", ErrConflict)
	ErrClassFull         = fmt.Errorf("%w: class has no available seats", ErrConflict)
)

// persistence wraps a store failure so callers can match ErrPersistence and still see the cause.
func persistence(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}
