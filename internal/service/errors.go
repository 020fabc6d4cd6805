package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
	ErrAuth       = errors.New("not authorized")
	ErrCapacity   = errors.New("capacity exceeded")
)

// CapacityError reports persons outside a room's capacity rule. It matches ErrCapacity.
type CapacityError struct {
	Min int
	Max int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("number of persons must be between %d and %d for this room", e.Min, e.Max)
}

func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacity
}
