package domain

import (
	"errors"
	"fmt"
)

// Domain-level errors
var (
	ErrInvalidArgument         = errors.New("invalid argument")
	ErrProductNotFound         = errors.New("product not found")
	ErrIDAlreadyAssigned       = errors.New("product id already assigned")
	ErrProductAlreadyPersisted = errors.New("product already persisted")
)

// InvalidArgumentError is returned when a value fails one of its preconditions.
// It matches ErrInvalidArgument with errors.Is.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidArgument, e.Message)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
