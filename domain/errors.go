package domain

import (
	"errors"
	"fmt"
)

// ValidationError is a field-level, caller-correctable failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

var (
	ErrAddressRequired    = NewValidationError("address", "address is required")
	ErrDuplicateCpf       = errors.New("cpf already exists")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrNotFound           = errors.New("person not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// PersistenceError wraps a storage failure the pre-checks did not anticipate.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("could not %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func NewPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsPersistenceError(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
