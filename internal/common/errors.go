package common

import (
	"errors"
	"fmt"
)

// Application errors. The parsing pipeline itself never returns errors;
// these exist at the storage and CLI boundary.
var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicateEntry  = errors.New("duplicate entry")
	ErrInvalidCategory = errors.New("invalid category")
	ErrMissingConfig   = errors.New("missing configuration")
)

// UserError wraps an error with a message fit for terminal output.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a user-facing error.
func NewUserError(userMessage string, err error) error {
	return &UserError{UserMessage: userMessage, Err: err}
}
