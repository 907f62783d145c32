package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates a missing, expired or revoked session.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the principal may not access the requested module.
var ErrForbidden = errors.New("access denied")

// ErrInvalidCredentials is the only error a failed login ever returns. It does not
// tell an unknown identifier apart from a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrConflict indicates that the operation would break a reference held by other records.
var ErrConflict = errors.New("conflict with related records")

// AppError carries an HTTP-ish code alongside an infrastructure failure.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError wraps err with a code and a message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
