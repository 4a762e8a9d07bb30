package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized access")

	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")

	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token has expired")

	ErrMissingFields = errors.New("all fields are required")
	ErrInvalidModel  = errors.New("model must be at least 3 characters")
	ErrInvalidPhone  = errors.New("phone number must be 11 digits")
	ErrInvalidCity   = errors.New("city must be Lahore or Karachi")
	ErrTooManyImages = errors.New("a listing can have at most 10 images")

	ErrUploadFailed    = errors.New("image upload failed")
	ErrListingNotFound = errors.New("listing not found")
)

type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
