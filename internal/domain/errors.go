package domain

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"
)

// AppError is a failure of a domain operation. Message names the operation
// and what went wrong, the wrapped cause (if any) is appended after ": ".
type AppError struct {
	Code    failure.ErrorCode
	Message string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.cause.Error()
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// NewError builds an AppError with a printf style message.
func NewError(code failure.ErrorCode, format string, args ...any) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError tags err with code. The message is printf style.
func WrapError(err error, code failure.ErrorCode, format string, args ...any) *AppError {
	appErr := NewError(code, format, args...)
	appErr.cause = err

	return appErr
}

// GetCode returns the code of the outermost AppError in the chain.
func GetCode(err error) (failure.ErrorCode, bool) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return "", false
	}

	return appErr.Code, true
}
