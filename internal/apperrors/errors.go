// internal/apperrors/errors.go
package apperrors

import (
	"errors"
	"fmt"
)

// Stable error codes surfaced to API clients.
const (
	CodeNotFound   = "NOT_FOUND"
	CodeConflict   = "CONFLICT"
	CodeValidation = "VALIDATION_ERROR"
)

// Error is a business-rule failure with a machine-readable code.
type Error struct {
	Code    string
	Message string
	Details interface{}
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) *Error {
	return &Error{Code: CodeConflict, Message: fmt.Sprintf(format, args...)}
}

func Validation(message string, details interface{}) *Error {
	return &Error{Code: CodeValidation, Message: message, Details: details}
}

// CodeOf returns the code carried by err, or "" for untyped errors.
func CodeOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

func IsNotFound(err error) bool { return CodeOf(err) == CodeNotFound }
func IsConflict(err error) bool { return CodeOf(err) == CodeConflict }
