package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed domain error carrying the numeric code the public
// API exposes. The code doubles as the HTTP status of the response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"msg"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code int, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Predefined errors for common scenarios.
var (
	ErrBadRequest = New(http.StatusBadRequest, "Bad Request")
	ErrNotFound   = New(http.StatusNotFound, "Not Found")
	ErrForbidden  = New(http.StatusForbidden, "Forbidden")
	ErrInternal   = New(http.StatusInternalServerError, "Internal Server Error")
)

// Validation builds a 400 error with a caller-supplied message.
func Validation(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// Upstream wraps a scrape or transport failure as a 500 whose message carries
// the underlying cause, matching the proxy error contract.
func Upstream(err error) *Error {
	msg := "Upstream Error"
	if err != nil {
		msg = err.Error()
	}
	return Wrap(err, http.StatusInternalServerError, msg)
}

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Message)
}
