package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that already knows its HTTP status.
// Delivery layers translate domain errors into HTTPError before responding.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// NewHTTPErrorf is NewHTTPError with a format string.
func NewHTTPErrorf(code int, format string, args ...any) *HTTPError {
	return &HTTPError{Code: code, Message: fmt.Sprintf(format, args...)}
}

func NewBadRequest(message string) *HTTPError { return NewHTTPError(http.StatusBadRequest, message) }
func NewForbidden(message string) *HTTPError  { return NewHTTPError(http.StatusForbidden, message) }
func NewNotFound(message string) *HTTPError   { return NewHTTPError(http.StatusNotFound, message) }
func NewConflict(message string) *HTTPError   { return NewHTTPError(http.StatusConflict, message) }
