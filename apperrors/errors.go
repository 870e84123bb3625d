package apperrors

import "net/http"

// Error carries the HTTP status a failure maps to along with the
// client-facing message. Services return only these; handlers never
// see raw database or parser errors.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

func Internal(message string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message}
}

var ErrInternalServer = Internal("Internal server error.")

// StatusOf returns the HTTP status for err, defaulting to 500 for
// anything outside the taxonomy.
func StatusOf(err error) int {
	if appErr, ok := err.(*Error); ok {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the client-facing message for err.
func MessageOf(err error) string {
	if appErr, ok := err.(*Error); ok {
		return appErr.Message
	}
	return ErrInternalServer.Message
}
