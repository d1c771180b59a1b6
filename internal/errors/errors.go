package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("an account with this email already exists")
	// ErrInvalidCredentials is returned on any login failure. The message is
	// deliberately the same for unknown emails and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNoteNotFound is returned when a note does not exist or belongs to
	// another user. The two cases are indistinguishable to the caller.
	ErrNoteNotFound = errors.New("note not found")
	// ErrInvalidNoteID is returned when a note identifier is not a valid UUID.
	ErrInvalidNoteID = errors.New("invalid note ID format")
	// ErrInvalidDateFilter is returned when the date list filter does not parse.
	ErrInvalidDateFilter = errors.New("invalid date format, use YYYY-MM-DD")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Store-level errors never
// reach a response as-is.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrEmailTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case ErrNoteNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOTE_NOT_FOUND")
	case ErrInvalidNoteID:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_NOTE_ID")
	case ErrInvalidDateFilter:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_DATE_FILTER")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
