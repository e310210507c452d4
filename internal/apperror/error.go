package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error represents an application error with HTTP status and error code
type Error struct {
	HTTPStatus int
	Code       string
	Message    string
	Internal   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the internal error
func (e *Error) Unwrap() error {
	return e.Internal
}

// WithInternal returns a copy of the error with an internal error attached
func (e *Error) WithInternal(err error) *Error {
	return &Error{
		HTTPStatus: e.HTTPStatus,
		Code:       e.Code,
		Message:    e.Message,
		Internal:   err,
	}
}

// WithMessage returns a copy of the error with a request-specific message.
// The code and status stay the same so clients can still match on them.
func (e *Error) WithMessage(message string) *Error {
	return &Error{
		HTTPStatus: e.HTTPStatus,
		Code:       e.Code,
		Message:    message,
		Internal:   e.Internal,
	}
}

// New creates a new application error
func New(status int, code, message string) *Error {
	return &Error{
		HTTPStatus: status,
		Code:       code,
		Message:    message,
	}
}

var (
	ErrNotFound     = New(http.StatusNotFound, "not_found", "Resource not found")
	ErrInternal     = New(http.StatusInternalServerError, "internal_error", "An internal error occurred")
	ErrRenderFailed = New(http.StatusInternalServerError, "render_failed", "Failed to render page")
	ErrEncodeFailed = New(http.StatusInternalServerError, "encode_failed", "Failed to encode response")
)

// ToHTTPError converts an error to a status code and JSON body. Errors that
// are not *Error become a generic internal error so internals never leak.
func ToHTTPError(err error) (int, map[string]any) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus, map[string]any{
			"error": map[string]any{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		}
	}

	return http.StatusInternalServerError, map[string]any{
		"error": map[string]any{
			"code":    ErrInternal.Code,
			"message": ErrInternal.Message,
		},
	}
}

// Write sends err as a JSON error response.
func Write(w http.ResponseWriter, err error) {
	status, body := ToHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
