package domain

import "errors"

// Upstream error categories. The backend client wraps one of these into
// every failed call so callers can branch with errors.Is.
var (
	ErrNetwork      = errors.New("backend unreachable")
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("session expired")
	ErrForbidden    = errors.New("permission denied")
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrRateLimited  = errors.New("too many requests")
	ErrUpstream     = errors.New("server error")
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrSuperseded        = errors.New("request superseded by a newer one")
	ErrExportNotFound    = errors.New("export not found")
	ErrExportNotReady    = errors.New("export not ready")
	ErrExportInProgress  = errors.New("an identical export is already running")
	ErrUnsupportedExport = errors.New("unsupported export resource")
	// ErrBadResponse means the backend answered 2xx with a body that does not
	// match the endpoint's schema.
	ErrBadResponse = errors.New("unexpected backend response")
)

// APIError is a failed backend call. Category is one of the sentinel errors
// above, so errors.Is(err, ErrForbidden) works on the wrapped value.
type APIError struct {
	Status   int
	Category error
	Message  string
	Method   string
	Path     string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Category.Error()
}

func (e *APIError) Unwrap() error { return e.Category }

// UserMessage turns any error into the string shown in an error notification.
// Backend-provided messages win for bad input and validation; the remaining
// categories use fixed wording.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	hasBody := errors.As(err, &apiErr) && apiErr.Message != ""

	switch {
	case errors.Is(err, ErrNetwork):
		return "Network error. Please check your connection and try again."
	case errors.Is(err, ErrUnauthorized):
		return "Your session has expired. Please log in again."
	case errors.Is(err, ErrForbidden):
		return "You do not have permission to perform this action."
	case errors.Is(err, ErrRateLimited):
		return "Too many requests. Please try again later."
	case errors.Is(err, ErrNotFound):
		if hasBody {
			return apiErr.Message
		}
		return "The requested record was not found."
	case errors.Is(err, ErrUpstream):
		return "Server error. Please try again later."
	case errors.Is(err, ErrBadRequest), errors.Is(err, ErrValidation):
		if hasBody {
			return apiErr.Message
		}
		return "The submitted data is invalid."
	}
	return err.Error()
}
