package errs

import (
	"net/http"
)

func newHTTPError(status int, title, message string) *HTTPError {
	return &HTTPError{
		// http.StatusText(404) => "Not Found" => "NOT_FOUND"
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Title:   title,
		Message: message,
		Status:  status,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
func NewBadRequestError(message string) *HTTPError {
	return newHTTPError(http.StatusBadRequest, TitleBadRequest, message)
}

// NewUnauthorizedError creates a 401 Unauthorized HTTPError.
func NewUnauthorizedError(message string) *HTTPError {
	return newHTTPError(http.StatusUnauthorized, TitleUnauthorized, message)
}

// NewForbiddenError creates a 403 Forbidden HTTPError.
func NewForbiddenError(message string) *HTTPError {
	return newHTTPError(http.StatusForbidden, TitleForbidden, message)
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string) *HTTPError {
	return newHTTPError(http.StatusNotFound, TitleNotFound, message)
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// message is what the client sees, so it should name the failed operation
// ("Couldn't create album") and never carry the underlying error text.
func NewInternalServerError(message string) *HTTPError {
	return newHTTPError(http.StatusInternalServerError, TitleInternalServerError, message)
}

// FromStatus builds an HTTPError for an arbitrary status code.
// Statuses without a dedicated title use net/http's status text.
func FromStatus(status int, message string) *HTTPError {
	switch status {
	case http.StatusBadRequest:
		return NewBadRequestError(message)
	case http.StatusUnauthorized:
		return NewUnauthorizedError(message)
	case http.StatusForbidden:
		return NewForbiddenError(message)
	case http.StatusNotFound:
		return NewNotFoundError(message)
	case http.StatusInternalServerError:
		return NewInternalServerError(message)
	default:
		return newHTTPError(status, http.StatusText(status), message)
	}
}
