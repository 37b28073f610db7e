// Package errs define custom error types and utilities.
//
// Its purpose is to create specific error structures
// (HTTPError for API responses and the error envelope)
// to ensure the client receive meaningful, actionable, and consistent
// error messages.
//
//   - Return consistent error shapes to API clients (JSON).
//   - Keep the HTTP status and the envelope code in lockstep.
//   - Provide errors that play nicely with Go's standard errors package.
package errs

import "strings"

// Titles used as the envelope "message" for each supported status.
const (
	TitleBadRequest          = "Bad request"
	TitleUnauthorized        = "Unauthorized"
	TitleForbidden           = "Forbidden"
	TitleNotFound            = "Not found"
	TitleInternalServerError = "Internal server error"
)

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface via Error().
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST"), used in logs.
//   - Title: short status title rendered as the envelope message.
//   - Message: human-friendly detail rendered as meta.additional_info.
//   - Status: HTTP status code, also rendered as the envelope code.
type HTTPError struct {
	Code    string
	Title   string
	Message string
	Status  int
}

// Error makes *HTTPError satisfy the built-in `error` interface.
// It returns the Message, so printing/logging the error shows the detail.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also a *HTTPError.
//
// This does NOT compare Code/Status/etc. It only checks the type.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a *copy* of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Title:   e.Title,
		Message: message,
		Status:  e.Status,
	}
}

// Response renders the error as the JSON envelope sent to clients.
func (e *HTTPError) Response() ErrorResponse {
	return ErrorResponse{
		Errors: []ErrorObject{
			{
				Code:    e.Status,
				Message: e.Title,
				Meta:    ErrorMeta{AdditionalInfo: e.Message},
			},
		},
	}
}

// ErrorResponse is the error envelope:
//
//	{"errors":[{"code":404,"message":"Not found","meta":{"additional_info":"..."}}]}
type ErrorResponse struct {
	Errors []ErrorObject `json:"errors"`
}

// ErrorObject is one entry of ErrorResponse.Errors.
type ErrorObject struct {
	Code    int       `json:"code"`
	Message string    `json:"message"`
	Meta    ErrorMeta `json:"meta"`
}

// ErrorMeta carries the detailed message.
type ErrorMeta struct {
	AdditionalInfo string `json:"additional_info"`
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
