// Package validation contains the logic for validating
// request data.
//
// Every request body is first checked against the operation's
// allow-list of field names, then decoded and validated with the
// `validator` library using the rules declared in struct tags.
package validation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/deppfellow/music-catalog/internal/errs"
	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
)

var errNotObject = errors.New("request body must be a JSON object")

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
//   - Define a request struct with json tags (the allow-list) and validator tags
//   - Implement Validate() error that calls ValidateStruct(req)
type Validatable interface {
	Validate() error
}

// AllowLister overrides the allow-list derived from json tags.
type AllowLister interface {
	AllowedFields() []string
}

// FieldError is a single failed rule on a single field.
type FieldError struct {
	Field   string
	Message string
}

// Errors is returned by Validate when one or more rules fail.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "Validation failed"
	}
	return e[0].Message
}

// NotAllowedMessage formats the rejection for fields outside the allow-list.
func NotAllowedMessage(fields []string) string {
	return fmt.Sprintf("Field's %s is not allowed", strings.Join(fields, ", "))
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. The raw body is checked against the allow-list (400 "Field's a, b is not allowed").
//  2. The body is decoded into payload.
//  3. Path params are bound through `param:"..."` tags.
//  4. payload.Validate() applies validation rules.
//
// payload must be a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	body, err := readBody(c)
	if err != nil {
		return errs.NewBadRequestError("Couldn't read request body")
	}

	if len(body) > 0 {
		allowed := AllowedFields(payload)
		if lister, ok := payload.(AllowLister); ok {
			allowed = lister.AllowedFields()
		}

		unknown, err := UnknownFields(body, allowed)
		if err != nil {
			return errs.NewBadRequestError(decodeMessage(err))
		}
		if len(unknown) > 0 {
			return errs.NewBadRequestError(NotAllowedMessage(unknown))
		}

		if err := json.Unmarshal(body, payload); err != nil {
			return errs.NewBadRequestError(decodeMessage(err))
		}
	}

	if err := (&echo.DefaultBinder{}).BindPathParams(c, payload); err != nil {
		return errs.NewBadRequestError("Invalid path parameter")
	}

	return payload.Validate()
}

func readBody(c echo.Context) ([]byte, error) {
	req := c.Request()
	if req.Body == nil {
		return nil, nil
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	req.Body = io.NopCloser(bytes.NewReader(body))

	return bytes.TrimSpace(body), nil
}

func decodeMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("%s has an invalid type", typeErr.Field)
	}
	if errors.Is(err, errNotObject) {
		return "Request body must be a JSON object"
	}
	return "Malformed JSON body"
}
