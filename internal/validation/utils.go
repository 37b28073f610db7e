package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// GetValidator returns the shared validator instance.
// Field names in errors are taken from json tags so messages use the
// names clients send ("album_id", not "AlbumID"). Path parameters fall
// back to their param tag.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name != "-" && name != "" {
				return name
			}
			if param := fld.Tag.Get("param"); param != "" {
				return param
			}
			return fld.Name
		})
	})

	return validate
}

// ValidateStruct runs the struct tags of s and converts failures into Errors.
func ValidateStruct(s any) error {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	out := make(Errors, 0, len(validationErrors))
	for _, fe := range validationErrors {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)

	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())

	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must not exceed %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must not exceed %s", field, fe.Param())

	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())

	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())

	case "url", "http_url":
		return fmt.Sprintf("%s must be a valid URL", field)

	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s: %s:%s", field, fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s: %s", field, fe.Tag())
	}
}

// UnknownFields returns the top-level keys of the JSON object in body that
// are not in allowed, in the order they appear in body. Duplicate keys are
// reported once.
func UnknownFields(body []byte, allowed []string) ([]string, error) {
	// encoding/json's Token API walks keys in input order; go-json's
	// decoder has no streaming token reader to do the same.
	dec := json.NewDecoder(bytes.NewReader(body))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errNotObject
	}

	permitted := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		permitted[name] = struct{}{}
	}

	var unknown []string
	seen := make(map[string]struct{})
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errNotObject
		}

		if _, ok := permitted[key]; !ok {
			if _, dup := seen[key]; !dup {
				seen[key] = struct{}{}
				unknown = append(unknown, key)
			}
		}

		// Skip the value, whatever its shape.
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}

	if _, err := dec.Token(); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return unknown, nil
}

// AllowedFields lists the json names of v's exported fields. v may be a
// struct or a pointer to one. Fields tagged json:"-" are skipped.
func AllowedFields(v any) []string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	var names []string
	for i := 0; i < t.NumField(); i++ {
		fld := t.Field(i)
		if !fld.IsExported() {
			continue
		}
		tag := fld.Tag.Get("json")
		name := strings.SplitN(tag, ",", 2)[0]
		if name == "-" || tag == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}
