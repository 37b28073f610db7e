package sqlerr

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/music-catalog/internal/errs"
	"github.com/deppfellow/music-catalog/internal/validation"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// "Key (name)=(Rock) already exists."
	detailKeyRe = regexp.MustCompile(`^Key \(([^)]+)\)=`)
	// "albums_name_key", "songs_audio_ukey"
	uniqueConstraintRe = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)
	// "albums_name_check"
	checkConstraintRe = regexp.MustCompile(`_([^_]+)_check$`)
)

// ErrCode reports the mapped sqlerr.Code for a given error.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return MapCode(pgErr.Code)
	}
	return Other
}

// Classify maps an error onto the client-facing HTTP error it stands for.
//
// Order of precedence:
//  1. an *errs.HTTPError already built by a lower layer is returned as is
//  2. missing records (NotFoundError, pgx.ErrNoRows) -> 404
//  3. request validation failures -> 400 with the first failure message
//  4. unique violations -> 400 "<column> must be unique"
//  5. any other database error -> 400
//
// The boolean is false when the error is none of the above; callers then
// respond with their own 500 message.
func Classify(err error) (*errs.HTTPError, bool) {
	if err == nil {
		return nil, false
	}

	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}

	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return errs.NewNotFoundError(notFound.Error()), true
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found"), true
	}

	var validationErrs validation.Errors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		return errs.NewBadRequestError(validationErrs[0].Message), true
	}

	var sqlErr *Error
	if !errors.As(err, &sqlErr) {
		var pgErr *pgconn.PgError
		if !errors.As(err, &pgErr) {
			return nil, false
		}
		sqlErr = ConvertPgError(pgErr)
	}

	return errs.NewBadRequestError(formatMessage(sqlErr)), true
}

// HandleError classifies err and falls back to a 500 carrying fallback.
func HandleError(err error, fallback string) *errs.HTTPError {
	if httpErr, ok := Classify(err); ok {
		return httpErr
	}
	return errs.NewInternalServerError(fallback)
}

func formatMessage(sqlErr *Error) string {
	switch sqlErr.Code {
	case UniqueViolation:
		column := extractColumnForUniqueViolation(sqlErr)
		if column == "" {
			column = "value"
		}
		return fmt.Sprintf("%s must be unique", column)

	case NotNullViolation:
		if sqlErr.ColumnName != "" {
			return fmt.Sprintf("%s cannot be null", sqlErr.ColumnName)
		}

	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", getEntityName(sqlErr))

	case CheckViolation:
		if m := checkConstraintRe.FindStringSubmatch(sqlErr.ConstraintName); len(m) > 1 {
			return fmt.Sprintf("%s does not meet required conditions", humanizeText(m[1]))
		}
	}

	return sqlErr.Message
}

// extractColumnForUniqueViolation prefers the key named in the error
// detail and falls back to the constraint naming convention
// "<table>_<column>_key".
func extractColumnForUniqueViolation(sqlErr *Error) string {
	if m := detailKeyRe.FindStringSubmatch(sqlErr.Detail); len(m) > 1 {
		return m[1]
	}
	if sqlErr.ConstraintName == "" {
		return ""
	}
	if m := uniqueConstraintRe.FindStringSubmatch(sqlErr.ConstraintName); len(m) > 1 {
		return m[1]
	}
	return ""
}

// getEntityName tries to infer the referenced entity of a foreign key error.
// "author_id" in the detail or column wins over the table name.
func getEntityName(sqlErr *Error) string {
	column := sqlErr.ColumnName
	if m := detailKeyRe.FindStringSubmatch(sqlErr.Detail); len(m) > 1 {
		column = m[1]
	}
	if column != "" && strings.HasSuffix(strings.ToLower(column), "_id") {
		return strings.TrimSuffix(strings.ToLower(column), "_id")
	}
	if sqlErr.TableName != "" {
		return strings.TrimSuffix(sqlErr.TableName, "s")
	}
	return "record"
}

// humanizeText converts snake_case into Title Case ("user_id" -> "User Id").
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}
