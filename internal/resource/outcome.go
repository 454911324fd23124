package resource

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// ErrMissingPayload reports a create or update call that carried no request
// payload at all. It is checked before any field validation.
var ErrMissingPayload = errors.New("request payload is required")

// ValidationError reports the first required field of a create request that
// was absent or blank.
type ValidationError struct {
	Field string // wire name, e.g. "title"
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", fieldLabel(e.Field))
}

// ConflictError reports a write rejected by a declared unique constraint.
type ConflictError struct {
	Field   string // wire name of the constrained field, e.g. "email"
	Message string // client-facing message, e.g. "Email already in use"
}

func (e *ConflictError) Error() string {
	return e.Message
}

// fieldLabel turns a wire name into its message form ("authorId" -> "AuthorId").
func fieldLabel(field string) string {
	r, size := utf8.DecodeRuneInString(field)
	if r == utf8.RuneError {
		return field
	}
	return string(unicode.ToUpper(r)) + field[size:]
}
