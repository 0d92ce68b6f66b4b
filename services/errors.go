package services

import (
	"errors"
	"fmt"
)

// ErrBadCredentials is returned by login and password checks. It is mapped to
// a 401 at the API boundary and deliberately carries no detail about which
// part of the credential pair was wrong.
var ErrBadCredentials = errors.New("invalid email or password")

// ValidationError reports malformed or insufficient input, optionally tied to
// a single field. The API boundary maps it to a 400 with the field name.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}
