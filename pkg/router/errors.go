package router

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAJAXRequired is returned when a fragment route is hit without the
// expected AJAX headers. Mount translates it into a 400 response.
var ErrAJAXRequired = errors.New("AJAX request required")

// FieldError describes a single request-body validation failure.
type FieldError struct {
	// Field is the dotted path of the failing field, or "__all__" for
	// body-level failures such as malformed JSON.
	Field string `json:"field"`

	// Message is a human-readable description of the failure.
	Message string `json:"message"`
}

// BodyValidationError is returned when a request body cannot be decoded or
// fails validation against the declared body type. Mount translates it into
// a 422 response carrying the field errors as JSON.
type BodyValidationError struct {
	Errors []FieldError
}

// Error implements the error interface.
func (e *BodyValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "request body validation failed"
	}
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "request body validation failed: " + strings.Join(parts, "; ")
}

// invalidJSONError builds the body-level error for malformed JSON input.
func invalidJSONError(err error) *BodyValidationError {
	return &BodyValidationError{Errors: []FieldError{{
		Field:   "__all__",
		Message: fmt.Sprintf("invalid JSON: %s", err),
	}}}
}
