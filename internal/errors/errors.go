package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Common error types for the identity server
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")

	// Registration errors
	ErrDuplicateEmail = errors.New("email already exists")

	// Token errors. All three collapse to one unauthorized response at
	// the classification boundary so callers cannot tell them apart.
	ErrInvalidToken       = errors.New("invalid token")
	ErrMissingCredentials = errors.New("missing credentials")
	ErrUnknownSubject     = errors.New("unknown token subject")

	// General errors
	ErrInternal = errors.New("internal error")
)

// ValidationError carries per-field violation messages collected during
// input validation. Messages for a field keep the order the rules were
// evaluated in; a field may carry more than one message.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError creates an empty ValidationError ready to collect
// field violations.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add appends a violation message for the given field.
func (v *ValidationError) Add(field, message string) {
	v.Fields[field] = append(v.Fields[field], message)
}

// HasErrors reports whether any field has at least one violation.
func (v *ValidationError) HasErrors() bool {
	return len(v.Fields) > 0
}

func (v *ValidationError) Error() string {
	parts := make([]string, 0, len(v.Fields))
	for field, messages := range v.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(messages, "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
