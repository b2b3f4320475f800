package apperr

import (
	"fmt"
	"sort"
	"strings"
)

// Detail keys used in error response bodies.
const (
	MissingFieldsKey   = "missing-fields"
	ExclusiveFieldsKey = "mutually-exclusive-fields"
	InvalidFieldsKey   = "invalid-fields"
)

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// DetailedError is implemented by errors that render as a keyed list of field names.
type DetailedError interface {
	error
	DetailKey() string
	DetailFields() []string
}

// RequiredFieldError lists every required field that was absent.
type RequiredFieldError struct {
	Fields []string
}

func NewRequiredFields(fields ...string) *RequiredFieldError {
	return &RequiredFieldError{Fields: sortedCopy(fields)}
}

func (e *RequiredFieldError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

func (e *RequiredFieldError) DetailKey() string { return MissingFieldsKey }

func (e *RequiredFieldError) DetailFields() []string { return e.Fields }

// ExclusiveFieldsError lists fields that were supplied together but may not be.
type ExclusiveFieldsError struct {
	Fields []string
}

func NewExclusiveFields(fields ...string) *ExclusiveFieldsError {
	return &ExclusiveFieldsError{Fields: sortedCopy(fields)}
}

func (e *ExclusiveFieldsError) Error() string {
	return "mutually exclusive fields supplied together: " + strings.Join(e.Fields, ", ")
}

func (e *ExclusiveFieldsError) DetailKey() string { return ExclusiveFieldsKey }

func (e *ExclusiveFieldsError) DetailFields() []string { return e.Fields }

// FieldError collects fields whose values failed a domain check.
type FieldError struct {
	Problems map[string]error
}

func (e *FieldError) Error() string {
	var b strings.Builder
	b.WriteString("invalid fields: ")
	for i, f := range e.DetailFields() {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %v", f, e.Problems[f])
	}
	return b.String()
}

func (e *FieldError) DetailKey() string { return InvalidFieldsKey }

func (e *FieldError) DetailFields() []string {
	fields := make([]string, 0, len(e.Problems))
	for f := range e.Problems {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

type ConflictError struct {
	Resource string
	ID       string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Resource, e.ID)
}

func NewConflict(resource, id string) *ConflictError {
	return &ConflictError{Resource: resource, ID: id}
}

func sortedCopy(fields []string) []string {
	out := append([]string(nil), fields...)
	sort.Strings(out)
	return out
}
