package validator

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError pairs a field name with a human-readable message. It is the
// ready-made error type for callers who do not need a custom one; any type
// works as the validator error parameter.
type FieldError struct {
	Field   string
	Message string
}

// Err builds a FieldError.
func Err(field, message string) FieldError {
	return FieldError{Field: field, Message: message}
}

// FieldErrors is an ordered collection of field errors that satisfies the
// error interface, so a whole validation outcome can travel as one error
// value.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range fe {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether any error was recorded for the field.
func (fe FieldErrors) Has(field string) bool {
	for _, err := range fe {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for the field, in order.
func (fe FieldErrors) Get(field string) []string {
	var messages []string
	for _, err := range fe {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Fields returns the distinct field names in first-seen order.
func (fe FieldErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range fe {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (fe FieldErrors) IsEmpty() bool {
	return len(fe) == 0
}

// AsFieldErrors extracts FieldErrors from an error, or nil when the error is
// not one.
func AsFieldErrors(err error) FieldErrors {
	if err == nil {
		return nil
	}

	var fieldErrs FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs
	}

	return nil
}

func IsFieldErrors(err error) bool {
	if err == nil {
		return false
	}

	var fieldErrs FieldErrors
	return errors.As(err, &fieldErrs)
}
