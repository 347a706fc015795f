package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed matches any ValidationErrors with errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNilSchema is returned when a schema is composed from a nil schema.
	ErrNilSchema = errors.New("schema is nil")
)
