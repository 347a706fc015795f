package validator

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Issue codes.
const (
	CodeCustom           = "custom"
	CodeInvalidType      = "invalid_type"
	CodeUnrecognizedKeys = "unrecognized_keys"
)

// ValidationError represents a single validation error with translation support.
// Path locates the offending value inside the validated structure; Field is
// the same path joined with dots.
type ValidationError struct {
	Code              string
	Field             string
	Path              []string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// WithPrefix returns a copy of the error located under the given path segments.
func (e ValidationError) WithPrefix(segments ...string) ValidationError {
	if len(segments) == 0 {
		return e
	}
	path := make([]string, 0, len(segments)+len(e.Path))
	path = append(path, segments...)
	path = append(path, e.Path...)
	e.Path = path
	e.Field = strings.Join(path, ".")
	return e
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		if err.Field == "" {
			parts = append(parts, err.Message)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is reports whether target is ErrValidationFailed.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// WithPrefix returns a copy of the errors re-pathed under segments.
// Every other field of each error is kept as is.
func (ve ValidationErrors) WithPrefix(segments ...string) ValidationErrors {
	if len(ve) == 0 {
		return nil
	}
	out := make(ValidationErrors, len(ve))
	for i, err := range ve {
		out[i] = err.WithPrefix(segments...)
	}
	return out
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// HasPath reports whether an error is located exactly at path.
func (ve ValidationErrors) HasPath(path ...string) bool {
	for _, err := range ve {
		if slices.Equal(err.Path, path) {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	var errors ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errors = append(errors, rule.Error)
		}
	}

	if errors.IsEmpty() {
		return nil
	}

	return errors
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
