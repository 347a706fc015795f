package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/surrealschema/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "id",
			Message: "is required",
		})
		assert.Equal(t, "validation failed: id: is required", errs.Error())
	})

	t.Run("omits the field of root level errors", func(t *testing.T) {
		errs := validator.ValidationErrors{
			{Message: "Value is not a valid Decimal"},
			{Field: "end.value", Message: "Expected number"},
		}
		assert.Equal(t, "validation failed: Value is not a valid Decimal; end.value: Expected number", errs.Error())
	})
}

func TestValidationErrors_WithPrefix(t *testing.T) {
	t.Run("prepends segments and keeps other fields", func(t *testing.T) {
		errs := validator.ValidationErrors{{
			Code:              validator.CodeInvalidType,
			Message:           "Expected number",
			TranslationKey:    "validation.number",
			TranslationValues: map[string]any{"kind": "number"},
		}}

		prefixed := errs.WithPrefix("value").WithPrefix("end")
		require.Len(t, prefixed, 1)
		assert.Equal(t, []string{"end", "value"}, prefixed[0].Path)
		assert.Equal(t, "end.value", prefixed[0].Field)
		assert.Equal(t, validator.CodeInvalidType, prefixed[0].Code)
		assert.Equal(t, "Expected number", prefixed[0].Message)
		assert.Equal(t, "validation.number", prefixed[0].TranslationKey)
		assert.Equal(t, map[string]any{"kind": "number"}, prefixed[0].TranslationValues)
	})

	t.Run("does not modify the original", func(t *testing.T) {
		errs := validator.ValidationErrors{{Path: []string{"value"}, Field: "value"}}
		_ = errs.WithPrefix("beg")
		assert.Equal(t, []string{"value"}, errs[0].Path)
	})

	t.Run("nil stays nil", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Nil(t, errs.WithPrefix("value"))
	})

	t.Run("no segments is a no-op", func(t *testing.T) {
		errs := validator.ValidationErrors{{Path: []string{"id"}, Field: "id"}}
		assert.Equal(t, errs, errs.WithPrefix())
	})
}

func TestValidationErrors_Lookup(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "id", Path: []string{"id"}, Message: "is required"})
	errs.Add(validator.ValidationError{Field: "id", Path: []string{"id"}, Message: "invalid format"})
	errs.Add(validator.ValidationError{Field: "beg.value", Path: []string{"beg", "value"}, Message: "Expected number"})

	assert.True(t, errs.Has("id"))
	assert.False(t, errs.Has("name"))
	assert.True(t, errs.HasPath("beg", "value"))
	assert.False(t, errs.HasPath("beg"))
	assert.False(t, errs.IsEmpty())
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("table", "person"),
			validator.Rule{
				Check: func() bool { return true },
				Error: validator.ValidationError{Field: "id", Message: "required"},
			},
		)
		assert.NoError(t, err)
	})

	t.Run("collects failing rules", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("table", "   "),
			validator.Rule{
				Check: func() bool { return false },
				Error: validator.ValidationError{Field: "id", Message: "required"},
			},
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, "validation.required", verrs[0].TranslationKey)
		assert.Equal(t, []string{"table"}, verrs[0].Path)
		assert.True(t, verrs.Has("id"))
	})

	t.Run("handles empty rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("extracts wrapped ValidationErrors", func(t *testing.T) {
		errs := validator.ValidationErrors{{Field: "id", Message: "is required"}}
		wrapped := fmt.Errorf("decode record: %w", errs)

		extracted := validator.ExtractValidationErrors(wrapped)
		require.NotNil(t, extracted)
		assert.True(t, extracted.Has("id"))
		assert.True(t, validator.IsValidationError(wrapped))
	})

	t.Run("returns nil for other errors", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("regular error")))
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(errors.New("regular error")))
		assert.False(t, validator.IsValidationError(nil))
	})
}
