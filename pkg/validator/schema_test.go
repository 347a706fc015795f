package validator_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/surrealschema/pkg/validator"
)

type celsius float64

func matchCelsius(v any) (celsius, bool) {
	c, ok := v.(celsius)
	return c, ok
}

func TestCustom(t *testing.T) {
	t.Parallel()

	s := validator.Custom(matchCelsius, "Value is not a valid Celsius",
		validator.WithTranslationKey("validation.celsius"),
		validator.WithTranslationValues(map[string]any{"kind": "Celsius"}),
	)

	t.Run("match passes", func(t *testing.T) {
		assert.Empty(t, s.Validate(celsius(21.5)))
		assert.NoError(t, validator.Parse(s, celsius(0)))
	})

	t.Run("mismatch yields exactly one issue at the root", func(t *testing.T) {
		errs := s.Validate(21.5)
		require.Len(t, errs, 1)
		assert.Equal(t, validator.CodeCustom, errs[0].Code)
		assert.Equal(t, "Value is not a valid Celsius", errs[0].Message)
		assert.Empty(t, errs[0].Path)
		assert.Equal(t, "validation.celsius", errs[0].TranslationKey)
		assert.Equal(t, "Celsius", errs[0].TranslationValues["kind"])
	})

	t.Run("issues are independent copies", func(t *testing.T) {
		first := s.Validate(nil)
		first[0].TranslationValues["kind"] = "changed"
		second := s.Validate(nil)
		assert.Equal(t, "Celsius", second[0].TranslationValues["kind"])
	})

	t.Run("nil match panics", func(t *testing.T) {
		assert.Panics(t, func() {
			validator.Custom[int](nil, "broken")
		})
	})
}

func TestSuperRefine(t *testing.T) {
	t.Parallel()

	base := validator.Custom(matchCelsius, "Value is not a valid Celsius")
	aboveZero := base.SuperRefine(func(c celsius, ctx *validator.RefineContext) {
		if c <= 0 {
			ctx.AddIssue(validator.ValidationError{Message: "must be above zero"})
		}
	})

	t.Run("refinement runs after a match", func(t *testing.T) {
		assert.Empty(t, aboveZero.Validate(celsius(5)))

		errs := aboveZero.Validate(celsius(-5))
		require.Len(t, errs, 1)
		assert.Equal(t, "must be above zero", errs[0].Message)
		assert.Equal(t, validator.CodeCustom, errs[0].Code)
	})

	t.Run("refinement is skipped when the match fails", func(t *testing.T) {
		errs := aboveZero.Validate("hot")
		require.Len(t, errs, 1)
		assert.Equal(t, "Value is not a valid Celsius", errs[0].Message)
	})

	t.Run("base schema is not modified", func(t *testing.T) {
		assert.Empty(t, base.Validate(celsius(-5)))
	})

	t.Run("nil refinement is ignored", func(t *testing.T) {
		assert.Same(t, base, base.SuperRefine(nil))
	})

	t.Run("check merges nested issues under a prefix", func(t *testing.T) {
		wrapped := validator.Custom(func(v any) (map[string]any, bool) {
			m, ok := v.(map[string]any)
			return m, ok
		}, "Expected map").SuperRefine(func(m map[string]any, ctx *validator.RefineContext) {
			if ctx.Check(validator.Number(), m["value"], "value") {
				return
			}
			ctx.AddIssue(validator.ValidationError{Message: "second"})
		})

		assert.Empty(t, wrapped.Validate(map[string]any{"value": 1}))

		errs := wrapped.Validate(map[string]any{"value": "1"})
		require.Len(t, errs, 2)
		assert.Equal(t, []string{"value"}, errs[0].Path)
		assert.Equal(t, validator.CodeInvalidType, errs[0].Code)
		assert.Equal(t, "second", errs[1].Message)
	})
}

func TestPrimitives(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		schema validator.Schema
		valid  []any
		reject []any
	}{
		{
			name:   "string",
			schema: validator.String(),
			valid:  []any{"", "person"},
			reject: []any{nil, 1, []byte("x")},
		},
		{
			name:   "non-empty string",
			schema: validator.NonEmptyString(),
			valid:  []any{"person", " "},
			reject: []any{"", nil, 42},
		},
		{
			name:   "number",
			schema: validator.Number(),
			valid:  []any{5, int8(1), uint64(7), 1.5, float32(2)},
			reject: []any{"5", nil, true},
		},
		{
			name:   "number of int",
			schema: validator.NumberOf[int](),
			valid:  []any{5, -1},
			reject: []any{int64(5), 5.0, "5"},
		},
		{
			name:   "absent",
			schema: validator.Absent(),
			valid:  []any{nil},
			reject: []any{0, "", false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range tt.valid {
				assert.Empty(t, tt.schema.Validate(v), "%#v should be valid", v)
			}
			for _, v := range tt.reject {
				errs := tt.schema.Validate(v)
				require.Len(t, errs, 1, "%#v should be rejected", v)
				assert.Equal(t, validator.CodeInvalidType, errs[0].Code)
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, validator.Parse(nil, 1), validator.ErrNilSchema)

	err := validator.Parse(validator.String(), 1)
	require.Error(t, err)
	assert.True(t, validator.IsValidationError(err))
	assert.ErrorIs(t, err, validator.ErrValidationFailed)
	assert.NotErrorIs(t, validator.Parse(nil, 1), validator.ErrValidationFailed)

	fn := validator.SchemaFunc(func(v any) validator.ValidationErrors { return nil })
	assert.NoError(t, validator.Parse(fn, "anything"))
}

func TestSchemaConcurrentUse(t *testing.T) {
	t.Parallel()

	s := validator.Object(map[string]validator.Schema{"name": validator.String()})

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				assert.Empty(t, s.Validate(map[string]any{"name": "x"}))
				return
			}
			assert.Len(t, s.Validate(map[string]any{"name": i}), 1)
		}()
	}
	wg.Wait()
}
