package validator

var (
	stringSchema = Custom(func(v any) (string, bool) {
		s, ok := v.(string)
		return s, ok
	}, "Expected string",
		WithCode(CodeInvalidType),
		WithTranslationKey("validation.string"),
	)

	nonEmptyStringSchema = Custom(func(v any) (string, bool) {
		s, ok := v.(string)
		return s, ok && s != ""
	}, "Expected non-empty string",
		WithCode(CodeInvalidType),
		WithTranslationKey("validation.non_empty_string"),
	)

	numberSchema = Custom(func(v any) (any, bool) {
		return v, isNumber(v)
	}, "Expected number",
		WithCode(CodeInvalidType),
		WithTranslationKey("validation.number"),
	)

	absentSchema = Custom(func(v any) (any, bool) {
		return v, v == nil
	}, "Expected value to be absent",
		WithCode(CodeInvalidType),
		WithTranslationKey("validation.absent"),
	)
)

// String accepts any Go string.
func String() Schema { return stringSchema }

// NonEmptyString accepts strings of at least one byte.
func NonEmptyString() Schema { return nonEmptyStringSchema }

// Number accepts any Go integer or floating point value.
func Number() Schema { return numberSchema }

// NumberOf accepts values of exactly the numeric type T.
func NumberOf[T Numeric]() *CustomSchema[T] {
	return Custom(func(v any) (T, bool) {
		n, ok := v.(T)
		return n, ok
	}, "Expected number",
		WithCode(CodeInvalidType),
		WithTranslationKey("validation.number"),
	)
}

// Absent accepts only nil, the Go counterpart of an undefined value.
func Absent() Schema { return absentSchema }

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}
