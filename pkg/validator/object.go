package validator

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
)

// FieldGetter lets a value expose named fields to an object schema without
// being converted to a map.
type FieldGetter interface {
	Field(name string) (any, bool)
}

// FieldLister is implemented by field getters that can enumerate their
// fields. Strict object schemas reject getters that do not implement it.
type FieldLister interface {
	FieldGetter
	FieldNames() []string
}

// ObjectSchema validates the named fields of a map[string]any or a FieldGetter.
type ObjectSchema struct {
	fields map[string]Schema
	keys   []string
	strict bool
}

// Object returns a schema validating each field with its schema. A missing
// field is validated as nil. Fields without a schema are ignored unless the
// schema is made strict.
func Object(fields map[string]Schema) *ObjectSchema {
	for name, s := range fields {
		if s == nil {
			panic(fmt.Errorf("validator: object field %q: %w", name, ErrNilSchema))
		}
	}
	return &ObjectSchema{
		fields: maps.Clone(fields),
		keys:   slices.Sorted(maps.Keys(fields)),
	}
}

// Strict returns a copy of s that also reports fields it does not know.
func (s *ObjectSchema) Strict() *ObjectSchema {
	return &ObjectSchema{
		fields: s.fields,
		keys:   s.keys,
		strict: true,
	}
}

// Extend returns a copy of s with additional or replaced fields.
func (s *ObjectSchema) Extend(fields map[string]Schema) *ObjectSchema {
	merged := maps.Clone(s.fields)
	if merged == nil {
		merged = make(map[string]Schema, len(fields))
	}
	maps.Copy(merged, fields)
	out := Object(merged)
	out.strict = s.strict
	return out
}

func (s *ObjectSchema) Validate(value any) ValidationErrors {
	var (
		get   func(string) (any, bool)
		names []string
	)
	switch obj := value.(type) {
	case map[string]any:
		get = func(name string) (any, bool) {
			v, ok := obj[name]
			return v, ok
		}
		if s.strict {
			names = slices.Collect(maps.Keys(obj))
		}
	case FieldGetter:
		if isNilPointer(obj) {
			return ValidationErrors{notAnObject()}
		}
		get = obj.Field
		if s.strict {
			lister, ok := obj.(FieldLister)
			if !ok {
				return ValidationErrors{{
					Code:           CodeUnrecognizedKeys,
					Message:        "Unable to list keys of object",
					TranslationKey: "validation.unlisted_keys",
				}}
			}
			names = lister.FieldNames()
		}
	default:
		return ValidationErrors{notAnObject()}
	}

	var errs ValidationErrors
	for _, name := range s.keys {
		v, _ := get(name)
		errs = append(errs, s.fields[name].Validate(v).WithPrefix(name)...)
	}

	if s.strict {
		var unknown []string
		for _, name := range names {
			if _, ok := s.fields[name]; !ok {
				unknown = append(unknown, name)
			}
		}
		if len(unknown) > 0 {
			slices.Sort(unknown)
			keys := "'" + strings.Join(unknown, "', '") + "'"
			errs = append(errs, ValidationError{
				Code:           CodeUnrecognizedKeys,
				Message:        "Unrecognized key(s) in object: " + keys,
				TranslationKey: "validation.unrecognized_keys",
				TranslationValues: map[string]any{
					"keys": keys,
				},
			})
		}
	}

	return errs
}

func notAnObject() ValidationError {
	return ValidationError{
		Code:           CodeInvalidType,
		Message:        "Expected object",
		TranslationKey: "validation.object",
	}
}

// isNilPointer reports whether v is a typed nil pointer. Getters with value
// receivers panic when called through one.
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
