// Package validator provides a small, composable validation engine: issues
// with structural paths and translation metadata, eager Rule checks, and
// Schema values that can be nested to validate untyped data.
//
// # Architecture
//
// Core building blocks:
//   - ValidationError   – a single issue: code, path, message and i18n key
//   - ValidationErrors  – slice type that implements the error interface
//   - Rule / Apply      – eager boolean checks, used for constructor arguments
//   - Schema            – anything with Validate(any) ValidationErrors
//   - Custom            – schema from a match function and a failure message
//   - SuperRefine       – extra checks on a matched value that may emit many issues
//   - Object            – named fields of a map or a FieldGetter
//
// Primitive schemas String, NonEmptyString, Number, NumberOf and Absent cover
// leaf Go values. Absent accepts only nil and stands in for an undefined value.
//
// Schemas are immutable once built. Methods such as SuperRefine, Strict and
// Extend return new schemas, so a schema can be shared between goroutines and
// reused for any number of Validate calls.
//
// # Usage
//
//	positive := validator.NumberOf[int]().SuperRefine(func(n int, ctx *validator.RefineContext) {
//	    if n <= 0 {
//	        ctx.AddIssue(validator.ValidationError{Message: "must be positive"})
//	    }
//	})
//
//	user := validator.Object(map[string]validator.Schema{
//	    "name": validator.NonEmptyString(),
//	    "age":  positive,
//	}).Strict()
//
//	if err := validator.Parse(user, input); err != nil {
//	    for _, issue := range validator.ExtractValidationErrors(err) {
//	        fmt.Println(issue.Field, issue.Message)
//	    }
//	}
//
// # Paths
//
// Composite schemas re-emit the issues of their children with the child's
// location prepended (see ValidationErrors.WithPrefix). Every other field of
// an issue is kept, so a caller sees the original code, message and
// translation data at the exact nested location.
//
// # Error Handling
//
// ValidationErrors implements error, so you can use errors.As (or
// ExtractValidationErrors) to detect validation problems while preserving rich
// details. errors.Is(err, ErrValidationFailed) matches any of them.
// Misconfigured schemas, such as a nil match function or a nil field
// schema, panic at construction time.
package validator
