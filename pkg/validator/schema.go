package validator

import (
	"fmt"
	"maps"
	"slices"
)

// Schema validates an untyped value and reports every problem it finds.
// A nil or empty result means the value is valid. Implementations must not
// keep per-call state so a single schema can be shared between goroutines.
type Schema interface {
	Validate(value any) ValidationErrors
}

// SchemaFunc adapts a plain function to the Schema interface.
type SchemaFunc func(value any) ValidationErrors

func (f SchemaFunc) Validate(value any) ValidationErrors {
	return f(value)
}

// Parse validates value against s and returns nil or a ValidationErrors error.
func Parse(s Schema, value any) error {
	if s == nil {
		return ErrNilSchema
	}
	if errs := s.Validate(value); len(errs) > 0 {
		return errs
	}
	return nil
}

// IssueOption customizes the issue a schema reports on failure.
type IssueOption func(*ValidationError)

// WithCode overrides the issue code. The default is CodeCustom.
func WithCode(code string) IssueOption {
	return func(e *ValidationError) {
		if code != "" {
			e.Code = code
		}
	}
}

// WithTranslationKey sets the translation key of the issue.
func WithTranslationKey(key string) IssueOption {
	return func(e *ValidationError) {
		e.TranslationKey = key
	}
}

// WithTranslationValues merges values into the issue translation values.
func WithTranslationValues(values map[string]any) IssueOption {
	return func(e *ValidationError) {
		if len(values) == 0 {
			return
		}
		if e.TranslationValues == nil {
			e.TranslationValues = make(map[string]any, len(values))
		}
		maps.Copy(e.TranslationValues, values)
	}
}

func newIssue(message string, opts ...IssueOption) ValidationError {
	issue := ValidationError{
		Code:    CodeCustom,
		Message: message,
	}
	for _, opt := range opts {
		opt(&issue)
	}
	return issue
}

// cloneIssue copies the translation values so callers can not mutate the
// template issue held by a schema.
func cloneIssue(issue ValidationError) ValidationError {
	issue.Path = slices.Clone(issue.Path)
	issue.TranslationValues = maps.Clone(issue.TranslationValues)
	return issue
}

// RefineFunc inspects an already matched value and reports issues through ctx.
// Returning without adding issues means the value passed the refinement.
type RefineFunc[T any] func(value T, ctx *RefineContext)

// RefineContext collects the issues reported by refinements of a single
// Validate call.
type RefineContext struct {
	issues ValidationErrors
}

// AddIssue records issue. An empty code defaults to CodeCustom.
func (c *RefineContext) AddIssue(issue ValidationError) {
	if issue.Code == "" {
		issue.Code = CodeCustom
	}
	c.issues = append(c.issues, issue)
}

// Merge records errs located under prefix.
func (c *RefineContext) Merge(errs ValidationErrors, prefix ...string) {
	c.issues = append(c.issues, errs.WithPrefix(prefix...)...)
}

// Check validates value with s, records its issues under prefix and reports
// whether the value was valid.
func (c *RefineContext) Check(s Schema, value any, prefix ...string) bool {
	errs := s.Validate(value)
	if len(errs) == 0 {
		return true
	}
	c.Merge(errs, prefix...)
	return false
}

// Issues returns the issues recorded so far.
func (c *RefineContext) Issues() ValidationErrors {
	return c.issues
}

// CustomSchema validates values recognized by a match function and
// optionally refines the matched value further.
type CustomSchema[T any] struct {
	match   func(any) (T, bool)
	issue   ValidationError
	refines []RefineFunc[T]
}

// Custom builds a schema from a match function and a failure message. match
// reports whether the value is acceptable and returns it typed for the
// refinements. A failed match produces exactly one issue at the current path.
func Custom[T any](match func(any) (T, bool), message string, opts ...IssueOption) *CustomSchema[T] {
	if match == nil {
		panic(fmt.Errorf("validator: custom schema %q: %w", message, ErrNilSchema))
	}
	return &CustomSchema[T]{
		match: match,
		issue: newIssue(message, opts...),
	}
}

// SuperRefine returns a copy of s that also runs fn on every matched value.
// Refinements never run when the match fails.
func (s *CustomSchema[T]) SuperRefine(fn RefineFunc[T]) *CustomSchema[T] {
	if fn == nil {
		return s
	}
	refines := make([]RefineFunc[T], 0, len(s.refines)+1)
	refines = append(refines, s.refines...)
	refines = append(refines, fn)
	return &CustomSchema[T]{
		match:   s.match,
		issue:   s.issue,
		refines: refines,
	}
}

func (s *CustomSchema[T]) Validate(value any) ValidationErrors {
	typed, ok := s.match(value)
	if !ok {
		return ValidationErrors{cloneIssue(s.issue)}
	}
	if len(s.refines) == 0 {
		return nil
	}

	ctx := &RefineContext{}
	for _, fn := range s.refines {
		fn(typed, ctx)
	}
	return ctx.Issues()
}
