package surrealschema

import (
	"fmt"

	"github.com/dmitrymomot/surrealschema/pkg/surreal"
	"github.com/dmitrymomot/surrealschema/pkg/validator"
)

// BoundIncluded accepts inclusive bounds whose wrapped value passes inner.
// Issues from inner are reported under the "value" segment.
func BoundIncluded(inner validator.Schema) *validator.CustomSchema[surreal.BoundIncluded] {
	return bound[surreal.BoundIncluded](surreal.KindBoundIncluded, inner)
}

// BoundExcluded accepts exclusive bounds whose wrapped value passes inner.
// Issues from inner are reported under the "value" segment.
func BoundExcluded(inner validator.Schema) *validator.CustomSchema[surreal.BoundExcluded] {
	return bound[surreal.BoundExcluded](surreal.KindBoundExcluded, inner)
}

func bound[T surreal.Bound](kind surreal.Kind, inner validator.Schema) *validator.CustomSchema[T] {
	if inner == nil {
		panic(fmt.Errorf("surrealschema: %s: %w", kind, validator.ErrNilSchema))
	}
	return leaf[T](kind).SuperRefine(func(b T, ctx *validator.RefineContext) {
		ctx.Check(inner, b.BoundValue(), SegmentValue)
	})
}

// Range accepts ranges whose endpoints hold values passing beg and end.
//
// Each endpoint must be an inclusive bound, an exclusive bound or absent.
// Both endpoints are always checked, so a single call reports every problem.
// Issues are located under "beg" or "end" followed by "value".
func Range(beg, end validator.Schema) *validator.CustomSchema[surreal.Range] {
	begIncluded, begExcluded := BoundIncluded(beg), BoundExcluded(beg)
	endIncluded, endExcluded := BoundIncluded(end), BoundExcluded(end)

	return leaf[surreal.Range](surreal.KindRange).SuperRefine(func(r surreal.Range, ctx *validator.RefineContext) {
		ctx.Check(endpoint(r.Beg, begIncluded, begExcluded), r.Beg, SegmentBeg)
		ctx.Check(endpoint(r.End, endIncluded, endExcluded), r.End, SegmentEnd)
	})
}

// endpoint picks the schema matching the bound's kind. Anything that is
// neither bound kind must be absent.
func endpoint(b surreal.Bound, included, excluded validator.Schema) validator.Schema {
	if _, ok := surreal.As[surreal.BoundIncluded](b); ok {
		return included
	}
	if _, ok := surreal.As[surreal.BoundExcluded](b); ok {
		return excluded
	}
	return validator.Absent()
}
