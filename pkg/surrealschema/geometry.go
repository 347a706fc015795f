package surrealschema

import (
	"github.com/dmitrymomot/surrealschema/pkg/surreal"
	"github.com/dmitrymomot/surrealschema/pkg/validator"
)

var (
	GeometryPoint        = leaf[surreal.GeometryPoint](surreal.KindGeometryPoint)
	GeometryLine         = leaf[surreal.GeometryLine](surreal.KindGeometryLine)
	GeometryPolygon      = leaf[surreal.GeometryPolygon](surreal.KindGeometryPolygon)
	GeometryMultiPoint   = leaf[surreal.GeometryMultiPoint](surreal.KindGeometryMultiPoint)
	GeometryMultiLine    = leaf[surreal.GeometryMultiLine](surreal.KindGeometryMultiLine)
	GeometryMultiPolygon = leaf[surreal.GeometryMultiPolygon](surreal.KindGeometryMultiPolygon)
	GeometryCollection   = leaf[surreal.GeometryCollection](surreal.KindGeometryCollection)
)

// Geometry accepts any of the seven geometry variants.
var Geometry = validator.Custom(asGeometry, "Value is not a valid Geometry",
	validator.WithTranslationKey(keyPrefix+"geometry"),
	validator.WithTranslationValues(map[string]any{"kind": "Geometry"}),
)

// asGeometry goes through the concrete variants so that a nil pointer to a
// variant is rejected like any other malformed value.
func asGeometry(v any) (surreal.Geometry, bool) {
	if g, ok := surreal.As[surreal.GeometryPoint](v); ok {
		return g, true
	}
	if g, ok := surreal.As[surreal.GeometryLine](v); ok {
		return g, true
	}
	if g, ok := surreal.As[surreal.GeometryPolygon](v); ok {
		return g, true
	}
	if g, ok := surreal.As[surreal.GeometryMultiPoint](v); ok {
		return g, true
	}
	if g, ok := surreal.As[surreal.GeometryMultiLine](v); ok {
		return g, true
	}
	if g, ok := surreal.As[surreal.GeometryMultiPolygon](v); ok {
		return g, true
	}
	if g, ok := surreal.As[surreal.GeometryCollection](v); ok {
		return g, true
	}
	return nil, false
}
