package surrealschema

import (
	"github.com/dmitrymomot/surrealschema/pkg/surreal"
	"github.com/dmitrymomot/surrealschema/pkg/validator"
)

// Path segments used when nested issues are re-emitted.
const (
	SegmentValue = "value"
	SegmentBeg   = "beg"
	SegmentEnd   = "end"
	SegmentID    = "id"
)

const keyPrefix = "surreal.invalid_"

var (
	Decimal        = leaf[surreal.Decimal](surreal.KindDecimal)
	Duration       = leaf[surreal.Duration](surreal.KindDuration)
	Future         = leaf[surreal.Future](surreal.KindFuture)
	RecordIDRange  = leaf[surreal.RecordIDRange](surreal.KindRecordIDRange)
	RecordID       = leaf[surreal.RecordID](surreal.KindRecordID)
	StringRecordID = leaf[surreal.StringRecordID](surreal.KindStringRecordID)
	Table          = leaf[surreal.Table](surreal.KindTable)
	UUID           = leaf[surreal.UUID](surreal.KindUUID)
)

// leaf accepts values of type T only; any other value yields a single issue
// naming the expected kind.
func leaf[T surreal.Value](kind surreal.Kind) *validator.CustomSchema[T] {
	return validator.Custom(surreal.As[T], "Value is not a valid "+kind.String(),
		validator.WithTranslationKey(keyPrefix+kind.Key()),
		validator.WithTranslationValues(map[string]any{"kind": kind.String()}),
	)
}
