package surrealschema

import (
	"github.com/dmitrymomot/surrealschema/pkg/surreal"
	"github.com/dmitrymomot/surrealschema/pkg/validator"
)

// Record accepts any object whose "id" field is a record id. Other fields are
// neither required nor rejected; call Strict on the schema to reject them.
var Record = validator.Object(map[string]validator.Schema{
	SegmentID: RecordID,
})

// RecordOf accepts objects whose "id" is a record id of table.
func RecordOf(table string) (*validator.ObjectSchema, error) {
	id, err := RecordIDOf(table)
	if err != nil {
		return nil, err
	}
	return validator.Object(map[string]validator.Schema{
		SegmentID: id,
	}), nil
}

// MustRecordOf is like RecordOf but panics on an invalid table name.
func MustRecordOf(table string) *validator.ObjectSchema {
	return must(RecordOf(table))
}

// Entity is the smallest value accepted by Record: a record with only an id.
// Embed it in a struct to let Record validate that struct. Entity does not
// list its fields, so a strict schema only accepts structs that implement
// validator.FieldLister themselves.
type Entity struct {
	ID surreal.RecordID
}

// NewEntity returns an entity identified by table:id.
func NewEntity(table string, id any) Entity {
	return Entity{ID: surreal.NewRecordID(table, id)}
}

// Field implements validator.FieldGetter.
func (e Entity) Field(name string) (any, bool) {
	if name == SegmentID {
		return e.ID, true
	}
	return nil, false
}
