package surrealschema

import (
	"errors"

	"github.com/dmitrymomot/surrealschema/pkg/surreal"
	"github.com/dmitrymomot/surrealschema/pkg/validator"
)

// ErrInvalidTable is returned by the table-scoped constructors when the table
// name is empty. The joined error also holds the validator.ValidationErrors
// describing the argument.
var ErrInvalidTable = errors.New("surrealschema: invalid table name")

// RecordIDOf accepts record ids whose table is exactly table.
func RecordIDOf(table string) (*validator.CustomSchema[surreal.RecordID], error) {
	return tableScoped[surreal.RecordID](surreal.KindRecordID, table)
}

// MustRecordIDOf is like RecordIDOf but panics on an invalid table name.
func MustRecordIDOf(table string) *validator.CustomSchema[surreal.RecordID] {
	return must(RecordIDOf(table))
}

// RecordIDRangeOf accepts record id ranges over table.
func RecordIDRangeOf(table string) (*validator.CustomSchema[surreal.RecordIDRange], error) {
	return tableScoped[surreal.RecordIDRange](surreal.KindRecordIDRange, table)
}

// MustRecordIDRangeOf is like RecordIDRangeOf but panics on an invalid table name.
func MustRecordIDRangeOf(table string) *validator.CustomSchema[surreal.RecordIDRange] {
	return must(RecordIDRangeOf(table))
}

// TableOf accepts references to table.
func TableOf(table string) (*validator.CustomSchema[surreal.Table], error) {
	return tableScoped[surreal.Table](surreal.KindTable, table)
}

// MustTableOf is like TableOf but panics on an invalid table name.
func MustTableOf(table string) *validator.CustomSchema[surreal.Table] {
	return must(TableOf(table))
}

// tableScoped checks the table argument once, at construction. The resulting
// schema compares table names exactly, without any case folding.
func tableScoped[T surreal.Tabled](kind surreal.Kind, table string) (*validator.CustomSchema[T], error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}

	match := func(v any) (T, bool) {
		t, ok := surreal.As[T](v)
		return t, ok && t.TableName() == table
	}

	return validator.Custom(match, "Value is not a valid "+kind.String()+" or is not from table: "+table,
		validator.WithTranslationKey(keyPrefix+kind.Key()+"_of_table"),
		validator.WithTranslationValues(map[string]any{
			"kind":  kind.String(),
			"table": table,
		}),
	), nil
}

func checkTable(table string) error {
	if err := validator.Apply(validator.RequiredString("table", table)); err != nil {
		return errors.Join(ErrInvalidTable, err)
	}
	return nil
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
