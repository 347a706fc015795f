// Package surrealschema provides validator schemas for the SurrealDB value
// types in package surreal.
//
// Every value type has a ready-made schema (Decimal, Duration, Future, the
// Geometry variants, RecordID, StringRecordID, RecordIDRange, Table, UUID)
// that accepts instances of that type and rejects anything else with a single
// issue such as "Value is not a valid Decimal".
//
// Table-scoped constructors (RecordIDOf, RecordIDRangeOf, TableOf, RecordOf)
// additionally require an exact table name match. The table name is checked
// when the schema is built, never during validation.
//
// Wrapper types are validated recursively. BoundIncluded and BoundExcluded
// validate the wrapped value with a caller supplied schema; Range does the
// same for both endpoints:
//
//	ages := surrealschema.Range(validator.Number(), validator.Number())
//
//	r := surreal.NewRange(surreal.BoundIncluded{Value: 18}, surreal.BoundExcluded{Value: "65"})
//	errs := ages.Validate(r)
//	// errs[0].Path == []string{"end", "value"}
//
// Record and RecordOf validate any object (a map[string]any or a
// validator.FieldGetter such as Entity) by its "id" field:
//
//	users := surrealschema.MustRecordOf("user")
//	err := validator.Parse(users, map[string]any{"id": surreal.NewRecordID("user", "tobie")})
//
// # Messages
//
// Issues carry translation keys ("surreal.invalid_record_id_of_table") and
// values ("kind", "table"). A Catalog translates them using the built-in
// English and German YAML locales or locales supplied by the caller:
//
//	catalog, _ := surrealschema.NewCatalog(surrealschema.WithLogger(log))
//	localized := catalog.Localize(catalog.Match(r.Header.Get("Accept-Language")), errs)
//
// All schemas are immutable and safe for concurrent use.
package surrealschema
