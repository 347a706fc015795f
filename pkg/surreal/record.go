package surreal

import (
	"fmt"
	"strings"
)

// RecordID identifies a single record: a table name plus an id of any
// SurrealDB type (string, number, array, object, UUID).
type RecordID struct {
	Table string
	ID    any
}

// NewRecordID returns the record id table:id.
func NewRecordID(table string, id any) RecordID {
	return RecordID{Table: table, ID: id}
}

func (RecordID) Kind() Kind          { return KindRecordID }
func (r RecordID) TableName() string { return r.Table }

func (r RecordID) String() string {
	return r.Table + ":" + fmt.Sprint(r.ID)
}

// StringRecordID is a record id held in its textual "table:id" form and
// parsed by the database.
type StringRecordID struct {
	Value string
}

// NewStringRecordID wraps s without parsing it.
func NewStringRecordID(s string) StringRecordID {
	return StringRecordID{Value: s}
}

func (StringRecordID) Kind() Kind { return KindStringRecordID }

func (s StringRecordID) String() string { return s.Value }

// Parse splits the textual form into a RecordID with a string id.
func (s StringRecordID) Parse() (RecordID, error) {
	table, id, ok := strings.Cut(s.Value, ":")
	if !ok || table == "" || id == "" {
		return RecordID{}, fmt.Errorf("%w: %q", ErrInvalidRecordID, s.Value)
	}
	return RecordID{Table: table, ID: id}, nil
}

// Table is a reference to a table by name.
type Table struct {
	Name string
}

// NewTable returns a table reference. It fails when name is empty.
func NewTable(name string) (Table, error) {
	if name == "" {
		return Table{}, ErrEmptyTable
	}
	return Table{Name: name}, nil
}

func (Table) Kind() Kind          { return KindTable }
func (t Table) TableName() string { return t.Name }

func (t Table) String() string { return t.Name }
