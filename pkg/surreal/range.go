package surreal

import "fmt"

// Bound is one end of a Range. A nil Bound means the range is unbounded on
// that side.
type Bound interface {
	Value
	BoundValue() any
}

// BoundIncluded is an endpoint that belongs to the range.
type BoundIncluded struct {
	Value any
}

func (BoundIncluded) Kind() Kind        { return KindBoundIncluded }
func (b BoundIncluded) BoundValue() any { return b.Value }

// BoundExcluded is an endpoint that lies just outside the range.
type BoundExcluded struct {
	Value any
}

func (BoundExcluded) Kind() Kind        { return KindBoundExcluded }
func (b BoundExcluded) BoundValue() any { return b.Value }

// Range is an interval between two optional bounds.
type Range struct {
	Beg Bound
	End Bound
}

// NewRange returns a range between beg and end. Either may be nil.
func NewRange(beg, end Bound) Range {
	return Range{Beg: beg, End: end}
}

func (Range) Kind() Kind { return KindRange }

// String renders the range in SurrealQL form: "1..5", "1>..=5", "..".
func (r Range) String() string {
	var beg, end string
	switch b := r.Beg.(type) {
	case BoundIncluded:
		beg = fmt.Sprint(b.Value)
	case BoundExcluded:
		beg = fmt.Sprint(b.Value) + ">"
	}
	switch b := r.End.(type) {
	case BoundIncluded:
		end = "=" + fmt.Sprint(b.Value)
	case BoundExcluded:
		end = fmt.Sprint(b.Value)
	}
	return beg + ".." + end
}

// RecordIDRange selects the records of a table whose ids fall in Range.
type RecordIDRange struct {
	Table string
	Range Range
}

// NewRecordIDRange returns a record id range over table.
func NewRecordIDRange(table string, beg, end Bound) RecordIDRange {
	return RecordIDRange{Table: table, Range: NewRange(beg, end)}
}

func (RecordIDRange) Kind() Kind          { return KindRecordIDRange }
func (r RecordIDRange) TableName() string { return r.Table }

func (r RecordIDRange) String() string {
	return r.Table + ":" + r.Range.String()
}
