package surreal

// Kind identifies a SurrealDB value type.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindDecimal
	KindDuration
	KindFuture
	KindGeometryPoint
	KindGeometryLine
	KindGeometryPolygon
	KindGeometryMultiPoint
	KindGeometryMultiLine
	KindGeometryMultiPolygon
	KindGeometryCollection
	KindBoundIncluded
	KindBoundExcluded
	KindRange
	KindRecordIDRange
	KindRecordID
	KindStringRecordID
	KindTable
	KindUUID
)

var kindNames = [...]string{
	KindInvalid:              "Invalid",
	KindDecimal:              "Decimal",
	KindDuration:             "Duration",
	KindFuture:               "Future",
	KindGeometryPoint:        "GeometryPoint",
	KindGeometryLine:         "GeometryLine",
	KindGeometryPolygon:      "GeometryPolygon",
	KindGeometryMultiPoint:   "GeometryMultiPoint",
	KindGeometryMultiLine:    "GeometryMultiLine",
	KindGeometryMultiPolygon: "GeometryMultiPolygon",
	KindGeometryCollection:   "GeometryCollection",
	KindBoundIncluded:        "BoundIncluded",
	KindBoundExcluded:        "BoundExcluded",
	KindRange:                "Range",
	KindRecordIDRange:        "RecordIdRange",
	KindRecordID:             "RecordId",
	KindStringRecordID:       "StringRecordId",
	KindTable:                "Table",
	KindUUID:                 "Uuid",
}

// String returns the SurrealDB name of the kind, e.g. "RecordId".
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[KindInvalid]
}

// Key returns a lowercase snake_case form of the kind used for message keys.
func (k Kind) Key() string {
	name := k.String()
	out := make([]byte, 0, len(name)+4)
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				out = append(out, '_')
			}
			c += 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}

// Value is implemented by every SurrealDB value type in this package.
type Value interface {
	Kind() Kind
}

// Tabled is implemented by values scoped to a table.
type Tabled interface {
	Value
	TableName() string
}

// As returns v as T when v holds a T or a non-nil *T.
func As[T Value](v any) (T, bool) {
	switch x := v.(type) {
	case T:
		return x, true
	case *T:
		if x != nil {
			return *x, true
		}
	}
	var zero T
	return zero, false
}
