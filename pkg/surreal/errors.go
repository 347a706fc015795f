package surreal

import "errors"

var (
	// ErrInvalidDecimal is returned when a decimal literal cannot be parsed.
	ErrInvalidDecimal = errors.New("invalid decimal")

	// ErrInvalidDuration is returned when a duration literal cannot be parsed.
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrInvalidRecordID is returned when a string record id has no table or id part.
	ErrInvalidRecordID = errors.New("invalid record id")

	// ErrInvalidUUID is returned when a UUID string cannot be parsed.
	ErrInvalidUUID = errors.New("invalid uuid")

	// ErrEmptyTable is returned when a table name is empty.
	ErrEmptyTable = errors.New("table name is empty")
)
