package surreal

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Decimal is an arbitrary precision decimal. No precision is lost on the way
// to or from the database.
type Decimal struct {
	decimal.Decimal
}

// NewDecimal parses a decimal literal such as "3.14159265358979323846".
func NewDecimal(s string) (Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Decimal{}, errors.Join(fmt.Errorf("%w: %q", ErrInvalidDecimal, s), err)
	}
	return Decimal{Decimal: d}, nil
}

// MustDecimal is like NewDecimal but panics on error.
func MustDecimal(s string) Decimal {
	d, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DecimalFrom wraps an existing decimal.
func DecimalFrom(d decimal.Decimal) Decimal {
	return Decimal{Decimal: d}
}

func (Decimal) Kind() Kind { return KindDecimal }

// Duration is a SurrealDB duration.
type Duration struct {
	time.Duration
}

// NewDuration wraps a time.Duration.
func NewDuration(d time.Duration) Duration {
	return Duration{Duration: d}
}

func (Duration) Kind() Kind { return KindDuration }

const (
	day  = 24 * time.Hour
	week = 7 * day
	year = 365 * day
)

type durationUnit struct {
	name string
	size time.Duration
}

// Ordered from the largest unit down.
var durationUnits = []durationUnit{
	{"y", year},
	{"w", week},
	{"d", day},
	{"h", time.Hour},
	{"m", time.Minute},
	{"s", time.Second},
	{"ms", time.Millisecond},
	{"µs", time.Microsecond},
	{"ns", time.Nanosecond},
}

// Multi-byte unit names come first so "ms" is never read as "m" followed by "s".
var durationParseUnits = []durationUnit{
	{"ms", time.Millisecond},
	{"µs", time.Microsecond},
	{"us", time.Microsecond},
	{"ns", time.Nanosecond},
	{"y", year},
	{"w", week},
	{"d", day},
	{"h", time.Hour},
	{"m", time.Minute},
	{"s", time.Second},
}

// ParseDuration parses a SurrealQL duration literal such as "1h30m" or "2w3d".
func ParseDuration(s string) (Duration, error) {
	if s == "" {
		return Duration{}, fmt.Errorf("%w: empty", ErrInvalidDuration)
	}

	var total time.Duration
	rest := s
	for rest != "" {
		i := 0
		for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
			i++
		}
		if i == 0 {
			return Duration{}, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
		}

		var n int64
		for _, c := range rest[:i] {
			if n > (math.MaxInt64-9)/10 {
				return Duration{}, fmt.Errorf("%w: %q overflows", ErrInvalidDuration, s)
			}
			n = n*10 + int64(c-'0')
		}
		rest = rest[i:]

		matched := false
		for _, u := range durationParseUnits {
			if !strings.HasPrefix(rest, u.name) {
				continue
			}
			if n > math.MaxInt64/int64(u.size) {
				return Duration{}, fmt.Errorf("%w: %q overflows", ErrInvalidDuration, s)
			}
			total += time.Duration(n) * u.size
			if total < 0 {
				return Duration{}, fmt.Errorf("%w: %q overflows", ErrInvalidDuration, s)
			}
			rest = rest[len(u.name):]
			matched = true
			break
		}
		if !matched {
			return Duration{}, fmt.Errorf("%w: %q has unknown unit", ErrInvalidDuration, s)
		}
	}

	return Duration{Duration: total}, nil
}

// String renders the duration in SurrealQL form, largest units first.
func (d Duration) String() string {
	if d.Duration == 0 {
		return "0ns"
	}

	var b strings.Builder
	// The magnitude is unsigned so math.MinInt64 negates without overflow.
	rest := uint64(d.Duration)
	if d.Duration < 0 {
		b.WriteByte('-')
		rest = -rest
	}
	for _, u := range durationUnits {
		size := uint64(u.size)
		if n := rest / size; n > 0 {
			fmt.Fprintf(&b, "%d%s", n, u.name)
			rest -= n * size
		}
	}
	return b.String()
}

// Future is a value computed by the database when the record is read.
type Future struct {
	Body string
}

// NewFuture returns a future for the given SurrealQL expression.
func NewFuture(body string) Future {
	return Future{Body: body}
}

func (Future) Kind() Kind { return KindFuture }

func (f Future) String() string {
	return "<future> { " + f.Body + " }"
}

// UUID is a SurrealDB uuid value.
type UUID struct {
	uuid.UUID
}

// NewUUID returns a random version 4 UUID.
func NewUUID() UUID {
	return UUID{UUID: uuid.New()}
}

// ParseUUID parses the canonical textual form of a UUID.
func ParseUUID(s string) (UUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errors.Join(ErrInvalidUUID, err)
	}
	return UUID{UUID: u}, nil
}

func (UUID) Kind() Kind { return KindUUID }
