// Package dateutil provides day-granularity calendar dates. Streak and
// rollover decisions compare whole calendar days, never clock times, so
// everything here normalizes away the time-of-day component.
package dateutil

import (
	"fmt"
	"time"
)

// Date is a calendar day with no time component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Today returns the current local calendar day.
func Today() Date {
	return DateOf(time.Now())
}

// DateOf truncates t to its local calendar day.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate parses an ISO-8601 calendar date (YYYY-MM-DD).
func ParseDate(value string) (Date, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Equal reports whether two dates name the same calendar day.
func (d Date) Equal(other Date) bool {
	return d == other
}

// AddDays returns the date n calendar days after d (before, if n is
// negative), carrying across month and year boundaries.
func (d Date) AddDays(n int) Date {
	return DateOf(d.utc().AddDate(0, 0, n))
}

// utc anchors the date at UTC midnight so day arithmetic is immune to
// DST transitions shortening or lengthening a local day.
func (d Date) utc() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// DayDifference returns the absolute number of whole calendar days between
// a and b. DayDifference(d, d) == 0. The result is computed on true
// calendar dates, so adjacent days across month or year boundaries always
// yield 1. Using the absolute distance means a system clock that moved
// backwards behaves like a nearby day instead of producing garbage; the
// direction of the jump is not recoverable here.
func DayDifference(a, b Date) int {
	days := int(b.utc().Sub(a.utc()).Hours() / 24)
	if days < 0 {
		return -days
	}
	return days
}

// MarshalJSON encodes the date as an ISO-8601 string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes an ISO-8601 date string.
func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid date JSON %s", data)
	}
	parsed, err := ParseDate(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
