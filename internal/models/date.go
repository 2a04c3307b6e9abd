package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for transaction dates. Dates carry no time
// component; the day is the finest granularity the tracker works with.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time-of-day component. It marshals to
// and from "YYYY-MM-DD" strings.
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

// Today returns the current calendar date.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// String returns the date in wire format.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// InMonth reports whether the date falls within the calendar month of ref.
func (d Date) InMonth(ref Date) bool {
	return d.Year() == ref.Year() && d.Month() == ref.Month()
}

// MarshalJSON encodes the date as a quoted "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON decodes a quoted "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
