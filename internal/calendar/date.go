// Package calendar provides a timezone-less calendar date.
//
// Every Date is held as midnight UTC, so adding days or measuring the
// distance between two dates can never be shifted by a local offset or a
// daylight-saving transition.
package calendar

import (
	"fmt"
	"time"
)

// Layout is the ISO-8601 calendar date format used on every boundary.
const Layout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// Date is a calendar day (year, month, day) with no time-of-day or zone
type Date struct {
	t time.Time
}

// New builds a Date. Out-of-range values are normalized the way time.Date
// does it (e.g. April 31 becomes May 1).
func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime returns the calendar day of t as seen in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return New(y, m, d)
}

// Parse parses a strict YYYY-MM-DD string.
func Parse(s string) (Date, error) {
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return Date{}, fmt.Errorf("invalid calendar date %q: %w", s, err)
	}
	return Date{t: t}, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysBetween returns the signed number of whole days from a to b.
// It is positive when b is later than a.
func DaysBetween(a, b Date) int {
	return int((b.t.Unix() - a.t.Unix()) / secondsPerDay)
}

// AddDays returns the date n days later (earlier when n is negative).
func (d Date) AddDays(n int) Date {
	y, m, day := d.t.Date()
	return New(y, m, day+n)
}

func (d Date) Year() int { return d.t.Year() }

func (d Date) Month() time.Month { return d.t.Month() }

func (d Date) Day() int { return d.t.Day() }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

func (d Date) After(other Date) bool { return d.t.After(other.t) }

func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

// Time returns midnight UTC of d.
func (d Date) Time() time.Time { return d.t }

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return d.t.Format(Layout)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty value yields
// the zero Date.
func (d *Date) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
