// Package calendar provides the date primitives shared by the fiscal-year
// and federal-holiday engines: leap-year and day-of-year arithmetic, whole
// month deltas, weekday classification, and nth-weekday-of-month lookups.
//
// All dates are represented as time.Time values normalized to midnight UTC.
// The package never consults wall clocks or time zones; a zero time.Time is
// the only invalid input and is rejected with ErrInvalidInput.
package calendar

import (
	"errors"
	"time"
)

var (
	// ErrInvalidInput is returned when a date-taking operation receives the
	// zero time.Time, or when a fiscal-year integer is not positive.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidRange is returned by range-counting operations when start
	// is after end.
	ErrInvalidRange = errors.New("invalid range: start after end")
)

const Day = 24 * time.Hour

// Date builds a date-only value (midnight UTC) for the given civil date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Truncate normalizes any timestamp to its calendar date at midnight UTC.
func Truncate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsLeapYear reports whether year is a Gregorian leap year: divisible by 4,
// except century years not divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 366 for leap years, 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DayOfYear returns the 1-indexed ordinal day of d within its year.
func DayOfYear(d time.Time) (int, error) {
	if d.IsZero() {
		return 0, ErrInvalidInput
	}
	return Truncate(d).YearDay(), nil
}

// MonthDelta returns the whole-month difference from a to b, sign-aware:
// positive when b is in a later month than a, negative when earlier.
func MonthDelta(a, b time.Time) (int, error) {
	if a.IsZero() || b.IsZero() {
		return 0, ErrInvalidInput
	}
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month()), nil
}

// WeekdayOf returns the weekday of d.
func WeekdayOf(d time.Time) (time.Weekday, error) {
	if d.IsZero() {
		return 0, ErrInvalidInput
	}
	return d.Weekday(), nil
}

// IsWeekend reports whether d falls on a Saturday or Sunday.
func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// NthWeekdayOfMonth returns the n-th occurrence (1-indexed) of weekday in
// the given month, e.g. the 3rd Monday of January.
func NthWeekdayOfMonth(year int, month time.Month, weekday time.Weekday, n int) time.Time {
	first := Date(year, month, 1)
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, offset+(n-1)*7)
}

// LastWeekdayOfMonth returns the final occurrence of weekday in the given
// month, e.g. the last Monday of May.
func LastWeekdayOfMonth(year int, month time.Month, weekday time.Weekday) time.Time {
	last := Date(year, month+1, 1).AddDate(0, 0, -1)
	offset := (int(last.Weekday()) - int(weekday) + 7) % 7
	return last.AddDate(0, 0, -offset)
}

// DaysBetween returns the inclusive day count of the span [a, b].
// Both ends are truncated to dates first.
func DaysBetween(a, b time.Time) int {
	return int(Truncate(b).Sub(Truncate(a))/Day) + 1
}
