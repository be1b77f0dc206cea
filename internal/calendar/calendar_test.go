package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestIsLeapYear(t *testing.T) {
	cases := []struct {
		year int
		want bool
	}{
		{2024, true},
		{2025, false},
		{2000, true},  // divisible by 400
		{1900, false}, // century, not by 400
		{2100, false},
		{2400, true},
	}
	for _, tc := range cases {
		if got := IsLeapYear(tc.year); got != tc.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tc.year, got, tc.want)
		}
	}
}

func TestDaysInYear(t *testing.T) {
	if got := DaysInYear(2024); got != 366 {
		t.Fatalf("DaysInYear(2024) = %d, want 366", got)
	}
	if got := DaysInYear(2025); got != 365 {
		t.Fatalf("DaysInYear(2025) = %d, want 365", got)
	}
}

func TestDayOfYear(t *testing.T) {
	cases := []struct {
		d    time.Time
		want int
	}{
		{Date(2025, time.January, 1), 1},
		{Date(2025, time.December, 31), 365},
		{Date(2024, time.December, 31), 366},
		{Date(2025, time.March, 1), 60},
		{Date(2024, time.March, 1), 61}, // after leap day
		{Date(2025, time.August, 27), 239},
	}
	for _, tc := range cases {
		got, err := DayOfYear(tc.d)
		if err != nil {
			t.Fatalf("DayOfYear(%v): %v", tc.d, err)
		}
		if got != tc.want {
			t.Errorf("DayOfYear(%v) = %d, want %d", tc.d.Format(time.DateOnly), got, tc.want)
		}
	}

	if _, err := DayOfYear(time.Time{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero date, got %v", err)
	}
}

func TestMonthDelta(t *testing.T) {
	cases := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"same month", Date(2025, time.August, 1), Date(2025, time.August, 27), 0},
		{"forward within year", Date(2025, time.January, 1), Date(2025, time.August, 27), 7},
		{"backward", Date(2025, time.August, 27), Date(2025, time.January, 1), -7},
		{"across year end", Date(2024, time.October, 1), Date(2025, time.September, 30), 11},
		{"multi year", Date(2023, time.March, 15), Date(2025, time.March, 15), 24},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MonthDelta(tc.a, tc.b)
			if err != nil {
				t.Fatalf("MonthDelta: %v", err)
			}
			if got != tc.want {
				t.Fatalf("MonthDelta = %d, want %d", got, tc.want)
			}
		})
	}

	if _, err := MonthDelta(time.Time{}, Date(2025, time.January, 1)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero date, got %v", err)
	}
}

func TestWeekdayOf(t *testing.T) {
	wd, err := WeekdayOf(Date(2025, time.August, 27))
	if err != nil {
		t.Fatalf("WeekdayOf: %v", err)
	}
	if wd != time.Wednesday {
		t.Fatalf("2025-08-27 should be Wednesday, got %v", wd)
	}
	if _, err := WeekdayOf(time.Time{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero date, got %v", err)
	}
}

func TestIsWeekend(t *testing.T) {
	if !IsWeekend(Date(2025, time.July, 5)) { // Saturday
		t.Fatalf("2025-07-05 should be a weekend")
	}
	if !IsWeekend(Date(2025, time.July, 6)) { // Sunday
		t.Fatalf("2025-07-06 should be a weekend")
	}
	if IsWeekend(Date(2025, time.July, 4)) { // Friday
		t.Fatalf("2025-07-04 should not be a weekend")
	}
}

func TestNthWeekdayOfMonth(t *testing.T) {
	cases := []struct {
		name    string
		year    int
		month   time.Month
		weekday time.Weekday
		n       int
		want    time.Time
	}{
		{"3rd Monday Jan 2025", 2025, time.January, time.Monday, 3, Date(2025, time.January, 20)},
		{"3rd Monday Feb 2025", 2025, time.February, time.Monday, 3, Date(2025, time.February, 17)},
		{"1st Monday Sep 2025", 2025, time.September, time.Monday, 1, Date(2025, time.September, 1)},
		{"2nd Monday Oct 2024", 2024, time.October, time.Monday, 2, Date(2024, time.October, 14)},
		{"4th Thursday Nov 2024", 2024, time.November, time.Thursday, 4, Date(2024, time.November, 28)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NthWeekdayOfMonth(tc.year, tc.month, tc.weekday, tc.n)
			if !got.Equal(tc.want) {
				t.Fatalf("got %s, want %s", got.Format(time.DateOnly), tc.want.Format(time.DateOnly))
			}
		})
	}
}

func TestLastWeekdayOfMonth(t *testing.T) {
	cases := []struct {
		name    string
		year    int
		month   time.Month
		weekday time.Weekday
		want    time.Time
	}{
		{"last Monday May 2025", 2025, time.May, time.Monday, Date(2025, time.May, 26)},
		{"last Monday May 2024", 2024, time.May, time.Monday, Date(2024, time.May, 27)},
		{"last Friday Dec 2025", 2025, time.December, time.Friday, Date(2025, time.December, 26)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := LastWeekdayOfMonth(tc.year, tc.month, tc.weekday)
			if !got.Equal(tc.want) {
				t.Fatalf("got %s, want %s", got.Format(time.DateOnly), tc.want.Format(time.DateOnly))
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	loc := time.FixedZone("X", -5*3600)
	ts := time.Date(2025, time.August, 27, 23, 30, 0, 0, loc) // 04:30 UTC next day
	got := Truncate(ts)
	if !got.Equal(Date(2025, time.August, 28)) {
		t.Fatalf("Truncate should normalize via UTC, got %s", got.Format(time.RFC3339))
	}
}

func TestDaysBetween(t *testing.T) {
	if got := DaysBetween(Date(2025, time.August, 1), Date(2025, time.August, 31)); got != 31 {
		t.Fatalf("August span = %d, want 31", got)
	}
	if got := DaysBetween(Date(2025, time.August, 27), Date(2025, time.August, 27)); got != 1 {
		t.Fatalf("one-day span = %d, want 1", got)
	}
	if got := DaysBetween(Date(2024, time.October, 1), Date(2025, time.September, 30)); got != 365 {
		t.Fatalf("FY2025 span = %d, want 365", got)
	}
	if got := DaysBetween(Date(2023, time.October, 1), Date(2024, time.September, 30)); got != 366 {
		t.Fatalf("FY2024 span = %d, want 366", got)
	}
}
