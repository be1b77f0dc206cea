// Package fiscal computes U.S. government fiscal-year (FY) and calendar-year
// (CY) positions for an arbitrary date, and counts workdays, weekends, and
// observed federal holidays over inclusive date ranges.
//
// A fiscal year is named for its ending calendar year: FY2026 runs
// 2025-10-01 through 2026-09-30.
package fiscal

import (
	"fmt"
	"time"

	"github.com/budgetops/fiscalpulse/internal/calendar"
)

// Year binds a single anchor date and derives every calendar- and
// fiscal-year position from it. It is immutable after construction and safe
// for concurrent use; all methods are pure reads.
type Year struct {
	anchor       time.Time
	calendarYear int
	fiscalYear   int
	cyStart      time.Time
	cyEnd        time.Time
	fyStart      time.Time
	fyEnd        time.Time
}

// New constructs a Year bound to the given anchor date. The anchor is
// truncated to midnight UTC; the zero time.Time is rejected.
func New(anchor time.Time) (*Year, error) {
	if anchor.IsZero() {
		return nil, fmt.Errorf("%w: anchor date required", calendar.ErrInvalidInput)
	}
	d := calendar.Truncate(anchor)
	fy := YearOf(d)
	return &Year{
		anchor:       d,
		calendarYear: d.Year(),
		fiscalYear:   fy,
		cyStart:      calendar.Date(d.Year(), time.January, 1),
		cyEnd:        calendar.Date(d.Year(), time.December, 31),
		fyStart:      calendar.Date(fy-1, time.October, 1),
		fyEnd:        calendar.Date(fy, time.September, 30),
	}, nil
}

// YearOf returns the fiscal year containing d: the calendar year itself
// through September, the following year from October on.
func YearOf(d time.Time) int {
	if d.Month() >= time.October {
		return d.Year() + 1
	}
	return d.Year()
}

// AnchorDate returns the bound date.
func (y *Year) AnchorDate() time.Time { return y.anchor }

// CalendarYear returns the calendar year of the anchor date.
func (y *Year) CalendarYear() int { return y.calendarYear }

// FiscalYear returns the fiscal year containing the anchor date.
func (y *Year) FiscalYear() int { return y.fiscalYear }

// BeginningFiscalYear (BBFY) returns the calendar year the fiscal window opens in.
func (y *Year) BeginningFiscalYear() int { return y.fiscalYear - 1 }

// EndingFiscalYear (EBFY) returns the calendar year the fiscal window closes in.
func (y *Year) EndingFiscalYear() int { return y.fiscalYear }

// CalendarBounds returns Jan 1 and Dec 31 of the calendar year, inclusive.
func (y *Year) CalendarBounds() (start, end time.Time) { return y.cyStart, y.cyEnd }

// FiscalBounds returns Oct 1 of BBFY and Sep 30 of EBFY, inclusive.
func (y *Year) FiscalBounds() (start, end time.Time) { return y.fyStart, y.fyEnd }

// CalendarDayOfYear returns the 1-indexed ordinal of the anchor within its
// calendar year.
func (y *Year) CalendarDayOfYear() int { return y.anchor.YearDay() }

// CalendarDaysInYear returns 365 or 366 for the calendar year.
func (y *Year) CalendarDaysInYear() int { return calendar.DaysInYear(y.calendarYear) }

// CalendarElapsedDays counts days from Jan 1 through the anchor, inclusive.
func (y *Year) CalendarElapsedDays() int { return y.CalendarDayOfYear() }

// CalendarRemainingDays counts days after the anchor through Dec 31.
func (y *Year) CalendarRemainingDays() int { return y.CalendarDaysInYear() - y.CalendarElapsedDays() }

// CalendarElapsedMonths counts whole months completed since Jan 1.
func (y *Year) CalendarElapsedMonths() int {
	// anchor is validated at construction, the delta cannot fail
	months, _ := calendar.MonthDelta(y.cyStart, y.anchor)
	return months
}

// CalendarRemainingMonths counts whole months until Dec 31.
func (y *Year) CalendarRemainingMonths() int {
	months, _ := calendar.MonthDelta(y.anchor, y.cyEnd)
	return months
}

// CalendarPercentElapsed returns the share of the calendar year completed,
// in [0, 100].
func (y *Year) CalendarPercentElapsed() float64 {
	return float64(y.CalendarElapsedDays()) / float64(y.CalendarDaysInYear()) * 100.0
}

// FiscalDayOfYear returns the 1-indexed ordinal of the anchor within the
// fiscal window (Oct 1 = 1).
func (y *Year) FiscalDayOfYear() int { return calendar.DaysBetween(y.fyStart, y.anchor) }

// FiscalDaysInYear returns the length of the fiscal window: 366 when the
// February inside it belongs to a leap year, otherwise 365.
func (y *Year) FiscalDaysInYear() int { return calendar.DaysBetween(y.fyStart, y.fyEnd) }

// FiscalMonthNumber returns the fiscal-calendar month index, October = 1
// through September = 12.
func (y *Year) FiscalMonthNumber() int {
	return (int(y.anchor.Month())+2)%12 + 1
}

// FiscalElapsedDays counts days from Oct 1 through the anchor, inclusive.
func (y *Year) FiscalElapsedDays() int { return y.FiscalDayOfYear() }

// FiscalRemainingDays counts days after the anchor through Sep 30.
func (y *Year) FiscalRemainingDays() int { return y.FiscalDaysInYear() - y.FiscalElapsedDays() }

// FiscalElapsedMonths counts whole fiscal months completed since Oct 1.
func (y *Year) FiscalElapsedMonths() int { return y.FiscalMonthNumber() - 1 }

// FiscalRemainingMonths counts whole fiscal months until Sep 30.
func (y *Year) FiscalRemainingMonths() int { return 12 - y.FiscalMonthNumber() }

// FiscalPercentElapsed returns the share of the fiscal year completed,
// in [0, 100].
func (y *Year) FiscalPercentElapsed() float64 {
	return float64(y.FiscalElapsedDays()) / float64(y.FiscalDaysInYear()) * 100.0
}

// IsCalendarYearStart reports whether the anchor is Jan 1.
func (y *Year) IsCalendarYearStart() bool { return y.anchor.Equal(y.cyStart) }

// IsCalendarYearEnd reports whether the anchor is Dec 31.
func (y *Year) IsCalendarYearEnd() bool { return y.anchor.Equal(y.cyEnd) }

// IsFiscalYearStart reports whether the anchor is Oct 1.
func (y *Year) IsFiscalYearStart() bool { return y.anchor.Equal(y.fyStart) }

// IsFiscalYearEnd reports whether the anchor is Sep 30.
func (y *Year) IsFiscalYearEnd() bool { return y.anchor.Equal(y.fyEnd) }
