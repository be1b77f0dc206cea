// Package holiday resolves U.S. federal holidays against a single government
// fiscal year (Oct 1 of FY-1 through Sep 30 of FY).
package holiday

import (
	"fmt"
	"time"

	"github.com/budgetops/fiscalpulse/internal/calendar"
)

// Basis selects which holiday date a point query compares against.
type Basis int

const (
	// Observed compares against the business-observed date (weekend-shifted).
	Observed Basis = iota
	// Actual compares against the legally defined date.
	Actual
)

// Record pairs a holiday's legally defined date with the date on which it
// is observed for business purposes.
type Record struct {
	Name     string    `json:"name"`
	Actual   time.Time `json:"actual"`
	Observed time.Time `json:"observed"`
}

// rule describes one federal holiday: the formula producing its legal date
// for a fiscal-year window and, where applicable, the first fiscal year in
// which the holiday is recognized.
//
// The formula receives both calendar years spanned by the window: startYear
// (Oct-Dec holidays) and endYear (Jan-Sep holidays).
type rule struct {
	name    string
	firstFY int
	actual  func(startYear, endYear int) time.Time
}

// rules is the static federal holiday table, in fiscal-year order.
// It is never mutated after init.
var rules = []rule{
	{name: "Columbus Day", actual: func(s, _ int) time.Time {
		return calendar.NthWeekdayOfMonth(s, time.October, time.Monday, 2)
	}},
	{name: "Veterans Day", actual: func(s, _ int) time.Time {
		return calendar.Date(s, time.November, 11)
	}},
	{name: "Thanksgiving Day", actual: func(s, _ int) time.Time {
		return calendar.NthWeekdayOfMonth(s, time.November, time.Thursday, 4)
	}},
	{name: "Christmas Day", actual: func(s, _ int) time.Time {
		return calendar.Date(s, time.December, 25)
	}},
	{name: "New Year's Day", actual: func(_, e int) time.Time {
		return calendar.Date(e, time.January, 1)
	}},
	{name: "Martin Luther King Jr. Day", actual: func(_, e int) time.Time {
		return calendar.NthWeekdayOfMonth(e, time.January, time.Monday, 3)
	}},
	{name: "Washington's Birthday", actual: func(_, e int) time.Time {
		return calendar.NthWeekdayOfMonth(e, time.February, time.Monday, 3)
	}},
	{name: "Memorial Day", actual: func(_, e int) time.Time {
		return calendar.LastWeekdayOfMonth(e, time.May, time.Monday)
	}},
	// Signed into law in June 2021; not recognized before FY2021.
	{name: "Juneteenth National Independence Day", firstFY: 2021, actual: func(_, e int) time.Time {
		return calendar.Date(e, time.June, 19)
	}},
	{name: "Independence Day", actual: func(_, e int) time.Time {
		return calendar.Date(e, time.July, 4)
	}},
	{name: "Labor Day", actual: func(_, e int) time.Time {
		return calendar.NthWeekdayOfMonth(e, time.September, time.Monday, 1)
	}},
}

// ObservedDate applies the federal weekend shift to a legal holiday date:
// a Saturday holiday is observed the preceding Friday, a Sunday holiday the
// following Monday. The shift is applied once and never cascades.
func ObservedDate(actual time.Time) time.Time {
	switch actual.Weekday() {
	case time.Saturday:
		return actual.AddDate(0, 0, -1)
	case time.Sunday:
		return actual.AddDate(0, 0, 1)
	default:
		return actual
	}
}

// Engine resolves the observed federal holidays of exactly one fiscal year.
// It is immutable after construction and safe for concurrent use.
type Engine struct {
	fiscalYear int
	fyStart    time.Time
	fyEnd      time.Time
	records    map[string]Record
}

// NewEngine builds an Engine for the given fiscal year (named for its ending
// calendar year). The holiday set is computed once here.
func NewEngine(fiscalYear int) (*Engine, error) {
	if fiscalYear <= 0 {
		return nil, fmt.Errorf("%w: fiscal year must be a positive integer, got %d", calendar.ErrInvalidInput, fiscalYear)
	}
	e := &Engine{
		fiscalYear: fiscalYear,
		fyStart:    calendar.Date(fiscalYear-1, time.October, 1),
		fyEnd:      calendar.Date(fiscalYear, time.September, 30),
	}
	e.records = e.resolve()
	return e, nil
}

// resolve walks the rule table and keeps every holiday whose actual date
// falls inside the fiscal window. Membership is keyed on the actual date;
// an observed date outside the window does not exclude a holiday, and an
// observed date inside the window does not admit one.
func (e *Engine) resolve() map[string]Record {
	out := make(map[string]Record, len(rules))
	for _, r := range rules {
		if r.firstFY > 0 && e.fiscalYear < r.firstFY {
			continue
		}
		actual := r.actual(e.fiscalYear-1, e.fiscalYear)
		if actual.Before(e.fyStart) || actual.After(e.fyEnd) {
			continue
		}
		out[r.name] = Record{Name: r.name, Actual: actual, Observed: ObservedDate(actual)}
	}
	return out
}

// FiscalYear returns the fiscal year this engine is scoped to.
func (e *Engine) FiscalYear() int { return e.fiscalYear }

// Bounds returns the inclusive fiscal window (Oct 1 FY-1, Sep 30 FY).
func (e *Engine) Bounds() (start, end time.Time) { return e.fyStart, e.fyEnd }

// Holidays returns the resolved holiday set, keyed by holiday name.
// The returned map is a copy; callers may modify it freely.
func (e *Engine) Holidays() map[string]Record {
	out := make(map[string]Record, len(e.records))
	for name, rec := range e.records {
		out[name] = rec
	}
	return out
}

// Lookup returns the record whose date (per basis) equals d.
func (e *Engine) Lookup(d time.Time, basis Basis) (Record, bool) {
	day := calendar.Truncate(d)
	for _, rec := range e.records {
		if basis == Actual && rec.Actual.Equal(day) {
			return rec, true
		}
		if basis == Observed && rec.Observed.Equal(day) {
			return rec, true
		}
	}
	return Record{}, false
}

// IsHoliday reports whether d is a federal holiday of this fiscal year,
// compared against the observed or actual date per basis.
func (e *Engine) IsHoliday(d time.Time, basis Basis) bool {
	_, ok := e.Lookup(d, basis)
	return ok
}

// IsWeekend reports whether d falls on a Saturday or Sunday.
func (e *Engine) IsWeekend(d time.Time) bool {
	return calendar.IsWeekend(d)
}
