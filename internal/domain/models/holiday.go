package models

import "time"

// Holiday is one resolved federal holiday inside a fiscal-year window,
// carrying both its legal date and its business-observed date.
type Holiday struct {
	Name     string
	Actual   time.Time
	Observed time.Time
}

// DateStatus answers the point queries for a single date: which fiscal year
// it belongs to, whether it is a weekend, and whether it is a federal
// holiday on the requested basis (observed or actual).
type DateStatus struct {
	Date        time.Time
	FiscalYear  int
	Weekend     bool
	Holiday     bool
	HolidayName string // empty unless Holiday is true
}

// RangeCounts aggregates the counting operations over one inclusive date
// range: total days, Mon-Fri workdays net of observed holidays, weekend
// days, and distinct observed holiday dates.
type RangeCounts struct {
	Start    time.Time
	End      time.Time
	Days     int
	Workdays int
	Weekends int
	Holidays int
}
