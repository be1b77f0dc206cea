package models

import "time"

// Snapshot is the full fiscal/calendar position of one anchor date, as
// computed by the fiscal-year engine. It is the service-layer result model;
// the API maps it onto a response DTO.
type Snapshot struct {
	Date                time.Time
	CalendarYear        int
	FiscalYear          int
	BeginningFiscalYear int
	EndingFiscalYear    int

	CalendarStart time.Time
	CalendarEnd   time.Time
	FiscalStart   time.Time
	FiscalEnd     time.Time

	CalendarDayOfYear       int
	CalendarDaysInYear      int
	CalendarElapsedDays     int
	CalendarRemainingDays   int
	CalendarElapsedMonths   int
	CalendarRemainingMonths int
	CalendarPercentElapsed  float64

	FiscalDayOfYear       int
	FiscalDaysInYear      int
	FiscalMonthNumber     int
	FiscalElapsedDays     int
	FiscalRemainingDays   int
	FiscalElapsedMonths   int
	FiscalRemainingMonths int
	FiscalPercentElapsed  float64

	IsCalendarYearStart bool
	IsCalendarYearEnd   bool
	IsFiscalYearStart   bool
	IsFiscalYearEnd     bool
}
