package dto

// Dates in all response DTOs are formatted as YYYY-MM-DD strings. The DTO
// layer is the API contract; internal models keep time.Time values.

// SnapshotResponse is the JSON body of GET /api/v1/fiscal.
type SnapshotResponse struct {
	Date                string `json:"date" example:"2025-08-27"`
	CalendarYear        int    `json:"calendar_year" example:"2025"`
	FiscalYear          int    `json:"fiscal_year" example:"2025"`
	BeginningFiscalYear int    `json:"beginning_fiscal_year" example:"2024"`
	EndingFiscalYear    int    `json:"ending_fiscal_year" example:"2025"`

	CalendarStart string `json:"calendar_start" example:"2025-01-01"`
	CalendarEnd   string `json:"calendar_end" example:"2025-12-31"`
	FiscalStart   string `json:"fiscal_start" example:"2024-10-01"`
	FiscalEnd     string `json:"fiscal_end" example:"2025-09-30"`

	CalendarDayOfYear       int     `json:"calendar_day_of_year" example:"239"`
	CalendarDaysInYear      int     `json:"calendar_days_in_year" example:"365"`
	CalendarElapsedDays     int     `json:"calendar_elapsed_days" example:"239"`
	CalendarRemainingDays   int     `json:"calendar_remaining_days" example:"126"`
	CalendarElapsedMonths   int     `json:"calendar_elapsed_months" example:"7"`
	CalendarRemainingMonths int     `json:"calendar_remaining_months" example:"4"`
	CalendarPercentElapsed  float64 `json:"calendar_percent_elapsed" example:"65.47"`

	FiscalDayOfYear       int     `json:"fiscal_day_of_year" example:"331"`
	FiscalDaysInYear      int     `json:"fiscal_days_in_year" example:"365"`
	FiscalMonthNumber     int     `json:"fiscal_month_number" example:"11"`
	FiscalElapsedDays     int     `json:"fiscal_elapsed_days" example:"331"`
	FiscalRemainingDays   int     `json:"fiscal_remaining_days" example:"34"`
	FiscalElapsedMonths   int     `json:"fiscal_elapsed_months" example:"10"`
	FiscalRemainingMonths int     `json:"fiscal_remaining_months" example:"1"`
	FiscalPercentElapsed  float64 `json:"fiscal_percent_elapsed" example:"90.68"`

	IsCalendarYearStart bool `json:"is_calendar_year_start" example:"false"`
	IsCalendarYearEnd   bool `json:"is_calendar_year_end" example:"false"`
	IsFiscalYearStart   bool `json:"is_fiscal_year_start" example:"false"`
	IsFiscalYearEnd     bool `json:"is_fiscal_year_end" example:"false"`
}

// HolidayResponse is one resolved holiday inside a fiscal-year window.
type HolidayResponse struct {
	Name     string `json:"name" example:"Independence Day"`
	Actual   string `json:"actual" example:"2025-07-04"`
	Observed string `json:"observed" example:"2025-07-04"`
}

// HolidaysResponse is the JSON body of GET /api/v1/holidays.
type HolidaysResponse struct {
	FiscalYear int               `json:"fiscal_year" example:"2025"`
	Count      int               `json:"count" example:"11"`
	Holidays   []HolidayResponse `json:"holidays"`
}

// DateStatusResponse is the JSON body of GET /api/v1/holidays/check.
type DateStatusResponse struct {
	Date        string `json:"date" example:"2025-07-04"`
	FiscalYear  int    `json:"fiscal_year" example:"2025"`
	Basis       string `json:"basis" example:"observed"`
	Weekend     bool   `json:"weekend" example:"false"`
	Holiday     bool   `json:"holiday" example:"true"`
	HolidayName string `json:"holiday_name,omitempty" example:"Independence Day"`
}

// RangeCountsResponse is the JSON body of GET /api/v1/range.
type RangeCountsResponse struct {
	Start    string `json:"start" example:"2025-08-01"`
	End      string `json:"end" example:"2025-08-31"`
	Days     int    `json:"days" example:"31"`
	Workdays int    `json:"workdays" example:"21"`
	Weekends int    `json:"weekends" example:"10"`
	Holidays int    `json:"holidays" example:"0"`
}
