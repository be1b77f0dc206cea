package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/budgetops/fiscalpulse/internal/calendar"
	"github.com/budgetops/fiscalpulse/internal/holiday"
)

func date(y int, m time.Month, d int) time.Time { return calendar.Date(y, m, d) }

func TestSnapshot(t *testing.T) {
	svc := NewFiscalService()

	snap, err := svc.Snapshot(context.Background(), date(2025, time.August, 27))
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	if snap.CalendarYear != 2025 || snap.FiscalYear != 2025 {
		t.Errorf("CY=%d FY=%d, want 2025/2025", snap.CalendarYear, snap.FiscalYear)
	}
	if snap.BeginningFiscalYear != 2024 || snap.EndingFiscalYear != 2025 {
		t.Errorf("BBFY=%d EBFY=%d, want 2024/2025", snap.BeginningFiscalYear, snap.EndingFiscalYear)
	}
	if !snap.FiscalStart.Equal(date(2024, time.October, 1)) || !snap.FiscalEnd.Equal(date(2025, time.September, 30)) {
		t.Errorf("fiscal bounds %s..%s", snap.FiscalStart.Format(time.DateOnly), snap.FiscalEnd.Format(time.DateOnly))
	}
	if snap.CalendarDayOfYear != 239 || snap.FiscalDayOfYear != 331 {
		t.Errorf("day-of-year cal=%d fisc=%d, want 239/331", snap.CalendarDayOfYear, snap.FiscalDayOfYear)
	}
	if snap.FiscalMonthNumber != 11 {
		t.Errorf("FiscalMonthNumber = %d, want 11", snap.FiscalMonthNumber)
	}
	if snap.IsCalendarYearStart || snap.IsCalendarYearEnd || snap.IsFiscalYearStart || snap.IsFiscalYearEnd {
		t.Errorf("mid-year date must not set boundary flags")
	}
}

func TestSnapshot_ZeroDate(t *testing.T) {
	svc := NewFiscalService()
	if _, err := svc.Snapshot(context.Background(), time.Time{}); !errors.Is(err, calendar.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestHolidays_SortedChronologically(t *testing.T) {
	svc := NewFiscalService()

	hols, err := svc.Holidays(context.Background(), 2025)
	if err != nil {
		t.Fatalf("Holidays: %v", err)
	}
	if len(hols) != 11 {
		t.Fatalf("holiday count = %d, want 11", len(hols))
	}
	for i := 1; i < len(hols); i++ {
		if !hols[i-1].Actual.Before(hols[i].Actual) {
			t.Fatalf("holidays out of order: %s before %s", hols[i-1].Name, hols[i].Name)
		}
	}
	if hols[0].Name != "Columbus Day" || !hols[0].Actual.Equal(date(2024, time.October, 14)) {
		t.Errorf("first holiday = %s (%s), want Columbus Day 2024-10-14", hols[0].Name, hols[0].Actual.Format(time.DateOnly))
	}
	if last := hols[len(hols)-1]; last.Name != "Labor Day" || !last.Actual.Equal(date(2025, time.September, 1)) {
		t.Errorf("last holiday = %s (%s), want Labor Day 2025-09-01", last.Name, last.Actual.Format(time.DateOnly))
	}
}

func TestHolidays_InvalidFiscalYear(t *testing.T) {
	svc := NewFiscalService()
	if _, err := svc.Holidays(context.Background(), 0); !errors.Is(err, calendar.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCheckDate(t *testing.T) {
	svc := NewFiscalService()

	cases := []struct {
		name        string
		d           time.Time
		basis       holiday.Basis
		wantFY      int
		wantWeekend bool
		wantHoliday bool
		wantName    string
	}{
		{"weekday holiday", date(2025, time.July, 4), holiday.Observed, 2025, false, true, "Independence Day"},
		{"plain weekday", date(2025, time.August, 27), holiday.Observed, 2025, false, false, ""},
		{"weekend", date(2025, time.August, 30), holiday.Observed, 2025, true, false, ""},
		// New Year's Day 2023 fell on a Sunday, observed Monday Jan 2.
		{"observed hit", date(2023, time.January, 2), holiday.Observed, 2023, false, true, "New Year's Day"},
		{"actual miss", date(2023, time.January, 2), holiday.Actual, 2023, false, false, ""},
		{"actual hit", date(2023, time.January, 1), holiday.Actual, 2023, true, true, "New Year's Day"},
		{"october rolls fiscal year", date(2025, time.October, 13), holiday.Observed, 2026, false, true, "Columbus Day"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, err := svc.CheckDate(context.Background(), tc.d, tc.basis)
			if err != nil {
				t.Fatalf("CheckDate: %v", err)
			}
			if status.FiscalYear != tc.wantFY {
				t.Errorf("fiscal year = %d, want %d", status.FiscalYear, tc.wantFY)
			}
			if status.Weekend != tc.wantWeekend {
				t.Errorf("weekend = %v, want %v", status.Weekend, tc.wantWeekend)
			}
			if status.Holiday != tc.wantHoliday || status.HolidayName != tc.wantName {
				t.Errorf("holiday = %v (%q), want %v (%q)", status.Holiday, status.HolidayName, tc.wantHoliday, tc.wantName)
			}
		})
	}
}

func TestRangeCounts(t *testing.T) {
	svc := NewFiscalService()

	counts, err := svc.RangeCounts(context.Background(), date(2025, time.August, 1), date(2025, time.August, 31))
	if err != nil {
		t.Fatalf("RangeCounts: %v", err)
	}
	if counts.Days != 31 || counts.Workdays != 21 || counts.Weekends != 10 || counts.Holidays != 0 {
		t.Fatalf("counts = %+v, want days=31 workdays=21 weekends=10 holidays=0", counts)
	}
}

func TestRangeCounts_InvalidRange(t *testing.T) {
	svc := NewFiscalService()

	_, err := svc.RangeCounts(context.Background(), date(2025, time.August, 31), date(2025, time.August, 1))
	if !errors.Is(err, calendar.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}
