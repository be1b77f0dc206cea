package service

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/budgetops/fiscalpulse/internal/calendar"
	"github.com/budgetops/fiscalpulse/internal/domain/models"
	"github.com/budgetops/fiscalpulse/internal/fiscal"
	"github.com/budgetops/fiscalpulse/internal/holiday"
)

// FiscalService defines the business operations exposed over HTTP: the
// fiscal-year snapshot for a date, the federal holiday set for a fiscal
// year, point queries for a single date, and range counting.
type FiscalService interface {
	Snapshot(ctx context.Context, date time.Time) (*models.Snapshot, error)
	Holidays(ctx context.Context, fiscalYear int) ([]models.Holiday, error)
	CheckDate(ctx context.Context, date time.Time, basis holiday.Basis) (*models.DateStatus, error)
	RangeCounts(ctx context.Context, start, end time.Time) (*models.RangeCounts, error)
}

type fiscalService struct{}

// NewFiscalService constructs the engine-backed FiscalService. The engines
// are pure, so the service carries no state or resources.
func NewFiscalService() FiscalService {
	return &fiscalService{}
}

func (s *fiscalService) Snapshot(_ context.Context, date time.Time) (*models.Snapshot, error) {
	y, err := fiscal.New(date)
	if err != nil {
		return nil, err
	}
	cyStart, cyEnd := y.CalendarBounds()
	fyStart, fyEnd := y.FiscalBounds()
	return &models.Snapshot{
		Date:                y.AnchorDate(),
		CalendarYear:        y.CalendarYear(),
		FiscalYear:          y.FiscalYear(),
		BeginningFiscalYear: y.BeginningFiscalYear(),
		EndingFiscalYear:    y.EndingFiscalYear(),

		CalendarStart: cyStart,
		CalendarEnd:   cyEnd,
		FiscalStart:   fyStart,
		FiscalEnd:     fyEnd,

		CalendarDayOfYear:       y.CalendarDayOfYear(),
		CalendarDaysInYear:      y.CalendarDaysInYear(),
		CalendarElapsedDays:     y.CalendarElapsedDays(),
		CalendarRemainingDays:   y.CalendarRemainingDays(),
		CalendarElapsedMonths:   y.CalendarElapsedMonths(),
		CalendarRemainingMonths: y.CalendarRemainingMonths(),
		CalendarPercentElapsed:  y.CalendarPercentElapsed(),

		FiscalDayOfYear:       y.FiscalDayOfYear(),
		FiscalDaysInYear:      y.FiscalDaysInYear(),
		FiscalMonthNumber:     y.FiscalMonthNumber(),
		FiscalElapsedDays:     y.FiscalElapsedDays(),
		FiscalRemainingDays:   y.FiscalRemainingDays(),
		FiscalElapsedMonths:   y.FiscalElapsedMonths(),
		FiscalRemainingMonths: y.FiscalRemainingMonths(),
		FiscalPercentElapsed:  y.FiscalPercentElapsed(),

		IsCalendarYearStart: y.IsCalendarYearStart(),
		IsCalendarYearEnd:   y.IsCalendarYearEnd(),
		IsFiscalYearStart:   y.IsFiscalYearStart(),
		IsFiscalYearEnd:     y.IsFiscalYearEnd(),
	}, nil
}

func (s *fiscalService) Holidays(_ context.Context, fiscalYear int) ([]models.Holiday, error) {
	eng, err := holiday.NewEngine(fiscalYear)
	if err != nil {
		return nil, err
	}
	records := eng.Holidays()
	out := make([]models.Holiday, 0, len(records))
	for _, rec := range records {
		out = append(out, models.Holiday{Name: rec.Name, Actual: rec.Actual, Observed: rec.Observed})
	}
	// map iteration order is random; present the fiscal year chronologically
	sort.Slice(out, func(i, j int) bool { return out[i].Actual.Before(out[j].Actual) })
	return out, nil
}

func (s *fiscalService) CheckDate(_ context.Context, date time.Time, basis holiday.Basis) (*models.DateStatus, error) {
	y, err := fiscal.New(date)
	if err != nil {
		return nil, err
	}
	eng, err := holiday.NewEngine(y.FiscalYear())
	if err != nil {
		return nil, err
	}
	status := &models.DateStatus{
		Date:       y.AnchorDate(),
		FiscalYear: y.FiscalYear(),
		Weekend:    eng.IsWeekend(y.AnchorDate()),
	}
	if rec, ok := eng.Lookup(y.AnchorDate(), basis); ok {
		status.Holiday = true
		status.HolidayName = rec.Name
	}
	return status, nil
}

// RangeCounts runs the three independent range scans concurrently;
// errgroup cancels siblings on the first failure.
func (s *fiscalService) RangeCounts(ctx context.Context, start, end time.Time) (*models.RangeCounts, error) {
	out := &models.RangeCounts{
		Start: calendar.Truncate(start),
		End:   calendar.Truncate(end),
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := fiscal.CountWorkdays(start, end)
		out.Workdays = n
		return err
	})
	g.Go(func() error {
		n, err := fiscal.CountWeekends(start, end)
		out.Weekends = n
		return err
	})
	g.Go(func() error {
		n, err := fiscal.CountHolidays(start, end)
		out.Holidays = n
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out.Days = calendar.DaysBetween(out.Start, out.End)
	return out, nil
}
