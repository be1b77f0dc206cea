package fiscal

import (
	"fmt"
	"time"

	"github.com/budgetops/fiscalpulse/internal/calendar"
	"github.com/budgetops/fiscalpulse/internal/holiday"
)

// checkRange validates and normalizes an inclusive date range.
// A one-day range (start == end) is valid.
func checkRange(start, end time.Time) (time.Time, time.Time, error) {
	if start.IsZero() || end.IsZero() {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start and end dates required", calendar.ErrInvalidInput)
	}
	s, e := calendar.Truncate(start), calendar.Truncate(end)
	if s.After(e) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s > %s", calendar.ErrInvalidRange,
			s.Format(time.DateOnly), e.Format(time.DateOnly))
	}
	return s, e, nil
}

// observedHolidaySet unions the observed federal holiday dates of every
// fiscal year touched by [start, end]. Keying the union on the observed
// date deduplicates holidays that share one.
func observedHolidaySet(start, end time.Time) (map[time.Time]struct{}, error) {
	set := make(map[time.Time]struct{})
	for fy := YearOf(start); fy <= YearOf(end); fy++ {
		eng, err := holiday.NewEngine(fy)
		if err != nil {
			return nil, err
		}
		for _, rec := range eng.Holidays() {
			set[rec.Observed] = struct{}{}
		}
	}
	return set, nil
}

// CountWorkdays counts the dates in the inclusive range [start, end] that
// fall Monday through Friday and are not an observed federal holiday of any
// fiscal year overlapping the range.
func CountWorkdays(start, end time.Time) (int, error) {
	s, e, err := checkRange(start, end)
	if err != nil {
		return 0, err
	}
	observed, err := observedHolidaySet(s, e)
	if err != nil {
		return 0, err
	}
	count := 0
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		if calendar.IsWeekend(d) {
			continue
		}
		if _, hol := observed[d]; hol {
			continue
		}
		count++
	}
	return count, nil
}

// CountWeekends counts the Saturdays and Sundays in the inclusive range
// [start, end].
func CountWeekends(start, end time.Time) (int, error) {
	s, e, err := checkRange(start, end)
	if err != nil {
		return 0, err
	}
	count := 0
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		if calendar.IsWeekend(d) {
			count++
		}
	}
	return count, nil
}

// CountHolidays counts the distinct observed federal holiday dates falling
// in the inclusive range [start, end], unioned across every fiscal year the
// range touches.
func CountHolidays(start, end time.Time) (int, error) {
	s, e, err := checkRange(start, end)
	if err != nil {
		return 0, err
	}
	observed, err := observedHolidaySet(s, e)
	if err != nil {
		return 0, err
	}
	count := 0
	for d := range observed {
		if !d.Before(s) && !d.After(e) {
			count++
		}
	}
	return count, nil
}
