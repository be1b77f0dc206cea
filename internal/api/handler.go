package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/budgetops/fiscalpulse/internal/calendar"
	"github.com/budgetops/fiscalpulse/internal/domain/dto"
	"github.com/budgetops/fiscalpulse/internal/domain/models"
	"github.com/budgetops/fiscalpulse/internal/holiday"
	"github.com/budgetops/fiscalpulse/internal/service"
)

const dateLayout = "2006-01-02"

// Handler provides the HTTP handlers for fiscal-year and holiday queries.
//
// Responsibilities:
//   - Validate incoming query parameters
//   - Delegate to the service layer
//   - Translate service results into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	svc service.FiscalService
}

// NewHandler constructs a Handler backed by the given service.
func NewHandler(svc service.FiscalService) *Handler {
	return &Handler{svc: svc}
}

// nowFunc supplies "today" for requests that omit a date; overridden in tests.
var nowFunc = time.Now

// parseDateParam reads an optional YYYY-MM-DD query parameter, defaulting to
// today (UTC) when absent. The bool result reports whether parsing succeeded
// (a response has already been written when it is false).
func parseDateParam(c *gin.Context, name string) (time.Time, bool) {
	s := c.Query(name)
	if s == "" {
		return calendar.Truncate(nowFunc().UTC()), true
	}
	parsed, err := time.Parse(dateLayout, s)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid "+name+" format, expected YYYY-MM-DD", err))
		return time.Time{}, false
	}
	return parsed, true
}

// GetFiscal handles GET /api/v1/fiscal requests.
//
// GetFiscal godoc
// @Summary      Fiscal-year snapshot for a date
// @Description  Returns calendar-year and fiscal-year boundaries, elapsed/remaining counters, and boundary flags for the given date (default: today UTC)
// @Tags         fiscal
// @Produce      json
// @Param        date  query     string  false  "Anchor date in YYYY-MM-DD"  example(2025-08-27)
// @Success      200   {object}  dto.SnapshotResponse   "Success"
// @Failure      400   {object}  dto.ErrorResponse      "Bad Request"
// @Failure      500   {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/v1/fiscal [get]
func (h *Handler) GetFiscal(c *gin.Context) {
	date, ok := parseDateParam(c, "date")
	if !ok {
		return
	}

	snap, err := h.svc.Snapshot(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, calendar.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid date", err))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to compute fiscal snapshot", err))
		return
	}

	c.JSON(http.StatusOK, toSnapshotResponse(snap))
}

// GetHolidays handles GET /api/v1/holidays requests.
//
// GetHolidays godoc
// @Summary      Federal holidays of a fiscal year
// @Description  Returns the observed U.S. federal holidays whose legal date falls inside the fiscal-year window (Oct 1 FY-1 through Sep 30 FY)
// @Tags         holidays
// @Produce      json
// @Param        fiscal_year  query     int  true  "Fiscal year (named for its ending year)"  example(2025)
// @Success      200          {object}  dto.HolidaysResponse  "Success"
// @Failure      400          {object}  dto.ErrorResponse     "Bad Request"
// @Failure      500          {object}  dto.ErrorResponse     "Internal Error"
// @Router       /api/v1/holidays [get]
func (h *Handler) GetHolidays(c *gin.Context) {
	raw := c.Query("fiscal_year")
	if raw == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("fiscal_year is required", nil))
		return
	}
	fy, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("fiscal_year must be an integer", err))
		return
	}

	hols, err := h.svc.Holidays(c.Request.Context(), fy)
	if err != nil {
		if errors.Is(err, calendar.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid fiscal_year", err))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to resolve holidays", err))
		return
	}

	resp := dto.HolidaysResponse{
		FiscalYear: fy,
		Count:      len(hols),
		Holidays:   make([]dto.HolidayResponse, 0, len(hols)),
	}
	for _, hol := range hols {
		resp.Holidays = append(resp.Holidays, dto.HolidayResponse{
			Name:     hol.Name,
			Actual:   hol.Actual.Format(dateLayout),
			Observed: hol.Observed.Format(dateLayout),
		})
	}

	c.JSON(http.StatusOK, resp)
}

// CheckDate handles GET /api/v1/holidays/check requests.
//
// CheckDate godoc
// @Summary      Holiday and weekend point query
// @Description  Reports whether a date is a weekend and whether it is a federal holiday of its fiscal year, on the observed or actual basis
// @Tags         holidays
// @Produce      json
// @Param        date   query     string  false  "Date in YYYY-MM-DD (default: today UTC)"  example(2025-07-04)
// @Param        basis  query     string  false  "observed (default) or actual"             example(observed)
// @Success      200    {object}  dto.DateStatusResponse  "Success"
// @Failure      400    {object}  dto.ErrorResponse       "Bad Request"
// @Failure      500    {object}  dto.ErrorResponse       "Internal Error"
// @Router       /api/v1/holidays/check [get]
func (h *Handler) CheckDate(c *gin.Context) {
	date, ok := parseDateParam(c, "date")
	if !ok {
		return
	}

	basis := holiday.Observed
	basisName := c.DefaultQuery("basis", "observed")
	switch basisName {
	case "observed":
	case "actual":
		basis = holiday.Actual
	default:
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("basis must be 'observed' or 'actual'", nil))
		return
	}

	status, err := h.svc.CheckDate(c.Request.Context(), date, basis)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to check date", err))
		return
	}

	c.JSON(http.StatusOK, dto.DateStatusResponse{
		Date:        status.Date.Format(dateLayout),
		FiscalYear:  status.FiscalYear,
		Basis:       basisName,
		Weekend:     status.Weekend,
		Holiday:     status.Holiday,
		HolidayName: status.HolidayName,
	})
}

// GetRangeCounts handles GET /api/v1/range requests.
//
// GetRangeCounts godoc
// @Summary      Workday, weekend, and holiday counts for a date range
// @Description  Counts total days, Mon-Fri workdays net of observed federal holidays, weekend days, and distinct observed holiday dates in the inclusive range
// @Tags         fiscal
// @Produce      json
// @Param        start  query     string  true  "Range start in YYYY-MM-DD"  example(2025-08-01)
// @Param        end    query     string  true  "Range end in YYYY-MM-DD"    example(2025-08-31)
// @Success      200    {object}  dto.RangeCountsResponse  "Success"
// @Failure      400    {object}  dto.ErrorResponse        "Bad Request"
// @Failure      500    {object}  dto.ErrorResponse        "Internal Error"
// @Router       /api/v1/range [get]
func (h *Handler) GetRangeCounts(c *gin.Context) {
	startRaw, endRaw := c.Query("start"), c.Query("end")
	if startRaw == "" || endRaw == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("start and end are required", nil))
		return
	}
	start, err := time.Parse(dateLayout, startRaw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid start format, expected YYYY-MM-DD", err))
		return
	}
	end, err := time.Parse(dateLayout, endRaw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid end format, expected YYYY-MM-DD", err))
		return
	}

	counts, err := h.svc.RangeCounts(c.Request.Context(), start, end)
	if err != nil {
		if errors.Is(err, calendar.ErrInvalidRange) || errors.Is(err, calendar.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid range", err))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to count range", err))
		return
	}

	c.JSON(http.StatusOK, dto.RangeCountsResponse{
		Start:    counts.Start.Format(dateLayout),
		End:      counts.End.Format(dateLayout),
		Days:     counts.Days,
		Workdays: counts.Workdays,
		Weekends: counts.Weekends,
		Holidays: counts.Holidays,
	})
}

func toSnapshotResponse(snap *models.Snapshot) dto.SnapshotResponse {
	return dto.SnapshotResponse{
		Date:                snap.Date.Format(dateLayout),
		CalendarYear:        snap.CalendarYear,
		FiscalYear:          snap.FiscalYear,
		BeginningFiscalYear: snap.BeginningFiscalYear,
		EndingFiscalYear:    snap.EndingFiscalYear,

		CalendarStart: snap.CalendarStart.Format(dateLayout),
		CalendarEnd:   snap.CalendarEnd.Format(dateLayout),
		FiscalStart:   snap.FiscalStart.Format(dateLayout),
		FiscalEnd:     snap.FiscalEnd.Format(dateLayout),

		CalendarDayOfYear:       snap.CalendarDayOfYear,
		CalendarDaysInYear:      snap.CalendarDaysInYear,
		CalendarElapsedDays:     snap.CalendarElapsedDays,
		CalendarRemainingDays:   snap.CalendarRemainingDays,
		CalendarElapsedMonths:   snap.CalendarElapsedMonths,
		CalendarRemainingMonths: snap.CalendarRemainingMonths,
		CalendarPercentElapsed:  snap.CalendarPercentElapsed,

		FiscalDayOfYear:       snap.FiscalDayOfYear,
		FiscalDaysInYear:      snap.FiscalDaysInYear,
		FiscalMonthNumber:     snap.FiscalMonthNumber,
		FiscalElapsedDays:     snap.FiscalElapsedDays,
		FiscalRemainingDays:   snap.FiscalRemainingDays,
		FiscalElapsedMonths:   snap.FiscalElapsedMonths,
		FiscalRemainingMonths: snap.FiscalRemainingMonths,
		FiscalPercentElapsed:  snap.FiscalPercentElapsed,

		IsCalendarYearStart: snap.IsCalendarYearStart,
		IsCalendarYearEnd:   snap.IsCalendarYearEnd,
		IsFiscalYearStart:   snap.IsFiscalYearStart,
		IsFiscalYearEnd:     snap.IsFiscalYearEnd,
	}
}
