package handlers

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"school-transport-backend/models"
	"school-transport-backend/pkg/export"
	"school-transport-backend/pkg/metrics"
	"school-transport-backend/pkg/querycache"
	"school-transport-backend/pkg/schedule"
	"school-transport-backend/repository"
)

type CalendarHandler struct {
	jobRepo  repository.JobRepository
	cache    *querycache.Cache
	metrics  *metrics.Metrics
	now      Clock
	location *time.Location
}

func NewCalendarHandler(jobRepo repository.JobRepository, cache *querycache.Cache, m *metrics.Metrics, now Clock, loc *time.Location) *CalendarHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &CalendarHandler{jobRepo: jobRepo, cache: cache, metrics: m, now: now, location: loc}
}

// LoadMonth returns the jobs of a month through the query cache.
func (h *CalendarHandler) LoadMonth(ctx context.Context, year int, month time.Month) ([]models.Job, error) {
	return querycache.Get(ctx, h.cache, querycache.CalendarKey(year, int(month)), func(ctx context.Context) ([]models.Job, error) {
		return h.jobRepo.FindByMonth(ctx, year, int(month))
	})
}

func (h *CalendarHandler) monthJobs(c *fiber.Ctx) ([]models.Job, int, time.Month, error) {
	year, month, err := monthParams(c, h.now().In(h.location))
	if err != nil {
		return nil, 0, 0, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	jobs, err := h.LoadMonth(ctx, year, month)
	if err != nil {
		return nil, 0, 0, fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("Failed to fetch calendar data: %v", err))
	}
	return jobs, year, month, nil
}

func fiberErrorJSON(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// GetCalendar godoc
// @Summary Month calendar grid
// @Description Classified events for every day of a month laid out as a 42-cell grid, optionally limited to one route
// @Tags Calendar
// @Produce json
// @Param month query int false "Month (1-12), defaults to the current month"
// @Param year query int false "Year, defaults to the current year"
// @Param routeNo query string false "Route number filter"
// @Success 200 {object} models.CalendarGridResponse
// @Failure 400 {object} models.ErrorResponse "Invalid month or year"
// @Failure 500 {object} models.ErrorResponse "Failed to fetch calendar data"
// @Router /calendar [get]
func (h *CalendarHandler) GetCalendar(c *fiber.Ctx) error {
	jobs, year, month, err := h.monthJobs(c)
	if err != nil {
		return fiberErrorJSON(c, err)
	}

	grid := schedule.BuildMonthGrid(jobs, year, month, schedule.GridOptions{
		RouteNo:  c.Query("routeNo"),
		Now:      h.now(),
		Location: h.location,
	})
	h.metrics.AggregationRuns.WithLabelValues("grid").Inc()

	return c.Status(fiber.StatusOK).JSON(models.CalendarGridResponse{
		Month: int(month),
		Year:  year,
		Data:  grid,
	})
}

// GetCalendarJobs godoc
// @Summary Raw jobs of a month
// @Tags Calendar
// @Produce json
// @Param month query int false "Month (1-12)"
// @Param year query int false "Year"
// @Success 200 {object} models.CalendarResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /calendar/jobs [get]
func (h *CalendarHandler) GetCalendarJobs(c *fiber.Ctx) error {
	jobs, _, _, err := h.monthJobs(c)
	if err != nil {
		return fiberErrorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(models.CalendarResponse{Data: jobs})
}

// GetRouteSchedule godoc
// @Summary Date x route schedule matrix
// @Description Events per route and date for a month. types limits the event types shown, e.g. holiday,absence
// @Tags Calendar
// @Produce json
// @Param month query int false "Month (1-12)"
// @Param year query int false "Year"
// @Param types query string false "Comma separated event types"
// @Success 200 {object} models.RouteScheduleResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /calendar/routes [get]
func (h *CalendarHandler) GetRouteSchedule(c *fiber.Ctx) error {
	jobs, year, month, err := h.monthJobs(c)
	if err != nil {
		return fiberErrorJSON(c, err)
	}

	matrix := schedule.BuildRouteMatrix(jobs, year, month)
	h.metrics.AggregationRuns.WithLabelValues("matrix").Inc()

	matrix = schedule.FilterMatrix(matrix, schedule.ParseEventFilter(c.Query("types")))
	return c.Status(fiber.StatusOK).JSON(models.RouteScheduleResponse{Data: matrix})
}

// ExportRouteSchedule godoc
// @Summary Download the route schedule as a spreadsheet
// @Tags Calendar
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param month query int false "Month (1-12)"
// @Param year query int false "Year"
// @Param types query string false "Comma separated event types"
// @Success 200 {file} file
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /calendar/routes/export [get]
func (h *CalendarHandler) ExportRouteSchedule(c *fiber.Ctx) error {
	jobs, year, month, err := h.monthJobs(c)
	if err != nil {
		return fiberErrorJSON(c, err)
	}

	matrix := schedule.BuildRouteMatrix(jobs, year, month)
	h.metrics.AggregationRuns.WithLabelValues("export").Inc()
	matrix = schedule.FilterMatrix(matrix, schedule.ParseEventFilter(c.Query("types")))

	var buf bytes.Buffer
	if err := export.WriteSchedule(&buf, matrix); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to export schedule", "details": err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Attachment(export.ScheduleFilename(matrix))
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}
