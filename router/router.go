package router

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"

	"school-transport-backend/config"
	"school-transport-backend/config/middleware"
	_ "school-transport-backend/docs"
	"school-transport-backend/handlers"
	"school-transport-backend/pkg/invoice"
	"school-transport-backend/pkg/metrics"
	"school-transport-backend/pkg/querycache"
	"school-transport-backend/pkg/roster"
	"school-transport-backend/repository"
)

// Handlers groups the HTTP handlers of the API.
type Handlers struct {
	Calendar *handlers.CalendarHandler
	Routes   *handlers.RouteHandler
	Invoices *handlers.InvoiceHandler
	Settings *handlers.SettingsHandler
}

// NewHandlers wires repositories and services into the handlers. MongoDB must
// be connected.
func NewHandlers(cfg *config.AppConfig, cache *querycache.Cache, m *metrics.Metrics, log *slog.Logger) (*Handlers, error) {
	jobRepo := repository.NewJobRepository()
	routeRepo := repository.NewRouteRepository()
	invoiceRepo := repository.NewInvoiceRepository()
	settingsRepo := repository.NewSettingsRepository()

	renderer, err := invoice.NewRenderer(invoice.WithVerifyURL(cfg.InvoiceVerifyURL))
	if err != nil {
		return nil, err
	}
	students := roster.NewClient(cfg.StudentAPIURL, cfg.StudentTimeout)

	return &Handlers{
		Calendar: handlers.NewCalendarHandler(jobRepo, cache, m, time.Now, cfg.Location),
		Routes:   handlers.NewRouteHandler(routeRepo, students, cache, log),
		Invoices: handlers.NewInvoiceHandler(invoiceRepo, renderer, cache, m, log),
		Settings: handlers.NewSettingsHandler(settingsRepo, cfg.JobViewColumns, log),
	}, nil
}

func SetupRoutes(app *fiber.App, h *Handlers, m *metrics.Metrics) {
	slog.Info("registering routes")

	// Health check, docs and metrics
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "School Transport API",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	// API v1 group
	api := app.Group("/api/v1")

	// Calendar routes
	calendarGroup := api.Group("/calendar")
	calendarGroup.Get("/", h.Calendar.GetCalendar)
	calendarGroup.Get("/jobs", h.Calendar.GetCalendarJobs)
	calendarGroup.Get("/routes", h.Calendar.GetRouteSchedule)
	calendarGroup.Get("/routes/export", h.Calendar.ExportRouteSchedule)

	// Route records and rosters
	api.Get("/routes", h.Routes.GetAllRoutes)
	api.Get("/routes/:routeNo/students", h.Routes.GetRouteStudents)

	// Generated invoices
	api.Get("/drivers/:id/invoice", h.Invoices.GetDriverInvoice)
	api.Get("/drivers/:id/invoice/document", h.Invoices.GetDriverInvoiceDocument)

	// Invoice drafts
	invoiceGroup := api.Group("/invoices")
	invoiceGroup.Post("/", middleware.IdempotencyKey(), h.Invoices.SubmitInvoice)
	invoiceGroup.Get("/:id", h.Invoices.GetInvoice)
	invoiceGroup.Put("/:id", h.Invoices.UpdateInvoice)
	invoiceGroup.Patch("/:id/fares", h.Invoices.EditInvoiceFares)
	invoiceGroup.Get("/:id/document", h.Invoices.GetInvoiceDocument)

	// Settings
	api.Get("/settings/job-view", h.Settings.GetJobView)
	api.Put("/settings/job-view", h.Settings.UpdateJobView)

	slog.Info("routes registered")
}
