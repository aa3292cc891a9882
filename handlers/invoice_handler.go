package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"school-transport-backend/config/middleware"
	"school-transport-backend/models"
	"school-transport-backend/pkg/dateutil"
	"school-transport-backend/pkg/invoice"
	"school-transport-backend/pkg/metrics"
	"school-transport-backend/pkg/querycache"
	"school-transport-backend/pkg/utils"
	"school-transport-backend/repository"
)

// DriverInvoiceResponse carries a generated invoice together with its full
// week layout and the cross-check of its supplied totals.
type DriverInvoiceResponse struct {
	Data           *models.GeneratedInvoice   `json:"data"`
	Weeks          []invoice.MaterializedWeek `json:"weeks"`
	HasSecondRoute bool                       `json:"hasSecondRoute"`
	Reconciliation invoice.Reconciliation     `json:"reconciliation"`
}

type InvoiceHandler struct {
	invoiceRepo repository.InvoiceRepository
	renderer    *invoice.Renderer
	guard       *invoice.SubmissionGuard
	cache       *querycache.Cache
	metrics     *metrics.Metrics
	log         *slog.Logger
}

func NewInvoiceHandler(invoiceRepo repository.InvoiceRepository, renderer *invoice.Renderer, cache *querycache.Cache, m *metrics.Metrics, log *slog.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceRepo: invoiceRepo,
		renderer:    renderer,
		guard:       invoice.NewSubmissionGuard(),
		cache:       cache,
		metrics:     m,
		log:         log,
	}
}

// responseSink writes a document into the HTTP response. It refuses to open
// when the client does not accept HTML.
type responseSink struct {
	c *fiber.Ctx
}

func (s responseSink) Open() (io.WriteCloser, error) {
	if s.c.Accepts(fiber.MIMETextHTML) == "" {
		return nil, errors.New("client does not accept html")
	}
	s.c.Type("html", "utf-8")
	return nopCloser{s.c}, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func (h *InvoiceHandler) publish(c *fiber.Ctx, kind, doc string) error {
	if err := invoice.Publish(responseSink{c}, doc); err != nil {
		h.metrics.DocumentsRendered.WithLabelValues(kind, "blocked").Inc()
		if errors.Is(err, invoice.ErrSinkBlocked) {
			return c.Status(fiber.StatusNotAcceptable).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to write invoice", "details": err.Error()})
	}
	h.metrics.DocumentsRendered.WithLabelValues(kind, "ok").Inc()
	return nil
}

func (h *InvoiceHandler) findGenerated(c *fiber.Ctx) (*models.GeneratedInvoice, error) {
	driverID := c.Params("id")
	start, end, err := dateRangeParams(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	gen, err := querycache.Get(ctx, h.cache, querycache.InvoiceKey(driverID, start, end), func(ctx context.Context) (*models.GeneratedInvoice, error) {
		return h.invoiceRepo.FindGenerated(ctx, driverID, start, end)
	})
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch invoice: "+err.Error())
	}
	if gen == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Invoice not found for this driver and period")
	}
	return gen, nil
}

// GetDriverInvoice godoc
// @Summary Generated invoice for a driver
// @Description Server-computed invoice for a date range, with every week of the range laid out and its totals cross-checked
// @Tags Invoices
// @Produce json
// @Param id path string true "Driver ID"
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} handlers.DriverInvoiceResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /drivers/{id}/invoice [get]
func (h *InvoiceHandler) GetDriverInvoice(c *fiber.Ctx) error {
	gen, err := h.findGenerated(c)
	if err != nil {
		return fiberErrorJSON(c, err)
	}

	weeks, err := invoice.MaterializeRange(gen.OriginalDateRange.StartDate, gen.OriginalDateRange.EndDate, gen.RegularAssignments.Weeks)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Invoice has an invalid date range", "details": err.Error()})
	}

	rec := invoice.Reconcile(gen)
	if !rec.Consistent {
		h.metrics.ReconcileMismatches.Inc()
		h.log.Warn("invoice totals disagree with line items",
			"driverId", c.Params("id"),
			"supplied", rec.Total.Supplied.String(),
			"computed", rec.Total.Computed.String())
	}

	return c.Status(fiber.StatusOK).JSON(DriverInvoiceResponse{
		Data:           gen,
		Weeks:          weeks,
		HasSecondRoute: invoice.HasSecondRoute(gen.RegularAssignments.Weeks),
		Reconciliation: rec,
	})
}

// GetDriverInvoiceDocument godoc
// @Summary Printable generated invoice
// @Tags Invoices
// @Produce html
// @Param id path string true "Driver ID"
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Success 200 {string} string "HTML document"
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 406 {object} models.ErrorResponse "Client cannot open the document"
// @Router /drivers/{id}/invoice/document [get]
func (h *InvoiceHandler) GetDriverInvoiceDocument(c *fiber.Ctx) error {
	gen, err := h.findGenerated(c)
	if err != nil {
		return fiberErrorJSON(c, err)
	}

	doc, err := h.renderer.RenderGenerated(gen)
	if err != nil {
		h.metrics.DocumentsRendered.WithLabelValues("generated", "error").Inc()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to render invoice", "details": err.Error()})
	}
	return h.publish(c, "generated", doc)
}

// parseDraft writes the error response itself and returns a nil draft on failure.
func (h *InvoiceHandler) parseDraft(c *fiber.Ctx) (*models.InvoiceDraft, error) {
	var draft models.InvoiceDraft
	if err := c.BodyParser(&draft); err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "details": err.Error()})
	}
	if errs := util.ValidateStruct(draft); errs != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	// Dates are stored as YYYY-MM-DD so the period compares by calendar day.
	draft.PeriodFrom, _ = dateutil.Normalize(draft.PeriodFrom)
	draft.PeriodTo, _ = dateutil.Normalize(draft.PeriodTo)
	if draft.SignatureDate != "" {
		draft.SignatureDate, _ = dateutil.Normalize(draft.SignatureDate)
	}
	if draft.PeriodTo < draft.PeriodFrom {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "periodFrom must be on or before periodTo"})
	}
	return &draft, nil
}

func parseDraftID(c *fiber.Ctx) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return primitive.NilObjectID, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid invoice ID format"})
	}
	return id, nil
}

// SubmitInvoice godoc
// @Summary Submit an invoice draft
// @Description Stores a driver or PA fare submission. The total is recomputed from the fares. A resend with the same Idempotency-Key while the first is still running is rejected
// @Tags Invoices
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "UUID identifying this submission"
// @Param invoice body models.InvoiceDraft true "Invoice draft"
// @Success 201 {object} models.InvoiceDraftResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 409 {object} models.ErrorResponse "Submission already in progress"
// @Failure 500 {object} models.ErrorResponse
// @Router /invoices [post]
func (h *InvoiceHandler) SubmitInvoice(c *fiber.Ctx) error {
	draft, err := h.parseDraft(c)
	if draft == nil {
		return err
	}

	draft.ID = primitive.NilObjectID
	invoice.Recompute(draft)

	err = h.guard.Do(middleware.GetIdempotencyKey(c), func() error {
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		return h.invoiceRepo.CreateDraft(ctx, draft)
	})
	if errors.Is(err, invoice.ErrSubmissionInFlight) {
		h.metrics.InvoiceSubmissions.WithLabelValues("duplicate").Inc()
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		h.metrics.InvoiceSubmissions.WithLabelValues("error").Inc()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit invoice", "details": err.Error()})
	}

	h.metrics.InvoiceSubmissions.WithLabelValues("ok").Inc()
	return c.Status(fiber.StatusCreated).JSON(models.InvoiceDraftResponse{Message: "Invoice submitted", Data: *draft})
}

// loadDraft writes the error response itself and returns a nil draft on failure.
func (h *InvoiceHandler) loadDraft(ctx context.Context, c *fiber.Ctx) (*models.InvoiceDraft, error) {
	id, err := parseDraftID(c)
	if id.IsZero() {
		return nil, err
	}
	draft, err := h.invoiceRepo.FindDraftByID(ctx, id)
	if err != nil {
		return nil, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch invoice", "details": err.Error()})
	}
	if draft == nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
	}
	return draft, nil
}

// GetInvoice godoc
// @Summary Get an invoice draft
// @Tags Invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} models.InvoiceDraftResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	draft, err := h.loadDraft(ctx, c)
	if draft == nil {
		return err
	}
	invoice.Recompute(draft)
	return c.Status(fiber.StatusOK).JSON(models.InvoiceDraftResponse{Data: *draft})
}

// UpdateInvoice godoc
// @Summary Replace an invoice draft
// @Tags Invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param invoice body models.InvoiceDraft true "Invoice draft"
// @Success 200 {object} models.InvoiceDraftResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /invoices/{id} [put]
func (h *InvoiceHandler) UpdateInvoice(c *fiber.Ctx) error {
	id, err := parseDraftID(c)
	if id.IsZero() {
		return err
	}
	draft, err := h.parseDraft(c)
	if draft == nil {
		return err
	}

	draft.ID = id
	invoice.Recompute(draft)

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.invoiceRepo.UpdateDraft(ctx, draft); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update invoice", "details": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(models.InvoiceDraftResponse{Message: "Invoice updated", Data: *draft})
}

// EditInvoiceFares godoc
// @Summary Edit fares on an invoice draft
// @Description Applies a batch of fare edits. Either every edit applies and the total is recomputed, or nothing changes
// @Tags Invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param edits body models.FareEditPayload true "Fare edits"
// @Success 200 {object} models.InvoiceDraftResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse "Edit does not address an existing entry"
// @Router /invoices/{id}/fares [patch]
func (h *InvoiceHandler) EditInvoiceFares(c *fiber.Ctx) error {
	var payload models.FareEditPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "details": err.Error()})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	draft, err := h.loadDraft(ctx, c)
	if draft == nil {
		return err
	}

	if _, err := invoice.ApplyEdits(draft, payload.Edits); err != nil {
		if errors.Is(err, invoice.ErrEditOutOfRange) || errors.Is(err, invoice.ErrUnknownEdit) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Invalid fare edit", "details": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to edit fares", "details": err.Error()})
	}

	if err := h.invoiceRepo.UpdateDraft(ctx, draft); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save fares", "details": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(models.InvoiceDraftResponse{Message: "Fares updated", Data: *draft})
}

// GetInvoiceDocument godoc
// @Summary Printable invoice draft
// @Tags Invoices
// @Produce html
// @Param id path string true "Invoice ID"
// @Success 200 {string} string "HTML document"
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 406 {object} models.ErrorResponse "Client cannot open the document"
// @Router /invoices/{id}/document [get]
func (h *InvoiceHandler) GetInvoiceDocument(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	draft, err := h.loadDraft(ctx, c)
	if draft == nil {
		return err
	}

	doc, err := h.renderer.RenderDraft(draft)
	if err != nil {
		h.metrics.DocumentsRendered.WithLabelValues("draft", "error").Inc()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to render invoice", "details": err.Error()})
	}
	return h.publish(c, "draft", doc)
}
