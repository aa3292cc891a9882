package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"school-transport-backend/config"
	"school-transport-backend/models"
	"school-transport-backend/pkg/utils"
	"school-transport-backend/repository"
)

type SettingsHandler struct {
	settingsRepo repository.SettingsRepository
	fallback     []string
	log          *slog.Logger
}

// NewSettingsHandler takes the locally configured job view columns used when
// nothing is stored on the server.
func NewSettingsHandler(settingsRepo repository.SettingsRepository, fallback []string, log *slog.Logger) *SettingsHandler {
	return &SettingsHandler{settingsRepo: settingsRepo, fallback: fallback, log: log}
}

// GetJobView godoc
// @Summary Job table columns
// @Description Resolved job table columns. source tells whether they came from the server, local configuration or the built-in default
// @Tags Settings
// @Produce json
// @Success 200 {object} models.JobViewResponse
// @Router /settings/job-view [get]
func (h *SettingsHandler) GetJobView(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	var stored []string
	settings, err := h.settingsRepo.GetJobView(ctx)
	if err != nil {
		// A settings outage degrades to the local columns.
		h.log.Warn("failed to load job view settings", "error", err)
	} else if settings != nil {
		stored = settings.Columns
	}

	view := config.ResolveJobView(stored, h.fallback)
	return c.Status(fiber.StatusOK).JSON(models.JobViewResponse{Columns: view.Columns, Source: view.Source})
}

// UpdateJobView godoc
// @Summary Save job table columns
// @Tags Settings
// @Accept json
// @Produce json
// @Param columns body models.JobViewSettingsPayload true "Columns in display order"
// @Success 200 {object} models.JobViewResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /settings/job-view [put]
func (h *SettingsHandler) UpdateJobView(c *fiber.Ctx) error {
	var payload models.JobViewSettingsPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "details": err.Error()})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	var unknown []string
	for _, col := range payload.Columns {
		if !config.IsJobViewColumn(col) {
			unknown = append(unknown, col)
		}
	}
	if len(unknown) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Unknown job view columns",
			"details": fmt.Sprintf("unknown columns: %s", strings.Join(unknown, ", ")),
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	view := config.ResolveJobView(payload.Columns, h.fallback)
	if _, err := h.settingsRepo.SaveJobView(ctx, view.Columns); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save job view", "details": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(models.JobViewResponse{Columns: view.Columns, Source: view.Source})
}
