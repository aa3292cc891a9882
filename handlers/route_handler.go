package handlers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"school-transport-backend/models"
	"school-transport-backend/pkg/querycache"
	"school-transport-backend/pkg/roster"
	"school-transport-backend/repository"
)

// StudentSource looks up the students riding a route.
type StudentSource interface {
	StudentsForRoute(ctx context.Context, routeNo string) ([]models.Student, error)
}

type RouteHandler struct {
	routeRepo repository.RouteRepository
	students  StudentSource
	cache     *querycache.Cache
	log       *slog.Logger
}

func NewRouteHandler(routeRepo repository.RouteRepository, students StudentSource, cache *querycache.Cache, log *slog.Logger) *RouteHandler {
	return &RouteHandler{routeRepo: routeRepo, students: students, cache: cache, log: log}
}

// GetAllRoutes godoc
// @Summary List routes
// @Description Route records used to populate route filters
// @Tags Routes
// @Produce json
// @Success 200 {object} models.RoutesResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /routes [get]
func (h *RouteHandler) GetAllRoutes(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	routes, err := querycache.Get(ctx, h.cache, querycache.RoutesKey, h.routeRepo.GetAllRoutes)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch routes", "details": err.Error()})
	}
	if routes == nil {
		routes = []models.Route{}
	}
	return c.Status(fiber.StatusOK).JSON(models.RoutesResponse{Data: routes})
}

// GetRouteStudents godoc
// @Summary Students on a route
// @Description Students riding a route, normalized from the student records service
// @Tags Routes
// @Produce json
// @Param routeNo path string true "Route number"
// @Success 200 {object} models.StudentsResponse
// @Failure 502 {object} models.ErrorResponse "Student service failed"
// @Failure 503 {object} models.ErrorResponse "Student service not configured"
// @Router /routes/{routeNo}/students [get]
func (h *RouteHandler) GetRouteStudents(c *fiber.Ctx) error {
	routeNo := c.Params("routeNo")
	if routeNo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Route number is required"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	students, err := h.students.StudentsForRoute(ctx, routeNo)
	if errors.Is(err, roster.ErrNotConfigured) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		h.log.Warn("student lookup failed", "routeNo", routeNo, "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to fetch students", "details": err.Error()})
	}
	if students == nil {
		students = []models.Student{}
	}
	return c.Status(fiber.StatusOK).JSON(models.StudentsResponse{Data: students})
}
