package http

import (
	"errors"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/smartcity/tourdifficulty/internal/domain"
	"github.com/smartcity/tourdifficulty/internal/service"
)

const unknownAreaMessage = "지역을 찾을 수 없습니다."

// Options tune request adaptation around the status pipeline
type Options struct {
	DefaultArea      string
	StrictAreaLookup bool
}

// Handler contains all HTTP handlers
type Handler struct {
	statusSvc *service.StatusService
	validate  *validator.Validate
	opts      Options
	logger    *slog.Logger
}

type statusQuery struct {
	Area string `query:"area" validate:"omitempty,areaid"`
}

type areasQuery struct {
	Search string `query:"search" validate:"max=100"`
}

// NewHandler creates a new handler
func NewHandler(statusSvc *service.StatusService, opts Options, logger *slog.Logger) *Handler {
	if opts.DefaultArea == "" {
		opts.DefaultArea = domain.DefaultAreaID
	}
	return &Handler{
		statusSvc: statusSvc,
		validate:  domain.NewValidator(),
		opts:      opts,
		logger:    logger,
	}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(domain.HealthResponse{
		Status:    "healthy",
		Timestamp: h.statusSvc.Now().In(domain.KST).Format(time.RFC3339Nano),
	})
}

// GetStatus returns the current and 30 minute difficulty for one area
func (h *Handler) GetStatus(c *fiber.Ctx) error {
	var q statusQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
	}
	if err := h.validate.Struct(q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid area parameter")
	}

	area := q.Area
	if area == "" {
		area = h.opts.DefaultArea
	}

	status, err := h.statusSvc.Status(c.Context(), area)
	if errors.Is(err, domain.ErrAreaNotFound) {
		code := fiber.StatusOK
		if h.opts.StrictAreaLookup {
			code = fiber.StatusNotFound
		}
		return c.Status(code).JSON(domain.UnknownAreaResponse{
			Error:          unknownAreaMessage,
			AvailableAreas: h.statusSvc.AreaIDs(),
		})
	}
	if err != nil {
		h.logger.Error("status computation failed", "area", area, "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to compute status")
	}

	return c.JSON(status)
}

// GetAreas lists the catalog, optionally filtered by search
func (h *Handler) GetAreas(c *fiber.Ctx) error {
	var q areasQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
	}
	if err := h.validate.Struct(q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Search term too long")
	}

	return c.JSON(h.statusSvc.Areas(q.Search))
}
