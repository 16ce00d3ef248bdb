package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/trip-board/internal/api/dto"
	"github.com/spec-kit/trip-board/internal/auth"
	"github.com/spec-kit/trip-board/internal/service"
	apperrors "github.com/spec-kit/trip-board/pkg/util"
)

// TripsHandler manages trip endpoints.
type TripsHandler struct {
	service *service.TripService
}

// NewTripsHandler constructs handler.
func NewTripsHandler(tripService *service.TripService) *TripsHandler {
	return &TripsHandler{service: tripService}
}

// List handles GET /trips. All open trips, every bhawan.
func (h *TripsHandler) List(c *fiber.Ctx) error {
	trips, err := h.service.ListOpen(c.UserContext(), nil)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTripListResponse(trips))
}

// ListByBhawan handles GET /trips/:bhawan.
func (h *TripsHandler) ListByBhawan(c *fiber.Ctx) error {
	bhawan := strings.TrimSpace(c.Params("bhawan"))
	if bhawan == "" {
		return apperrors.NewValidationError("bhawan parameter is required", map[string]any{"bhawan": "required"})
	}

	trips, err := h.service.ListOpen(c.UserContext(), &bhawan)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTripListResponse(trips))
}

// Create handles POST /trips.
func (h *TripsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("invalid or missing credentials")
	}

	var req dto.CreateTripRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	departure, err := req.Validate()
	if err != nil {
		return err
	}

	trip, err := h.service.Create(c.UserContext(), principal.UserID, service.TripCreateInput{
		RunnerName:    req.RunnerName,
		ShopName:      req.ShopName,
		DepartureTime: departure,
		Bhawan:        req.Bhawan,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewTripResponse(trip))
}

// Close handles PATCH /trips/:id/close.
func (h *TripsHandler) Close(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("invalid or missing credentials")
	}

	tripID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || tripID <= 0 {
		return apperrors.NewValidationError("invalid trip id", map[string]any{"id": "invalid"})
	}

	trip, err := h.service.Close(c.UserContext(), tripID, principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTripResponse(trip))
}
