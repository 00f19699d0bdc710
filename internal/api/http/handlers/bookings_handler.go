package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/stagedoor/stagedoor-api/internal/api/dto"
	"github.com/stagedoor/stagedoor-api/internal/auth"
	"github.com/stagedoor/stagedoor-api/internal/domain"
	"github.com/stagedoor/stagedoor-api/internal/service"
)

// BookingsHandler exposes the dancer-facing booking endpoints.
type BookingsHandler struct {
	bookings *service.BookingService
}

// NewBookingsHandler constructs handler.
func NewBookingsHandler(bookingService *service.BookingService) *BookingsHandler {
	return &BookingsHandler{bookings: bookingService}
}

// Create handles POST /booking.
func (h *BookingsHandler) Create(c *fiber.Ctx) error {
	principal, err := auth.RequireRole(c, domain.RoleDancer)
	if err != nil {
		return err
	}

	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.EventID == "" || req.StylistID == "" {
		return fiber.NewError(http.StatusBadRequest, "event_id and stylist_id required")
	}

	booking, err := h.bookings.Request(c.Context(), principal.ID, req.EventID, req.StylistID, req.Note)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": bookingResponse(booking)})
}

// List handles GET /booking.
func (h *BookingsHandler) List(c *fiber.Ctx) error {
	principal, err := auth.RequireRole(c, domain.RoleDancer)
	if err != nil {
		return err
	}

	bookings, err := h.bookings.ListForDancer(c.Context(), principal.ID, c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": bookingResponses(bookings)})
}

// Cancel handles POST /booking/:id/cancel.
func (h *BookingsHandler) Cancel(c *fiber.Ctx) error {
	principal, err := auth.RequireRole(c, domain.RoleDancer)
	if err != nil {
		return err
	}

	booking, err := h.bookings.Cancel(c.Context(), principal.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": bookingResponse(booking)})
}

func bookingResponse(booking *domain.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:         booking.ID,
		EventID:    booking.EventID,
		DancerID:   booking.DancerID,
		StylistID:  booking.StylistID,
		Status:     string(booking.Status),
		Note:       booking.Note,
		PriceCents: booking.PriceCents,
		CreatedAt:  booking.CreatedAt,
	}
}

func bookingResponses(bookings []*domain.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		responses = append(responses, bookingResponse(booking))
	}
	return responses
}
